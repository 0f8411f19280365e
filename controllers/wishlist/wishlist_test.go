package wishlistcontroller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/routes"
	"github.com/Jlcht/Aurelian-Timeworks/store"
)

const testSecret = "test-secret"

type itemsEnvelope struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
	Error   string           `json:"error"`
}

func newAPI(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	users := store.NewMemoryUserStore()
	users.Put(models.User{ID: "user-1", Email: "one@example.com", Role: models.RoleCustomer})
	users.Put(models.User{ID: "user-2", Email: "two@example.com", Role: models.RoleCustomer})

	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{
		Products:  store.NewMemoryProductStore(),
		Users:     users,
		Wishlists: store.NewMemoryWishlistStore(),
	})
	return r
}

func tokenFor(t *testing.T, userID, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loadItems(t *testing.T, r *gin.Engine, token string) []models.Product {
	t.Helper()
	w := do(r, http.MethodGet, "/user/wishlist", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var env itemsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

const snapshot = `{"id":"p1","name":"Chronograph","description":"A hand-wound chronograph","price":249.99,"stock":5,"images":[]}`

func TestWishlistEndpoints(t *testing.T) {
	r := newAPI(t)
	one := tokenFor(t, "user-1", "one@example.com")
	two := tokenFor(t, "user-2", "two@example.com")

	t.Run("requires a token", func(t *testing.T) {
		w := do(r, http.MethodGet, "/user/wishlist", "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("first read is an empty list", func(t *testing.T) {
		require.Empty(t, loadItems(t, r, one))
	})

	t.Run("add is idempotent by product id", func(t *testing.T) {
		require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/user/wishlist", snapshot, one).Code)
		require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/user/wishlist", snapshot, one).Code)
		require.Len(t, loadItems(t, r, one), 1)
	})

	t.Run("wishlists are per subject", func(t *testing.T) {
		require.Empty(t, loadItems(t, r, two))
	})

	t.Run("snapshot without an id is rejected", func(t *testing.T) {
		w := do(r, http.MethodPost, "/user/wishlist", `{"name":"No id"}`, one)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("remove by id", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/user/wishlist/p1", "", one)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, loadItems(t, r, one))
	})

	t.Run("removing an absent id is not found", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/user/wishlist/p1", "", one)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("clear empties the document", func(t *testing.T) {
		require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/user/wishlist", snapshot, one).Code)
		w := do(r, http.MethodDelete, "/user/wishlist", "", one)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, loadItems(t, r, one))
	})
}
