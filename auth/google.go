package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/option"

	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/store"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
)

// Setup initialises the Firebase client used to verify Google ID tokens.
// Sign-in routes must not be mounted when it returns an error.
func Setup(ctx context.Context) error {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return errors.New("FIREBASE_CREDENTIALS_JSON must be set")
	}
	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return errors.New("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		return err
	}
	firebaseAuth, err = firebaseApp.Auth(ctx)
	return err
}

// GoogleLoginHandler verifies a Google ID token, bootstraps the account
// document on first sign-in and issues the session token the API accepts.
func GoogleLoginHandler(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
			web.Fail(c, http.StatusBadRequest, "Invalid request payload")
			return
		}

		ctx := c.Request.Context()

		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			web.Fail(c, http.StatusUnauthorized, "Invalid or revoked ID token")
			return
		}
		if token.Audience != projectID {
			log.Printf("❌ Token audience mismatch: got %q", token.Audience)
			web.Fail(c, http.StatusUnauthorized, "Invalid token audience")
			return
		}

		email, ok := token.Claims["email"].(string)
		if !ok || email == "" {
			web.Fail(c, http.StatusUnauthorized, "Email not found in token")
			return
		}

		user, err := users.EnsureUser(ctx, token.UID, email)
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to load account")
			return
		}

		signed, err := issueJWT(user)
		if err != nil {
			log.Printf("❌ Failed to sign JWT: %v", err)
			web.Fail(c, http.StatusInternalServerError, "Failed to issue session token")
			return
		}

		web.OK(c, http.StatusOK, gin.H{
			"token": signed,
			"user":  user,
		})
	}
}

// issueJWT signs the session token ValidateToken verifies. The role claim is
// informational for the client; authorization always re-reads the stored
// role.
func issueJWT(u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"email":   u.Email,
		"role":    u.Role,
		"user_id": u.ID,
		"exp":     time.Now().AddDate(0, 2, 0).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
