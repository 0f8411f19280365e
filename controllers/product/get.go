package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/store"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// GetProduct returns a single product by id.
func GetProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			web.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to fetch product")
			return
		}
		web.OK(c, http.StatusOK, product)
	}
}
