package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/store"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// GetProducts returns every product, newest first. An empty catalog is a
// 200 with an empty list, not an error.
func GetProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		web.OK(c, http.StatusOK, list)
	}
}
