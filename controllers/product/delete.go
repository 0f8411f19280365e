package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/store"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// DeleteProduct hard-deletes a product. There is no tombstone; a deleted id
// is gone.
func DeleteProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := products.Delete(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			web.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		web.OK(c, http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
