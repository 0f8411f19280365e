package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/store"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// UpdateProduct applies a partial update: only supplied fields change, each
// re-validated with the create rules. The update timestamp is re-stamped on
// every successful save regardless of which fields were sent.
func UpdateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			web.Fail(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if errs := validateProduct(in, true); len(errs) > 0 {
			web.FailFields(c, errs)
			return
		}

		product, err := products.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			web.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to fetch product")
			return
		}

		applyInput(in, product)

		if err := products.Save(c.Request.Context(), product); err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to update product")
			return
		}
		web.OK(c, http.StatusOK, product)
	}
}
