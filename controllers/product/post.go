package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/store"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// CreateProduct validates the payload in full, then performs the single
// store write and returns the created record with its assigned id and
// timestamps.
func CreateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			web.Fail(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if errs := validateProduct(in, false); len(errs) > 0 {
			web.FailFields(c, errs)
			return
		}

		product := models.Product{Images: models.StringList{}}
		applyInput(in, &product)

		if err := products.Create(c.Request.Context(), &product); err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to create product")
			return
		}
		web.OK(c, http.StatusCreated, product)
	}
}
