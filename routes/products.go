package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/Jlcht/Aurelian-Timeworks/controllers/product"
	"github.com/Jlcht/Aurelian-Timeworks/middleware"
)

// SetupProductRoutes registers the "/products" endpoints. Reads are public;
// every mutation sits behind token verification plus the admin gate.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(deps.Products))
		products.GET("/:id", productcontroller.GetProduct(deps.Products))
	}

	admin := r.Group("/products")
	admin.Use(middleware.ValidateToken(deps.Users), middleware.RequireAdmin)
	{
		admin.GET("/export", productcontroller.ExportProducts(deps.Products))
		admin.POST("", productcontroller.CreateProduct(deps.Products))
		admin.PUT("/:id", productcontroller.UpdateProduct(deps.Products))
		admin.DELETE("/:id", productcontroller.DeleteProduct(deps.Products))
		admin.POST("/upload-image", productcontroller.UploadProductImage())
	}
}
