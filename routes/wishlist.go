package routes

import (
	"github.com/gin-gonic/gin"

	wishlistcontroller "github.com/Jlcht/Aurelian-Timeworks/controllers/wishlist"
	"github.com/Jlcht/Aurelian-Timeworks/middleware"
)

// SetupWishlistRoutes registers the signed-in wishlist endpoints. Anonymous
// sessions keep their wishlist on-device and never reach these routes.
func SetupWishlistRoutes(r *gin.Engine, deps Deps) {
	wl := r.Group("/user/wishlist")
	wl.Use(middleware.ValidateToken(deps.Users))
	{
		wl.GET("", wishlistcontroller.GetWishlist(deps.Wishlists))
		wl.POST("", wishlistcontroller.AddWishlistItem(deps.Wishlists))
		wl.DELETE("/:product_id", wishlistcontroller.RemoveWishlistItem(deps.Wishlists))
		wl.DELETE("", wishlistcontroller.ClearWishlist(deps.Wishlists))
	}
}
