package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/store"
)

// Deps carries the store gateways handlers are built over. Injecting them
// here keeps the database handle out of the controllers and lets tests swap
// in the in-memory stores.
type Deps struct {
	Products  store.ProductStore
	Users     store.UserStore
	Wishlists store.WishlistStore
}

// SetupRoutes wires the product, profile and wishlist route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupProductRoutes(r, deps)
	SetupProfileRoutes(r, deps)
	SetupWishlistRoutes(r, deps)
}
