package wishlistcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/middleware"
	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/store"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// GET /user/wishlist
func GetWishlist(wishlists store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)
		items, err := wishlists.Load(c.Request.Context(), userID)
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to fetch wishlist")
			return
		}
		web.OK(c, http.StatusOK, items)
	}
}

// POST /user/wishlist
// The body is a full product snapshot; adding an id already present is a
// no-op, keeping each product at most once per wishlist.
func AddWishlistItem(wishlists store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var item models.Product
		if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
			web.Fail(c, http.StatusBadRequest, "A product snapshot with an id is required")
			return
		}

		if err := wishlists.AddItem(c.Request.Context(), userID, item); err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to add wishlist item")
			return
		}
		web.OK(c, http.StatusOK, gin.H{"message": "Added to wishlist"})
	}
}

// DELETE /user/wishlist/:product_id
// The stored snapshot is resolved by id first; removal matches the exact
// stored value.
func RemoveWishlistItem(wishlists store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)
		productID := c.Param("product_id")

		items, err := wishlists.Load(c.Request.Context(), userID)
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to fetch wishlist")
			return
		}
		for _, item := range items {
			if item.ID == productID {
				if err := wishlists.RemoveItem(c.Request.Context(), userID, item); err != nil {
					web.Fail(c, http.StatusInternalServerError, "Failed to remove wishlist item")
					return
				}
				web.OK(c, http.StatusOK, gin.H{"message": "Removed from wishlist"})
				return
			}
		}
		web.Fail(c, http.StatusNotFound, "Wishlist item not found")
	}
}

// DELETE /user/wishlist
func ClearWishlist(wishlists store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)
		if err := wishlists.Clear(c.Request.Context(), userID); err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to clear wishlist")
			return
		}
		web.OK(c, http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}
