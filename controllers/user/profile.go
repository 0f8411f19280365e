package usercontroller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/middleware"
	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// ProfileStore is the slice of the user gateway the profile endpoints need.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (models.Profile, error)
	MergeProfile(ctx context.Context, id string, patch models.Profile) error
}

type profileRequest struct {
	UserID      string         `json:"userId"`
	ProfileData models.Profile `json:"profileData"`
}

// GetUserProfile returns the caller's stored profile, or an empty one when
// no document exists yet. The userId parameter must match the verified
// subject; profile reads are never cross-user.
func GetUserProfile(users ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			web.Fail(c, http.StatusBadRequest, "userId parameter is required")
			return
		}
		if userID != c.GetString(middleware.CtxUserID) {
			web.Fail(c, http.StatusForbidden, "You may only access your own profile")
			return
		}
		profile, err := users.GetProfile(c.Request.Context(), userID)
		if err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to fetch profile")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "userId": userID, "profile": profile})
	}
}

// UpdateUserProfile merges the supplied profile fields onto the caller's
// document; fields left out of the payload are preserved.
func UpdateUserProfile(users ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			web.Fail(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if req.UserID == "" {
			web.Fail(c, http.StatusBadRequest, "userId is required in request body")
			return
		}
		if req.UserID != c.GetString(middleware.CtxUserID) {
			web.Fail(c, http.StatusForbidden, "You may only modify your own profile")
			return
		}
		if err := users.MergeProfile(c.Request.Context(), req.UserID, req.ProfileData); err != nil {
			web.Fail(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
