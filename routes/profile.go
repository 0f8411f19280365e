package routes

import (
	"github.com/gin-gonic/gin"

	usercontroller "github.com/Jlcht/Aurelian-Timeworks/controllers/user"
	"github.com/Jlcht/Aurelian-Timeworks/middleware"
)

// SetupProfileRoutes registers the profile endpoints. Both run behind token
// verification; the handlers additionally reject ids that do not match the
// verified subject.
func SetupProfileRoutes(r *gin.Engine, deps Deps) {
	profile := r.Group("/manage_user_profile")
	profile.Use(middleware.ValidateToken(deps.Users))
	{
		profile.GET("", usercontroller.GetUserProfile(deps.Users))
		profile.POST("", usercontroller.UpdateUserProfile(deps.Users))
	}
}
