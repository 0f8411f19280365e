package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jlcht/Aurelian-Timeworks/auth"
)

// SetupAuthRoutes registers the sign-in endpoint. Mounted only after
// auth.Setup succeeds.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	r.POST("/auth/google", auth.GoogleLoginHandler(deps.Users))
}
