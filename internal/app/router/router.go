// Package router assembles the route table for the CampusChain API.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	adminhandler "campuschain_backend/internal/feature/admin/transport/handler"
	authhandler "campuschain_backend/internal/feature/auth/transport/handler"
	eventhandler "campuschain_backend/internal/feature/event/transport/handler"
	profilehandler "campuschain_backend/internal/feature/profile/transport/handler"
	synchandler "campuschain_backend/internal/feature/sync/transport/handler"
	"campuschain_backend/internal/platform/http/handler"
	jwtmw "campuschain_backend/internal/platform/jwt"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Students *profilehandler.ProfileHandler
	Alumni   *profilehandler.ProfileHandler
	Sync     *synchandler.SyncHandler
	Events   *eventhandler.EventHandler
	Admin    *adminhandler.AdminHandler
}

// NewRouter builds the Gin engine with all routes mounted under /api,
// mirroring the public surface of the original deployment.
func NewRouter(jwtSecret string, h Handlers) *gin.Engine {
	r := gin.Default()

	// The SPA front ends are served from arbitrary origins.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization", "user-email")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", handler.Health)

	authRequired := jwtmw.AuthRequired(jwtSecret)
	adminOnly := jwtmw.AdminOnly()

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/admin/login", h.Auth.AdminLogin)

		// Public event listing; creation is admin-gated.
		api.GET("/events", h.Events.List)
		api.POST("/events", authRequired, adminOnly, h.Events.Create)
	}

	student := api.Group("/student")
	{
		student.POST("/create", h.Students.Create)
		student.GET("/get-or-create/:email", h.Sync.GetOrCreate)
		student.GET("/validate-email/:email", h.Sync.ValidateEmail)

		protected := student.Group("")
		protected.Use(authRequired)
		{
			protected.GET("/get/:email", h.Students.Get)
			protected.GET("/my-profile", h.Students.GetOwn)
			protected.PUT("/update-by-email/:email", h.Students.Update)
			protected.POST("/sync-profile", h.Sync.SyncProfile)
		}
	}

	alumni := api.Group("/alumni")
	alumni.Use(authRequired)
	{
		alumni.POST("/create", h.Alumni.Create)
		alumni.GET("/get/:email", h.Alumni.Get)
		alumni.GET("/my-profile", h.Alumni.GetOwn)
		alumni.PUT("/update-by-email/:email", h.Alumni.Update)
	}

	admin := api.Group("/admin")
	admin.Use(authRequired, adminOnly)
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/all-users", h.Admin.AllUsers)
	}

	return r
}
