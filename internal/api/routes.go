package api

import (
	"ruyatech/internal/api/controllers"
	"ruyatech/internal/api/middleware"
	"ruyatech/internal/auth"
)

func (s *Server) registerRoutes() {
	creds := auth.ContextCredentials{Store: s.tokens}
	locale := s.backend.Locale()

	authController := controllers.NewAuthController(s.backend, s.tokens, s.config.JWT.Secret, s.config.JWT.SessionTTL)
	ads := controllers.NewAdController(s.backend, creds, s.msgs, locale)
	posts := controllers.NewPostController(s.backend, creds, s.msgs, locale)
	members := controllers.NewMemberController(s.backend, creds, s.msgs, locale)

	s.echo.GET("/health", s.healthCheck)

	// Public directory surface
	s.echo.GET("/members", members.Browse)
	s.echo.GET("/members/:id", members.Profile)
	s.echo.POST("/register", members.Register)
	s.echo.POST("/ads", ads.Submit)
	s.echo.POST("/auth/login", authController.Login)

	// Everything behind here needs a live console session
	authMiddleware := middleware.NewAuthMiddleware(s.config.JWT.Secret, s.tokens)
	admin := s.echo.Group("/admin")
	admin.Use(authMiddleware.Middleware())

	admin.POST("/logout", authController.Logout)

	// Ads moderation is admin-only
	adGroup := admin.Group("/ads", middleware.RequireAdmin())
	ads.Table.RegisterRoutes(adGroup, "")
	adGroup.GET("/:id", ads.Detail)
	adGroup.POST("/:id", ads.Save)

	// Members sees their own posts here; admins see everyone's
	postGroup := admin.Group("/posts")
	posts.Table.RegisterRoutes(postGroup, "")
	postGroup.GET("/:id", posts.Detail)
	postGroup.POST("", posts.Save)
	postGroup.POST("/:id", posts.Save)

	// Member moderation is admin-only
	memberGroup := admin.Group("/members", middleware.RequireAdmin())
	members.Table.RegisterRoutes(memberGroup, "")
	memberGroup.GET("/:id", members.Detail)
	memberGroup.POST("/:id", members.Save)
}
