package routes

import (
	"time"

	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	mentorRepo := repository.NewMentorRepository(db)
	tagRepo := repository.NewTagRepository(db)
	sessionRepo := repository.NewSessionRequestRepository(db)
	availRepo := repository.NewAvailabilityRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	promoter := services.NewPromotionService(mentorRepo, userRepo)
	appSvc := services.NewApplicationService(appRepo, mentorRepo, tagRepo, promoter)
	mentorSvc := services.NewMentorService(mentorRepo)
	sessionSvc := services.NewSessionRequestService(sessionRepo, mentorRepo)
	availSvc := services.NewAvailabilityService(availRepo, mentorRepo)
	tagSvc := services.NewTagService(tagRepo)

	// Moderator capability: admin role or the configured allow-list
	policy := middlewares.AllowListPolicy{Emails: cfg.AdminEmails}

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, policy)
	appCtrl := controllers.NewApplicationController(appSvc)
	mentorCtrl := controllers.NewMentorController(mentorSvc)
	sessionCtrl := controllers.NewSessionRequestController(sessionSvc, authSvc)
	availCtrl := controllers.NewAvailabilityController(availSvc)
	tagCtrl := controllers.NewTagController(tagSvc)

	// Optional redis rate limiting on the unauthenticated write paths
	var limiter *middlewares.RedisLimiter
	if cfg.RedisAddr != "" {
		limiter = middlewares.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", middlewares.RateLimit(limiter, "register", 10, time.Minute), authCtrl.Register)
		a.POST("/login", middlewares.RateLimit(limiter, "login", 20, time.Minute), authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Public
	r.GET("/mentors", mentorCtrl.List)
	r.GET("/mentors/:slug", mentorCtrl.Detail)
	r.GET("/tags/options", tagCtrl.Options)

	// Applicant
	u := r.Group("/", auth())
	{
		u.POST("/applications", appCtrl.Apply)
		u.GET("/applications/mine", appCtrl.ListMine)
		u.PATCH("/applications/:id", appCtrl.UpdateMine)
		u.GET("/me/application-status", appCtrl.MyStatus)
		u.POST("/session-requests", sessionCtrl.Create)
		u.GET("/session-requests/mine", sessionCtrl.ListMine)
	}

	// Mentor
	mentor := r.Group("/mentor", auth())
	{
		mentor.GET("/profile", mentorCtrl.MyProfile)
		mentor.GET("/requests", sessionCtrl.ListForMentor)
		mentor.GET("/availability", availCtrl.ListMine)
		mentor.POST("/availability", availCtrl.Create)
		mentor.DELETE("/availability/:id", availCtrl.Delete)
	}

	// Moderation
	admin := r.Group("/admin", auth(), middlewares.RequireModerator(policy))
	{
		admin.GET("/applications", appCtrl.List)
		admin.GET("/applications/:id", appCtrl.Detail)
		admin.PATCH("/applications/:id/status", appCtrl.UpdateStatus)
	}
}
