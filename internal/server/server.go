package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/ai"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/appointment"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/auth"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/availability"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/catalog"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/config"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/email"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/gym"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/member"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/trainer"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/user"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/workout"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(db)
	memberRepo := member.NewRepository(db)
	gymRepo := gym.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	trainerRepo := trainer.NewRepository(db)
	availabilityRepo := availability.NewRepository(db)
	appointmentRepo := appointment.NewRepository(db)
	workoutRepo := workout.NewRepository(db)

	userService := user.NewService(userRepo, cfg.JWTSecret)
	memberService := member.NewService(memberRepo)
	gymService := gym.NewService(gymRepo)
	catalogService := catalog.NewService(catalogRepo)
	trainerService := trainer.NewService(trainerRepo)
	availabilityService := availability.NewService(availabilityRepo)

	notifier := email.NewNotifier(emailService, memberRepo, userRepo, catalogRepo, trainerRepo)
	appointmentService := appointment.NewService(
		appointmentRepo, catalogService, trainerService, availabilityService, memberService, notifier,
	)

	aiClient := ai.NewClient(cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel)
	workoutService := workout.NewService(workoutRepo, aiClient, memberService)

	userHandler := user.NewHandler(userService)
	memberHandler := member.NewHandler(memberService)
	gymHandler := gym.NewHandler(gymService)
	catalogHandler := catalog.NewHandler(catalogService)
	trainerHandler := trainer.NewHandler(trainerService)
	availabilityHandler := availability.NewHandler(availabilityService)
	appointmentHandler := appointment.NewHandler(appointmentService)
	workoutHandler := workout.NewHandler(workoutService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/api")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.POST("/members", memberHandler.CreateProfile)
		protected.GET("/members/me", memberHandler.GetMyProfile)
		protected.PUT("/members/me", memberHandler.UpdateMyProfile)

		protected.GET("/gyms", gymHandler.ListGyms)
		protected.GET("/gyms/:gymID", gymHandler.GetGym)

		protected.GET("/services", catalogHandler.ListServices)
		protected.GET("/services/:serviceID", catalogHandler.GetService)

		protected.GET("/trainers", trainerHandler.ListTrainers)
		protected.GET("/trainers/:trainerID", trainerHandler.GetTrainer)
		protected.GET("/trainers/:trainerID/availability", availabilityHandler.ListTrainerWindows)
		protected.GET("/trainers/:trainerID/slots", appointmentHandler.GetAvailableSlots)

		protected.POST("/appointments", appointmentHandler.CreateAppointment)
		protected.GET("/appointments", appointmentHandler.ListMyAppointments)
		protected.POST("/appointments/:appointmentID/cancel", appointmentHandler.Cancel)

		protected.POST("/workout-plans", workoutHandler.GeneratePlan)
		protected.GET("/workout-plans", workoutHandler.ListMyPlans)
		protected.DELETE("/workout-plans/:planID", workoutHandler.DeletePlan)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/gyms", gymHandler.CreateGym)
		admin.DELETE("/gyms/:gymID", gymHandler.DeactivateGym)

		admin.POST("/services", catalogHandler.CreateService)
		admin.DELETE("/services/:serviceID", catalogHandler.DeactivateService)

		admin.POST("/trainers", trainerHandler.CreateTrainer)
		admin.DELETE("/trainers/:trainerID", trainerHandler.DeactivateTrainer)

		admin.POST("/availability", availabilityHandler.CreateWindow)
		admin.PATCH("/trainers/:trainerID/availability/:windowID", availabilityHandler.DeactivateWindow)
		admin.DELETE("/trainers/:trainerID/availability/:windowID", availabilityHandler.DeleteWindow)

		admin.GET("/members", memberHandler.ListMembers)
		admin.DELETE("/members/:memberID", memberHandler.DeactivateMember)

		admin.GET("/appointments", appointmentHandler.ListByStatus)
		admin.PATCH("/appointments/:appointmentID/approve", appointmentHandler.Approve)
		admin.PATCH("/appointments/:appointmentID/complete", appointmentHandler.Complete)
		admin.PATCH("/appointments/:appointmentID/no-show", appointmentHandler.MarkNoShow)
		admin.POST("/appointments/:appointmentID/cancel", appointmentHandler.Cancel)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
