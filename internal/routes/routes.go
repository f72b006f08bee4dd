package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sharpcuts/booking-api/internal/audit"
	"github.com/sharpcuts/booking-api/internal/cache"
	"github.com/sharpcuts/booking-api/internal/config"
	"github.com/sharpcuts/booking-api/internal/handlers"
	infraRepo "github.com/sharpcuts/booking-api/internal/infra/repository"
	"github.com/sharpcuts/booking-api/internal/media"
	"github.com/sharpcuts/booking-api/internal/middleware"
	ucBooking "github.com/sharpcuts/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger, rdb *redis.Client) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	availCache := cache.NewAvailability(rdb, cache.DefaultTTL, log)

	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		availCache,
		cfg.ShopTimezone,
	)

	rescheduleBookingUC := ucBooking.NewRescheduleBooking(
		bookingRepo,
		auditDispatcher,
		availCache,
		cfg.ShopTimezone,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		availCache,
		cfg.ShopTimezone,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
		cfg.ShopTimezone,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
		availCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, cfg, bookingRepo, availCache, createBookingUC)

	bookingHandler := handlers.NewBookingHandler(
		db,
		cfg,
		bookingRepo,
		rescheduleBookingUC,
		cancelBookingUC,
		completeBookingUC,
		deleteBookingUC,
	)

	barberHandler := handlers.NewBarberHandler(db, uploader, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", barberHandler.UpdateProfile)
			secured.POST("/me/photo", barberHandler.UploadPhoto)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/range", bookingHandler.ListByRange)
			secured.PATCH("/me/bookings/:id", bookingHandler.Update)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			secured.GET("/me/services", serviceHandler.List)

			// ------------------------------
			// OWNER ONLY
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireOwner())
			{
				owner.GET("/me/stats", bookingHandler.Stats)
				owner.DELETE("/me/bookings/:id", bookingHandler.Delete)

				owner.GET("/me/barbers", barberHandler.List)
				owner.POST("/me/barbers", barberHandler.Create)

				owner.POST("/me/services", serviceHandler.Create)
				owner.PATCH("/me/services/:id", serviceHandler.Update)

				owner.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
