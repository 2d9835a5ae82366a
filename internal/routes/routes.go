package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	notifyStore := notify.NewStore(db)
	notifyDispatcher := notify.NewDispatcher(notifyStore, logger)

	availCache := cache.NewAvailability(rdb, logger)
	storage := media.NewStorage(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifyDispatcher,
		availCache,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		availCache,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		availCache,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		availCache,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		availCache,
	)

	listStylistDayUC := ucBooking.NewListStylistDay(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	shopHandler := handlers.NewShopHandler(db, storage)
	serviceHandler := handlers.NewServiceHandler(db)
	stylistHandler := handlers.NewStylistHandler(db, storage)
	workShiftHandler := handlers.NewWorkShiftHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		deleteBookingUC,
		availabilityUC,
		listStylistDayUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.GetMe)

			// ------------------------------
			// SHOPS
			// ------------------------------
			secured.GET("/shops", shopHandler.List)
			secured.GET("/shops/:id", shopHandler.Get)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)

			// ------------------------------
			// STYLISTS
			// ------------------------------
			secured.GET("/stylists", stylistHandler.List)
			secured.GET("/stylists/:id", stylistHandler.Get)
			secured.GET("/stylists/:id/shifts", workShiftHandler.ListByStylist)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/me", bookingHandler.ListMine)
			secured.POST("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)
			secured.GET("/bookings/stylist/:id", bookingHandler.StylistDay)
			secured.GET("/bookings/stylist/:id/available", bookingHandler.StylistAvailableSlots)

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews", reviewHandler.Create)
			secured.GET("/reviews", reviewHandler.List)
			secured.GET("/reviews/stylist/:id", reviewHandler.ListByStylist)
			secured.GET("/reviews/booking/:id", reviewHandler.GetByBooking)
			secured.PUT("/reviews/:id", reviewHandler.Update)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications/me", notificationHandler.ListMine)
			secured.POST("/notifications/:id/read", notificationHandler.MarkRead)
			secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)
			secured.DELETE("/notifications/:id", notificationHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.AdminRequired())
			{
				admin.GET("/users", userHandler.List)
				admin.GET("/users/:id", userHandler.Get)

				admin.POST("/shops", shopHandler.Create)
				admin.PUT("/shops/:id", shopHandler.Update)
				admin.DELETE("/shops/:id", shopHandler.Delete)
				admin.POST("/shops/:id/avatar", shopHandler.UploadAvatar)

				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.POST("/stylists", stylistHandler.Create)
				admin.PUT("/stylists/:id", stylistHandler.Update)
				admin.DELETE("/stylists/:id", stylistHandler.Delete)
				admin.POST("/stylists/:id/avatar", stylistHandler.UploadAvatar)

				admin.POST("/work-shifts", workShiftHandler.Create)
				admin.PUT("/work-shifts/:id", workShiftHandler.Update)
				admin.DELETE("/work-shifts/:id", workShiftHandler.Delete)

				admin.GET("/bookings", bookingHandler.ListAll)
				admin.GET("/bookings/user/:id", bookingHandler.ListByUser)
				admin.PUT("/bookings/:id", bookingHandler.Update)

				admin.POST("/reviews/:id/reply", reviewHandler.Reply)
				admin.DELETE("/reviews/:id", reviewHandler.Delete)
			}
		}
	}
}
