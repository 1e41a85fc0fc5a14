package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/config"
	"github.com/AgendlyHQ/booking-scheduler/internal/handlers"
	infraRepo "github.com/AgendlyHQ/booking-scheduler/internal/infra/repository"
	"github.com/AgendlyHQ/booking-scheduler/internal/middleware"
	"github.com/AgendlyHQ/booking-scheduler/internal/notifier"
	"github.com/AgendlyHQ/booking-scheduler/internal/tokens"
	ucBooking "github.com/AgendlyHQ/booking-scheduler/internal/usecase/booking"
	ucCancel "github.com/AgendlyHQ/booking-scheduler/internal/usecase/cancellation"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Mail   *notifier.Dispatcher
	Resets *tokens.ResetStore
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	resolvePageUC := ucBooking.NewResolvePage(bookingRepo)

	bookUC := ucBooking.NewBook(
		bookingRepo,
		deps.Mail,
		deps.Config.DefaultTimezone,
	)

	cancelUC := ucCancel.NewCancel(
		bookingRepo,
		deps.Mail,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Config, deps.Resets, deps.Mail)
	meHandler := handlers.NewMeHandler(deps.DB)
	pageHandler := handlers.NewPageHandler(deps.DB)
	reminderHandler := handlers.NewReminderHandler(deps.DB, deps.Config)
	thankYouHandler := handlers.NewThankYouHandler(deps.DB, deps.Config)

	appointmentHandler := handlers.NewAppointmentHandler(
		deps.DB,
		cancelUC,
		deps.Config,
	)

	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		resolvePageUC,
		bookUC,
		deps.Config,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:adminSlug/:pageSlug/form", publicHandler.Form)
			publicAPI.GET("/:adminSlug/:pageSlug/booked-slots", publicHandler.BookedSlots)
			publicAPI.POST("/:adminSlug/:pageSlug/book", publicHandler.Book)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password/:token", authHandler.ResetPassword)

		// ------------------------------
		// PROTECTED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(deps.DB, deps.Config))
		{
			secured.DELETE("/auth/delete-account", authHandler.DeleteAccount)

			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/pages", pageHandler.List)
			secured.POST("/me/pages", pageHandler.Create)
			secured.GET("/me/pages/:id", pageHandler.Get)
			secured.PUT("/me/pages/:id", pageHandler.Update)
			secured.DELETE("/me/pages/:id", pageHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/cancelled", appointmentHandler.ListCancelled)
			secured.POST("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/appointments/:id/reminders", reminderHandler.ListForAppointment)
			secured.POST("/me/appointments/:id/reminders", reminderHandler.Create)
			secured.PATCH("/me/reminders/:id", reminderHandler.Update)
			secured.DELETE("/me/reminders/:id", reminderHandler.Delete)

			secured.GET("/me/appointments/:id/thank-you", thankYouHandler.Get)
			secured.PATCH("/me/appointments/:id/thank-you", thankYouHandler.Update)
			secured.DELETE("/me/appointments/:id/thank-you", thankYouHandler.Delete)
		}
	}
}
