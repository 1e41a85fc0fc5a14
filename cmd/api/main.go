package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/AgendlyHQ/booking-scheduler/internal/config"
	dbpkg "github.com/AgendlyHQ/booking-scheduler/internal/db"
	infraRepo "github.com/AgendlyHQ/booking-scheduler/internal/infra/repository"
	"github.com/AgendlyHQ/booking-scheduler/internal/logger"
	"github.com/AgendlyHQ/booking-scheduler/internal/middleware"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/notifier"
	"github.com/AgendlyHQ/booking-scheduler/internal/routes"
	"github.com/AgendlyHQ/booking-scheduler/internal/scheduler"
	"github.com/AgendlyHQ/booking-scheduler/internal/tokens"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	resets := tokens.NewResetStore(rdb, time.Duration(cfg.ResetTokenTTLMinutes)*time.Minute)

	mailer := notifier.NewSMTPMailer(cfg.SMTPAddr(), cfg.MailFrom)
	mail := notifier.NewDispatcher(mailer, zlog)

	// Scheduler loops live for the whole process; ctx cancellation on
	// SIGINT/SIGTERM stops them cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := infraRepo.NewBookingGormRepository(db)
	go scheduler.New(store, mailer, zlog, models.KindReminder, scheduler.ReminderInterval).Run(ctx)
	go scheduler.New(store, mailer, zlog, models.KindThankYou, scheduler.ThankYouInterval).Run(ctx)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Mail:   mail,
		Resets: resets,
	})

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
