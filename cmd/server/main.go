package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/booking"
	"github.com/luxurystay/hotel-reservation/internal/config"
	"github.com/luxurystay/hotel-reservation/internal/database"
	"github.com/luxurystay/hotel-reservation/internal/handler"
	"github.com/luxurystay/hotel-reservation/internal/middleware"
	"github.com/luxurystay/hotel-reservation/internal/queue"
	"github.com/luxurystay/hotel-reservation/internal/repository"
	"github.com/luxurystay/hotel-reservation/internal/router"
	publisher "github.com/luxurystay/hotel-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories.
	roomRepo := repository.NewRoomRepo(db)
	bookingRepo := repository.NewBookingRepo(db, roomRepo)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	attendanceRepo := repository.NewAttendanceRepo(db)
	updateRepo := repository.NewUpdateRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)
	jobRepo := repository.NewJobRepo(db)
	applicationRepo := repository.NewApplicationRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)

	// Booking core: availability checks and lifecycle events.
	pub := publisher.New(cfg.AMQPURL)
	bookingSvc := booking.NewService(bookingRepo, pub)
	if cfg.AMQPURL != "" {
		go func() {
			if err := queue.StartBookingConsumer(cfg.AMQPURL); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	// Handlers.
	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	bookingHandler := handler.NewBookingHandler(bookingSvc, bookingRepo)
	roomHandler := handler.NewRoomHandler(roomRepo, bookingSvc)
	userHandler := handler.NewUserHandler(cfg, userRepo)
	attendanceHandler := handler.NewAttendanceHandler(attendanceRepo)
	staffHandler := handler.NewStaffHandler(attendanceRepo, updateRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardRepo, userRepo)
	jobHandler := handler.NewJobHandler(jobRepo)
	applicationHandler := handler.NewApplicationHandler(cfg, applicationRepo, jobRepo, userRepo)
	submissionHandler := handler.NewSubmissionHandler(submissionRepo)
	updateHandler := handler.NewUpdateHandler(updateRepo)

	e := echo.New()

	// Redis backs the response cache and the rate limiter; both degrade
	// gracefully when it is down.
	rdb := config.NewRedisClient()
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled && rdb != nil {
		e.Use(middleware.NewRateLimiter(rlCfg, rdb))
	}
	var cacheMW echo.MiddlewareFunc
	cacheCfg := config.LoadCacheConfig()
	if cacheCfg.Enabled && rdb != nil {
		cacheMW = middleware.NewResponseCache(cacheCfg, rdb)
	}

	router.RegisterRoutes(e)
	router.RegisterPublic(e, roomHandler, jobHandler, applicationHandler, submissionHandler, cacheMW)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterBookings(e, bookingHandler, cfg.JWTSecret)
	router.RegisterStaff(e, attendanceHandler, staffHandler, updateHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, router.AdminHandlers{
		Bookings:     bookingHandler,
		Rooms:        roomHandler,
		Users:        userHandler,
		Attendance:   attendanceHandler,
		Dashboard:    dashboardHandler,
		Jobs:         jobHandler,
		Applications: applicationHandler,
		Submissions:  submissionHandler,
		Updates:      updateHandler,
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
