package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/sport-complex/internal/config"
	"github.com/iliyamo/sport-complex/internal/database"
	"github.com/iliyamo/sport-complex/internal/handler"
	"github.com/iliyamo/sport-complex/internal/queue"
	"github.com/iliyamo/sport-complex/internal/repository"
	"github.com/iliyamo/sport-complex/internal/router"
	"github.com/iliyamo/sport-complex/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}
	if err := database.Seed(ctx, db, cfg.BcryptCost); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, rate limiting and caching disabled")
	}

	var publisher service.EventPublisher
	if cfg.AMQPURL != "" {
		pub := queue.NewPublisher(cfg.AMQPURL)
		defer pub.Close()
		publisher = pub
		go queue.StartConsumer(cfg.AMQPURL)
	} else {
		log.Warn().Msg("AMQP_URL not set, event publishing disabled")
	}

	fieldRepo := repository.NewFieldRepo(db)
	courtRepo := repository.NewCourtRepo(db)
	sportTypeRepo := repository.NewSportTypeRepo(db)
	slotRepo := repository.NewTimeSlotRepo(db)
	userRepo := repository.NewUserRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	paymentRepo := repository.NewPaymentSpecialRepo(db)

	reservationSvc := service.NewReservationService(reservationRepo, fieldRepo, slotRepo, userRepo, publisher)
	paymentSvc := service.NewPaymentService(paymentRepo, reservationRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(echomw.Recover())

	router.RegisterHealth(e)
	router.RegisterAPI(e, router.Handlers{
		Auth:         handler.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.AccessTTLMin),
		Fields:       handler.NewFieldHandler(fieldRepo),
		Courts:       handler.NewCourtHandler(courtRepo),
		SportTypes:   handler.NewSportTypeHandler(sportTypeRepo),
		TimeSlots:    handler.NewTimeSlotHandler(slotRepo),
		Users:        handler.NewUserHandler(userRepo, cfg.BcryptCost),
		Reservations: handler.NewReservationHandler(reservationSvc),
		Payments:     handler.NewPaymentSpecialHandler(paymentSvc),
	}, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
