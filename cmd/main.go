package main

import (
	"context"
	"log"

	"booking-engine/config"
	"booking-engine/internal/module/booking/handler"
	"booking-engine/internal/module/booking/repositories"
	"booking-engine/internal/module/booking/usecases"
	"booking-engine/internal/pkg/database"
	"booking-engine/internal/pkg/http"
	"booking-engine/internal/pkg/httpclient"
	"booking-engine/internal/pkg/lock"
	log_internal "booking-engine/internal/pkg/log"
	"booking-engine/internal/pkg/messagestream"
	"booking-engine/internal/pkg/middleware"
	"booking-engine/internal/pkg/redis"
	"booking-engine/internal/pkg/scheduler"
	router "booking-engine/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redis := redis.SetupClient(&cfg.Redis)
	locker := lock.NewRedisLocker(redis, cfg.Engine.LockExpiry, 0)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init task queue
	sch := scheduler.Scheduler{Log: logger}
	asynqClient := sch.InitClient(&cfg.Redis)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	bookingRepo := repositories.New(db, logger, httpClient, redis, locker, asynqClient,
		&cfg.UserService, &cfg.PaymentProvider, cfg.Engine.SlotCacheTTL)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher, usecases.SettingsFromConfig(&cfg.Engine))
	middleware := middleware.Middleware{
		Log:  otelzap.L(),
		Repo: bookingRepo,
	}

	bookingHandler := handler.BookingHandler{
		Log:       otelzap.L(),
		Validator: handler.NewValidator(),
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	// background tasks
	go sch.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeRecheckPayment},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.RecheckPayment},
	)
	if cfg.App.EnableMonitoring {
		go sch.StartMonitoring(&cfg.Redis, &cfg.App)
	}

	var messageRouters []*message.Router

	creditPostedRouter, err := messagestream.NewRouter(publisher, usecases.TopicCreditPostedPoisoned, "payment_credit_posted_handler", usecases.TopicCreditPosted, subscriber, bookingHandler.ConsumeCreditPosted)
	if err != nil {
		logger.Error(ctx, "Failed to create payment_credit_posted router", err)
	}

	messageRouters = append(messageRouters, creditPostedRouter)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &middleware)

	return r, messageRouters

}
