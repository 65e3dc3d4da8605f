package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/app"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/config"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/events"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/handler"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/live"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/postgres"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/repo"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/service"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/storefront"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/cache"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/pubsub"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title           Cuidja Orders API
// @version         1.0
// @description     Заказы, чат заказа и уведомления маркетплейса Cuidja
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(db, conf.Postgres.MigrationsPath))

	storage := repo.NewPostgresRepo(db, conf.Live.Channel)
	txManager := trm.NewManager(db)
	hub := pubsub.NewHub()
	defer hub.Close()

	publisher := events.NewKafkaPublisher(logger, conf.Kafka)
	defer publisher.Close()

	storeCache, cacheStarter := newCache(logger, conf)
	stores := service.NewStoreResolver(logger, storage, storeCache)

	orderService := service.NewOrderService(logger, txManager, storage, stores, hub, publisher)
	chatService := service.NewChatService(logger, txManager, storage, hub, publisher)
	notificationService := service.NewNotificationService(logger, storage, stores, hub)
	listingService := service.NewListingService(logger, storage, stores)
	board := storefront.NewBoard(logger, storage, listingService)

	listener := live.NewListener(logger, postgres.DSN(conf.Postgres), conf.Live, hub)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, chatService, notificationService, board)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler, listener)
	app.SetStarters(listener, cacheStarter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

// newCache кэш магазинов: LRU в памяти процесса или общий Redis.
func newCache(logger *slog.Logger, conf config.Config) (service.Cache, app.Starter) {
	if conf.Cache.Driver == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		ping := starterFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		return cache.NewRedisCache(logger, client, "cuidja:stores", conf.Cache.TTL), ping
	}

	lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	return lru, lru
}
