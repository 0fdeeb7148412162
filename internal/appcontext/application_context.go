package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/RoyceAzure/lab/bookstore/internal/config"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/producer"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookstore/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/bookstore/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf              *config.Config
	Logger          *zerolog.Logger
	DbConn          *gorm.DB
	DbDao           *db.DbDao
	RedisClient     *redis.Client
	BookRepo        db.IBookRepository
	OrderRepo       db.IOrderRepository
	UserRepo        db.IUserRepository
	CartRepo        redis_repo.ICartRepository
	OrderProducer   producer.IOrderEventProducer
	BookService     service.IBookService
	CartService     service.ICartService
	CheckoutService service.ICheckoutService
	OrderService    service.IOrderService
	UserService     service.IUserService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}
	err = app.setUpRedis()
	if err != nil {
		return err
	}
	app.setUpRepos()

	err = app.setUpOrderProducer()
	if err != nil {
		return err
	}

	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("moduler", app.Cf.ModulerName).
		Logger()
	app.Logger = &logger
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	err := app.DbDao.InitMigrate()
	if err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	log.Printf("Start setup redis client")
	client := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPas,
		DB:       app.Cf.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	app.RedisClient = client
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpRepos() {
	log.Printf("Start setup repositories")
	app.BookRepo = db.NewBookRepo(app.DbDao)
	app.OrderRepo = db.NewOrderRepo(app.DbDao)
	app.UserRepo = db.NewUserRepo(app.DbDao)
	app.CartRepo = redis_repo.NewCartRepo(app.RedisClient)
	log.Printf("Finish setup repositories")
}

func (app *ApplicationContext) setUpOrderProducer() error {
	log.Printf("Start setup order event producer")
	brokers := app.Cf.KafkaBrokerList()
	if len(brokers) == 0 {
		//沒設定kafka就不發事件，checkout service 會略過nil producer
		log.Printf("kafka brokers not configured, order events disabled")
		return nil
	}
	app.OrderProducer = producer.NewOrderEventProducer(brokers, app.Cf.KafkaOrderTopic)
	log.Printf("Finish setup order event producer")
	return nil
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")
	app.BookService = service.NewBookService(app.BookRepo)
	app.CartService = service.NewCartService(app.CartRepo, app.BookRepo)
	app.CheckoutService = service.NewCheckoutService(app.CartRepo, app.BookRepo, app.OrderRepo, app.OrderProducer)
	app.OrderService = service.NewOrderService(app.OrderRepo, app.OrderProducer)
	app.UserService = service.NewUserService(app.UserRepo)
	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.OrderProducer != nil {
			log.Printf("Closing order event producer...")
			if err := app.OrderProducer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("order event producer shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis client shutdown error: %v", err)
			}
		}

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
