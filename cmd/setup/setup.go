package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/graceful"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	cMetrics "github.com/pmatchdesk/go-cabinet-sync/internal/common/metrics"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/panel"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/publisher"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/retry"
	"github.com/pmatchdesk/go-cabinet-sync/internal/config"
	"github.com/pmatchdesk/go-cabinet-sync/internal/repositories"
	"github.com/pmatchdesk/go-cabinet-sync/internal/services"

	"github.com/Shopify/sarama"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
)

type Setup struct {
	Config       config.Config
	NewRelic     *newrelic.Application
	WriteDB      *sql.DB
	ReadDB       *sql.DB
	Cache        *redis.Client
	RepoCache    repositories.CacheRepository
	PanelClient  panel.Client
	SyncOrderPub publisher.Publisher
	Service      *services.Services
	Metrics      cMetrics.Metrics
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		err = fmt.Errorf("failed to load config: %w", err)
		return
	}

	log.Init(cfg.App.Name,
		log.WithLogLevel(cfg.App.LogLevel),
		log.WithLogEnvOption(cfg.App.Env),
		log.WithCaller(true),
		log.AddCallerSkip(1))

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	// metrics
	mtc := cMetrics.New()

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	if mtc != nil {
		// register DB write stat prometheus metrics
		err = mtc.RegisterDB(writeDB, cfg.App.Name+"-"+command+"-write", cfg.Postgres.Write.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}
		// register DB read stat prometheus metrics
		err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
		if err != nil {
			err = fmt.Errorf("failed register DB stat prometheus: %w", err)
			return
		}

		// register redis prometheus metrics
		err = mtc.RegisterRedis(cache, cfg.App.Name, command)
		if err != nil {
			err = fmt.Errorf("failed register redis prometheus: %w", err)
			return
		}
	}

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(cache)

	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)
	panelClient := panel.New(cfg.Panel, mtc, retryer, cacheRepo)

	var syncOrderPub publisher.Publisher
	if cfg.MessageBroker.Enabled {
		var producer sarama.SyncProducer
		producer, err = publisher.NewKafkaSyncProducer(cfg.MessageBroker.KafkaProducer.Brokers)
		if err != nil {
			err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

		syncOrderPub = publisher.NewPublisher(producer, cfg.MessageBroker.KafkaProducer.TopicSyncOrder, mtc)
	}

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		panelClient,
		syncOrderPub,
		mtc,
	)

	return &Setup{
		Config:       cfg,
		NewRelic:     newRelic,
		WriteDB:      writeDB,
		ReadDB:       readDB,
		Cache:        cache,
		RepoCache:    cacheRepo,
		PanelClient:  panelClient,
		SyncOrderPub: syncOrderPub,
		Service:      srv,
		Metrics:      mtc,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Error(ctx, "setupNR.NewApplication", log.Err(err))
			return nil
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			log.Error(ctx, "setupNR.WaitForConnection", log.Err(err))
		}
		return app
	}
	return nil
}
