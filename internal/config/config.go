package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		App                App      `mapstructure:"app"`
		SecretKey          string   `mapstructure:"secret_key"`
		NewRelicLicenseKey string   `mapstructure:"new_relic_license_key"`
		Postgres           Postgres `mapstructure:"postgres"`
		Redis              Redis    `mapstructure:"redis"`

		Panel              PanelConfig              `mapstructure:"panel"`
		Sync               SyncConfig               `mapstructure:"sync"`
		MessageBroker      MessageBroker            `mapstructure:"message_broker"`
		ExponentialBackoff ExponentialBackOffConfig `mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `mapstructure:"env"`
		HTTPPort        int           `mapstructure:"http_port"`
		HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `mapstructure:"graceful_timeout"`
		Name            string        `mapstructure:"name"`
		LogLevel        string        `mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `mapstructure:"write"`
		Read  Database `mapstructure:"read"`
	}

	Database struct {
		DbHost            string `mapstructure:"db_host"`
		DbPort            string `mapstructure:"db_port"`
		DbUser            string `mapstructure:"db_user"`
		DbPass            string `mapstructure:"db_pass"`
		DbName            string `mapstructure:"db_name"`
		MaxOpenConnection int    `mapstructure:"max_open_connections"`
		MaxIdleConnection int    `mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Db       int    `mapstructure:"db"`
	}

	// PanelConfig describes the third-party transaction panel endpoint.
	PanelConfig struct {
		BaseURL          string        `mapstructure:"base_url"`
		AuthPath         string        `mapstructure:"auth_path"`
		TransactionsPath string        `mapstructure:"transactions_path"`
		Timeout          time.Duration `mapstructure:"timeout"`
		SessionTTL       time.Duration `mapstructure:"session_ttl"`
	}

	SyncConfig struct {
		// ConcurrentRequests bounds how many cabinets of one order are
		// synced in parallel. Chunks are processed sequentially with
		// ChunkDelay between them so the panel is never hammered.
		ConcurrentRequests int           `mapstructure:"concurrent_requests"`
		ChunkDelay         time.Duration `mapstructure:"chunk_delay"`
		CabinetTimeout     time.Duration `mapstructure:"cabinet_timeout"`
		StaleAfter         time.Duration `mapstructure:"stale_after"`
		DefaultPages       int           `mapstructure:"default_pages"`
	}

	MessageBroker struct {
		Enabled       bool           `mapstructure:"enabled"`
		KafkaProducer ProducerConfig `mapstructure:"kafka_producer"`
		KafkaConsumer ConsumerConfig `mapstructure:"kafka_consumer"`
	}

	ProducerConfig struct {
		Brokers        []string `mapstructure:"brokers"`
		TopicSyncOrder string   `mapstructure:"topic_sync_order"`
	}

	ConsumerConfig struct {
		Brokers                []string `mapstructure:"brokers"`
		IsVerbose              bool     `mapstructure:"is_verbose"`
		IsOldest               bool     `mapstructure:"is_oldest"`
		Assignor               string   `mapstructure:"assignor"`
		TopicSyncOrder         string   `mapstructure:"topic_sync_order"`
		ConsumerGroupSyncOrder string   `mapstructure:"consumer_group_sync_order"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `mapstructure:"max_retries"`
		MaxBackoffTime    time.Duration `mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `mapstructure:"backoff_multiplier"`
		InitialInterval   time.Duration `mapstructure:"initial_interval"`
	}
)

const envPrefix = "GO_CABINET_SYNC"

// Load reads config.yaml from the usual search paths and lets
// GO_CABINET_SYNC_* environment variables override any key.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/config")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// config file is optional, env-only deployments are fine
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "go-cabinet-sync")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http_port", 9567)
	v.SetDefault("app.graceful_timeout", 10*time.Second)
	v.SetDefault("app.log_level", "info")

	v.SetDefault("panel.auth_path", "/api/auth/login")
	v.SetDefault("panel.transactions_path", "/api/transactions")
	v.SetDefault("panel.timeout", 30*time.Second)
	v.SetDefault("panel.session_ttl", 15*time.Minute)

	v.SetDefault("sync.concurrent_requests", 3)
	v.SetDefault("sync.chunk_delay", 2*time.Second)
	v.SetDefault("sync.cabinet_timeout", 5*time.Minute)
	v.SetDefault("sync.stale_after", 30*time.Minute)
	v.SetDefault("sync.default_pages", 10)

	v.SetDefault("exponential_backoff.max_retries", 5)
	v.SetDefault("exponential_backoff.initial_interval", 500*time.Millisecond)
	v.SetDefault("exponential_backoff.backoff_multiplier", 2.0)
}
