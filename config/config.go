package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App             AppConfig             `envconfig:"APP"`
	HttpServer      HttpServerConfig      `envconfig:"HTTP_SERVER"`
	Database        DatabaseConfig        `envconfig:"DATABASE"`
	Redis           RedisConfig           `envconfig:"REDIS"`
	HttpClient      HttpClientConfig      `envconfig:"HTTP_CLIENT"`
	MessageStream   MessageStreamConfig   `envconfig:"MESSAGE_STREAM"`
	UserService     UserServiceConfig     `envconfig:"USER_SERVICE"`
	PaymentProvider PaymentProviderConfig `envconfig:"PAYMENT_PROVIDER"`
	Engine          EngineConfig          `envconfig:"ENGINE"`
}

type AppConfig struct {
	Env              string `envconfig:"ENV" default:"development"`
	EnableMonitoring bool   `envconfig:"ENABLE_MONITORING" default:"false"`
	MonitoringPort   string `envconfig:"MONITORING_PORT" default:"8081"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"5432"`
	Username     string `envconfig:"USERNAME" default:"postgres"`
	Password     string `envconfig:"PASSWORD"`
	DBName       string `envconfig:"DB_NAME" default:"booking_engine"`
	SSLMode      string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"5"`
	AutoMigrate  bool   `envconfig:"AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type HttpClientConfig struct {
	// Type selects the breaker: "consecutive", "rate" or "threshold".
	Type      string        `envconfig:"TYPE" default:"consecutive"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"5s"`
	Threshold int64         `envconfig:"THRESHOLD" default:"5"`
	Rate      float64       `envconfig:"RATE" default:"0.5"`
	MinSample int64         `envconfig:"MIN_SAMPLE" default:"10"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
	// ExchangeName is used as the durable queue prefix.
	ExchangeName string `envconfig:"EXCHANGE_NAME" default:"booking_engine"`
}

type UserServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8000"`
}

type PaymentProviderConfig struct {
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:9000"`
	APIKey  string `envconfig:"API_KEY"`
}

type EngineConfig struct {
	NegativeBalanceLimit     float64       `envconfig:"NEGATIVE_BALANCE_LIMIT" default:"500"`
	PhotographerShareRatio   float64       `envconfig:"PHOTOGRAPHER_SHARE_RATIO" default:"0.6"`
	HomeCity                 string        `envconfig:"HOME_CITY" default:"Curitiba"`
	TimeZone                 string        `envconfig:"TIMEZONE" default:"America/Sao_Paulo"`
	SlotCacheTTL             time.Duration `envconfig:"SLOT_CACHE_TTL" default:"15s"`
	LockExpiry               time.Duration `envconfig:"LOCK_EXPIRY" default:"10s"`
	WeatherInsuranceDiscount float64       `envconfig:"WEATHER_INSURANCE_DISCOUNT" default:"50"`
	ChargeDueHours           int           `envconfig:"CHARGE_DUE_HOURS" default:"24"`
}

// Location resolves the engine time zone, falling back to UTC.
func (c EngineConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func InitConfig() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}
