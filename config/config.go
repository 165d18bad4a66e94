package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTP — параметры HTTP-сервера.
type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"2m" envconfig:"HANDLER_TIMEOUT"`
	StaticDir         string        `default:"" envconfig:"STATIC_DIR"`
	GracefulTimeout   time.Duration `default:"10s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Tracing — параметры OTLP-трассировки.
type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"dayplan-app" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Kakao — доступ к поисковому API мест.
type Kakao struct {
	APIKey  string        `default:"" envconfig:"API_KEY"`
	BaseURL string        `default:"https://dapi.kakao.com" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"5s" envconfig:"TIMEOUT"`
}

// Generator — параметры текстовой генерации (Ollama).
type Generator struct {
	BaseURL        string        `default:"http://localhost:11434" envconfig:"BASE_URL"`
	RouteModel     string        `default:"phi3.5" envconfig:"ROUTE_MODEL"`
	NarrativeModel string        `default:"qwen2.5" envconfig:"NARRATIVE_MODEL"`
	Timeout        time.Duration `default:"2m" envconfig:"TIMEOUT"`
}

// Cache — кэш результатов агрегации.
type Cache struct {
	MaxEntries int           `default:"50" envconfig:"MAX_ENTRIES"`
	TTL        time.Duration `default:"1h" envconfig:"TTL"`
}

// RateLimit — ограничитель исходящих поисковых вызовов.
type RateLimit struct {
	MaxCalls int           `default:"100" envconfig:"MAX_CALLS"`
	Window   time.Duration `default:"60s" envconfig:"WINDOW"`
}

// Search — конвейер сбора кандидатов.
type Search struct {
	RadiusMeters     int           `default:"2000" envconfig:"RADIUS_METERS"`
	BatchSize        int           `default:"3" envconfig:"BATCH_SIZE"`
	BatchPause       time.Duration `default:"200ms" envconfig:"BATCH_PAUSE"`
	PerCategoryLimit int           `default:"15" envconfig:"PER_CATEGORY_LIMIT"`
	PoolSize         int           `default:"20" envconfig:"POOL_SIZE"`
}

// Logger — режим логгера.
type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP      HTTP
	Tracing   Tracing
	Kakao     Kakao
	Generator Generator
	Cache     Cache
	RateLimit RateLimit
	Search    Search
	Logger    Logger
}

// Load — конфигурация из окружения с префиксом DAYPLAN.
func Load() (Config, error) {
	return LoadWithPrefix("DAYPLAN")
}

// LoadWithPrefix — то же с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
