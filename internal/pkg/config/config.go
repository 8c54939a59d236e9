package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Logger     Logger     `yaml:"logger"`
	PostgresDB PostgresDB `yaml:"db"`
	Auth       Auth       `yaml:"auth"`
	TokenStore TokenStore `yaml:"rdb"`
	Storage    Storage    `yaml:"storage"`
}

type Server struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	IdleTimeout    time.Duration `yaml:"idleTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
	TrustProxy     bool          `yaml:"trustProxy"`
	RateLimit      RateLimit     `yaml:"rateLimit"`
	MaxUploadSize  int64         `env-default:"5242880" yaml:"maxUploadSize"`
}

// RateLimit applies to the credential endpoints only. Zero RPS disables it.
type RateLimit struct {
	RPS   float64       `yaml:"rps"`
	Burst int           `yaml:"burst"`
	Idle  time.Duration `yaml:"idle"`
}

type Logger struct {
	Level     string   `yaml:"level"`
	Output    []string `yaml:"output"`
	ErrOutput []string `yaml:"errOutput"`
}

type PostgresDB struct {
	Addr     string `yaml:"addr"`
	Username string `env:"POSTGRES_USER"     env-required:"true" yaml:"username"`
	Password string `env:"POSTGRES_PASSWORD" yaml:"password"`
	DB       string `env:"POSTGRES_DB"       env-required:"true" yaml:"db"`
	SSLmode  string `yaml:"sslmode"`
	MaxConns string `yaml:"maxConns"`
	Reload   bool   `yaml:"reload"`
	Version  int    `yaml:"version"`
}

type Auth struct {
	TTL    time.Duration `yaml:"ttl"`
	Secret string        `env:"SECRET" env-required:"true" yaml:"secret"`
}

type TokenStore struct {
	Addr     string `yaml:"addr"`
	Password string `env:"REDIS_PASSWORD" yaml:"password"`
	DB       int    `yaml:"db"`
}

// Storage describes an S3 compatible bucket for recipe pictures.
// An empty Bucket disables uploads.
type Storage struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PublicURL string `yaml:"publicURL"`
	AccessKey string `env:"S3_ACCESS_KEY" yaml:"accessKey"`
	SecretKey string `env:"S3_SECRET_KEY" yaml:"secretKey"`
	PathStyle bool   `yaml:"pathStyle"`
}

func (s Storage) Enabled() bool {
	return s.Bucket != ""
}

func New(configPath string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config error: %w", err)
	}

	return cfg, nil
}
