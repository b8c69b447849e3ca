package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	// ErrMissingDatabaseURL é retornado quando POSTGRES_URL não foi informado
	ErrMissingDatabaseURL = errors.New("POSTGRES_URL é obrigatório")

	// ErrInsecureAuthSecret é retornado quando AUTH_SECRET está vazio ou com o
	// valor padrão fora do nível debug
	ErrInsecureAuthSecret = errors.New("AUTH_SECRET precisa ser definido fora do ambiente de desenvolvimento")
)

// DefaultAuthSecret só é aceito com LOG_LEVEL=debug
const DefaultAuthSecret = "your_secret_key"

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	InvoiceCache InvoiceCache `mapstructure:",squash"`
	LoginLimit   LoginLimit   `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	URL           string `mapstructure:"postgres_url"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	SessionTTL    time.Duration `mapstructure:"auth_session_ttl"`
	SecureCookies bool          `mapstructure:"auth_secure_cookies"`
}

// InvoiceCache controla o cache da listagem de faturas
type InvoiceCache struct {
	Size int           `mapstructure:"invoice_cache_size"`
	TTL  time.Duration `mapstructure:"invoice_cache_ttl"`
}

// LoginLimit controla o limitador de tentativas de login por IP
type LoginLimit struct {
	RatePerSecond float64       `mapstructure:"login_rate_per_second"`
	Burst         int           `mapstructure:"login_rate_burst"`
	CleanupCron   string        `mapstructure:"limiter_cleanup_cron"`
	IdleTimeout   time.Duration `mapstructure:"limiter_idle_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("POSTGRES_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", true)

	viper.SetDefault("AUTH_SECRET", DefaultAuthSecret)
	viper.SetDefault("AUTH_SESSION_TTL", "24h")
	viper.SetDefault("AUTH_SECURE_COOKIES", false)

	viper.SetDefault("INVOICE_CACHE_SIZE", 256)
	viper.SetDefault("INVOICE_CACHE_TTL", "5m")

	viper.SetDefault("LOGIN_RATE_PER_SECOND", 1)
	viper.SetDefault("LOGIN_RATE_BURST", 5)
	viper.SetDefault("LIMITER_CLEANUP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("LIMITER_IDLE_TIMEOUT", "30m")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os valores obrigatórios
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}

	if c.Auth.Secret == "" {
		return ErrInsecureAuthSecret
	}

	if c.Auth.Secret == DefaultAuthSecret && !strings.EqualFold(c.App.LogLevel, "debug") {
		return ErrInsecureAuthSecret
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
