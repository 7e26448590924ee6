package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Mongo       MongoConfig
	Storage     StorageConfig
	Idempotency IdempotencyConfig
	Auth        AuthConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Printer     PrinterConfig
	Log         LogConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type MongoConfig struct {
	URI              string
	Database         string
	OrdersDatabase   string
	SalesCollection  string
	OrdersCollection string
	Timeout          time.Duration
}

type StorageConfig struct {
	UseFile bool
	DataDir string
}

type IdempotencyConfig struct {
	Driver          string
	DSN             string
	TTL             time.Duration
	CleanupInterval time.Duration
}

// AuthConfig verifies tokens handed over by the sibling login app.
// An empty Secret disables authentication.
type AuthConfig struct {
	Secret   string
	Audience string
	Issuer   string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrinterConfig struct {
	Type         string // device, network or none
	DevicePath   string
	Address      string
	Width        int
	StoreName    string
	StoreAddress string
	StorePhone   string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Warnf(".env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "fng-sales-api")
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "fng-app")
	viper.SetDefault("ORDERS_DB_NAME", "fng-login")
	viper.SetDefault("SALES_COLLECTION", "sales")
	viper.SetDefault("ORDERS_COLLECTION", "orders")
	viper.SetDefault("MONGODB_TIMEOUT_SECONDS", 15)
	viper.SetDefault("USE_FILE_STORAGE", false)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("IDEMPOTENCY_DB_DRIVER", "sqlite")
	viper.SetDefault("IDEMPOTENCY_DB_DSN", "")
	viper.SetDefault("IDEMPOTENCY_TTL_HOURS", 24)
	viper.SetDefault("IDEMPOTENCY_CLEANUP_MINUTES", 60)
	viper.SetDefault("CROSS_APP_JWT_SECRET", "")
	viper.SetDefault("CROSS_APP_AUDIENCE", "fng-app")
	viper.SetDefault("CROSS_APP_ISSUER", "fng-login-app")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_METHODS", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
	viper.SetDefault("CORS_ALLOWED_HEADERS", "")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_DEVICE", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("STORE_NAME", "Froze and Grill")
	viper.SetDefault("STORE_ADDRESS", "")
	viper.SetDefault("STORE_PHONE", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	dataDir := viper.GetString("DATA_DIR")
	dsn := viper.GetString("IDEMPOTENCY_DB_DSN")
	if dsn == "" {
		dsn = filepath.Join(dataDir, "idempotency.db")
	}

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Mongo: MongoConfig{
			URI:              viper.GetString("MONGODB_URI"),
			Database:         viper.GetString("DB_NAME"),
			OrdersDatabase:   viper.GetString("ORDERS_DB_NAME"),
			SalesCollection:  viper.GetString("SALES_COLLECTION"),
			OrdersCollection: viper.GetString("ORDERS_COLLECTION"),
			Timeout:          time.Duration(viper.GetInt("MONGODB_TIMEOUT_SECONDS")) * time.Second,
		},
		Storage: StorageConfig{
			UseFile: viper.GetBool("USE_FILE_STORAGE"),
			DataDir: dataDir,
		},
		Idempotency: IdempotencyConfig{
			Driver:          strings.ToLower(viper.GetString("IDEMPOTENCY_DB_DRIVER")),
			DSN:             dsn,
			TTL:             time.Duration(viper.GetInt("IDEMPOTENCY_TTL_HOURS")) * time.Hour,
			CleanupInterval: time.Duration(viper.GetInt("IDEMPOTENCY_CLEANUP_MINUTES")) * time.Minute,
		},
		Auth: AuthConfig{
			Secret:   viper.GetString("CROSS_APP_JWT_SECRET"),
			Audience: viper.GetString("CROSS_APP_AUDIENCE"),
			Issuer:   viper.GetString("CROSS_APP_ISSUER"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods: splitList(viper.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders: splitList(viper.GetString("CORS_ALLOWED_HEADERS")),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:         strings.ToLower(viper.GetString("PRINTER_TYPE")),
			DevicePath:   viper.GetString("PRINTER_DEVICE"),
			Address:      viper.GetString("PRINTER_ADDRESS"),
			Width:        viper.GetInt("PRINTER_WIDTH"),
			StoreName:    viper.GetString("STORE_NAME"),
			StoreAddress: viper.GetString("STORE_ADDRESS"),
			StorePhone:   viper.GetString("STORE_PHONE"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}
}

// FileMode reports whether the file backend serves every call.
// Development runs never touch MongoDB.
func (c *Config) FileMode() bool {
	return c.Storage.UseFile || strings.EqualFold(c.App.Env, "development") || c.Mongo.URI == ""
}

// SalesFile is the file backend location for sales
func (c *StorageConfig) SalesFile() string {
	return filepath.Join(c.DataDir, "sales.json")
}

// OrdersFile is the file backend location for kitchen orders
func (c *StorageConfig) OrdersFile() string {
	return filepath.Join(c.DataDir, "orders.json")
}

// splitList reads a comma separated setting
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
