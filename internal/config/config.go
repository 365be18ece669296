package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN            string `mapstructure:"dsn"`
		MigrationsPath string `mapstructure:"migrations_path"`
		AutoMigrate    bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret            string        `mapstructure:"jwt_secret"`
		TokenLifespan        time.Duration `mapstructure:"token_lifespan"`
		RefreshTokenLifespan time.Duration `mapstructure:"refresh_token_lifespan"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Mail struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		// Operator receives contact notifications and is also the sender.
		Operator string `mapstructure:"operator"`
	} `mapstructure:"mail"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
	Site SiteBranding `mapstructure:"site"`
}

// SiteBranding holds the admin dashboard strings. Read once at startup.
type SiteBranding struct {
	Header     string `mapstructure:"header" json:"site_header"`
	Title      string `mapstructure:"title" json:"site_title"`
	IndexTitle string `mapstructure:"index_title" json:"index_title"`
}

func LoadConfig(path string) (cfg Config, err error) {
	v := viper.New()

	err = godotenv.Load(path + "/.env")
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8000")
	v.SetDefault("app.env", "development")
	v.SetDefault("db.migrations_path", "file://migrations")
	v.SetDefault("auth.token_lifespan", 5*time.Minute)
	v.SetDefault("auth.refresh_token_lifespan", 24*time.Hour)
	v.SetDefault("mail.port", 587)
	v.SetDefault("site.header", "Mudassir Admin Dashboard")
	v.SetDefault("site.title", "Portfolio Admin")
	v.SetDefault("site.index_title", "Welcome to My Portfolio Admin Panel")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("db.migrations_path", "DB_MIGRATIONS_PATH")
	v.BindEnv("db.auto_migrate", "DB_AUTO_MIGRATE")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	v.BindEnv("auth.refresh_token_lifespan", "REFRESH_TOKEN_LIFESPAN")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	v.BindEnv("mail.host", "EMAIL_HOST")
	v.BindEnv("mail.port", "EMAIL_PORT")
	v.BindEnv("mail.username", "EMAIL_HOST_USER")
	v.BindEnv("mail.password", "EMAIL_HOST_PASSWORD")
	v.BindEnv("mail.operator", "EMAIL_OPERATOR")

	v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	v.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	if err != nil {
		return
	}

	// Comma separated env values arrive as a single element.
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)
	if cfg.Mail.Operator == "" {
		cfg.Mail.Operator = cfg.Mail.Username
	}
	return
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
