package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Storage struct {
		Driver  string `mapstructure:"driver"`
		Key     string `mapstructure:"key"`
		DataDir string `mapstructure:"data_dir"`
	} `mapstructure:"storage"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
		Folder    string `mapstructure:"folder"`
	} `mapstructure:"cloudinary"`
	AI struct {
		GeminiAPIKey string `mapstructure:"gemini_api_key"`
		GeminiModel  string `mapstructure:"gemini_model"`
	} `mapstructure:"ai"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
}

// LoadConfig reads .env, an optional config.yaml from paths (default "."),
// then environment variables, which win.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("storage.driver", StorageFile)
	v.SetDefault("storage.key", "profileData")
	v.SetDefault("storage.data_dir", "./data")
	v.SetDefault("cloudinary.folder", "dynamic-profile")
	v.SetDefault("ai.gemini_model", "gemini-2.5-flash")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.key", "STORAGE_KEY")
	v.BindEnv("storage.data_dir", "STORAGE_DATA_DIR")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	v.BindEnv("cloudinary.folder", "CLOUDINARY_FOLDER")

	v.BindEnv("ai.gemini_api_key", "GEMINI_API_KEY")
	v.BindEnv("ai.gemini_model", "AI_GEMINI_MODEL")
	v.BindEnv("tracing.otlp_endpoint", "TRACING_OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	return
}
