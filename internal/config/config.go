package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	HMS          HMS          `mapstructure:",squash"`
	Hotel        Hotel        `mapstructure:",squash"`
	RevenueSync  RevenueSync  `mapstructure:",squash"`
	RevenueCache RevenueCache `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// HMS concentra os parâmetros de acesso ao backend hoteleiro remoto
type HMS struct {
	BaseURL            string `mapstructure:"hms_base_url"`
	AccessToken        string `mapstructure:"hms_access_token"`
	PointTimeoutSecs   int    `mapstructure:"hms_point_timeout_seconds"`
	ListTimeoutSecs    int    `mapstructure:"hms_list_timeout_seconds"`
	FailureThreshold   int    `mapstructure:"hms_failure_threshold"`
	CoolOffSeconds     int    `mapstructure:"hms_cooloff_seconds"`
	MaxConcurrentCalls int    `mapstructure:"hms_max_concurrent_calls"`
}

// Hotel são os dados institucionais impressos nos comprovantes exportados
type Hotel struct {
	Name    string `mapstructure:"hotel_name"`
	Address string `mapstructure:"hotel_address"`
	Phone   string `mapstructure:"hotel_phone"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type RevenueSync struct {
	CronSchedule        string `mapstructure:"revenue_sync_cron"`
	LookbackDays        int    `mapstructure:"revenue_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"revenue_sync_request_delay_seconds"`
	RetentionDays       int    `mapstructure:"revenue_sync_retention_days"`
	Enabled             bool   `mapstructure:"revenue_sync_enabled"`
}

type RevenueCache struct {
	TTLMinutes int  `mapstructure:"revenue_cache_ttl_minutes"`
	Enabled    bool `mapstructure:"revenue_cache_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/hotel")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("HMS_BASE_URL", "http://localhost:5000/api/v1")
	viper.SetDefault("HMS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("HMS_POINT_TIMEOUT_SECONDS", 15)
	viper.SetDefault("HMS_LIST_TIMEOUT_SECONDS", 20)
	viper.SetDefault("HMS_FAILURE_THRESHOLD", 3)
	viper.SetDefault("HMS_COOLOFF_SECONDS", 30)
	viper.SetDefault("HMS_MAX_CONCURRENT_CALLS", 5)

	viper.SetDefault("HOTEL_NAME", "Khách sạn Hoàng Gia")
	viper.SetDefault("HOTEL_ADDRESS", "123 Trần Hưng Đạo, Hà Nội")
	viper.SetDefault("HOTEL_PHONE", "(024) 3825 1234")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para sincronização e cache de receita
	viper.SetDefault("REVENUE_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("REVENUE_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("REVENUE_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("REVENUE_SYNC_RETENTION_DAYS", 400)
	viper.SetDefault("REVENUE_SYNC_ENABLED", false)

	viper.SetDefault("REVENUE_CACHE_TTL_MINUTES", 60)
	viper.SetDefault("REVENUE_CACHE_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
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
