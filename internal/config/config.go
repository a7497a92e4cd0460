package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Dataset   Dataset   `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Debug    bool   `mapstructure:"app_debug"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Dataset struct {
	Source           string `mapstructure:"data_source"` // csv ou postgres
	TransactionsFile string `mapstructure:"transactions_file"`
	RulesFile        string `mapstructure:"rules_file"`
}

type Dashboard struct {
	Title         string `mapstructure:"dashboard_title"`
	TopItemsLimit int    `mapstructure:"top_items_limit"`
	TopRulesLimit int    `mapstructure:"top_rules_limit"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8050)
	viper.SetDefault("ALLOWED_ORIGINS", "")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_DEBUG", true) // Equivalente ao modo debug do servidor de desenvolvimento

	viper.SetDefault("DATA_SOURCE", "csv")
	viper.SetDefault("TRANSACTIONS_FILE", "Bakery_cleaned.csv")
	viper.SetDefault("RULES_FILE", "apriori_rules.csv")

	viper.SetDefault("DASHBOARD_TITLE", "Bakery Sales Dashboard (65+ Users)")
	viper.SetDefault("TOP_ITEMS_LIMIT", 10)
	viper.SetDefault("TOP_RULES_LIMIT", 10)

	// Só usados quando DATA_SOURCE=postgres
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bakery?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica as combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	c.Dataset.Source = strings.ToLower(strings.TrimSpace(c.Dataset.Source))

	switch c.Dataset.Source {
	case "csv":
		if c.Dataset.TransactionsFile == "" || c.Dataset.RulesFile == "" {
			return fmt.Errorf("config: TRANSACTIONS_FILE e RULES_FILE são obrigatórios com DATA_SOURCE=csv")
		}
	case "postgres":
	default:
		return fmt.Errorf("config: DATA_SOURCE inválido: %q (valores aceitos: csv, postgres)", c.Dataset.Source)
	}

	if c.Dashboard.TopItemsLimit <= 0 || c.Dashboard.TopRulesLimit <= 0 {
		return fmt.Errorf("config: TOP_ITEMS_LIMIT e TOP_RULES_LIMIT devem ser maiores que zero")
	}

	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.AllowedOrigins = origins

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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
