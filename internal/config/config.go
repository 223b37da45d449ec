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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	ReportEmail ReportEmail `mapstructure:",squash"`
	SendGrid    SendGrid    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// ReportEmail controla o agendamento do envio do relatório consolidado.
type ReportEmail struct {
	CronSchedule  string   `mapstructure:"report_email_cron"`
	Enabled       bool     `mapstructure:"report_email_enabled"`
	SetorFiltro   []string `mapstructure:"report_email_setores"`
	SelectedMonth string   `mapstructure:"report_email_month"`
}

type SendGrid struct {
	APIKey     string   `mapstructure:"sendgrid_api_key"`
	FromEmail  string   `mapstructure:"sendgrid_from_email"`
	FromName   string   `mapstructure:"sendgrid_from_name"`
	Recipients []string `mapstructure:"report_email_recipients"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pcm")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Relatório por e-mail no primeiro dia útil de cada mês às 7h
	viper.SetDefault("REPORT_EMAIL_CRON", "0 7 1 * *")
	viper.SetDefault("REPORT_EMAIL_ENABLED", false)
	viper.SetDefault("REPORT_EMAIL_SETORES", "")
	viper.SetDefault("REPORT_EMAIL_MONTH", "")

	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("SENDGRID_FROM_EMAIL", "relatorios@pcm.local")
	viper.SetDefault("SENDGRID_FROM_NAME", "Indicadores PCM")
	viper.SetDefault("REPORT_EMAIL_RECIPIENTS", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	config.ReportEmail.SetorFiltro = dropEmpty(config.ReportEmail.SetorFiltro)
	config.SendGrid.Recipients = dropEmpty(config.SendGrid.Recipients)

	return config, nil
}

// dropEmpty remove entradas vazias deixadas pelo split de uma variável não
// configurada.
func dropEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
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
