package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	SwaggerEnabled bool
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type JWTConfig struct {
	Key string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	// Origin é a lista de origens permitidas separadas por vírgula,
	// compartilhada entre o REST e o websocket
	Origin string
}

type StorageConfig struct {
	Dir string
}

// Load carrega as configurações do arquivo .env e do ambiente.
// Variáveis de ambiente têm precedência sobre o arquivo.
func Load() (*Config, error) {
	// .env é opcional em produção
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("ORIGIN", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_DIR", "storage")
	viper.SetDefault("SWAGGER_ENABLED", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:           viper.GetString("PORT"),
			Host:           viper.GetString("HOST"),
			SwaggerEnabled: viper.GetBool("SWAGGER_ENABLED"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		JWT: JWTConfig{
			Key: viper.GetString("JWT_KEY"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			Origin: viper.GetString("ORIGIN"),
		},
		Storage: StorageConfig{
			Dir: viper.GetString("STORAGE_DIR"),
		},
	}

	if config.JWT.Key == "" {
		return nil, fmt.Errorf("JWT_KEY is required")
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
