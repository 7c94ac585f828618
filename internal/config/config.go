package config

import "github.com/spf13/viper"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば最優先のDSN
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	JWTSecret string // JWT署名シークレット
}

// Loadは環境変数から設定を読む。未設定はdev向けデフォルト。
func Load() Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "app")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.AutomaticEnv()

	return Config{
		Port: viper.GetString("PORT"),

		DatabaseURL:      viper.GetString("DATABASE_URL"),
		PostgresHost:     viper.GetString("POSTGRES_HOST"),
		PostgresPort:     viper.GetString("POSTGRES_PORT"),
		PostgresUser:     viper.GetString("POSTGRES_USER"),
		PostgresPassword: viper.GetString("POSTGRES_PASSWORD"),
		PostgresDB:       viper.GetString("POSTGRES_DB"),
		PostgresSSLMode:  viper.GetString("POSTGRES_SSLMODE"),

		JWTSecret: viper.GetString("JWT_SECRET"),
	}
}

// Addrは ":8080" 形式で返す
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] != ':' {
		return ":" + c.Port
	}
	return c.Port
}
