package config

import (
	"errors"

	"Club_Manager/internal/pkg"

	"github.com/spf13/viper"
)

type Config struct {
	Addr          string
	Debug         bool
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AccessSecret  string
	RefreshSecret string
	SMTP          pkg.SMTPConfig
	Kafka         pkg.KafkaConfig
}

// Get 读取 ./config.yaml，文件不存在时退回默认值
func Get() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.debug", true)
	viper.SetDefault("mysql.dsn", "user:password@tcp(127.0.0.1:3306)/clubs?charset=utf8mb4&parseTime=True")
	viper.SetDefault("redis.addr", "127.0.0.1:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.access-secret", "secret-key")
	viper.SetDefault("jwt.refresh-secret", "refresh-key")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("kafka.topic", "club-payments")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Addr:          viper.GetString("server.addr"),
		Debug:         viper.GetBool("server.debug"),
		MySQLDSN:      viper.GetString("mysql.dsn"),
		RedisAddr:     viper.GetString("redis.addr"),
		RedisPassword: viper.GetString("redis.password"),
		RedisDB:       viper.GetInt("redis.db"),
		AccessSecret:  viper.GetString("jwt.access-secret"),
		RefreshSecret: viper.GetString("jwt.refresh-secret"),
		SMTP: pkg.SMTPConfig{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.username"),
			Password: viper.GetString("smtp.password"),
			From:     viper.GetString("smtp.from"),
		},
		Kafka: pkg.KafkaConfig{
			Brokers: viper.GetStringSlice("kafka.brokers"),
			Topic:   viper.GetString("kafka.topic"),
		},
	}, nil
}
