// Package config предоставляет структуры и функцию для загрузки конфига сервисов.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура настроек для обоих сервисов.
// Сервис back-office использует только секции хранилища и HTTP-сервера,
// сервис rental — дополнительно адрес back-office и подключение к RabbitMQ.
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path"`
	BackOfficeURL           string `yaml:"back_office_url"`
	HTTPServer              `yaml:"http_server"`
	Rabbit                  `yaml:"rabbit"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Rabbit структура для настройки подключения к RabbitMQ.
// Пустой URL означает, что публикация событий аренды отключена.
type Rabbit struct {
	RabbitURL     string        `yaml:"rabbit_url"`
	RabbitRetries int           `yaml:"rabbit_retries" env-default:"5"`
	RabbitDelay   time.Duration `yaml:"rabbit_delay" env-default:"2s"`
}

// MustLoad загружает конфиг по пути из переменной окружения CONFIG_PATH.
// Завершает процесс, если файл отсутствует или не читается.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageConnectionString: %s\n"+
			"MigrationsPath: %s\n"+
			"BackOfficeURL: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Rabbit:\n"+
			"  URL: %s\n"+
			"  Retries: %d\n"+
			"  Delay: %s\n",
		c.Env,
		c.StorageConnectionString,
		c.MigrationsPath,
		c.BackOfficeURL,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.RabbitURL,
		c.RabbitRetries,
		c.RabbitDelay,
	)
}
