package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName      string
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		Build        string
		SecretKey    string
		RollbarToken string
		LogDir       string

		Server ServerConfig
		API    APIConfig
	}

	ServerConfig struct {
		Host                   string
		ShutdownTimeout        time.Duration
		SessionExpirationDelta time.Duration
	}

	// APIConfig points at the school management REST backend that this
	// frontend consumes.
	APIConfig struct {
		BaseURL string
		Timeout time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Shule")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "w3p$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy-shule")
	v.SetDefault("logDir", "./logs")
	v.SetDefault("serverHost", ":3000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("sessionExpirationDelta", 7*24*time.Hour)
	v.SetDefault("apiBaseURL", "http://localhost:8000/api")
	v.SetDefault("apiTimeout", 30*time.Second)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Build:        v.GetString("build"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
		LogDir:       v.GetString("logDir"),
		Server: ServerConfig{
			Host:                   v.GetString("serverHost"),
			ShutdownTimeout:        v.GetDuration("serverShutdownTimeout"),
			SessionExpirationDelta: v.GetDuration("sessionExpirationDelta"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("apiBaseURL"), "/"),
			Timeout: v.GetDuration("apiTimeout"),
		},
	}
}
