package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName     string
	Port        string
	Env         string
	Debug       bool
	FrontEndURL string
	MediaDir    string
	MediaURL    string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:     os.Getenv("APP_NAME"),
			Port:        os.Getenv("PORT"),
			Env:         os.Getenv("APP_ENV"),
			Debug:       os.Getenv("DEBUG") == "true",
			FrontEndURL: GetEnv("FRONT_END_URL", "http://localhost:3000"),
			MediaDir:    GetEnv("MEDIA_DIR", "media"),
			MediaURL:    GetEnv("MEDIA_URL", "/media/"),
		}
	})
}
