package main

import "os"

type Config struct {
	Port         string
	DBPath       string // empty disables the forecast cache
	OpenMeteoURL string // override for tests or self-hosted instances
}

func loadConfig() Config {
	return Config{
		Port:         getenv("PORT", "8080"),
		DBPath:       getenv("AGROWEATHER_DB", "agroweather.db"),
		OpenMeteoURL: os.Getenv("OPEN_METEO_URL"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
