package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	RosterSource       string
	RosterConfigPath   string
	Timezone           string
	AnnounceChannel    string
	ScheduleDays       int
	FetchTimeout       time.Duration
	LogLevel           string
	Env                string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./roster.db"),
		Port:               getEnv("PORT", "3000"),
		RosterSource:       getEnv("ROSTER_SOURCE", "schedule.csv"),
		RosterConfigPath:   getEnv("ROSTER_CONFIG", "roster.toml"),
		Timezone:           getEnv("TIMEZONE", "Europe/Moscow"),
		AnnounceChannel:    getEnv("ANNOUNCE_CHANNEL", ""),
		ScheduleDays:       getEnvInt("SCHEDULE_DAYS", 7),
		FetchTimeout:       getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Env:                getEnv("APP_ENV", "development"),
	}
}

// Location resolves the configured timezone. Day headers and interval times
// in the table are read as wall-clock times of this location.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
