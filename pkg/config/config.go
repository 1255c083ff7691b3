package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries every path and secret the services need. It is built once
// in main and passed into constructors explicitly, so tests can point
// components at temp directories without touching the process environment.
type Config struct {
	ContentDir      string
	SubscribersFile string
	TopicsFile      string

	SiteURL   string
	SiteTitle string

	EmailFrom    string
	ResendAPIKey string
	NotifySecret string

	ListenAddr string
}

// TopicStyle is the optional per-topic display metadata from topics.yaml.
type TopicStyle struct {
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return &Config{
		ContentDir:      getEnv("CONTENT_DIR", "./content/posts"),
		SubscribersFile: getEnv("SUBSCRIBERS_FILE", "./data/subscribers.json"),
		TopicsFile:      getEnv("TOPICS_FILE", "./config/topics.yaml"),

		SiteURL:   getEnv("SITE_URL", "http://localhost:8080"),
		SiteTitle: getEnv("SITE_TITLE", "Bryce's Journal"),

		EmailFrom:    getEnv("EMAIL_FROM", "noreply@localhost"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		NotifySecret: os.Getenv("NOTIFY_SECRET"),

		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
	}
}

// LoadTopicStyles reads the optional topics.yaml mapping topic names to
// icons and colors. A missing file is not an error: the site simply renders
// topics without decoration.
func (c *Config) LoadTopicStyles() (map[string]TopicStyle, error) {
	content, err := os.ReadFile(c.TopicsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]TopicStyle{}, nil
		}
		return nil, fmt.Errorf("read topics config: %w", err)
	}

	var styles map[string]TopicStyle
	if err := yaml.Unmarshal(content, &styles); err != nil {
		return nil, fmt.Errorf("parse topics config: %w", err)
	}
	if styles == nil {
		styles = map[string]TopicStyle{}
	}
	return styles, nil
}
