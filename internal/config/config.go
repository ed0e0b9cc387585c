package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type LoggingConfig struct {
	Directory string `yaml:"directory"`
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers"`
	GroupID       string   `yaml:"groupId"`
	InboundTopic  string   `yaml:"inboundTopic"`
	OutboundTopic string   `yaml:"outboundTopic"`
}

// RedisConfig selects the schedule store. An empty Addr keeps records in process memory.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"keyPrefix"`
}

type SecurityConfig struct {
	JWTSecret    string `yaml:"jwtSecret"`
	JWTPublicKey string `yaml:"jwtPublicKey"`
}

type BadgeConfig struct {
	RefreshInterval time.Duration `yaml:"refreshInterval"`
	Locale          string        `yaml:"locale"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Redis    RedisConfig    `yaml:"redis"`
	Security SecurityConfig `yaml:"security"`
	Badge    BadgeConfig    `yaml:"badge"`
}

func defaults() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		Logging: LoggingConfig{Directory: "./logs", Level: "info", Format: "text"},
		Kafka: KafkaConfig{
			GroupID:       "negocios-horarios",
			InboundTopic:  "listings.hours",
			OutboundTopic: "hours.updated",
		},
		Badge: BadgeConfig{RefreshInterval: time.Minute, Locale: "es"},
	}
}

// Load builds the configuration from defaults, the optional YAML file named by CONFIG_FILE and
// environment variables, in that order of precedence.
func Load() (*Config, error) {
	cfg := defaults()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.overlayEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(buf, c); err != nil {
		return fmt.Errorf("parsing yaml %s: %w", path, err)
	}
	return nil
}

func (c *Config) overlayEnv() error {
	setString(&c.Server.Port, "PORT")
	setString(&c.Logging.Directory, "LOG_DIR")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")

	if brokers := splitList(os.Getenv("KAFKA_BROKERS")); len(brokers) > 0 {
		c.Kafka.Brokers = brokers
	} else if brokers := splitList(os.Getenv("KAFKA_BROKER")); len(brokers) > 0 {
		c.Kafka.Brokers = brokers
	}
	setString(&c.Kafka.GroupID, "KAFKA_GROUP_ID")
	setString(&c.Kafka.InboundTopic, "KAFKA_INBOUND_TOPIC")
	setString(&c.Kafka.OutboundTopic, "KAFKA_OUTBOUND_TOPIC")

	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Redis.KeyPrefix, "REDIS_KEY_PREFIX")
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		c.Redis.DB = db
	}

	setString(&c.Security.JWTSecret, "JWT_SECRET")
	setString(&c.Security.JWTPublicKey, "JWT_PUBLIC_KEY")

	if raw := strings.TrimSpace(os.Getenv("BADGE_REFRESH_INTERVAL")); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("BADGE_REFRESH_INTERVAL: %w", err)
		}
		c.Badge.RefreshInterval = interval
	}
	setString(&c.Badge.Locale, "BADGE_LOCALE")
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Badge.RefreshInterval < time.Second {
		return fmt.Errorf("badge refresh interval %s is below 1s", c.Badge.RefreshInterval)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("redis db %d is negative", c.Redis.DB)
	}
	return nil
}

func setString(target *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*target = value
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
