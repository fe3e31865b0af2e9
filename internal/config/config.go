package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Model   ModelConfig   `yaml:"model"`
	Redis   RedisConfig   `yaml:"redis"`
	Speller SpellerConfig `yaml:"speller"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type ModelConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SpellerConfig struct {
	MaxSuggestions int `yaml:"max_suggestions"`
}

func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Model:   ModelConfig{Path: "telugu_word_model.json"},
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Speller: SpellerConfig{MaxSuggestions: 8},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is fine; a malformed one is not.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = getenv("HTTP_ADDR", c.Server.Addr)
	c.Model.Path = getenv("MODEL_PATH", c.Model.Path)
	c.Redis.Addr = getenv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getenv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getenvInt("REDIS_DB", c.Redis.DB)
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
