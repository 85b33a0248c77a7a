package util

import (
	"log/slog"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is worldloom base configuration
type Config struct {
	Server    Server    `yaml:"server"`
	Worldloom Worldloom `yaml:"worldloom"`
}

type Server struct {
	Bind          string `yaml:"bind"`
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Worldloom struct {
	FQDN      string   `yaml:"fqdn"`
	JwtSecret string   `yaml:"jwtSecret"`
	JwtIssuer string   `yaml:"jwtIssuer"`
	Admins    []string `yaml:"admins"`
}

// Load loads worldloom config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open configuration file", slog.String("error", err.Error()))
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		slog.Error("failed to parse configuration file", slog.String("error", err.Error()))
		return err
	}

	return nil
}
