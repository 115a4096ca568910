package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jlkiri/tcpstub/sources"
)

const payloadFileEnv = "TCPSTUB_PAYLOAD_FILE"

type Config struct {
	Host           string `json:"host"`
	Port           int    `json:"port"`
	MaxConns       int64  `json:"max_conns"`
	ReadBufferSize int    `json:"read_buffer_size"`
	PayloadFile    string `json:"payload_file"`
}

func Default() Config {
	return Config{
		Host:           sources.DefaultHost,
		Port:           sources.DefaultPort,
		ReadBufferSize: sources.DefaultReadBufferSize,
		PayloadFile:    os.Getenv(payloadFileEnv),
	}
}

// Read loads a JSON config relative to the working directory. Fields missing
// from the file keep their defaults.
func Read(path string) (Config, error) {
	absPath := path
	if !filepath.IsAbs(path) {
		wd, _ := os.Getwd()
		absPath = filepath.Join(wd, path)
	}

	file, err := os.ReadFile(absPath)
	if err != nil {
		return Config{}, err
	}

	config := Default()
	err = json.Unmarshal(file, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", absPath, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("invalid max_conns %d", c.MaxConns)
	}
	if c.ReadBufferSize <= 0 {
		return fmt.Errorf("invalid read_buffer_size %d", c.ReadBufferSize)
	}
	return nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
