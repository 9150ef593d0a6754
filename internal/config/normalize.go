package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeServer(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeServer() error {
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	c.Server.Path = strings.TrimSpace(c.Server.Path)
	if c.Server.Path == "" {
		c.Server.Path = defaultPath
	}
	if !strings.HasPrefix(c.Server.Path, "/") {
		c.Server.Path = "/" + c.Server.Path
	}
	var err error
	if c.Server.CertFile, err = expandPath(strings.TrimSpace(c.Server.CertFile)); err != nil {
		return fmt.Errorf("server.cert_file: %w", err)
	}
	if c.Server.KeyFile, err = expandPath(strings.TrimSpace(c.Server.KeyFile)); err != nil {
		return fmt.Errorf("server.key_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "text", "console":
		c.Logging.Format = "text"
	case "json":
	default:
		c.Logging.Format = "text"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = defaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	}
}
