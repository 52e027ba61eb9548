// /home/krylon/go/src/github.com/blicero/herald/common/config.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 20:20:03 krylon>

package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/logutils"
	"gopkg.in/yaml.v3"
)

// Names of the supported storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Defaults for the notification scheduler.
const (
	DefaultInterval  = time.Minute
	DefaultLookahead = time.Minute * 15
)

// Config is the configuration of the Daemon.
type Config struct {
	Listen    string          `yaml:"listen"`
	LogLevel  string          `yaml:"log_level"`
	Advertise bool            `yaml:"advertise"`
	Store     StoreConfig     `yaml:"store"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Notify    NotifyConfig    `yaml:"notify"`
}

// StoreConfig selects the backing store for Events.
type StoreConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path,omitempty"`
}

// SchedulerConfig contains the timing of the notification scan.
type SchedulerConfig struct {
	Interval  time.Duration `yaml:"interval"`
	Lookahead time.Duration `yaml:"lookahead"`
}

// NotifyConfig enables or disables the notification sinks.
// Pointers distinguish "not set" from an explicit false.
type NotifyConfig struct {
	Log       *bool `yaml:"log,omitempty"`
	DBus      *bool `yaml:"dbus,omitempty"`
	Websocket *bool `yaml:"websocket,omitempty"`
}

// LogEnabled returns true if notifications should be written to the log.
func (n *NotifyConfig) LogEnabled() bool { return n.Log == nil || *n.Log }

// DBusEnabled returns true if notifications should be posted via DBus.
func (n *NotifyConfig) DBusEnabled() bool { return n.DBus != nil && *n.DBus }

// WebsocketEnabled returns true if notifications should be pushed
// to websocket clients.
func (n *NotifyConfig) WebsocketEnabled() bool { return n.Websocket == nil || *n.Websocket }

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	var cfg = new(Config)
	cfg.applyDefaults()
	return cfg
} // func DefaultConfig() *Config

// LoadConfig reads the configuration from a YAML file.
// If the file does not exist, the default configuration is returned.
func LoadConfig(path string) (*Config, error) {
	var (
		err  error
		data []byte
		cfg  Config
	)

	if data, err = os.ReadFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("Cannot read configuration file %s: %w", path, err)
	} else if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("Cannot parse configuration file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
} // func LoadConfig(path string) (*Config, error)

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = fmt.Sprintf("localhost:%d", DefaultPort)
	}
	if c.LogLevel == "" {
		c.LogLevel = string(MinLogLevel)
	}
	c.LogLevel = strings.ToUpper(c.LogLevel)
	if c.Store.Backend == "" {
		c.Store.Backend = BackendJSON
	}
	c.Store.Backend = strings.ToLower(c.Store.Backend)
	if c.Store.Path == "" {
		if c.Store.Backend == BackendSQLite {
			c.Store.Path = DbPath
		} else {
			c.Store.Path = DataPath
		}
	}
	if c.Scheduler.Interval <= 0 {
		c.Scheduler.Interval = DefaultInterval
	}
	if c.Scheduler.Lookahead <= 0 {
		c.Scheduler.Lookahead = DefaultLookahead
	}
} // func (c *Config) applyDefaults()

// Validate checks the Config for values that cannot work.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("Unknown store backend %q", c.Store.Backend)
	}

	if levelIndex(logutils.LogLevel(c.LogLevel)) < 0 {
		return fmt.Errorf("Unknown log level %q", c.LogLevel)
	}

	return nil
} // func (c *Config) Validate() error
