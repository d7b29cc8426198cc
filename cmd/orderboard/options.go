package main

import (
	"strings"

	"github.com/jask/orderboard/internal/config"
)

// Options are the command-line overrides. Struct tags are read by
// github.com/jessevdk/go-flags.
type Options struct {
	Config        string `short:"c" long:"config" description:"TOML config path (default ~/.config/orderboard/config.toml)"`
	BaseURL       string `long:"base-url" description:"order API base URL"`
	MissingClient string `long:"missing-client" choice:"keep" choice:"drop" choice:"placeholder" description:"orders whose client is unknown"`
	LogFile       string `long:"log-file" description:"log file path"`
}

// apply layers the flags that were given over cfg.
func (o Options) apply(cfg config.Config) (config.Config, error) {
	if v := strings.TrimSpace(o.BaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if o.MissingClient != "" {
		cfg.Join.MissingClient = o.MissingClient
	}
	if v := strings.TrimSpace(o.LogFile); v != "" {
		cfg.Log.Path = v
	}
	return cfg, cfg.Validate()
}
