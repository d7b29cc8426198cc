package main

import (
	"testing"

	"github.com/jessevdk/go-flags"

	"github.com/jask/orderboard/internal/config"
)

func baseConfig(t *testing.T) config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	return cfg
}

func TestOptionsParse(t *testing.T) {
	var opts Options
	_, err := flags.ParseArgs(&opts, []string{"-c", "/tmp/b.toml", "--base-url", "http://api.test", "--missing-client", "drop"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if opts.Config != "/tmp/b.toml" || opts.BaseURL != "http://api.test" || opts.MissingClient != "drop" {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestOptionsRejectUnknownPolicy(t *testing.T) {
	var opts Options
	if _, err := flags.ParseArgs(&opts, []string{"--missing-client", "guess"}); err == nil {
		t.Fatal("expected choice error")
	}
}

func TestOptionsApply(t *testing.T) {
	cfg := baseConfig(t)
	got, err := Options{BaseURL: " http://api.test ", MissingClient: "placeholder", LogFile: "/tmp/ob.log"}.apply(cfg)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.API.BaseURL != "http://api.test" || got.Join.MissingClient != "placeholder" || got.Log.Path != "/tmp/ob.log" {
		t.Fatalf("cfg = %+v", got)
	}
}

func TestOptionsApplyKeepsUnsetValues(t *testing.T) {
	cfg := baseConfig(t)
	got, err := Options{}.apply(cfg)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.API.BaseURL != cfg.API.BaseURL || got.Join.MissingClient != cfg.Join.MissingClient {
		t.Fatalf("cfg changed: %+v", got)
	}
}
