package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jask/orderboard/internal/order"
)

// Config holds application configuration.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Join   JoinConfig   `mapstructure:"join"`
	Map    MapConfig    `mapstructure:"map"`
	Layout LayoutConfig `mapstructure:"layout"`
	Log    LogConfig    `mapstructure:"log"`
}

// APIConfig locates the order and client resources.
type APIConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	OrdersPath  string        `mapstructure:"orders_path"`
	ClientsPath string        `mapstructure:"clients_path"`
	Timeout     time.Duration `mapstructure:"timeout"` // 0 waits forever
}

// JoinConfig holds the join policy.
type JoinConfig struct {
	MissingClient string `mapstructure:"missing_client"`
}

// MapConfig holds map viewport and tile settings.
type MapConfig struct {
	CenterLat     float64 `mapstructure:"center_lat"`
	CenterLong    float64 `mapstructure:"center_long"`
	Zoom          int     `mapstructure:"zoom"`
	SelectZoom    int     `mapstructure:"select_zoom"`
	MinZoom       int     `mapstructure:"min_zoom"`
	MaxZoom       int     `mapstructure:"max_zoom"`
	ClusterRadius int     `mapstructure:"cluster_radius"`
	TileURL       string  `mapstructure:"tile_url"`
	Attribution   string  `mapstructure:"attribution"`
}

// LayoutConfig is the responsive list rule, in terminal cells.
type LayoutConfig struct {
	Breakpoint    int `mapstructure:"breakpoint"`
	ListWidth     int `mapstructure:"list_width"`
	ListHeight    int `mapstructure:"list_height"`
	InitialHeight int `mapstructure:"initial_height"`
}

// LogConfig holds the log file location. The terminal belongs to the UI.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// Policy returns the parsed missing-client policy.
func (c Config) Policy() (order.MissingClientPolicy, error) {
	return order.ParsePolicy(c.Join.MissingClient)
}

// Load reads .env, then the config file at path (falling back to
// ORDERBOARD_CONFIG, then the default location), then env overrides with
// prefix ORDERBOARD_.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if path == "" {
		path = os.Getenv("ORDERBOARD_CONFIG")
	}
	return LoadFile(path)
}

// LoadFile is Load without the .env step. An empty path searches
// ~/.config/orderboard/config.toml and tolerates its absence; an explicit
// path must exist.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "orderboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ORDERBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.orders_path", "/apps")
	v.SetDefault("api.clients_path", "/clients")
	v.SetDefault("api.timeout", "0s")

	v.SetDefault("join.missing_client", string(order.KeepOrder))

	v.SetDefault("map.center_lat", 43.238949)
	v.SetDefault("map.center_long", 76.889709)
	v.SetDefault("map.zoom", 13)
	v.SetDefault("map.select_zoom", 18)
	v.SetDefault("map.min_zoom", 2)
	v.SetDefault("map.max_zoom", 19)
	v.SetDefault("map.cluster_radius", 3)
	v.SetDefault("map.tile_url", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("map.attribution", "© OpenStreetMap contributors")

	v.SetDefault("layout.breakpoint", 100)
	v.SetDefault("layout.list_width", 44)
	v.SetDefault("layout.list_height", 40)
	v.SetDefault("layout.initial_height", 12)

	v.SetDefault("log.path", filepath.Join(os.TempDir(), "orderboard.log"))
}

// Validate rejects values the board cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.API.BaseURL) == "" {
		errs = append(errs, errors.New("api.base_url is empty"))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout %s is negative", c.API.Timeout))
	}
	if _, err := c.Policy(); err != nil {
		errs = append(errs, fmt.Errorf("join.missing_client: %w", err))
	}
	if c.Map.MinZoom < 0 || c.Map.MinZoom > c.Map.MaxZoom {
		errs = append(errs, fmt.Errorf("map zoom range [%d, %d] is invalid", c.Map.MinZoom, c.Map.MaxZoom))
	}
	if c.Map.SelectZoom < c.Map.MinZoom || c.Map.SelectZoom > c.Map.MaxZoom {
		errs = append(errs, fmt.Errorf("map.select_zoom %d is outside [%d, %d]", c.Map.SelectZoom, c.Map.MinZoom, c.Map.MaxZoom))
	}
	if c.Map.ClusterRadius < 1 {
		errs = append(errs, errors.New("map.cluster_radius must be at least 1"))
	}
	if c.Layout.Breakpoint <= 0 || c.Layout.ListWidth <= 0 || c.Layout.ListHeight <= 0 || c.Layout.InitialHeight <= 0 {
		errs = append(errs, errors.New("layout values must be positive"))
	}
	return errors.Join(errs...)
}
