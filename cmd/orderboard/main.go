package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"

	"github.com/jask/orderboard/internal/api"
	"github.com/jask/orderboard/internal/config"
	"github.com/jask/orderboard/internal/tui"
)

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Println(err)
			return
		}
		log.Fatalf("flags: %v", err)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg, err = opts.apply(cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.Path, "orderboard")
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer logFile.Close()

	client := api.New(cfg.API.BaseURL, cfg.API.OrdersPath, cfg.API.ClientsPath, cfg.API.Timeout)
	app, err := tui.New(context.Background(), cfg, client)
	if err != nil {
		log.Fatalf("tui: %v", err)
	}

	log.Printf("start: %s%s + %s%s", cfg.API.BaseURL, cfg.API.OrdersPath, cfg.API.BaseURL, cfg.API.ClientsPath)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
