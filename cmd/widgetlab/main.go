package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"widgetlab/internal/config"
	"widgetlab/internal/resource"
	"widgetlab/internal/telemetry"
	"widgetlab/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	_ "go.uber.org/automaxprocs"
)

// options holds the parsed command line.
type options struct {
	configPath string
	logFile    string
	tab        string
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.StringVar(&opts.configPath, "config", "", "path to config.yaml (default $"+config.ConfigEnv+" or the user config dir)")
	fs.StringVar(&opts.logFile, "log", "", "append debug logs to this file (default: discard)")
	fs.StringVar(&opts.tab, "tab", "", "tab to open on start: one of heading, counter, callbacks, favourite, list, async")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: widgetlab [flags]\n\n")
		fmt.Fprintf(fs.Output(), "widgetlab is a terminal playground of small interactive widgets.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}

// settings merges the config file with command line overrides.
func settings(opts options) (config.Config, error) {
	path, err := config.Path(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.tab != "" {
		cfg.StartTab = opts.tab
	}
	return cfg, cfg.Validate()
}

// startMode maps a start_tab name to a tab. An empty name means heading.
func startMode(name string) (ui.AppMode, error) {
	if name == "" {
		return ui.ModeHeading, nil
	}
	mode, ok := ui.ParseMode(name)
	if !ok {
		return ui.ModeHeading, fmt.Errorf("unknown tab %q", name)
	}
	return mode, nil
}

func run(opts options) error {
	cfg, err := settings(opts)
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "widgetlab")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	mode, err := startMode(cfg.StartTab)
	if err != nil {
		return err
	}

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()
	log.Printf("widgetlab starting on %s (tracing=%v)", mode, tp.Enabled())

	fetcher := resource.NewHTTPFetcher(resource.WithTracerProvider(tp.TracerProvider()))
	model := ui.NewAppModel(fetcher, mode).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "widgetlab: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "widgetlab: %v\n", err)
		os.Exit(1)
	}
}
