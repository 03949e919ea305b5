package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/lo"

	"github.com/umputun/hnscope/pkg/auth"
	"github.com/umputun/hnscope/pkg/config"
	"github.com/umputun/hnscope/pkg/domain"
	"github.com/umputun/hnscope/pkg/feed"
	pkgflags "github.com/umputun/hnscope/pkg/flags"
	"github.com/umputun/hnscope/pkg/hn"
	"github.com/umputun/hnscope/pkg/metrics"
	"github.com/umputun/hnscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Dev    bool   `long:"dev" env:"DEV" description:"development mode, enables flag overrides"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug, os.Getenv("FLAGS_API_KEY"))

	log.Printf("[INFO] starting hnscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads configuration, wires all components and blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg := config.New()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Dev {
		cfg.Server.DevMode = true
	}
	if cfg.Flags.APIKey != "" {
		setupLog(opts.Debug, cfg.Flags.APIKey) // mask the key in logs
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	fetcher := feed.NewStoryFetcher(hn.New(cfg.HN.BaseURL, cfg.HN.Timeout), m)

	provider := pkgflags.NewRemoteProvider(pkgflags.ProviderParams{
		URL:          cfg.Flags.ProviderURL,
		APIKey:       cfg.Flags.APIKey,
		SyncTimeout:  cfg.Flags.SyncTimeout,
		SyncInterval: cfg.Flags.SyncInterval,
		OnFetched: func(ev pkgflags.FetchedEvent) {
			log.Printf("[DEBUG] flag configuration fetched from %s, changed: %v", ev.Source, ev.Changed)
		},
	})
	flagSvc := pkgflags.NewService(provider, pkgflags.Params{EvalTimeout: cfg.Flags.EvalTimeout}, pkgflags.LogSink{}, m)
	if err := flagSvc.Initialize(ctx, cfg.Targeting(), domain.DefaultFlags()); err != nil {
		return fmt.Errorf("failed to initialize flags: %w", err)
	}

	users := auth.NewUsers(lo.Map(cfg.Users, func(u config.UserConfig, _ int) auth.Account {
		return auth.Account{Username: u.Username, Password: u.Password, Beta: u.Beta, Company: u.Company}
	}))

	deps := server.Deps{
		Feeds:    fetcher,
		Flags:    flagSvc,
		Users:    users,
		Sessions: auth.NewSessions(24 * time.Hour),
		Gatherer: reg,
	}
	if cfg.Server.DevMode {
		deps.Overrides = provider
		log.Printf("[INFO] dev mode, flag overrides at /dev/overrides")
	}

	srv := server.New(server.Config{
		Listen:    cfg.Server.Listen,
		Timeout:   cfg.Server.Timeout,
		Version:   revision,
		Debug:     opts.Debug,
		DevMode:   cfg.Server.DevMode,
		BaseURL:   cfg.Server.BaseURL,
		SiteURL:   cfg.HN.SiteURL,
		PageLimit: cfg.HN.PageLimit,
	}, deps)

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server failed: %w", err)
	}
	<-flagSvc.Done()
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if secs = lo.Compact(secs); len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
