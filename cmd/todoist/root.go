package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	todoist "github.com/tonimelisma/todoist-go"
	"github.com/tonimelisma/todoist-go/internal/cachefile"
	"github.com/tonimelisma/todoist-go/internal/config"
)

// Global persistent flags, bound in newRootCmd().
var (
	flagConfigPath string
	flagCacheDir   string
	flagVerbose    bool
)

// httpClientTimeout bounds every request. Prevents hung connections from
// blocking CLI commands indefinitely.
const httpClientTimeout = 30 * time.Second

// newRootCmd builds and returns the fully-assembled root command with all
// subcommands registered. Called once from main().
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todoist",
		Short:         "Sync and manage a local Todoist mirror",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "cache directory")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newCreateCmd())

	return cmd
}

// appState bundles everything a subcommand needs: resolved paths, loaded
// config and cache, and an authenticated client.
type appState struct {
	configPath string
	cachePath  string
	cfg        config.Config
	cache      *todoist.Cache
	client     *todoist.Client
}

// loadState loads config and cache and constructs a client, prompting for
// a token on first run. The token is persisted to the config file as soon
// as it is known.
func loadState() (*appState, error) {
	configPath := flagConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cacheDir := flagCacheDir
	if cacheDir == "" {
		cacheDir = config.DefaultCacheDir()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	cachePath := cachefile.Path(cacheDir)

	cache, err := cachefile.Load(cachePath)
	if err != nil {
		return nil, err
	}

	// Older caches stored the token themselves; honor it as a fallback.
	if cfg.Token == "" {
		cfg.Token = cache.Token
	}

	if cfg.Token == "" {
		tok, err := promptToken()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", todoist.ErrMissingToken, err)
		}

		cfg.Token = tok
		if err := config.Save(configPath, cfg); err != nil {
			return nil, err
		}
	}

	cache.Token = cfg.Token

	httpClient := &http.Client{Timeout: httpClientTimeout}

	client, err := todoist.NewClient(cfg.Endpoint, cfg.Token, httpClient, slog.Default())
	if err != nil {
		return nil, err
	}

	return &appState{
		configPath: configPath,
		cachePath:  cachePath,
		cfg:        cfg,
		cache:      cache,
		client:     client,
	}, nil
}

// saveCache persists the mirror after a successful sync or commit.
func (s *appState) saveCache() error {
	return cachefile.Save(s.cachePath, s.cache)
}
