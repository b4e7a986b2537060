// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the logo-fetch CLI. Running the root
// command downloads every logo in the table to the output directory.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/logo-fetch/internal/fetch"
	"github.com/pdiddy/logo-fetch/internal/table"
	"github.com/pdiddy/logo-fetch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultTimeout = 10 * time.Second

// rootCmd downloads the logo table; subcommands inspect it.
var rootCmd = &cobra.Command{
	Use:   "logo-fetch",
	Short: "Download partner bank logos into the current directory",
	Long: `logo-fetch downloads each logo in the bank table and saves it as
<id>.png. Entries without a known URL are reported for manual download.
Every entry is attempted once; failures are printed and the run continues.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(viper.GetBool("verbose"))
	},
	RunE: runFetch,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./logo-fetch.yaml or ~/.config/logo-fetch/config.yaml)")
	pf.String("table", "", "YAML table of logos to use instead of the built-in bank list")
	pf.BoolP("verbose", "v", false, "log request details to stderr")

	f := rootCmd.Flags()
	f.Duration("timeout", defaultTimeout, "per-request timeout")
	f.String("output-dir", ".", "directory to save logos into")
	f.Int("workers", 1, "number of logos to fetch concurrently")
	f.String("user-agent", "", "User-Agent header (default logo-fetch/<version>)")
	f.Bool("detect-ext", false, "pick the file extension from the response Content-Type")
	f.String("report", "", "write a YAML report of the run to this file")

	for _, name := range []string{"table", "verbose"} {
		viper.BindPFlag(name, pf.Lookup(name))
	}
	for _, name := range []string{"timeout", "output-dir", "workers", "user-agent", "detect-ext", "report"} {
		viper.BindPFlag(name, f.Lookup(name))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logo-fetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "logo-fetch"))
		}
	}

	viper.SetEnvPrefix("LOGO_FETCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initLogger installs the global zap logger: a development console logger
// on stderr when verbose, a no-op logger otherwise.
func initLogger(verbose bool) error {
	if !verbose {
		zap.ReplaceGlobals(zap.NewNop())
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// loadEntries returns the table named by the table setting, or the
// built-in bank list when it is empty.
func loadEntries() ([]types.Entry, error) {
	path := viper.GetString("table")
	if path == "" {
		return table.Default(), nil
	}
	return table.Load(path)
}

// fetchConfig assembles the run settings from flags, environment and
// config file.
func fetchConfig() types.FetchConfig {
	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := viper.GetString("user-agent")
	if userAgent == "" {
		userAgent = "logo-fetch/" + version
	}
	outputDir := viper.GetString("output-dir")
	if outputDir == "" {
		outputDir = "."
	}
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		OutputDir:       outputDir,
		Workers:         viper.GetInt("workers"),
		DetectExtension: viper.GetBool("detect-ext"),
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	entries, err := loadEntries()
	if err != nil {
		return err
	}
	cfg := fetchConfig()

	zap.L().Debug("starting run",
		zap.Int("entries", len(entries)),
		zap.String("output_dir", cfg.OutputDir),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("workers", cfg.Workers))

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	result := fetch.RunAll(cmd.Context(), client, entries, cfg, cmd.OutOrStdout())

	if path := viper.GetString("report"); path != "" {
		if err := fetch.WriteReport(result, path); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	zap.L().Sync()
	if err != nil {
		os.Exit(1)
	}
}
