package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/config"
)

var (
	// Used for flags.
	cfgFile string

	v   = viper.New()
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   config.AppName,
		Short: "Find out if a career as a Cold Chain Specialist fits you",
		Long: "careerfit is a terminal assessment that scores your answers across technical, " +
			"psychometric and WISCAR dimensions and recommends whether cold chain logistics is a fit.",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is careerfit.yaml in current directory)")
	pf.String("catalog", "", "question catalog JSON file (default is the built-in catalog)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("log-file", "", "write logs to this file (the TUI logs nowhere otherwise)")
	pf.StringP("format", "f", "text", "report format: text, markdown or json")
	pf.String("output-dir", ".", "directory saved reports are written to")

	bindFlag(config.KeyCatalog, "catalog")
	bindFlag(config.KeyLogLevel, "log-level")
	bindFlag(config.KeyLogFormat, "log-format")
	bindFlag(config.KeyLogFile, "log-file")
	bindFlag(config.KeyOutputFormat, "format")
	bindFlag(config.KeyOutputDir, "output-dir")

	rootCmd.Flags().Bool("no-splash", false, "skip the splash screen")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
}

func bindFlag(key, name string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

// loadConfig resolves configuration once before any command runs.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}
