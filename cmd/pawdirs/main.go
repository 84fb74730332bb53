// cmd/pawdirs/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexcatdad/paw-dirs/internal/cliconfig"
	"github.com/alexcatdad/paw-dirs/sharedlog"
)

// version is set via -ldflags at build time; defaults to "dev" for local builds.
var version = "dev"

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	logFile   string
	errorFile string
)

var rootCmd = &cobra.Command{
	Use:     "pawdirs",
	Short:   "Cross-platform folder access for paw tools",
	Long:    "pawdirs resolves, creates, and cleans the per-application folders\npaw tools store their state in, following each platform's conventions.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the platform config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress normal output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append normal output to a file")
	rootCmd.PersistentFlags().StringVar(&errorFile, "error-file", "", "append error output to a file")
}

// configureLogging applies the config file first, then lets flags override.
func configureLogging() error {
	cfg, err := cliconfig.Load(cfgFile)
	if err != nil {
		return err
	}
	log := sharedlog.Shared()
	if err := cfg.Apply(log); err != nil {
		return err
	}

	if verbose {
		log.SetVerbosity(sharedlog.Verbose)
	}
	if quiet {
		log.SetVerbosity(sharedlog.Off)
	}
	if logFile != "" {
		if err := log.UseLogFile(logFile); err != nil {
			return err
		}
	}
	if errorFile != "" {
		if err := log.UseErrorFile(errorFile); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		sharedlog.Shared().Error(fmt.Sprintf("pawdirs: %v\n", err))
		os.Exit(1)
	}
}
