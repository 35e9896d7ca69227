// Package cmd holds the moasm command tree: a cobra root command plus
// reconstruct/sweep subcommands, with viper binding flags to environment
// variables and an optional config file, mirroring the CLI conventions of
// turtacn-KeyIP-Intelligence and junjiewwang-perf-analysis.
// coding=utf-8
// @Project : moasm
// @File    : root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cx-luo/moasm/internal/logging"
)

var (
	dbPath  string
	verbose bool
	cfgFile string

	logger logging.Logger = logging.NoOp{}
)

var rootCmd = &cobra.Command{
	Use:   "moasm",
	Short: "Reconstruct molecular graphs from subgraph evidence",
	Long: "moasm enumerates every labelled molecular graph whose multiset of\n" +
		"induced subgraphs matches a multiset of fragments observed from an\n" +
		"unknown target, recovering candidate structures for elucidation.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initLogger()
	},
}

// Execute runs the command tree; errors are already reported to stderr by
// cobra before this returns.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./sqlite/pubchem.db", "path to the compound database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file (TOML/YAML)")

	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("MOASM")
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "moasm: reading config %s: %v\n", cfgFile, err)
		}
	}
}

func initLogger() error {
	if viper.GetBool("verbose") {
		l, err := logging.NewDevelopment()
		if err != nil {
			return fmt.Errorf("moasm: building logger: %w", err)
		}
		logger = l
		return nil
	}
	l, err := logging.NewProduction()
	if err != nil {
		return fmt.Errorf("moasm: building logger: %w", err)
	}
	logger = l
	return nil
}

func databasePath() string {
	return viper.GetString("db")
}
