// internal/app/root.go
// Package app wires the gapscan command tree: one subcommand per matching
// engine, with shared input/output flags bound through viper so they can
// also come from the config file or GAPSCAN_* environment variables.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gapscan/internal/logger"
	"gapscan/internal/version"
)

var cfgFile string

// exitCode distinguishes count mismatches (1) from usage/input errors (2).
var exitCode int

var rootCmd = &cobra.Command{
	Use:     "gapscan",
	Short:   "exact and bounded-gap DNA pattern matching",
	Version: version.Version,
	Long: `gapscan counts pattern occurrences in DNA sequence corpora.

Exact engines: kmp (prefix function), bm (suffix shift), shiftor (bitmask)
and ac (multi-pattern automaton, one pass for all patterns). Approximate
engines: dfagap (bounded-gap automaton) and regexp (equivalent lookahead
expression), both tolerating up to --max-gap non-matching symbols between
consecutive pattern symbols.

Each pattern is compiled once and searched against every sequence. When an
answers table is supplied, computed counts are validated against it and any
disagreement is reported and reflected in the exit status.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code:
// 0 clean, 1 count mismatches, 2 usage or input errors.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the CLI with explicit arguments and streams; tests drive
// the command tree through here.
func Run(args []string, out, errw io.Writer) int {
	exitCode = 0
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errw)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(errw, "gapscan:", err)
		return 2
	}
	return exitCode
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gapscan.yaml)")
	rootCmd.PersistentFlags().StringP("sequences", "s", "", "sequences file (dataset format, or FASTA with --fasta)")
	rootCmd.PersistentFlags().StringP("patterns", "p", "", "patterns file (dataset format)")
	rootCmd.PersistentFlags().StringP("answers", "a", "", "expected-count table for validation (optional)")
	rootCmd.PersistentFlags().Bool("fasta", false, "read --sequences as FASTA (plain, .gz, or '-' for stdin)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "report format: text | json")
	rootCmd.PersistentFlags().IntP("threads", "t", 1, "worker goroutines for per-sequence searches")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress diagnostics below error level")

	_ = viper.BindPFlag("sequences", rootCmd.PersistentFlags().Lookup("sequences"))
	_ = viper.BindPFlag("patterns", rootCmd.PersistentFlags().Lookup("patterns"))
	_ = viper.BindPFlag("answers", rootCmd.PersistentFlags().Lookup("answers"))
	_ = viper.BindPFlag("fasta", rootCmd.PersistentFlags().Lookup("fasta"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("threads", rootCmd.PersistentFlags().Lookup("threads"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gapscan")
	}

	viper.SetEnvPrefix("gapscan")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
