// internal/app/engines.go
package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gapscan-core/dataset"
	"gapscan-core/fasta"

	"gapscan/internal/logger"
	"gapscan/internal/runner"
	"gapscan/internal/writers"
)

// engineCommand builds one subcommand. Gap engines get the --max-gap flag;
// when the flag is left at its default and the answers header carries a gap
// value, that value is used.
func engineCommand(name, short string, gap bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExperiment(cmd, name, gap)
		},
	}
	if gap {
		cmd.Flags().IntP("max-gap", "k", 0, "max non-matching symbols tolerated between pattern symbols")
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(
		engineCommand("kmp", "prefix-function (Knuth-Morris-Pratt) matching", false),
		engineCommand("bm", "suffix-shift (Boyer-Moore) matching", false),
		engineCommand("shiftor", "bitmask (Shift-Or) matching", false),
		engineCommand(runner.MultiPattern, "multi-pattern automaton (Aho-Corasick) matching", false),
		engineCommand("dfagap", "bounded-gap automaton matching", true),
		engineCommand("regexp", "bounded-gap matching via lookahead expression", true),
	)
}

func runExperiment(cmd *cobra.Command, algorithm string, gap bool) error {
	logger.SetQuiet(viper.GetBool("quiet"))

	seqPath := viper.GetString("sequences")
	patPath := viper.GetString("patterns")
	if seqPath == "" || patPath == "" {
		return fmt.Errorf("--sequences and --patterns are required")
	}

	patterns, err := dataset.ReadStrings(patPath)
	if err != nil {
		return err
	}

	var sequences [][]byte
	if viper.GetBool("fasta") {
		recs, err := fasta.ReadAllPath(cmd.Context(), seqPath)
		if err != nil {
			return err
		}
		sequences = make([][]byte, len(recs))
		for i, r := range recs {
			sequences[i] = r.Seq
		}
	} else {
		sequences, err = dataset.ReadStrings(seqPath)
		if err != nil {
			return err
		}
	}

	var answers *dataset.Answers
	if path := viper.GetString("answers"); path != "" {
		answers, err = dataset.ReadAnswers(path)
		if err != nil {
			return err
		}
	}

	k := 0
	if gap {
		k, _ = cmd.Flags().GetInt("max-gap")
		if !cmd.Flags().Changed("max-gap") && answers != nil && answers.K > 0 {
			k = answers.K
			logger.Debug("gap bound taken from answers header", "k", k)
		}
	}

	rep, err := runner.Run(cmd.Context(), runner.Options{
		Algorithm: algorithm,
		Sequences: sequences,
		Patterns:  patterns,
		Answers:   answers,
		K:         k,
		Threads:   viper.GetInt("threads"),
	})
	if err != nil {
		return err
	}

	if err := writers.Write(viper.GetString("output"), cmd.OutOrStdout(), rep); err != nil {
		if writers.IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	if len(rep.Mismatches) > 0 {
		logger.Warn("count validation failed", "mismatches", len(rep.Mismatches))
		exitCode = 1
	}
	return nil
}
