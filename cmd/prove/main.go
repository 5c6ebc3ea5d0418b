// Command prove reads a structured clause document, runs the resolution
// engine over it to a fixed point, the empty clause, or budget exhaustion,
// and writes the proof log (and optionally the final clause set) to stdout.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/googgom/go-resolution-engine/resolution"
	"github.com/googgom/go-resolution-engine/serialize"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	flagInput       string
	flagBudget      int
	flagVerbose     bool
	flagEmitClauses string
	flagLogLevel    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prove",
		Short: "Run resolution-refutation over a CNF clause set",
		RunE:  runProve,
	}
	root.Flags().StringVar(&flagInput, "input", "", "path to a structured clause document (required)")
	root.Flags().IntVar(&flagBudget, "budget", resolution.DefaultBudget, "outer-round saturation budget")
	root.Flags().BoolVar(&flagVerbose, "verbose", false, "include unification sub-steps in the proof log")
	root.Flags().StringVar(&flagEmitClauses, "emit-clauses", "", "optional path to write the final clause set back out as JSON")
	root.Flags().StringVar(&flagLogLevel, "log-level", "info", "operational log level (trace, debug, info, warn, error)")
	_ = root.MarkFlagRequired("input")
	return root
}

func runProve(cmd *cobra.Command, args []string) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "prove",
		Level: hclog.LevelFromString(flagLogLevel),
	})

	data, err := os.ReadFile(flagInput)
	if err != nil {
		logger.Error("cannot read input", "path", flagInput, "error", err)
		return err
	}

	clauses, err := serialize.Decode(flagInput, data)
	if err != nil {
		logger.Error("malformed clause document", "error", err)
		return err
	}
	logger.Info("loaded clauses", "count", len(clauses), "budget", flagBudget)

	result := resolution.Prove(clauses, flagBudget)
	logger.Info("saturation finished", "outcome", result.Outcome.String(), "steps", len(result.Trace.Records))

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := serialize.WriteTrace(out, result, flagVerbose); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}

	if result.Outcome == resolution.BudgetExhausted {
		if !promptContinue(cmd) {
			logger.Warn("budget exhausted, user declined to continue")
			return nil
		}
		logger.Info("resuming with a fresh budget", "budget", flagBudget)
		result = resolution.Prove(result.FinalSet, flagBudget)
		if err := serialize.WriteTrace(out, result, flagVerbose); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}
	}

	if flagEmitClauses != "" {
		encoded, err := serialize.EncodeClauses(result.FinalSet)
		if err != nil {
			logger.Error("cannot encode final clause set", "error", err)
			return err
		}
		if err := os.WriteFile(flagEmitClauses, encoded, 0o644); err != nil {
			logger.Error("cannot write final clause set", "path", flagEmitClauses, "error", err)
			return err
		}
		logger.Info("wrote final clause set", "path", flagEmitClauses, "count", len(result.FinalSet))
	}

	return nil
}

// promptContinue is the repository's sole suspension point: when the
// saturation budget runs out without a verdict, the operator decides
// whether to keep going with a fresh budget rather than have the budget
// silently grow without bound.
func promptContinue(cmd *cobra.Command) bool {
	fmt.Fprint(cmd.OutOrStdout(), "Бюджет шагов исчерпан. Продолжить? [y/N]: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
