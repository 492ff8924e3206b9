package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sandbox-go/config"
	"sandbox-go/sandbox"
)

var runCmd = &cobra.Command{
	Use:   "run <config.json>",
	Short: "Supervise a single run and print its verdict",
	Long: `Run loads a run configuration (see package config for the schema)
and supervises the named command under it, printing the resulting
verdict to stdout and exiting with a status code derived from it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

var (
	runJSON bool
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the result as JSON")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := GetContext()

	cfg, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	result, err := sandbox.Run(ctx, *cfg)
	if err != nil && result.Verdict == sandbox.None {
		return fmt.Errorf("run: %w", err)
	}

	if runJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(result); encErr != nil {
			return fmt.Errorf("encode result: %w", encErr)
		}
	} else {
		fmt.Println(verdictLabel(result.Verdict))
		if result.Reason != "" {
			fmt.Fprintln(os.Stderr, result.Reason)
		}
	}

	os.Exit(verdictExitCode(result.Verdict))
	return nil
}

// verdictExitCode maps a Verdict to a process exit status so shell
// scripts driving the supervisor can branch on $? without parsing the
// printed verdict.
func verdictExitCode(v sandbox.Verdict) int {
	if v == sandbox.AC {
		return 0
	}
	return int(v)
}

// verdictLabel colors the verdict green/red when stdout is a terminal,
// and prints it plain otherwise (piped output, redirected to a file).
func verdictLabel(v sandbox.Verdict) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return v.String()
	}
	const (
		green = "\x1b[32m"
		red   = "\x1b[31m"
		reset = "\x1b[0m"
	)
	if v == sandbox.AC {
		return green + v.String() + reset
	}
	return red + v.String() + reset
}
