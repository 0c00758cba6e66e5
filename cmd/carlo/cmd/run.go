package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hobbsbros/carlo/internal/diagnostics"
	"github.com/hobbsbros/carlo/internal/session"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a Carlo file or expression as plain text",
	Long: `Tokenize, parse, and evaluate a Carlo program, printing the
plain-text rendering of each statement.

Examples:
  carlo run notes.carlo
  carlo run -e "let g = 9.81 m s_2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSource(args, false)
	},
}

var latexCmd = &cobra.Command{
	Use:   "latex [file]",
	Short: "Evaluate a Carlo file or expression and emit a LaTeX fragment",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSource(args, true)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(latexCmd)

	for _, c := range []*cobra.Command{runCmd, latexCmd} {
		c.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
	}
}

func runSource(args []string, latex bool) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	var result session.Result
	if latex {
		result = session.RunLaTeX(src)
	} else {
		result = session.Run(src)
	}

	for _, d := range result.Diagnostics {
		printDiagnostic(d)
	}

	if result.Output != "" {
		fmt.Println(result.Output)
	}
	return nil
}

func readSource(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("provide a file path or use -e for inline source")
}

func printDiagnostic(d diagnostics.Diagnostic) {
	tag := "(warn)"
	tagColor := color.New(color.FgYellow)
	if d.Severity == diagnostics.Fatal {
		tag = "(error)"
		tagColor = color.New(color.FgRed, color.Bold)
	}
	if !settings.Color {
		tagColor.DisableColor()
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", tagColor.Sprint(tag), d.Message)
}
