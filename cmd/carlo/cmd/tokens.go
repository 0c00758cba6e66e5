package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hobbsbros/carlo/internal/diagnostics"
	"github.com/hobbsbros/carlo/internal/lexer"
	"github.com/hobbsbros/carlo/internal/token"
)

var (
	showPos    bool
	showClass  bool
	onlyErrors bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Carlo file or expression and print the resulting tokens",
	Long: `Tokenize (lex) a Carlo program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Carlo source text is split into tokens.

Examples:
  # Tokenize a note file
  carlo tokens notes.carlo

  # Tokenize an inline expression
  carlo tokens -e "let g = 9.81 m s_2"

  # Show token classes and positions
  carlo tokens --show-class --show-pos notes.carlo

  # Show only unrecognised characters
  carlo tokens --only-errors notes.carlo`,
	Args: cobra.MaximumNArgs(1),
	RunE: tokenizeSource,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading a file")
	tokensCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	tokensCmd.Flags().BoolVar(&showClass, "show-class", false, "show token class names")
	tokensCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only unrecognised (Unknown) tokens")
}

func tokenizeSource(_ *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	report := diagnostics.NewReport(src)
	toks := lexer.New(src, report).Tokenize()

	errorCount := 0
	for _, tok := range toks {
		if tok.Is(token.Unknown) {
			errorCount++
			printToken(tok)
			continue
		}
		if onlyErrors {
			continue
		}
		printToken(tok)
	}

	for _, d := range report.Items() {
		printDiagnostic(d)
	}

	if onlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d unrecognised token(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if showClass {
		out = fmt.Sprintf("[%-14s]", tok.Class)
	}
	if tok.Text == "" {
		out += fmt.Sprintf(" %s", tok.Class)
	} else {
		out += fmt.Sprintf(" %q", tok.Text)
	}
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Fprintln(os.Stdout, out)
}
