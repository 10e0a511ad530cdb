package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/abacus/calc"
)

type evalStep struct {
	Step    int    `json:"step"`
	Key     string `json:"key"`
	Display string `json:"display"`
	Pending string `json:"pending,omitempty"`
	Version uint64 `json:"version"`
	Changed bool   `json:"changed"`
}

type evalResult struct {
	Display string     `json:"display"`
	Pending string     `json:"pending,omitempty"`
	Version uint64     `json:"version"`
	Steps   []evalStep `json:"steps,omitempty"`
}

func newEvalCommand() *cobra.Command {
	var (
		trace  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "eval [keys...]",
		Short: "Press keys on a fresh calculator and print the display",
		Long: `Press keys on a fresh calculator and print the resulting display.

Keys are digits, ".", "+", "-", "*" or "x", "/", "=", "c" (clear) and
"ce" (clear entry). Separate them with spaces or write them compactly;
"12+3=" and "1 2 + 3 =" are the same. Without arguments keys are read from
standard input.`,
		Example: `  abacus eval 2+3x4=
  abacus eval --trace 5 / 0 =
  echo "0.1 + 0.2 =" | abacus eval -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read keys: %w", err)
				}
				input = string(b)
			}

			keys, err := calc.ParseKeys(input)
			if err != nil {
				return err
			}

			res := evaluate(keys, trace)
			GetLogger(cmd.Context()).Debug("eval", "keys", len(keys), "display", res.Display, "version", res.Version)

			switch output {
			case "json":
				return renderEvalJSON(cmd.OutOrStdout(), res)
			case "", "text":
				if trace {
					renderEvalTable(cmd.OutOrStdout(), res)
					return nil
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Display)
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want text or json)", output)
			}
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Print every step")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func evaluate(keys []calc.Key, trace bool) evalResult {
	c := calc.New()
	var steps []evalStep
	for i, k := range keys {
		changed := c.Press(k)
		if !trace {
			continue
		}
		pending, _ := c.Pending()
		steps = append(steps, evalStep{
			Step:    i + 1,
			Key:     k.Label(),
			Display: c.Display(),
			Pending: pending,
			Version: c.Version(),
			Changed: changed,
		})
	}

	pending, _ := c.Pending()
	return evalResult{
		Display: c.Display(),
		Pending: pending,
		Version: c.Version(),
		Steps:   steps,
	}
}

func renderEvalTable(w io.Writer, res evalResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "KEY", "DISPLAY", "PENDING", "VERSION"})
	for _, s := range res.Steps {
		key := s.Key
		if !s.Changed {
			key += " (no-op)"
		}
		t.AppendRow(table.Row{s.Step, key, s.Display, s.Pending, s.Version})
	}
	t.AppendFooter(table.Row{"", "", res.Display, res.Pending, res.Version})
	t.Render()
}

func renderEvalJSON(w io.Writer, res evalResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
