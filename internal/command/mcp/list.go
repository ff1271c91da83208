package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/skyport-cloud/skyport-mcp/internal/command"
	"github.com/skyport-cloud/skyport-mcp/internal/config"
	"github.com/skyport-cloud/skyport-mcp/internal/render"
	"github.com/skyport-cloud/skyport-mcp/internal/tools"
)

const modeFlag = "mode"

// NewTools initializes and returns the tools command.
func NewTools() *cobra.Command {
	const (
		short = "List the tools the server exposes"
		long  = short + ". The mode defaults to the configured one.\n"
		usage = "tools"
	)

	cmd := command.New(usage, short, long, runTools)
	cmd.Args = cobra.NoArgs
	cmd.Flags().String(modeFlag, "", "Tool mode to list: consolidated or individual")

	return cmd
}

func runTools(ctx context.Context) error {
	var (
		cfg = config.FromContext(ctx)
		cmd = command.FromContext(ctx)
	)

	mode := tools.ModeFor(cfg.ConsolidatedTools)
	switch lit, _ := cmd.Flags().GetString(modeFlag); lit {
	case "":
	case tools.Consolidated.String():
		mode = tools.Consolidated
	case tools.Individual.String():
		mode = tools.Individual
	default:
		return fmt.Errorf("unknown mode %q: expected %s or %s", lit, tools.Consolidated, tools.Individual)
	}

	rows, count := toolRows(mode)
	title := fmt.Sprintf("%s in %s mode", english.Plural(count, "tool", ""), mode)

	return render.Table(cmd.OutOrStdout(), title, rows, "Tool", "Action", "Access", "Description")
}

// toolRows lists one row per operation, naming it the way mode exposes it,
// and the number of tools mode registers.
func toolRows(mode tools.Mode) ([][]string, int) {
	var (
		rows  [][]string
		count int
	)

	for _, f := range tools.Catalog() {
		if mode == tools.Consolidated {
			count++
		}

		for _, op := range f.Operations {
			row := []string{op.ToolName, "", access(op), firstLine(op.Description)}
			if mode == tools.Consolidated {
				row[0], row[1] = f.Name, op.Action
			} else {
				count++
			}
			rows = append(rows, row)
		}
	}

	return rows, count
}

func access(op tools.Operation) string {
	switch {
	case op.ReadOnly:
		return "read"
	case op.Destructive:
		return "destructive"
	default:
		return "write"
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
