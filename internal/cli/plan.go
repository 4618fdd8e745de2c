package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/astinowak-wq/LinkZero-sub000/internal/config"
	"github.com/astinowak-wq/LinkZero-sub000/internal/logging"
	"github.com/astinowak-wq/LinkZero-sub000/internal/tui"
)

// Plan renders the would-be action list as markdown without prompting or
// mutating anything. Used by the 'plan' subcommand.
func Plan(cfg config.Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Detection only; no payload is ever built into a running process here.
	actions, err := buildActions(cfg, logging.NewNop())
	if err != nil {
		return err
	}

	var doc strings.Builder
	doc.WriteString("# LinkZero plan\n\n")
	if cfg.DryRun {
		doc.WriteString("Mode: **dry-run** (accepted actions are recorded, never executed)\n\n")
	} else {
		doc.WriteString("Mode: **real** (each action still requires confirmation)\n\n")
	}
	for i, a := range actions {
		fmt.Fprintf(&doc, "%d. **%s**\n   `%s`\n", i+1, a.Description, a.Command.String())
	}

	render := tui.NewRenderer()
	out, err := render(doc.String())
	if err != nil {
		// Fall back to the raw markdown rather than failing the preview.
		out = doc.String()
	}
	_, err = io.WriteString(w, out)
	return err
}
