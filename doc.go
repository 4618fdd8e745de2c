/*
Package linkzero is the root of the LinkZero mail submission hardening tool.

LinkZero edits mail-server configuration and firewall rules through an
interactive confirmation engine: every mutating step is described, confirmed
with a Yes/No prompt, executed (or recorded, in dry-run mode), and written
to an append-only audit trail that is summarized at the end of the run.

The interesting machinery lives under internal/:

  - internal/input resolves the interactive input channel and decodes raw
    key events, including multi-byte arrow sequences, without a terminal
    UI toolkit.
  - internal/chooser is the in-place-rendered Yes/No selector.
  - internal/pipeline wraps each mutating payload so that dry-run runs can
    never produce side effects, while still recording what would happen.
  - internal/mta and internal/firewall detect the host's tools and build
    the concrete hardening actions.

The cmd/linkzero binary wires these together behind a small cobra CLI.
*/
package linkzero

// Version is the release version stamped into the binary.
const Version = "0.3.0"
