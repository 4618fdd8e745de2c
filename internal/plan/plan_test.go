package plan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astinowak-wq/LinkZero-sub000/internal/plan"
	"github.com/astinowak-wq/LinkZero-sub000/internal/sysexec"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linkzero.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testRegistry() *sysexec.Registry {
	reg := sysexec.NewRegistry()
	reg.Register("systemctl", "systemctl")
	reg.Register("postconf", "postconf")
	return reg
}

func TestLoadAndBuild(t *testing.T) {
	path := writePlan(t, `
actions:
  - description: Restart the milter
    command: systemctl
    args: [restart, milter]
  - description: Disable ETRN
    command: postconf
    args: [-e, smtpd_etrn_restrictions=reject]
`)

	p, err := plan.Load(path)
	require.NoError(t, err)
	require.Len(t, p.Actions, 2)

	actions, err := p.Build(testRegistry())
	require.NoError(t, err)
	require.Len(t, actions, 2)

	assert.Equal(t, "Restart the milter", actions[0].Description)
	assert.Equal(t, "systemctl restart milter", actions[0].Command.String())
	assert.Equal(t, "postconf -e smtpd_etrn_restrictions=reject", actions[1].Command.String())
}

func TestWithOverridesDecoded(t *testing.T) {
	path := writePlan(t, `
actions:
  - description: Run maintenance
    command: systemctl
    args: [restart, exim]
    with:
      env:
        LANG: C
      dir: /etc/exim
`)

	p, err := plan.Load(path)
	require.NoError(t, err)

	actions, err := p.Build(testRegistry())
	require.NoError(t, err)
	require.Len(t, actions, 1)
	// Overrides do not change the rendered command line, just execution.
	assert.Equal(t, "systemctl restart exim", actions[0].Command.String())
}

func TestUnregisteredCommandRejected(t *testing.T) {
	path := writePlan(t, `
actions:
  - description: Wipe everything
    command: rm
    args: [-rf, /]
`)

	p, err := plan.Load(path)
	require.NoError(t, err)

	_, err = p.Build(testRegistry())
	assert.ErrorIs(t, err, sysexec.ErrNotRegistered)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "missing description",
			content: "actions:\n  - command: systemctl\n",
			errPart: "missing description",
		},
		{
			name:    "missing command",
			content: "actions:\n  - description: Do something\n",
			errPart: "missing command",
		},
		{
			name:    "malformed yaml",
			content: "actions: [unterminated",
			errPart: "parse plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePlan(t, tt.content)
			_, err := plan.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := plan.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBadWithBlock(t *testing.T) {
	path := writePlan(t, `
actions:
  - description: Bad overrides
    command: systemctl
    with:
      env: "not a map"
`)

	p, err := plan.Load(path)
	require.NoError(t, err)

	_, err = p.Build(testRegistry())
	assert.Error(t, err)
}
