package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astinowak-wq/LinkZero-sub000/internal/config"
	"github.com/astinowak-wq/LinkZero-sub000/internal/logging"
)

func asUser(t *testing.T, uid int) {
	t.Helper()
	orig := geteuid
	geteuid = func() int { return uid }
	t.Cleanup(func() { geteuid = orig })
}

func TestRunRequiresRootInRealMode(t *testing.T) {
	asUser(t, 1000)

	err := Run(config.Config{LogFile: "/tmp/lz.log", SubmissionPorts: []int{587}}, "test")
	assert.ErrorIs(t, err, ErrNeedRoot)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	asUser(t, 0)

	err := Run(config.Config{SubmissionPorts: []int{587}}, "test")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNeedRoot)
}

func TestBuildLoggerDryRunHasNoFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	cfg := config.Config{DryRun: true, LogFile: path}

	logger, closeLog, err := buildLogger(cfg)
	require.NoError(t, err)
	defer closeLog()

	logger.Info("probing")

	assert.NoFileExists(t, path, "dry-run must not create the log file")
}

func TestBuildLoggerRealModeAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	cfg := config.Config{LogFile: path}

	logger, closeLog, err := buildLogger(cfg)
	require.NoError(t, err)

	logger.Info("port 587 allowed")
	logging.Success(logger, "done")
	closeLog()

	assert.FileExists(t, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] port 587 allowed")
	assert.Contains(t, string(data), "[SUCCESS] done")
}

func TestPlanActionsDefaultPathOptional(t *testing.T) {
	// With no plan configured and none present in the working directory,
	// planActions contributes nothing.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	actions, err := planActions(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestPlanActionsExplicitPathMustExist(t *testing.T) {
	cfg := config.Config{PlanPath: filepath.Join(t.TempDir(), "absent.yaml")}

	_, err := planActions(cfg, logging.NewNop())
	assert.Error(t, err)
}

func TestCommandRegistryIsVetted(t *testing.T) {
	reg := commandRegistry()
	for _, name := range []string{"postconf", "systemctl", "csf", "iptables", "sed"} {
		_, err := reg.Resolve(name)
		assert.NoError(t, err, name)
	}
	_, err := reg.Resolve("bash")
	assert.Error(t, err)
}
