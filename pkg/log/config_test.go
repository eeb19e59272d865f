package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/csa/internal/config"
	apperrors "github.com/darkkaiser/csa/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	opts := OptionsFromConfig(config.LogConfig{
		Level:         " debug ",
		Dir:           "var/log/csa",
		RetentionDays: 14,
		MaxSizeMB:     10,
	}, "main", "crud-matrix")

	assert.Equal(t, "main", opts.Name)
	assert.Equal(t, "crud-matrix", opts.Command)
	assert.Equal(t, DebugLevel, opts.Level)
	assert.Equal(t, "var/log/csa", opts.Dir)
	assert.Equal(t, 14, opts.RetentionDays)
	assert.Equal(t, 10, opts.MaxSizeMB)

	// 잘못된 레벨은 INFO
	assert.Equal(t, InfoLevel, OptionsFromConfig(config.LogConfig{Level: "nope"}, "", "").Level)
}

func TestSetupFromConfig(t *testing.T) {
	resetRegistry(t)

	workDir := t.TempDir()
	t.Chdir(workDir)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_DIR", "")
	t.Setenv("LOG_RETENTION_DAYS", "")
	t.Setenv("LOG_MAX_SIZE_MB", "")
	os.Unsetenv("LOG_DIR")
	os.Unsetenv("LOG_RETENTION_DAYS")
	os.Unsetenv("LOG_MAX_SIZE_MB")

	require.NoError(t, os.WriteFile(config.DefaultFilename, []byte(`{"log": {"dir": "out", "retention_days": 3}}`), 0644))

	l, err := SetupFromConfig("from-config", "analyze")
	require.NoError(t, err)

	assert.Equal(t, ErrorLevel, l.Level())
	assert.Equal(t, "out", filepath.Dir(l.FilePath()))
	assert.DirExists(t, filepath.Join(workDir, "out"))

	// 콘솔 싱크는 기본값(os.Stderr)을 사용하므로 출력 대신 싱크 구성만 확인합니다.
	require.Len(t, l.Sinks(), 2)
}

func TestSetupFromConfig_InvalidConfig(t *testing.T) {
	resetRegistry(t)

	t.Chdir(t.TempDir())
	t.Setenv("LOG_RETENTION_DAYS", "-3")

	_, err := SetupFromConfig("bad-config", "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestConfigure_ConsoleWriterDefault(t *testing.T) {
	resetRegistry(t)

	l, err := Configure(Options{Name: "default-console", Level: InfoLevel})
	require.NoError(t, err)

	sinks := l.Sinks()
	require.Len(t, sinks, 1)
	assert.Same(t, os.Stderr, sinks[0].writer)

	var buf bytes.Buffer
	_, err = Configure(Options{Name: "default-console", Level: InfoLevel, Console: &buf})
	require.NoError(t, err)
	assert.Same(t, &buf, l.Sinks()[0].writer)
}
