package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Level
	}{
		// 유효한 값 (대소문자, 공백 무관)
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"  Debug\t", DebugLevel},
		{"INFO", InfoLevel},
		{"info ", InfoLevel},
		{"WARNING", WarningLevel},
		{" warning", WarningLevel},
		{"ERROR", ErrorLevel},
		{"eRrOr", ErrorLevel},
		{"CRITICAL", CriticalLevel},
		{"\ncritical\n", CriticalLevel},

		// 잘못된 값은 INFO
		{"", InfoLevel},
		{"   ", InfoLevel},
		{"WARN", InfoLevel},
		{"TRACE", InfoLevel},
		{"FATAL", InfoLevel},
		{"verbose", InfoLevel},
		{"DE BUG", InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), "입력값: %q", tt.input)
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Run("환경변수가 없으면 INFO", func(t *testing.T) {
		t.Setenv(LevelEnvKey, "")
		assert.Equal(t, InfoLevel, LevelFromEnv())
	})

	t.Run("유효한 값", func(t *testing.T) {
		t.Setenv(LevelEnvKey, " error ")
		assert.Equal(t, ErrorLevel, LevelFromEnv())
	})

	t.Run("잘못된 값은 INFO", func(t *testing.T) {
		t.Setenv(LevelEnvKey, "LOUD")
		assert.Equal(t, InfoLevel, LevelFromEnv())
	})
}

func TestLevelCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "D", LevelCode(DebugLevel))
	assert.Equal(t, "I", LevelCode(InfoLevel))
	assert.Equal(t, "W", LevelCode(WarningLevel))
	assert.Equal(t, "E", LevelCode(ErrorLevel))
	assert.Equal(t, "C", LevelCode(CriticalLevel))

	// 5개 레벨 이외는 레벨 이름의 첫 글자
	assert.Equal(t, "T", LevelCode(logrus.TraceLevel))
	assert.Equal(t, "P", LevelCode(logrus.PanicLevel))
}
