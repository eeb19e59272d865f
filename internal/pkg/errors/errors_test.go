package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		errType  ErrorType
		message  string
		expected string
	}{
		{name: "InvalidInput", errType: InvalidInput, message: "보관 일수는 0 이상이어야 합니다", expected: "[InvalidInput] 보관 일수는 0 이상이어야 합니다"},
		{name: "System", errType: System, message: "로그 디렉토리 생성 실패", expected: "[System] 로그 디렉토리 생성 실패"},
		{name: "Unknown", errType: Unknown, message: "", expected: "[Unknown] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())

			var appErr *AppError
			require.True(t, As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.NotEmpty(t, appErr.Stack())
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "보관 일수는 0 이상이어야 합니다: %d", -1)
	assert.Equal(t, "[InvalidInput] 보관 일수는 0 이상이어야 합니다: -1", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil 에러는 nil을 반환한다", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, System, "무시"))
		assert.Nil(t, Wrapf(nil, System, "무시 %d", 1))
	})

	t.Run("원인 에러를 보존한다", func(t *testing.T) {
		err := Wrap(errStd, System, "로그 파일 열기 실패")
		assert.Equal(t, "[System] 로그 파일 열기 실패: standard error", err.Error())
		assert.ErrorIs(t, err, errStd)
		assert.Equal(t, errStd, RootCause(err))
	})

	t.Run("Wrapf", func(t *testing.T) {
		err := Wrapf(fs.ErrPermission, System, "로그 파일 열기 실패: '%s'", "logs/a.log")
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Contains(t, err.Error(), "'logs/a.log'")
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	inner := New(InvalidInput, "잘못된 설정")
	outer := Wrap(inner, System, "로거 구성 실패")

	assert.True(t, Is(outer, System))
	assert.True(t, Is(outer, InvalidInput))
	assert.False(t, Is(outer, NotFound))
	assert.False(t, Is(errStd, System))
	assert.False(t, Is(nil, System))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))
	assert.Equal(t, errStd, RootCause(errStd))

	err := Wrap(Wrap(errStd, System, "a"), Internal, "b")
	assert.Equal(t, errStd, RootCause(err))
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "Internal", Internal.String())
	assert.Equal(t, "System", System.String())
	assert.Equal(t, "InvalidInput", InvalidInput.String())
	assert.Equal(t, "NotFound", NotFound.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
	assert.Equal(t, "ErrorType(-1)", ErrorType(-1).String())
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(errStd, System, "로그 디렉토리 생성 실패")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[System] 로그 디렉토리 생성 실패")
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "errors_test.go")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "standard error")
}

func TestCaptureStack(t *testing.T) {
	t.Parallel()

	err := New(Internal, "stack")

	var appErr *AppError
	require.True(t, As(err, &appErr))

	frames := appErr.Stack()
	require.NotEmpty(t, frames)
	assert.LessOrEqual(t, len(frames), maxStackFrames)
	assert.Equal(t, "errors_test.go", frames[0].File)
	assert.Contains(t, frames[0].Function, "TestCaptureStack")
}
