package log

import (
	"io"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/csa/internal/pkg/errors"
)

const (
	// DefaultDir 로그 파일이 저장될 기본 디렉토리 (실행 위치 기준)
	DefaultDir = "logs"

	// DefaultMaxSizeMB 로그 파일 하나당 최대 크기 기본값 (단위: MB)
	DefaultMaxSizeMB = 100
)

// Options Logger 구성을 위한 구조체입니다.
type Options struct {
	Name    string // 레지스트리에서 Logger를 식별하는 이름 (빈 문자열 허용)
	Command string // 명령어 이름 (analyze, sequence, crud-matrix 등). 비어 있으면 파일 싱크를 만들지 않습니다.

	// Level 로그 레벨 임계값. 0(설정 안 함)이면 LOG_LEVEL 환경변수를 따릅니다.
	Level Level

	Dir           string // 로그 디렉토리 (기본값: logs)
	RetentionDays int    // 오래된 로그 삭제 기준일 (0: 기본값 7일 사용)
	MaxSizeMB     int    // 로그 파일 최대 크기 (0: 기본값 100MB 사용)

	Console io.Writer        // 콘솔 싱크 출력 대상 (기본값: os.Stderr)
	Now     func() time.Time // 현재 시각 (기본값: time.Now)
}

// Validate Options 구조체의 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if strings.ContainsAny(opts.Command, `/\`) {
		return apperrors.Newf(apperrors.InvalidInput, "명령어 이름(Command)에 경로 구분자를 사용할 수 없습니다: '%s'", opts.Command)
	}

	// Dir이 이미 파일로 존재하는지 확인
	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return apperrors.Newf(apperrors.InvalidInput, "로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.RetentionDays < 0 {
		return apperrors.Newf(apperrors.InvalidInput, "RetentionDays는 0 이상이어야 합니다: %d", opts.RetentionDays)
	}
	if opts.MaxSizeMB < 0 {
		return apperrors.Newf(apperrors.InvalidInput, "MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}

	return nil
}

// withDefaults 설정되지 않은 필드에 기본값을 채운 복사본을 반환합니다.
func (opts Options) withDefaults() Options {
	if opts.Level == 0 {
		opts.Level = LevelFromEnv()
	}
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}
	if opts.RetentionDays == 0 {
		opts.RetentionDays = DefaultRetentionDays
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = DefaultMaxSizeMB
	}
	if opts.Console == nil {
		opts.Console = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return opts
}
