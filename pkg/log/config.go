package log

import (
	"github.com/darkkaiser/csa/internal/config"
	apperrors "github.com/darkkaiser/csa/internal/pkg/errors"
)

// OptionsFromConfig 로그 설정(LogConfig)을 Options로 변환합니다.
func OptionsFromConfig(cfg config.LogConfig, name, command string) Options {
	return Options{
		Name:          name,
		Command:       command,
		Level:         ParseLevel(cfg.Level),
		Dir:           cfg.Dir,
		RetentionDays: cfg.RetentionDays,
		MaxSizeMB:     cfg.MaxSizeMB,
	}
}

// SetupFromConfig 설정 파일(csa.json, 선택)과 LOG_* 환경변수를 읽어 Logger를 구성합니다.
func SetupFromConfig(name, command string) (*Logger, error) {
	appConfig, err := config.Load()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "로그 설정 로드 실패")
	}

	return Configure(OptionsFromConfig(appConfig.Log, name, command))
}
