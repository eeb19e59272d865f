package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/csa/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "csa"

	// DefaultFilename 기본 설정 파일명입니다. 파일이 없으면 기본값과 환경변수만 사용합니다.
	DefaultFilename = AppName + ".json"

	// 로그 설정 기본값
	DefaultLogLevel         = "INFO"
	DefaultLogDir           = "logs"
	DefaultLogRetentionDays = 7
	DefaultLogMaxSizeMB     = 100
)

// envKeys 로그 설정에 반영되는 환경변수와 설정 키의 매핑입니다.
// 목록에 없는 LOG_ 접두사 환경변수는 무시합니다.
var envKeys = map[string]string{
	"LOG_LEVEL":          "log.level",
	"LOG_DIR":            "log.dir",
	"LOG_RETENTION_DAYS": "log.retention_days",
	"LOG_MAX_SIZE_MB":    "log.max_size_mb",
}

// AppConfig 애플리케이션 설정의 최상위 구조체
type AppConfig struct {
	Log LogConfig `json:"log"`
}

// LogConfig 로거 구성에 사용되는 설정 구조체
type LogConfig struct {
	// Level 로그 레벨 (DEBUG, INFO, WARNING, ERROR, CRITICAL). 잘못된 값은 로거 구성 시 INFO로 처리되므로 검증하지 않습니다.
	Level         string `json:"level"`
	Dir           string `json:"dir" validate:"required"`
	RetentionDays int    `json:"retention_days" validate:"gte=0"`
	MaxSizeMB     int    `json:"max_size_mb" validate:"gte=0"`
}

func newDefaultConfig() AppConfig {
	return AppConfig{
		Log: LogConfig{
			Level:         DefaultLogLevel,
			Dir:           DefaultLogDir,
			RetentionDays: DefaultLogRetentionDays,
			MaxSizeMB:     DefaultLogMaxSizeMB,
		},
	}
}

// normalizeEnvKey 환경변수 이름을 설정 키로 변환합니다. 매핑되지 않은 이름은 빈 문자열을 반환하여 무시되도록 합니다.
func normalizeEnvKey(s string) string {
	return envKeys[strings.ToUpper(s)]
}

// Load 기본 설정 파일(존재하는 경우)과 환경변수를 읽어 설정을 로드합니다.
func Load() (*AppConfig, error) {
	if _, err := os.Stat(DefaultFilename); err != nil {
		if os.IsNotExist(err) {
			return load("")
		}
		return nil, apperrors.Wrapf(err, apperrors.System, "설정 파일 정보를 확인할 수 없습니다: '%s'", DefaultFilename)
	}

	return load(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일과 환경변수를 읽어 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename)
}

func load(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.Wrapf(err, apperrors.NotFound, "설정 파일을 찾을 수 없습니다: '%s'", filename)
			}
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
		}
	}

	// 3. 환경변수 로드 (최우선 순위)
	// 예: LOG_RETENTION_DAYS -> log.retention_days
	if err := k.Load(env.Provider("LOG_", ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 구조체에 없는 필드가 설정 파일에 있으면 에러
			WeaklyTypedInput: true, // 환경변수 문자열("14")을 숫자로 변환
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := checkStruct(newValidator(), appConfig.Log, "로그 설정(log)"); err != nil {
		return nil, err
	}

	return &appConfig, nil
}
