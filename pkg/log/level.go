package log

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	// CriticalLevel 가장 높은 심각도입니다. logrus의 FatalLevel에 대응하지만,
	// 이 패키지를 통해 기록하면 os.Exit()을 호출하지 않고 로그만 남깁니다.
	CriticalLevel Level = logrus.FatalLevel

	// ErrorLevel 에러 상황입니다.
	ErrorLevel Level = logrus.ErrorLevel

	// WarningLevel 당장 에러는 아니지만 주의가 필요한 상태입니다.
	WarningLevel Level = logrus.WarnLevel

	// InfoLevel 일반적인 정보입니다. 레벨 설정이 없거나 잘못된 경우의 기본값입니다.
	InfoLevel Level = logrus.InfoLevel

	// DebugLevel 디버깅 정보입니다.
	DebugLevel Level = logrus.DebugLevel
)

// LevelEnvKey 로그 레벨을 지정하는 환경변수 이름
const LevelEnvKey = "LOG_LEVEL"

var levelNames = map[string]Level{
	"DEBUG":    DebugLevel,
	"INFO":     InfoLevel,
	"WARNING":  WarningLevel,
	"ERROR":    ErrorLevel,
	"CRITICAL": CriticalLevel,
}

var levelCodes = map[Level]string{
	DebugLevel:    "D",
	InfoLevel:     "I",
	WarningLevel:  "W",
	ErrorLevel:    "E",
	CriticalLevel: "C",
}

// ParseLevel 로그 레벨 문자열을 Level로 변환합니다.
//
// 앞뒤 공백을 제거하고 대소문자를 구분하지 않습니다. DEBUG, INFO, WARNING, ERROR, CRITICAL 이외의
// 값(빈 문자열 포함)은 에러 없이 InfoLevel로 처리됩니다.
func ParseLevel(s string) Level {
	if level, ok := levelNames[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return level
	}
	return InfoLevel
}

// LevelFromEnv LOG_LEVEL 환경변수에서 로그 레벨을 읽습니다.
func LevelFromEnv() Level {
	return ParseLevel(os.Getenv(LevelEnvKey))
}

// LevelCode 로그 라인에 표시되는 1자리 레벨 코드를 반환합니다. (D/I/W/E/C)
// 5개 레벨 이외의 레벨(Trace, Panic)은 레벨 이름의 첫 글자를 사용합니다.
func LevelCode(level Level) string {
	if code, ok := levelCodes[level]; ok {
		return code
	}

	name := strings.ToUpper(level.String())
	if name == "" {
		return "?"
	}
	return name[:1]
}
