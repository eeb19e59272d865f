package log

import (
	"io"
)

// SinkKind 싱크(로그 출력 대상)의 종류입니다.
type SinkKind int

const (
	// ConsoleSink 표준 에러(콘솔) 출력
	ConsoleSink SinkKind = iota

	// FileSink 날짜별 로그 파일 출력
	FileSink
)

func (k SinkKind) String() string {
	switch k {
	case ConsoleSink:
		return "console"
	case FileSink:
		return "file"
	default:
		return "unknown"
	}
}

// Sink 포맷된 로그 레코드를 수신하는 출력 대상입니다.
type Sink struct {
	Kind  SinkKind
	Level Level  // 이 싱크가 기록하는 최소 심각도
	Path  string // FileSink인 경우 로그 파일 경로

	writer io.Writer
}

// accepts 주어진 레벨의 레코드를 이 싱크가 기록해야 하는지 여부를 반환합니다.
// logrus는 숫자가 작을수록 심각도가 높습니다.
func (s Sink) accepts(level Level) bool {
	return level <= s.Level
}
