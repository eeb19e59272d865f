package log

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger 이름으로 식별되는 로거 핸들입니다.
//
// 각 Logger는 전용 logrus.Logger를 소유하며, 레코드를 logrus.StandardLogger()나 다른 Logger로
// 전달(propagation)하지 않습니다. 같은 이름으로 Configure를 다시 호출하면 동일한 핸들이 재사용되고
// 기존 싱크는 모두 폐기된 뒤 새로 구성됩니다.
type Logger struct {
	name string

	// base 실제 로깅을 수행하는 logrus 인스턴스. 핸들이 생성된 이후 교체되지 않습니다.
	base *logrus.Logger

	mu       sync.RWMutex
	level    Level
	sinks    []Sink
	lastReap ReapReport
	closer   io.Closer
}

func newLogger(name string) *Logger {
	base := logrus.New()

	// logrus의 기본 출력은 비활성화하고, 모든 출력은 Hook에 위임합니다.
	base.SetOutput(io.Discard)
	base.SetFormatter(&silentFormatter{})
	base.SetReportCaller(false)

	return &Logger{
		name:  name,
		base:  base,
		level: InfoLevel,
	}
}

// Name 레지스트리에 등록된 이름을 반환합니다.
func (l *Logger) Name() string {
	return l.name
}

// Level 현재 적용된 로그 레벨 임계값을 반환합니다.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.level
}

// Propagate 상위 로거로의 레코드 전달 여부를 반환합니다. 항상 false입니다.
func (l *Logger) Propagate() bool {
	return false
}

// Sinks 현재 연결된 싱크 목록을 순서대로 반환합니다. (콘솔, 파일)
func (l *Logger) Sinks() []Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sinks := make([]Sink, len(l.sinks))
	copy(sinks, l.sinks)

	return sinks
}

// FilePath 파일 싱크의 로그 파일 경로를 반환합니다. 파일 싱크가 없으면 빈 문자열을 반환합니다.
func (l *Logger) FilePath() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, s := range l.sinks {
		if s.Kind == FileSink {
			return s.Path
		}
	}
	return ""
}

// LastReap 가장 최근 구성 시 수행된 오래된 로그 파일 정리 결과를 반환합니다.
func (l *Logger) LastReap() ReapReport {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.lastReap
}

// attach 싱크와 리소스를 핸들에 연결하고 Hook을 교체합니다.
// 호출 전에 detach가 수행되어 있어야 합니다.
func (l *Logger) attach(level Level, h *hook, c io.Closer, report ReapReport) {
	l.mu.Lock()
	defer l.mu.Unlock()

	hooks := make(logrus.LevelHooks)
	hooks.Add(h)
	l.base.ReplaceHooks(hooks)
	l.base.SetLevel(level)

	l.level = level
	l.sinks = h.sinks
	l.closer = c
	l.lastReap = report
}

// detach 연결된 모든 싱크를 폐기하고 관련 리소스를 해제합니다.
func (l *Logger) detach() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.base.ReplaceHooks(make(logrus.LevelHooks))
	l.sinks = nil

	var err error
	if l.closer != nil {
		err = l.closer.Close()
		l.closer = nil
	}

	return err
}

// Close 모든 싱크를 비활성화하고 로그 파일을 닫습니다. 여러 번 호출해도 안전합니다.
// 닫힌 Logger는 Configure를 다시 호출하여 재구성할 수 있습니다.
func (l *Logger) Close() error {
	return l.detach()
}

// WithField 단일 필드를 포함한 로그 Entry를 반환합니다.
func (l *Logger) WithField(key string, value any) *Entry {
	return l.base.WithField(key, value)
}

// WithFields 여러 필드를 포함한 로그 Entry를 반환합니다.
func (l *Logger) WithFields(fields Fields) *Entry {
	return l.base.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func (l *Logger) WithComponent(component string) *Entry {
	return l.base.WithField("component", component)
}

func (l *Logger) Debug(args ...any) {
	l.base.Log(DebugLevel, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.base.Logf(DebugLevel, format, args...)
}

func (l *Logger) Info(args ...any) {
	l.base.Log(InfoLevel, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.base.Logf(InfoLevel, format, args...)
}

func (l *Logger) Warning(args ...any) {
	l.base.Log(WarningLevel, args...)
}

func (l *Logger) Warningf(format string, args ...any) {
	l.base.Logf(WarningLevel, format, args...)
}

func (l *Logger) Error(args ...any) {
	l.base.Log(ErrorLevel, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.base.Logf(ErrorLevel, format, args...)
}

// Critical 치명적 오류를 기록합니다. logrus의 Fatal과 달리 프로세스를 종료하지 않습니다.
func (l *Logger) Critical(args ...any) {
	l.base.Log(CriticalLevel, args...)
}

// Criticalf 포맷 문자열을 사용하여 치명적 오류를 기록합니다. 프로세스를 종료하지 않습니다.
func (l *Logger) Criticalf(format string, args ...any) {
	l.base.Logf(CriticalLevel, format, args...)
}
