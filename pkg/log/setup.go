package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/darkkaiser/csa/internal/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 확장자
	fileExt = "log"

	// 로그 파일명에 사용되는 날짜 형식 (YYYYMMDD)
	fileDateFormat = "20060102"
)

var (
	// 이름별 Logger 레지스트리 (프로세스 전역)
	registryMu sync.Mutex
	registry   = make(map[string]*Logger)
)

// Setup LOG_LEVEL 환경변수와 기본 설정(logs 디렉토리, 7일 보관)으로 Logger를 구성합니다.
// command가 비어 있으면 콘솔에만 출력합니다.
func Setup(name, command string) (*Logger, error) {
	return Configure(Options{
		Name:    name,
		Command: command,
	})
}

// Configure 옵션에 따라 name에 해당하는 Logger를 구성하고 반환합니다.
//
// 구성 순서:
//  1. 로그 레벨 임계값 결정 (Options.Level 또는 LOG_LEVEL, 잘못된 값은 INFO)
//  2. 같은 이름의 Logger가 이미 있으면 기존 싱크를 모두 폐기 (반복 호출 시 중복 출력 방지)
//  3. 콘솔 싱크 연결
//  4. Command가 지정된 경우: 로그 디렉토리 생성 → 오래된 로그 파일 정리 → {Dir}/{Command}-{YYYYMMDD}.log 파일 싱크 연결
//
// 로그 디렉토리 생성이나 로그 파일 열기에 실패하면 에러를 반환합니다.
// 이 경우 재사용된 Logger에는 콘솔 싱크만 연결된 상태로 남습니다.
func Configure(opts Options) (*Logger, error) {
	if err := opts.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "유효하지 않은 로그 설정")
	}
	opts = opts.withDefaults()

	registryMu.Lock()
	defer registryMu.Unlock()

	l, ok := registry[opts.Name]
	if !ok {
		l = newLogger(opts.Name)
		registry[opts.Name] = l
	}

	// 기존 싱크 폐기. 이전 파일을 닫는 중 발생한 에러는 새 구성을 막지 않습니다.
	_ = l.detach()

	formatter := &LineFormatter{}
	console := Sink{
		Kind:   ConsoleSink,
		Level:  opts.Level,
		writer: opts.Console,
	}

	if opts.Command == "" {
		h := newHook(formatter, console)
		l.attach(opts.Level, h, &closer{hook: h}, ReapReport{})

		return l, nil
	}

	file, report, err := openFileSink(opts)
	if err != nil {
		h := newHook(formatter, console)
		l.attach(opts.Level, h, &closer{hook: h}, report)

		return nil, err
	}

	h := newHook(formatter, console, file)
	l.attach(opts.Level, h, &closer{
		closers: []io.Closer{file.writer.(io.Closer)},
		hook:    h,
	}, report)

	return l, nil
}

// openFileSink 로그 디렉토리를 준비하고 오래된 로그를 정리한 뒤 오늘 날짜의 파일 싱크를 생성합니다.
func openFileSink(opts Options) (Sink, ReapReport, error) {
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return Sink{}, ReapReport{}, apperrors.Wrapf(err, apperrors.System, "로그 디렉토리 생성 실패: '%s'", opts.Dir)
	}

	// 오늘 날짜의 파일을 열기 전에 정리하므로, 기록할 파일 자신은 삭제 대상이 되지 않습니다.
	now := opts.Now()
	report := RemoveExpiredLogFiles(opts.Dir, opts.RetentionDays, now)

	filePath := filepath.Join(opts.Dir, fmt.Sprintf("%s-%s.%s", opts.Command, now.Format(fileDateFormat), fileExt))

	// lumberjack은 첫 기록 시점에 파일을 열기 때문에, 파일 열기 실패를 구성 단계에서 확인하기 위해 미리 열어 봅니다.
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return Sink{}, report, apperrors.Wrapf(err, apperrors.System, "로그 파일 열기 실패: '%s'", filePath)
	}
	_ = f.Close()

	return Sink{
		Kind:  FileSink,
		Level: opts.Level,
		Path:  filePath,
		writer: &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: 0, // 보관 기간 관리는 RemoveExpiredLogFiles가 담당
			MaxAge:     0,
			Compress:   false,
			LocalTime:  true,
		},
	}, report, nil
}

// Lookup 이미 구성된 Logger를 재구성하지 않고 반환합니다.
func Lookup(name string) (*Logger, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	l, ok := registry[name]
	return l, ok
}

// Reset 레지스트리에 등록된 모든 Logger를 닫고 레지스트리를 비웁니다.
func Reset() error {
	registryMu.Lock()
	defer registryMu.Unlock()

	var errs []error
	for name, l := range registry {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(registry, name)
	}

	if len(errs) > 0 {
		return apperrors.Wrap(errors.Join(errs...), apperrors.System, "로그 리소스 해제 실패")
	}
	return nil
}
