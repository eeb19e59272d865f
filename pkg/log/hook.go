package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 시스템의 Hook 인터페이스를 구현하여, 하나의 로그 레코드를 등록된 싱크들에 순서대로 분배합니다.
//
// 핵심 역할:
//   - 싱크별 임계값 적용: 각 싱크의 Level보다 덜 심각한 레코드는 해당 싱크에 기록하지 않습니다.
//   - 장애 격리: 콘솔 출력 실패는 표준 에러로 알리고 무시하며, 파일 기록 실패는 logrus에 반환합니다.
type hook struct {
	sinks []Sink

	formatter Formatter

	// 콘솔 쓰기 실패를 알릴 대상 (기본값: os.Stderr)
	diagnostics io.Writer

	mu sync.RWMutex // 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어

	closed bool // true일 경우 모든 로그 기록 요청을 거부
}

func newHook(formatter Formatter, sinks ...Sink) *hook {
	return &hook{
		sinks:       sinks,
		formatter:   formatter,
		diagnostics: os.Stderr,
	}
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
// 임계값 필터링은 Logger 레벨과 싱크별 Level에서 수행하므로 모든 레벨을 수신합니다.
func (h *hook) Levels() []Level {
	return allLevels
}

// Fire 발생한 로그 레코드를 포맷팅한 뒤 싱크 순서대로 기록합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	// 로그 포맷팅 (한 번만 수행하여 재사용)
	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error
	for _, s := range h.sinks {
		if s.writer == nil || !s.accepts(entry.Level) {
			continue
		}

		if _, err := s.writer.Write(msg); err != nil {
			if s.Kind == ConsoleSink {
				// 콘솔 쓰기 실패가 파일 기록을 막지 않도록 에러를 전파하지 않습니다.
				fmt.Fprintf(h.diagnostics, "[LOG-SYSTEM-WARN] 콘솔 출력 실패: %v\n", err)
				continue
			}

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Close Hook을 종료 상태로 전환합니다. 진행 중인 Fire 호출이 모두 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
