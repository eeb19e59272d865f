package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 하나의 Logger 구성에서 생성된 리소스(Hook, 파일 싱크)의 해제를 통합 관리합니다.
//
//   - Hook을 먼저 닫아 종료 중인 파일에 대한 쓰기 시도를 차단합니다.
//   - 일부 리소스 닫기에 실패하더라도 나머지 리소스의 Close()를 모두 수행합니다.
//   - Close()를 여러 번 호출해도 안전하며, 두 번째 이후 호출은 즉시 nil을 반환합니다.
type closer struct {
	closers []io.Closer

	hook io.Closer

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}

		// 파일 닫기 전 Sync()로 버퍼에 남은 로그를 디스크에 기록합니다. Sync 에러는 무시합니다.
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}

		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
