package log

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// TimestampFormat 로그 라인의 타임스탬프 형식 (밀리초 단위, 로컬 시간)
const TimestampFormat = "2006-01-02 15:04:05.000"

// LineFormatter 로그 레코드를 한 줄로 렌더링하는 포맷터입니다.
//
// 출력 형식:
//
//	2024-01-15 10:30:00.123 [W] : 디스크 공간이 부족합니다
//
// WithField 등으로 추가된 필드가 있으면 메시지 뒤에 키 이름 순으로 " key=value" 형태로 덧붙입니다.
type LineFormatter struct{}

// Format logrus.Formatter 인터페이스를 구현합니다.
// entry.Buffer는 Hook 실행 시점에 아직 할당되지 않으므로 매번 새 버퍼를 사용합니다.
func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString(entry.Time.Format(TimestampFormat))
	b.WriteString(" [")
	b.WriteString(LevelCode(entry.Level))
	b.WriteString("] : ")
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
		}
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

// silentFormatter 아무런 동작도 하지 않는 포맷터입니다.
// Logrus는 출력이 io.Discard라도 포맷팅을 수행하므로 이를 막기 위해 사용합니다. (실제 포맷팅은 Hook에서 수행)
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}
