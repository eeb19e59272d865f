package log

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultRetentionDays 오래된 로그 파일 삭제 기준일 기본값
	DefaultRetentionDays = 7

	hoursPerDay = 24
)

// logFilePattern 정리 대상이 되는 로그 파일 이름 패턴
const logFilePattern = "*." + fileExt

// ReapReport 오래된 로그 파일 정리 결과입니다.
// 삭제 실패는 로거 구성을 중단시키지 않으며, 이 보고서를 통해서만 확인할 수 있습니다.
type ReapReport struct {
	Scanned     int      // 검사한 로그 파일 수
	Removed     []string // 삭제된 파일 경로
	FailedPaths []string // 삭제에 실패한 파일 경로
}

// Failed 삭제에 실패한 파일 수를 반환합니다.
func (r ReapReport) Failed() int {
	return len(r.FailedPaths)
}

// RemoveExpiredLogFiles dir 디렉토리에서 수정 시각이 now - retentionDays일 보다 이전인 로그 파일(*.log)을 삭제합니다.
//
//   - 디렉토리가 존재하지 않으면 아무 작업도 하지 않습니다. (최초 실행 시에는 이전 로그가 없음)
//   - 기준 시각과 수정 시각이 정확히 같은 파일은 삭제하지 않습니다.
//   - 삭제 실패(권한 부족, 다른 프로세스의 동시 삭제 등)는 ReapReport에 기록될 뿐 에러로 반환되지 않습니다.
//   - retentionDays가 0 이하이면 아무 파일도 삭제하지 않습니다.
func RemoveExpiredLogFiles(dir string, retentionDays int, now time.Time) ReapReport {
	var report ReapReport

	if retentionDays <= 0 {
		return report
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return report
	}

	cutoff := now.Add(-time.Duration(retentionDays) * hoursPerDay * time.Hour)

	for _, entry := range entries {
		// 디렉토리는 건너뛴다
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if matched, _ := filepath.Match(logFilePattern, fileName); !matched {
			continue
		}

		fileInfo, err := entry.Info()
		if err != nil {
			continue
		}
		if !fileInfo.Mode().IsRegular() {
			continue
		}

		report.Scanned++

		if !fileInfo.ModTime().Before(cutoff) {
			continue
		}

		filePath := filepath.Join(dir, fileName)
		if err := os.Remove(filePath); err != nil {
			report.FailedPaths = append(report.FailedPaths, filePath)
			continue
		}

		report.Removed = append(report.Removed, filePath)
	}

	return report
}
