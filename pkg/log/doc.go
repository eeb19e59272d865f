// Package log 명령어 단위 로거 구성 기능을 제공합니다.
//
// Configure(또는 Setup)는 이름으로 식별되는 Logger를 만들고, 항상 콘솔(표준 에러) 싱크를 연결하며
// 명령어 이름이 주어지면 logs/{명령어}-{YYYYMMDD}.log 파일 싱크를 추가로 연결합니다.
// 파일 싱크를 열기 전에는 보관 기간(기본 7일)이 지난 로그 파일을 정리합니다.
//
// 로그 라인 형식:
//
//	2024-01-15 10:30:00.123 [W] : 메시지
//
// 사용 예시:
//
//	logger, err := log.Setup("csa", "analyze")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("분석을 시작합니다")
package log
