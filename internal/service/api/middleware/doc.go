// Package middleware Echo 서버에 적용되는 공통 HTTP 미들웨어를 제공합니다.
//
//   - HTTPLogger: 요청/응답 구조화 로깅 (민감한 쿼리 파라미터 마스킹)
//   - RateLimit: IP 별 요청 속도 제한
//   - PanicRecovery: 패닉 복구 및 스택 트레이스 로깅
//   - ValidateContentType: 요청 본문의 Content-Type 검증
//   - Logger: Echo 로거를 애플리케이션 로거(logrus)로 연결하는 어댑터
package middleware
