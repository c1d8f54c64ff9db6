// Package validation 설정 파일과 API 입력값 검증에 사용하는 순수 함수들을 제공합니다.
//
// 모든 함수는 상태를 갖지 않으며, 유효하지 않은 입력에 대해 사람이 읽을 수 있는 error를 반환합니다.
package validation
