// Package log logrus 기반의 애플리케이션 공용 로거를 제공합니다.
//
// 모든 로그는 component 필드를 포함하도록 WithComponent 계열 함수를 통해 기록합니다.
//
//	applog.WithComponentAndFields("discount.service", applog.Fields{
//	    "rule_id": id,
//	}).Info("가격 규칙 생성 완료")
package log

import (
	"github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithComponent component 필드가 설정된 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 Entry를 반환합니다.
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component

	return logrus.WithFields(merged)
}

// WithFields component 없이 필드만 설정된 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// SetLevel 전역 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// MaskSensitiveData API 키, 토큰 등 민감 정보를 로그에 남길 수 있도록 가립니다.
//
//	"sk-abc"                 -> "sk-a***"
//	"shpat_0123456789abcdef" -> "shpa***cdef"
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
