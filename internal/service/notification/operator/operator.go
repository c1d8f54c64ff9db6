// Package operator 운영자에게 짧은 텍스트 알림(할인 생성, 메일 발송 실패, 외부 API 상태 변화)을 보냅니다.
//
// 알림 발송 실패는 로그로만 남기며 호출자에게 전달하지 않습니다.
package operator

import (
	"context"
	"sync"
)

// Alerter 운영자 알림 채널
type Alerter interface {
	// Alert 알림을 발송 대기열에 넣습니다. 호출자를 막지 않습니다.
	Alert(ctx context.Context, message string)
}

// Nop 아무 것도 하지 않는 Alerter 입니다. 텔레그램 알림이 비활성화된 경우 사용합니다.
type Nop struct{}

func (Nop) Alert(context.Context, string) {}

// Start 인터페이스를 맞추기 위한 메서드로, 실행할 작업이 없으므로 바로 반환합니다.
func (Nop) Start(_ context.Context, wg *sync.WaitGroup) error {
	wg.Done()
	return nil
}
