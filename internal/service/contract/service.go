// Package contract 서비스 간에 공유하는 인터페이스를 정의합니다.
package contract

import (
	"context"
	"sync"
)

// Service main 에서 일괄적으로 시작하고 종료하는 장기 실행 서비스입니다.
//
// Start 는 즉시 반환해야 하며, 서비스가 완전히 종료되면 serviceStopWG.Done() 을 호출해야 합니다.
// 이미 실행 중이면 Done() 을 호출하고 nil 을 반환합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
