// Package status 외부 API(OpenAI, Shopify, Mailjet)의 접근 가능 여부를 점검합니다.
package status

import (
	"context"
	"time"

	applog "github.com/darkkaiser/discount-bot/pkg/log"
)

const component = "status.checker"

// 점검 대상 이름
const (
	NameOpenAI  = "openai"
	NameShopify = "shopify"
	NameMailjet = "mailjet"
)

// Prober 외부 API 에 가벼운 요청을 보내 2xx 응답 여부를 확인합니다.
type Prober interface {
	Probe(ctx context.Context) error
}

// Target 이름이 붙은 점검 대상
type Target struct {
	Name   string
	Prober Prober
}

// Checker 등록된 대상들을 순서대로 점검합니다.
type Checker struct {
	targets []Target
	timeout time.Duration
}

// NewChecker 새로운 Checker 를 생성합니다. timeout 은 대상 하나당 적용됩니다.
func NewChecker(timeout time.Duration, targets ...Target) *Checker {
	return &Checker{
		targets: targets,
		timeout: timeout,
	}
}

// Check 모든 대상을 순차적으로 점검하고 이름별 결과를 반환합니다.
// 점검은 실패하지 않으며, 응답이 2xx 인 대상만 true 입니다.
func (c *Checker) Check(ctx context.Context) map[string]bool {
	statuses := make(map[string]bool, len(c.targets))

	for _, target := range c.targets {
		statuses[target.Name] = c.probe(ctx, target)
	}

	return statuses
}

func (c *Checker) probe(ctx context.Context, target Target) bool {
	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := target.Prober.Probe(probeCtx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"target": target.Name,
			"error":  err,
		}).Debug("외부 API 상태 점검 실패")
		return false
	}

	return true
}
