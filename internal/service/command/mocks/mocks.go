// Package mocks command 패키지가 의존하는 인터페이스의 testify Mock 구현체를 제공합니다.
package mocks

import (
	"context"

	"github.com/darkkaiser/discount-bot/internal/service/discount"
	"github.com/stretchr/testify/mock"
)

// MockParser command.Parser 의 Mock 구현체
type MockParser struct {
	mock.Mock
}

func (m *MockParser) Parse(ctx context.Context, commandText string) (*discount.DiscountIntent, bool) {
	args := m.Called(ctx, commandText)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*discount.DiscountIntent), args.Bool(1)
}

// MockOrchestrator command.Orchestrator 의 Mock 구현체
type MockOrchestrator struct {
	mock.Mock
}

func (m *MockOrchestrator) CreateDiscount(ctx context.Context, intent *discount.DiscountIntent) (*discount.DiscountRecord, error) {
	args := m.Called(ctx, intent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discount.DiscountRecord), args.Error(1)
}

// MockAnnouncer command.Announcer 의 Mock 구현체
type MockAnnouncer struct {
	mock.Mock
}

func (m *MockAnnouncer) Announce(ctx context.Context, subject, htmlBody string) (int, error) {
	args := m.Called(ctx, subject, htmlBody)
	return args.Int(0), args.Error(1)
}

// MockAlerter operator.Alerter 의 Mock 구현체
type MockAlerter struct {
	mock.Mock
}

func (m *MockAlerter) Alert(ctx context.Context, message string) {
	m.Called(ctx, message)
}
