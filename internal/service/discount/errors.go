package discount

import "fmt"

// OrphanedRuleError 할인 규칙은 생성되었지만 뒤따르는 할인 코드 발급이 실패한 상태를 나타냅니다.
//
// 생성된 규칙은 되돌리지 않으므로 운영자가 RuleID 로 직접 정리해야 합니다.
type OrphanedRuleError struct {
	RuleID int64
	Err    error
}

func (e *OrphanedRuleError) Error() string {
	return fmt.Sprintf("price_rule_id=%d: %v", e.RuleID, e.Err)
}

func (e *OrphanedRuleError) Unwrap() error {
	return e.Err
}
