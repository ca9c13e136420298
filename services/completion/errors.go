package completion

import "fmt"

// FlowError is a user-facing completion flow failure.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError builds a FlowError for an unmet step precondition.
func NewValidationError(msg string) error {
	return &FlowError{
		Code:    "validationError",
		Message: msg,
	}
}

// NewStateError builds a FlowError for a transition attempted from the wrong step.
func NewStateError(msg string) error {
	return &FlowError{
		Code:    "stateError",
		Message: msg,
	}
}

var (
	ErrCodeIncomplete    = NewValidationError("核销失败：请输入6位完整的核销码。若码无效，请联系客服核实。")
	ErrRecordIncomplete  = NewValidationError("请填写完整的体征数据和服务总结")
	ErrSignatureRequired = NewValidationError("请让客户在签名区完成签字")
	ErrAlreadySubmitting = NewStateError("提交正在处理中，请勿重复操作")
	ErrUnknownReason     = NewValidationError("请选择异常原因")
)
