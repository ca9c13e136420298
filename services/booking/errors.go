package booking

import "fmt"

// FlowError is a user-facing booking flow failure.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError builds a FlowError for an unmet draft precondition.
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

// Draft preconditions, reported in fixed priority order.
var (
	ErrPatientRequired   = NewValidationError("请选择或添加被服务人")
	ErrAddressRequired   = NewValidationError("请设置服务地址")
	ErrTimeSlotRequired  = NewValidationError("请选择预约时间")
	ErrProofRequired     = NewValidationError("请上传就医证明")
	ErrAgreementRequired = NewValidationError("请阅读并勾选预约协议")
)

var (
	ErrPaymentExpired    = NewStateError("支付剩余时间已结束，请重新发起预约")
	ErrAlreadySubmitting = NewStateError("支付正在处理中，请勿重复提交")
	ErrProofLimit        = NewValidationError("就医证明最多上传3张")
)
