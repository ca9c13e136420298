package certification

import "fmt"

// FlowError is a user-facing certification flow failure.
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
	ErrRoleRequired      = NewValidationError("请选择您的职业身份")
	ErrDocumentsRequired = NewValidationError("请上传执业资格证和职业资格证")
	ErrVerifyInProgress  = NewStateError("人脸识别正在进行中，请稍候")
)
