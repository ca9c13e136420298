package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestOTPRejectsBadPhones(t *testing.T) {
	svc := NewAuthService(zap.NewNop())

	for _, phone := range []string{
		"",
		"12345",
		"21381234567",  // bad prefix
		"1381234567",   // too short
		"138123456789", // too long
		"13812345a78",
	} {
		_, err := svc.RequestOTP(context.Background(), phone)
		assert.ErrorIs(t, err, ErrInvalidPhone, "phone %q should be rejected", phone)
	}
}

func TestVerifyOTPRejectsBadPhones(t *testing.T) {
	svc := NewAuthService(zap.NewNop())
	_, err := svc.VerifyOTP(context.Background(), "12345", "123456")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestPhonePattern(t *testing.T) {
	assert.True(t, phonePattern.MatchString("13812345678"))
	assert.True(t, phonePattern.MatchString("19912345678"))
	assert.False(t, phonePattern.MatchString("12812345678"))
	assert.False(t, phonePattern.MatchString("2381234567"))
}
