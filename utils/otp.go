package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	otpTTL         = 5 * time.Minute
	resendCooldown = 60 * time.Second
)

// generateNumericOTP generates a secure random numeric code of the specified length.
func generateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// SendSMSMessage delivers an SMS to the given phone number. The SMS gateway
// integration is stubbed; the outgoing message is logged instead.
func SendSMSMessage(phoneNumber, message string) error {
	GetLogger().Sugar().Infof("Sending SMS to %s: %s", phoneNumber, message)
	return nil
}

// InitiatePhoneOTP generates a 6-digit code, stores it in Redis with a 5-minute
// TTL, sends it via SMS, and sets a 60-second resend cooldown for the number.
// It returns the cooldown duration in seconds.
func InitiatePhoneOTP(phoneNumber string) (int, error) {
	ctx := context.Background()
	client := GetOTPCacheClient()

	cooldownKey := fmt.Sprintf("otp:cooldown:%s", phoneNumber)
	if ttl, err := client.TTL(ctx, cooldownKey).Result(); err == nil && ttl > 0 {
		return int(ttl.Seconds()), fmt.Errorf("code already sent, retry in %d seconds", int(ttl.Seconds()))
	}

	otp, err := generateNumericOTP(6)
	if err != nil {
		return 0, fmt.Errorf("failed to generate OTP: %w", err)
	}

	otpKey := fmt.Sprintf("otp:%s", phoneNumber)
	if err := client.Set(ctx, otpKey, otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return 0, fmt.Errorf("failed to initiate phone OTP")
	}
	if err := client.Set(ctx, cooldownKey, "1", resendCooldown).Err(); err != nil {
		GetLogger().Error("Failed to set OTP cooldown", zap.Error(err))
	}

	message := fmt.Sprintf("Your CareBridge verification code is: %s. It expires in 5 minutes.", otp)
	if err := SendSMSMessage(phoneNumber, message); err != nil {
		GetLogger().Error("Failed to send OTP via SMS", zap.Error(err))
		return 0, fmt.Errorf("failed to send OTP")
	}

	GetLogger().Sugar().Infof("Sent OTP to phone %s (expires in %v)", phoneNumber, otpTTL)
	return int(resendCooldown.Seconds()), nil
}

// VerifyPhoneOTPRecord retrieves the stored code from Redis and compares it to
// the provided one. On match the code is consumed.
func VerifyPhoneOTPRecord(phoneNumber, providedOTP string) error {
	otpKey := fmt.Sprintf("otp:%s", phoneNumber)
	ctx := context.Background()
	client := GetOTPCacheClient()

	storedOTP, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
