package user

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"carebridge/models"
	"carebridge/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const tokenDuration = 7 * 24 * time.Hour

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// ErrInvalidPhone rejects numbers outside the mainland mobile format.
var ErrInvalidPhone = fmt.Errorf("请输入正确的手机号")

// DefaultAuthService implements AuthService on the OTP helpers and the auth
// cache. The auth record is the only per-user state that survives a session.
type DefaultAuthService struct {
	Logger *zap.Logger
}

func NewAuthService(logger *zap.Logger) *DefaultAuthService {
	return &DefaultAuthService{Logger: logger}
}

// RequestOTP validates the phone format and sends a login code. Returns the
// resend cooldown in seconds; a request inside the cooldown returns the
// remaining seconds alongside the error.
func (s *DefaultAuthService) RequestOTP(ctx context.Context, phone string) (int, error) {
	if !phonePattern.MatchString(phone) {
		return 0, ErrInvalidPhone
	}
	return utils.InitiatePhoneOTP(phone)
}

// VerifyOTP consumes the code and, on match, writes the auth record and
// issues a token.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthSession, error) {
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if err := utils.VerifyPhoneOTPRecord(phone, code); err != nil {
		return nil, err
	}

	record := models.AuthRecord{
		IsLoggedIn:      true,
		IsPhoneVerified: true,
		PhoneNumber:     phone,
		Nickname:        "微信用户",
		Avatar:          "https://img.carebridge.cn/avatar/default.png",
	}
	if err := s.saveRecord(ctx, record); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(phone, "user", tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.Logger.Info("User logged in", zap.String("phone", utils.HashToken(phone)[:8]))
	return &models.AuthSession{Token: token, Record: record}, nil
}

// GetAuthRecord reads the stored record; a missing record reads as logged
// out rather than an error.
func (s *DefaultAuthService) GetAuthRecord(ctx context.Context, phone string) (*models.AuthRecord, error) {
	data, err := utils.GetAuthCacheClient().Get(ctx, authKey(phone)).Result()
	if err == redis.Nil {
		return &models.AuthRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read auth record: %w", err)
	}
	var record models.AuthRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to parse auth record: %w", err)
	}
	return &record, nil
}

// Logout clears the auth record.
func (s *DefaultAuthService) Logout(ctx context.Context, phone string) error {
	if err := utils.GetAuthCacheClient().Del(ctx, authKey(phone)).Err(); err != nil {
		return fmt.Errorf("failed to clear auth record: %w", err)
	}
	return nil
}

func (s *DefaultAuthService) saveRecord(ctx context.Context, record models.AuthRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal auth record: %w", err)
	}
	if err := utils.GetAuthCacheClient().Set(ctx, authKey(record.PhoneNumber), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store auth record: %w", err)
	}
	return nil
}

func authKey(phone string) string {
	return "auth:" + phone
}
