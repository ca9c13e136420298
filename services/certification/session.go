package certification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carebridge/database/repository"
	"carebridge/models"
	"carebridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = time.Hour

// DefaultCertificationService implements CertificationService. Wizard state
// lives in Redis under a TTL; a passed liveness check registers the provider
// with pending certification for back-office review.
type DefaultCertificationService struct {
	Providers repository.ProviderRepository
	Verifier  FaceVerifier
	Logger    *zap.Logger
}

// NewCertificationService wires a certification service.
func NewCertificationService(providers repository.ProviderRepository, verifier FaceVerifier, logger *zap.Logger) *DefaultCertificationService {
	return &DefaultCertificationService{
		Providers: providers,
		Verifier:  verifier,
		Logger:    logger,
	}
}

// StartCertification opens a fresh wizard run for the provider.
func (s *DefaultCertificationService) StartCertification(ctx context.Context, providerID string) (*models.CertificationSession, error) {
	session := models.CertificationSession{
		SessionID:  uuid.New().String(),
		ProviderID: providerID,
		Step:       models.CertRoleSelect,
		CreatedAt:  time.Now(),
	}
	session.Draft.FaceVerify = models.FaceIdle
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetCertification returns the current wizard state.
func (s *DefaultCertificationService) GetCertification(ctx context.Context, sessionID string) (*models.CertificationSession, error) {
	return s.loadSession(ctx, sessionID)
}

// ChooseRole records the provider role and advances to the profile form.
func (s *DefaultCertificationService) ChooseRole(ctx context.Context, sessionID string, role models.ProviderRole) (*models.CertificationSession, error) {
	return s.transition(ctx, sessionID, func(session models.CertificationSession) (models.CertificationSession, error) {
		return ChooseRole(session, role)
	})
}

// UpdateProfile applies profile-form field changes. Fields are free-text and
// not validated; district toggles beyond the cap are silently ignored.
func (s *DefaultCertificationService) UpdateProfile(ctx context.Context, sessionID string, upd ProfileUpdate) (*models.CertificationSession, error) {
	return s.transition(ctx, sessionID, func(session models.CertificationSession) (models.CertificationSession, error) {
		if session.Step != models.CertProfileForm {
			return session, NewStateError("profile can only be edited on the profile form")
		}
		if upd.Name != nil {
			session.Draft.Profile.Name = *upd.Name
		}
		if upd.Phone != nil {
			session.Draft.Profile.Phone = *upd.Phone
		}
		if upd.City != nil {
			session.Draft.Profile.City = *upd.City
		}
		if upd.Address != nil {
			session.Draft.Profile.Address = *upd.Address
		}
		if upd.ToggleArea != nil {
			session.Draft = ToggleServiceArea(session.Draft, *upd.ToggleArea)
		}
		return session, nil
	})
}

// SubmitProfile advances to document upload.
func (s *DefaultCertificationService) SubmitProfile(ctx context.Context, sessionID string) (*models.CertificationSession, error) {
	return s.transition(ctx, sessionID, SubmitProfile)
}

// AttachCertificate stores an uploaded certificate reference.
func (s *DefaultCertificationService) AttachCertificate(ctx context.Context, sessionID, kind, ref string) (*models.CertificationSession, error) {
	return s.transition(ctx, sessionID, func(session models.CertificationSession) (models.CertificationSession, error) {
		if session.Step != models.CertDocumentUpload {
			return session, NewStateError("certificates are uploaded on the document step")
		}
		draft, err := AttachCertificate(session.Draft, kind, ref)
		if err != nil {
			return session, err
		}
		session.Draft = draft
		return session, nil
	})
}

// AdvanceToLiveness moves to the liveness check once both required
// certificates are uploaded.
func (s *DefaultCertificationService) AdvanceToLiveness(ctx context.Context, sessionID string) (*models.CertificationSession, error) {
	return s.transition(ctx, sessionID, AdvanceToLiveness)
}

// RunFaceVerification runs the liveness check. On failure the check resets
// to idle and can be retried; on success the wizard completes and the
// provider is registered with pending certification.
func (s *DefaultCertificationService) RunFaceVerification(ctx context.Context, sessionID string) (*models.CertificationSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	running, err := BeginFaceVerify(*session)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, running); err != nil {
		return nil, err
	}

	if verifyErr := s.Verifier.Verify(ctx, running.ProviderID); verifyErr != nil {
		reverted := FailFaceVerify(running)
		if saveErr := s.saveSession(ctx, reverted); saveErr != nil {
			s.Logger.Error("Failed to reset liveness state", zap.Error(saveErr))
		}
		return nil, fmt.Errorf("liveness check failed: %w", verifyErr)
	}

	done := CompleteFaceVerify(running)
	if err := s.saveSession(ctx, done); err != nil {
		return nil, err
	}
	s.register(done)
	return &done, nil
}

// Finish discards the wizard session after the completion screen.
func (s *DefaultCertificationService) Finish(ctx context.Context, sessionID string) error {
	return s.deleteSession(ctx, sessionID)
}

// register puts the certified applicant on the roster as pending review. An
// already-known provider just has their status bumped.
func (s *DefaultCertificationService) register(session models.CertificationSession) {
	if err := s.Providers.SetCertStatus(session.ProviderID, models.CertPending); err == nil {
		return
	}
	nurse := models.Nurse{
		ID:         session.ProviderID,
		Name:       session.Draft.Profile.Name,
		Role:       session.Draft.Role,
		CertStatus: models.CertPending,
	}
	if err := s.Providers.AddNurse(nurse); err != nil {
		s.Logger.Error("Failed to register certified provider",
			zap.String("provider", session.ProviderID), zap.Error(err))
	}
}

func (s *DefaultCertificationService) transition(
	ctx context.Context,
	sessionID string,
	fn func(models.CertificationSession) (models.CertificationSession, error),
) (*models.CertificationSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	next, err := fn(*session)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

func sessionKey(sessionID string) string {
	return "certification:" + sessionID
}

func (s *DefaultCertificationService) saveSession(ctx context.Context, session models.CertificationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal certification session: %w", err)
	}
	if err := utils.GetFlowCacheClient().Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store certification session: %w", err)
	}
	return nil
}

func (s *DefaultCertificationService) loadSession(ctx context.Context, sessionID string) (*models.CertificationSession, error) {
	data, err := utils.GetFlowCacheClient().Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("certification session not found or expired: %w", err)
	}
	var session models.CertificationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse certification session: %w", err)
	}
	return &session, nil
}

func (s *DefaultCertificationService) deleteSession(ctx context.Context, sessionID string) error {
	if err := utils.GetFlowCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete certification session: %w", err)
	}
	return nil
}
