package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carebridge/database/repository"
	"carebridge/models"
	"carebridge/services/storage"
	"carebridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = 2 * time.Hour

// Signature pad canvas dimensions, matching the capture surface.
const (
	signatureWidth  = 600
	signatureHeight = 300
)

// DefaultCompletionService implements CompletionService. Flow state lives in
// Redis under a TTL; a successful submission attaches the care record to the
// order and completes it.
type DefaultCompletionService struct {
	Orders    repository.OrderRepository
	Providers repository.ProviderRepository
	Verifier  CodeVerifier
	Submitter RecordSubmitter
	Storage   storage.StorageService
	Logger    *zap.Logger
}

// NewCompletionService wires a task-completion service.
func NewCompletionService(
	orders repository.OrderRepository,
	providers repository.ProviderRepository,
	verifier CodeVerifier,
	submitter RecordSubmitter,
	store storage.StorageService,
	logger *zap.Logger,
) *DefaultCompletionService {
	return &DefaultCompletionService{
		Orders:    orders,
		Providers: providers,
		Verifier:  verifier,
		Submitter: submitter,
		Storage:   store,
		Logger:    logger,
	}
}

// StartCompletion opens a completion flow for an order the provider is
// serving.
func (s *DefaultCompletionService) StartCompletion(ctx context.Context, providerID, orderID string) (*models.CompletionSession, error) {
	order, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.NurseID != "" && order.NurseID != providerID {
		return nil, NewStateError("order is assigned to another provider")
	}
	switch order.Status {
	case models.OrderWaitingService, models.OrderOngoing:
	default:
		return nil, NewStateError("order is not awaiting service")
	}

	session := models.CompletionSession{
		SessionID:    uuid.New().String(),
		ProviderID:   providerID,
		OrderID:      orderID,
		CustomerName: order.CustomerName,
		Step:         models.CompletionVerify,
		CreatedAt:    time.Now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetCompletion returns the current flow state.
func (s *DefaultCompletionService) GetCompletion(ctx context.Context, sessionID string) (*models.CompletionSession, error) {
	return s.loadSession(ctx, sessionID)
}

// SubmitVerificationCode checks the visit code. An incomplete code is
// rejected before the verifier is consulted; on success the visit starts and
// the order moves to ongoing.
func (s *DefaultCompletionService) SubmitVerificationCode(ctx context.Context, sessionID, code string) (*models.CompletionSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.CompletionVerify {
		return nil, NewStateError("check-in happens at the start of the visit")
	}
	if !CanVerify(code) {
		return nil, ErrCodeIncomplete
	}
	if err := s.Verifier.VerifyCode(ctx, session.OrderID, code); err != nil {
		return nil, err
	}

	next, err := CompleteVerify(*session, code)
	if err != nil {
		return nil, err
	}
	if err := s.Orders.UpdateStatus(session.OrderID, models.OrderOngoing); err != nil {
		s.Logger.Warn("Failed to mark order ongoing", zap.String("order", session.OrderID), zap.Error(err))
	}
	if err := s.saveSession(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// UpdateRecord applies care-record field changes.
func (s *DefaultCompletionService) UpdateRecord(ctx context.Context, sessionID string, upd RecordUpdate) (*models.CompletionSession, error) {
	return s.transition(ctx, sessionID, func(session models.CompletionSession) (models.CompletionSession, error) {
		if session.Step != models.CompletionRecord {
			return session, NewStateError("the record is edited during the visit")
		}
		if upd.BP != nil {
			session.Draft.Vitals.BP = *upd.BP
		}
		if upd.Temp != nil {
			session.Draft.Vitals.Temp = *upd.Temp
		}
		if upd.Pulse != nil {
			session.Draft.Vitals.Pulse = *upd.Pulse
		}
		if upd.Summary != nil {
			session.Draft.Summary = *upd.Summary
		}
		return session, nil
	})
}

// AddSitePhotos appends site photo refs, truncating past the cap.
func (s *DefaultCompletionService) AddSitePhotos(ctx context.Context, sessionID string, refs []string) (*models.CompletionSession, error) {
	return s.transition(ctx, sessionID, func(session models.CompletionSession) (models.CompletionSession, error) {
		if session.Step != models.CompletionRecord {
			return session, NewStateError("photos are added during the visit")
		}
		session.Draft = AddSitePhotos(session.Draft, refs)
		return session, nil
	})
}

// RemoveSitePhoto drops one site photo.
func (s *DefaultCompletionService) RemoveSitePhoto(ctx context.Context, sessionID string, index int) (*models.CompletionSession, error) {
	return s.transition(ctx, sessionID, func(session models.CompletionSession) (models.CompletionSession, error) {
		if session.Step != models.CompletionRecord {
			return session, NewStateError("photos are edited during the visit")
		}
		session.Draft = RemoveSitePhoto(session.Draft, index)
		return session, nil
	})
}

// AdvanceToSign moves to the signature pad once the record is complete.
func (s *DefaultCompletionService) AdvanceToSign(ctx context.Context, sessionID string) (*models.CompletionSession, error) {
	return s.transition(ctx, sessionID, AdvanceToSign)
}

// ApplyPointerEvents folds a batch of capture-surface samples into the
// signature.
func (s *DefaultCompletionService) ApplyPointerEvents(ctx context.Context, sessionID string, events []models.PointerEvent) (*models.CompletionSession, error) {
	return s.transition(ctx, sessionID, func(session models.CompletionSession) (models.CompletionSession, error) {
		if session.Step != models.CompletionSign {
			return session, NewStateError("signing follows the care record")
		}
		for _, ev := range events {
			session.Draft = ApplyPointerEvent(session.Draft, ev)
		}
		return session, nil
	})
}

// ClearSignature wipes the pad.
func (s *DefaultCompletionService) ClearSignature(ctx context.Context, sessionID string) (*models.CompletionSession, error) {
	return s.transition(ctx, sessionID, func(session models.CompletionSession) (models.CompletionSession, error) {
		if session.Step != models.CompletionSign {
			return session, NewStateError("signing follows the care record")
		}
		session.Draft = ClearStrokes(session.Draft)
		return session, nil
	})
}

// ConfirmSignature renders the strokes to a PNG, uploads it, and advances to
// the preview.
func (s *DefaultCompletionService) ConfirmSignature(ctx context.Context, sessionID string) (*models.CompletionSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.CompletionSign {
		return nil, NewStateError("signing follows the care record")
	}
	if !HasSignature(session.Draft) {
		return nil, ErrSignatureRequired
	}

	data, err := RenderSignature(session.Draft.Strokes, signatureWidth, signatureHeight)
	if err != nil {
		return nil, err
	}
	ref, err := s.Storage.UploadImage(ctx, "signatures", session.OrderID+"-"+session.SessionID, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store signature: %w", err)
	}

	next, err := CompleteSign(*session, ref)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Submit files the care record, completes the order, and ends the flow.
// A failed filing releases the guard so the provider can retry.
func (s *DefaultCompletionService) Submit(ctx context.Context, sessionID string) (*models.Order, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	submitting, err := BeginSubmit(*session)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, submitting); err != nil {
		return nil, err
	}

	record := s.buildRecord(submitting)
	if submitErr := s.Submitter.SubmitRecord(ctx, submitting.OrderID, record); submitErr != nil {
		reverted := FailSubmit(submitting)
		if saveErr := s.saveSession(ctx, reverted); saveErr != nil {
			s.Logger.Error("Failed to release submit guard", zap.Error(saveErr))
		}
		return nil, fmt.Errorf("failed to file care record: %w", submitErr)
	}

	if err := s.Orders.AttachRecord(submitting.OrderID, record); err != nil {
		return nil, err
	}
	if err := s.Orders.UpdateStatus(submitting.OrderID, models.OrderCompleted); err != nil {
		return nil, err
	}
	if err := s.deleteSession(ctx, sessionID); err != nil {
		s.Logger.Error("Failed to delete completion session", zap.Error(err))
	}
	return s.Orders.Get(submitting.OrderID)
}

// ReportException ends the visit abnormally. Allowed from any step after
// check-in; the reason must come from the fixed list.
func (s *DefaultCompletionService) ReportException(ctx context.Context, sessionID, reason string) error {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !CanReportException(session.Step) {
		return NewStateError("exceptions are reported after check-in")
	}
	if !ValidExceptionReason(reason) {
		return ErrUnknownReason
	}
	if err := s.Orders.Cancel(session.OrderID, reason); err != nil {
		return err
	}
	s.Logger.Info("Visit ended abnormally",
		zap.String("order", session.OrderID), zap.String("reason", reason))
	return s.deleteSession(ctx, sessionID)
}

func (s *DefaultCompletionService) buildRecord(session models.CompletionSession) models.NursingRecord {
	record := models.NursingRecord{
		ID:           uuid.New().String(),
		OrderID:      session.OrderID,
		Date:         time.Now().Format("2006-01-02"),
		Vitals:       session.Draft.Vitals,
		Content:      session.Draft.Summary,
		Photos:       session.Draft.SitePhotos,
		SignatureRef: session.Draft.SignatureRef,
	}
	if order, err := s.Orders.Get(session.OrderID); err == nil {
		record.ServiceName = order.ServiceName
	}
	if nurse, err := s.Providers.GetNurse(session.ProviderID); err == nil {
		record.NurseName = nurse.Name
	}
	return record
}

func (s *DefaultCompletionService) transition(
	ctx context.Context,
	sessionID string,
	fn func(models.CompletionSession) (models.CompletionSession, error),
) (*models.CompletionSession, error) {
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
	return "completion:" + sessionID
}

func (s *DefaultCompletionService) saveSession(ctx context.Context, session models.CompletionSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal completion session: %w", err)
	}
	if err := utils.GetFlowCacheClient().Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store completion session: %w", err)
	}
	return nil
}

func (s *DefaultCompletionService) loadSession(ctx context.Context, sessionID string) (*models.CompletionSession, error) {
	data, err := utils.GetFlowCacheClient().Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("completion session not found or expired: %w", err)
	}
	var session models.CompletionSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse completion session: %w", err)
	}
	return &session, nil
}

func (s *DefaultCompletionService) deleteSession(ctx context.Context, sessionID string) error {
	if err := utils.GetFlowCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete completion session: %w", err)
	}
	return nil
}
