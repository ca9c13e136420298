package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carebridge/database/repository"
	"carebridge/models"
	"carebridge/services/tasks"
	"carebridge/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const sessionTTL = 30 * time.Minute

// DefaultBookingFlowService implements BookingFlowService. Session state
// lives in Redis under a TTL; a draft abandoned mid-flow simply expires.
type DefaultBookingFlowService struct {
	Catalog   repository.CatalogRepository
	Providers repository.ProviderRepository
	Orders    repository.OrderRepository
	UserData  repository.UserDataRepository
	Processor PaymentProcessor
	Reminders *asynq.Client // optional; nil disables visit reminders
	Logger    *zap.Logger

	watch *expiryWatch
	nowFn func() time.Time
}

// NewBookingFlowService wires a booking flow service.
func NewBookingFlowService(
	catalog repository.CatalogRepository,
	providers repository.ProviderRepository,
	orders repository.OrderRepository,
	userData repository.UserDataRepository,
	processor PaymentProcessor,
	reminders *asynq.Client,
	logger *zap.Logger,
) *DefaultBookingFlowService {
	return &DefaultBookingFlowService{
		Catalog:   catalog,
		Providers: providers,
		Orders:    orders,
		UserData:  userData,
		Processor: processor,
		Reminders: reminders,
		Logger:    logger,
		watch:     newExpiryWatch(),
		nowFn:     time.Now,
	}
}

// Close stops any payment-window countdowns still running.
func (s *DefaultBookingFlowService) Close() {
	s.watch.stopAll()
}

func (s *DefaultBookingFlowService) now() time.Time {
	if s.nowFn != nil {
		return s.nowFn()
	}
	return time.Now()
}

// InitiateFlow creates a booking session for the given service, preselecting
// the first saved patient and the default address the way the booking screen
// opens.
func (s *DefaultBookingFlowService) InitiateFlow(ctx context.Context, userID, serviceID, nurseID string) (*FlowView, error) {
	svc, err := s.Catalog.GetService(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if nurseID != "" {
		if _, err := s.Providers.GetNurse(nurseID); err != nil {
			return nil, fmt.Errorf("failed to load nurse: %w", err)
		}
	}

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Service:   *svc,
		NurseID:   nurseID,
		Step:      models.BookingCollect,
		CreatedAt: s.now(),
	}
	if patients := s.UserData.ListPatients(); len(patients) > 0 {
		session.Draft.PatientID = patients[0].ID
	}
	if addr := s.UserData.DefaultAddress(); addr != nil {
		session.Draft.AddressID = addr.ID
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// GetFlow returns the current view of a session.
func (s *DefaultBookingFlowService) GetFlow(ctx context.Context, sessionID string) (*FlowView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(*session), nil
}

// UpdateDraft applies draft field changes. Only permitted in COLLECT.
func (s *DefaultBookingFlowService) UpdateDraft(ctx context.Context, sessionID string, upd DraftUpdate) (*FlowView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.BookingCollect {
		return nil, NewStateError("draft can only be edited before payment")
	}

	draft := session.Draft
	if upd.PatientID != nil {
		if _, err := s.UserData.GetPatient(*upd.PatientID); err != nil {
			return nil, err
		}
		draft.PatientID = *upd.PatientID
	}
	if upd.AddressID != nil {
		if _, err := s.UserData.GetAddress(*upd.AddressID); err != nil {
			return nil, err
		}
		draft.AddressID = *upd.AddressID
	}
	if upd.CouponID != nil {
		if *upd.CouponID == "" {
			draft.CouponID = ""
		} else {
			if _, err := s.UserData.GetCoupon(*upd.CouponID); err != nil {
				return nil, err
			}
			draft.CouponID = *upd.CouponID
		}
	}
	if upd.SlotDate != nil && upd.SlotTime != nil {
		draft = SelectSlot(draft, BuildSlotGrid(s.now()), *upd.SlotDate, *upd.SlotTime)
	}
	if upd.AddProofImage != nil {
		draft, err = AddProofImage(draft, *upd.AddProofImage)
		if err != nil {
			return nil, err
		}
	}
	if upd.RemoveProofIndex != nil {
		draft = RemoveProofImage(draft, *upd.RemoveProofIndex)
	}
	if upd.AgreementAccepted != nil {
		draft.AgreementAccepted = *upd.AgreementAccepted
	}

	session.Draft = draft
	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}
	return s.view(*session), nil
}

// RequestPayment opens the payment sheet when the draft is complete and
// starts the payment-window countdown.
func (s *DefaultBookingFlowService) RequestPayment(ctx context.Context, sessionID string) (*FlowView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	next, err := BeginPayment(*session, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, next); err != nil {
		return nil, err
	}

	logger := s.Logger
	s.watch.start(sessionID, PaymentWindowSeconds, func() {
		logger.Warn("Payment window expired", zap.String("session", sessionID))
	})
	return s.view(next), nil
}

// ConfirmPayment runs the payment processor and, on success, places the
// order, schedules a visit reminder, and terminates the flow.
func (s *DefaultBookingFlowService) ConfirmPayment(ctx context.Context, sessionID string) (*FlowView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	submitting, err := BeginSubmit(*session, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, submitting); err != nil {
		return nil, err
	}

	total, err := s.total(submitting)
	if err != nil {
		return nil, err
	}
	_, payErr := s.Processor.ProcessPayment(ctx, models.PaymentRequest{
		SessionID: sessionID,
		UserID:    submitting.UserID,
		Amount:    total,
		Currency:  "CNY",
	})
	if payErr != nil {
		reverted := FailSubmit(submitting)
		if saveErr := s.saveSession(ctx, reverted); saveErr != nil {
			s.Logger.Error("Failed to revert submitting session", zap.Error(saveErr))
		}
		return nil, fmt.Errorf("payment failed: %w", payErr)
	}

	orderID := NewOrderID(s.now())
	if err := s.placeOrder(submitting, orderID, total); err != nil {
		reverted := FailSubmit(submitting)
		if saveErr := s.saveSession(ctx, reverted); saveErr != nil {
			s.Logger.Error("Failed to revert submitting session", zap.Error(saveErr))
		}
		return nil, err
	}
	s.scheduleReminder(submitting, orderID)

	done := CompleteSubmit(submitting, orderID)
	s.watch.stop(sessionID)
	if err := s.deleteSession(ctx, sessionID); err != nil {
		s.Logger.Error("Failed to delete booking session", zap.Error(err))
	}
	return s.view(done), nil
}

// CancelPayment closes the payment sheet and returns to COLLECT. Not
// permitted while a submission is in flight.
func (s *DefaultBookingFlowService) CancelPayment(ctx context.Context, sessionID string) (*FlowView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	next, err := AbortPayment(*session)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, next); err != nil {
		return nil, err
	}
	s.watch.stop(sessionID)
	return s.view(next), nil
}

// CancelFlow discards the whole session.
func (s *DefaultBookingFlowService) CancelFlow(ctx context.Context, sessionID string) error {
	s.watch.stop(sessionID)
	return s.deleteSession(ctx, sessionID)
}

func (s *DefaultBookingFlowService) total(session models.BookingSession) (float64, error) {
	var coupon *models.Coupon
	if session.Draft.CouponID != "" {
		c, err := s.UserData.GetCoupon(session.Draft.CouponID)
		if err != nil {
			return 0, err
		}
		coupon = c
	}
	return PayableTotal(session.Service, coupon), nil
}

func (s *DefaultBookingFlowService) placeOrder(session models.BookingSession, orderID string, total float64) error {
	patient, err := s.UserData.GetPatient(session.Draft.PatientID)
	if err != nil {
		return err
	}
	addr, err := s.UserData.GetAddress(session.Draft.AddressID)
	if err != nil {
		return err
	}

	order := models.Order{
		ID:           orderID,
		ServiceName:  session.Service.Name,
		Status:       models.OrderWaitingAcceptance,
		Price:        total,
		PaidAmount:   total,
		Date:         session.Draft.TimeSlot,
		ImageURL:     session.Service.ImageURL,
		Address:      addr.Address,
		RoomNumber:   addr.RoomNumber,
		CustomerName: patient.Name,
		UserID:       session.UserID,
		CreateTime:   s.now(),
	}
	if session.NurseID != "" {
		if nurse, err := s.Providers.GetNurse(session.NurseID); err == nil {
			order.NurseID = nurse.ID
			order.Nurse = nurse
			order.Status = models.OrderWaitingService
		}
	}
	return s.Orders.Create(order)
}

func (s *DefaultBookingFlowService) scheduleReminder(session models.BookingSession, orderID string) {
	if s.Reminders == nil {
		return
	}
	visitAt, ok := visitTimeFromSlot(s.now(), session.Draft.TimeSlot)
	if !ok {
		return
	}
	fireAt := visitAt.Add(-time.Hour)
	if fireAt.Before(s.now()) {
		fireAt = s.now().Add(time.Minute)
	}
	task, opts, err := tasks.NewVisitReminderTask(models.ReminderPayload{
		OrderID:     orderID,
		UserID:      session.UserID,
		ServiceName: session.Service.Name,
		VisitTime:   session.Draft.TimeSlot,
	}, fireAt)
	if err != nil {
		s.Logger.Error("Failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		s.Logger.Error("Failed to enqueue reminder task", zap.Error(err))
	}
}

// visitTimeFromSlot resolves a composite "dateLabel HH:MM" slot back to a
// concrete time using the same grid the slot was chosen from.
func visitTimeFromSlot(now time.Time, slot string) (time.Time, bool) {
	var label, hhmm string
	if n, err := fmt.Sscanf(slot, "%s %s", &label, &hhmm); err != nil || n != 2 {
		return time.Time{}, false
	}
	grid := BuildSlotGrid(now)
	for _, d := range grid.Dates {
		if d.Label != label {
			continue
		}
		t, err := time.ParseInLocation("2006-01-02 15:04", d.Date+" "+hhmm, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

func (s *DefaultBookingFlowService) view(session models.BookingSession) *FlowView {
	view := &FlowView{
		Session:  session,
		SlotGrid: BuildSlotGrid(s.now()),
	}
	var coupon *models.Coupon
	if session.Draft.CouponID != "" {
		if c, err := s.UserData.GetCoupon(session.Draft.CouponID); err == nil {
			coupon = c
		}
	}
	view.PayableTotal = PayableTotal(session.Service, coupon)
	if session.Payment != nil {
		view.PaymentRemaining = PaymentRemaining(session, s.now())
		view.PaymentClock = utils.FormatMMSS(view.PaymentRemaining)
	}
	return view
}

func sessionKey(sessionID string) string {
	return "booking:" + sessionID
}

func (s *DefaultBookingFlowService) saveSession(ctx context.Context, session models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := utils.GetFlowCacheClient().Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingFlowService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := utils.GetFlowCacheClient().Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingFlowService) deleteSession(ctx context.Context, sessionID string) error {
	if err := utils.GetFlowCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
