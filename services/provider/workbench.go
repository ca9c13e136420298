package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carebridge/database/repository"
	"carebridge/models"
	"carebridge/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GrabWindowSeconds is how long an opened task stays reserved for the
// provider before it returns to the pool.
const GrabWindowSeconds = 180

// ErrGrabExpired rejects a grab after the window closed.
var ErrGrabExpired = fmt.Errorf("手慢了，接单时限已过，任务已放回任务池")

// ErrTaskTaken rejects opening a task that is no longer up for grabs.
var ErrTaskTaken = fmt.Errorf("该任务已被其他人接走")

// DefaultWorkbenchService implements WorkbenchService. The grab window is
// enforced by a Redis TTL; a countdown per open offer logs expiry so the
// reservation's lifecycle is visible server-side.
type DefaultWorkbenchService struct {
	Orders    repository.OrderRepository
	Providers repository.ProviderRepository
	Logger    *zap.Logger

	mu     sync.Mutex
	timers map[string]*utils.Countdown
}

func NewWorkbenchService(orders repository.OrderRepository, providers repository.ProviderRepository, logger *zap.Logger) *DefaultWorkbenchService {
	return &DefaultWorkbenchService{
		Orders:    orders,
		Providers: providers,
		Logger:    logger,
		timers:    make(map[string]*utils.Countdown),
	}
}

// Close stops any grab-window countdowns still running.
func (s *DefaultWorkbenchService) Close() {
	s.mu.Lock()
	all := make([]*utils.Countdown, 0, len(s.timers))
	for key, cd := range s.timers {
		all = append(all, cd)
		delete(s.timers, key)
	}
	s.mu.Unlock()
	for _, cd := range all {
		cd.Stop()
	}
}

// TaskBoard lists the open pool and the provider's own orders.
func (s *DefaultWorkbenchService) TaskBoard(ctx context.Context, providerID string) (*TaskBoard, error) {
	if _, err := s.Providers.GetNurse(providerID); err != nil {
		return nil, err
	}
	board := &TaskBoard{Mine: s.Orders.List(repository.OrderFilter{NurseID: providerID})}
	for _, o := range s.Orders.List(repository.OrderFilter{Status: models.OrderWaitingAcceptance}) {
		if o.NurseID == "" {
			board.Available = append(board.Available, o)
		}
	}
	return board, nil
}

// OpenTask reserves a pool task for the provider and starts the grab window.
// Reopening an already-open offer returns the remaining window unchanged.
func (s *DefaultWorkbenchService) OpenTask(ctx context.Context, providerID, orderID string) (*TaskOffer, error) {
	order, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderWaitingAcceptance || order.NurseID != "" {
		return nil, ErrTaskTaken
	}

	client := utils.GetFlowCacheClient()
	key := grabKey(providerID, orderID)
	if ttl, err := client.TTL(ctx, key).Result(); err == nil && ttl > 0 {
		return s.offer(*order, int(ttl.Seconds())), nil
	}
	if err := client.Set(ctx, key, "1", GrabWindowSeconds*time.Second).Err(); err != nil {
		return nil, fmt.Errorf("failed to open grab window: %w", err)
	}

	logger := s.Logger
	s.startTimer(key, func() {
		logger.Info("Grab window expired",
			zap.String("provider", providerID), zap.String("order", orderID))
	})
	return s.offer(*order, GrabWindowSeconds), nil
}

// GrabTask claims the task if the window is still open. An expired window
// rejects the grab; the task stays in the pool.
func (s *DefaultWorkbenchService) GrabTask(ctx context.Context, providerID, orderID string) (*models.Order, error) {
	nurse, err := s.Providers.GetNurse(providerID)
	if err != nil {
		return nil, err
	}

	client := utils.GetFlowCacheClient()
	key := grabKey(providerID, orderID)
	if _, err := client.Get(ctx, key).Result(); err == redis.Nil {
		return nil, ErrGrabExpired
	} else if err != nil {
		return nil, fmt.Errorf("failed to check grab window: %w", err)
	}

	order, err := s.Orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderWaitingAcceptance || order.NurseID != "" {
		return nil, ErrTaskTaken
	}

	if err := s.Orders.AssignNurse(orderID, *nurse); err != nil {
		return nil, err
	}
	if err := s.Orders.UpdateStatus(orderID, models.OrderWaitingService); err != nil {
		return nil, err
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		s.Logger.Warn("Failed to clear grab window", zap.Error(err))
	}
	s.stopTimer(key)

	s.Logger.Info("Task grabbed",
		zap.String("provider", providerID), zap.String("order", orderID))
	return s.Orders.Get(orderID)
}

func (s *DefaultWorkbenchService) offer(order models.Order, remaining int) *TaskOffer {
	return &TaskOffer{
		Order:            order,
		RemainingSeconds: remaining,
		Clock:            utils.FormatMMSS(remaining),
	}
}

func (s *DefaultWorkbenchService) startTimer(key string, onZero func()) {
	s.mu.Lock()
	if prev, ok := s.timers[key]; ok {
		delete(s.timers, key)
		s.mu.Unlock()
		prev.Stop()
		s.mu.Lock()
	}
	cd := utils.NewCountdown(GrabWindowSeconds, nil, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()
		onZero()
	})
	s.timers[key] = cd
	s.mu.Unlock()
	cd.Start(context.Background())
}

func (s *DefaultWorkbenchService) stopTimer(key string) {
	s.mu.Lock()
	cd, ok := s.timers[key]
	if ok {
		delete(s.timers, key)
	}
	s.mu.Unlock()
	if ok {
		cd.Stop()
	}
}

func grabKey(providerID, orderID string) string {
	return fmt.Sprintf("grab:%s:%s", providerID, orderID)
}
