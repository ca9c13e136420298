package booking

import (
	"context"
	"sync"

	"carebridge/utils"
)

// expiryWatch owns one countdown per open payment window. Countdowns are
// stopped when the window is confirmed, cancelled, or reaches zero, so no
// ticker outlives its session.
type expiryWatch struct {
	mu     sync.Mutex
	active map[string]*utils.Countdown
}

func newExpiryWatch() *expiryWatch {
	return &expiryWatch{active: make(map[string]*utils.Countdown)}
}

// start begins a countdown for the session, replacing any previous one.
// onZero fires once when the window runs out.
func (w *expiryWatch) start(sessionID string, seconds int, onZero func()) {
	w.mu.Lock()
	if prev, ok := w.active[sessionID]; ok {
		delete(w.active, sessionID)
		w.mu.Unlock()
		prev.Stop()
		w.mu.Lock()
	}
	cd := utils.NewCountdown(seconds, nil, func() {
		w.remove(sessionID)
		if onZero != nil {
			onZero()
		}
	})
	w.active[sessionID] = cd
	w.mu.Unlock()
	cd.Start(context.Background())
}

// stop tears down the session's countdown if one is running.
func (w *expiryWatch) stop(sessionID string) {
	w.mu.Lock()
	cd, ok := w.active[sessionID]
	if ok {
		delete(w.active, sessionID)
	}
	w.mu.Unlock()
	if ok {
		cd.Stop()
	}
}

// stopAll tears down every running countdown. Used on server shutdown.
func (w *expiryWatch) stopAll() {
	w.mu.Lock()
	all := make([]*utils.Countdown, 0, len(w.active))
	for id, cd := range w.active {
		all = append(all, cd)
		delete(w.active, id)
	}
	w.mu.Unlock()
	for _, cd := range all {
		cd.Stop()
	}
}

func (w *expiryWatch) remove(sessionID string) {
	w.mu.Lock()
	delete(w.active, sessionID)
	w.mu.Unlock()
}
