package events

import (
	"context"
	"sync"

	"github.com/muhammadheryan/clinic-companion/application/store"
	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"go.uber.org/zap"
)

// Extras are the optional fields of a tracked event.
type Extras struct {
	TreatmentID string
	AmountCents *int
	Metadata    map[string]any
}

// Tracker fires analytics events for the connected session. Delivery happens in the
// background and failures are only logged.
type Tracker struct {
	publisher Publisher
	state     *store.Store
	sessionID string
	wg        sync.WaitGroup
}

func NewTracker(publisher Publisher, state *store.Store, sessionID string) *Tracker {
	return &Tracker{publisher: publisher, state: state, sessionID: sessionID}
}

func (t *Tracker) SessionID() string {
	if t == nil {
		return ""
	}
	return t.sessionID
}

// Track returns false when nothing was sent because the session is offline.
func (t *Tracker) Track(ctx context.Context, eventName string, extras Extras) bool {
	if t == nil || t.publisher == nil || eventName == "" {
		return false
	}
	snap := t.state.Snapshot()
	if !snap.Connected || snap.BaseURL == "" {
		return false
	}

	metadata := map[string]any{"membership": snap.ActiveMembership}
	for k, v := range extras.Metadata {
		metadata[k] = v
	}
	event := model.PublicEvent{
		ClinicName:  snap.ClinicName(),
		EventName:   eventName,
		TreatmentID: extras.TreatmentID,
		AmountCents: extras.AmountCents,
		SessionID:   t.sessionID,
		Metadata:    metadata,
	}

	t.wg.Add(1)
	go func(ctx context.Context, baseURL string) {
		defer t.wg.Done()
		if err := t.publisher.Publish(ctx, baseURL, event); err != nil {
			logger.Debug("[Track] public event not delivered", zap.String("event", eventName), zap.String("error", err.Error()))
		}
	}(context.WithoutCancel(ctx), snap.BaseURL)
	return true
}

// Wait blocks until every event started so far has been handled.
func (t *Tracker) Wait() {
	t.wg.Wait()
}
