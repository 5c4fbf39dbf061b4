// Package events sends anonymous analytics events to the clinic backend, either directly
// or through a queue.
package events

import (
	"context"

	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
)

type Publisher interface {
	Publish(ctx context.Context, baseURL string, event model.PublicEvent) error
}

type directPublisher struct {
	client backend.MobileClient
}

// NewDirectPublisher posts each event inline with the read retry profile.
func NewDirectPublisher(client backend.MobileClient) Publisher {
	return &directPublisher{client: client}
}

func (p *directPublisher) Publish(ctx context.Context, baseURL string, event model.PublicEvent) error {
	return p.client.PostPublicEvent(ctx, baseURL, event)
}
