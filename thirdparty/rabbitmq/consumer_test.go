package rabbitmq_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	forwardermocks "github.com/muhammadheryan/clinic-companion/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/thirdparty/rabbitmq"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProcess(t *testing.T) {
	event := model.PublicEvent{ClinicName: "Clinic", EventName: "purchase_success", SessionID: "s-1"}
	valid, _ := json.Marshal(rabbitmq.PublicEventMessage{BaseURL: "https://api.clinic.test", Event: event})

	tests := []struct {
		name     string
		body     []byte
		mockCall func(f *forwardermocks.Forwarder)
		want     rabbitmq.Outcome
	}{
		{
			name: "success: forwarded",
			body: valid,
			mockCall: func(f *forwardermocks.Forwarder) {
				f.On("PostPublicEvent", mock.Anything, "https://api.clinic.test", event).Return(nil).Once()
			},
			want: rabbitmq.OutcomeAck,
		},
		{
			name: "error: network failure requeues",
			body: valid,
			mockCall: func(f *forwardermocks.Forwarder) {
				f.On("PostPublicEvent", mock.Anything, "https://api.clinic.test", event).
					Return(&backend.TransportError{Err: stderrors.New("refused")}).Once()
			},
			want: rabbitmq.OutcomeRequeue,
		},
		{
			name: "error: server 5xx requeues",
			body: valid,
			mockCall: func(f *forwardermocks.Forwarder) {
				f.On("PostPublicEvent", mock.Anything, "https://api.clinic.test", event).
					Return(&errors.APIError{Status: 503}).Once()
			},
			want: rabbitmq.OutcomeRequeue,
		},
		{
			name: "error: rejected event is dropped",
			body: valid,
			mockCall: func(f *forwardermocks.Forwarder) {
				f.On("PostPublicEvent", mock.Anything, "https://api.clinic.test", event).
					Return(&errors.APIError{Status: 400, Message: "Unbekannte Klinik"}).Once()
			},
			want: rabbitmq.OutcomeDrop,
		},
		{
			name:     "error: unreadable body is dropped",
			body:     []byte("{not json"),
			mockCall: func(f *forwardermocks.Forwarder) {},
			want:     rabbitmq.OutcomeDrop,
		},
		{
			name:     "error: missing base url is dropped",
			body:     []byte(`{"event":{"eventName":"x"}}`),
			mockCall: func(f *forwardermocks.Forwarder) {},
			want:     rabbitmq.OutcomeDrop,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := forwardermocks.NewForwarder(t)
			tt.mockCall(f)
			assert.Equal(t, tt.want, rabbitmq.Process(context.Background(), f, tt.body))
		})
	}
}
