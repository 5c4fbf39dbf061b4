package membership_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/muhammadheryan/clinic-companion/application/events"
	"github.com/muhammadheryan/clinic-companion/application/membership"
	"github.com/muhammadheryan/clinic-companion/application/store"
	"github.com/muhammadheryan/clinic-companion/constant"
	publishermocks "github.com/muhammadheryan/clinic-companion/mocks/application/events"
	backendmocks "github.com/muhammadheryan/clinic-companion/mocks/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/model"
	cerr "github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://api.clinic.test"

func catalog() model.Catalog {
	return model.Catalog{Memberships: []model.Membership{
		{ID: "glow", Name: "Glow", PriceCents: 4900, IncludedTreatmentIDs: []string{"facial"}},
		{ID: "radiance", Name: "Radiance", PriceCents: 9900},
	}}
}

func connected() store.State {
	return store.State{
		BaseURL:          baseURL,
		Connected:        true,
		ClinicLookupName: "Clinic Berlin",
		MemberEmail:      "Anna@Example.com",
		MemberName:       "Anna",
		ActiveMembership: "glow",
		Catalog:          catalog(),
	}
}

func TestMembershipApp_Sync(t *testing.T) {
	tests := []struct {
		name       string
		state      store.State
		mockCall   func(c *backendmocks.MobileClient)
		wantErr    bool
		wantStatus *model.MembershipRecord
		wantActive string
	}{
		{
			name:  "success: server plan overrides selection",
			state: connected(),
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("FetchMembershipStatus", mock.Anything, baseURL, "Clinic Berlin", "anna@example.com").
					Return(&model.MembershipEnvelope{Membership: &model.MembershipRecord{MembershipID: "radiance", Status: "active"}}, nil).Once()
			},
			wantStatus: &model.MembershipRecord{MembershipID: "radiance", Status: "active"},
			wantActive: "radiance",
		},
		{
			name: "cleared: email without at sign",
			state: func() store.State {
				s := connected()
				s.MemberEmail = "anna"
				s.MembershipStatus = &model.MembershipRecord{MembershipID: "glow", Status: "active"}
				return s
			}(),
			mockCall:   func(c *backendmocks.MobileClient) {},
			wantActive: "glow",
		},
		{
			name: "cleared: no base url",
			state: func() store.State {
				s := connected()
				s.BaseURL = ""
				return s
			}(),
			mockCall:   func(c *backendmocks.MobileClient) {},
			wantActive: "glow",
		},
		{
			name: "cleared: fetch failure",
			state: func() store.State {
				s := connected()
				s.MembershipStatus = &model.MembershipRecord{MembershipID: "glow", Status: "active"}
				return s
			}(),
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("FetchMembershipStatus", mock.Anything, baseURL, "Clinic Berlin", "anna@example.com").
					Return(nil, &cerr.APIError{Status: 500, Message: "boom"}).Once()
			},
			wantErr:    true,
			wantActive: "glow",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewMobileClient(t)
			tt.mockCall(client)
			state := store.New(tt.state)
			app := membership.NewMembershipApp(client, state, nil)

			got, err := app.Sync(context.Background())

			if (err != nil) != tt.wantErr {
				t.Fatalf("Sync() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.wantStatus, got)
			snap := state.Snapshot()
			assert.Equal(t, tt.wantStatus, snap.MembershipStatus)
			assert.Equal(t, tt.wantActive, snap.ActiveMembership)
		})
	}
}

func TestMembershipApp_Activate(t *testing.T) {
	tests := []struct {
		name         string
		state        store.State
		membershipID string
		mockCall     func(c *backendmocks.MobileClient)
		errCode      constant.ErrorType
		wantActive   string
		wantStatus   *model.MembershipRecord
	}{
		{
			name:         "error: unknown plan",
			state:        connected(),
			membershipID: "platinum",
			mockCall:     func(c *backendmocks.MobileClient) {},
			errCode:      constant.ErrMembershipNotFound,
			wantActive:   "glow",
		},
		{
			name: "offline: selection only",
			state: func() store.State {
				s := connected()
				s.Connected = false
				return s
			}(),
			membershipID: "radiance",
			mockCall:     func(c *backendmocks.MobileClient) {},
			wantActive:   "radiance",
		},
		{
			name: "error: email missing",
			state: func() store.State {
				s := connected()
				s.MemberEmail = ""
				return s
			}(),
			membershipID: "radiance",
			mockCall:     func(c *backendmocks.MobileClient) {},
			errCode:      constant.ErrEmailMissing,
			wantActive:   "glow",
		},
		{
			name:         "success: server row without plan id keeps requested plan",
			state:        connected(),
			membershipID: "radiance",
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("ActivateMembership", mock.Anything, baseURL, model.ActivateMembershipRequest{
					ClinicName: "Clinic Berlin", MemberEmail: "anna@example.com", MemberName: "Anna", MembershipID: "radiance",
				}).Return(&model.MembershipEnvelope{Membership: &model.MembershipRecord{Status: "active"}}, nil).Once()
			},
			wantActive: "radiance",
			wantStatus: &model.MembershipRecord{Status: "active"},
		},
		{
			name:         "success: server row decides plan",
			state:        connected(),
			membershipID: "radiance",
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("ActivateMembership", mock.Anything, baseURL, mock.Anything).
					Return(&model.MembershipEnvelope{Membership: &model.MembershipRecord{MembershipID: "glow", Status: "past_due"}}, nil).Once()
			},
			wantActive: "glow",
			wantStatus: &model.MembershipRecord{MembershipID: "glow", Status: "past_due"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewMobileClient(t)
			tt.mockCall(client)
			state := store.New(tt.state)
			app := membership.NewMembershipApp(client, state, nil)

			got, err := app.Activate(context.Background(), tt.membershipID)

			if tt.errCode != constant.Successful {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, got)
			}
			assert.Equal(t, tt.wantActive, state.Snapshot().ActiveMembership)
		})
	}
}

func TestMembershipApp_ActivateTracksJoin(t *testing.T) {
	client := backendmocks.NewMobileClient(t)
	publisher := publishermocks.NewPublisher(t)
	state := store.New(connected())
	tracker := events.NewTracker(publisher, state, "session-1")
	app := membership.NewMembershipApp(client, state, tracker)

	client.On("ActivateMembership", mock.Anything, baseURL, mock.Anything).
		Return(&model.MembershipEnvelope{Membership: &model.MembershipRecord{MembershipID: "radiance", Status: "active"}}, nil).Once()
	publisher.On("Publish", mock.Anything, baseURL, mock.MatchedBy(func(e model.PublicEvent) bool {
		return e.EventName == "membership_join" && *e.AmountCents == 9900 && e.Metadata["mode"] == "backend"
	})).Return(nil).Once()

	_, err := app.Activate(context.Background(), "radiance")
	require.NoError(t, err)
	tracker.Wait()
}

func TestMembershipApp_Cancel(t *testing.T) {
	active := &model.MembershipRecord{MembershipID: "glow", Status: "active"}
	tests := []struct {
		name       string
		state      store.State
		mockCall   func(c *backendmocks.MobileClient)
		wantErr    bool
		wantStatus *model.MembershipRecord
	}{
		{
			name: "offline: record flips to canceled",
			state: func() store.State {
				s := connected()
				s.Connected = false
				s.MembershipStatus = active
				return s
			}(),
			mockCall:   func(c *backendmocks.MobileClient) {},
			wantStatus: &model.MembershipRecord{MembershipID: "glow", Status: "canceled"},
		},
		{
			name: "offline: nothing held stays nil",
			state: func() store.State {
				s := connected()
				s.Connected = false
				return s
			}(),
			mockCall: func(c *backendmocks.MobileClient) {},
		},
		{
			name: "online: server record applied",
			state: func() store.State {
				s := connected()
				s.MembershipStatus = active
				return s
			}(),
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("CancelMembership", mock.Anything, baseURL, model.CancelMembershipRequest{ClinicName: "Clinic Berlin", MemberEmail: "anna@example.com"}).
					Return(&model.MembershipEnvelope{Membership: &model.MembershipRecord{MembershipID: "glow", Status: "canceled", CanceledAt: "2026-03-01"}}, nil).Once()
			},
			wantStatus: &model.MembershipRecord{MembershipID: "glow", Status: "canceled", CanceledAt: "2026-03-01"},
		},
		{
			name: "online: failure keeps status",
			state: func() store.State {
				s := connected()
				s.MembershipStatus = active
				return s
			}(),
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("CancelMembership", mock.Anything, baseURL, mock.Anything).
					Return(nil, stderrors.New("network request failed: refused")).Once()
			},
			wantErr:    true,
			wantStatus: active,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewMobileClient(t)
			tt.mockCall(client)
			state := store.New(tt.state)
			app := membership.NewMembershipApp(client, state, nil)

			_, err := app.Cancel(context.Background())

			if (err != nil) != tt.wantErr {
				t.Fatalf("Cancel() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.wantStatus, state.Snapshot().MembershipStatus)
		})
	}
}

func TestMembershipApp_CancelBusy(t *testing.T) {
	state := store.New(connected())
	release, err := state.Begin(store.FlightMembership)
	require.NoError(t, err)
	defer release()

	app := membership.NewMembershipApp(backendmocks.NewMobileClient(t), state, nil)
	_, err = app.Cancel(context.Background())
	assert.True(t, cerr.Is(err, constant.ErrBusy))
}
