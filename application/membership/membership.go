package membership

import (
	"context"
	"strings"

	"github.com/muhammadheryan/clinic-companion/application/events"
	"github.com/muhammadheryan/clinic-companion/application/store"
	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"github.com/muhammadheryan/clinic-companion/utils/normalize"
	validatorx "github.com/muhammadheryan/clinic-companion/utils/validator"
	"go.uber.org/zap"
)

type MembershipApp interface {
	Sync(ctx context.Context) (*model.MembershipRecord, error)
	Activate(ctx context.Context, membershipID string) (*model.MembershipRecord, error)
	Cancel(ctx context.Context) (*model.MembershipRecord, error)
}

type MembershipAppImpl struct {
	client  backend.MobileClient
	state   *store.Store
	tracker *events.Tracker
}

func NewMembershipApp(client backend.MobileClient, state *store.Store, tracker *events.Tracker) MembershipApp {
	return &MembershipAppImpl{
		client:  client,
		state:   state,
		tracker: tracker,
	}
}

// Sync refreshes the server record for the current member. Without a base URL, clinic or
// member email, and on any fetch failure, the held status is cleared.
func (s *MembershipAppImpl) Sync(ctx context.Context) (*model.MembershipRecord, error) {
	snap := s.state.Snapshot()
	baseURL := normalize.URL(snap.BaseURL)
	clinicName := strings.TrimSpace(snap.ClinicName())
	email := normalize.Email(snap.MemberEmail)

	if baseURL == "" || clinicName == "" || !validatorx.IsMemberEmail(email) {
		s.state.Dispatch(store.MembershipStatusSet{})
		return nil, nil
	}

	resp, err := s.client.FetchMembershipStatus(ctx, baseURL, clinicName, email)
	if err != nil {
		logger.Warn("[Sync] err client.FetchMembershipStatus", zap.String("clinic", clinicName), zap.String("error", err.Error()))
		s.state.Dispatch(store.MembershipStatusSet{})
		return nil, err
	}

	s.state.Dispatch(store.MembershipStatusSet{Record: resp.Membership})
	return resp.Membership, nil
}

func (s *MembershipAppImpl) Activate(ctx context.Context, membershipID string) (*model.MembershipRecord, error) {
	membershipID = strings.TrimSpace(membershipID)
	snap := s.state.Snapshot()
	plan, ok := snap.FindMembership(membershipID)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrMembershipNotFound)
	}

	if !snap.Connected {
		s.state.Dispatch(store.MembershipSelected{ID: plan.ID})
		s.tracker.Track(ctx, "membership_join", events.Extras{
			Metadata: map[string]any{"membershipId": plan.ID, "mode": "offline_demo"},
		})
		return snap.MembershipStatus, nil
	}

	baseURL := normalize.URL(snap.BaseURL)
	clinicName := strings.TrimSpace(snap.ClinicName())
	if baseURL == "" {
		return nil, errors.SetCustomError(constant.ErrBackendMissing)
	}
	if clinicName == "" {
		return nil, errors.SetCustomError(constant.ErrClinicMissing)
	}

	req := model.ActivateMembershipRequest{
		ClinicName:   clinicName,
		MemberEmail:  normalize.Email(snap.MemberEmail),
		MemberName:   strings.TrimSpace(snap.MemberName),
		MembershipID: plan.ID,
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrEmailMissing)
	}

	release, err := s.state.Begin(store.FlightMembership)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := s.client.ActivateMembership(ctx, baseURL, req)
	if err != nil {
		logger.Error("[Activate] err client.ActivateMembership", zap.String("membership_id", plan.ID), zap.String("error", err.Error()))
		return nil, err
	}

	record := resp.Membership
	actions := []store.Action{store.MembershipStatusSet{Record: record}}
	if record == nil || record.MembershipID == "" {
		actions = append(actions, store.MembershipSelected{ID: plan.ID})
	}
	s.state.Dispatch(actions...)

	amount := plan.PriceCents
	s.tracker.Track(ctx, "membership_join", events.Extras{
		AmountCents: &amount,
		Metadata:    map[string]any{"membershipId": plan.ID, "mode": "backend"},
	})
	return record, nil
}

func (s *MembershipAppImpl) Cancel(ctx context.Context) (*model.MembershipRecord, error) {
	snap := s.state.Snapshot()
	if !snap.Connected {
		next := s.state.Dispatch(store.MembershipCanceledLocally{})
		return next.MembershipStatus, nil
	}

	baseURL := normalize.URL(snap.BaseURL)
	req := model.CancelMembershipRequest{
		ClinicName:  strings.TrimSpace(snap.ClinicName()),
		MemberEmail: normalize.Email(snap.MemberEmail),
	}
	if baseURL == "" {
		return nil, errors.SetCustomError(constant.ErrBackendMissing)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	release, err := s.state.Begin(store.FlightMembership)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := s.client.CancelMembership(ctx, baseURL, req)
	if err != nil {
		logger.Error("[Cancel] err client.CancelMembership", zap.String("error", err.Error()))
		return nil, err
	}

	s.state.Dispatch(store.MembershipStatusSet{Record: resp.Membership})
	s.tracker.Track(ctx, "membership_cancel", events.Extras{})
	return resp.Membership, nil
}
