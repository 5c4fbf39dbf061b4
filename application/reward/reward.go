package reward

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/clinic-companion/application/events"
	"github.com/muhammadheryan/clinic-companion/application/store"
	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
)

// RewardApp keeps the points ledger. Claims and redemptions are local to the device and
// only reported to the clinic as analytics events.
type RewardApp interface {
	Ledger(ctx context.Context) model.Ledger
	Claim(ctx context.Context, actionID string) (model.Ledger, error)
	Redeem(ctx context.Context, redeemID string) (model.Ledger, error)
	CheckIn(ctx context.Context) model.Ledger
}

type RewardAppImpl struct {
	state   *store.Store
	tracker *events.Tracker
	now     func() time.Time
}

func NewRewardApp(state *store.Store, tracker *events.Tracker) RewardApp {
	return &RewardAppImpl{state: state, tracker: tracker, now: time.Now}
}

func (s *RewardAppImpl) Ledger(ctx context.Context) model.Ledger {
	return ledgerOf(s.state.Snapshot())
}

func (s *RewardAppImpl) Claim(ctx context.Context, actionID string) (model.Ledger, error) {
	snap := s.state.Snapshot()
	var action *model.RewardAction
	for i := range snap.Catalog.RewardActions {
		if snap.Catalog.RewardActions[i].ID == strings.TrimSpace(actionID) {
			action = &snap.Catalog.RewardActions[i]
			break
		}
	}
	if action == nil {
		return ledgerOf(snap), errors.SetCustomError(constant.ErrRewardNotFound)
	}

	now := s.now()
	points := action.Points
	next := s.state.Dispatch(store.PointsClaimed{
		Points: points,
		Entry: model.HistoryEntry{
			ID:        fmt.Sprintf("reward-%s-%d", action.ID, now.UnixMilli()),
			Type:      constant.HistoryReward,
			Title:     action.Label,
			Points:    &points,
			CreatedAt: now,
		},
	})
	s.tracker.Track(ctx, "reward_claim", events.Extras{
		Metadata: map[string]any{"rewardAction": action.ID, "points": points},
	})
	return ledgerOf(next), nil
}

// Redeem converts points into wallet credit. It fails without touching the ledger when
// the balance is short.
func (s *RewardAppImpl) Redeem(ctx context.Context, redeemID string) (model.Ledger, error) {
	now := s.now()
	var item model.RewardRedeem
	next, err := s.state.DispatchWith(func(snap store.State) ([]store.Action, error) {
		found := false
		for _, r := range snap.Catalog.RewardRedeems {
			if r.ID == strings.TrimSpace(redeemID) {
				item, found = r, true
				break
			}
		}
		if !found {
			return nil, errors.SetCustomError(constant.ErrRewardNotFound)
		}
		if snap.Points < item.RequiredPoints {
			return nil, errors.SetCustomError(constant.ErrInsufficientPoints)
		}

		value := item.ValueCents
		return []store.Action{store.RewardRedeemed{
			Points:     item.RequiredPoints,
			ValueCents: value,
			Entry: model.HistoryEntry{
				ID:        fmt.Sprintf("redeem-%s-%d", item.ID, now.UnixMilli()),
				Type:      constant.HistoryRedeem,
				Title:     item.Label,
				Amount:    &value,
				CreatedAt: now,
			},
		}}, nil
	})
	if err != nil {
		return ledgerOf(next), err
	}

	value := item.ValueCents
	s.tracker.Track(ctx, "reward_redeem", events.Extras{
		AmountCents: &value,
		Metadata:    map[string]any{"rewardId": item.ID, "pointsSpent": item.RequiredPoints},
	})
	return ledgerOf(next), nil
}

func (s *RewardAppImpl) CheckIn(ctx context.Context) model.Ledger {
	snap := s.state.Snapshot()
	shortName := strings.TrimSpace(snap.Clinic.ShortName)
	if shortName == "" {
		shortName = "APP"
	}

	now := s.now()
	points := constant.CheckInBonusPoints
	next := s.state.Dispatch(store.PointsClaimed{
		Points: points,
		Entry: model.HistoryEntry{
			ID:        fmt.Sprintf("scan-%d", now.UnixMilli()),
			Type:      constant.HistoryReward,
			Title:     fmt.Sprintf("Check-in Scan (%s)", shortName),
			Points:    &points,
			CreatedAt: now,
		},
	})
	s.tracker.Track(ctx, "reward_claim", events.Extras{
		Metadata: map[string]any{"source": "scan_checkin", "points": points},
	})
	return ledgerOf(next)
}

func ledgerOf(s store.State) model.Ledger {
	return model.Ledger{Points: s.Points, WalletCents: s.WalletCents, History: s.History}
}
