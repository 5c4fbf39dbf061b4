package reward_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/muhammadheryan/clinic-companion/application/events"
	"github.com/muhammadheryan/clinic-companion/application/reward"
	"github.com/muhammadheryan/clinic-companion/application/store"
	"github.com/muhammadheryan/clinic-companion/constant"
	publishermocks "github.com/muhammadheryan/clinic-companion/mocks/application/events"
	"github.com/muhammadheryan/clinic-companion/model"
	cerr "github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func state(points int) store.State {
	return store.State{
		Points: points,
		Clinic: model.ClinicProfile{Name: "Clinic Berlin", ShortName: "CB"},
		Catalog: model.Catalog{
			RewardActions: []model.RewardAction{{ID: "review", Label: "Google review", Points: 50}},
			RewardRedeems: []model.RewardRedeem{{ID: "voucher", Label: "25 EUR voucher", RequiredPoints: 250, ValueCents: 2500}},
		},
	}
}

func TestRewardApp_Claim(t *testing.T) {
	tests := []struct {
		name       string
		actionID   string
		errCode    constant.ErrorType
		wantPoints int
		wantLen    int
	}{
		{name: "success", actionID: "review", wantPoints: 150, wantLen: 1},
		{name: "unknown action", actionID: "tiktok", errCode: constant.ErrRewardNotFound, wantPoints: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := reward.NewRewardApp(store.New(state(100)), nil)

			got, err := app.Claim(context.Background(), tt.actionID)

			if tt.errCode != constant.Successful {
				assert.True(t, cerr.Is(err, tt.errCode))
			} else {
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(got.History[0].ID, "reward-review-"))
				assert.Equal(t, constant.HistoryReward, got.History[0].Type)
				assert.Equal(t, 50, *got.History[0].Points)
			}
			assert.Equal(t, tt.wantPoints, got.Points)
			assert.Len(t, got.History, tt.wantLen)
		})
	}
}

func TestRewardApp_Redeem(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		errCode    constant.ErrorType
		wantPoints int
		wantWallet int
		wantLen    int
	}{
		{name: "blocked below required points", points: 100, errCode: constant.ErrInsufficientPoints, wantPoints: 100},
		{name: "exact balance", points: 250, wantPoints: 0, wantWallet: 2500, wantLen: 1},
		{name: "surplus balance", points: 400, wantPoints: 150, wantWallet: 2500, wantLen: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New(state(tt.points))
			app := reward.NewRewardApp(s, nil)

			got, err := app.Redeem(context.Background(), "voucher")

			if tt.errCode != constant.Successful {
				assert.True(t, cerr.Is(err, tt.errCode))
			} else {
				require.NoError(t, err)
				assert.Equal(t, constant.HistoryRedeem, got.History[0].Type)
				assert.Equal(t, 2500, *got.History[0].Amount)
			}
			assert.Equal(t, tt.wantPoints, got.Points)
			assert.Equal(t, tt.wantWallet, got.WalletCents)
			assert.Len(t, got.History, tt.wantLen)
			assert.Equal(t, got, app.Ledger(context.Background()))
		})
	}
}

func TestRewardApp_RedeemConcurrent(t *testing.T) {
	s := store.New(state(600))
	app := reward.NewRewardApp(s, nil)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		redeems int
		short   int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := app.Redeem(context.Background(), "voucher")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				redeems++
			} else if cerr.Is(err, constant.ErrInsufficientPoints) {
				short++
			}
		}()
	}
	wg.Wait()

	got := app.Ledger(context.Background())
	assert.Equal(t, 2, redeems)
	assert.Equal(t, 6, short)
	assert.Equal(t, 100, got.Points)
	assert.Equal(t, 5000, got.WalletCents)
}

func TestRewardApp_CheckIn(t *testing.T) {
	app := reward.NewRewardApp(store.New(state(0)), nil)

	app.CheckIn(context.Background())
	got := app.CheckIn(context.Background())

	assert.Equal(t, 60, got.Points)
	require.Len(t, got.History, 2)
	assert.Equal(t, "Check-in Scan (CB)", got.History[0].Title)
	assert.True(t, strings.HasPrefix(got.History[0].ID, "scan-"))
}

func TestRewardApp_ClaimTracked(t *testing.T) {
	initial := state(0)
	initial.Connected = true
	initial.BaseURL = "https://api.clinic.test"
	s := store.New(initial)
	publisher := publishermocks.NewPublisher(t)
	tracker := events.NewTracker(publisher, s, "session-1")
	app := reward.NewRewardApp(s, tracker)

	publisher.On("Publish", mock.Anything, "https://api.clinic.test", mock.MatchedBy(func(e model.PublicEvent) bool {
		return e.EventName == "reward_claim" && e.Metadata["rewardAction"] == "review" && e.Metadata["points"] == 50
	})).Return(nil).Once()

	_, err := app.Claim(context.Background(), "review")
	require.NoError(t, err)
	tracker.Wait()
}
