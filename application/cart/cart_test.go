package cart_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/muhammadheryan/clinic-companion/application/cart"
	"github.com/muhammadheryan/clinic-companion/application/store"
	"github.com/muhammadheryan/clinic-companion/constant"
	backendmocks "github.com/muhammadheryan/clinic-companion/mocks/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/model"
	cerr "github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://api.clinic.test"

func intPtr(v int) *int { return &v }

func catalog() model.Catalog {
	return model.Catalog{
		Treatments: []model.Treatment{
			{ID: "facial", Name: "Hydra Facial", PriceCents: 12000, MemberPriceCents: intPtr(9000)},
			{ID: "botox", Name: "Botox", PriceCents: 20000, MemberPriceCents: intPtr(15000)},
			{ID: "peel", Name: "Peel", PriceCents: 8000, MemberPriceCents: intPtr(-1)},
		},
		Memberships: []model.Membership{{ID: "glow", Name: "Glow", IncludedTreatmentIDs: []string{"facial"}}},
	}
}

func offline() store.State {
	return store.State{ClinicLookupName: "Clinic Berlin", ActiveMembership: "glow", Catalog: catalog()}
}

func online(status *model.MembershipRecord) store.State {
	s := offline()
	s.Connected = true
	s.BaseURL = baseURL
	s.MemberEmail = "anna@example.com"
	s.MembershipStatus = status
	return s
}

func TestCartApp_AddOffline(t *testing.T) {
	tests := []struct {
		name        string
		state       store.State
		treatmentID string
		units       int
		wantUnit    int
		wantTotal   int
		wantUnits   int
		wantSource  model.PriceSource
		errCode     constant.ErrorType
	}{
		{
			name:        "included in plan",
			state:       offline(),
			treatmentID: "facial",
			units:       2,
			wantUnit:    0,
			wantTotal:   0,
			wantUnits:   2,
			wantSource:  model.PriceIncluded,
		},
		{
			name:        "member price",
			state:       offline(),
			treatmentID: "botox",
			units:       3,
			wantUnit:    15000,
			wantTotal:   45000,
			wantUnits:   3,
			wantSource:  model.PriceMember,
		},
		{
			name:        "invalid member price falls back to standard price",
			state:       offline(),
			treatmentID: "peel",
			units:       1,
			wantUnit:    8000,
			wantTotal:   8000,
			wantUnits:   1,
			wantSource:  model.PriceMember,
		},
		{
			name:        "units clamped",
			state:       offline(),
			treatmentID: "botox",
			units:       50,
			wantUnit:    15000,
			wantTotal:   300000,
			wantUnits:   20,
			wantSource:  model.PriceMember,
		},
		{
			name:        "unknown treatment",
			state:       offline(),
			treatmentID: "laser",
			units:       1,
			errCode:     constant.ErrTreatmentNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := store.New(tt.state)
			app := cart.NewCartApp(backendmocks.NewMobileClient(t), state, nil)

			got, err := app.Add(context.Background(), tt.treatmentID, tt.units)

			if tt.errCode != constant.Successful {
				assert.True(t, cerr.Is(err, tt.errCode))
				assert.Empty(t, state.Snapshot().Cart)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got.ID, tt.treatmentID+"-"))
			assert.Equal(t, tt.wantUnit, got.UnitCents)
			assert.Equal(t, tt.wantTotal, got.TotalCents)
			assert.Equal(t, tt.wantUnits, got.Units)
			assert.Equal(t, tt.wantSource, got.PriceSource)
			assert.Equal(t, []model.CartItem{*got}, state.Snapshot().Cart)
		})
	}
}

func TestCartApp_AddOnline(t *testing.T) {
	tests := []struct {
		name       string
		state      store.State
		mockCall   func(c *backendmocks.MobileClient)
		want       model.CartItem
		wantStatus *model.MembershipRecord
		wantErr    bool
	}{
		{
			name:  "server line wins, local values fill gaps",
			state: online(&model.MembershipRecord{MembershipID: "glow", Status: "active"}),
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("AddCartItem", mock.Anything, baseURL, model.AddCartItemRequest{
					ClinicName: "Clinic Berlin", TreatmentID: "botox", MemberEmail: "anna@example.com", Units: 2,
				}).Return(&model.AddCartItemResponse{
					LineItem:   &model.CartLineItem{ID: "line-1", TotalCents: intPtr(29000), PriceSource: "member"},
					Membership: &model.MembershipRecord{MembershipID: "glow", Status: "active", NextChargeAt: "2026-04-01"},
				}, nil).Once()
			},
			want:       model.CartItem{ID: "line-1", TreatmentID: "botox", Name: "Botox", Units: 2, UnitCents: 15000, TotalCents: 29000, PriceSource: model.PriceMember},
			wantStatus: &model.MembershipRecord{MembershipID: "glow", Status: "active", NextChargeAt: "2026-04-01"},
		},
		{
			name:  "no active membership online uses standard price",
			state: online(nil),
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("AddCartItem", mock.Anything, baseURL, mock.Anything).
					Return(&model.AddCartItemResponse{LineItem: &model.CartLineItem{ID: "line-2"}}, nil).Once()
			},
			want: model.CartItem{ID: "line-2", TreatmentID: "botox", Name: "Botox", Units: 2, UnitCents: 20000, TotalCents: 40000},
		},
		{
			name:  "server failure adds nothing",
			state: online(nil),
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("AddCartItem", mock.Anything, baseURL, mock.Anything).
					Return(nil, &cerr.APIError{Status: 404, Message: "Treatment not found"}).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewMobileClient(t)
			tt.mockCall(client)
			state := store.New(tt.state)
			app := cart.NewCartApp(client, state, nil)

			got, err := app.Add(context.Background(), "botox", 2)

			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, state.Snapshot().Cart)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
			snap := state.Snapshot()
			assert.Equal(t, []model.CartItem{tt.want}, snap.Cart)
			assert.Equal(t, tt.wantStatus, snap.MembershipStatus)
		})
	}
}

func TestCartApp_UpdateUnitsAndRemove(t *testing.T) {
	initial := offline()
	initial.Cart = []model.CartItem{
		{ID: "a", TreatmentID: "botox", Units: 1, UnitCents: 15000, TotalCents: 15000},
		{ID: "b", TreatmentID: "peel", Units: 1, UnitCents: -5, TotalCents: 0},
	}
	app := cart.NewCartApp(backendmocks.NewMobileClient(t), store.New(initial), nil)

	items := app.UpdateUnits(context.Background(), "a", 25)
	assert.Equal(t, 20, items[0].Units)
	assert.Equal(t, 300000, items[0].TotalCents)

	items = app.UpdateUnits(context.Background(), "b", 0)
	assert.Equal(t, 1, items[1].Units)
	assert.Equal(t, 0, items[1].UnitCents)
	assert.Equal(t, 0, items[1].TotalCents)

	items = app.Remove(context.Background(), "a")
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	_, total := app.Items(context.Background())
	assert.Equal(t, 0, total)
}

func TestCartApp_CheckoutOffline(t *testing.T) {
	initial := offline()
	initial.Points = 40
	initial.Cart = []model.CartItem{
		{ID: "a", TreatmentID: "botox", Name: "Botox", Units: 1, UnitCents: 8000, TotalCents: 8000},
		{ID: "b", TreatmentID: "peel", Name: "Peel", Units: 1, UnitCents: 3000, TotalCents: 3000},
	}
	state := store.New(initial)
	app := cart.NewCartApp(backendmocks.NewMobileClient(t), state, nil)

	got, err := app.Checkout(context.Background(), "Klarna")
	require.NoError(t, err)

	assert.Equal(t, &model.CheckoutResult{
		SpentCents:    11000,
		EarnedPoints:  110,
		PaymentMethod: constant.PaymentKlarna,
		PaymentStatus: constant.PaymentPending,
		Offline:       true,
	}, got)

	snap := state.Snapshot()
	assert.Empty(t, snap.Cart)
	assert.Equal(t, 150, snap.Points)
	require.Len(t, snap.History, 1)
	assert.True(t, strings.HasPrefix(snap.History[0].ID, "purchase-"))
	assert.Equal(t, constant.HistoryPurchase, snap.History[0].Type)
	assert.Equal(t, "2 treatment(s) purchased", snap.History[0].Title)
	assert.Equal(t, 11000, *snap.History[0].Amount)
}

func TestCartApp_CheckoutOnline(t *testing.T) {
	cartItems := []model.CartItem{
		{ID: "line-1", TreatmentID: "botox", Name: "Botox", Units: 2, UnitCents: 15000, TotalCents: 30000},
		{ID: "line-2", Name: "Peel", Units: 0, UnitCents: 8000, TotalCents: 8000},
	}
	tests := []struct {
		name       string
		mockCall   func(c *backendmocks.MobileClient)
		want       *model.CheckoutResult
		wantErr    bool
		wantPoints int
		wantCart   int
		wantEntry  string
	}{
		{
			name: "success: server totals",
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("CompleteCheckout", mock.Anything, baseURL, model.CheckoutRequest{
					ClinicName:    "Clinic Berlin",
					MemberEmail:   "anna@example.com",
					PaymentStatus: constant.PaymentPaid,
					PaymentMethod: constant.PaymentPaypal,
					CartItems:     []model.CheckoutItem{{TreatmentID: "botox", Units: 2}, {TreatmentID: "line-2", Units: 1}},
				}).Return(&model.CheckoutResponse{
					OrderID: "ord-7", TotalCents: 38000, EarnedPoints: 380,
					LineItems: []model.CartLineItem{{ID: "x"}, {ID: "y"}, {ID: "z"}},
				}, nil).Once()
			},
			want: &model.CheckoutResult{
				OrderID: "ord-7", SpentCents: 38000, EarnedPoints: 380,
				PaymentMethod: constant.PaymentPaypal, PaymentStatus: constant.PaymentPaid,
			},
			wantPoints: 380,
			wantEntry:  "3 treatment(s) purchased",
		},
		{
			name: "failure keeps cart",
			mockCall: func(c *backendmocks.MobileClient) {
				c.On("CompleteCheckout", mock.Anything, baseURL, mock.Anything).
					Return(nil, stderrors.New("request timeout after 18s")).Once()
			},
			wantErr:  true,
			wantCart: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewMobileClient(t)
			tt.mockCall(client)
			initial := online(nil)
			initial.Cart = cartItems
			state := store.New(initial)
			app := cart.NewCartApp(client, state, nil)

			got, err := app.Checkout(context.Background(), "paypal")

			if (err != nil) != tt.wantErr {
				t.Fatalf("Checkout() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
			snap := state.Snapshot()
			assert.Len(t, snap.Cart, tt.wantCart)
			assert.Equal(t, tt.wantPoints, snap.Points)
			if tt.wantEntry != "" {
				require.Len(t, snap.History, 1)
				assert.Equal(t, "ord-7", snap.History[0].ID)
				assert.Equal(t, tt.wantEntry, snap.History[0].Title)
			}
		})
	}
}

func TestCartApp_CheckoutEmpty(t *testing.T) {
	app := cart.NewCartApp(backendmocks.NewMobileClient(t), store.New(offline()), nil)
	_, err := app.Checkout(context.Background(), "card")
	assert.True(t, cerr.Is(err, constant.ErrCartEmpty))
}

func TestCartApp_AddWhileCheckoutRunning(t *testing.T) {
	state := store.New(offline())
	release, err := state.Begin(store.FlightCheckout)
	require.NoError(t, err)
	defer release()

	app := cart.NewCartApp(backendmocks.NewMobileClient(t), state, nil)
	_, err = app.Add(context.Background(), "botox", 1)
	assert.True(t, cerr.Is(err, constant.ErrBusy))
}
