package cart

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
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

type CartApp interface {
	Add(ctx context.Context, treatmentID string, units int) (*model.CartItem, error)
	UpdateUnits(ctx context.Context, itemID string, units int) []model.CartItem
	Remove(ctx context.Context, itemID string) []model.CartItem
	Items(ctx context.Context) ([]model.CartItem, int)
	Checkout(ctx context.Context, paymentMethod string) (*model.CheckoutResult, error)
}

type CartAppImpl struct {
	client  backend.MobileClient
	state   *store.Store
	tracker *events.Tracker
	now     func() time.Time
}

func NewCartApp(client backend.MobileClient, state *store.Store, tracker *events.Tracker) CartApp {
	return &CartAppImpl{
		client:  client,
		state:   state,
		tracker: tracker,
		now:     time.Now,
	}
}

// quote is the locally computed price of a treatment for the current membership.
type quote struct {
	unitCents int
	source    model.PriceSource
}

func localQuote(snap store.State, treatment model.Treatment) quote {
	if !snap.HasActiveMembership() {
		return quote{unitCents: treatment.PriceCents, source: model.PriceStandard}
	}
	if plan, ok := snap.CurrentMembership(); ok && plan.Includes(treatment.ID) {
		return quote{unitCents: 0, source: model.PriceIncluded}
	}
	return quote{unitCents: treatment.EffectiveMemberPrice(), source: model.PriceMember}
}

func (s *CartAppImpl) Add(ctx context.Context, treatmentID string, units int) (*model.CartItem, error) {
	release, err := s.state.Begin(store.FlightCart, store.FlightCheckout)
	if err != nil {
		return nil, err
	}
	defer release()

	snap := s.state.Snapshot()
	treatment, ok := snap.FindTreatment(strings.TrimSpace(treatmentID))
	if !ok {
		return nil, errors.SetCustomError(constant.ErrTreatmentNotFound)
	}
	units = store.ClampUnits(units)
	q := localQuote(snap, treatment)
	localTotal := q.unitCents * units

	if !snap.Connected {
		item := model.CartItem{
			ID:          s.itemID(treatment.ID),
			TreatmentID: treatment.ID,
			Name:        treatment.Name,
			Units:       units,
			UnitCents:   q.unitCents,
			TotalCents:  localTotal,
			PriceSource: q.source,
		}
		s.state.Dispatch(store.CartItemAdded{Item: item})
		s.trackAdd(ctx, item)
		return &item, nil
	}

	baseURL := normalize.URL(snap.BaseURL)
	clinicName := strings.TrimSpace(snap.ClinicName())
	if baseURL == "" || clinicName == "" {
		return nil, errors.SetCustomError(constant.ErrBackendMissing)
	}

	req := model.AddCartItemRequest{
		ClinicName:  clinicName,
		TreatmentID: treatment.ID,
		MemberEmail: normalize.Email(snap.MemberEmail),
		SessionID:   s.tracker.SessionID(),
		Units:       units,
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("[Add] invalid cart request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	resp, err := s.client.AddCartItem(ctx, baseURL, req)
	if err != nil {
		logger.Error("[Add] err client.AddCartItem", zap.String("treatment_id", treatment.ID), zap.String("error", err.Error()))
		return nil, err
	}

	line := model.CartLineItem{}
	if resp.LineItem != nil {
		line = *resp.LineItem
	}
	item := model.CartItem{
		ID:          firstNonEmpty(line.ID, s.itemID(treatment.ID)),
		TreatmentID: firstNonEmpty(line.TreatmentID, treatment.ID),
		Name:        firstNonEmpty(line.Name, treatment.Name),
		Units:       max(1, intOr(line.Units, units)),
		UnitCents:   max(0, intOr(line.UnitCents, q.unitCents)),
		TotalCents:  max(0, intOr(line.TotalCents, localTotal)),
		PriceSource: model.PriceSource(strings.TrimSpace(line.PriceSource)),
	}

	actions := []store.Action{store.CartItemAdded{Item: item}}
	if resp.Membership != nil {
		actions = append(actions, store.MembershipStatusSet{Record: resp.Membership})
	}
	s.state.Dispatch(actions...)
	s.trackAdd(ctx, item)
	return &item, nil
}

func (s *CartAppImpl) trackAdd(ctx context.Context, item model.CartItem) {
	amount := item.TotalCents
	s.tracker.Track(ctx, "add_to_cart", events.Extras{
		TreatmentID: item.TreatmentID,
		AmountCents: &amount,
		Metadata:    map[string]any{"units": item.Units},
	})
}

func (s *CartAppImpl) UpdateUnits(ctx context.Context, itemID string, units int) []model.CartItem {
	return s.state.Dispatch(store.CartItemUnitsUpdated{ID: itemID, Units: units}).Cart
}

func (s *CartAppImpl) Remove(ctx context.Context, itemID string) []model.CartItem {
	return s.state.Dispatch(store.CartItemRemoved{ID: itemID}).Cart
}

// Items returns the cart and its total in cents.
func (s *CartAppImpl) Items(ctx context.Context) ([]model.CartItem, int) {
	snap := s.state.Snapshot()
	return snap.Cart, snap.TotalCartCents()
}

func (s *CartAppImpl) Checkout(ctx context.Context, paymentMethod string) (*model.CheckoutResult, error) {
	method := constant.ParsePaymentMethod(paymentMethod)
	status := method.DefaultStatus()

	if len(s.state.Snapshot().Cart) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}

	release, err := s.state.Begin(store.FlightCheckout, store.FlightCart)
	if err != nil {
		return nil, err
	}
	defer release()

	snap := s.state.Snapshot()
	if len(snap.Cart) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}

	var (
		result  *model.CheckoutResult
		actions []store.Action
	)
	if snap.Connected {
		result, actions, err = s.checkoutOnline(ctx, snap, method, status)
		if err != nil {
			return nil, err
		}
	} else {
		spent := snap.TotalCartCents()
		result = &model.CheckoutResult{
			SpentCents:    spent,
			EarnedPoints:  int(math.Round(float64(spent) / 100)),
			PaymentMethod: method,
			PaymentStatus: status,
			Offline:       true,
		}
		actions = []store.Action{store.PurchaseRecorded{
			EarnedPoints: result.EarnedPoints,
			Entry:        s.purchaseEntry("", len(snap.Cart), spent),
		}}
	}
	s.state.Dispatch(actions...)

	names := make([]string, 0, len(snap.Cart))
	for _, item := range snap.Cart {
		names = append(names, item.Name)
	}
	label := strings.Join(names, ", ")
	if len(label) > 100 {
		label = label[:100]
	}
	spent := result.SpentCents
	s.tracker.Track(ctx, "purchase_success", events.Extras{
		TreatmentID: label,
		AmountCents: &spent,
		Metadata: map[string]any{
			"items":         len(snap.Cart),
			"earnedPoints":  result.EarnedPoints,
			"paymentMethod": string(method),
			"paymentStatus": string(status),
		},
	})
	return result, nil
}

func (s *CartAppImpl) checkoutOnline(ctx context.Context, snap store.State, method constant.PaymentMethod, status constant.PaymentStatus) (*model.CheckoutResult, []store.Action, error) {
	baseURL := normalize.URL(snap.BaseURL)
	clinicName := strings.TrimSpace(snap.ClinicName())
	if baseURL == "" || clinicName == "" {
		return nil, nil, errors.SetCustomError(constant.ErrBackendMissing)
	}

	req := model.CheckoutRequest{
		ClinicName:    clinicName,
		MemberEmail:   normalize.Email(snap.MemberEmail),
		SessionID:     s.tracker.SessionID(),
		PaymentStatus: status,
		PaymentMethod: method,
		CartItems:     make([]model.CheckoutItem, 0, len(snap.Cart)),
	}
	for _, item := range snap.Cart {
		req.CartItems = append(req.CartItems, model.CheckoutItem{
			TreatmentID: firstNonEmpty(item.TreatmentID, item.ID),
			Units:       max(1, item.Units),
		})
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("[Checkout] invalid checkout request", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	resp, err := s.client.CompleteCheckout(ctx, baseURL, req)
	if err != nil {
		logger.Error("[Checkout] err client.CompleteCheckout", zap.String("error", err.Error()))
		return nil, nil, err
	}

	result := &model.CheckoutResult{
		OrderID:       strings.TrimSpace(resp.OrderID),
		SpentCents:    max(0, resp.TotalCents),
		EarnedPoints:  max(0, resp.EarnedPoints),
		PaymentMethod: method,
		PaymentStatus: status,
	}
	count := len(resp.LineItems)
	if count == 0 {
		count = len(snap.Cart)
	}
	actions := []store.Action{store.PurchaseRecorded{
		EarnedPoints: result.EarnedPoints,
		Entry:        s.purchaseEntry(result.OrderID, count, result.SpentCents),
	}}
	if resp.Membership != nil {
		actions = append(actions, store.MembershipStatusSet{Record: resp.Membership})
	}
	return result, actions, nil
}

func (s *CartAppImpl) purchaseEntry(orderID string, count, spentCents int) model.HistoryEntry {
	now := s.now()
	id := orderID
	if id == "" {
		id = fmt.Sprintf("purchase-%d", now.UnixMilli())
	}
	amount := spentCents
	return model.HistoryEntry{
		ID:        id,
		Type:      constant.HistoryPurchase,
		Title:     fmt.Sprintf("%d treatment(s) purchased", count),
		Amount:    &amount,
		CreatedAt: now,
	}
}

func (s *CartAppImpl) itemID(treatmentID string) string {
	return treatmentID + "-" + uuid.NewString()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
