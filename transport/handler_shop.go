package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	validatorx "github.com/muhammadheryan/clinic-companion/utils/validator"
)

// @Summary Refresh the membership record
// @Tags Membership
// @Produce json
// @Success 200 {object} model.MembershipEnvelope
// @Router /v1/membership/sync [post]
func (s *RestHandler) MembershipSync(w http.ResponseWriter, r *http.Request) {
	res, err := s.MembershipApp.Sync(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MembershipEnvelope{Membership: res})
}

// @Summary Join a membership plan
// @Tags Membership
// @Accept json
// @Produce json
// @Param request body model.MembershipActivateRequest true "Plan"
// @Success 200 {object} model.MembershipEnvelope
// @Router /v1/membership/activate [post]
func (s *RestHandler) MembershipActivate(w http.ResponseWriter, r *http.Request) {
	var req model.MembershipActivateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.MembershipApp.Activate(r.Context(), req.MembershipID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MembershipEnvelope{Membership: res})
}

// @Summary Cancel the membership
// @Tags Membership
// @Produce json
// @Success 200 {object} model.MembershipEnvelope
// @Router /v1/membership/cancel [post]
func (s *RestHandler) MembershipCancel(w http.ResponseWriter, r *http.Request) {
	res, err := s.MembershipApp.Cancel(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MembershipEnvelope{Membership: res})
}

// @Summary Cart contents
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartView
// @Router /v1/cart [get]
func (s *RestHandler) CartItems(w http.ResponseWriter, r *http.Request) {
	items, total := s.CartApp.Items(r.Context())
	writeSuccess(w, model.CartView{Items: items, TotalCents: total})
}

// @Summary Add a treatment to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.CartAddRequest true "Treatment"
// @Success 200 {object} model.CartItem
// @Failure 409 {object} ErrorResponse
// @Router /v1/cart/items [post]
func (s *RestHandler) CartAdd(w http.ResponseWriter, r *http.Request) {
	var req model.CartAddRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	item, err := s.CartApp.Add(r.Context(), req.TreatmentID, req.Units)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, item)
}

// @Summary Change the units of a cart line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item id"
// @Param request body model.CartUnitsRequest true "Units"
// @Success 200 {object} model.CartView
// @Router /v1/cart/items/{id} [put]
func (s *RestHandler) CartUpdateUnits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req model.CartUnitsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	s.CartApp.UpdateUnits(ctx, mux.Vars(r)["id"], req.Units)
	items, total := s.CartApp.Items(ctx)
	writeSuccess(w, model.CartView{Items: items, TotalCents: total})
}

// @Summary Remove a cart line
// @Tags Cart
// @Produce json
// @Param id path string true "Cart item id"
// @Success 200 {object} model.CartView
// @Router /v1/cart/items/{id} [delete]
func (s *RestHandler) CartRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s.CartApp.Remove(ctx, mux.Vars(r)["id"])
	items, total := s.CartApp.Items(ctx)
	writeSuccess(w, model.CartView{Items: items, TotalCents: total})
}

// @Summary Pay for the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.CheckoutSubmitRequest true "Payment method"
// @Success 200 {object} model.CheckoutResult
// @Router /v1/cart/checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutSubmitRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.Checkout(r.Context(), req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Points, wallet and reward history
// @Tags Rewards
// @Produce json
// @Success 200 {object} model.Ledger
// @Router /v1/rewards [get]
func (s *RestHandler) RewardLedger(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.RewardApp.Ledger(r.Context()))
}

// @Summary Claim points for a reward action
// @Tags Rewards
// @Produce json
// @Param id path string true "Reward action id"
// @Success 200 {object} model.Ledger
// @Router /v1/rewards/claim/{id} [post]
func (s *RestHandler) RewardClaim(w http.ResponseWriter, r *http.Request) {
	res, err := s.RewardApp.Claim(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Redeem points for a wallet credit
// @Tags Rewards
// @Produce json
// @Param id path string true "Redeem option id"
// @Success 200 {object} model.Ledger
// @Failure 400 {object} ErrorResponse
// @Router /v1/rewards/redeem/{id} [post]
func (s *RestHandler) RewardRedeem(w http.ResponseWriter, r *http.Request) {
	res, err := s.RewardApp.Redeem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Record a clinic check-in scan
// @Tags Rewards
// @Produce json
// @Success 200 {object} model.Ledger
// @Router /v1/rewards/check-in [post]
func (s *RestHandler) RewardCheckIn(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.RewardApp.CheckIn(r.Context()))
}
