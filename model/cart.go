package model

import "github.com/muhammadheryan/clinic-companion/constant"

type PriceSource string

const (
	PriceStandard PriceSource = "standard"
	PriceMember   PriceSource = "member"
	PriceIncluded PriceSource = "included"
)

type CartItem struct {
	ID          string      `json:"id"`
	TreatmentID string      `json:"treatmentId"`
	Name        string      `json:"name"`
	Units       int         `json:"units"`
	UnitCents   int         `json:"unitCents"`
	TotalCents  int         `json:"totalCents"`
	PriceSource PriceSource `json:"priceSource"`
}

type AddCartItemRequest struct {
	ClinicName  string `json:"clinicName" validate:"required"`
	TreatmentID string `json:"treatmentId" validate:"required"`
	MemberEmail string `json:"memberEmail"`
	SessionID   string `json:"sessionId"`
	Units       int    `json:"units" validate:"min=1,max=20"`
}

// CartLineItem is the server's priced line; pointer fields distinguish absent values.
type CartLineItem struct {
	ID          string `json:"id"`
	TreatmentID string `json:"treatmentId"`
	Name        string `json:"name"`
	Units       *int   `json:"units"`
	UnitCents   *int   `json:"unitCents"`
	TotalCents  *int   `json:"totalCents"`
	PriceSource string `json:"priceSource"`
}

type AddCartItemResponse struct {
	LineItem   *CartLineItem     `json:"lineItem"`
	Membership *MembershipRecord `json:"membership"`
}

type CheckoutItem struct {
	TreatmentID string `json:"treatmentId" validate:"required"`
	Units       int    `json:"units" validate:"min=1"`
}

type CheckoutRequest struct {
	ClinicName    string                 `json:"clinicName" validate:"required"`
	MemberEmail   string                 `json:"memberEmail"`
	SessionID     string                 `json:"sessionId"`
	PaymentStatus constant.PaymentStatus `json:"paymentStatus"`
	PaymentMethod constant.PaymentMethod `json:"paymentMethod" validate:"oneof=card paypal klarna"`
	CartItems     []CheckoutItem         `json:"cartItems" validate:"required,min=1,dive"`
}

type CheckoutResponse struct {
	OrderID      string            `json:"orderId"`
	TotalCents   int               `json:"totalCents"`
	Currency     string            `json:"currency"`
	EarnedPoints int               `json:"earnedPoints"`
	LineItems    []CartLineItem    `json:"lineItems"`
	Membership   *MembershipRecord `json:"membership"`
}

// CheckoutResult is what the patient sees after either checkout branch.
type CheckoutResult struct {
	OrderID       string                 `json:"orderId,omitempty"`
	SpentCents    int                    `json:"spentCents"`
	EarnedPoints  int                    `json:"earnedPoints"`
	PaymentMethod constant.PaymentMethod `json:"paymentMethod"`
	PaymentStatus constant.PaymentStatus `json:"paymentStatus"`
	Offline       bool                   `json:"offline"`
}
