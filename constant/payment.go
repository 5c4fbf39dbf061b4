package constant

import "strings"

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPaypal PaymentMethod = "paypal"
	PaymentKlarna PaymentMethod = "klarna"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

var paymentMethodLabel = map[PaymentMethod]string{
	PaymentCard:   "Card / Apple Pay",
	PaymentPaypal: "PayPal",
	PaymentKlarna: "Klarna",
}

// ParsePaymentMethod falls back to card for unknown input.
func ParsePaymentMethod(raw string) PaymentMethod {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := paymentMethodLabel[m]; ok {
		return m
	}
	return PaymentCard
}

func (m PaymentMethod) Label() string {
	return paymentMethodLabel[ParsePaymentMethod(string(m))]
}

// DefaultStatus is pending for deferred-payment providers and paid otherwise.
func (m PaymentMethod) DefaultStatus() PaymentStatus {
	if ParsePaymentMethod(string(m)) == PaymentKlarna {
		return PaymentPending
	}
	return PaymentPaid
}
