package model

// Bodies accepted by the local bridge.

type OtpStartRequest struct {
	Phone      string `json:"phone"`
	ClinicName string `json:"clinicName"`
	Code       string `json:"code"`
}

type OtpCodeRequest struct {
	Code string `json:"code"`
}

type ClinicSelectRequest struct {
	Name string `json:"name" validate:"required"`
}

type ClinicCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type MembershipActivateRequest struct {
	MembershipID string `json:"membershipId" validate:"required"`
}

type CartAddRequest struct {
	TreatmentID string `json:"treatmentId" validate:"required"`
	Units       int    `json:"units"`
}

type CartUnitsRequest struct {
	Units int `json:"units"`
}

type CartView struct {
	Items      []CartItem `json:"items"`
	TotalCents int        `json:"totalCents"`
}

type CheckoutSubmitRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

type TrackRequest struct {
	EventName   string         `json:"eventName" validate:"required"`
	TreatmentID string         `json:"treatmentId"`
	AmountCents *int           `json:"amountCents"`
	Metadata    map[string]any `json:"metadata"`
}

type TrackResult struct {
	Accepted bool `json:"accepted"`
}

type AdminLoginBody struct {
	APIURL string `json:"apiUrl"`
	AdminLoginRequest
}

type AdminRegisterBody struct {
	APIURL string `json:"apiUrl"`
	AdminRegisterRequest
}

type AdminAPIURLRequest struct {
	APIURL string `json:"apiUrl" validate:"required"`
}

type URLResult struct {
	URL string `json:"url"`
}

// Overview is everything a screen needs to render the current session.
type Overview struct {
	Session             Session           `json:"session"`
	Connected           bool              `json:"connected"`
	Clinic              ClinicProfile     `json:"clinic"`
	Catalog             Catalog           `json:"catalog"`
	ActiveMembership    string            `json:"activeMembership"`
	MembershipStatus    *MembershipRecord `json:"membershipStatus,omitempty"`
	HasActiveMembership bool              `json:"hasActiveMembership"`
	CartCount           int               `json:"cartCount"`
	CartTotalCents      int               `json:"cartTotalCents"`
}
