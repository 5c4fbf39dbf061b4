package model

import (
	"time"

	"github.com/muhammadheryan/clinic-companion/constant"
)

type OtpRequest struct {
	ClinicName string `json:"clinicName" validate:"required"`
	Phone      string `json:"phone" validate:"required,phone"`
}

type OtpVerifyRequest struct {
	ClinicName string `json:"clinicName" validate:"required"`
	Phone      string `json:"phone" validate:"required,phone"`
	RequestID  string `json:"requestId" validate:"required"`
	Code       string `json:"code" validate:"otpcode"`
}

type OtpResponse struct {
	RequestID          string  `json:"requestId"`
	MaskedPhone        string  `json:"maskedPhone"`
	ExpiresAt          string  `json:"expiresAt"`
	ResendAfterSeconds float64 `json:"resendAfterSeconds"`
	DebugCode          string  `json:"debugCode"`
}

type OtpVerifyResponse struct {
	MemberEmail string `json:"memberEmail"`
	MemberName  string `json:"memberName"`
}

// OtpChallenge is the single outstanding code request.
type OtpChallenge struct {
	RequestID      string    `json:"requestId"`
	RequestedPhone string    `json:"requestedPhone"`
	MaskedPhone    string    `json:"maskedPhone"`
	ExpiresAt      string    `json:"expiresAt"`
	CooldownUntil  time.Time `json:"cooldownUntil"`
}

type OtpFeedback struct {
	Message string                `json:"message"`
	Type    constant.FeedbackType `json:"type"`
}

type OtpSnapshot struct {
	State             constant.OtpState `json:"state"`
	Challenge         *OtpChallenge     `json:"challenge,omitempty"`
	Feedback          OtpFeedback       `json:"feedback"`
	Countdown         int               `json:"countdown"`
	AttemptsRemaining *int              `json:"attemptsRemaining,omitempty"`
}

// Identity is what a successful verification yields for the session connector.
type Identity struct {
	Phone       string `json:"phone"`
	MemberEmail string `json:"memberEmail"`
	MemberName  string `json:"memberName"`
}
