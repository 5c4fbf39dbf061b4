package model

import "github.com/muhammadheryan/clinic-companion/constant"

// Session is the persisted identity of the patient app.
type Session struct {
	BaseURL        string `json:"baseUrl"`
	ClinicName     string `json:"clinicName"`
	MemberEmail    string `json:"memberEmail"`
	MemberName     string `json:"memberName"`
	Phone          string `json:"phone"`
	GuestMode      bool   `json:"guestMode"`
	OnboardingDone bool   `json:"onboardingDone"`
}

type ConnectOptions struct {
	BaseURL            string  `json:"baseUrl"`
	ClinicName         string  `json:"clinicName"`
	MemberEmail        *string `json:"memberEmail,omitempty"`
	MemberName         *string `json:"memberName,omitempty"`
	SkipOnboardingDone bool    `json:"skipOnboardingDone"`
}

type BootstrapResult struct {
	Connected      bool                    `json:"connected"`
	ShowOnboarding bool                    `json:"showOnboarding"`
	Step           constant.OnboardingStep `json:"step"`
	Message        string                  `json:"message,omitempty"`
}

type ConnectResult struct {
	BaseURL string `json:"baseUrl"`
	Message string `json:"message"`
}
