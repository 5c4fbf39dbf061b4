package model

type LeadRequest struct {
	FullName             string `json:"fullName" validate:"required,min=2"`
	Email                string `json:"email" validate:"required,email"`
	Phone                string `json:"phone" validate:"required,min=6"`
	CompanyName          string `json:"companyName" validate:"required,min=2"`
	Website              string `json:"website" validate:"required"`
	HasDevices           string `json:"hasDevices" validate:"required"`
	RecurringRevenueBand string `json:"recurringRevenueBand" validate:"required"`
	BrandColor           string `json:"brandColor,omitempty"`
	FontFamily           string `json:"fontFamily,omitempty" validate:"max=120"`
	ConsentSms           bool   `json:"consentSms" validate:"eq=true"`
	ConsentMarketing     bool   `json:"consentMarketing"`
}

type LeadResponse struct {
	Success            bool   `json:"success"`
	LeadID             int64  `json:"leadId"`
	CalendlyURL        string `json:"calendlyUrl"`
	CalendlyConfigured bool   `json:"calendlyConfigured"`
}

// LeadResult tells the caller whether to continue to the booking page.
type LeadResult struct {
	LeadID      int64  `json:"leadId"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Redirect    bool   `json:"redirect"`
}
