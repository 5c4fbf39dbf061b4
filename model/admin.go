package model

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminRegisterRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	ClinicName string `json:"clinicName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}

type AdminAuthResponse struct {
	Token string     `json:"token"`
	User  *AdminUser `json:"user"`
}

type AdminUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	ClinicID int64  `json:"clinicId"`
}

type ClinicSettings struct {
	ClinicName   string `json:"clinicName"`
	Website      string `json:"website"`
	LogoURL      string `json:"logoUrl"`
	BrandColor   string `json:"brandColor"`
	AccentColor  string `json:"accentColor"`
	FontFamily   string `json:"fontFamily"`
	DesignPreset string `json:"designPreset"`
	CalendlyURL  string `json:"calendlyUrl"`
}

type Subscription struct {
	Status           string `json:"status"`
	Plan             string `json:"plan"`
	CurrentPeriodEnd string `json:"currentPeriodEnd"`
}

type PublicConfig struct {
	StripePublishableKey          string  `json:"stripePublishableKey"`
	StripeEnabled                 bool    `json:"stripeEnabled"`
	CalendlyURL                   string  `json:"calendlyUrl"`
	CalendlyConfigured            bool    `json:"calendlyConfigured"`
	AppointmentixPlanName         string  `json:"appointmentixPlanName,omitempty"`
	AppointmentixMonthlyAmountEur float64 `json:"appointmentixMonthlyAmountEur,omitempty"`
}

type MeResponse struct {
	User *AdminUser `json:"user"`
}

type SettingsEnvelope struct {
	Settings *ClinicSettings `json:"settings"`
}

type SubscriptionEnvelope struct {
	Subscription *Subscription `json:"subscription"`
}

type CheckoutSessionResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type AdminDashboard struct {
	User         *AdminUser      `json:"user"`
	Settings     *ClinicSettings `json:"settings"`
	Subscription *Subscription   `json:"subscription"`
	PublicConfig *PublicConfig   `json:"publicConfig"`
}
