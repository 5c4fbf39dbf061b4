package constant

// Secure store keys. Values are kept compatible with installed clients.
const (
	StorageBaseURL           = "appointmentix.analyticsBaseUrl"
	StorageDiscoveredBaseURL = "appointmentix.discoveredBaseUrl"
	StorageClinicName        = "appointmentix.clinicName"
	StorageSettingsName      = "appointmentix.settingsName"
	StorageSettingsEmail     = "appointmentix.settingsEmail"
	StoragePatientPhone      = "appointmentix.patientPhone"
	StoragePatientGuestMode  = "appointmentix.patientGuestMode"
	StorageOnboardingDone    = "appointmentix.onboardingDone"

	StorageAdminToken  = "appointmentix_auth_token"
	StorageAdminAPIURL = "appointmentix_api_url"
)

const FlagOn = "1"
