package constant

type HistoryType string

const (
	HistoryReward   HistoryType = "reward"
	HistoryRedeem   HistoryType = "redeem"
	HistoryPurchase HistoryType = "purchase"
)

const (
	CheckInBonusPoints = 30
	CartMaxUnits       = 20
	DevBackendPort     = 4173
	MistypedDevPort    = 4137
)

type OnboardingStep string

const (
	OnboardingClinic OnboardingStep = "clinic"
	OnboardingAccess OnboardingStep = "access"
)
