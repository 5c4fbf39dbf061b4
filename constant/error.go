package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrBusy
	ErrBackendMissing
	ErrClinicMissing
	ErrInvalidPhone
	ErrInvalidOtpCode
	ErrOtpNotRequested
	ErrOtpCooldown
	ErrIdentityMissing
	ErrEmailMissing
	ErrMembershipNotFound
	ErrTreatmentNotFound
	ErrCartEmpty
	ErrInsufficientPoints
	ErrRewardNotFound
	ErrConnection
	ErrTokenMissing
	ErrCheckoutURLMissing
	ErrCalendlyMissing
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrBusy:               "a request of this kind is already running",
	ErrBackendMissing:     "backend url missing",
	ErrClinicMissing:      "please select a clinic first",
	ErrInvalidPhone:       "please enter a valid phone number",
	ErrInvalidOtpCode:     "please enter the sms code",
	ErrOtpNotRequested:    "no code requested for this phone number",
	ErrOtpCooldown:        "please wait before requesting a new code",
	ErrIdentityMissing:    "verified phone could not be mapped to a member account",
	ErrEmailMissing:       "please set a valid email in your profile",
	ErrMembershipNotFound: "membership not found, please reload the catalog",
	ErrTreatmentNotFound:  "treatment not found",
	ErrCartEmpty:          "cart is empty, please choose at least one treatment",
	ErrInsufficientPoints: "not enough points",
	ErrRewardNotFound:     "reward not found",
	ErrConnection:         "backend connection failed",
	ErrTokenMissing:       "token missing in response",
	ErrCheckoutURLMissing: "no checkout url received",
	ErrCalendlyMissing:    "please set a real calendly link in the settings first",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusBadRequest,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrBusy:               http.StatusConflict,
	ErrBackendMissing:     http.StatusServiceUnavailable,
	ErrClinicMissing:      http.StatusBadRequest,
	ErrInvalidPhone:       http.StatusBadRequest,
	ErrInvalidOtpCode:     http.StatusBadRequest,
	ErrOtpNotRequested:    http.StatusBadRequest,
	ErrOtpCooldown:        http.StatusTooManyRequests,
	ErrIdentityMissing:    http.StatusBadGateway,
	ErrEmailMissing:       http.StatusBadRequest,
	ErrMembershipNotFound: http.StatusNotFound,
	ErrTreatmentNotFound:  http.StatusNotFound,
	ErrCartEmpty:          http.StatusBadRequest,
	ErrInsufficientPoints: http.StatusBadRequest,
	ErrRewardNotFound:     http.StatusNotFound,
	ErrConnection:         http.StatusBadGateway,
	ErrTokenMissing:       http.StatusBadGateway,
	ErrCheckoutURLMissing: http.StatusBadGateway,
	ErrCalendlyMissing:    http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrBusy:               "0005",
	ErrBackendMissing:     "0006",
	ErrClinicMissing:      "0007",
	ErrInvalidPhone:       "0008",
	ErrInvalidOtpCode:     "0009",
	ErrOtpNotRequested:    "0010",
	ErrOtpCooldown:        "0011",
	ErrIdentityMissing:    "0012",
	ErrEmailMissing:       "0013",
	ErrMembershipNotFound: "0014",
	ErrTreatmentNotFound:  "0015",
	ErrCartEmpty:          "0016",
	ErrInsufficientPoints: "0017",
	ErrRewardNotFound:     "0018",
	ErrConnection:         "0019",
	ErrTokenMissing:       "0020",
	ErrCheckoutURLMissing: "0021",
	ErrCalendlyMissing:    "0022",
}
