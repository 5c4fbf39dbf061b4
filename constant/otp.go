package constant

import "time"

// Error codes the backend attaches to OTP failures.
const (
	OtpErrCooldown         = "OTP_COOLDOWN"
	OtpErrInvalid          = "OTP_INVALID"
	OtpErrExpired          = "OTP_EXPIRED"
	OtpErrAttemptsExceeded = "OTP_ATTEMPTS_EXCEEDED"
	OtpErrRequestNotFound  = "OTP_REQUEST_NOT_FOUND"
)

const (
	OtpCooldownFallback = 30 * time.Second
	OtpMaxCooldown      = 24 * time.Hour
	OtpCountdownTick    = 500 * time.Millisecond
	OtpMinPhoneDigits   = 7
)

type OtpState int

const (
	OtpStateIdle OtpState = iota
	OtpStateRequested
	OtpStateVerifying
	OtpStateVerified
	OtpStateInvalid
	OtpStateExpired
	OtpStateCooldown
	OtpStateAttemptsExceeded
	OtpStateRequestNotFound
	OtpStateFailed
)

var otpStateName = map[OtpState]string{
	OtpStateIdle:             "idle",
	OtpStateRequested:        "requested",
	OtpStateVerifying:        "verifying",
	OtpStateVerified:         "verified",
	OtpStateInvalid:          "invalid",
	OtpStateExpired:          "expired",
	OtpStateCooldown:         "cooldown",
	OtpStateAttemptsExceeded: "attempts_exceeded",
	OtpStateRequestNotFound:  "request_not_found",
	OtpStateFailed:           "failed",
}

func (s OtpState) String() string {
	if name, ok := otpStateName[s]; ok {
		return name
	}
	return "unknown"
}

func (s OtpState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FeedbackType is the severity of a user-facing message.
type FeedbackType int

const (
	FeedbackNeutral FeedbackType = iota
	FeedbackInfo
	FeedbackSuccess
	FeedbackWarning
	FeedbackError
)

var feedbackTypeName = map[FeedbackType]string{
	FeedbackNeutral: "neutral",
	FeedbackInfo:    "info",
	FeedbackSuccess: "success",
	FeedbackWarning: "warning",
	FeedbackError:   "error",
}

func (f FeedbackType) String() string {
	if name, ok := feedbackTypeName[f]; ok {
		return name
	}
	return "neutral"
}

func (f FeedbackType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
