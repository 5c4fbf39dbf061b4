package errors

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/muhammadheryan/clinic-companion/constant"
)

// APIError is a non-2xx answer from the clinic backend.
type APIError struct {
	Status            int
	Message           string
	ErrorCode         string
	RetryAfterSeconds int
	AttemptsRemaining *int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}

type apiErrorBody struct {
	Error              any `json:"error"`
	ErrorCode          any `json:"errorCode"`
	RetryAfterSeconds  any `json:"retryAfterSeconds"`
	ResendAfterSeconds any `json:"resendAfterSeconds"`
	AttemptsRemaining  any `json:"attemptsRemaining"`
}

// BuildAPIError turns a failed response body into an APIError. The message is the
// JSON "error" field when present, the raw text when the body is not JSON, and
// defaultMessage otherwise.
func BuildAPIError(defaultMessage string, status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: defaultMessage}
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return apiErr
	}

	var parsed apiErrorBody
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		apiErr.Message = raw
		return apiErr
	}

	if msg := strings.TrimSpace(asString(parsed.Error)); msg != "" {
		apiErr.Message = msg
	}
	apiErr.ErrorCode = strings.TrimSpace(asString(parsed.ErrorCode))

	retry, ok := asNumber(parsed.RetryAfterSeconds)
	if !ok {
		retry, ok = asNumber(parsed.ResendAfterSeconds)
	}
	if ok && retry > 0 {
		retry = math.Min(retry, constant.OtpMaxCooldown.Seconds())
		apiErr.RetryAfterSeconds = int(math.Max(1, math.Floor(retry)))
	}

	if attempts, ok := asNumber(parsed.AttemptsRemaining); ok {
		n := int(attempts)
		apiErr.AttemptsRemaining = &n
	}
	return apiErr
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case string:
		var f float64
		if _, err := fmt.Sscan(strings.TrimSpace(t), &f); err != nil {
			return 0, false
		}
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}
