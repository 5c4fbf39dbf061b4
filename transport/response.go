package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse mirrors the backend error body so a UI can treat both the same way.
type ErrorResponse struct {
	Error             string `json:"error"`
	ErrorCode         string `json:"errorCode,omitempty"`
	RetryAfterSeconds int    `json:"retryAfterSeconds,omitempty"`
	AttemptsRemaining *int   `json:"attemptsRemaining,omitempty"`
	BaseURL           string `json:"baseUrl,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, body any) {
	if body == nil {
		body = struct{}{}
	}
	writeJSON(w, http.StatusOK, body)
}

func writeError(w http.ResponseWriter, err error) {
	status, body := errorBody(err)
	writeJSON(w, status, body)
}

func errorBody(err error) (int, ErrorResponse) {
	var (
		custom     errors.CustomError
		apiErr     *errors.APIError
		connErr    *errors.ConnectionError
		timeoutErr *backend.TimeoutError
		netErr     *backend.TransportError
	)

	switch {
	case stderrors.As(err, &custom):
		return custom.ErrorHTTPCode(), ErrorResponse{Error: custom.Error(), ErrorCode: custom.ErrorCode()}
	case stderrors.As(err, &connErr):
		return http.StatusBadGateway, ErrorResponse{
			Error:     connErr.Message,
			ErrorCode: constant.ErrorTypeCode[constant.ErrConnection],
			BaseURL:   connErr.BaseURL,
		}
	case stderrors.As(err, &apiErr):
		status := apiErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return status, ErrorResponse{
			Error:             apiErr.Error(),
			ErrorCode:         apiErr.ErrorCode,
			RetryAfterSeconds: apiErr.RetryAfterSeconds,
			AttemptsRemaining: apiErr.AttemptsRemaining,
		}
	case stderrors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout, ErrorResponse{Error: timeoutErr.Error()}
	case stderrors.As(err, &netErr):
		return http.StatusBadGateway, ErrorResponse{Error: netErr.Error()}
	}

	logger.Error("[writeError] unmapped error", zap.String("error", err.Error()))
	internal := errors.SetCustomError(constant.ErrInternal)
	return internal.ErrorHTTPCode(), ErrorResponse{Error: internal.Error(), ErrorCode: internal.ErrorCode()}
}

func decode(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}
