package transport

import (
	"net/http"

	"github.com/muhammadheryan/clinic-companion/model"
)

// otpResult writes the snapshot with the error status when the step failed. Failed steps
// still carry the feedback line the screen shows.
func otpResult(w http.ResponseWriter, snap model.OtpSnapshot, err error) {
	if err != nil {
		status, body := errorBody(err)
		if snap.Feedback.Message != "" {
			body.Error = snap.Feedback.Message
		}
		writeJSON(w, status, struct {
			ErrorResponse
			Otp model.OtpSnapshot `json:"otp"`
		}{body, snap})
		return
	}
	writeSuccess(w, snap)
}

// @Summary Current verification state
// @Tags OTP
// @Produce json
// @Success 200 {object} model.OtpSnapshot
// @Router /v1/otp [get]
func (s *RestHandler) OtpSnapshot(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.OtpApp.Snapshot())
}

// @Summary Request a code by SMS
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.OtpStartRequest true "Phone and clinic"
// @Success 200 {object} model.OtpSnapshot
// @Failure 429 {object} ErrorResponse
// @Router /v1/otp/request [post]
func (s *RestHandler) OtpRequest(w http.ResponseWriter, r *http.Request) {
	var req model.OtpStartRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.OtpApp.Request(r.Context(), req.Phone, req.ClinicName)
	otpResult(w, snap, err)
}

// @Summary Resend the code once the cooldown ran out
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.OtpStartRequest true "Phone and clinic"
// @Success 200 {object} model.OtpSnapshot
// @Router /v1/otp/resend [post]
func (s *RestHandler) OtpResend(w http.ResponseWriter, r *http.Request) {
	var req model.OtpStartRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.OtpApp.Resend(r.Context(), req.Phone, req.ClinicName)
	otpResult(w, snap, err)
}

// @Summary Request or verify, depending on the current challenge
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.OtpStartRequest true "Phone, clinic and code"
// @Success 200 {object} model.OtpSnapshot
// @Router /v1/otp/continue [post]
func (s *RestHandler) OtpContinue(w http.ResponseWriter, r *http.Request) {
	var req model.OtpStartRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.OtpApp.Continue(r.Context(), req.Phone, req.ClinicName, req.Code)
	otpResult(w, snap, err)
}

// @Summary Verify the received code
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.OtpCodeRequest true "Code"
// @Success 200 {object} model.OtpSnapshot
// @Failure 400 {object} ErrorResponse
// @Router /v1/otp/verify [post]
func (s *RestHandler) OtpVerify(w http.ResponseWriter, r *http.Request) {
	var req model.OtpCodeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.OtpApp.Verify(r.Context(), req.Code)
	otpResult(w, snap, err)
}

// @Summary Drop the outstanding challenge
// @Tags OTP
// @Produce json
// @Success 200 {object} model.OtpSnapshot
// @Router /v1/otp/reset [post]
func (s *RestHandler) OtpReset(w http.ResponseWriter, r *http.Request) {
	s.OtpApp.Reset()
	writeSuccess(w, s.OtpApp.Snapshot())
}
