package transport

import (
	"net/http"

	"github.com/muhammadheryan/clinic-companion/application/events"
	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/model"
	utilsContext "github.com/muhammadheryan/clinic-companion/utils/context"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	validatorx "github.com/muhammadheryan/clinic-companion/utils/validator"
)

// Bootstrap handler
// @Summary Restore the stored session
// @Description Loads persisted identity and tries to connect to the stored clinic.
// @Tags Session
// @Produce json
// @Success 200 {object} model.BootstrapResult
// @Router /v1/session/bootstrap [post]
func (s *RestHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	res, err := s.SessionApp.Bootstrap(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Current session identity
// @Tags Session
// @Produce json
// @Success 200 {object} model.Session
// @Router /v1/session [get]
func (s *RestHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.SessionApp.Session(r.Context()))
}

// @Summary Session, clinic, catalog and cart totals
// @Tags Session
// @Produce json
// @Success 200 {object} model.Overview
// @Router /v1/overview [get]
func (s *RestHandler) Overview(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.SessionApp.Overview(r.Context()))
}

// Connect handler
// @Summary Connect to a clinic backend
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.ConnectOptions true "Connect options"
// @Success 200 {object} model.ConnectResult
// @Failure 502 {object} ErrorResponse
// @Router /v1/session/connect [post]
func (s *RestHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req model.ConnectOptions
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SessionApp.Connect(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Continue without a phone number
// @Tags Session
// @Produce json
// @Success 200 {object} model.ConnectResult
// @Router /v1/session/guest [post]
func (s *RestHandler) ContinueAsGuest(w http.ResponseWriter, r *http.Request) {
	s.OtpApp.Reset()
	res, err := s.SessionApp.ContinueAsGuest(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Enter the offline demo
// @Tags Session
// @Produce json
// @Success 200 {object} model.Session
// @Router /v1/session/offline [post]
func (s *RestHandler) ContinueOfflineDemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s.OtpApp.Reset()
	if err := s.SessionApp.ContinueOfflineDemo(ctx); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.SessionApp.Session(ctx))
}

// @Summary Forget the clinic connection
// @Tags Session
// @Produce json
// @Success 200 {object} model.BootstrapResult
// @Router /v1/session/disconnect [post]
func (s *RestHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	s.OtpApp.Reset()
	res, err := s.SessionApp.Disconnect(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Update member name and email
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.ProfileUpdate true "Profile"
// @Success 200 {object} model.Session
// @Router /v1/session/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.ProfileUpdate
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SessionApp.UpdateProfile(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Backend health check
// @Tags Session
// @Produce json
// @Success 200 {object} model.HealthResult
// @Failure 502 {object} ErrorResponse
// @Router /v1/health [get]
func (s *RestHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	res, err := s.SessionApp.HealthCheck(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Search clinics by name
// @Tags Clinic
// @Produce json
// @Param q query string false "Query"
// @Success 200 {object} model.ClinicSearchResponse
// @Router /v1/clinics [get]
func (s *RestHandler) SearchClinics(w http.ResponseWriter, r *http.Request) {
	res, err := s.SessionApp.SearchClinics(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Select a clinic by name
// @Tags Clinic
// @Accept json
// @Produce json
// @Param request body model.ClinicSelectRequest true "Clinic"
// @Success 200 {object} model.Session
// @Router /v1/clinics/select [post]
func (s *RestHandler) SelectClinic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req model.ClinicSelectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SessionApp.SelectClinic(ctx, req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.SessionApp.Session(ctx))
}

// @Summary Resolve a scanned or typed clinic code
// @Tags Clinic
// @Accept json
// @Produce json
// @Param request body model.ClinicCodeRequest true "Code"
// @Success 200 {object} model.ResolveCodeResult
// @Router /v1/clinics/resolve [post]
func (s *RestHandler) ResolveCode(w http.ResponseWriter, r *http.Request) {
	var req model.ClinicCodeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SessionApp.ResolveCode(r.Context(), req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	s.OtpApp.Reset()
	writeSuccess(w, res)
}

// @Summary Send an analytics event
// @Description Accepted only while connected; delivery happens in the background.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.TrackRequest true "Event"
// @Success 200 {object} model.TrackResult
// @Router /v1/events [post]
func (s *RestHandler) Track(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req model.TrackRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	metadata := req.Metadata
	if client, ok := utilsContext.GetBridgeClient(ctx); ok {
		if metadata == nil {
			metadata = map[string]any{}
		}
		metadata["bridgeClient"] = client
	}

	accepted := s.SessionApp.Track(ctx, req.EventName, events.Extras{
		TreatmentID: req.TreatmentID,
		AmountCents: req.AmountCents,
		Metadata:    metadata,
	})
	writeSuccess(w, model.TrackResult{Accepted: accepted})
}
