package transport

import (
	"net/http"

	"github.com/muhammadheryan/clinic-companion/model"
)

type dashboardResponse struct {
	Dashboard *model.AdminDashboard `json:"dashboard"`
}

// @Summary Restore the stored owner session
// @Tags Admin
// @Produce json
// @Success 200 {object} dashboardResponse
// @Router /v1/admin/bootstrap [post]
func (s *RestHandler) AdminBootstrap(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.Bootstrap(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, dashboardResponse{Dashboard: res})
}

// @Summary Owner API base URL
// @Tags Admin
// @Produce json
// @Success 200 {object} model.URLResult
// @Router /v1/admin/api-url [get]
func (s *RestHandler) AdminAPIURL(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.URLResult{URL: s.AdminApp.APIURL(r.Context())})
}

// @Summary Switch the owner API base URL
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.AdminAPIURLRequest true "URL"
// @Success 200 {object} model.URLResult
// @Router /v1/admin/api-url [put]
func (s *RestHandler) AdminSetAPIURL(w http.ResponseWriter, r *http.Request) {
	var req model.AdminAPIURLRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.URLResult{URL: s.AdminApp.SetAPIURL(r.Context(), req.APIURL)})
}

// @Summary Owner login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.AdminLoginBody true "Credentials"
// @Success 200 {object} dashboardResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/admin/login [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLoginBody
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Login(r.Context(), req.APIURL, req.AdminLoginRequest)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, dashboardResponse{Dashboard: res})
}

// @Summary Register a clinic owner account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.AdminRegisterBody true "Account"
// @Success 200 {object} dashboardResponse
// @Router /v1/admin/register [post]
func (s *RestHandler) AdminRegister(w http.ResponseWriter, r *http.Request) {
	var req model.AdminRegisterBody
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Register(r.Context(), req.APIURL, req.AdminRegisterRequest)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, dashboardResponse{Dashboard: res})
}

// @Summary Reload account, settings, billing and public config
// @Tags Admin
// @Produce json
// @Success 200 {object} dashboardResponse
// @Router /v1/admin/dashboard [get]
func (s *RestHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.Hydrate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, dashboardResponse{Dashboard: res})
}

// @Summary Save clinic branding and links
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.ClinicSettings true "Settings"
// @Success 200 {object} model.ClinicSettings
// @Router /v1/admin/settings [put]
func (s *RestHandler) AdminSaveSettings(w http.ResponseWriter, r *http.Request) {
	var req model.ClinicSettings
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.SaveSettings(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Open a subscription checkout
// @Tags Admin
// @Produce json
// @Success 200 {object} model.URLResult
// @Router /v1/admin/checkout [post]
func (s *RestHandler) AdminCheckout(w http.ResponseWriter, r *http.Request) {
	url, err := s.AdminApp.StartCheckout(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.URLResult{URL: url})
}

// @Summary Booking link of the clinic
// @Tags Admin
// @Produce json
// @Success 200 {object} model.URLResult
// @Failure 409 {object} ErrorResponse
// @Router /v1/admin/calendly [get]
func (s *RestHandler) AdminCalendly(w http.ResponseWriter, r *http.Request) {
	url, err := s.AdminApp.CalendlyURL(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.URLResult{URL: url})
}

// @Summary Owner logout
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/admin/logout [post]
func (s *RestHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.AdminApp.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// @Summary Public booking configuration
// @Tags Lead
// @Produce json
// @Success 200 {object} model.PublicConfig
// @Router /v1/lead/config [get]
func (s *RestHandler) LeadConfig(w http.ResponseWriter, r *http.Request) {
	res, err := s.LeadApp.PublicConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// @Summary Submit a marketing lead
// @Tags Lead
// @Accept json
// @Produce json
// @Param request body model.LeadRequest true "Lead"
// @Success 200 {object} model.LeadResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/leads [post]
func (s *RestHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var req model.LeadRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.SubmitLead(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
