package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/clinic-companion/application/admin"
	cartapp "github.com/muhammadheryan/clinic-companion/application/cart"
	leadapp "github.com/muhammadheryan/clinic-companion/application/lead"
	membershipapp "github.com/muhammadheryan/clinic-companion/application/membership"
	otpapp "github.com/muhammadheryan/clinic-companion/application/otp"
	rewardapp "github.com/muhammadheryan/clinic-companion/application/reward"
	sessionapp "github.com/muhammadheryan/clinic-companion/application/session"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	SessionApp    sessionapp.SessionApp
	OtpApp        otpapp.OtpApp
	MembershipApp membershipapp.MembershipApp
	CartApp       cartapp.CartApp
	RewardApp     rewardapp.RewardApp
	AdminApp      adminapp.AdminApp
	LeadApp       leadapp.LeadApp
}

func NewTransport(bridgeKey string, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	v1 := mux.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/ping", rh.Ping).Methods(http.MethodGet)

	// session
	v1.HandleFunc("/session", rh.Session).Methods(http.MethodGet)
	v1.HandleFunc("/overview", rh.Overview).Methods(http.MethodGet)
	v1.HandleFunc("/session/bootstrap", rh.Bootstrap).Methods(http.MethodPost)
	v1.HandleFunc("/session/connect", rh.Connect).Methods(http.MethodPost)
	v1.HandleFunc("/session/guest", rh.ContinueAsGuest).Methods(http.MethodPost)
	v1.HandleFunc("/session/offline", rh.ContinueOfflineDemo).Methods(http.MethodPost)
	v1.HandleFunc("/session/disconnect", rh.Disconnect).Methods(http.MethodPost)
	v1.HandleFunc("/session/profile", rh.UpdateProfile).Methods(http.MethodPut)
	v1.HandleFunc("/health", rh.HealthCheck).Methods(http.MethodGet)
	v1.HandleFunc("/clinics", rh.SearchClinics).Methods(http.MethodGet)
	v1.HandleFunc("/clinics/select", rh.SelectClinic).Methods(http.MethodPost)
	v1.HandleFunc("/clinics/resolve", rh.ResolveCode).Methods(http.MethodPost)
	v1.HandleFunc("/events", rh.Track).Methods(http.MethodPost)

	// otp
	v1.HandleFunc("/otp", rh.OtpSnapshot).Methods(http.MethodGet)
	v1.HandleFunc("/otp/request", rh.OtpRequest).Methods(http.MethodPost)
	v1.HandleFunc("/otp/resend", rh.OtpResend).Methods(http.MethodPost)
	v1.HandleFunc("/otp/continue", rh.OtpContinue).Methods(http.MethodPost)
	v1.HandleFunc("/otp/verify", rh.OtpVerify).Methods(http.MethodPost)
	v1.HandleFunc("/otp/reset", rh.OtpReset).Methods(http.MethodPost)

	// membership, cart, rewards
	v1.HandleFunc("/membership/sync", rh.MembershipSync).Methods(http.MethodPost)
	v1.HandleFunc("/membership/activate", rh.MembershipActivate).Methods(http.MethodPost)
	v1.HandleFunc("/membership/cancel", rh.MembershipCancel).Methods(http.MethodPost)
	v1.HandleFunc("/cart", rh.CartItems).Methods(http.MethodGet)
	v1.HandleFunc("/cart/items", rh.CartAdd).Methods(http.MethodPost)
	v1.HandleFunc("/cart/items/{id}", rh.CartUpdateUnits).Methods(http.MethodPut)
	v1.HandleFunc("/cart/items/{id}", rh.CartRemove).Methods(http.MethodDelete)
	v1.HandleFunc("/cart/checkout", rh.Checkout).Methods(http.MethodPost)
	v1.HandleFunc("/rewards", rh.RewardLedger).Methods(http.MethodGet)
	v1.HandleFunc("/rewards/claim/{id}", rh.RewardClaim).Methods(http.MethodPost)
	v1.HandleFunc("/rewards/redeem/{id}", rh.RewardRedeem).Methods(http.MethodPost)
	v1.HandleFunc("/rewards/check-in", rh.RewardCheckIn).Methods(http.MethodPost)

	// clinic owner
	v1.HandleFunc("/admin/bootstrap", rh.AdminBootstrap).Methods(http.MethodPost)
	v1.HandleFunc("/admin/api-url", rh.AdminAPIURL).Methods(http.MethodGet)
	v1.HandleFunc("/admin/api-url", rh.AdminSetAPIURL).Methods(http.MethodPut)
	v1.HandleFunc("/admin/login", rh.AdminLogin).Methods(http.MethodPost)
	v1.HandleFunc("/admin/register", rh.AdminRegister).Methods(http.MethodPost)
	v1.HandleFunc("/admin/dashboard", rh.AdminDashboard).Methods(http.MethodGet)
	v1.HandleFunc("/admin/settings", rh.AdminSaveSettings).Methods(http.MethodPut)
	v1.HandleFunc("/admin/checkout", rh.AdminCheckout).Methods(http.MethodPost)
	v1.HandleFunc("/admin/calendly", rh.AdminCalendly).Methods(http.MethodGet)
	v1.HandleFunc("/admin/logout", rh.AdminLogout).Methods(http.MethodPost)
	v1.HandleFunc("/lead/config", rh.LeadConfig).Methods(http.MethodGet)
	v1.HandleFunc("/leads", rh.SubmitLead).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(BridgeAuthMiddleware(bridgeKey))

	return mux
}

// Ping handler
// @Summary Bridge liveness
// @Tags Session
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/ping [get]
func (s *RestHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}
