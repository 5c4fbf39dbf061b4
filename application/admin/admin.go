package admin

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/clinic-companion/application/lead"
	"github.com/muhammadheryan/clinic-companion/cmd/config"
	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/repository/securestore"
	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"github.com/muhammadheryan/clinic-companion/utils/normalize"
	validatorx "github.com/muhammadheryan/clinic-companion/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultDesignPreset = "clean"

type AdminApp interface {
	APIURL(ctx context.Context) string
	SetAPIURL(ctx context.Context, apiURL string) string
	Bootstrap(ctx context.Context) (*model.AdminDashboard, error)
	Login(ctx context.Context, apiURL string, req model.AdminLoginRequest) (*model.AdminDashboard, error)
	Register(ctx context.Context, apiURL string, req model.AdminRegisterRequest) (*model.AdminDashboard, error)
	Hydrate(ctx context.Context) (*model.AdminDashboard, error)
	SaveSettings(ctx context.Context, settings model.ClinicSettings) (*model.ClinicSettings, error)
	StartCheckout(ctx context.Context) (string, error)
	CalendlyURL(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}

type AdminAppImpl struct {
	config *config.Config
	client backend.AdminClient
	secure securestore.Store
	now    func() time.Time

	mu        sync.Mutex
	loaded    bool
	apiURL    string
	token     string
	dashboard *model.AdminDashboard
}

func NewAdminApp(config *config.Config, client backend.AdminClient, secure securestore.Store) AdminApp {
	return &AdminAppImpl{
		config: config,
		client: client,
		secure: secure,
		now:    time.Now,
	}
}

// APIURL returns the admin API base URL: the stored one, else the configured default.
func (s *AdminAppImpl) APIURL(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.apiURL = normalize.WebURL(securestore.ReadString(ctx, s.secure, constant.StorageAdminAPIURL))
		if s.apiURL == "" {
			s.apiURL = normalize.WebURL(s.config.Backend.DefaultBaseURL)
		}
		s.loaded = true
	}
	return s.apiURL
}

// SetAPIURL switches and persists the API base URL. An empty value keeps the current one.
func (s *AdminAppImpl) SetAPIURL(ctx context.Context, apiURL string) string {
	current := s.APIURL(ctx)
	next := normalize.WebURL(apiURL)
	if next == "" || next == current {
		return current
	}

	s.mu.Lock()
	s.apiURL = next
	s.mu.Unlock()
	_ = securestore.WriteString(ctx, s.secure, constant.StorageAdminAPIURL, next)
	return next
}

// Bootstrap restores a stored token. Expired tokens and tokens the server no longer accepts
// are dropped; the caller then shows the login form.
func (s *AdminAppImpl) Bootstrap(ctx context.Context) (*model.AdminDashboard, error) {
	s.APIURL(ctx)
	token := strings.TrimSpace(securestore.ReadString(ctx, s.secure, constant.StorageAdminToken))
	if token == "" {
		return nil, nil
	}

	if tokenExpired(token, s.now()) {
		logger.Info("[Bootstrap] stored admin token expired")
		s.clearToken(ctx)
		return nil, nil
	}

	s.setToken(token)
	dashboard, err := s.Hydrate(ctx)
	if err != nil {
		logger.Warn("[Bootstrap] err Hydrate", zap.String("error", err.Error()))
		s.clearToken(ctx)
		return nil, err
	}
	return dashboard, nil
}

func (s *AdminAppImpl) Login(ctx context.Context, apiURL string, req model.AdminLoginRequest) (*model.AdminDashboard, error) {
	req.Email = normalize.Email(req.Email)
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Error("[Login] err validatorx.ValidateStruct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	baseURL := s.SetAPIURL(ctx, apiURL)
	resp, err := s.client.Login(ctx, baseURL, req)
	if err != nil {
		logger.Error("[Login] err client.Login", zap.String("error", err.Error()))
		return nil, err
	}
	return s.authenticated(ctx, resp)
}

func (s *AdminAppImpl) Register(ctx context.Context, apiURL string, req model.AdminRegisterRequest) (*model.AdminDashboard, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.ClinicName = strings.TrimSpace(req.ClinicName)
	req.Email = normalize.Email(req.Email)
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Error("[Register] err validatorx.ValidateStruct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	baseURL := s.SetAPIURL(ctx, apiURL)
	resp, err := s.client.Register(ctx, baseURL, req)
	if err != nil {
		logger.Error("[Register] err client.Register", zap.String("error", err.Error()))
		return nil, err
	}
	return s.authenticated(ctx, resp)
}

func (s *AdminAppImpl) authenticated(ctx context.Context, resp *model.AdminAuthResponse) (*model.AdminDashboard, error) {
	token := strings.TrimSpace(resp.Token)
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrTokenMissing)
	}

	s.setToken(token)
	_ = securestore.WriteString(ctx, s.secure, constant.StorageAdminToken, token)
	return s.Hydrate(ctx)
}

// Hydrate loads account, settings, billing and public config in parallel. Any failure fails
// the whole load.
func (s *AdminAppImpl) Hydrate(ctx context.Context) (*model.AdminDashboard, error) {
	baseURL := s.APIURL(ctx)
	token := s.currentToken()
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	var (
		me       *model.MeResponse
		settings *model.SettingsEnvelope
		billing  *model.SubscriptionEnvelope
		public   *model.PublicConfig
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		me, err = s.client.Me(gctx, baseURL, token)
		return err
	})
	g.Go(func() (err error) {
		settings, err = s.client.ClinicSettings(gctx, baseURL, token)
		return err
	})
	g.Go(func() (err error) {
		billing, err = s.client.BillingStatus(gctx, baseURL, token)
		return err
	})
	g.Go(func() (err error) {
		public, err = s.client.PublicConfig(gctx, baseURL)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("[Hydrate] err loading dashboard", zap.String("error", err.Error()))
		return nil, err
	}

	dashboard := &model.AdminDashboard{
		User:         me.User,
		Settings:     settings.Settings,
		Subscription: billing.Subscription,
		PublicConfig: public,
	}
	s.mu.Lock()
	s.dashboard = dashboard
	s.mu.Unlock()
	return dashboard, nil
}

func (s *AdminAppImpl) SaveSettings(ctx context.Context, settings model.ClinicSettings) (*model.ClinicSettings, error) {
	token := s.currentToken()
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	settings = cleanSettings(settings)
	resp, err := s.client.SaveClinicSettings(ctx, s.APIURL(ctx), token, settings)
	if err != nil {
		logger.Error("[SaveSettings] err client.SaveClinicSettings", zap.String("error", err.Error()))
		return nil, err
	}

	saved := &settings
	if resp.Settings != nil {
		saved = resp.Settings
	}
	s.mu.Lock()
	if s.dashboard == nil {
		s.dashboard = &model.AdminDashboard{}
	}
	s.dashboard.Settings = saved
	s.mu.Unlock()
	return saved, nil
}

func cleanSettings(in model.ClinicSettings) model.ClinicSettings {
	out := model.ClinicSettings{
		ClinicName:   strings.TrimSpace(in.ClinicName),
		Website:      normalize.WebURL(in.Website),
		LogoURL:      normalize.WebURL(in.LogoURL),
		BrandColor:   strings.TrimSpace(in.BrandColor),
		AccentColor:  strings.TrimSpace(in.AccentColor),
		FontFamily:   strings.TrimSpace(in.FontFamily),
		DesignPreset: strings.TrimSpace(in.DesignPreset),
		CalendlyURL:  normalize.WebURL(in.CalendlyURL),
	}
	if out.DesignPreset == "" {
		out.DesignPreset = defaultDesignPreset
	}
	return out
}

// StartCheckout opens a billing checkout session and returns the page to send the owner to.
func (s *AdminAppImpl) StartCheckout(ctx context.Context) (string, error) {
	token := s.currentToken()
	if token == "" {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}

	resp, err := s.client.CreateCheckoutSession(ctx, s.APIURL(ctx), token)
	if err != nil {
		logger.Error("[StartCheckout] err client.CreateCheckoutSession", zap.String("error", err.Error()))
		return "", err
	}

	url := strings.TrimSpace(resp.CheckoutURL)
	if url == "" {
		return "", errors.SetCustomError(constant.ErrCheckoutURLMissing)
	}
	return url, nil
}

// CalendlyURL returns the booking link of the loaded dashboard, preferring the clinic setting.
func (s *AdminAppImpl) CalendlyURL(_ context.Context) (string, error) {
	s.mu.Lock()
	dashboard := s.dashboard
	s.mu.Unlock()

	var raw string
	if dashboard != nil && dashboard.Settings != nil {
		raw = dashboard.Settings.CalendlyURL
	}
	if strings.TrimSpace(raw) == "" && dashboard != nil && dashboard.PublicConfig != nil {
		raw = dashboard.PublicConfig.CalendlyURL
	}

	url := normalize.WebURL(raw)
	if lead.IsPlaceholderCalendlyURL(url) {
		return "", errors.SetCustomError(constant.ErrCalendlyMissing)
	}
	return url, nil
}

// Logout ends the server session when it can and always drops the local token.
func (s *AdminAppImpl) Logout(ctx context.Context) error {
	if token := s.currentToken(); token != "" {
		if err := s.client.Logout(ctx, s.APIURL(ctx), token); err != nil {
			logger.Warn("[Logout] err client.Logout", zap.String("error", err.Error()))
		}
	}
	return s.clearToken(ctx)
}

func (s *AdminAppImpl) currentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *AdminAppImpl) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *AdminAppImpl) clearToken(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.dashboard = nil
	s.mu.Unlock()
	return securestore.WriteString(ctx, s.secure, constant.StorageAdminToken, "")
}

// tokenExpired reads exp without verifying the signature; the server stays the authority.
// Tokens that do not parse as JWT are left for the server to judge.
func tokenExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !claims.ExpiresAt.After(now)
}
