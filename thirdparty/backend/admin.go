package backend

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/clinic-companion/model"
)

// AdminClient talks to the clinic owner endpoints with a bearer token. Calls are single attempts.
type AdminClient interface {
	Login(ctx context.Context, baseURL string, req model.AdminLoginRequest) (*model.AdminAuthResponse, error)
	Register(ctx context.Context, baseURL string, req model.AdminRegisterRequest) (*model.AdminAuthResponse, error)
	Me(ctx context.Context, baseURL, token string) (*model.MeResponse, error)
	Logout(ctx context.Context, baseURL, token string) error
	ClinicSettings(ctx context.Context, baseURL, token string) (*model.SettingsEnvelope, error)
	SaveClinicSettings(ctx context.Context, baseURL, token string, settings model.ClinicSettings) (*model.SettingsEnvelope, error)
	BillingStatus(ctx context.Context, baseURL, token string) (*model.SubscriptionEnvelope, error)
	CreateCheckoutSession(ctx context.Context, baseURL, token string) (*model.CheckoutSessionResponse, error)
	PublicConfig(ctx context.Context, baseURL string) (*model.PublicConfig, error)
	SubmitLead(ctx context.Context, baseURL string, req model.LeadRequest) (*model.LeadResponse, error)
}

var _ AdminClient = (*Client)(nil)

func authed(c call, token string) call {
	c.token = token
	return c
}

func (c *Client) Login(ctx context.Context, baseURL string, req model.AdminLoginRequest) (*model.AdminAuthResponse, error) {
	out := &model.AdminAuthResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/auth/login", req, ProfileSingleShot, "login failed"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, baseURL string, req model.AdminRegisterRequest) (*model.AdminAuthResponse, error) {
	out := &model.AdminAuthResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/auth/register", req, ProfileSingleShot, "registration failed"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Me(ctx context.Context, baseURL, token string) (*model.MeResponse, error) {
	out := &model.MeResponse{}
	if err := c.do(ctx, baseURL, authed(getJSON("/api/auth/me", nil, ProfileSingleShot, "account could not be loaded"), token), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Logout(ctx context.Context, baseURL, token string) error {
	req := call{method: http.MethodPost, path: "/api/auth/logout", token: token, policy: ProfileSingleShot, defaultError: "logout failed"}
	return c.do(ctx, baseURL, req, nil)
}

func (c *Client) ClinicSettings(ctx context.Context, baseURL, token string) (*model.SettingsEnvelope, error) {
	out := &model.SettingsEnvelope{}
	if err := c.do(ctx, baseURL, authed(getJSON("/api/clinic/settings", nil, ProfileSingleShot, "settings could not be loaded"), token), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveClinicSettings(ctx context.Context, baseURL, token string, settings model.ClinicSettings) (*model.SettingsEnvelope, error) {
	req := authed(postJSON("/api/clinic/settings", settings, ProfileSingleShot, "settings could not be saved"), token)
	req.method = http.MethodPut
	out := &model.SettingsEnvelope{}
	if err := c.do(ctx, baseURL, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) BillingStatus(ctx context.Context, baseURL, token string) (*model.SubscriptionEnvelope, error) {
	out := &model.SubscriptionEnvelope{}
	if err := c.do(ctx, baseURL, authed(getJSON("/api/billing/status", nil, ProfileSingleShot, "billing status could not be loaded"), token), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, baseURL, token string) (*model.CheckoutSessionResponse, error) {
	out := &model.CheckoutSessionResponse{}
	req := authed(postJSON("/api/billing/create-checkout-session", struct{}{}, ProfileSingleShot, "checkout session could not be created"), token)
	if err := c.do(ctx, baseURL, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PublicConfig(ctx context.Context, baseURL string) (*model.PublicConfig, error) {
	out := &model.PublicConfig{}
	if err := c.do(ctx, baseURL, getJSON("/api/config/public", nil, ProfileSingleShot, "public config could not be loaded"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitLead(ctx context.Context, baseURL string, req model.LeadRequest) (*model.LeadResponse, error) {
	out := &model.LeadResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/leads", req, ProfileSingleShot, "lead could not be saved"), out); err != nil {
		return nil, err
	}
	return out, nil
}
