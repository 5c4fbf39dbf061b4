package backend

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/muhammadheryan/clinic-companion/model"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 20
)

// MobileClient is the patient app's view of the clinic REST backend. Every call takes the
// base URL explicitly so the caller can walk fallback candidates.
type MobileClient interface {
	FetchClinicBundle(ctx context.Context, baseURL, clinicName string) (*model.ClinicBundle, error)
	SearchClinics(ctx context.Context, baseURL, query string, limit int) (*model.ClinicSearchResponse, error)
	ResolveClinicCode(ctx context.Context, baseURL string, req model.ResolveCodeRequest) (*model.ResolveCodeResponse, error)
	RequestOtp(ctx context.Context, baseURL string, req model.OtpRequest) (*model.OtpResponse, error)
	ResendOtp(ctx context.Context, baseURL string, req model.OtpRequest) (*model.OtpResponse, error)
	VerifyOtp(ctx context.Context, baseURL string, req model.OtpVerifyRequest) (*model.OtpVerifyResponse, error)
	FetchMembershipStatus(ctx context.Context, baseURL, clinicName, memberEmail string) (*model.MembershipEnvelope, error)
	ActivateMembership(ctx context.Context, baseURL string, req model.ActivateMembershipRequest) (*model.MembershipEnvelope, error)
	CancelMembership(ctx context.Context, baseURL string, req model.CancelMembershipRequest) (*model.MembershipEnvelope, error)
	AddCartItem(ctx context.Context, baseURL string, req model.AddCartItemRequest) (*model.AddCartItemResponse, error)
	CompleteCheckout(ctx context.Context, baseURL string, req model.CheckoutRequest) (*model.CheckoutResponse, error)
	Health(ctx context.Context, baseURL string) (*model.HealthResponse, error)
	PostPublicEvent(ctx context.Context, baseURL string, event model.PublicEvent) error
}

var _ MobileClient = (*Client)(nil)

func (c *Client) FetchClinicBundle(ctx context.Context, baseURL, clinicName string) (*model.ClinicBundle, error) {
	var query url.Values
	if name := strings.TrimSpace(clinicName); name != "" {
		query = url.Values{"clinicName": {name}}
	}
	out := &model.ClinicBundle{}
	if err := c.do(ctx, baseURL, getJSON("/api/mobile/clinic-bundle", query, ProfileRead, "clinic data could not be loaded"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchClinics(ctx context.Context, baseURL, query string, limit int) (*model.ClinicSearchResponse, error) {
	params := url.Values{
		"query": {strings.TrimSpace(query)},
		"limit": {strconv.Itoa(ClampSearchLimit(limit))},
	}
	out := &model.ClinicSearchResponse{}
	if err := c.do(ctx, baseURL, getJSON("/api/mobile/clinics/search", params, ProfileRead, "clinic search failed"), out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClampSearchLimit maps a requested limit into 1..20; non-positive means the default.
func ClampSearchLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}

func (c *Client) ResolveClinicCode(ctx context.Context, baseURL string, req model.ResolveCodeRequest) (*model.ResolveCodeResponse, error) {
	out := &model.ResolveCodeResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/mobile/clinics/resolve-code", req, ProfileRead, "code could not be resolved"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RequestOtp(ctx context.Context, baseURL string, req model.OtpRequest) (*model.OtpResponse, error) {
	out := &model.OtpResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/mobile/auth/otp/request", req, ProfileOtp, "verification code could not be requested"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ResendOtp(ctx context.Context, baseURL string, req model.OtpRequest) (*model.OtpResponse, error) {
	out := &model.OtpResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/mobile/auth/otp/resend", req, ProfileOtp, "verification code could not be resent"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VerifyOtp(ctx context.Context, baseURL string, req model.OtpVerifyRequest) (*model.OtpVerifyResponse, error) {
	out := &model.OtpVerifyResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/mobile/auth/otp/verify", req, ProfileOtp, "verification code could not be confirmed"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchMembershipStatus(ctx context.Context, baseURL, clinicName, memberEmail string) (*model.MembershipEnvelope, error) {
	params := url.Values{
		"clinicName":  {strings.TrimSpace(clinicName)},
		"memberEmail": {strings.ToLower(strings.TrimSpace(memberEmail))},
	}
	out := &model.MembershipEnvelope{}
	if err := c.do(ctx, baseURL, getJSON("/api/mobile/membership/status", params, ProfileRead, "membership status could not be loaded"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ActivateMembership(ctx context.Context, baseURL string, req model.ActivateMembershipRequest) (*model.MembershipEnvelope, error) {
	out := &model.MembershipEnvelope{}
	if err := c.do(ctx, baseURL, postJSON("/api/mobile/membership/activate", req, ProfileMutation, "membership could not be activated"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CancelMembership(ctx context.Context, baseURL string, req model.CancelMembershipRequest) (*model.MembershipEnvelope, error) {
	out := &model.MembershipEnvelope{}
	if err := c.do(ctx, baseURL, postJSON("/api/mobile/membership/cancel", req, ProfileMutation, "membership could not be canceled"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddCartItem(ctx context.Context, baseURL string, req model.AddCartItemRequest) (*model.AddCartItemResponse, error) {
	out := &model.AddCartItemResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/mobile/cart/add", req, ProfileMutation, "cart could not be updated"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CompleteCheckout(ctx context.Context, baseURL string, req model.CheckoutRequest) (*model.CheckoutResponse, error) {
	out := &model.CheckoutResponse{}
	if err := c.do(ctx, baseURL, postJSON("/api/mobile/checkout/complete", req, ProfileCheckout, "checkout could not be completed"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Health(ctx context.Context, baseURL string) (*model.HealthResponse, error) {
	out := &model.HealthResponse{}
	if err := c.do(ctx, baseURL, getJSON("/api/health", nil, ProfileHealth, "health check failed"), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PostPublicEvent(ctx context.Context, baseURL string, event model.PublicEvent) error {
	return c.do(ctx, baseURL, postJSON("/api/analytics/public-event", event, ProfileRead, "event could not be sent"), nil)
}
