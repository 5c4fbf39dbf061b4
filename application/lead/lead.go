package lead

import (
	"context"
	"strings"
	"sync"

	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"github.com/muhammadheryan/clinic-companion/utils/normalize"
	validatorx "github.com/muhammadheryan/clinic-companion/utils/validator"
	"go.uber.org/zap"
)

const DefaultCalendlyURL = "https://calendly.com"

var placeholderMarkers = []string{"dein-name", "your-name", "example"}

// IsPlaceholderCalendlyURL reports whether url is empty or still one of the sample booking links.
func IsPlaceholderCalendlyURL(url string) bool {
	lowered := strings.ToLower(strings.TrimSpace(url))
	if lowered == "" {
		return true
	}
	for _, marker := range placeholderMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// URLSource yields the API base URL lead calls go to.
type URLSource interface {
	APIURL(ctx context.Context) string
}

type LeadApp interface {
	PublicConfig(ctx context.Context) (*model.PublicConfig, error)
	SubmitLead(ctx context.Context, req model.LeadRequest) (*model.LeadResult, error)
}

type LeadAppImpl struct {
	client backend.AdminClient
	urls   URLSource

	mu                 sync.Mutex
	calendlyURL        string
	calendlyConfigured bool
}

func NewLeadApp(client backend.AdminClient, urls URLSource) LeadApp {
	return &LeadAppImpl{
		client:      client,
		urls:        urls,
		calendlyURL: DefaultCalendlyURL,
	}
}

// PublicConfig loads the booking link shown after a lead. A failed load keeps the last known
// link and marks it unconfigured.
func (s *LeadAppImpl) PublicConfig(ctx context.Context) (*model.PublicConfig, error) {
	cfg, err := s.client.PublicConfig(ctx, s.urls.APIURL(ctx))
	if err != nil {
		logger.Warn("[PublicConfig] err client.PublicConfig", zap.String("error", err.Error()))
		url, _ := s.remember("", false)
		return &model.PublicConfig{CalendlyURL: url}, nil
	}

	out := *cfg
	out.CalendlyURL, out.CalendlyConfigured = s.remember(cfg.CalendlyURL, cfg.CalendlyConfigured)
	return &out, nil
}

func (s *LeadAppImpl) SubmitLead(ctx context.Context, req model.LeadRequest) (*model.LeadResult, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = normalize.Email(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Website = normalize.WebURL(req.Website)
	req.BrandColor = strings.TrimSpace(req.BrandColor)
	req.FontFamily = strings.TrimSpace(req.FontFamily)

	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Error("[SubmitLead] err validatorx.ValidateStruct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	resp, err := s.client.SubmitLead(ctx, s.urls.APIURL(ctx), req)
	if err != nil {
		logger.Error("[SubmitLead] err client.SubmitLead", zap.String("error", err.Error()))
		return nil, err
	}

	url, configured := s.remember(resp.CalendlyURL, resp.CalendlyConfigured)
	result := &model.LeadResult{LeadID: resp.LeadID, Redirect: configured}
	if configured {
		result.RedirectURL = url
	}
	return result, nil
}

// remember keeps the server link when present and only trusts the configured flag for a
// link that is not a placeholder.
func (s *LeadAppImpl) remember(url string, configured bool) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next := normalize.WebURL(url); next != "" {
		s.calendlyURL = next
	}
	s.calendlyConfigured = configured && !IsPlaceholderCalendlyURL(s.calendlyURL)
	return s.calendlyURL, s.calendlyConfigured
}
