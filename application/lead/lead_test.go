package lead_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/muhammadheryan/clinic-companion/application/lead"
	"github.com/muhammadheryan/clinic-companion/constant"
	backendmocks "github.com/muhammadheryan/clinic-companion/mocks/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/model"
	cerr "github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiURL = "https://api.clinic.test"

type staticURL string

func (s staticURL) APIURL(context.Context) string { return string(s) }

func validLead() model.LeadRequest {
	return model.LeadRequest{
		FullName:             " Dr. Anna Weber ",
		Email:                "Anna@Clinic.test",
		Phone:                "+49 170 1234567",
		CompanyName:          "Clinic Berlin",
		Website:              "clinic-berlin.test/",
		HasDevices:           "yes",
		RecurringRevenueBand: "10k-50k",
		ConsentSms:           true,
	}
}

func TestIsPlaceholderCalendlyURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{url: "", want: true},
		{url: "   ", want: true},
		{url: "https://calendly.com/DEIN-NAME/demo", want: true},
		{url: "https://calendly.com/your-name", want: true},
		{url: "https://example.com/book", want: true},
		{url: "https://calendly.com/clinic-berlin/erstgespraech", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, lead.IsPlaceholderCalendlyURL(tt.url))
		})
	}
}

func TestLeadApp_PublicConfig(t *testing.T) {
	tests := []struct {
		name           string
		mockCall       func(c *backendmocks.AdminClient)
		wantURL        string
		wantConfigured bool
	}{
		{
			name: "configured link",
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("PublicConfig", mock.Anything, apiURL).
					Return(&model.PublicConfig{CalendlyURL: "calendly.com/clinic-berlin/", CalendlyConfigured: true, StripeEnabled: true}, nil).Once()
			},
			wantURL:        "https://calendly.com/clinic-berlin",
			wantConfigured: true,
		},
		{
			name: "placeholder is never configured",
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("PublicConfig", mock.Anything, apiURL).
					Return(&model.PublicConfig{CalendlyURL: "https://calendly.com/dein-name", CalendlyConfigured: true}, nil).Once()
			},
			wantURL: "https://calendly.com/dein-name",
		},
		{
			name: "empty link keeps the default",
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("PublicConfig", mock.Anything, apiURL).Return(&model.PublicConfig{CalendlyConfigured: true}, nil).Once()
			},
			wantURL:        lead.DefaultCalendlyURL,
			wantConfigured: true,
		},
		{
			name: "load failure",
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("PublicConfig", mock.Anything, apiURL).Return(nil, stderrors.New("network request failed")).Once()
			},
			wantURL: lead.DefaultCalendlyURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewAdminClient(t)
			tt.mockCall(client)

			cfg, err := lead.NewLeadApp(client, staticURL(apiURL)).PublicConfig(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, cfg.CalendlyURL)
			assert.Equal(t, tt.wantConfigured, cfg.CalendlyConfigured)
		})
	}
}

func TestLeadApp_SubmitLead(t *testing.T) {
	tests := []struct {
		name     string
		req      model.LeadRequest
		mockCall func(c *backendmocks.AdminClient)
		want     *model.LeadResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "redirects to configured link",
			req:  validLead(),
			mockCall: func(c *backendmocks.AdminClient) {
				want := validLead()
				want.FullName = "Dr. Anna Weber"
				want.Email = "anna@clinic.test"
				want.Website = "https://clinic-berlin.test"
				c.On("SubmitLead", mock.Anything, apiURL, want).
					Return(&model.LeadResponse{Success: true, LeadID: 41, CalendlyURL: "https://calendly.com/clinic-berlin", CalendlyConfigured: true}, nil).Once()
			},
			want: &model.LeadResult{LeadID: 41, RedirectURL: "https://calendly.com/clinic-berlin", Redirect: true},
		},
		{
			name: "no redirect for a placeholder",
			req:  validLead(),
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("SubmitLead", mock.Anything, apiURL, mock.Anything).
					Return(&model.LeadResponse{Success: true, LeadID: 42, CalendlyURL: "https://calendly.com/your-name", CalendlyConfigured: true}, nil).Once()
			},
			want: &model.LeadResult{LeadID: 42},
		},
		{
			name: "missing sms consent",
			req: func() model.LeadRequest {
				r := validLead()
				r.ConsentSms = false
				return r
			}(),
			mockCall: func(c *backendmocks.AdminClient) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "server rejects",
			req:  validLead(),
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("SubmitLead", mock.Anything, apiURL, mock.Anything).
					Return(nil, &cerr.APIError{Status: 400, Message: "Bitte gültige E-Mail angeben."}).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewAdminClient(t)
			tt.mockCall(client)

			got, err := lead.NewLeadApp(client, staticURL(apiURL)).SubmitLead(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errCode != 0 {
					assert.True(t, cerr.Is(err, tt.errCode))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
