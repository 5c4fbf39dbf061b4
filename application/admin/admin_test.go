package admin_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/clinic-companion/application/admin"
	"github.com/muhammadheryan/clinic-companion/cmd/config"
	"github.com/muhammadheryan/clinic-companion/constant"
	securemocks "github.com/muhammadheryan/clinic-companion/mocks/repository/securestore"
	backendmocks "github.com/muhammadheryan/clinic-companion/mocks/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/repository/securestore"
	cerr "github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiURL = "https://admin.clinic.test"

func testConfig() *config.Config {
	return &config.Config{Backend: config.BackendConfig{DefaultBaseURL: "admin.clinic.test/"}}
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func expectHydrate(c *backendmocks.AdminClient, token string) {
	c.On("Me", mock.Anything, apiURL, token).Return(&model.MeResponse{User: &model.AdminUser{ID: 7, Email: "owner@clinic.test"}}, nil).Once()
	c.On("ClinicSettings", mock.Anything, apiURL, token).Return(&model.SettingsEnvelope{Settings: &model.ClinicSettings{ClinicName: "Clinic Berlin", CalendlyURL: "calendly.com/clinic-berlin"}}, nil).Once()
	c.On("BillingStatus", mock.Anything, apiURL, token).Return(&model.SubscriptionEnvelope{Subscription: &model.Subscription{Status: "active"}}, nil).Once()
	c.On("PublicConfig", mock.Anything, apiURL).Return(&model.PublicConfig{CalendlyURL: "https://calendly.com/dein-name"}, nil).Once()
}

func customCode(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, stderrors.As(err, &ce), "expected CustomError, got %v", err)
	return ce.Type()
}

func TestAdminApp_APIURL(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{name: "default from config", want: apiURL},
		{name: "stored url wins", stored: "other.clinic.test/", want: "https://other.clinic.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secure := securestore.NewMemoryStore()
			if tt.stored != "" {
				require.NoError(t, secure.Set(context.Background(), constant.StorageAdminAPIURL, tt.stored))
			}
			app := admin.NewAdminApp(testConfig(), backendmocks.NewAdminClient(t), secure)
			assert.Equal(t, tt.want, app.APIURL(context.Background()))
		})
	}
}

func TestAdminApp_SetAPIURLPersists(t *testing.T) {
	ctx := context.Background()
	secure := securestore.NewMemoryStore()
	app := admin.NewAdminApp(testConfig(), backendmocks.NewAdminClient(t), secure)

	assert.Equal(t, apiURL, app.SetAPIURL(ctx, "  "))
	assert.Equal(t, "https://new.clinic.test", app.SetAPIURL(ctx, "new.clinic.test"))

	stored, _ := secure.Get(ctx, constant.StorageAdminAPIURL)
	assert.Equal(t, "https://new.clinic.test", stored)
}

func TestAdminApp_Bootstrap(t *testing.T) {
	fresh := signed(t, time.Now().Add(time.Hour))
	expired := signed(t, time.Now().Add(-time.Hour))

	tests := []struct {
		name          string
		token         string
		mockCall      func(c *backendmocks.AdminClient)
		wantErr       bool
		wantDashboard bool
		wantToken     string
	}{
		{
			name:     "no token: login form",
			mockCall: func(c *backendmocks.AdminClient) {},
		},
		{
			name:      "expired token dropped without a call",
			token:     expired,
			mockCall:  func(c *backendmocks.AdminClient) {},
			wantToken: "",
		},
		{
			name:  "valid token hydrates",
			token: fresh,
			mockCall: func(c *backendmocks.AdminClient) {
				expectHydrate(c, fresh)
			},
			wantDashboard: true,
			wantToken:     fresh,
		},
		{
			name:  "opaque token is left to the server",
			token: "opaque-session",
			mockCall: func(c *backendmocks.AdminClient) {
				expectHydrate(c, "opaque-session")
			},
			wantDashboard: true,
			wantToken:     "opaque-session",
		},
		{
			name:  "rejected token dropped",
			token: fresh,
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("Me", mock.Anything, apiURL, fresh).Return(nil, &cerr.APIError{Status: 401, Message: "unauthorized"}).Once()
				c.On("ClinicSettings", mock.Anything, apiURL, fresh).Return(&model.SettingsEnvelope{}, nil).Maybe()
				c.On("BillingStatus", mock.Anything, apiURL, fresh).Return(&model.SubscriptionEnvelope{}, nil).Maybe()
				c.On("PublicConfig", mock.Anything, apiURL).Return(&model.PublicConfig{}, nil).Maybe()
			},
			wantErr:   true,
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			secure := securestore.NewMemoryStore()
			if tt.token != "" {
				require.NoError(t, secure.Set(ctx, constant.StorageAdminToken, tt.token))
			}
			client := backendmocks.NewAdminClient(t)
			tt.mockCall(client)

			app := admin.NewAdminApp(testConfig(), client, secure)
			dashboard, err := app.Bootstrap(ctx)

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantDashboard, dashboard != nil)
			stored, _ := secure.Get(ctx, constant.StorageAdminToken)
			assert.Equal(t, tt.wantToken, stored)
		})
	}
}

func TestAdminApp_Login(t *testing.T) {
	tests := []struct {
		name      string
		apiURL    string
		req       model.AdminLoginRequest
		mockCall  func(c *backendmocks.AdminClient)
		wantCode  constant.ErrorType
		wantErr   bool
		wantToken string
	}{
		{
			name:   "success: email lowercased and dashboard hydrated",
			apiURL: "",
			req:    model.AdminLoginRequest{Email: " Owner@Clinic.TEST ", Password: "hunter22"},
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("Login", mock.Anything, apiURL, model.AdminLoginRequest{Email: "owner@clinic.test", Password: "hunter22"}).
					Return(&model.AdminAuthResponse{Token: "tok-1"}, nil).Once()
				expectHydrate(c, "tok-1")
			},
			wantToken: "tok-1",
		},
		{
			name:     "invalid email",
			req:      model.AdminLoginRequest{Email: "owner", Password: "x"},
			mockCall: func(c *backendmocks.AdminClient) {},
			wantErr:  true,
			wantCode: constant.ErrInvalidRequest,
		},
		{
			name: "token missing",
			req:  model.AdminLoginRequest{Email: "owner@clinic.test", Password: "x"},
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("Login", mock.Anything, apiURL, mock.Anything).Return(&model.AdminAuthResponse{}, nil).Once()
			},
			wantErr:  true,
			wantCode: constant.ErrTokenMissing,
		},
		{
			name: "server rejects",
			req:  model.AdminLoginRequest{Email: "owner@clinic.test", Password: "x"},
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("Login", mock.Anything, apiURL, mock.Anything).Return(nil, &cerr.APIError{Status: 401, Message: "wrong password"}).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			secure := securestore.NewMemoryStore()
			client := backendmocks.NewAdminClient(t)
			tt.mockCall(client)

			app := admin.NewAdminApp(testConfig(), client, secure)
			dashboard, err := app.Login(ctx, tt.apiURL, tt.req)

			stored, _ := secure.Get(ctx, constant.StorageAdminToken)
			assert.Equal(t, tt.wantToken, stored)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, customCode(t, err))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Clinic Berlin", dashboard.Settings.ClinicName)
			assert.Equal(t, "active", dashboard.Subscription.Status)
		})
	}
}

func TestAdminApp_RegisterSwitchesURL(t *testing.T) {
	ctx := context.Background()
	secure := securestore.NewMemoryStore()
	client := backendmocks.NewAdminClient(t)
	other := "https://other.clinic.test"
	client.On("Register", mock.Anything, other, model.AdminRegisterRequest{
		FullName: "Dr. Weber", ClinicName: "Clinic Berlin", Email: "owner@clinic.test", Password: "longenough",
	}).Return(&model.AdminAuthResponse{Token: "tok-2"}, nil).Once()
	client.On("Me", mock.Anything, other, "tok-2").Return(&model.MeResponse{}, nil).Once()
	client.On("ClinicSettings", mock.Anything, other, "tok-2").Return(&model.SettingsEnvelope{}, nil).Once()
	client.On("BillingStatus", mock.Anything, other, "tok-2").Return(&model.SubscriptionEnvelope{}, nil).Once()
	client.On("PublicConfig", mock.Anything, other).Return(&model.PublicConfig{}, nil).Once()

	app := admin.NewAdminApp(testConfig(), client, secure)
	_, err := app.Register(ctx, "other.clinic.test", model.AdminRegisterRequest{
		FullName: " Dr. Weber ", ClinicName: "Clinic Berlin", Email: "Owner@clinic.test", Password: "longenough",
	})
	require.NoError(t, err)

	stored, _ := secure.Get(ctx, constant.StorageAdminAPIURL)
	assert.Equal(t, other, stored)
}

func TestAdminApp_RegisterShortPassword(t *testing.T) {
	app := admin.NewAdminApp(testConfig(), backendmocks.NewAdminClient(t), securestore.NewMemoryStore())
	_, err := app.Register(context.Background(), "", model.AdminRegisterRequest{
		FullName: "Dr. Weber", ClinicName: "Clinic Berlin", Email: "owner@clinic.test", Password: "short",
	})
	assert.Equal(t, constant.ErrInvalidRequest, customCode(t, err))
}

func loggedIn(t *testing.T, client *backendmocks.AdminClient) admin.AdminApp {
	t.Helper()
	client.On("Login", mock.Anything, apiURL, mock.Anything).Return(&model.AdminAuthResponse{Token: "tok"}, nil).Once()
	expectHydrate(client, "tok")
	app := admin.NewAdminApp(testConfig(), client, securestore.NewMemoryStore())
	_, err := app.Login(context.Background(), "", model.AdminLoginRequest{Email: "owner@clinic.test", Password: "x"})
	require.NoError(t, err)
	return app
}

func TestAdminApp_SaveSettings(t *testing.T) {
	client := backendmocks.NewAdminClient(t)
	app := loggedIn(t, client)

	want := model.ClinicSettings{
		ClinicName:   "Clinic Berlin",
		Website:      "https://clinic.test",
		LogoURL:      "",
		BrandColor:   "#112233",
		DesignPreset: "clean",
		CalendlyURL:  "https://calendly.com/clinic-berlin",
	}
	client.On("SaveClinicSettings", mock.Anything, apiURL, "tok", want).Return(&model.SettingsEnvelope{}, nil).Once()

	saved, err := app.SaveSettings(context.Background(), model.ClinicSettings{
		ClinicName:  " Clinic Berlin ",
		Website:     "clinic.test/",
		BrandColor:  " #112233",
		CalendlyURL: "calendly.com/clinic-berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, want, *saved)

	url, err := app.CalendlyURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://calendly.com/clinic-berlin", url)
}

func TestAdminApp_StartCheckout(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(c *backendmocks.AdminClient)
		want     string
		wantCode constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("CreateCheckoutSession", mock.Anything, apiURL, "tok").Return(&model.CheckoutSessionResponse{CheckoutURL: "https://pay.test/s/1"}, nil).Once()
			},
			want: "https://pay.test/s/1",
		},
		{
			name: "missing url",
			mockCall: func(c *backendmocks.AdminClient) {
				c.On("CreateCheckoutSession", mock.Anything, apiURL, "tok").Return(&model.CheckoutSessionResponse{}, nil).Once()
			},
			wantCode: constant.ErrCheckoutURLMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewAdminClient(t)
			app := loggedIn(t, client)
			tt.mockCall(client)

			url, err := app.StartCheckout(context.Background())
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, customCode(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, url)
		})
	}
}

func TestAdminApp_CalendlyURL(t *testing.T) {
	t.Run("settings link preferred", func(t *testing.T) {
		app := loggedIn(t, backendmocks.NewAdminClient(t))
		url, err := app.CalendlyURL(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://calendly.com/clinic-berlin", url)
	})

	t.Run("not logged in", func(t *testing.T) {
		app := admin.NewAdminApp(testConfig(), backendmocks.NewAdminClient(t), securestore.NewMemoryStore())
		_, err := app.CalendlyURL(context.Background())
		assert.Equal(t, constant.ErrCalendlyMissing, customCode(t, err))
	})
}

func TestAdminApp_RequiresToken(t *testing.T) {
	ctx := context.Background()
	app := admin.NewAdminApp(testConfig(), backendmocks.NewAdminClient(t), securestore.NewMemoryStore())

	_, err := app.Hydrate(ctx)
	assert.Equal(t, constant.ErrUnauthorize, customCode(t, err))
	_, err = app.SaveSettings(ctx, model.ClinicSettings{})
	assert.Equal(t, constant.ErrUnauthorize, customCode(t, err))
	_, err = app.StartCheckout(ctx)
	assert.Equal(t, constant.ErrUnauthorize, customCode(t, err))
}

func TestAdminApp_LogoutSwallowsServerError(t *testing.T) {
	ctx := context.Background()
	client := backendmocks.NewAdminClient(t)
	app := loggedIn(t, client)
	client.On("Logout", mock.Anything, apiURL, "tok").Return(stderrors.New("network request failed")).Once()

	require.NoError(t, app.Logout(ctx))

	_, err := app.StartCheckout(ctx)
	assert.Equal(t, constant.ErrUnauthorize, customCode(t, err))
}

func TestAdminApp_LockedSecureStore(t *testing.T) {
	ctx := context.Background()
	locked := stderrors.New("keychain locked")
	secure := securemocks.NewStore(t)
	secure.On("Get", mock.Anything, constant.StorageAdminAPIURL).Return("", locked).Once()
	secure.On("Get", mock.Anything, constant.StorageAdminToken).Return("", locked).Once()
	secure.On("Set", mock.Anything, constant.StorageAdminAPIURL, "https://new.clinic.test").Return(locked).Once()

	app := admin.NewAdminApp(testConfig(), backendmocks.NewAdminClient(t), secure)

	dashboard, err := app.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Nil(t, dashboard)
	assert.Equal(t, apiURL, app.APIURL(ctx))
	assert.Equal(t, "https://new.clinic.test", app.SetAPIURL(ctx, "new.clinic.test"))
	assert.Equal(t, "https://new.clinic.test", app.APIURL(ctx))
}
