package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/muhammadheryan/clinic-companion/application/endpoint"
	"github.com/muhammadheryan/clinic-companion/application/events"
	"github.com/muhammadheryan/clinic-companion/application/membership"
	"github.com/muhammadheryan/clinic-companion/application/store"
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
)

const (
	searchLimit      = 12
	codeSearchLimit  = 8
	healthStatusOK   = "ok"
	errHealthInvalid = "health check response invalid"
)

type SessionApp interface {
	Bootstrap(ctx context.Context) (*model.BootstrapResult, error)
	LoadClinicBundle(ctx context.Context, baseURL, clinicName, memberEmail string) error
	Connect(ctx context.Context, opts model.ConnectOptions) (*model.ConnectResult, error)
	ConnectIdentity(ctx context.Context, identity model.Identity) error
	SelectClinic(ctx context.Context, name string) error
	SearchClinics(ctx context.Context, query string) (*model.ClinicSearchResponse, error)
	ResolveCode(ctx context.Context, code string) (*model.ResolveCodeResult, error)
	UpdateProfile(ctx context.Context, req model.ProfileUpdate) (*model.Session, error)
	ContinueAsGuest(ctx context.Context) (*model.ConnectResult, error)
	ContinueOfflineDemo(ctx context.Context) error
	Disconnect(ctx context.Context) (*model.BootstrapResult, error)
	HealthCheck(ctx context.Context) (*model.HealthResult, error)
	Track(ctx context.Context, eventName string, extras events.Extras) bool
	Session(ctx context.Context) model.Session
	Overview(ctx context.Context) model.Overview
}

type SessionAppImpl struct {
	config     *config.Config
	client     backend.MobileClient
	resolver   *endpoint.Resolver
	secure     securestore.Store
	state      *store.Store
	membership membership.MembershipApp
	tracker    *events.Tracker
}

func NewSessionApp(config *config.Config, client backend.MobileClient, resolver *endpoint.Resolver, secure securestore.Store,
	state *store.Store, membership membership.MembershipApp, tracker *events.Tracker) SessionApp {
	return &SessionAppImpl{
		config:     config,
		client:     client,
		resolver:   resolver,
		secure:     secure,
		state:      state,
		membership: membership,
		tracker:    tracker,
	}
}

// Bootstrap restores the persisted session and tries to load the stored clinic. A failed
// load is not an error; the patient lands on the clinic step with a described message.
func (s *SessionAppImpl) Bootstrap(ctx context.Context) (*model.BootstrapResult, error) {
	read := func(key string) string {
		return strings.TrimSpace(securestore.ReadString(ctx, s.secure, key))
	}

	s.resolver.Load(ctx, s.config.Backend.DefaultBaseURL)
	storedClinic := read(constant.StorageClinicName)
	onboardingDone := read(constant.StorageOnboardingDone) == constant.FlagOn
	name := read(constant.StorageSettingsName)
	email := normalize.Email(read(constant.StorageSettingsEmail))
	phone := normalize.Phone(read(constant.StoragePatientPhone))
	guest := read(constant.StoragePatientGuestMode) == constant.FlagOn

	initialBaseURL := s.resolver.Primary()
	initialClinic := storedClinic
	if initialClinic == "" {
		initialClinic = strings.TrimSpace(s.config.Backend.DefaultClinicName)
	}

	identity := store.IdentitySet{Phone: &phone}
	if name != "" {
		identity.MemberName = &name
	}
	if email != "" {
		identity.MemberEmail = &email
	}
	if guest {
		identity.GuestMode = &guest
	}
	actions := []store.Action{identity, store.OnboardingCompleted{Done: onboardingDone}}
	if initialBaseURL != "" {
		actions = append(actions, store.BaseURLSet{BaseURL: initialBaseURL})
	}
	if initialClinic != "" {
		actions = append(actions, store.ClinicSelected{Name: initialClinic})
	}
	s.state.Dispatch(actions...)

	result := &model.BootstrapResult{ShowOnboarding: !onboardingDone, Step: constant.OnboardingClinic}
	if initialBaseURL != "" && initialClinic != "" {
		err := s.LoadClinicBundle(ctx, s.resolver.Configured(), initialClinic, "")
		if err == nil {
			result.Connected = true
			s.tracker.Track(ctx, "app_open", events.Extras{})
			return result, nil
		}
		result.Message = endpoint.DescribeConnectionError(initialBaseURL, err)
		logger.Warn("[Bootstrap] stored clinic could not be loaded", zap.String("clinic", initialClinic), zap.String("error", err.Error()))
	}
	return result, nil
}

// LoadClinicBundle fetches the clinic bundle and makes it the session catalog. The
// membership status is refreshed afterwards.
func (s *SessionAppImpl) LoadClinicBundle(ctx context.Context, baseURL, clinicName, memberEmail string) error {
	hint := normalize.URL(baseURL)
	if hint == "" {
		hint = s.state.Snapshot().BaseURL
	}
	clinic := strings.TrimSpace(clinicName)
	if clinic == "" {
		clinic = s.state.Snapshot().ClinicLookupName
	}
	if len(s.resolver.Candidates(hint)) == 0 {
		s.state.Dispatch(store.ConnectionChanged{Connected: false})
		return errors.SetCustomError(constant.ErrBackendMissing)
	}

	res, err := endpoint.Run(ctx, s.resolver, hint, func(ctx context.Context, candidate string) (*model.ClinicBundle, error) {
		return s.client.FetchClinicBundle(ctx, candidate, clinic)
	})
	if err != nil {
		logger.Error("[LoadClinicBundle] err client.FetchClinicBundle", zap.String("clinic", clinic), zap.String("error", err.Error()))
		s.state.Dispatch(store.ConnectionChanged{Connected: false})
		return err
	}

	bundle := absolutizeMedia(res.BaseURL, *res.Value)
	actions := []store.Action{store.BundleLoaded{BaseURL: res.BaseURL, ClinicName: clinic, Bundle: bundle}}
	if email := normalize.Email(memberEmail); email != "" {
		actions = append(actions, store.IdentitySet{MemberEmail: &email})
	}
	s.state.Dispatch(actions...)

	if s.membership != nil {
		// Sync clears the status itself on failure.
		_, _ = s.membership.Sync(ctx)
	}
	return nil
}

func absolutizeMedia(baseURL string, bundle model.ClinicBundle) model.ClinicBundle {
	treatments := make([]model.Treatment, 0, len(bundle.Catalog.Treatments))
	for _, t := range bundle.Catalog.Treatments {
		t.ImageURL = normalize.MediaURL(baseURL, t.ImageURL)
		gallery := make([]string, 0, len(t.GalleryURLs))
		for _, raw := range t.GalleryURLs {
			if u := normalize.MediaURL(baseURL, raw); u != "" {
				gallery = append(gallery, u)
			}
		}
		t.GalleryURLs = gallery
		treatments = append(treatments, t)
	}
	bundle.Catalog.Treatments = treatments
	return bundle
}

func (s *SessionAppImpl) Connect(ctx context.Context, opts model.ConnectOptions) (*model.ConnectResult, error) {
	release, err := s.state.Begin(store.FlightConnect)
	if err != nil {
		return nil, err
	}
	defer release()

	snap := s.state.Snapshot()
	baseURL := normalize.URL(opts.BaseURL)
	if baseURL == "" {
		baseURL = snap.BaseURL
	}
	if baseURL == "" {
		baseURL = s.resolver.Primary()
	}
	if baseURL == "" {
		s.state.Dispatch(store.ConnectionChanged{Connected: false})
		return nil, errors.SetCustomError(constant.ErrBackendMissing)
	}
	clinic := strings.TrimSpace(opts.ClinicName)
	if clinic == "" {
		clinic = snap.ClinicLookupName
	}
	if clinic == "" {
		return nil, errors.SetCustomError(constant.ErrClinicMissing)
	}

	email := snap.MemberEmail
	if opts.MemberEmail != nil {
		email = *opts.MemberEmail
	}
	email = normalize.Email(email)
	name := snap.MemberName
	if opts.MemberName != nil {
		name = *opts.MemberName
	}
	name = strings.TrimSpace(name)

	// A new URL is configured first so a fallback win below is remembered against it.
	if baseURL != s.resolver.Configured() && baseURL != s.resolver.Discovered() {
		s.resolver.Configure(ctx, baseURL)
	}
	if err := s.LoadClinicBundle(ctx, baseURL, clinic, email); err != nil {
		return nil, &errors.ConnectionError{
			BaseURL: baseURL,
			Message: endpoint.DescribeConnectionError(baseURL, err),
			Err:     err,
		}
	}

	_ = securestore.WriteString(ctx, s.secure, constant.StorageClinicName, clinic)

	var identity store.IdentitySet
	if name != "" {
		identity.MemberName = &name
		_ = securestore.WriteString(ctx, s.secure, constant.StorageSettingsName, name)
	}
	if email != "" {
		identity.MemberEmail = &email
		_ = securestore.WriteString(ctx, s.secure, constant.StorageSettingsEmail, email)
	}
	actions := []store.Action{identity}
	if !opts.SkipOnboardingDone {
		_ = securestore.WriteString(ctx, s.secure, constant.StorageOnboardingDone, constant.FlagOn)
		actions = append(actions, store.OnboardingCompleted{Done: true})
	}
	next := s.state.Dispatch(actions...)

	return &model.ConnectResult{
		BaseURL: next.BaseURL,
		Message: fmt.Sprintf("Connection OK: %s", next.BaseURL),
	}, nil
}

// ConnectIdentity connects with the member derived from a verified phone number.
func (s *SessionAppImpl) ConnectIdentity(ctx context.Context, identity model.Identity) error {
	email := identity.MemberEmail
	name := identity.MemberName
	_, err := s.Connect(ctx, model.ConnectOptions{MemberEmail: &email, MemberName: &name})
	return err
}

func (s *SessionAppImpl) SelectClinic(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.SetCustomError(constant.ErrClinicMissing)
	}
	s.state.Dispatch(store.ClinicSelected{Name: name})
	return nil
}

func (s *SessionAppImpl) hint() string {
	if base := s.state.Snapshot().BaseURL; base != "" {
		return base
	}
	return s.resolver.Configured()
}

// SearchClinics looks up clinics by name. An exact, case-insensitive match becomes the
// selected clinic.
func (s *SessionAppImpl) SearchClinics(ctx context.Context, query string) (*model.ClinicSearchResponse, error) {
	query = strings.TrimSpace(query)
	hint := s.hint()
	res, err := endpoint.Run(ctx, s.resolver, hint, func(ctx context.Context, candidate string) (*model.ClinicSearchResponse, error) {
		return s.client.SearchClinics(ctx, candidate, query, searchLimit)
	})
	if err != nil {
		logger.Error("[SearchClinics] err client.SearchClinics", zap.String("query", query), zap.String("error", err.Error()))
		return nil, s.connectionError(hint, err)
	}

	resp := res.Value
	for _, c := range resp.Clinics {
		name := strings.TrimSpace(c.Name)
		if name != "" && strings.EqualFold(name, query) {
			s.state.Dispatch(store.ClinicSelected{Name: name})
			break
		}
	}
	return resp, nil
}

// ResolveCode turns a QR payload or referral code into a selected clinic. Server and
// search failures fall back to the locally parsed name.
func (s *SessionAppImpl) ResolveCode(ctx context.Context, code string) (*model.ResolveCodeResult, error) {
	raw := strings.TrimSpace(code)
	if raw == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	clinicName := normalize.ClinicNameFromCode(raw)
	hint := s.hint()
	res, err := endpoint.Run(ctx, s.resolver, hint, func(ctx context.Context, candidate string) (*model.ResolveCodeResponse, error) {
		return s.client.ResolveClinicCode(ctx, candidate, model.ResolveCodeRequest{Code: raw})
	})
	if err != nil {
		logger.Info("[ResolveCode] server resolve failed, using parsed code", zap.String("error", err.Error()))
	} else {
		resolved := strings.TrimSpace(res.Value.ResolvedClinicName)
		if resolved == "" {
			resolved = strings.TrimSpace(res.Value.Clinic.Name)
		}
		if resolved != "" {
			clinicName = resolved
		}
	}
	if clinicName == "" {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	s.state.Dispatch(store.ClinicSelected{Name: clinicName})

	result := &model.ResolveCodeResult{ClinicName: clinicName, Step: constant.OnboardingAccess}
	search, err := endpoint.Run(ctx, s.resolver, hint, func(ctx context.Context, candidate string) (*model.ClinicSearchResponse, error) {
		return s.client.SearchClinics(ctx, candidate, clinicName, codeSearchLimit)
	})
	if err != nil {
		logger.Info("[ResolveCode] clinic search failed", zap.String("error", err.Error()))
		return result, nil
	}
	result.Clinics = search.Value.Clinics
	if len(result.Clinics) > 0 {
		if first := strings.TrimSpace(result.Clinics[0].Name); first != "" {
			result.ClinicName = first
			s.state.Dispatch(store.ClinicSelected{Name: first})
		}
	}
	return result, nil
}

// UpdateProfile stores the member name and email and refreshes the membership for them.
func (s *SessionAppImpl) UpdateProfile(ctx context.Context, req model.ProfileUpdate) (*model.Session, error) {
	req.MemberName = strings.TrimSpace(req.MemberName)
	req.MemberEmail = normalize.Email(req.MemberEmail)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrEmailMissing)
	}

	s.state.Dispatch(store.IdentitySet{MemberName: &req.MemberName, MemberEmail: &req.MemberEmail})
	_ = securestore.WriteString(ctx, s.secure, constant.StorageSettingsName, req.MemberName)
	_ = securestore.WriteString(ctx, s.secure, constant.StorageSettingsEmail, req.MemberEmail)

	if s.membership != nil && s.state.Snapshot().Connected {
		_, _ = s.membership.Sync(ctx)
	}
	session := s.Session(ctx)
	return &session, nil
}

func (s *SessionAppImpl) ContinueAsGuest(ctx context.Context) (*model.ConnectResult, error) {
	guest := true
	empty := ""
	s.state.Dispatch(store.IdentitySet{Phone: &empty, GuestMode: &guest})
	_ = securestore.WriteString(ctx, s.secure, constant.StoragePatientPhone, "")
	_ = securestore.WriteString(ctx, s.secure, constant.StoragePatientGuestMode, constant.FlagOn)

	return s.Connect(ctx, model.ConnectOptions{MemberEmail: &empty})
}

func (s *SessionAppImpl) ContinueOfflineDemo(ctx context.Context) error {
	guest := true
	s.state.Dispatch(store.IdentitySet{GuestMode: &guest}, store.OnboardingCompleted{Done: true})
	if err := securestore.WriteString(ctx, s.secure, constant.StorageOnboardingDone, constant.FlagOn); err != nil {
		return err
	}
	return securestore.WriteString(ctx, s.secure, constant.StoragePatientGuestMode, constant.FlagOn)
}

// Disconnect forgets the clinic and the patient and returns to the clinic step. The
// catalog and base URL are kept.
func (s *SessionAppImpl) Disconnect(ctx context.Context) (*model.BootstrapResult, error) {
	s.state.Dispatch(store.SessionDisconnected{})
	for _, key := range []string{
		constant.StorageClinicName,
		constant.StoragePatientPhone,
		constant.StoragePatientGuestMode,
		constant.StorageOnboardingDone,
	} {
		if err := securestore.WriteString(ctx, s.secure, key, ""); err != nil {
			return nil, err
		}
	}
	return &model.BootstrapResult{ShowOnboarding: true, Step: constant.OnboardingClinic}, nil
}

func (s *SessionAppImpl) HealthCheck(ctx context.Context) (*model.HealthResult, error) {
	hint := s.hint()
	res, err := endpoint.Run(ctx, s.resolver, hint, func(ctx context.Context, candidate string) (*model.HealthResponse, error) {
		resp, err := s.client.Health(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if resp.Status != healthStatusOK {
			return nil, stderrors.New(errHealthInvalid)
		}
		return resp, nil
	})
	if err != nil {
		logger.Error("[HealthCheck] err client.Health", zap.String("base_url", hint), zap.String("error", err.Error()))
		return nil, s.connectionError(hint, err)
	}
	return &model.HealthResult{
		BaseURL: res.BaseURL,
		Message: fmt.Sprintf("Health check OK: %s", res.BaseURL),
	}, nil
}

func (s *SessionAppImpl) connectionError(baseURL string, err error) error {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		return err
	}
	return &errors.ConnectionError{
		BaseURL: baseURL,
		Message: endpoint.DescribeConnectionError(baseURL, err),
		Err:     err,
	}
}

func (s *SessionAppImpl) Track(ctx context.Context, eventName string, extras events.Extras) bool {
	return s.tracker.Track(ctx, strings.TrimSpace(eventName), extras)
}

func (s *SessionAppImpl) Session(ctx context.Context) model.Session {
	snap := s.state.Snapshot()
	return model.Session{
		BaseURL:        snap.BaseURL,
		ClinicName:     snap.ClinicName(),
		MemberEmail:    snap.MemberEmail,
		MemberName:     snap.MemberName,
		Phone:          snap.Phone,
		GuestMode:      snap.GuestMode,
		OnboardingDone: snap.OnboardingDone,
	}
}

func (s *SessionAppImpl) Overview(ctx context.Context) model.Overview {
	snap := s.state.Snapshot()
	return model.Overview{
		Session:             s.Session(ctx),
		Connected:           snap.Connected,
		Clinic:              snap.Clinic,
		Catalog:             snap.Catalog,
		ActiveMembership:    snap.ActiveMembership,
		MembershipStatus:    snap.MembershipStatus,
		HasActiveMembership: snap.HasActiveMembership(),
		CartCount:           len(snap.Cart),
		CartTotalCents:      snap.TotalCartCents(),
	}
}
