package otp

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/muhammadheryan/clinic-companion/application/endpoint"
	"github.com/muhammadheryan/clinic-companion/application/store"
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

// Connector finishes onboarding once a phone number is verified.
type Connector interface {
	ConnectIdentity(ctx context.Context, identity model.Identity) error
}

type OtpApp interface {
	Request(ctx context.Context, phone, clinicName string) (model.OtpSnapshot, error)
	Continue(ctx context.Context, phone, clinicName, code string) (model.OtpSnapshot, error)
	Verify(ctx context.Context, code string) (model.OtpSnapshot, error)
	Resend(ctx context.Context, phone, clinicName string) (model.OtpSnapshot, error)
	Countdown() int
	WatchCountdown(ctx context.Context) <-chan int
	Snapshot() model.OtpSnapshot
	Reset()
}

type Option func(*otpAppImpl)

func WithClock(now func() time.Time) Option {
	return func(a *otpAppImpl) { a.now = now }
}

func WithTick(d time.Duration) Option {
	return func(a *otpAppImpl) { a.tick = d }
}

func WithCooldownFallback(d time.Duration) Option {
	return func(a *otpAppImpl) {
		if d > 0 {
			a.cooldownFallback = d
		}
	}
}

type otpAppImpl struct {
	client    backend.MobileClient
	resolver  *endpoint.Resolver
	secure    securestore.Store
	state     *store.Store
	connector Connector

	now              func() time.Time
	tick             time.Duration
	cooldownFallback time.Duration

	mu                sync.Mutex
	status            constant.OtpState
	phone             string
	clinicName        string
	challenge         *model.OtpChallenge
	feedback          model.OtpFeedback
	attemptsRemaining *int
	cooldownUntil     time.Time
}

func NewOtpApp(client backend.MobileClient, resolver *endpoint.Resolver, secure securestore.Store, state *store.Store, connector Connector, opts ...Option) OtpApp {
	a := &otpAppImpl{
		client:           client,
		resolver:         resolver,
		secure:           secure,
		state:            state,
		connector:        connector,
		now:              time.Now,
		tick:             constant.OtpCountdownTick,
		cooldownFallback: constant.OtpCooldownFallback,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *otpAppImpl) Request(ctx context.Context, phone, clinicName string) (model.OtpSnapshot, error) {
	release, err := a.state.Begin(store.FlightOtp)
	if err != nil {
		return a.Snapshot(), err
	}
	defer release()

	return a.request(ctx, phone, clinicName, false)
}

// Continue requests a code when none is outstanding for phone, and verifies code otherwise.
func (a *otpAppImpl) Continue(ctx context.Context, phone, clinicName, code string) (model.OtpSnapshot, error) {
	release, err := a.state.Begin(store.FlightOtp)
	if err != nil {
		return a.Snapshot(), err
	}
	defer release()

	normalizedPhone := normalize.Phone(phone)
	a.mu.Lock()
	needsRequest := a.challenge == nil || a.challenge.RequestedPhone != normalizedPhone
	a.mu.Unlock()

	if needsRequest {
		return a.request(ctx, phone, clinicName, false)
	}
	a.mu.Lock()
	a.phone = normalizedPhone
	if name := strings.TrimSpace(clinicName); name != "" {
		a.clinicName = name
	}
	a.mu.Unlock()
	return a.verify(ctx, code)
}

func (a *otpAppImpl) Verify(ctx context.Context, code string) (model.OtpSnapshot, error) {
	release, err := a.state.Begin(store.FlightOtp)
	if err != nil {
		return a.Snapshot(), err
	}
	defer release()

	return a.verify(ctx, code)
}

// Resend is refused without a network call while the cooldown runs.
func (a *otpAppImpl) Resend(ctx context.Context, phone, clinicName string) (model.OtpSnapshot, error) {
	release, err := a.state.Begin(store.FlightOtp)
	if err != nil {
		return a.Snapshot(), err
	}
	defer release()

	if remaining := a.Countdown(); remaining > 0 {
		a.setFeedback(fmt.Sprintf("Please wait %ds before requesting a new code.", remaining), constant.FeedbackWarning)
		return a.Snapshot(), errors.SetCustomError(constant.ErrOtpCooldown)
	}

	a.mu.Lock()
	if strings.TrimSpace(phone) == "" {
		phone = a.phone
	}
	if strings.TrimSpace(clinicName) == "" {
		clinicName = a.clinicName
	}
	a.mu.Unlock()

	if normalize.Phone(phone) == "" || a.resolveClinic(clinicName) == "" {
		a.setFeedback("Clinic or phone number missing.", constant.FeedbackWarning)
		return a.Snapshot(), errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return a.request(ctx, phone, clinicName, true)
}

func (a *otpAppImpl) request(ctx context.Context, phone, clinicName string, resend bool) (model.OtpSnapshot, error) {
	normalizedPhone := normalize.Phone(phone)
	if validatorx.CountDigits(normalizedPhone) < constant.OtpMinPhoneDigits {
		a.setFeedback("Please enter a valid phone number.", constant.FeedbackError)
		return a.Snapshot(), errors.SetCustomError(constant.ErrInvalidPhone)
	}
	clinic := a.resolveClinic(clinicName)
	if clinic == "" {
		a.setFeedback("Please select a clinic first.", constant.FeedbackWarning)
		return a.Snapshot(), errors.SetCustomError(constant.ErrClinicMissing)
	}

	req := model.OtpRequest{ClinicName: clinic, Phone: normalizedPhone}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("[OtpApp.request] invalid request", zap.String("error", err.Error()))
		a.setFeedback("Please enter a valid phone number.", constant.FeedbackError)
		return a.Snapshot(), errors.SetCustomError(constant.ErrInvalidPhone)
	}

	a.mu.Lock()
	a.phone = normalizedPhone
	a.clinicName = clinic
	if resend {
		a.feedback = model.OtpFeedback{Message: "Resending code ...", Type: constant.FeedbackInfo}
	} else {
		a.feedback = model.OtpFeedback{Message: "Requesting code ...", Type: constant.FeedbackInfo}
	}
	a.mu.Unlock()

	res, err := endpoint.Run(ctx, a.resolver, a.resolver.Configured(), func(ctx context.Context, baseURL string) (*model.OtpResponse, error) {
		if resend {
			return a.client.ResendOtp(ctx, baseURL, req)
		}
		return a.client.RequestOtp(ctx, baseURL, req)
	})
	if err != nil {
		logger.Error("[OtpApp.request] otp request failed", zap.Bool("resend", resend), zap.String("error", err.Error()))
		a.applyError(err, "The verification code could not be requested.")
		return a.Snapshot(), err
	}

	resp := res.Value
	masked := strings.TrimSpace(resp.MaskedPhone)
	if masked == "" {
		masked = normalizedPhone
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.challenge = &model.OtpChallenge{
		RequestID:      strings.TrimSpace(resp.RequestID),
		RequestedPhone: normalizedPhone,
		MaskedPhone:    masked,
		ExpiresAt:      strings.TrimSpace(resp.ExpiresAt),
	}
	a.status = constant.OtpStateRequested
	a.attemptsRemaining = nil

	if resp.ResendAfterSeconds > 0 && !math.IsInf(resp.ResendAfterSeconds, 0) {
		seconds := math.Min(math.Floor(resp.ResendAfterSeconds), constant.OtpMaxCooldown.Seconds())
		a.startCooldownLocked(time.Duration(seconds) * time.Second)
	} else {
		a.startCooldownLocked(a.cooldownFallback)
	}

	if debug := strings.TrimSpace(resp.DebugCode); debug != "" {
		a.feedback = model.OtpFeedback{Message: fmt.Sprintf("Test mode: code %s (local development only).", debug), Type: constant.FeedbackInfo}
	} else if resend {
		a.feedback = model.OtpFeedback{Message: fmt.Sprintf("New code sent to %s.", masked), Type: constant.FeedbackSuccess}
	} else {
		a.feedback = model.OtpFeedback{Message: fmt.Sprintf("Code sent to %s.", masked), Type: constant.FeedbackSuccess}
	}
	return a.snapshotLocked(), nil
}

func (a *otpAppImpl) verify(ctx context.Context, code string) (model.OtpSnapshot, error) {
	a.mu.Lock()
	challenge := a.challenge
	phone := a.phone
	clinic := a.clinicName
	a.mu.Unlock()

	if challenge == nil || challenge.RequestID == "" {
		a.setFeedback("No active verification request. Please request a new code.", constant.FeedbackWarning)
		return a.Snapshot(), errors.SetCustomError(constant.ErrOtpNotRequested)
	}
	if phone != challenge.RequestedPhone {
		a.setFeedback("The phone number changed. Please request a new code.", constant.FeedbackWarning)
		return a.Snapshot(), errors.SetCustomError(constant.ErrOtpNotRequested)
	}

	req := model.OtpVerifyRequest{
		ClinicName: a.resolveClinic(clinic),
		Phone:      phone,
		RequestID:  challenge.RequestID,
		Code:       strings.TrimSpace(code),
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		a.setFeedback("Please enter the SMS code.", constant.FeedbackWarning)
		return a.Snapshot(), errors.SetCustomError(constant.ErrInvalidOtpCode)
	}

	a.mu.Lock()
	a.status = constant.OtpStateVerifying
	a.feedback = model.OtpFeedback{Message: "Confirming code ...", Type: constant.FeedbackInfo}
	a.mu.Unlock()

	res, err := endpoint.Run(ctx, a.resolver, a.resolver.Configured(), func(ctx context.Context, baseURL string) (*model.OtpVerifyResponse, error) {
		return a.client.VerifyOtp(ctx, baseURL, req)
	})
	if err != nil {
		logger.Error("[OtpApp.verify] otp verify failed", zap.String("error", err.Error()))
		a.applyError(err, "The verification code could not be confirmed.")
		return a.Snapshot(), err
	}

	email := normalize.Email(res.Value.MemberEmail)
	if !validatorx.IsMemberEmail(email) {
		a.mu.Lock()
		a.status = constant.OtpStateFailed
		a.feedback = model.OtpFeedback{Message: "Code accepted, but the member account could not be derived.", Type: constant.FeedbackError}
		a.mu.Unlock()
		return a.Snapshot(), errors.SetCustomError(constant.ErrIdentityMissing)
	}
	name := strings.TrimSpace(res.Value.MemberName)
	if name == "" {
		name = a.state.Snapshot().MemberName
	}

	guest := false
	a.state.Dispatch(store.IdentitySet{Phone: &phone, GuestMode: &guest})
	_ = securestore.WriteString(ctx, a.secure, constant.StoragePatientPhone, phone)
	_ = securestore.WriteString(ctx, a.secure, constant.StoragePatientGuestMode, "0")

	a.mu.Lock()
	a.status = constant.OtpStateVerified
	a.challenge = nil
	a.attemptsRemaining = nil
	a.cooldownUntil = time.Time{}
	a.feedback = model.OtpFeedback{Message: "Phone number confirmed. Connecting clinic ...", Type: constant.FeedbackSuccess}
	a.mu.Unlock()

	if a.connector != nil {
		if err := a.connector.ConnectIdentity(ctx, model.Identity{Phone: phone, MemberEmail: email, MemberName: name}); err != nil {
			logger.Error("[OtpApp.verify] connect after verification", zap.String("error", err.Error()))
			a.setFeedback("Backend connection failed. Please try again later.", constant.FeedbackError)
			return a.Snapshot(), err
		}
	}
	return a.Snapshot(), nil
}

// applyError maps a failed request onto flow state and patient feedback.
func (a *otpAppImpl) applyError(err error, fallback string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var apiErr *errors.APIError
	if !stderrors.As(err, &apiErr) {
		a.status = constant.OtpStateFailed
		msg := strings.TrimSpace(err.Error())
		if errors.Is(err, constant.ErrBackendMissing) {
			a.feedback = model.OtpFeedback{Message: "Backend not connected. Please try again later.", Type: constant.FeedbackWarning}
			return
		}
		if msg == "" {
			msg = fallback
		}
		a.feedback = model.OtpFeedback{Message: msg, Type: constant.FeedbackError}
		return
	}

	switch strings.ToUpper(strings.TrimSpace(apiErr.ErrorCode)) {
	case constant.OtpErrCooldown:
		a.status = constant.OtpStateCooldown
		label := ""
		if apiErr.RetryAfterSeconds > 0 {
			a.startCooldownLocked(time.Duration(apiErr.RetryAfterSeconds) * time.Second)
			label = fmt.Sprintf(" %ds", apiErr.RetryAfterSeconds)
		}
		a.feedback = model.OtpFeedback{Message: fmt.Sprintf("Please wait%s before requesting a new code.", label), Type: constant.FeedbackWarning}
	case constant.OtpErrInvalid:
		a.status = constant.OtpStateInvalid
		a.attemptsRemaining = nil
		msg := "Invalid code."
		if n := apiErr.AttemptsRemaining; n != nil && *n >= 0 {
			remaining := *n
			a.attemptsRemaining = &remaining
			switch remaining {
			case 0:
				msg = "Invalid code. Please request a new code."
			case 1:
				msg = "Invalid code. 1 attempt left."
			default:
				msg = fmt.Sprintf("Invalid code. %d attempts left.", remaining)
			}
		}
		a.feedback = model.OtpFeedback{Message: msg, Type: constant.FeedbackError}
	case constant.OtpErrExpired:
		a.status = constant.OtpStateExpired
		a.feedback = model.OtpFeedback{Message: "Code expired. Please use \"resend code\".", Type: constant.FeedbackWarning}
	case constant.OtpErrAttemptsExceeded:
		a.status = constant.OtpStateAttemptsExceeded
		a.feedback = model.OtpFeedback{Message: "Too many failed attempts. Please use \"resend code\".", Type: constant.FeedbackError}
	case constant.OtpErrRequestNotFound:
		a.status = constant.OtpStateRequestNotFound
		a.feedback = model.OtpFeedback{Message: "No active verification request found. Please send a new code.", Type: constant.FeedbackWarning}
	default:
		a.status = constant.OtpStateFailed
		msg := strings.TrimSpace(apiErr.Message)
		if msg == "" {
			msg = fallback
		}
		a.feedback = model.OtpFeedback{Message: msg, Type: constant.FeedbackError}
	}
}

func (a *otpAppImpl) resolveClinic(clinicName string) string {
	if name := strings.TrimSpace(clinicName); name != "" {
		return name
	}
	snap := a.state.Snapshot()
	return strings.TrimSpace(snap.ClinicName())
}

func (a *otpAppImpl) startCooldownLocked(d time.Duration) {
	d = min(d, constant.OtpMaxCooldown)
	if d <= 0 {
		a.cooldownUntil = time.Time{}
	} else {
		a.cooldownUntil = a.now().Add(d)
	}
	if a.challenge != nil {
		a.challenge.CooldownUntil = a.cooldownUntil
	}
}

func (a *otpAppImpl) setFeedback(message string, kind constant.FeedbackType) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.feedback = model.OtpFeedback{Message: strings.TrimSpace(message), Type: kind}
}

// Countdown is the number of whole seconds left before a resend is allowed, rounded up.
func (a *otpAppImpl) Countdown() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.countdownLocked()
}

func (a *otpAppImpl) countdownLocked() int {
	if a.cooldownUntil.IsZero() {
		return 0
	}
	remaining := a.cooldownUntil.Sub(a.now())
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}

// WatchCountdown emits the countdown now and on every tick until it reaches zero or ctx ends.
func (a *otpAppImpl) WatchCountdown(ctx context.Context) <-chan int {
	out := make(chan int, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(a.tick)
		defer ticker.Stop()

		last := -1
		for {
			current := a.Countdown()
			if current != last {
				select {
				case out <- current:
				case <-ctx.Done():
					return
				}
				last = current
			}
			if current == 0 {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return out
}

func (a *otpAppImpl) Snapshot() model.OtpSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *otpAppImpl) snapshotLocked() model.OtpSnapshot {
	snap := model.OtpSnapshot{
		State:     a.status,
		Feedback:  a.feedback,
		Countdown: a.countdownLocked(),
	}
	if a.challenge != nil {
		c := *a.challenge
		snap.Challenge = &c
	}
	if a.attemptsRemaining != nil {
		n := *a.attemptsRemaining
		snap.AttemptsRemaining = &n
	}
	return snap
}

func (a *otpAppImpl) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = constant.OtpStateIdle
	a.challenge = nil
	a.attemptsRemaining = nil
	a.cooldownUntil = time.Time{}
	a.feedback = model.OtpFeedback{}
}
