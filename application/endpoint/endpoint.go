// Package endpoint decides which backend base URL a request goes to and walks the
// fallback candidates when the preferred one is unreachable.
package endpoint

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/repository/securestore"
	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"github.com/muhammadheryan/clinic-companion/utils/normalize"
	"go.uber.org/zap"
)

// Resolver remembers two URLs: the one the user configured and the one a fallback
// discovered to work. A discovery never overwrites the configured URL.
type Resolver struct {
	mu         sync.RWMutex
	store      securestore.Store
	devURL     string
	configured string
	discovered string
}

func NewResolver(store securestore.Store, devURL string) *Resolver {
	return &Resolver{store: store, devURL: normalize.URL(devURL)}
}

// Load restores both URLs from the secure store. A discovered URL without a configured
// one is kept; it still came from a successful request.
func (r *Resolver) Load(ctx context.Context, fallback string) {
	configured := normalize.URL(securestore.ReadString(ctx, r.store, constant.StorageBaseURL))
	if configured == "" {
		configured = normalize.URL(fallback)
	}
	discovered := normalize.URL(securestore.ReadString(ctx, r.store, constant.StorageDiscoveredBaseURL))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.configured = configured
	r.discovered = discovered
}

// Configure records a user-chosen URL and forgets any previous discovery.
func (r *Resolver) Configure(ctx context.Context, baseURL string) string {
	normalized := normalize.URL(baseURL)

	r.mu.Lock()
	r.configured = normalized
	r.discovered = ""
	r.mu.Unlock()

	_ = securestore.WriteString(ctx, r.store, constant.StorageBaseURL, normalized)
	_ = securestore.WriteString(ctx, r.store, constant.StorageDiscoveredBaseURL, "")
	return normalized
}

func (r *Resolver) Configured() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configured
}

func (r *Resolver) Discovered() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.discovered
}

func (r *Resolver) DevURL() string {
	return r.devURL
}

// Primary is the URL requests should try first.
func (r *Resolver) Primary() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	switch {
	case r.discovered != "":
		return r.discovered
	case r.configured != "":
		return r.configured
	default:
		return r.devURL
	}
}

// Candidates lists the URLs to try for hint, in order, without duplicates. The discovered
// URL leads only when hint is the configured URL, since it stands in for that one.
func (r *Resolver) Candidates(hint string) []string {
	preferred := normalize.URL(hint)

	r.mu.RLock()
	discovered, configured := r.discovered, r.configured
	r.mu.RUnlock()

	var out []string
	add := func(u string) {
		if u == "" {
			return
		}
		for _, existing := range out {
			if existing == u {
				return
			}
		}
		out = append(out, u)
	}
	if discovered != "" && (preferred == "" || preferred == configured) {
		add(discovered)
	}
	add(preferred)
	add(r.devURL)
	return out
}

// remember records where a request succeeded. Only a fallback win becomes the discovered
// URL; a win on the configured URL clears it.
func (r *Resolver) remember(ctx context.Context, winner string, fallback bool) {
	r.mu.Lock()
	current := r.discovered
	configured := r.configured
	var next string
	switch {
	case winner == current:
		r.mu.Unlock()
		return
	case winner == configured:
		next = ""
	case fallback:
		next = winner
	default:
		r.mu.Unlock()
		return
	}
	r.discovered = next
	r.mu.Unlock()

	if next != "" {
		logger.Info("[Resolver] using discovered backend", zap.String("configured", configured), zap.String("discovered", next))
	}
	_ = securestore.WriteString(ctx, r.store, constant.StorageDiscoveredBaseURL, next)
}

// Result carries the value together with the base URL that produced it.
type Result[T any] struct {
	Value        T
	BaseURL      string
	UsedFallback bool
}

// Run calls runner for each candidate until one succeeds. Only a retryable failure moves
// on to the next candidate; any other error is returned as is.
func Run[T any](ctx context.Context, r *Resolver, hint string, runner func(ctx context.Context, baseURL string) (T, error)) (Result[T], error) {
	candidates := r.Candidates(hint)
	if len(candidates) == 0 {
		return Result[T]{}, errors.SetCustomError(constant.ErrBackendMissing)
	}

	var lastErr error
	for idx, candidate := range candidates {
		value, err := runner(ctx, candidate)
		if err == nil {
			r.remember(ctx, candidate, idx > 0)
			return Result[T]{Value: value, BaseURL: candidate, UsedFallback: idx > 0}, nil
		}
		lastErr = err
		if idx == len(candidates)-1 || !backend.IsRetryable(err) || ctx.Err() != nil {
			return Result[T]{}, err
		}
		logger.Warn("[Run] backend candidate unreachable", zap.String("base_url", candidate), zap.String("error", err.Error()))
	}
	return Result[T]{}, lastErr
}

// DescribeConnectionError turns a failed connection attempt into text for the patient.
func DescribeConnectionError(baseURL string, err error) string {
	normalized := normalize.URL(baseURL)
	shown := normalized
	if shown == "" {
		shown = "(empty)"
	}
	var msg string
	if err != nil {
		msg = strings.TrimSpace(err.Error())
	}
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(normalized, ":"+strconv.Itoa(constant.MistypedDevPort)):
		return strings.Join([]string{
			"Connection failed.",
			"URL: " + normalized,
			fmt.Sprintf("Port hint: use %d instead of %d.", constant.DevBackendPort, constant.MistypedDevPort),
			"Check that the device shares the network with the backend host and the server is running.",
		}, "\n")
	case strings.Contains(lower, "request timeout"):
		return strings.Join([]string{
			"The backend did not answer in time.",
			"URL: " + shown,
			fmt.Sprintf("Check: same network, LAN IP instead of localhost, port %d open.", constant.DevBackendPort),
		}, "\n")
	case strings.Contains(lower, "network request failed"):
		return strings.Join([]string{
			"Network unreachable.",
			"URL: " + shown,
			fmt.Sprintf("Check: same network, LAN IP instead of localhost, port %d open.", constant.DevBackendPort),
		}, "\n")
	case msg != "":
		return msg
	default:
		return "Unknown connection error."
	}
}
