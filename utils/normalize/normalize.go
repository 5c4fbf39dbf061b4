// Package normalize cleans user-entered and server-supplied values before they
// reach the backend client.
package normalize

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	privateRange172 = regexp.MustCompile(`^172\.(1[6-9]|2\d|3[0-1])\.`)
	nonPhoneChars   = regexp.MustCompile(`[^\d+]`)
	schemePrefix    = regexp.MustCompile(`(?i)^https?://`)
)

// URL returns a scheme-qualified base URL without trailing slashes. Hosts that look
// private (loopback, RFC 1918) get http, everything else https. Empty stays empty.
func URL(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}

	candidate := strings.TrimRight(trimmed, "/")
	scheme := "https"
	if IsPrivateHost(strings.SplitN(candidate, "/", 2)[0]) {
		scheme = "http"
	}
	return strings.TrimRight(scheme+"://"+candidate, "/")
}

// WebURL is the admin and marketing variant of URL: any host without a scheme gets https.
func WebURL(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// IsPrivateHost reports whether host (optionally with port) is loopback or a LAN address.
func IsPrivateHost(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	return strings.HasPrefix(h, "localhost") ||
		strings.HasPrefix(h, "127.") ||
		strings.HasPrefix(h, "10.") ||
		strings.HasPrefix(h, "192.168.") ||
		privateRange172.MatchString(h)
}

// DevBackendURL derives the API URL from a development runtime host URI such as
// "192.168.1.20:8081" or "exp://192.168.1.20:8081,other", replacing the port.
func DevBackendURL(hostURI string, apiPort int) string {
	candidate := strings.TrimSpace(strings.SplitN(strings.TrimSpace(hostURI), ",", 2)[0])
	candidate = schemePrefix.ReplaceAllString(candidate, "")
	if i := strings.Index(candidate, "://"); i >= 0 {
		candidate = candidate[i+3:]
	}
	candidate = strings.SplitN(candidate, "/", 2)[0]
	candidate = strings.TrimSpace(strings.SplitN(candidate, ":", 2)[0])
	if candidate == "" {
		return ""
	}
	return URL(fmt.Sprintf("%s:%d", candidate, apiPort))
}

// MediaURL makes a catalog media path absolute against baseURL.
func MediaURL(baseURL, raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	base := URL(baseURL)
	if base == "" {
		return value
	}
	if strings.HasPrefix(value, "/") {
		return base + value
	}
	return base + "/" + value
}

// Phone keeps digits and '+' only.
func Phone(value string) string {
	return nonPhoneChars.ReplaceAllString(strings.TrimSpace(value), "")
}

func Email(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ClinicNameFromCode extracts a clinic name from a scanned QR payload or typed code.
func ClinicNameFromCode(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "clinic:"):
		return strings.TrimSpace(value[len("clinic:"):])
	case strings.HasPrefix(lower, "appointmentix://clinic/"):
		rest := value[len("appointmentix://clinic/"):]
		if decoded, err := url.PathUnescape(rest); err == nil {
			rest = decoded
		}
		return strings.TrimSpace(rest)
	}
	return value
}
