package validatorx

import (
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/clinic-companion/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	otpCodePattern = regexp.MustCompile(`^\d{4,8}$`)
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("phone", func(fl gpvalidator.FieldLevel) bool {
		return CountDigits(fl.Field().String()) >= constant.OtpMinPhoneDigits
	})
	_ = v.RegisterValidation("otpcode", func(fl gpvalidator.FieldLevel) bool {
		return otpCodePattern.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateVar validates a single value against a tag expression.
func ValidateVar(field interface{}, tag string) error {
	if v == nil {
		Init()
	}
	return v.Var(field, tag)
}

func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// IsMemberEmail is the client's loose email check: trimmed and containing '@'.
func IsMemberEmail(email string) bool {
	return strings.Contains(strings.TrimSpace(email), "@")
}
