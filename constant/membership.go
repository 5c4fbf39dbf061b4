package constant

import "strings"

type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "active"
	MembershipPastDue  MembershipStatus = "past_due"
	MembershipPaused   MembershipStatus = "paused"
	MembershipCanceled MembershipStatus = "canceled"
	MembershipInactive MembershipStatus = "inactive"
)

// ParseMembershipStatus maps unknown or empty values to inactive.
func ParseMembershipStatus(raw string) MembershipStatus {
	switch s := MembershipStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case MembershipActive, MembershipPastDue, MembershipPaused, MembershipCanceled:
		return s
	default:
		return MembershipInactive
	}
}

func (s MembershipStatus) Label() string {
	switch ParseMembershipStatus(string(s)) {
	case MembershipActive:
		return "Active"
	case MembershipPastDue:
		return "Payment due"
	case MembershipPaused:
		return "Paused"
	case MembershipCanceled:
		return "Canceled"
	default:
		return "Inactive"
	}
}
