package model

import "github.com/muhammadheryan/clinic-companion/constant"

// MembershipRecord is the backend's authoritative membership row for a patient.
type MembershipRecord struct {
	ID                 int64  `json:"id,omitempty"`
	PatientEmail       string `json:"patientEmail,omitempty"`
	PatientName        string `json:"patientName,omitempty"`
	MembershipID       string `json:"membershipId"`
	MembershipName     string `json:"membershipName,omitempty"`
	MonthlyAmountCents int    `json:"monthlyAmountCents,omitempty"`
	Currency           string `json:"currency,omitempty"`
	Status             string `json:"status"`
	NextChargeAt       string `json:"nextChargeAt,omitempty"`
	CanceledAt         string `json:"canceledAt,omitempty"`
	LastPaymentStatus  string `json:"lastPaymentStatus,omitempty"`
}

func (r *MembershipRecord) StatusValue() constant.MembershipStatus {
	if r == nil {
		return constant.MembershipInactive
	}
	return constant.ParseMembershipStatus(r.Status)
}

type MembershipEnvelope struct {
	Membership *MembershipRecord `json:"membership"`
}

type ActivateMembershipRequest struct {
	ClinicName   string `json:"clinicName" validate:"required"`
	MemberEmail  string `json:"memberEmail" validate:"required,contains=@"`
	MemberName   string `json:"memberName"`
	MembershipID string `json:"membershipId" validate:"required"`
}

type CancelMembershipRequest struct {
	ClinicName  string `json:"clinicName" validate:"required"`
	MemberEmail string `json:"memberEmail" validate:"required"`
}
