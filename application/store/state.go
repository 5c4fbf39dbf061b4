// Package store holds the patient session state behind a single reducer.
package store

import (
	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/model"
)

type State struct {
	BaseURL            string
	Connected          bool
	ClinicLookupName   string
	Clinic             model.ClinicProfile
	Catalog            model.Catalog
	SelectedCategoryID string

	MemberEmail    string
	MemberName     string
	Phone          string
	GuestMode      bool
	OnboardingDone bool

	ActiveMembership string
	MembershipStatus *model.MembershipRecord

	Cart        []model.CartItem
	Points      int
	WalletCents int
	History     []model.HistoryEntry
}

// ClinicName is the name sent to the backend: the loaded profile first, then the lookup name.
func (s State) ClinicName() string {
	if s.Clinic.Name != "" {
		return s.Clinic.Name
	}
	return s.ClinicLookupName
}

// HasActiveMembership is always true offline so the demo shows member pricing.
func (s State) HasActiveMembership() bool {
	if !s.Connected {
		return true
	}
	return s.MembershipStatus != nil &&
		s.MembershipStatus.StatusValue() == constant.MembershipActive &&
		s.MembershipStatus.MembershipID == s.ActiveMembership
}

func (s State) TotalCartCents() int {
	total := 0
	for _, item := range s.Cart {
		total += item.TotalCents
	}
	return total
}

// CurrentMembership returns the selected plan, falling back to the first offered one.
func (s State) CurrentMembership() (model.Membership, bool) {
	for _, m := range s.Catalog.Memberships {
		if m.ID == s.ActiveMembership {
			return m, true
		}
	}
	if len(s.Catalog.Memberships) > 0 {
		return s.Catalog.Memberships[0], true
	}
	return model.Membership{}, false
}

func (s State) RewardHistory() []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, len(s.History))
	for _, entry := range s.History {
		if entry.Type == constant.HistoryReward || entry.Type == constant.HistoryRedeem {
			out = append(out, entry)
		}
	}
	return out
}

func (s State) FindTreatment(id string) (model.Treatment, bool) {
	for _, t := range s.Catalog.Treatments {
		if t.ID == id {
			return t, true
		}
	}
	return model.Treatment{}, false
}

func (s State) FindMembership(id string) (model.Membership, bool) {
	for _, m := range s.Catalog.Memberships {
		if m.ID == id {
			return m, true
		}
	}
	return model.Membership{}, false
}

func (s State) clone() State {
	out := s
	out.Catalog = model.Catalog{
		Categories:    append([]model.Category(nil), s.Catalog.Categories...),
		Treatments:    cloneTreatments(s.Catalog.Treatments),
		Memberships:   cloneMemberships(s.Catalog.Memberships),
		RewardActions: append([]model.RewardAction(nil), s.Catalog.RewardActions...),
		RewardRedeems: append([]model.RewardRedeem(nil), s.Catalog.RewardRedeems...),
		HomeArticles:  append([]model.HomeArticle(nil), s.Catalog.HomeArticles...),
	}
	if s.MembershipStatus != nil {
		rec := *s.MembershipStatus
		out.MembershipStatus = &rec
	}
	out.Cart = append([]model.CartItem(nil), s.Cart...)
	out.History = make([]model.HistoryEntry, len(s.History))
	for i, entry := range s.History {
		out.History[i] = cloneEntry(entry)
	}
	return out
}

func cloneTreatments(in []model.Treatment) []model.Treatment {
	if in == nil {
		return nil
	}
	out := make([]model.Treatment, len(in))
	for i, t := range in {
		t.GalleryURLs = append([]string(nil), t.GalleryURLs...)
		if t.MemberPriceCents != nil {
			p := *t.MemberPriceCents
			t.MemberPriceCents = &p
		}
		out[i] = t
	}
	return out
}

func cloneMemberships(in []model.Membership) []model.Membership {
	if in == nil {
		return nil
	}
	out := make([]model.Membership, len(in))
	for i, m := range in {
		m.IncludedTreatmentIDs = append([]string(nil), m.IncludedTreatmentIDs...)
		m.Perks = append([]string(nil), m.Perks...)
		out[i] = m
	}
	return out
}

func cloneEntry(e model.HistoryEntry) model.HistoryEntry {
	if e.Points != nil {
		p := *e.Points
		e.Points = &p
	}
	if e.Amount != nil {
		a := *e.Amount
		e.Amount = &a
	}
	return e
}
