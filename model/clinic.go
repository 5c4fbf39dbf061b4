package model

import "github.com/muhammadheryan/clinic-companion/constant"

type ClinicProfile struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Address      string `json:"address"`
	OpeningHours string `json:"openingHours"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	Website      string `json:"website,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	BrandColor   string `json:"brandColor,omitempty"`
	AccentColor  string `json:"accentColor,omitempty"`
}

// Merge overlays the non-empty fields of next onto p.
func (p ClinicProfile) Merge(next ClinicProfile) ClinicProfile {
	if next.ID != 0 {
		p.ID = next.ID
	}
	pick := func(cur, nxt string) string {
		if nxt != "" {
			return nxt
		}
		return cur
	}
	p.Name = pick(p.Name, next.Name)
	p.ShortName = pick(p.ShortName, next.ShortName)
	p.Address = pick(p.Address, next.Address)
	p.OpeningHours = pick(p.OpeningHours, next.OpeningHours)
	p.Phone = pick(p.Phone, next.Phone)
	p.City = pick(p.City, next.City)
	p.Website = pick(p.Website, next.Website)
	p.LogoURL = pick(p.LogoURL, next.LogoURL)
	p.BrandColor = pick(p.BrandColor, next.BrandColor)
	p.AccentColor = pick(p.AccentColor, next.AccentColor)
	return p
}

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Treatment struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	PriceCents       int      `json:"priceCents"`
	MemberPriceCents *int     `json:"memberPriceCents,omitempty"`
	DurationMinutes  int      `json:"durationMinutes"`
	Description      string   `json:"description"`
	ImageURL         string   `json:"imageUrl"`
	GalleryURLs      []string `json:"galleryUrls"`
}

// EffectiveMemberPrice falls back to the standard price when no valid member price exists.
func (t Treatment) EffectiveMemberPrice() int {
	if t.MemberPriceCents != nil && *t.MemberPriceCents >= 0 {
		return *t.MemberPriceCents
	}
	return t.PriceCents
}

type Membership struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	PriceCents           int      `json:"priceCents"`
	IncludedTreatmentIDs []string `json:"includedTreatmentIds"`
	Perks                []string `json:"perks"`
}

func (m Membership) Includes(treatmentID string) bool {
	for _, id := range m.IncludedTreatmentIDs {
		if id == treatmentID {
			return true
		}
	}
	return false
}

type RewardAction struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

type RewardRedeem struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	RequiredPoints int    `json:"requiredPoints"`
	ValueCents     int    `json:"valueCents"`
}

type HomeArticle struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag"`
}

type Catalog struct {
	Categories    []Category     `json:"categories"`
	Treatments    []Treatment    `json:"treatments"`
	Memberships   []Membership   `json:"memberships"`
	RewardActions []RewardAction `json:"rewardActions"`
	RewardRedeems []RewardRedeem `json:"rewardRedeems"`
	HomeArticles  []HomeArticle  `json:"homeArticles"`
}

type ClinicBundle struct {
	Clinic    ClinicProfile `json:"clinic"`
	Catalog   Catalog       `json:"catalog"`
	FetchedAt string        `json:"fetchedAt,omitempty"`
}

type ClinicSearchResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

type ClinicSearchResponse struct {
	Clinics []ClinicSearchResult `json:"clinics"`
	Count   int                  `json:"count"`
	Query   string               `json:"query"`
}

type ResolveCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type ResolveCodeResponse struct {
	Clinic             ClinicProfile `json:"clinic"`
	ResolvedClinicName string        `json:"resolvedClinicName"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type HealthResult struct {
	BaseURL string `json:"baseUrl"`
	Message string `json:"message"`
}

// PublicEvent is an anonymous analytics event posted by the patient app.
type PublicEvent struct {
	ClinicName  string         `json:"clinicName"`
	EventName   string         `json:"eventName"`
	TreatmentID string         `json:"treatmentId"`
	AmountCents *int           `json:"amountCents,omitempty"`
	SessionID   string         `json:"sessionId"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ResolveCodeResult is the outcome of a scanned or typed clinic code. The flow always
// continues to the access step, even when nothing matched.
type ResolveCodeResult struct {
	ClinicName string                  `json:"clinicName"`
	Clinics    []ClinicSearchResult    `json:"clinics"`
	Step       constant.OnboardingStep `json:"step"`
}

type ProfileUpdate struct {
	MemberName  string `json:"memberName"`
	MemberEmail string `json:"memberEmail" validate:"omitempty,contains=@"`
}
