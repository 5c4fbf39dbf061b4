package store

import (
	"fmt"

	"github.com/muhammadheryan/clinic-companion/constant"
	"github.com/muhammadheryan/clinic-companion/model"
)

// Reduce returns the state that results from applying a to s. s is not modified.
func Reduce(s State, a Action) State {
	next := s.clone()

	switch act := a.(type) {
	case BaseURLSet:
		next.BaseURL = act.BaseURL
	case ClinicSelected:
		next.ClinicLookupName = act.Name
	case BundleLoaded:
		applyBundle(&next, act)
	case ConnectionChanged:
		next.Connected = act.Connected
	case IdentitySet:
		if act.MemberEmail != nil {
			next.MemberEmail = *act.MemberEmail
		}
		if act.MemberName != nil {
			next.MemberName = *act.MemberName
		}
		if act.Phone != nil {
			next.Phone = *act.Phone
		}
		if act.GuestMode != nil {
			next.GuestMode = *act.GuestMode
		}
	case OnboardingCompleted:
		next.OnboardingDone = act.Done
	case MembershipSelected:
		next.ActiveMembership = act.ID
	case MembershipStatusSet:
		next.MembershipStatus = nil
		if act.Record != nil {
			rec := *act.Record
			next.MembershipStatus = &rec
			if rec.MembershipID != "" {
				next.ActiveMembership = rec.MembershipID
			}
		}
	case MembershipCanceledLocally:
		if next.MembershipStatus != nil {
			next.MembershipStatus.Status = string(constant.MembershipCanceled)
		}
	case CartItemAdded:
		next.Cart = append(next.Cart, act.Item)
	case CartItemUnitsUpdated:
		units := ClampUnits(act.Units)
		for i := range next.Cart {
			if next.Cart[i].ID != act.ID {
				continue
			}
			if next.Cart[i].UnitCents < 0 {
				next.Cart[i].UnitCents = 0
			}
			next.Cart[i].Units = units
			next.Cart[i].TotalCents = next.Cart[i].UnitCents * units
		}
	case CartItemRemoved:
		kept := next.Cart[:0]
		for _, item := range next.Cart {
			if item.ID != act.ID {
				kept = append(kept, item)
			}
		}
		next.Cart = kept
	case CartCleared:
		next.Cart = nil
	case PointsClaimed:
		next.Points += act.Points
		next.History = prepend(next.History, act.Entry)
	case RewardRedeemed:
		if act.Points > next.Points {
			return next
		}
		next.Points -= act.Points
		next.WalletCents += act.ValueCents
		next.History = prepend(next.History, act.Entry)
	case PurchaseRecorded:
		next.Points += act.EarnedPoints
		next.History = prepend(next.History, act.Entry)
		next.Cart = nil
	case SessionDisconnected:
		next.Connected = false
		next.ClinicLookupName = ""
		next.Cart = nil
		next.MembershipStatus = nil
		next.Phone = ""
		next.GuestMode = false
		next.OnboardingDone = false
	default:
		panic(fmt.Sprintf("store: unhandled action %T", a))
	}

	return next
}

// ClampUnits bounds a cart quantity to 1..CartMaxUnits.
func ClampUnits(units int) int {
	if units < 1 {
		return 1
	}
	if units > constant.CartMaxUnits {
		return constant.CartMaxUnits
	}
	return units
}

func applyBundle(next *State, act BundleLoaded) {
	catalog := act.Bundle.Catalog
	if len(catalog.Categories) > 0 {
		next.Catalog.Categories = catalog.Categories
		next.SelectedCategoryID = catalog.Categories[0].ID
	}
	if len(catalog.Treatments) > 0 {
		next.Catalog.Treatments = catalog.Treatments
	}
	if len(catalog.Memberships) > 0 {
		next.Catalog.Memberships = catalog.Memberships
		if _, ok := next.FindMembership(next.ActiveMembership); !ok {
			next.ActiveMembership = catalog.Memberships[0].ID
		}
	}
	if len(catalog.RewardActions) > 0 {
		next.Catalog.RewardActions = catalog.RewardActions
	}
	if len(catalog.RewardRedeems) > 0 {
		next.Catalog.RewardRedeems = catalog.RewardRedeems
	}
	if len(catalog.HomeArticles) > 0 {
		next.Catalog.HomeArticles = catalog.HomeArticles
	}

	next.Clinic = next.Clinic.Merge(act.Bundle.Clinic)
	if act.Bundle.Clinic.Name != "" {
		next.ClinicLookupName = act.Bundle.Clinic.Name
	} else if act.ClinicName != "" {
		next.ClinicLookupName = act.ClinicName
	}
	next.BaseURL = act.BaseURL
	next.Connected = true
}

func prepend(history []model.HistoryEntry, entry model.HistoryEntry) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, len(history)+1)
	out = append(out, entry)
	return append(out, history...)
}
