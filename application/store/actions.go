package store

import "github.com/muhammadheryan/clinic-companion/model"

// Action is a state transition. The set is closed to this package.
type Action interface {
	isAction()
}

type BaseURLSet struct{ BaseURL string }

type ClinicSelected struct{ Name string }

// BundleLoaded replaces every non-empty catalog section and merges the clinic profile.
type BundleLoaded struct {
	BaseURL    string
	ClinicName string
	Bundle     model.ClinicBundle
}

type ConnectionChanged struct{ Connected bool }

// IdentitySet updates only the non-nil fields.
type IdentitySet struct {
	MemberEmail *string
	MemberName  *string
	Phone       *string
	GuestMode   *bool
}

type OnboardingCompleted struct{ Done bool }

type MembershipSelected struct{ ID string }

// MembershipStatusSet stores the server record; its membershipId overrides the local selection.
type MembershipStatusSet struct{ Record *model.MembershipRecord }

// MembershipCanceledLocally flips the held record to canceled without a server round trip.
type MembershipCanceledLocally struct{}

type CartItemAdded struct{ Item model.CartItem }

type CartItemUnitsUpdated struct {
	ID    string
	Units int
}

type CartItemRemoved struct{ ID string }

type CartCleared struct{}

type PointsClaimed struct {
	Points int
	Entry  model.HistoryEntry
}

type RewardRedeemed struct {
	Points     int
	ValueCents int
	Entry      model.HistoryEntry
}

// PurchaseRecorded credits points, prepends the purchase entry and empties the cart.
type PurchaseRecorded struct {
	EarnedPoints int
	Entry        model.HistoryEntry
}

type SessionDisconnected struct{}

func (BaseURLSet) isAction()                {}
func (ClinicSelected) isAction()            {}
func (BundleLoaded) isAction()              {}
func (ConnectionChanged) isAction()         {}
func (IdentitySet) isAction()               {}
func (OnboardingCompleted) isAction()       {}
func (MembershipSelected) isAction()        {}
func (MembershipStatusSet) isAction()       {}
func (MembershipCanceledLocally) isAction() {}
func (CartItemAdded) isAction()             {}
func (CartItemUnitsUpdated) isAction()      {}
func (CartItemRemoved) isAction()           {}
func (CartCleared) isAction()               {}
func (PointsClaimed) isAction()             {}
func (RewardRedeemed) isAction()            {}
func (PurchaseRecorded) isAction()          {}
func (SessionDisconnected) isAction()       {}
