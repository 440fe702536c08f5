// Package lifecycle holds the booking and rental state machines and the policy checks gating them.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"slotkeeper/shared/constant"
	"slotkeeper/shared/failure"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no_show"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled, BookingCompleted, BookingNoShow},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingNoShow:
		return true
	}

	return false
}

func (s BookingStatus) Terminal() bool {
	return s.Valid() && len(bookingTransitions[s]) == 0
}

// Blocking reports whether a booking in this status occupies its resource.
func (s BookingStatus) Blocking() bool {
	return s == BookingPending || s == BookingConfirmed
}

// BlockingBookingStatuses lists the statuses counted as busy time.
func BlockingBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed}
}

// TransitionBooking checks structural legality only; policy checks are separate.
func TransitionBooking(from, to BookingStatus) error {
	return transition(bookingTransitions, from, to)
}

type RentalStatus string

const (
	RentalPendingDeposit RentalStatus = "pending_deposit"
	RentalDepositPaid    RentalStatus = "deposit_paid"
	RentalCheckedOut     RentalStatus = "checked_out"
	RentalOverdue        RentalStatus = "overdue"
	RentalReturned       RentalStatus = "returned"
	RentalCompleted      RentalStatus = "completed"
	RentalCancelled      RentalStatus = "cancelled"
)

var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalPendingDeposit: {RentalDepositPaid, RentalCancelled},
	RentalDepositPaid:    {RentalCheckedOut, RentalCancelled},
	RentalCheckedOut:     {RentalReturned, RentalOverdue},
	RentalOverdue:        {RentalReturned},
	RentalReturned:       {RentalCompleted},
}

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalPendingDeposit, RentalDepositPaid, RentalCheckedOut, RentalOverdue,
		RentalReturned, RentalCompleted, RentalCancelled:
		return true
	}

	return false
}

func (s RentalStatus) Terminal() bool {
	return s.Valid() && len(rentalTransitions[s]) == 0
}

// Holding reports whether a rental in this status keeps its units away from the pool.
func (s RentalStatus) Holding() bool {
	switch s {
	case RentalPendingDeposit, RentalDepositPaid, RentalCheckedOut, RentalOverdue:
		return true
	}

	return false
}

func HoldingRentalStatuses() []RentalStatus {
	return []RentalStatus{RentalPendingDeposit, RentalDepositPaid, RentalCheckedOut, RentalOverdue}
}

func TransitionRental(from, to RentalStatus) error {
	return transition(rentalTransitions, from, to)
}

func transition[S ~string](table map[S][]S, from, to S) error {
	for _, allowed := range table[from] {
		if allowed == to {
			return nil
		}
	}

	return fmt.Errorf("%w: %s to %s", failure.ErrInvalidTransition, from, to)
}

// Actor is whoever triggers a transition. A zero ID means the system itself.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// System is the actor used by background jobs.
var System = Actor{Role: constant.ContextSystem}

// CanOverride reports whether the actor may bypass cancellation windows.
func (a Actor) CanOverride() bool {
	return a.Role == constant.RoleManager || a.Role == constant.RoleSuperAdmin || a.Role == constant.ContextSystem
}

// String is what gets stamped into created_by and modified_by.
func (a Actor) String() string {
	if a.ID == uuid.Nil {
		return a.Role
	}

	return a.ID.String()
}

func (a Actor) IsStaff() bool {
	return a.Role != constant.RoleCustomer
}

// CheckCancellationWindow rejects a cancellation later than window before start unless the actor can override.
func CheckCancellationWindow(start, now time.Time, window time.Duration, actor Actor) error {
	if window <= 0 || actor.CanOverride() {
		return nil
	}

	if deadline := start.Add(-window); now.After(deadline) {
		return fmt.Errorf("%w: cancellations close %s before start", failure.ErrPolicyViolation, window)
	}

	return nil
}
