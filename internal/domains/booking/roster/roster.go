// Package roster assembles the full guest list for a booking: the account
// holder's own guest profile, named adult companions, and named child rows.
package roster

import (
	"fmt"

	guestModel "innkeep/internal/domains/guest/model"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
)

// IncompleteRosterError reports how many roster entries the booking requires
// in each dimension. The counts are the required totals, not the remainder.
type IncompleteRosterError struct {
	NeededAdults   int
	NeededChildren int
}

func (e *IncompleteRosterError) Error() string {
	return fmt.Sprintf("guest roster incomplete: needed %d adult(s) and %d child(ren)",
		e.NeededAdults, e.NeededChildren)
}

// OverflowError reports more named guests than the booking has slots for.
type OverflowError struct {
	ExtraAdults   int
	ExtraChildren int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("guest roster overflow: %d adult(s) and %d child(ren) more than booked",
		e.ExtraAdults, e.ExtraChildren)
}

// AdultGuest is a named companion supplied with the booking request.
// A row counts toward the roster only when first name, last name and
// email are all present.
type AdultGuest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (g AdultGuest) complete() bool {
	return g.FirstName != "" && g.LastName != "" && g.Email != ""
}

// ChildGuest is a child supplied with the booking request. First and last
// name are required; a missing email gets a placeholder synthesized from
// the booking ID.
type ChildGuest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (g ChildGuest) complete() bool {
	return g.FirstName != "" && g.LastName != ""
}

// Member is one guest on the booking's roster.
type Member struct {
	GuestID string
	IsChild bool
}

// Roster pairs the booking's member list with the guest records that must
// be created alongside the booking.
type Roster struct {
	Members   []Member
	NewGuests []guestModel.Guest
}

// GuestIDs returns every roster member's guest ID.
func (r *Roster) GuestIDs() []string {
	ids := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		ids = append(ids, m.GuestID)
	}

	return ids
}

// Build assembles the roster for a booking. The primary guest, when given,
// occupies one adult slot; the remaining adult slots and every child slot
// must be covered by complete rows. Incomplete rows are ignored, so a
// booking short of complete rows in either dimension fails with
// IncompleteRosterError carrying the required totals.
func Build(bookingID, creator string, numAdults, numChildren int, primary *guestModel.Guest, adults []AdultGuest, children []ChildGuest) (Roster, error) {
	roster := Roster{}

	requiredAdults := numAdults
	if primary != nil {
		roster.Members = append(roster.Members, Member{GuestID: primary.ID})
		requiredAdults--
	}

	if requiredAdults < 0 {
		requiredAdults = 0
	}

	completeAdults := make([]AdultGuest, 0, len(adults))
	for _, adult := range adults {
		if adult.complete() {
			completeAdults = append(completeAdults, adult)
		}
	}

	completeChildren := make([]ChildGuest, 0, len(children))
	for _, child := range children {
		if child.complete() {
			completeChildren = append(completeChildren, child)
		}
	}

	if len(completeAdults) > requiredAdults || len(completeChildren) > numChildren {
		overflow := &OverflowError{}
		if extra := len(completeAdults) - requiredAdults; extra > 0 {
			overflow.ExtraAdults = extra
		}
		if extra := len(completeChildren) - numChildren; extra > 0 {
			overflow.ExtraChildren = extra
		}

		return Roster{}, overflow
	}

	if len(completeAdults) < requiredAdults || len(completeChildren) < numChildren {
		return Roster{}, &IncompleteRosterError{
			NeededAdults:   requiredAdults,
			NeededChildren: numChildren,
		}
	}

	now := timezone.Now()
	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  creator,
		ModifiedBy: creator,
	}

	for _, adult := range completeAdults {
		guest := guestModel.Guest{
			ID:        uuid.NewString(),
			FirstName: adult.FirstName,
			LastName:  adult.LastName,
			Email:     adult.Email,
			Phone:     adult.Phone,
			Metadata:  meta,
		}

		roster.NewGuests = append(roster.NewGuests, guest)
		roster.Members = append(roster.Members, Member{GuestID: guest.ID})
	}

	for i, child := range completeChildren {
		email := child.Email
		if email == "" {
			email = fmt.Sprintf("child%d_%s@noemail.com", i+1, bookingID)
		}

		guest := guestModel.Guest{
			ID:        uuid.NewString(),
			FirstName: child.FirstName,
			LastName:  child.LastName,
			Email:     email,
			Phone:     child.Phone,
			Metadata:  meta,
		}

		roster.NewGuests = append(roster.NewGuests, guest)
		roster.Members = append(roster.Members, Member{GuestID: guest.ID, IsChild: true})
	}

	return roster, nil
}
