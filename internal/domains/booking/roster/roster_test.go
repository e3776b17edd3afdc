package roster_test

import (
	"errors"
	"testing"

	"innkeep/internal/domains/booking/roster"
	guestModel "innkeep/internal/domains/guest/model"

	"github.com/stretchr/testify/assert"
)

func primaryGuest() *guestModel.Guest {
	return &guestModel.Guest{
		ID:        "guest-primary",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	}
}

func TestBuild_PrimaryFillsOneAdultSlot(t *testing.T) {
	got, err := roster.Build("booking-1", "alice", 2, 0, primaryGuest(), []roster.AdultGuest{
		{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com"},
	}, nil)

	assert.NoError(t, err)
	assert.Len(t, got.Members, 2)
	assert.Equal(t, "guest-primary", got.Members[0].GuestID)
	assert.False(t, got.Members[0].IsChild)
	assert.Len(t, got.NewGuests, 1)
	assert.Equal(t, "Bob", got.NewGuests[0].FirstName)
	assert.Len(t, got.GuestIDs(), 2)
}

func TestBuild_ChildRowsKeepSubmittedNames(t *testing.T) {
	got, err := roster.Build("booking-7", "alice", 1, 2, primaryGuest(), nil, []roster.ChildGuest{
		{FirstName: "Eve", LastName: "Smith", Email: "eve@example.com"},
		{FirstName: "Finn", LastName: "Smith"},
	})

	assert.NoError(t, err)
	assert.Len(t, got.NewGuests, 2)

	assert.Equal(t, "Eve", got.NewGuests[0].FirstName)
	assert.Equal(t, "eve@example.com", got.NewGuests[0].Email)

	assert.Equal(t, "Finn", got.NewGuests[1].FirstName)
	assert.Equal(t, "child2_booking-7@noemail.com", got.NewGuests[1].Email)

	assert.Len(t, got.Members, 3)
	assert.False(t, got.Members[0].IsChild)
	assert.True(t, got.Members[1].IsChild)
	assert.True(t, got.Members[2].IsChild)
}

func TestBuild_MissingAdultsReportsRequiredTotal(t *testing.T) {
	_, err := roster.Build("booking-2", "alice", 3, 0, primaryGuest(), []roster.AdultGuest{
		{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com"},
	}, nil)

	var incomplete *roster.IncompleteRosterError
	if assert.True(t, errors.As(err, &incomplete)) {
		assert.Equal(t, 2, incomplete.NeededAdults)
		assert.Equal(t, 0, incomplete.NeededChildren)
	}
}

func TestBuild_MissingChildren(t *testing.T) {
	_, err := roster.Build("booking-5", "alice", 1, 2, primaryGuest(), nil, []roster.ChildGuest{
		{FirstName: "Eve", LastName: "Smith"},
	})

	var incomplete *roster.IncompleteRosterError
	if assert.True(t, errors.As(err, &incomplete)) {
		assert.Equal(t, 0, incomplete.NeededAdults)
		assert.Equal(t, 2, incomplete.NeededChildren)
	}
}

func TestBuild_IncompleteAdultRowDoesNotCount(t *testing.T) {
	_, err := roster.Build("booking-6", "alice", 2, 0, primaryGuest(), []roster.AdultGuest{
		{FirstName: "Bob", LastName: "Smith"},
	}, nil)

	var incomplete *roster.IncompleteRosterError
	if assert.True(t, errors.As(err, &incomplete)) {
		assert.Equal(t, 1, incomplete.NeededAdults)
	}
}

func TestBuild_IncompleteChildRowDoesNotCount(t *testing.T) {
	_, err := roster.Build("booking-8", "alice", 1, 1, primaryGuest(), nil, []roster.ChildGuest{
		{FirstName: "Eve"},
	})

	var incomplete *roster.IncompleteRosterError
	if assert.True(t, errors.As(err, &incomplete)) {
		assert.Equal(t, 1, incomplete.NeededChildren)
	}
}

func TestBuild_TooManyAdults(t *testing.T) {
	_, err := roster.Build("booking-3", "alice", 1, 0, primaryGuest(), []roster.AdultGuest{
		{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com"},
	}, nil)

	var overflow *roster.OverflowError
	if assert.True(t, errors.As(err, &overflow)) {
		assert.Equal(t, 1, overflow.ExtraAdults)
	}
}

func TestBuild_NoPrimaryGuest(t *testing.T) {
	got, err := roster.Build("booking-4", "admin", 2, 1, nil, []roster.AdultGuest{
		{FirstName: "Cara", LastName: "Jones", Email: "cara@example.com"},
		{FirstName: "Dan", LastName: "Jones", Email: "dan@example.com"},
	}, []roster.ChildGuest{
		{FirstName: "Elle", LastName: "Jones"},
	})

	assert.NoError(t, err)
	assert.Len(t, got.NewGuests, 3)
	assert.Len(t, got.Members, 3)
	assert.Equal(t, "Elle", got.NewGuests[2].FirstName)
	assert.True(t, got.Members[2].IsChild)
}
