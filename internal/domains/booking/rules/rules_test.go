package rules_test

import (
	"errors"
	"testing"
	"time"

	"innkeep/internal/domains/booking/rules"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "one night stay", start: "2026-03-01", end: "2026-03-02", wantErr: false},
		{name: "week long stay", start: "2026-03-01", end: "2026-03-08", wantErr: false},
		{name: "zero nights", start: "2026-03-01", end: "2026-03-01", wantErr: true},
		{name: "end before start", start: "2026-03-05", end: "2026-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.ValidateDateRange(date(tt.start), date(tt.end))

			if tt.wantErr {
				assert.ErrorIs(t, err, rules.ErrInvalidDateRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCapacity(t *testing.T) {
	tests := []struct {
		name          string
		capAdults     int
		capChildren   int
		adults        int
		children      int
		wantDimension string
	}{
		{name: "exact fit", capAdults: 2, capChildren: 1, adults: 2, children: 1},
		{name: "under capacity", capAdults: 4, capChildren: 2, adults: 1, children: 0},
		{name: "too many adults", capAdults: 2, capChildren: 2, adults: 3, children: 0, wantDimension: rules.DimensionAdults},
		{name: "too many children", capAdults: 2, capChildren: 1, adults: 2, children: 2, wantDimension: rules.DimensionChildren},
		{name: "adults cannot use child slots", capAdults: 2, capChildren: 4, adults: 3, children: 0, wantDimension: rules.DimensionAdults},
		{name: "children cannot use adult slots", capAdults: 4, capChildren: 0, adults: 1, children: 1, wantDimension: rules.DimensionChildren},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.ValidateCapacity(tt.capAdults, tt.capChildren, tt.adults, tt.children)

			if tt.wantDimension == "" {
				assert.NoError(t, err)

				return
			}

			var capErr *rules.CapacityExceededError
			if assert.True(t, errors.As(err, &capErr)) {
				assert.Equal(t, tt.wantDimension, capErr.Dimension)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		start1 string
		end1   string
		start2 string
		end2   string
		want   bool
	}{
		{name: "identical ranges", start1: "2026-03-01", end1: "2026-03-05", start2: "2026-03-01", end2: "2026-03-05", want: true},
		{name: "partial overlap", start1: "2026-03-01", end1: "2026-03-05", start2: "2026-03-03", end2: "2026-03-08", want: true},
		{name: "contained range", start1: "2026-03-01", end1: "2026-03-10", start2: "2026-03-03", end2: "2026-03-05", want: true},
		{name: "back to back checkout day", start1: "2026-03-01", end1: "2026-03-05", start2: "2026-03-05", end2: "2026-03-08", want: false},
		{name: "back to back checkin day", start1: "2026-03-05", end1: "2026-03-08", start2: "2026-03-01", end2: "2026-03-05", want: false},
		{name: "disjoint ranges", start1: "2026-03-01", end1: "2026-03-03", start2: "2026-03-10", end2: "2026-03-12", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Overlaps(date(tt.start1), date(tt.end1), date(tt.start2), date(tt.end2))

			assert.Equal(t, tt.want, got)
		})
	}
}
