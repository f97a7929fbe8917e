package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowFormStartTimeValueAcceptsCommonLayouts(t *testing.T) {
	cases := []string{
		"2026-09-15T20:00:00Z",
		"2026-09-15 20:00:00",
		"2026-09-15T20:00",
	}
	for _, raw := range cases {
		form := ShowForm{ArtistID: 1, VenueID: 2, StartTime: raw}
		parsed, err := form.StartTimeValue()
		require.NoError(t, err, raw)
		assert.Equal(t, time.September, parsed.Month(), raw)
		assert.Equal(t, 20, parsed.Hour(), raw)
	}
}

func TestShowFormStartTimeValueEmptyIsZero(t *testing.T) {
	form := ShowForm{ArtistID: 1, VenueID: 2}
	parsed, err := form.StartTimeValue()
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())
}

func TestShowFormStartTimeValueRejectsGarbage(t *testing.T) {
	form := ShowForm{ArtistID: 1, VenueID: 2, StartTime: "next tuesday"}
	_, err := form.StartTimeValue()
	assert.Error(t, err)
}

func TestValidateFormFlattensFieldErrors(t *testing.T) {
	form := VenueForm{
		City: "SF", State: "CA", Address: "1 Main St",
		ImageLink: "not-a-url",
	}
	fieldErrors := validateForm(&form)
	require.NotNil(t, fieldErrors)
	assert.Equal(t, "This field is required.", fieldErrors["name"])
	assert.Equal(t, "Must be a valid URL.", fieldErrors["image_link"])
}

func TestValidateFormNilOnValidInput(t *testing.T) {
	form := VenueForm{
		Name: "The Spot", City: "SF", State: "CA", Address: "1 Main St",
		Genres:    []string{"Jazz"},
		ImageLink: "https://example.com/spot.png",
	}
	assert.Nil(t, validateForm(&form))
}
