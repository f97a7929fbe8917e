package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"fyyur-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	// error maps key fields by their form name, not the Go field name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateForm runs the per-field rules and flattens failures into a
// field→message map for the caller to flash back.
func validateForm(form interface{}) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}

	messages := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages[fe.Field()] = messageFor(fe)
	}
	return messages
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Must be a valid URL."
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters long.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}

type VenueForm struct {
	Name               string   `form:"name" json:"name" validate:"required"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,max=120"`
	Address            string   `form:"address" json:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" validate:"omitempty,max=120"`
	Genres             []string `form:"genres" json:"genres" validate:"dive,required"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"omitempty,url,max=500"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"omitempty,max=250"`
}

func (f *VenueForm) ToModel() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" json:"name" validate:"required"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" validate:"omitempty,max=120"`
	Genres             []string `form:"genres" json:"genres" validate:"dive,required"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"omitempty,url,max=500"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"omitempty,max=250"`
}

func (f *ArtistForm) ToModel() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" json:"artist_id" validate:"required"`
	VenueID   uint   `form:"venue_id" json:"venue_id" validate:"required"`
	StartTime string `form:"start_time" json:"start_time"`
}

var showTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// StartTimeValue parses the submitted start time. An empty value defaults
// downstream to the creation time.
func (f *ShowForm) StartTimeValue() (time.Time, error) {
	if f.StartTime == "" {
		return time.Time{}, nil
	}
	for _, layout := range showTimeLayouts {
		if t, err := time.Parse(layout, f.StartTime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start_time %q", f.StartTime)
}

// Choice lists for the blank create forms, mirroring the multi-selects the
// HTML frontend renders.
var stateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

type formChoices struct {
	States []string `json:"states"`
	Genres []string `json:"genres"`
}

func newFormChoices() formChoices {
	return formChoices{States: stateChoices, Genres: genreChoices}
}
