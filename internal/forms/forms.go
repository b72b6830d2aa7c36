package forms

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"booking-app/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// VenueForm mirrors the venue submission form. Multi-valued genres
// stay a list; everything else is a scalar.
type VenueForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required,usstate"`
	Address            string   `form:"address" binding:"required"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	Genres             []string `form:"genres" binding:"required,dive,genre"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	Website            string   `form:"website" binding:"omitempty,url"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required,usstate"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	Genres             []string `form:"genres" binding:"required,dive,genre"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	Website            string   `form:"website" binding:"omitempty,url"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" binding:"required"`
	VenueID   uint   `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

type SearchForm struct {
	SearchTerm string `form:"search_term"`
}

// Checkbox reports whether a submitted checkbox value is checked.
// Browsers send "y" or "on" when ticked and omit the field otherwise.
func Checkbox(v string) bool {
	return v != ""
}

var startTimeLayouts = []string{
	booking.ISOTime,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// Time parses the submitted start time as a timezone-naive timestamp.
func (f ShowForm) Time() (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, f.StartTime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", f.StartTime)
}

// RegisterValidators installs the usstate and genre validators on
// gin's binding engine. Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		_, ok := stateSet[fl.Field().String()]
		return ok
	})
	v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, ok := genreSet[fl.Field().String()]
		return ok
	})
}

// Messages turns a binding error into user-facing validation messages.
func Messages(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid form submission."}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out = append(out, field+" is required.")
		case "url":
			out = append(out, field+" must be a valid URL.")
		case "usstate":
			out = append(out, field+" must be a US state code.")
		case "genre":
			out = append(out, field+" contains an unknown genre.")
		default:
			out = append(out, field+" is invalid.")
		}
	}
	return out
}
