// Package sizing validates made-to-measure blind dimensions.
package sizing

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Unit string

const (
	UnitInches      Unit = "inches"
	UnitCentimeters Unit = "cm"
)

// Fractions are the selectable sixteenths of an inch.
var Fractions = []string{"0", "1/16", "1/8", "3/16", "1/4", "5/16", "3/8", "7/16", "1/2", "9/16", "5/8", "11/16", "3/4", "13/16", "7/8", "15/16"}

// Millimeters are the selectable millimetre offsets on top of whole centimetres.
var Millimeters = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Limits bounds the whole-unit part of a dimension.
type Limits struct {
	Min int
	Max int
}

func (l Limits) Placeholder() string {
	return fmt.Sprintf("%d-%d", l.Min, l.Max)
}

// LimitsFor returns the width and height limits of u.
func LimitsFor(u Unit) (width, height Limits) {
	if u == UnitCentimeters {
		return Limits{Min: 50, Max: 400}, Limits{Min: 50, Max: 300}
	}
	return Limits{Min: 20, Max: 157}, Limits{Min: 20, Max: 118}
}

// Request is the size selector form state.
type Request struct {
	Unit           Unit   `form:"unit" validate:"required,oneof=inches cm"`
	Width          string `form:"width" validate:"required,number"`
	WidthFraction  string `form:"width_fraction" validate:"omitempty,fraction"`
	Height         string `form:"height" validate:"required,number"`
	HeightFraction string `form:"height_fraction" validate:"omitempty,fraction"`
}

// Size is a validated measurement, expressed in Unit.
type Size struct {
	Unit   Unit
	Width  float64
	Height float64
}

func (s Size) String() string {
	suffix := "in"
	if s.Unit == UnitCentimeters {
		suffix = "cm"
	}
	return fmt.Sprintf("%s × %s %s", trimFloat(s.Width), trimFloat(s.Height), suffix)
}

// FieldErrors maps form field names to user-facing messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range []string{"unit", "width", "width_fraction", "height", "height_fraction"} {
		if msg, ok := e[f]; ok {
			parts = append(parts, f+" "+msg)
		}
	}
	return "invalid size: " + strings.Join(parts, ", ")
}

type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
	_ = v.RegisterValidation("fraction", func(fl validator.FieldLevel) bool {
		return isFraction(fl.Field().String())
	})
	v.RegisterStructValidation(validateRanges, Request{})
	return &Validator{v: v}
}

// ParseRequest reads the size form from a query string. The unit defaults to inches.
func ParseRequest(q url.Values) Request {
	r := Request{
		Unit:           Unit(strings.ToLower(strings.TrimSpace(q.Get("unit")))),
		Width:          strings.TrimSpace(q.Get("width")),
		WidthFraction:  strings.TrimSpace(q.Get("width_fraction")),
		Height:         strings.TrimSpace(q.Get("height")),
		HeightFraction: strings.TrimSpace(q.Get("height_fraction")),
	}
	if r.Unit == "" {
		r.Unit = UnitInches
	}
	return r
}

// Validate checks r and converts it to a Size. Validation failures are FieldErrors.
func (v *Validator) Validate(r Request) (Size, error) {
	if err := v.v.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Size{}, err
		}
		fields := make(FieldErrors, len(verrs))
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = friendlyMessage(r.Unit, fe)
			}
		}
		return Size{}, fields
	}

	w, _ := strconv.ParseFloat(r.Width, 64)
	h, _ := strconv.ParseFloat(r.Height, 64)
	return Size{
		Unit:   r.Unit,
		Width:  w + fractionValue(r.Unit, r.WidthFraction),
		Height: h + fractionValue(r.Unit, r.HeightFraction),
	}, nil
}

func validateRanges(sl validator.StructLevel) {
	r := sl.Current().Interface().(Request)
	if r.Unit != UnitInches && r.Unit != UnitCentimeters {
		return
	}
	wl, hl := LimitsFor(r.Unit)
	checkRange(sl, r.Width, "Width", "width", wl)
	checkRange(sl, r.Height, "Height", "height", hl)

	if r.Unit == UnitCentimeters {
		checkMillimeters(sl, r.WidthFraction, "WidthFraction", "width_fraction")
		checkMillimeters(sl, r.HeightFraction, "HeightFraction", "height_fraction")
	} else {
		checkSixteenths(sl, r.WidthFraction, "WidthFraction", "width_fraction")
		checkSixteenths(sl, r.HeightFraction, "HeightFraction", "height_fraction")
	}
}

func checkRange(sl validator.StructLevel, raw, field, name string, l Limits) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	if v < float64(l.Min) || v > float64(l.Max) {
		sl.ReportError(raw, name, field, "range", l.Placeholder())
	}
}

func checkMillimeters(sl validator.StructLevel, raw, field, name string) {
	if raw == "" || contains(Millimeters, raw) {
		return
	}
	sl.ReportError(raw, name, field, "millimeters", "")
}

func checkSixteenths(sl validator.StructLevel, raw, field, name string) {
	if raw == "" || contains(Fractions, raw) {
		return
	}
	sl.ReportError(raw, name, field, "sixteenths", "")
}

func friendlyMessage(u Unit, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "number":
		return "must be a number"
	case "oneof":
		return "must be inches or cm"
	case "range":
		if u == UnitCentimeters {
			return fmt.Sprintf("must be between %s cm", fe.Param())
		}
		return fmt.Sprintf("must be between %s inches", fe.Param())
	case "fraction", "sixteenths", "millimeters":
		if u == UnitCentimeters {
			return "must be a whole number of millimetres (0-9)"
		}
		return "must be a sixteenth of an inch"
	default:
		return "is invalid"
	}
}

func isFraction(s string) bool {
	return contains(Fractions, s) || contains(Millimeters, s)
}

func fractionValue(u Unit, raw string) float64 {
	if raw == "" || raw == "0" {
		return 0
	}
	if u == UnitCentimeters {
		mm, _ := strconv.Atoi(raw)
		return float64(mm) / 10
	}
	num, den, ok := strings.Cut(raw, "/")
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(num)
	d, _ := strconv.Atoi(den)
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
