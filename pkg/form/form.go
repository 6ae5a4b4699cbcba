// Package form holds the helpers services use to normalize and check
// submitted form values before anything reaches storage.
package form

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"fazenda/entities"
	"fazenda/pkg/errs"
)

// DatePolicy decides what happens to a date that does not parse.
type DatePolicy string

const (
	// Strict rejects unparsable dates with a validation error.
	Strict DatePolicy = "strict"
	// Lenient stores unparsable dates as absent.
	Lenient DatePolicy = "lenient"
)

func ParseDatePolicy(s string) (DatePolicy, error) {
	switch p := DatePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", Strict:
		return Strict, nil
	case Lenient:
		return Lenient, nil
	default:
		return "", fmt.Errorf("unknown date policy %q", s)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// TrimStrings trims every string and *string field of the struct v points
// to. Pointers left blank become nil.
func TrimStrings(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch {
		case f.Kind() == reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case f.Kind() == reflect.Pointer && f.Type().Elem().Kind() == reflect.String && !f.IsNil():
			s := strings.TrimSpace(f.Elem().String())
			if s == "" {
				f.Set(reflect.Zero(f.Type()))
			} else {
				f.Elem().SetString(s)
			}
		}
	}
}

// Optional returns nil for a blank string.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Checker accumulates field errors while a form is converted into an
// entity.
type Checker struct {
	policy DatePolicy
	fields []errs.FieldError
}

func NewChecker(policy DatePolicy) *Checker {
	if policy == "" {
		policy = Strict
	}
	return &Checker{policy: policy}
}

func (c *Checker) Add(field, msg string) {
	c.fields = append(c.fields, errs.FieldError{Field: field, Error: msg})
}

func (c *Checker) Has(field string) bool {
	for _, f := range c.fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Struct runs the validate tags of v.
func (c *Checker) Struct(v any) {
	err := validate.Struct(v)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		c.Add("form", err.Error())
		return
	}
	for _, fe := range verrs {
		c.Add(fe.Field(), tagMessage(fe))
	}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "len":
		return fmt.Sprintf("must have %s characters", fe.Param())
	case "alpha":
		return "must contain only letters"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return "is invalid"
}

// Area parses a non-negative decimal. Both "." and "," are accepted as
// the decimal separator.
func (c *Checker) Area(field, raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if !c.Has(field) {
			c.Add(field, "is required")
		}
		return decimal.Zero
	}
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.Add(field, "must be a number")
		return decimal.Zero
	}
	if d.IsNegative() {
		c.Add(field, "must not be negative")
		return decimal.Zero
	}
	return d
}

// Quantity parses a positive base-10 integer.
func (c *Checker) Quantity(field, raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		c.Add(field, "is required")
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.Add(field, "must be a whole number")
		return 0
	}
	if n <= 0 {
		c.Add(field, "must be greater than zero")
		return 0
	}
	return n
}

// ID parses a reference to another record.
func (c *Checker) ID(field, raw string) uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		c.Add(field, "is required")
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		c.Add(field, "must reference an existing record")
		return 0
	}
	return uint(n)
}

// Date parses an optional YYYY-MM-DD date. Blank input is absent; under
// the lenient policy so is input that does not parse.
func (c *Checker) Date(field, raw string) *entities.Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := entities.ParseDate(raw)
	if err != nil {
		if c.policy == Strict {
			c.Add(field, "must be a date in YYYY-MM-DD format")
		}
		return nil
	}
	return &d
}

// Err returns the accumulated validation error, or nil.
func (c *Checker) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return errs.Validation("Validation failed", c.fields...)
}
