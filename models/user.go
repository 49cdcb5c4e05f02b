package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Gender values accepted for the users.gender column.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User represents an account entity used for authentication and profile
// responses. Sensitive fields must never be exposed outside trusted
// boundaries: PasswordDigest is excluded from JSON and is only read by the
// auth service when verifying credentials.
type User struct {
	// ID is the globally unique identifier of the user, a lowercase UUID
	// string assigned at registration time and stable for the account's
	// lifetime.
	ID string `json:"id"`

	// Email is the unique login identifier, stored normalized to lowercase.
	Email string `json:"email"`

	// PasswordDigest is the bcrypt digest of the user's password.
	// It is never serialized and never returned on any interface.
	PasswordDigest string `json:"-"`

	// FirstName is the user's given name.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`

	// DateOfBirth is a calendar date; it serializes as YYYY-MM-DD.
	DateOfBirth Date `json:"date_of_birth"`

	// Gender is one of GenderMale, GenderFemale, GenderOther.
	Gender string `json:"gender"`

	// CreatedAt is the instant the account was created, in UTC.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation and is always ≥ CreatedAt.
	UpdatedAt time.Time `json:"updated_at"`

	// IsActive reports whether the account may authenticate.
	// New users start active; deactivation is an administrative concern.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DateLayout is the wire format for calendar dates (ISO-8601 date).
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It marshals to and from the YYYY-MM-DD wire format and maps to the
// PostgreSQL DATE column type.
type Date struct {
	time.Time
}

// NewDate constructs a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// MarshalJSON implements json.Marshaler using the YYYY-MM-DD format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for YYYY-MM-DD strings.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner so DATE columns can be read directly into a Date.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer for writing the Date to the database.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}
