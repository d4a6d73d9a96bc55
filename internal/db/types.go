package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Profile represents a dating profile record. BirthDate, BioAge and Stamina
// feed the scoring engine; the rest is display data.
type Profile struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	BirthDate  *Date       `json:"birth_date,omitempty"`
	BioAge     int         `json:"bio_age"`
	Stamina    int         `json:"stamina"`
	Location   string      `json:"location,omitempty"`
	Profession string      `json:"profession,omitempty"`
	ImageURL   string      `json:"image_url,omitempty"`
	Interests  StringArray `json:"interests"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// User represents an account record.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MatchScore is the persisted overall compatibility for an ordered
// (profile, candidate) pair. Only the overall value is stored; the full
// report is recomputed on demand.
type MatchScore struct {
	ProfileID   uuid.UUID `json:"profile_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Overall     int       `json:"overall"`
	CreatedAt   time.Time `json:"created_at"`
}

// Date is a custom type for handling SQL DATE (YYYY-MM-DD).
type Date struct {
	time.Time
}

// NewDate builds a Date from a time value.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// Scan implements the Scanner interface.
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return errors.New("failed to scan Date")
	}
	d.Time = t
	return nil
}

// Value implements the Valuer interface.
func (d *Date) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return d.Time, nil
}

// MarshalJSON implements json.Marshaler.
func (d *Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" || str == `""` {
		return nil
	}
	// Trim quotes
	if len(str) > 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	var err error
	d.Time, err = time.Parse("2006-01-02", str)
	return err
}

// StringArray handles JSONB string arrays.
type StringArray []string

// Scan implements the Scanner interface for StringArray.
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
