package domain

import (
	"context"
	"fmt"
	"time"
)

// Member represents one registrant of the registry.
type Member struct {
	ID         int64 // assigned by the store's sequence on insert
	LoginID    string
	Password   string
	Name       string
	Gender     string // "M" or "F"
	Age        int
	Email      string
	Phone      string
	Address    string
	Hobby      string // comma-separated, stored as a single value
	EnrolledAt time.Time
}

const (
	GenderMale   = "M"
	GenderFemale = "F"
)

func (m Member) String() string {
	return fmt.Sprintf("Member{no=%d, id=%s, name=%s, gender=%s, age=%d, email=%s, phone=%s, address=%s, hobby=%s, enrolled=%s}",
		m.ID, m.LoginID, m.Name, m.Gender, m.Age, m.Email, m.Phone, m.Address, m.Hobby, m.EnrolledAt.Format("2006-01-02"))
}

// MemberRepository defines persistence operations for members.
// Every call performs exactly one database round-trip.
type MemberRepository interface {
	// Insert persists a candidate member and returns the number of rows affected.
	// ID and EnrolledAt on the candidate are ignored.
	Insert(ctx context.Context, m *Member) (int64, error)
	SelectAll(ctx context.Context) ([]Member, error)
	// SelectByLoginID reports found=false with a nil error when no member matches.
	SelectByLoginID(ctx context.Context, loginID string) (Member, bool, error)
	SelectByNameKeyword(ctx context.Context, keyword string) ([]Member, error)
}
