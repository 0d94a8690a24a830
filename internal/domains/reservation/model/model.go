package model

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldCreatedAt  = "created_at"
	FieldClientName = "client_name"
	FieldPhone      = "phone"
	FieldPax        = "pax"
	FieldDate       = "date"
	FieldTime       = "time"
	FieldTableType  = "table_type"
	FieldStatus     = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Backend sources reported per call. Every response names the backend that
// actually served it; the two stores are never merged.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

const (
	DefaultPax       = 2
	DefaultTableType = "Salão Principal"

	// Ids synthesized for the local fallback store carry this prefix so they
	// can never collide with server-generated uuids.
	LocalIDPrefix = "local-"
)

// TimeSlots is the fixed set of bookable half-hour slots.
var TimeSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00", "19:30",
	"20:00", "20:30", "21:00", "21:30", "22:00", "22:30", "23:00",
}

// TableTypes is the fixed set of seating preferences.
var TableTypes = []string{
	"Salão Principal",
	"Varanda",
	"Perto da Janela",
}

var ErrInvalidPax = errors.New("pax must contain a party size")

// Reservation mirrors the remote reservations table row for row.
type Reservation struct {
	ID         string    `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	ClientName string    `db:"client_name"`
	Phone      string    `db:"phone"`
	Pax        int       `db:"pax"`
	Date       string    `db:"date"`
	Time       string    `db:"time"`
	TableType  string    `db:"table_type"`
	Status     string    `db:"status"`
}

func IsTimeSlot(value string) bool {
	return slices.Contains(TimeSlots, value)
}

func IsTableType(value string) bool {
	return slices.Contains(TableTypes, value)
}

// IsTargetStatus reports whether the value is a valid status-update target.
// Records are only ever moved out of pending, never back into it.
func IsTargetStatus(value string) bool {
	return value == StatusConfirmed || value == StatusCancelled
}

// NewLocalID returns a namespaced identifier for records persisted by the
// fallback store.
func NewLocalID() string {
	return LocalIDPrefix + uuid.NewString()
}

// IsLocalID reports whether the id was generated by the fallback store.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// FormatPax renders a party size the way the application displays it.
func FormatPax(pax int) string {
	return strconv.Itoa(pax) + " Pessoas"
}

// ParsePax extracts the integer party size from its display form. The
// conversion is lossless against FormatPax so records round-trip the remote
// store's integer column unchanged.
func ParsePax(display string) (int, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, display)

	if digits == "" {
		return 0, ErrInvalidPax
	}

	pax, err := strconv.Atoi(digits)
	if err != nil {
		return 0, ErrInvalidPax
	}

	return pax, nil
}
