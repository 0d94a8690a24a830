package model_test

import (
	"testing"

	"fuego/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func TestParsePax_RoundTrip(t *testing.T) {
	for pax := 2; pax <= 8; pax++ {
		display := model.FormatPax(pax)

		parsed, err := model.ParsePax(display)

		assert.NoError(t, err)
		assert.Equal(t, pax, parsed)
		assert.Equal(t, display, model.FormatPax(parsed))
	}
}

func TestParsePax_NoDigits(t *testing.T) {
	_, err := model.ParsePax("muitas pessoas")

	assert.ErrorIs(t, err, model.ErrInvalidPax)
}

func TestParsePax_BareNumber(t *testing.T) {
	parsed, err := model.ParsePax("4")

	assert.NoError(t, err)
	assert.Equal(t, 4, parsed)
}

func TestIsTimeSlot(t *testing.T) {
	assert.True(t, model.IsTimeSlot("12:00"))
	assert.True(t, model.IsTimeSlot("20:30"))
	assert.True(t, model.IsTimeSlot("23:00"))

	assert.False(t, model.IsTimeSlot("11:30"))
	assert.False(t, model.IsTimeSlot("23:30"))
	assert.False(t, model.IsTimeSlot("20:15"))
	assert.False(t, model.IsTimeSlot(""))
}

func TestIsTableType(t *testing.T) {
	assert.True(t, model.IsTableType("Salão Principal"))
	assert.True(t, model.IsTableType("Varanda"))
	assert.True(t, model.IsTableType("Perto da Janela"))

	assert.False(t, model.IsTableType("Mesa VIP"))
}

func TestIsTargetStatus(t *testing.T) {
	assert.True(t, model.IsTargetStatus(model.StatusConfirmed))
	assert.True(t, model.IsTargetStatus(model.StatusCancelled))

	// Terminal states are never re-entered through pending.
	assert.False(t, model.IsTargetStatus(model.StatusPending))
	assert.False(t, model.IsTargetStatus("done"))
}

func TestNewLocalID_Namespaced(t *testing.T) {
	id := model.NewLocalID()

	assert.True(t, model.IsLocalID(id))
	assert.NotEqual(t, model.NewLocalID(), id)

	// Server-issued uuids never carry the prefix.
	assert.False(t, model.IsLocalID("0b9fdb3a-4b86-4f52-b8f1-9a3a1f6a2a11"))
}
