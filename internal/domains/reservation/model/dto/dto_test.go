package dto_test

import (
	"testing"
	"time"

	"fuego/internal/domains/reservation/model"
	"fuego/internal/domains/reservation/model/dto"
	"fuego/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		ClientName: "Maria Silva",
		Phone:      "(11) 99999-9999",
		Date:       "2025-02-01",
		Time:       "20:00",
		Pax:        "4 Pessoas",
		TableType:  "Varanda",
	}

	mod, err := req.ToModel()

	assert.NoError(t, err)
	assert.Empty(t, mod.ID, "expected id assignment to be deferred to the persisting store")
	assert.Equal(t, req.ClientName, mod.ClientName)
	assert.Equal(t, req.Phone, mod.Phone)
	assert.Equal(t, 4, mod.Pax)
	assert.Equal(t, "2025-02-01", mod.Date)
	assert.Equal(t, "20:00", mod.Time)
	assert.Equal(t, "Varanda", mod.TableType)
	assert.Equal(t, model.StatusPending, mod.Status)
	assert.False(t, mod.CreatedAt.IsZero())
}

func TestCreateReservationRequest_ToModel_Defaults(t *testing.T) {
	req := dto.CreateReservationRequest{
		ClientName: "João",
		Phone:      "11999999999",
		Date:       "2025-02-01",
		Time:       "12:30",
	}

	mod, err := req.ToModel()

	assert.NoError(t, err)
	assert.Equal(t, model.DefaultPax, mod.Pax)
	assert.Equal(t, model.DefaultTableType, mod.TableType)
}

func TestCreateReservationRequest_ToModel_InvalidTimeSlot(t *testing.T) {
	req := dto.CreateReservationRequest{
		ClientName: "João",
		Phone:      "11999999999",
		Date:       "2025-02-01",
		Time:       "20:15",
	}

	_, err := req.ToModel()

	assert.Error(t, err)
}

func TestCreateReservationRequest_ToModel_InvalidTableType(t *testing.T) {
	req := dto.CreateReservationRequest{
		ClientName: "João",
		Phone:      "11999999999",
		Date:       "2025-02-01",
		Time:       "20:00",
		TableType:  "Mesa VIP",
	}

	_, err := req.ToModel()

	assert.Error(t, err)
}

func TestReservationData_RoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 2, 1, 19, 45, 0, 0, timezone.GetLocation())
	mod := model.Reservation{
		ID:         "0b9fdb3a-4b86-4f52-b8f1-9a3a1f6a2a11",
		ClientName: "Maria Silva",
		Phone:      "(11) 99999-9999",
		Pax:        2,
		Date:       "2025-02-01",
		Time:       "20:00",
		TableType:  "Salão Principal",
		Status:     model.StatusPending,
		CreatedAt:  createdAt,
	}

	var record dto.ReservationData
	record.FromModel(mod)

	assert.Equal(t, "2 Pessoas", record.Pax)
	assert.Equal(t, createdAt.UnixMilli(), record.CreatedAt)

	back, err := record.ToModel()

	assert.NoError(t, err)
	assert.Equal(t, mod.ID, back.ID)
	assert.Equal(t, mod.Pax, back.Pax)
	assert.Equal(t, mod.Status, back.Status)
	assert.True(t, mod.CreatedAt.Equal(back.CreatedAt))
}

func TestListReservationsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	models := []model.Reservation{
		{ID: "a", ClientName: "Ana", Pax: 2, Status: model.StatusPending, CreatedAt: now},
		{ID: "b", ClientName: "Bruno", Pax: 5, Status: model.StatusConfirmed, CreatedAt: now.Add(-time.Hour)},
	}

	var res dto.ListReservationsResponse
	res.FromModels(models, "remote")

	assert.Equal(t, "remote", res.Source)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "a", res.Reservations[0].ID)
	assert.Equal(t, "5 Pessoas", res.Reservations[1].Pax)
}

func TestSortNewestFirst(t *testing.T) {
	records := []dto.ReservationData{
		{ID: "old", CreatedAt: 1000},
		{ID: "new", CreatedAt: 3000},
		{ID: "mid", CreatedAt: 2000},
	}

	dto.SortNewestFirst(records)

	assert.Equal(t, []string{"new", "mid", "old"}, []string{records[0].ID, records[1].ID, records[2].ID})
}
