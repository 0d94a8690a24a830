package dto

import (
	"fmt"
	"slices"
	"time"

	"fuego/internal/domains/reservation/model"
	"fuego/shared/timezone"
)

type CreateReservationRequest struct {
	ClientName string `json:"clientName" validate:"required,max=100"`
	Phone      string `json:"phone"      validate:"required,max=20"`
	Date       string `json:"date"       validate:"required,datetime=2006-01-02"`
	Time       string `json:"time"       validate:"required"`
	Pax        string `json:"pax"        validate:"omitempty,max=20"`
	TableType  string `json:"tableType"  validate:"omitempty,max=50"`
}

func (c *CreateReservationRequest) ToModel() (model.Reservation, error) {
	if !model.IsTimeSlot(c.Time) {
		return model.Reservation{}, fmt.Errorf("time must be one of the half-hour slots between %s and %s", model.TimeSlots[0], model.TimeSlots[len(model.TimeSlots)-1])
	}

	tableType := c.TableType
	if tableType == "" {
		tableType = model.DefaultTableType
	}

	if !model.IsTableType(tableType) {
		return model.Reservation{}, fmt.Errorf("tableType must be one of %v", model.TableTypes)
	}

	pax := model.DefaultPax

	if c.Pax != "" {
		parsed, err := model.ParsePax(c.Pax)
		if err != nil {
			return model.Reservation{}, err
		}

		pax = parsed
	}

	return model.Reservation{
		ClientName: c.ClientName,
		Phone:      c.Phone,
		Pax:        pax,
		Date:       c.Date,
		Time:       c.Time,
		TableType:  tableType,
		Status:     model.StatusPending,
		CreatedAt:  timezone.Now(),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

// ReservationData is the application-facing record shape: camelCase names,
// pax in display form, createdAt in epoch milliseconds. It is also the layout
// persisted by the local fallback store.
type ReservationData struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Phone      string `json:"phone"`
	Pax        string `json:"pax"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	TableType  string `json:"tableType"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"createdAt"`
}

func (r *ReservationData) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.ClientName = mod.ClientName
	r.Phone = mod.Phone
	r.Pax = model.FormatPax(mod.Pax)
	r.Date = mod.Date
	r.Time = mod.Time
	r.TableType = mod.TableType
	r.Status = mod.Status
	r.CreatedAt = mod.CreatedAt.UnixMilli()
}

func (r *ReservationData) ToModel() (model.Reservation, error) {
	pax, err := model.ParsePax(r.Pax)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:         r.ID,
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Pax:        pax,
		Date:       r.Date,
		Time:       r.Time,
		TableType:  r.TableType,
		Status:     r.Status,
		CreatedAt:  time.UnixMilli(r.CreatedAt).In(timezone.GetLocation()),
	}, nil
}

type ReservationResponse struct {
	Reservation ReservationData `json:"reservation"`
	Source      string          `json:"source"`
}

type ListReservationsResponse struct {
	Source       string            `json:"source"`
	Total        int               `json:"total"`
	Reservations []ReservationData `json:"reservations"`
}

func (r *ListReservationsResponse) FromModels(models []model.Reservation, source string) {
	r.Source = source
	r.Total = len(models)

	r.Reservations = make([]ReservationData, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// FromRecords fills the response from already application-shaped records,
// newest first.
func (r *ListReservationsResponse) FromRecords(records []ReservationData, source string) {
	SortNewestFirst(records)

	r.Source = source
	r.Total = len(records)
	r.Reservations = records
}

type UpdateStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Source string `json:"source"`
}

type ProbeResponse struct {
	Online        bool `json:"online"`
	SchemaMissing bool `json:"schemaMissing"`
}

// SortNewestFirst orders records by creation time descending, the only
// ordering the presentation layer understands.
func SortNewestFirst(records []ReservationData) {
	slices.SortStableFunc(records, func(a, b ReservationData) int {
		switch {
		case a.CreatedAt > b.CreatedAt:
			return -1
		case a.CreatedAt < b.CreatedAt:
			return 1
		default:
			return 0
		}
	})
}
