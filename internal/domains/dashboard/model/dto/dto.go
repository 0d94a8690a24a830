package dto

import (
	reservation "fuego/internal/domains/reservation/model/dto"
)

// DashboardResponse is the manager panel view: connectivity banner state plus
// the reservation list as of the last refresh, with local mutations applied
// in place.
type DashboardResponse struct {
	Online        bool                          `json:"online"`
	SchemaMissing bool                          `json:"schemaMissing"`
	Source        string                        `json:"source"`
	RefreshedAt   int64                         `json:"refreshedAt"`
	Total         int                           `json:"total"`
	Reservations  []reservation.ReservationData `json:"reservations"`
}
