package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dashboard=MockDashboardService

import (
	"context"
	"fmt"
	"sync"

	"fuego/infras/otel"
	"fuego/internal/domains/dashboard/model/dto"
	reservationdto "fuego/internal/domains/reservation/model/dto"
	reservationservice "fuego/internal/domains/reservation/service"
	"fuego/shared/constant"
	"fuego/shared/timezone"
)

const entityName = "dashboard"

// Dashboard keeps the manager panel's view of the reservation list. Refresh
// re-reads both backends' truth through the reservation facade; Apply methods
// fold a just-performed mutation into the held view so the panel reflects it
// without a refetch.
type Dashboard interface {
	Refresh(ctx context.Context) (dto.DashboardResponse, error)
	Snapshot(ctx context.Context) dto.DashboardResponse
	ApplyCreate(ctx context.Context, record reservationdto.ReservationData)
	ApplyStatusChange(ctx context.Context, id, status string)
}

type dashboardServiceImpl struct {
	reservations reservationservice.Reservation
	otel         otel.Otel

	mu   sync.RWMutex
	view dto.DashboardResponse
}

func New(reservations reservationservice.Reservation, otel otel.Otel) Dashboard {
	return &dashboardServiceImpl{
		reservations: reservations,
		otel:         otel,
	}
}

func (s *dashboardServiceImpl) Refresh(ctx context.Context) (dto.DashboardResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.Refresh", constant.OtelServiceScopeName, entityName))
	defer scope.End()

	// The probe and the list are independent reads. A probe that reports
	// offline does not stop the list call; the list decides its own backend.
	probe := s.reservations.Probe(ctx)

	list, err := s.reservations.List(ctx)
	if err != nil {
		scope.TraceError(err)

		return dto.DashboardResponse{}, err
	}

	view := dto.DashboardResponse{
		Online:        probe.Online,
		SchemaMissing: probe.SchemaMissing,
		Source:        list.Source,
		RefreshedAt:   timezone.Now().UnixMilli(),
		Total:         list.Total,
		Reservations:  list.Reservations,
	}

	s.mu.Lock()
	s.view = view
	s.mu.Unlock()

	return view, nil
}

func (s *dashboardServiceImpl) Snapshot(ctx context.Context) dto.DashboardResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.Snapshot", constant.OtelServiceScopeName, entityName))
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.view
	view.Reservations = make([]reservationdto.ReservationData, len(s.view.Reservations))
	copy(view.Reservations, s.view.Reservations)

	return view
}

func (s *dashboardServiceImpl) ApplyCreate(ctx context.Context, record reservationdto.ReservationData) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.ApplyCreate", constant.OtelServiceScopeName, entityName))
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Reservations = append([]reservationdto.ReservationData{record}, s.view.Reservations...)
	reservationdto.SortNewestFirst(s.view.Reservations)
	s.view.Total = len(s.view.Reservations)
}

func (s *dashboardServiceImpl) ApplyStatusChange(ctx context.Context, id, status string) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.ApplyStatusChange", constant.OtelServiceScopeName, entityName))
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.view.Reservations {
		if s.view.Reservations[i].ID == id {
			s.view.Reservations[i].Status = status
		}
	}
}
