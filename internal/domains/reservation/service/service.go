package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"errors"
	"fmt"

	"fuego/infras/otel"
	"fuego/internal/domains/reservation/localstore"
	"fuego/internal/domains/reservation/model"
	"fuego/internal/domains/reservation/model/dto"
	"fuego/internal/domains/reservation/repository"
	"fuego/shared/constant"
	"fuego/shared/failure"

	"github.com/rs/zerolog/log"
)

// Reservation fronts the two persistence backends. Every operation tries the
// remote store first and falls back to the local store on any remote failure;
// callers learn which backend served them from the Source field on each
// response, never from shared state.
type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	List(ctx context.Context) (dto.ListReservationsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.UpdateStatusResponse, error)
	Probe(ctx context.Context) dto.ProbeResponse
}

type reservationServiceImpl struct {
	repository repository.Reservation
	local      localstore.Store
	otel       otel.Otel
}

func New(
	repository repository.Reservation,
	local localstore.Store,
	otel otel.Otel,
) Reservation {
	return &reservationServiceImpl{
		repository: repository,
		local:      local,
		otel:       otel,
	}
}

func (s *reservationServiceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.Create", constant.OtelServiceScopeName, model.EntityName))
	defer scope.End()

	// Validation happens before either backend is touched, so a bad request
	// never produces a half-written record anywhere.
	mod, err := req.ToModel()
	if err != nil {
		return dto.ReservationResponse{}, failure.BadRequest(err)
	}

	inserted, err := s.repository.Insert(ctx, mod)
	if err == nil {
		var record dto.ReservationData
		record.FromModel(inserted)

		return dto.ReservationResponse{Reservation: record, Source: model.SourceRemote}, nil
	}

	log.Warn().Err(err).Msg("Remote insert failed, persisting reservation to local store")
	scope.TraceError(err)

	mod.ID = model.NewLocalID()

	var record dto.ReservationData
	record.FromModel(mod)

	records := append([]dto.ReservationData{record}, s.local.Load(ctx)...)
	if err := s.local.Save(ctx, records); err != nil {
		log.Error().Err(err).Msg("Failed persisting reservation to local store")
		scope.TraceError(err)

		return dto.ReservationResponse{}, failure.InternalError(errors.New("failed to save reservation"))
	}

	return dto.ReservationResponse{Reservation: record, Source: model.SourceLocal}, nil
}

func (s *reservationServiceImpl) List(ctx context.Context) (dto.ListReservationsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.List", constant.OtelServiceScopeName, model.EntityName))
	defer scope.End()

	var res dto.ListReservationsResponse

	models, err := s.repository.GetAll(ctx)
	if err == nil {
		// An empty remote list is a valid remote answer, not a reason to
		// consult the local store.
		res.FromModels(models, model.SourceRemote)

		return res, nil
	}

	log.Warn().Err(err).Msg("Remote list failed, serving reservations from local store")
	scope.TraceError(err)

	res.FromRecords(s.local.Load(ctx), model.SourceLocal)

	return res, nil
}

func (s *reservationServiceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.UpdateStatusResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.UpdateStatus", constant.OtelServiceScopeName, model.EntityName))
	defer scope.End()

	if !model.IsTargetStatus(req.Status) {
		return dto.UpdateStatusResponse{}, failure.BadRequestFromString("status must be confirmed or cancelled")
	}

	err := s.repository.UpdateStatus(ctx, id, req.Status)
	if err == nil {
		return dto.UpdateStatusResponse{ID: id, Status: req.Status, Source: model.SourceRemote}, nil
	}

	log.Warn().Err(err).Msg("Remote status update failed, applying to local store")
	scope.TraceError(err)

	// Read-modify-write on the whole blob. An unknown id, or a record that
	// already left pending, makes this a no-op.
	records := s.local.Load(ctx)
	for i := range records {
		if records[i].ID == id && records[i].Status == model.StatusPending {
			records[i].Status = req.Status
		}
	}

	if err := s.local.Save(ctx, records); err != nil {
		log.Error().Err(err).Msg("Failed persisting status update to local store")
		scope.TraceError(err)

		return dto.UpdateStatusResponse{}, failure.InternalError(errors.New("failed to update reservation status"))
	}

	return dto.UpdateStatusResponse{ID: id, Status: req.Status, Source: model.SourceLocal}, nil
}

// Probe reports whether the remote store currently answers. The result is
// advisory: callers use it to render connection banners, never to decide
// which backend a later call should use.
func (s *reservationServiceImpl) Probe(ctx context.Context) dto.ProbeResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s.Probe", constant.OtelServiceScopeName, model.EntityName))
	defer scope.End()

	_, err := s.repository.Count(ctx)
	if err == nil {
		return dto.ProbeResponse{Online: true}
	}

	log.Warn().Err(err).Msg("Remote store probe failed")
	scope.TraceError(err)

	return dto.ProbeResponse{
		Online:        false,
		SchemaMissing: errors.Is(err, repository.ErrSchemaMissing),
	}
}
