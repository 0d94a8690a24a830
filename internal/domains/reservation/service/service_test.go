package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	otelmocks "fuego/infras/otel/mocks"
	"fuego/internal/domains/reservation/mocks"
	"fuego/internal/domains/reservation/model"
	"fuego/internal/domains/reservation/model/dto"
	"fuego/internal/domains/reservation/repository"
	"fuego/internal/domains/reservation/service"
	"fuego/shared/failure"
	"fuego/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errRemoteDown = errors.New("dial tcp: connection refused")

func newService(t *testing.T) (service.Reservation, *mocks.MockReservation, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReservation(ctrl)
	local := mocks.NewMockStore(ctrl)

	return service.New(repo, local, otelmocks.NewOtel()), repo, local
}

func validCreateRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		ClientName: "Maria Silva",
		Phone:      "11 99999-0000",
		Date:       "2026-09-12",
		Time:       "20:00",
		Pax:        "4 Pessoas",
		TableType:  "Varanda",
	}
}

func TestReservationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("remote insert succeeds, response echoes the stored row", func(t *testing.T) {
		svc, repo, _ := newService(t)

		stored := model.Reservation{
			ID:         "3f1c7a9e-0b6d-4e5f-9a2b-1c8d7e6f5a4b",
			CreatedAt:  timezone.Now(),
			ClientName: "Maria Silva",
			Phone:      "11 99999-0000",
			Pax:        4,
			Date:       "2026-09-12",
			Time:       "20:00",
			TableType:  "Varanda",
			Status:     model.StatusPending,
		}

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		res, err := svc.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, model.SourceRemote, res.Source)
		assert.Equal(t, stored.ID, res.Reservation.ID)
		assert.Equal(t, "4 Pessoas", res.Reservation.Pax)
		assert.Equal(t, model.StatusPending, res.Reservation.Status)
	})

	t.Run("remote insert fails, record lands in local store with namespaced id", func(t *testing.T) {
		svc, repo, local := newService(t)

		existing := dto.ReservationData{ID: "local-old", ClientName: "João", CreatedAt: 1000}

		var saved []dto.ReservationData

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, errRemoteDown)
		local.EXPECT().
			Load(gomock.Any()).
			Return([]dto.ReservationData{existing})
		local.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []dto.ReservationData) error {
				saved = records

				return nil
			})

		res, err := svc.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, model.SourceLocal, res.Source)
		assert.True(t, model.IsLocalID(res.Reservation.ID))
		assert.Equal(t, model.StatusPending, res.Reservation.Status)

		require.Len(t, saved, 2)
		assert.Equal(t, res.Reservation.ID, saved[0].ID)
		assert.Equal(t, existing.ID, saved[1].ID)
	})

	t.Run("invalid time slot is rejected before any backend call", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := validCreateRequest()
		req.Time = "20:15"

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unparseable pax is rejected before any backend call", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := validCreateRequest()
		req.Pax = "muitas"

		_, err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("both backends fail", func(t *testing.T) {
		svc, repo, local := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, errRemoteDown)
		local.EXPECT().
			Load(gomock.Any()).
			Return([]dto.ReservationData{})
		local.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))

		_, err := svc.Create(ctx, validCreateRequest())

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReservationService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("remote answers, source is remote", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any()).
			Return([]model.Reservation{
				{ID: "b", CreatedAt: timezone.Now(), Pax: 2, Status: model.StatusPending},
				{ID: "a", CreatedAt: timezone.Now().Add(-1e9), Pax: 6, Status: model.StatusConfirmed},
			}, nil)

		res, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, model.SourceRemote, res.Source)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, "b", res.Reservations[0].ID)
		assert.Equal(t, "2 Pessoas", res.Reservations[0].Pax)
	})

	t.Run("remote answers with an empty list, local store is not consulted", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any()).
			Return([]model.Reservation{}, nil)

		res, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, model.SourceRemote, res.Source)
		assert.Zero(t, res.Total)
	})

	t.Run("remote fails, local records are served newest first", func(t *testing.T) {
		svc, repo, local := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, errRemoteDown)
		local.EXPECT().
			Load(gomock.Any()).
			Return([]dto.ReservationData{
				{ID: "local-old", CreatedAt: 1000},
				{ID: "local-new", CreatedAt: 2000},
			})

		res, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, model.SourceLocal, res.Source)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, "local-new", res.Reservations[0].ID)
		assert.Equal(t, "local-old", res.Reservations[1].ID)
	})
}

func TestReservationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("remote update succeeds", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "some-id", model.StatusConfirmed).
			Return(nil)

		res, err := svc.UpdateStatus(ctx, "some-id", dto.UpdateStatusRequest{Status: model.StatusConfirmed})

		require.NoError(t, err)
		assert.Equal(t, model.SourceRemote, res.Source)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("pending cannot be a target status", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.UpdateStatus(ctx, "some-id", dto.UpdateStatusRequest{Status: model.StatusPending})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("remote fails, pending local record is updated", func(t *testing.T) {
		svc, repo, local := newService(t)

		var saved []dto.ReservationData

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "local-1", model.StatusCancelled).
			Return(errRemoteDown)
		local.EXPECT().
			Load(gomock.Any()).
			Return([]dto.ReservationData{
				{ID: "local-1", Status: model.StatusPending},
				{ID: "local-2", Status: model.StatusConfirmed},
			})
		local.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []dto.ReservationData) error {
				saved = records

				return nil
			})

		res, err := svc.UpdateStatus(ctx, "local-1", dto.UpdateStatusRequest{Status: model.StatusCancelled})

		require.NoError(t, err)
		assert.Equal(t, model.SourceLocal, res.Source)

		require.Len(t, saved, 2)
		assert.Equal(t, model.StatusCancelled, saved[0].Status)
	})

	t.Run("remote fails, confirmed local record stays confirmed", func(t *testing.T) {
		svc, repo, local := newService(t)

		var saved []dto.ReservationData

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "local-2", model.StatusCancelled).
			Return(errRemoteDown)
		local.EXPECT().
			Load(gomock.Any()).
			Return([]dto.ReservationData{{ID: "local-2", Status: model.StatusConfirmed}})
		local.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []dto.ReservationData) error {
				saved = records

				return nil
			})

		_, err := svc.UpdateStatus(ctx, "local-2", dto.UpdateStatusRequest{Status: model.StatusCancelled})

		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, saved[0].Status)
	})

	t.Run("remote fails and id is unknown locally, update is a no-op", func(t *testing.T) {
		svc, repo, local := newService(t)

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "ghost", model.StatusConfirmed).
			Return(errRemoteDown)
		local.EXPECT().
			Load(gomock.Any()).
			Return([]dto.ReservationData{})
		local.EXPECT().
			Save(gomock.Any(), []dto.ReservationData{}).
			Return(nil)

		res, err := svc.UpdateStatus(ctx, "ghost", dto.UpdateStatusRequest{Status: model.StatusConfirmed})

		require.NoError(t, err)
		assert.Equal(t, model.SourceLocal, res.Source)
	})
}

func TestReservationService_Probe(t *testing.T) {
	ctx := context.Background()

	t.Run("remote reachable", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Count(gomock.Any()).Return(12, nil)

		res := svc.Probe(ctx)

		assert.True(t, res.Online)
		assert.False(t, res.SchemaMissing)
	})

	t.Run("remote unreachable", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Count(gomock.Any()).Return(0, errRemoteDown)

		res := svc.Probe(ctx)

		assert.False(t, res.Online)
		assert.False(t, res.SchemaMissing)
	})

	t.Run("reservations table missing", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Count(gomock.Any()).
			Return(0, repository.ErrSchemaMissing)

		res := svc.Probe(ctx)

		assert.False(t, res.Online)
		assert.True(t, res.SchemaMissing)
	})
}
