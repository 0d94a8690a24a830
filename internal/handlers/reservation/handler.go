package reservation

import (
	"net/http"

	"fuego/infras/otel"
	dashboardservice "fuego/internal/domains/dashboard/service"
	"fuego/internal/domains/reservation/model/dto"
	"fuego/internal/domains/reservation/service"
	"fuego/shared/constant"
	"fuego/shared/validator"
	"fuego/transport/http/middleware"
	"fuego/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Reservation
	dashboard dashboardservice.Dashboard
	auth      middleware.Auth
	otel      otel.Otel
}

func New(
	service service.Reservation,
	dashboard dashboardservice.Dashboard,
	auth middleware.Auth,
	otel otel.Otel,
) Handler {
	return Handler{
		service:   service,
		dashboard: dashboard,
		auth:      auth,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		// Guests book and probe without a session.
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/probe", handler.ProbeBackend)

		routerGroup.Group(func(managerGroup chi.Router) {
			managerGroup.Use(handler.auth.Manager)
			managerGroup.Get("/", handler.GetReservations)
			managerGroup.Patch("/{id}/status", handler.UpdateReservationStatus)
		})
	})
}

// CreateReservation books a table for a guest.
// @Summary Create a new reservation
// @Description Book a table. The reservation is stored remotely when the hosted database answers, locally otherwise; the response names the backend that served it.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	handler.dashboard.ApplyCreate(ctx, res.Reservation)

	scope.AddEvent("Reservation created via " + res.Source + " store")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetReservations lists every reservation, newest first.
// @Summary List reservations
// @Description Retrieve all reservations from whichever backend currently answers, newest first.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ListReservationsResponse] "List of reservations"
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reservations")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservations listed from " + res.Source + " store")

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateReservationStatus confirms or cancels a reservation.
// @Summary Update reservation status
// @Description Move a pending reservation to confirmed or cancelled. Terminal statuses never change again.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.UpdateStatusResponse] "Status updated"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation status")

		response.WithError(writer, err)

		return
	}

	handler.dashboard.ApplyStatusChange(ctx, res.ID, res.Status)

	scope.AddEvent("Reservation status updated via " + res.Source + " store")

	response.WithJSON(writer, http.StatusOK, res)
}

// ProbeBackend reports remote store connectivity.
// @Summary Probe the remote store
// @Description Check whether the hosted database currently answers. The result is advisory and drives connection banners only.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ProbeResponse] "Connectivity state"
// @Router /v1/reservations/probe [get]
func (handler *Handler) ProbeBackend(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProbeBackend")
	defer scope.End()

	res := handler.service.Probe(ctx)

	response.WithJSON(writer, http.StatusOK, res)
}
