package dashboard

import (
	"net/http"

	"fuego/infras/otel"
	"fuego/internal/domains/dashboard/service"
	"fuego/shared/constant"
	"fuego/transport/http/middleware"
	"fuego/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Dashboard, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Manager)
		routerGroup.Get("/", handler.RefreshDashboard)
		routerGroup.Get("/snapshot", handler.GetSnapshot)
	})
}

// RefreshDashboard re-reads connectivity and the reservation list.
// @Summary Refresh the manager dashboard
// @Description Probe the remote store and reload the reservation list, returning the combined view.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard view"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) RefreshDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshDashboard")
	defer scope.End()

	res, err := handler.service.Refresh(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh dashboard")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Dashboard refreshed from " + res.Source + " store")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetSnapshot returns the held view without touching either backend.
// @Summary Get the current dashboard snapshot
// @Description Return the dashboard view as of the last refresh, including mutations applied since.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard snapshot"
// @Router /v1/dashboard/snapshot [get]
// @Security BearerAuth
func (handler *Handler) GetSnapshot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSnapshot")
	defer scope.End()

	res := handler.service.Snapshot(ctx)

	response.WithJSON(writer, http.StatusOK, res)
}
