package marketing

import (
	"net/http"

	"fuego/infras/otel"
	"fuego/internal/domains/marketing/model/dto"
	"fuego/internal/domains/marketing/service"
	"fuego/shared/constant"
	"fuego/shared/validator"
	"fuego/transport/http/middleware"
	"fuego/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Marketing
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Marketing, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/marketing", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Manager)
		routerGroup.Post("/copy", handler.GenerateCopy)
	})
}

// GenerateCopy produces an Instagram caption for a menu item.
// @Summary Generate marketing copy
// @Description Generate an Instagram caption for a dish in the requested tone of voice.
// @Tags Marketing
// @Accept json
// @Produce json
// @Param request body dto.GenerateCopyRequest true "Generate Copy Request"
// @Success 200 {object} response.Data[dto.GenerateCopyResponse] "Generated caption"
// @Failure 400 {object} response.Error
// @Router /v1/marketing/copy [post]
// @Security BearerAuth
func (handler *Handler) GenerateCopy(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateCopy")
	defer scope.End()

	req := dto.GenerateCopyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GenerateCopy(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate marketing copy")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
