package report

import (
	"dockhub/infras/otel"
	"dockhub/internal/domains/report/model/dto"
	"dockhub/internal/domains/report/service"
	"dockhub/shared/constant"
	"dockhub/transport/http/response"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/detention", handler.GetDetention)
		routerGroup.Get("/detention/export", handler.ExportDetention)
	})
}

// GetDetention computes on-time and detention figures for check-ins between two facility days.
// @Summary Detention report
// @Tags Report
// @Produce json
// @Param from query string true "First day YYYY-MM-DD"
// @Param to query string true "Last day YYYY-MM-DD, inclusive"
// @Success 200 {object} response.Data[dto.DetentionResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/detention [get]
// @Security BearerAuth
func (handler *Handler) GetDetention(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDetention")
	defer scope.End()

	req := dto.DetentionRequest{}
	req.FromRequest(r)

	res, err := handler.service.Detention(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build detention report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ExportDetention returns the detention report as a spreadsheet.
// @Summary Export detention report
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string true "First day YYYY-MM-DD"
// @Param to query string true "Last day YYYY-MM-DD, inclusive"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/detention/export [get]
// @Security BearerAuth
func (handler *Handler) ExportDetention(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportDetention")
	defer scope.End()

	req := dto.DetentionRequest{}
	req.FromRequest(r)

	data, err := handler.service.ExportDetention(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export detention report")

		response.WithError(w, err)

		return
	}

	filename := fmt.Sprintf("detention_%s_%s.xlsx", req.From, req.To)

	response.WithFile(w, constant.ContentTypeXLSX, filename, data)
}
