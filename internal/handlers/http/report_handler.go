package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/handlers/dto"
	"github.com/holonet/holonet-backend/internal/handlers/middleware"
	"github.com/holonet/holonet-backend/internal/services"
)

// ReportHandler atende as rotas de denúncia
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler cria um novo ReportHandler
func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Create godoc
// @Summary Registra uma denúncia contra um usuário
// @Tags denuncias
// @Accept json
// @Produce json
// @Param id path string true "Id do usuário denunciado"
// @Param request body dto.ReportRequest true "Email do denunciante e motivo"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario/{id}/denuncia [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, domainerrors.ErrInvalidFields))
		return
	}

	err := h.reports.Create(c.Request.Context(), services.CreateInput{
		ReporterID:    middleware.CurrentUserID(c),
		ReporterEmail: req.Email,
		ReportedID:    c.Param("id"),
		Motivo:        req.Motivo,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary Lista as denúncias registradas, da mais recente para a mais antiga
// @Tags denuncias
// @Produce json
// @Success 200 {array} dto.ReportResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /denuncias [get]
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponses(reports))
}
