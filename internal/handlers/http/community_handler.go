package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/holonet/holonet-backend/internal/handlers/dto"
	"github.com/holonet/holonet-backend/internal/services"
)

// CommunityHandler atende as rotas de comunidades
type CommunityHandler struct {
	communities *services.CommunityService
}

// NewCommunityHandler cria um novo CommunityHandler
func NewCommunityHandler(communities *services.CommunityService) *CommunityHandler {
	return &CommunityHandler{communities: communities}
}

// ListUserCommunities godoc
// @Summary Lista as comunidades das quais um usuário participa
// @Tags comunidades
// @Produce json
// @Param id path string true "Id do usuário"
// @Success 200 {array} dto.CommunityResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario/{id}/comunidades [get]
func (h *CommunityHandler) ListUserCommunities(c *gin.Context) {
	communities, err := h.communities.ListUserCommunities(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, dto.Err(c, err))
			return
		}
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.JSON(http.StatusOK, dto.ToCommunityResponses(communities))
}
