package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/handlers/dto"
	"github.com/holonet/holonet-backend/internal/handlers/middleware"
	"github.com/holonet/holonet-backend/internal/services"
)

// FriendshipHandler atende as rotas de amizade
type FriendshipHandler struct {
	friendships *services.FriendshipService
}

// NewFriendshipHandler cria um novo FriendshipHandler
func NewFriendshipHandler(friendships *services.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendships: friendships}
}

// ListFriends godoc
// @Summary Lista os amigos de um usuário
// @Tags amizades
// @Produce json
// @Param id path string true "Id do usuário"
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario/{id}/amizades [get]
func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	friends, err := h.friendships.ListFriends(c.Request.Context(), c.Param("id"))
	if err != nil {
		// Qualquer falha nessa rota responde 401; os clientes dependem disso
		c.JSON(http.StatusUnauthorized, dto.Err(c, err))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(friends))
}

// Request godoc
// @Summary Envia um pedido de amizade
// @Tags amizades
// @Accept json
// @Produce json
// @Param request body dto.FriendRequestRequest true "Usuário solicitado"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario/amizade [post]
func (h *FriendshipHandler) Request(c *gin.Context) {
	var req dto.FriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, domainerrors.ErrInvalidFields))
		return
	}

	requesterID := middleware.CurrentUserID(c)
	if err := h.friendships.Request(c.Request.Context(), requesterID, req.UsuarioSolicitado); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, dto.Err(c, err))
			return
		}
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.Status(http.StatusNoContent)
}

// Respond godoc
// @Summary Aceita ou recusa um pedido de amizade
// @Tags amizades
// @Produce json
// @Param id query string true "Id da relação"
// @Param situacao query string true "A para aceitar, N para negar"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario/amizade [put]
func (h *FriendshipHandler) Respond(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.friendships.Respond(c.Request.Context(), c.Query("id"), userID, c.Query("situacao")); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove godoc
// @Summary Desfaz uma amizade ou pedido
// @Tags amizades
// @Produce json
// @Param id query string true "Id do usuário ou da relação, conforme type"
// @Param type query string true "user ou request"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario/amizade [delete]
func (h *FriendshipHandler) Remove(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.friendships.Remove(c.Request.Context(), c.Query("id"), c.Query("type"), userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPending godoc
// @Summary Lista os pedidos de amizade pendentes do usuário autenticado
// @Tags amizades
// @Produce json
// @Success 200 {array} dto.PendingRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario/amizades/pedidos [get]
func (h *FriendshipHandler) ListPending(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	pending, err := h.friendships.ListPending(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingRequestResponses(pending))
}
