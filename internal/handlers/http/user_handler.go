package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/holonet/holonet-backend/internal/domain/errors"
	"github.com/holonet/holonet-backend/internal/domain/ports"
	"github.com/holonet/holonet-backend/internal/handlers/dto"
	"github.com/holonet/holonet-backend/internal/handlers/middleware"
	"github.com/holonet/holonet-backend/internal/infrastructure/auth"
	"github.com/holonet/holonet-backend/internal/infrastructure/storage"
	"github.com/holonet/holonet-backend/internal/services"
)

// UserHandler atende as rotas de conta: cadastro, login, perfil, imagem,
// busca e recuperação de senha
type UserHandler struct {
	users    *services.UserService
	recovery *services.RecoveryService
	tokens   *auth.JWTService
	files    *storage.Local
	logger   ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(
	users *services.UserService,
	recovery *services.RecoveryService,
	tokens *auth.JWTService,
	files *storage.Local,
	logger ports.Logger,
) *UserHandler {
	return &UserHandler{
		users:    users,
		recovery: recovery,
		tokens:   tokens,
		files:    files,
		logger:   logger,
	}
}

// Register godoc
// @Summary Cadastra um novo usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Dados de cadastro"
// @Success 201 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /usuario [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.Err(c, domainerrors.ErrInvalidFields))
		return
	}

	user, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		Nome:       req.Nome,
		Email:      req.Email,
		Senha:      req.Senha,
		Nascimento: req.Nascimento,
	})
	if err != nil {
		// Falhas de cadastro respondem 401, não 400; os clientes dependem disso
		c.JSON(http.StatusUnauthorized, dto.Err(c, err))
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login godoc
// @Summary Autentica um usuário e emite o token de acesso
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciais"
// @Success 202 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /usuario/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.Err(c, domainerrors.ErrLoginFailed))
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Err(c, err))
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email.String())
	if err != nil {
		h.logger.Error("token issuance failed", "user_id", user.ID, "error", err)
		c.JSON(http.StatusUnauthorized, dto.Err(c, domainerrors.ErrLoginFailed))
		return
	}

	c.JSON(http.StatusAccepted, dto.LoginResponse{
		ID:    user.ID,
		Nome:  user.Nome,
		Email: user.Email.String(),
		Token: token,
	})
}

// Find godoc
// @Summary Busca um usuário por email ou id
// @Tags usuarios
// @Produce json
// @Param email query string false "Email do usuário"
// @Param id query string false "Id do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario [get]
func (h *UserHandler) Find(c *gin.Context) {
	user, err := h.users.Find(c.Request.Context(), c.Query("email"), c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}
	if user == nil {
		// Usuário inexistente não é erro nessa rota
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile godoc
// @Summary Altera nome e data de nascimento do usuário autenticado
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Dados do perfil"
// @Success 202
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, domainerrors.ErrInvalidFields))
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.users.UpdateProfile(c.Request.Context(), userID, req.Nome, req.Nascimento); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.Status(http.StatusAccepted)
}

// UploadImage godoc
// @Summary Atualiza a imagem de perfil do usuário autenticado
// @Tags usuarios
// @Accept multipart/form-data
// @Produce json
// @Param imagem formData file true "Imagem de perfil"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario/imagem [put]
func (h *UserHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("imagem")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, domainerrors.ErrFileNotFound))
		return
	}

	imagem, err := h.files.SaveUserImage(fh)
	if err != nil {
		h.logger.Error("image upload failed", "error", err)
		c.JSON(http.StatusBadRequest, dto.Err(c, domainerrors.ErrImageUpdate))
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.users.UpdateImage(c.Request.Context(), userID, imagem); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary Remove a conta do usuário autenticado
// @Tags usuarios
// @Produce json
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuario [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.users.Delete(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.Status(http.StatusNoContent)
}

// Search godoc
// @Summary Busca usuários pelo nome
// @Tags usuarios
// @Produce json
// @Param nome query string false "Trecho do nome"
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /usuarios [get]
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.users.SearchByName(c.Request.Context(), c.Query("nome"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(c, err))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// RequestRecoveryCode godoc
// @Summary Envia um código de recuperação de senha por email
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.RecoveryCodeRequest true "Email da conta"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Router /usuario/senha/codigo [post]
func (h *UserHandler) RequestRecoveryCode(c *gin.Context) {
	var req dto.RecoveryCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.Err(c, domainerrors.ErrInvalidFields))
		return
	}

	if err := h.recovery.RequestCode(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusUnauthorized, dto.Err(c, err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ResetPassword godoc
// @Summary Troca a senha usando o código de recuperação
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email, código e nova senha"
// @Success 202
// @Failure 401 {object} dto.ErrorResponse
// @Router /usuario/senha [put]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, dto.Err(c, domainerrors.ErrInvalidFields))
		return
	}

	if err := h.recovery.ResetPassword(c.Request.Context(), req.Email, req.Codigo, req.Senha); err != nil {
		c.JSON(http.StatusUnauthorized, dto.Err(c, err))
		return
	}

	c.Status(http.StatusAccepted)
}

// isNotFound distingue ausência de usuário dos demais erros de domínio
func isNotFound(err error) bool {
	return errors.Is(err, domainerrors.ErrUserNotFound)
}
