package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	"github.com/holonet/holonet-backend/internal/domain/entities"
	"github.com/holonet/holonet-backend/internal/domain/repositories"
	"github.com/holonet/holonet-backend/internal/handlers/middleware"
	"github.com/holonet/holonet-backend/internal/infrastructure/auth"
	"github.com/holonet/holonet-backend/internal/infrastructure/i18n"
	"github.com/holonet/holonet-backend/internal/infrastructure/storage"
	"github.com/holonet/holonet-backend/internal/realtime"
)

// RouterDeps agrupa as dependências do roteador HTTP
type RouterDeps struct {
	Env            string
	AllowedOrigins []string
	SwaggerEnabled bool

	I18n   *i18n.Service
	Tokens *auth.JWTService
	Users  repositories.UserRepository
	Files  *storage.Local
	Hub    *realtime.Hub

	UserHandler       *UserHandler
	FriendshipHandler *FriendshipHandler
	CommunityHandler  *CommunityHandler
	ReportHandler     *ReportHandler
}

// NewRouter monta o roteador com middlewares, rotas públicas e protegidas
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Language(deps.I18n))
	router.Use(middleware.CORS(deps.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": deps.Env})
	})

	// Imagens públicas de perfil e de comunidade
	router.Static("/storage/users", deps.Files.UsersDir())
	router.Static("/storage/communities", deps.Files.CommunitiesDir())

	if deps.SwaggerEnabled {
		router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))
	}

	// Rotas públicas
	router.POST("/usuario", deps.UserHandler.Register)
	router.POST("/usuario/login", deps.UserHandler.Login)
	router.POST("/usuario/senha/codigo", deps.UserHandler.RequestRecoveryCode)
	router.PUT("/usuario/senha", deps.UserHandler.ResetPassword)

	// Chat: upgrade compartilha a política de origem do REST
	router.GET("/ws", deps.Hub.Handler(deps.AllowedOrigins))

	// Rotas protegidas por token
	authed := router.Group("/")
	authed.Use(middleware.Auth(deps.Tokens, deps.Users))
	{
		authed.GET("/usuario", deps.UserHandler.Find)
		authed.PUT("/usuario", deps.UserHandler.UpdateProfile)
		authed.DELETE("/usuario", deps.UserHandler.Delete)
		authed.PUT("/usuario/imagem", deps.UserHandler.UploadImage)
		authed.GET("/usuarios", deps.UserHandler.Search)

		authed.GET("/usuario/:id/amizades", deps.FriendshipHandler.ListFriends)
		authed.GET("/usuario/amizades/pedidos", deps.FriendshipHandler.ListPending)
		authed.POST("/usuario/amizade", deps.FriendshipHandler.Request)
		authed.PUT("/usuario/amizade", deps.FriendshipHandler.Respond)
		authed.DELETE("/usuario/amizade", deps.FriendshipHandler.Remove)

		authed.GET("/usuario/:id/comunidades", deps.CommunityHandler.ListUserCommunities)

		authed.POST("/usuario/:id/denuncia", deps.ReportHandler.Create)

		authed.GET("/denuncias",
			middleware.RequirePermission(entities.PermissionReportRead),
			deps.ReportHandler.List,
		)
	}

	return router
}
