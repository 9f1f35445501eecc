package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marchemgmt/marche-api/docs"
	v1 "github.com/marchemgmt/marche-api/internal/api/handler/v1"
	"github.com/marchemgmt/marche-api/internal/api/middleware"
	"github.com/marchemgmt/marche-api/internal/config"
	"github.com/marchemgmt/marche-api/internal/payment"
	"github.com/marchemgmt/marche-api/internal/repository"
	"github.com/marchemgmt/marche-api/internal/repository/dao"
	"github.com/marchemgmt/marche-api/internal/service"
	"github.com/marchemgmt/marche-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	catalogHandler := s.initCatalogHandler(db)
	applicationHandler := s.initApplicationHandler(db)
	s.MountHandlers(authHandler, userHandler, catalogHandler, applicationHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	appRepo := repository.NewApplicationRepository(dao.NewApplicationDAO(db))
	svc := service.NewCatalogService(catalogRepo, appRepo)
	pricing := service.NewPricingService(catalogRepo, appRepo)
	handler := v1.NewCatalogHandler(svc, pricing)

	return handler
}

func (s *Server) initApplicationHandler(db *gorm.DB) *v1.ApplicationHandler {
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	appRepo := repository.NewApplicationRepository(dao.NewApplicationDAO(db))
	pricing := service.NewPricingService(catalogRepo, appRepo)

	var files service.FileStore
	if local, err := storage.NewLocalFileStore(s.Config.Uploads); err != nil {
		zap.L().Warn("file store unavailable, submissions will drop attachments", zap.Error(err))
	} else {
		files = local
	}

	window := time.Duration(s.Config.API.DedupeWindowSeconds) * time.Second
	svc := service.NewSubmissionService(catalogRepo, appRepo, pricing, files, window)

	gateway := payment.NewStripeGateway(s.Config.Stripe)
	payments := service.NewPaymentService(catalogRepo, pricing, gateway)

	handler := v1.NewApplicationHandler(svc, pricing, payments)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, catalogHandler *v1.CatalogHandler, applicationHandler *v1.ApplicationHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	// Public surface: what the registration form needs.
	public := s.Router.Group(basePath)
	{
		public.GET("/forms/:formID", catalogHandler.HandleGetForm)
		public.GET("/external-forms/:externalFormID", catalogHandler.HandleGetFormByExternalID)
		public.GET("/forms/:formID/date-options", catalogHandler.HandleGetDateOptions)
		public.GET("/forms/:formID/area-options", catalogHandler.HandleGetAreaOptions)
		public.GET("/forms/:formID/availability", catalogHandler.HandleGetAreaAvailability)
		public.GET("/forms/:formID/rental-items", catalogHandler.HandleListRentalItems)

		public.POST("/forms/:formID/quote", applicationHandler.HandleQuote)
		public.POST("/forms/:formID/acceptance", applicationHandler.HandleCheckAcceptance)
		public.POST("/forms/:formID/applications", applicationHandler.HandleSubmitApplication)
		public.POST("/forms/:formID/payment-intents", applicationHandler.HandleCreatePaymentIntent)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/users/:userID", userHandler.HandleGetUser)

		admin.POST("/forms", catalogHandler.HandleCreateForm)
		admin.GET("/forms", catalogHandler.HandleListForms)
		admin.PUT("/forms/:formID", catalogHandler.HandleUpdateForm)
		admin.DELETE("/forms/:formID", catalogHandler.HandleDeleteForm)

		admin.POST("/forms/:formID/dates", catalogHandler.HandleCreateDate)
		admin.GET("/forms/:formID/dates", catalogHandler.HandleListDates)
		admin.PUT("/forms/:formID/dates/:dateID", catalogHandler.HandleUpdateDate)
		admin.DELETE("/forms/:formID/dates/:dateID", catalogHandler.HandleDeleteDate)
		admin.POST("/forms/:formID/dates/reorder", catalogHandler.HandleReorderDates)

		admin.POST("/forms/:formID/areas", catalogHandler.HandleCreateArea)
		admin.GET("/forms/:formID/areas", catalogHandler.HandleListAreas)
		admin.PUT("/forms/:formID/areas/:areaID", catalogHandler.HandleUpdateArea)
		admin.DELETE("/forms/:formID/areas/:areaID", catalogHandler.HandleDeleteArea)
		admin.POST("/forms/:formID/areas/reorder", catalogHandler.HandleReorderAreas)

		admin.POST("/forms/:formID/rental-items", catalogHandler.HandleCreateRentalItem)
		admin.PUT("/forms/:formID/rental-items/:rentalID", catalogHandler.HandleUpdateRentalItem)
		admin.DELETE("/forms/:formID/rental-items/:rentalID", catalogHandler.HandleDeleteRentalItem)
		admin.POST("/forms/:formID/rental-items/reorder", catalogHandler.HandleReorderRentalItems)

		admin.GET("/forms/:formID/applications", applicationHandler.HandleListApplications)
		admin.GET("/applications/:applicationID", applicationHandler.HandleGetApplication)
		admin.DELETE("/applications/:applicationID", applicationHandler.HandleDeleteApplication)
		admin.GET("/forms/:formID/statistics", applicationHandler.HandleGetStatistics)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Marche API"
	docs.SwaggerInfo.Description = "Vendor registration API for marche and stage events."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
