package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	"github.com/BruksfildServices01/property-booking/internal/auth"
	"github.com/BruksfildServices01/property-booking/internal/config"
	domainBooking "github.com/BruksfildServices01/property-booking/internal/domain/booking"
	domainImage "github.com/BruksfildServices01/property-booking/internal/domain/image"
	domainUser "github.com/BruksfildServices01/property-booking/internal/domain/user"
	"github.com/BruksfildServices01/property-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/property-booking/internal/infra/repository"
	"github.com/BruksfildServices01/property-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/property-booking/internal/usecase/booking"
	ucCommodity "github.com/BruksfildServices01/property-booking/internal/usecase/commodity"
	ucEstablishment "github.com/BruksfildServices01/property-booking/internal/usecase/establishment"
	ucImage "github.com/BruksfildServices01/property-booking/internal/usecase/image"
	ucUser "github.com/BruksfildServices01/property-booking/internal/usecase/user"
)

// Deps are the long lived services built in main. Events may be nil when
// no broker is configured.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config

	Tokens      *auth.JWT
	ResetTokens domainUser.ResetTokenStore
	MailQueue   ucUser.MailQueue

	Audit       *audit.Dispatcher
	AuditLogger *audit.Logger

	Storage domainImage.BlobStorage
	Encoder domainImage.Encoder
	Events  domainBooking.EventPublisher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	establishmentRepo := infraRepo.NewEstablishmentGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	commodityRepo := infraRepo.NewCommodityGormRepository(d.DB)
	imageRepo := infraRepo.NewImageGormRepository(d.DB)

	commodityStore := struct {
		*infraRepo.EstablishmentGormRepository
		*infraRepo.CommodityGormRepository
	}{establishmentRepo, commodityRepo}

	imageStore := struct {
		*infraRepo.EstablishmentGormRepository
		*infraRepo.ImageGormRepository
	}{establishmentRepo, imageRepo}

	// ======================================================
	// 🧠 USE CASES: USERS
	// ======================================================
	registerUC := ucUser.NewRegister(userRepo, d.Tokens)
	loginUC := ucUser.NewLogin(userRepo, d.Tokens)
	getProfileUC := ucUser.NewGetProfile(userRepo)
	updateProfileUC := ucUser.NewUpdateProfile(userRepo)

	requestResetUC := ucUser.NewRequestPasswordReset(
		userRepo,
		d.ResetTokens,
		d.MailQueue,
		ucUser.PasswordResetConfig{
			TTL:    d.Config.PasswordResetTTL,
			From:   d.Config.MailConfig.From,
			AppURL: d.Config.AppURL,
		},
	)
	resetPasswordUC := ucUser.NewResetPassword(userRepo, d.ResetTokens, d.Audit)

	// ======================================================
	// 🧠 USE CASES: ESTABLISHMENTS
	// ======================================================
	createEstablishmentUC := ucEstablishment.NewCreateEstablishment(establishmentRepo, d.Audit)
	updateEstablishmentUC := ucEstablishment.NewUpdateEstablishment(establishmentRepo, d.Audit)
	getEstablishmentUC := ucEstablishment.NewGetEstablishment(establishmentRepo)
	listEstablishmentsUC := ucEstablishment.NewListEstablishments(establishmentRepo)
	listOwnerEstablishmentsUC := ucEstablishment.NewListOwnerEstablishments(establishmentRepo)

	handleCommoditiesUC := ucCommodity.NewHandleCommodities(commodityStore, d.Audit)

	uploadImagesUC := ucImage.NewUploadImages(imageStore, d.Storage, d.Encoder, d.Audit)
	deleteImagesUC := ucImage.NewDeleteImages(imageStore, d.Storage, d.Audit)

	// ======================================================
	// 🧠 USE CASES: BOOKINGS
	// ======================================================
	createBookedDateUC := ucBooking.NewCreateBookedDate(
		bookingRepo,
		bookingRepo,
		bookingRepo,
		d.Audit,
		d.Events,
	)
	listBookedDatesUC := ucBooking.NewListUserBookedDates(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, requestResetUC, resetPasswordUC)
	meHandler := handlers.NewMeHandler(getProfileUC, updateProfileUC)

	establishmentHandler := handlers.NewEstablishmentHandler(
		createEstablishmentUC,
		updateEstablishmentUC,
		getEstablishmentUC,
		listEstablishmentsUC,
		listOwnerEstablishmentsUC,
	)
	commodityHandler := handlers.NewCommodityHandler(handleCommoditiesUC)
	imageHandler := handlers.NewImageHandler(uploadImagesUC, deleteImagesUC)
	bookingHandler := handlers.NewBookingHandler(createBookedDateUC, listBookedDatesUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(handlers.RouteNotFound)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/password/forgot", authHandler.ForgotPassword)
		api.POST("/auth/password/reset", authHandler.ResetPassword)

		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/establishments", establishmentHandler.List)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Tokens))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/establishments", establishmentHandler.ListMine)
			secured.GET("/establishments/:id", establishmentHandler.Get)
			secured.POST("/establishments", establishmentHandler.Create)
			secured.PATCH("/establishments/:id", establishmentHandler.Update)

			secured.PUT("/establishments/:id/commodities", commodityHandler.Handle)

			secured.POST("/establishments/:id/images", imageHandler.Upload)
			secured.DELETE("/establishments/:id/images", imageHandler.Delete)

			// ------------------------------
			// BOOKED DATES
			// ------------------------------
			secured.POST("/booked-dates", bookingHandler.Create)
			secured.GET("/me/booked-dates", bookingHandler.ListMine)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
