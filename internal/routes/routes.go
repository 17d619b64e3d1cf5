package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/ai"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/drafts"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/realtime"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/stats"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	ucAdmin "github.com/BruksfildServices01/barbershop-booking/internal/usecase/admin"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
	ucListing "github.com/BruksfildServices01/barbershop-booking/internal/usecase/listing"
	ucProfile "github.com/BruksfildServices01/barbershop-booking/internal/usecase/profile"
	ucShop "github.com/BruksfildServices01/barbershop-booking/internal/usecase/shop"
)

type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Config  *config.Config
	Log     *logger.Logger
	Metrics *metrics.Metrics
}

// RegisterRoutes monta a API e devolve a função que encerra os workers.
func RegisterRoutes(r *gin.Engine, d Deps) (func(), error) {
	cfg := d.Config
	log := d.Log

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	hub := realtime.NewHub(d.Redis, log)

	shopRepo := infraRepo.NewShopGormRepository(d.DB, hub)
	profileRepo := infraRepo.NewProfileGormRepository(d.DB, hub)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB, hub)
	favoriteRepo := infraRepo.NewFavoriteGormRepository(d.DB, hub)

	draftStore := drafts.NewRedisStore(d.Redis, cfg.BookingDraftTTL)

	var bucket *storage.Bucket
	if cfg.StorageEnabled() {
		bucket = storage.New(storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		log.Warn().Msg("storage credentials missing, uploads disabled")
	}

	assistant := ai.NewAssistant(
		ai.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel),
		ai.NewNominatim(cfg.GeocoderURL),
		cfg.DefaultLocation,
		log,
	)

	auditStore := audit.NewStore(d.DB)
	auditDispatcher := audit.NewDispatcher(auditStore, log)

	tokens := auth.NewTokens(cfg.JWTSecret)
	clock := timezone.NewClock(cfg.Timezone)

	statsService := stats.New(profileRepo, shopRepo, appointmentRepo, d.Metrics, log)
	if err := statsService.Start(cfg.StatsRefresh); err != nil {
		auditDispatcher.Close()
		return nil, err
	}

	shutdown := func() {
		statsService.Stop()
		auditDispatcher.Close()
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	accounts := ucProfile.NewAccounts(profileRepo, tokens, cfg.VerifyEmailDomain)
	me := ucProfile.NewMe(profileRepo, bucket)

	browse := ucListing.NewBrowse(shopRepo, favoriteRepo)

	wizard := ucBooking.NewWizard(shopRepo, draftStore, clock)
	confirm := ucBooking.NewConfirmBooking(
		shopRepo,
		draftStore,
		appointmentRepo,
		auditDispatcher,
		d.Metrics,
		log,
		clock,
	)

	listMine := ucAppointment.NewListMine(appointmentRepo)
	cancelMine := ucAppointment.NewCancelMine(appointmentRepo, auditDispatcher)
	notifications := ucAppointment.NewListNotifications(appointmentRepo)
	listConsole := ucAppointment.NewListConsole(appointmentRepo, profileRepo)
	setStatus := ucAppointment.NewSetStatus(appointmentRepo, shopRepo, auditDispatcher)

	listShops := ucShop.NewListConsoleShops(shopRepo)
	saveShop := ucShop.NewSaveShop(shopRepo, bucket, auditDispatcher, log)
	deleteShop := ucShop.NewDeleteShop(shopRepo, auditDispatcher)
	services := ucShop.NewManageServices(shopRepo, auditDispatcher)

	users := ucAdmin.NewUsers(profileRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accounts, log)
	meHandler := handlers.NewMeHandler(me, listMine, cancelMine, notifications, browse, log)
	barbershopHandler := handlers.NewBarbershopHandler(browse, log)
	bookingHandler := handlers.NewBookingHandler(wizard, confirm, log)
	realtimeHandler := handlers.NewRealtimeHandler(hub, shopRepo, log)
	assistantHandler := handlers.NewAssistantHandler(assistant)

	adminShopHandler := handlers.NewAdminShopHandler(listShops, saveShop, deleteShop, services, log)
	appointmentHandler := handlers.NewAppointmentHandler(listConsole, setStatus, log)
	adminUserHandler := handlers.NewAdminUserHandler(users, statsService, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditStore, log)

	requireAuth := middleware.AuthMiddleware(tokens, profileRepo)
	optionalAuth := middleware.OptionalAuth(tokens, profileRepo)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 API PÚBLICA (sessão opcional)
		// ------------------------------
		public := api.Group("/")
		public.Use(optionalAuth)
		{
			public.GET("/shops", barbershopHandler.List)
			public.GET("/shops/:id", barbershopHandler.Get)
			public.GET("/shops/:id/map", barbershopHandler.Map)

			public.POST("/bookings", bookingHandler.Start)
			public.GET("/bookings/:id", bookingHandler.Get)
			public.PUT("/bookings/:id/service", bookingHandler.SelectService)
			public.PUT("/bookings/:id/professional", bookingHandler.SelectProfessional)
			public.PUT("/bookings/:id/month", bookingHandler.ShowMonth)
			public.PUT("/bookings/:id/date", bookingHandler.SelectDate)
			public.PUT("/bookings/:id/time", bookingHandler.SelectTime)
			public.POST("/bookings/:id/next", bookingHandler.Next)
			public.POST("/bookings/:id/back", bookingHandler.Back)
			public.POST("/bookings/:id/confirm", bookingHandler.Confirm)

			public.GET("/realtime/:table", realtimeHandler.Stream)

			public.GET("/advice", assistantHandler.Advice)
			public.GET("/geo/reverse", assistantHandler.Reverse)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(requireAuth)
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			secured.GET("/me/appointments", meHandler.ListAppointments)
			secured.PATCH("/me/appointments/:id/cancel", meHandler.CancelAppointment)
			secured.GET("/me/notifications", meHandler.Notifications)

			secured.GET("/me/favorites", meHandler.Favorites)
			secured.POST("/shops/:id/favorite", barbershopHandler.ToggleFavorite)
		}

		// ------------------------------
		// 🛠️ PAINEL
		// ------------------------------
		console := api.Group("/admin")
		console.Use(requireAuth, middleware.RequireConsole())
		{
			console.GET("/shops", adminShopHandler.List)
			console.POST("/shops", adminShopHandler.Create)
			console.PUT("/shops/:id", adminShopHandler.Update)
			console.DELETE("/shops/:id", adminShopHandler.Delete)
			console.POST("/shops/:id/services", adminShopHandler.AddService)
			console.DELETE("/shops/:id/services/:serviceId", adminShopHandler.RemoveService)

			console.GET("/appointments", appointmentHandler.List)
			console.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

			managers := console.Group("/")
			managers.Use(middleware.RequireUserManager())
			{
				managers.GET("/users", adminUserHandler.List)
				managers.PATCH("/users/:id/role", adminUserHandler.SetRole)
				managers.PATCH("/users/:id/max-shops", adminUserHandler.SetMaxShops)
				managers.GET("/stats", adminUserHandler.Stats)
				managers.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return shutdown, nil
}
