package routes

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c14220110/caregiver-backend/config"
	accountControllers "github.com/c14220110/caregiver-backend/internal/account/controllers"
	accountRoutes "github.com/c14220110/caregiver-backend/internal/account/routes"
	accountServices "github.com/c14220110/caregiver-backend/internal/account/services"
	caregiverControllers "github.com/c14220110/caregiver-backend/internal/caregiver/controllers"
	caregiverRoutes "github.com/c14220110/caregiver-backend/internal/caregiver/routes"
	caregiverServices "github.com/c14220110/caregiver-backend/internal/caregiver/services"
	parentControllers "github.com/c14220110/caregiver-backend/internal/parent/controllers"
	parentRoutes "github.com/c14220110/caregiver-backend/internal/parent/routes"
	parentServices "github.com/c14220110/caregiver-backend/internal/parent/services"
	rosterControllers "github.com/c14220110/caregiver-backend/internal/roster/controllers"
	rosterRoutes "github.com/c14220110/caregiver-backend/internal/roster/routes"
	rosterServices "github.com/c14220110/caregiver-backend/internal/roster/services"
	seedControllers "github.com/c14220110/caregiver-backend/internal/seed/controllers"
	seedRoutes "github.com/c14220110/caregiver-backend/internal/seed/routes"
	seedServices "github.com/c14220110/caregiver-backend/internal/seed/services"
	shiftControllers "github.com/c14220110/caregiver-backend/internal/shiftreport/controllers"
	shiftRoutes "github.com/c14220110/caregiver-backend/internal/shiftreport/routes"
	shiftServices "github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/pkg/utils"
	"github.com/c14220110/caregiver-backend/ws"
)

// Deps berisi komponen yang dibuat di main dan dipakai bersama oleh semua route.
type Deps struct {
	Config *config.Config
	Store  docstore.Store
	Issuer *utils.TokenIssuer
	Hub    *ws.Hub
	Roster *rosterServices.RosterService
	Logger *slog.Logger
}

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, deps Deps) {
	e.Use(middleware.Recover())
	e.Use(RequestLogger(deps.Logger))

	// Inisialisasi service
	lists := docstore.NewListEditor(deps.Store)
	accountService := accountServices.NewAccountService(deps.Store)
	summaryService := shiftServices.NewShiftSummaryService(deps.Store, deps.Logger, deps.Config.TolerateFetchErrors)
	caregiverService := caregiverServices.NewCaregiverService(deps.Store, lists, accountService, deps.Hub, deps.Logger)
	parentService := parentServices.NewParentService(lists, deps.Hub, deps.Logger)
	seedService := seedServices.NewSeedService(deps.Store, accountService, deps.Roster, deps.Logger)

	// Inisialisasi controller
	accountController := accountControllers.NewAccountController(accountService, deps.Issuer, deps.Logger)
	summaryController := shiftControllers.NewShiftSummaryController(summaryService, deps.Logger)
	caregiverController := caregiverControllers.NewCaregiverController(caregiverService, deps.Logger)
	parentController := parentControllers.NewParentController(parentService, deps.Logger)
	rosterController := rosterControllers.NewRosterController(deps.Roster, deps.Logger)
	seedController := seedControllers.NewSeedController(seedService, deps.Logger)

	// Grup API utama
	api := e.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	shiftRoutes.RegisterShiftSummaryRoutes(e, summaryController)
	accountRoutes.RegisterAccountRoutes(api, accountController, deps.Issuer)
	caregiverRoutes.RegisterCaregiverRoutes(api, caregiverController, deps.Issuer)
	parentRoutes.RegisterParentRoutes(api, parentController, deps.Issuer)
	rosterRoutes.RegisterRosterRoutes(api, rosterController, deps.Issuer)
	if !deps.Config.IsProduction() {
		seedRoutes.RegisterSeedRoutes(api, seedController)
	}

	e.GET("/ws", ws.ServeWS(deps.Hub))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RequestLogger mencatat setiap request ke slog.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Error("request gagal", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}
