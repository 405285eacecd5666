package routes

import (
	"github.com/gin-gonic/gin"

	"fitledger/controllers"
	"fitledger/middlewares"
	"fitledger/services"
)

// Deps bundles the constructed services the router wires into controllers.
type Deps struct {
	Auth      *services.AuthService
	Tracker   *services.Tracker
	Catalog   *services.CatalogService
	Profile   *services.ProfileService
	Analytics *services.AnalyticsService
	RT        *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	authCtrl := controllers.NewAuthController(d.Auth)
	ledgerCtrl := controllers.NewLedgerController(d.Tracker)
	catalogCtrl := controllers.NewCatalogController(d.Catalog)
	profileCtrl := controllers.NewProfileController(d.Profile)
	analyticsCtrl := controllers.NewAnalyticsController(d.Analytics)
	rtCtrl := controllers.NewRealtimeController(d.RT)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
	}

	// Everything else requires a session token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(d.Auth))
	{
		ledger := api.Group("/ledger")
		{
			ledger.GET("/today", ledgerCtrl.Today)
			ledger.GET("/stats", ledgerCtrl.Stats)
			ledger.GET("/day/:date", ledgerCtrl.Day)
			ledger.POST("/foods", ledgerCtrl.AddFood)
			ledger.DELETE("/foods/:index", ledgerCtrl.RemoveFood)
			ledger.GET("/foods/recent", ledgerCtrl.RecentFoods)
			ledger.POST("/activities", ledgerCtrl.AddActivity)
			ledger.DELETE("/activities/:index", ledgerCtrl.RemoveActivity)
			ledger.GET("/activities/recent", ledgerCtrl.RecentActivities)
			ledger.PUT("/goal", ledgerCtrl.UpdateGoal)
			ledger.POST("/rollover", ledgerCtrl.Rollover)
			ledger.GET("/analytics", analyticsCtrl.Overview)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("/foods", catalogCtrl.Foods)
			catalog.GET("/activities", catalogCtrl.Activities)
			catalog.GET("/activities/estimate", catalogCtrl.Estimate)
			catalog.GET("/suggestions", catalogCtrl.Suggestions)
		}

		api.GET("/profile", profileCtrl.Get)
		api.PUT("/profile", profileCtrl.Update)

		api.GET("/ws/ledger", rtCtrl.LedgerWS)
	}

	return r
}
