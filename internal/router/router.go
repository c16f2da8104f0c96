package router

import (
	"github.com/fazetdev/zimam-delivery/internal/config"
	"github.com/fazetdev/zimam-delivery/internal/handler"
	"github.com/fazetdev/zimam-delivery/internal/ledger"
	"github.com/fazetdev/zimam-delivery/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Setup configures the Gin engine and mounts the API.
func Setup(cfg *config.Config, log *zap.Logger, logbook *ledger.Logbook, wallet *ledger.Wallet) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(cfg.Auth)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	lb := handler.NewLogbookHandler(logbook)
	protected.GET("/deliveries", lb.List)
	protected.POST("/deliveries", lb.Create)
	protected.PUT("/deliveries/:id", lb.Update)
	protected.DELETE("/deliveries/:id", lb.Delete)
	protected.DELETE("/deliveries", lb.Clear)
	protected.POST("/deliveries/import", lb.Import)
	protected.GET("/deliveries/today", lb.Today)
	protected.GET("/deliveries/search", lb.Search)
	protected.GET("/stats/logbook", lb.Stats)

	wl := handler.NewWalletHandler(wallet)
	protected.GET("/transactions", wl.List)
	protected.POST("/transactions", wl.Create)
	protected.PUT("/transactions/:id", wl.Update)
	protected.DELETE("/transactions/:id", wl.Delete)
	protected.DELETE("/transactions", wl.Clear)
	protected.POST("/transactions/import", wl.Import)
	protected.GET("/transactions/today", wl.Today)
	protected.GET("/stats/wallet", wl.Stats)
	protected.GET("/stats/weekly", wl.Weekly)
	protected.GET("/stats/monthly", wl.Monthly)

	exportHandler := handler.NewExportHandler(logbook, wallet)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	backupHandler := handler.NewBackupHandler(logbook, wallet)
	protected.GET("/backup", backupHandler.Export)
	protected.POST("/backup/restore", backupHandler.Restore)

	return r
}
