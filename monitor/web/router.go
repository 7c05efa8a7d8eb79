package web

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"syncronic.com/empmonitor/config"
	"syncronic.com/empmonitor/monitor"
	"syncronic.com/empmonitor/monitor/web/handlers"
	"syncronic.com/empmonitor/web/middlewares"
)

func NewRouter(app *monitor.App) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = app.Config.Storage.MaxUploadSize

	r.Use(ginzap.Ginzap(app.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(app.Logger, true))
	r.Use(cors.New(corsConfig(app.Config.CORSOrigins)))
	r.Use(middlewares.ErrorReporter(app.Logger, app.Notifier))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	if app.Config.Storage.Backend == config.BackendLocal {
		r.Static(app.Config.Storage.URLPrefix, app.Config.Storage.UploadDir)
	}

	handlers.Register(r, app)
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
