package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"syncronic.com/empmonitor/monitor"
	monitorcore "syncronic.com/empmonitor/monitor/core"
	"syncronic.com/empmonitor/web/common"
)

// Fixed client-facing messages. The underlying error is only logged.
const (
	msgRegistrationFailed = "Registration failed."
	msgLogFailed          = "Failed to log."
	msgFetchLogsFailed    = "Failed to fetch logs."
	msgDeleteFailed       = "Failed to delete log."
	msgStatusFailed       = "Failed to fetch employee status."
	msgUptimeFailed       = "Failed to fetch uptime summary."
	msgLogNotFound        = "Log not found"
)

type Endpoint struct {
	registration  *monitorcore.RegistrationService
	ingestion     *monitorcore.IngestionService
	query         *monitorcore.QueryService
	maxUploadSize int64
}

func NewEndpoint(app *monitor.App) *Endpoint {
	return &Endpoint{
		registration:  monitorcore.NewRegistrationService(app.DB),
		ingestion:     monitorcore.NewIngestionService(app.DB, app.Storage),
		query:         monitorcore.NewQueryService(app.DB),
		maxUploadSize: app.Config.Storage.MaxUploadSize,
	}
}

func Register(r gin.IRouter, app *monitor.App) {
	endpoint := NewEndpoint(app)

	r.POST("/register", endpoint.RegisterEmployee)

	r.POST("/log", endpoint.CreateLog)
	r.GET("/log/:employeeId", endpoint.ListEmployeeLogs)
	r.DELETE("/log/:id", endpoint.DeleteLog)
	r.GET("/logs", endpoint.ListLogs)

	r.GET("/status", endpoint.Status)
	r.GET("/uptime-summary", endpoint.UptimeSummary)
	r.GET("/uptime-summary/export", endpoint.ExportUptimeSummary)
}

// fail records err for the error reporter and answers with a generic 500.
func fail(c *gin.Context, err error, message string) {
	c.Error(err).SetMeta(message)
	c.JSON(http.StatusInternalServerError, common.NewErrorResponse(message))
}
