package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	monitorcore "syncronic.com/empmonitor/monitor/core"
	"syncronic.com/empmonitor/web/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Status returns the latest log of every employee.
func (ep *Endpoint) Status(c *gin.Context) {
	logs, err := ep.query.LatestStatus(c.Request.Context())
	if err != nil {
		fail(c, err, msgStatusFailed)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(logs))
}

func (ep *Endpoint) UptimeSummary(c *gin.Context) {
	rows, err := ep.query.UptimeSummary(c.Request.Context())
	if err != nil {
		fail(c, err, msgUptimeFailed)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(rows))
}

func (ep *Endpoint) ExportUptimeSummary(c *gin.Context) {
	rows, err := ep.query.UptimeSummary(c.Request.Context())
	if err != nil {
		fail(c, err, msgUptimeFailed)
		return
	}

	var buf bytes.Buffer
	if err := monitorcore.WriteUptimeWorkbook(&buf, rows); err != nil {
		fail(c, err, msgUptimeFailed)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="uptime-summary.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
