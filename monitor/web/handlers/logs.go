package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	monitorcore "syncronic.com/empmonitor/monitor/core"
	"syncronic.com/empmonitor/web/common"
	web "syncronic.com/empmonitor/web/handlers"
)

func (ep *Endpoint) CreateLog(c *gin.Context) {
	if c.Request.ContentLength > ep.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, common.NewErrorResponse("Request body exceeds the upload size limit"))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ep.maxUploadSize)

	var form LogForm
	if err := c.ShouldBind(&form); err != nil {
		status := http.StatusBadRequest
		if common.IsTooLarge(err) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	screenshot, err := readUpload(c, monitorcore.FieldScreenshot)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	webcam, err := readUpload(c, monitorcore.FieldWebcam)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	entry, err := ep.ingestion.Ingest(c.Request.Context(), monitorcore.IngestRequest{
		EmployeeID:    form.EmployeeID,
		WebLog:        form.WebLog,
		SystemInfo:    form.SystemInfo,
		Status:        form.Status,
		OnTimeMinutes: form.OnTimeMinutes,
		Screenshot:    screenshot,
		Webcam:        webcam,
	})
	if err != nil {
		fail(c, err, msgLogFailed)
		return
	}

	c.JSON(http.StatusOK, LogResponse{Success: true, Log: entry})
}

func readUpload(c *gin.Context, field string) (*monitorcore.Upload, error) {
	file, err := web.ReadFormFile(c, field)
	if err != nil || file == nil {
		return nil, err
	}
	return &monitorcore.Upload{Filename: file.Filename, Data: file.Data}, nil
}

func (ep *Endpoint) ListEmployeeLogs(c *gin.Context) {
	logs, err := ep.query.ListByEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		fail(c, err, msgFetchLogsFailed)
		return
	}
	c.JSON(http.StatusOK, LogsResponse{Success: true, Logs: logs})
}

func (ep *Endpoint) ListLogs(c *gin.Context) {
	logs, err := ep.query.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err, msgFetchLogsFailed)
		return
	}
	c.JSON(http.StatusOK, LogsResponse{Success: true, Logs: logs})
}

func (ep *Endpoint) DeleteLog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	err = ep.query.Delete(c.Request.Context(), uint(id))
	switch {
	case errors.Is(err, monitorcore.ErrLogNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse(msgLogNotFound))
	case err != nil:
		fail(c, err, msgDeleteFailed)
	default:
		c.JSON(http.StatusOK, common.NewMessageResponse("Log deleted"))
	}
}
