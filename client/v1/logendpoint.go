package v1

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"syncronic.com/empmonitor/monitor/model"
)

type LogUpload struct {
	EmployeeID    string
	WebLog        string
	SystemInfo    string
	Status        string
	OnTimeMinutes int
	Screenshot    *FilePart
	Webcam        *FilePart
}

type LogEndpoint struct {
	transport *Transport
}

type logResponse struct {
	Log *model.LogEntry `json:"log"`
}

type logsResponse struct {
	Logs []model.LogEntry `json:"logs"`
}

func (e *LogEndpoint) Upload(ctx context.Context, u LogUpload) (*model.LogEntry, error) {
	fields := map[string]string{
		"employeeId":    u.EmployeeID,
		"webLog":        u.WebLog,
		"systemInfo":    u.SystemInfo,
		"status":        u.Status,
		"onTimeMinutes": strconv.Itoa(u.OnTimeMinutes),
	}

	var files []FilePart
	if u.Screenshot != nil {
		f := *u.Screenshot
		f.Field = "screenshot"
		files = append(files, f)
	}
	if u.Webcam != nil {
		f := *u.Webcam
		f.Field = "webcam"
		files = append(files, f)
	}

	resp, err := e.transport.PostMultipart(ctx, "/log", fields, files...)
	if err != nil {
		return nil, err
	}
	out, err := decode[logResponse](resp)
	if err != nil {
		return nil, err
	}
	return out.Log, nil
}

func (e *LogEndpoint) List(ctx context.Context) ([]model.LogEntry, error) {
	return e.list(ctx, "/logs")
}

func (e *LogEndpoint) ListByEmployee(ctx context.Context, employeeID string) ([]model.LogEntry, error) {
	return e.list(ctx, "/log/"+url.PathEscape(employeeID))
}

func (e *LogEndpoint) list(ctx context.Context, path string) ([]model.LogEntry, error) {
	resp, err := e.transport.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	out, err := decode[logsResponse](resp)
	if err != nil {
		return nil, err
	}
	return out.Logs, nil
}

func (e *LogEndpoint) Delete(ctx context.Context, id uint) error {
	_, err := e.transport.Delete(ctx, fmt.Sprintf("/log/%d", id))
	return err
}
