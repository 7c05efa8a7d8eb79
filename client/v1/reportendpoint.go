package v1

import (
	"context"
	"io"

	"syncronic.com/empmonitor/monitor/model"
)

type ReportEndpoint struct {
	transport *Transport
}

type dataResponse[T any] struct {
	Data []T `json:"data"`
}

// Status returns the latest log of every employee.
func (e *ReportEndpoint) Status(ctx context.Context) ([]model.LogEntry, error) {
	resp, err := e.transport.Get(ctx, "/status")
	if err != nil {
		return nil, err
	}
	out, err := decode[dataResponse[model.LogEntry]](resp)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (e *ReportEndpoint) UptimeSummary(ctx context.Context) ([]model.UptimeSummary, error) {
	resp, err := e.transport.Get(ctx, "/uptime-summary")
	if err != nil {
		return nil, err
	}
	out, err := decode[dataResponse[model.UptimeSummary]](resp)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ExportUptimeSummary copies the xlsx workbook to w.
func (e *ReportEndpoint) ExportUptimeSummary(ctx context.Context, w io.Writer) error {
	resp, err := e.transport.Get(ctx, "/uptime-summary/export")
	if err != nil {
		return err
	}
	_, err = w.Write(resp.Data)
	return err
}
