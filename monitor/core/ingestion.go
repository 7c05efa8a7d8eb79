package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	dbcore "syncronic.com/empmonitor/core"
	"syncronic.com/empmonitor/infrastructure/filesystem"
	"syncronic.com/empmonitor/monitor/model"
)

const (
	FieldScreenshot = "screenshot"
	FieldWebcam     = "webcam"
)

// Upload is a file received with a log. A nil *Upload means the field was absent.
type Upload struct {
	Filename string
	Data     []byte
}

type IngestRequest struct {
	EmployeeID    string
	WebLog        string
	SystemInfo    string
	Status        string
	OnTimeMinutes string
	Screenshot    *Upload
	Webcam        *Upload
}

type IngestionService struct {
	dm      *dbcore.DatabaseManager
	storage filesystem.Storage
	now     func() time.Time
}

func NewIngestionService(dm *dbcore.DatabaseManager, storage filesystem.Storage) *IngestionService {
	return &IngestionService{dm: dm, storage: storage, now: time.Now}
}

// Ingest stores the uploaded files, then writes the log row. No row is
// written if a file fails to store.
func (s *IngestionService) Ingest(ctx context.Context, req IngestRequest) (*model.LogEntry, error) {
	if req.EmployeeID == "" {
		return nil, ErrMissingEmployeeID
	}

	screenshotURL, err := s.store(ctx, FieldScreenshot, req.Screenshot)
	if err != nil {
		return nil, err
	}
	webcamURL, err := s.store(ctx, FieldWebcam, req.Webcam)
	if err != nil {
		return nil, err
	}

	entry := &model.LogEntry{
		EmployeeID:    req.EmployeeID,
		ScreenshotURL: screenshotURL,
		WebcamURL:     webcamURL,
		WebLog:        req.WebLog,
		SystemInfo:    req.SystemInfo,
		Status:        req.Status,
		OnTimeMinutes: ParseOnTimeMinutes(req.OnTimeMinutes),
		Timestamp:     s.now().UTC(),
	}

	if err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		return CreateLog(db, entry)
	}); err != nil {
		return nil, fmt.Errorf("create log for %s: %w", req.EmployeeID, err)
	}
	return entry, nil
}

func (s *IngestionService) store(ctx context.Context, field string, upload *Upload) (*string, error) {
	if upload == nil {
		return nil, nil
	}
	url, err := s.storage.Store(ctx, field, upload.Data, upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("store %s %q: %w", field, upload.Filename, err)
	}
	return &url, nil
}

// ParseOnTimeMinutes reads the leading integer of s ("45", " 45min", "12.5").
// Empty, non-numeric or negative input yields 0.
func ParseOnTimeMinutes(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
