package service

import (
	"alcyxob/gym-membership/internal/config"
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/storage"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid" // For generating unique object keys
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// rosterContentType is the MIME type of exported rosters.
const rosterContentType = "text/csv"

// rosterHeader names the roster columns by their attendance field labels.
func rosterHeader() []string {
	labels := domain.AttendanceLabels
	return []string{
		labels.Field("workoutSessionId"),
		labels.Field("clientId"),
		labels.Field("attended"),
		labels.Field("checkInTime"),
	}
}

// RosterExport describes an uploaded attendance roster.
type RosterExport struct {
	ObjectKey string
	URL       string // Presigned download URL
	Rows      int
}

type ExportService interface {
	// ExportRoster writes the attendance roster of a session as CSV to object
	// storage and returns a temporary download link.
	ExportRoster(ctx context.Context, sessionID primitive.ObjectID) (*RosterExport, error)
}

// exportService implements the ExportService interface.
type exportService struct {
	attendance  AttendanceService
	sessions    SessionService
	fileStorage storage.FileStorage
	cfg         config.ExportConfig
}

// NewExportService creates a new instance of exportService.
func NewExportService(repos Repositories, fileStorage storage.FileStorage, cfg config.ExportConfig) ExportService {
	return &exportService{
		attendance:  NewAttendanceService(repos),
		sessions:    NewSessionService(repos),
		fileStorage: fileStorage,
		cfg:         cfg,
	}
}

func (s *exportService) ExportRoster(ctx context.Context, sessionID primitive.ObjectID) (*RosterExport, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendance.ListForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{rosterHeader()}
	for _, a := range records {
		checkIn := ""
		if a.CheckInTime != nil {
			checkIn = a.CheckInTime.UTC().Format(time.RFC3339)
		}
		client := "Client: #" + a.ClientID.Hex()
		if a.Client != nil {
			client = a.Client.String()
		}
		rows = append(rows, []string{session.String(), client, strconv.FormatBool(a.Attended), checkIn})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write roster csv: %w", err)
	}

	objectKey := path.Join(s.cfg.Prefix, "sessions", sessionID.Hex(), uuid.NewString()+".csv")
	if err := s.fileStorage.PutObject(ctx, objectKey, rosterContentType, &buf); err != nil {
		return nil, fmt.Errorf("upload roster: %w", err)
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.cfg.URLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign roster download: %w", err)
	}

	log.Printf("INFO: Exported roster of session %s (%d rows) to %s", sessionID.Hex(), len(records), objectKey)
	return &RosterExport{ObjectKey: objectKey, URL: url, Rows: len(records)}, nil
}
