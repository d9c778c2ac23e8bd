package amqp

import (
	"encoding/json"
	"time"
)

// ReportGeneratedMessage announces a freshly generated report page. It
// carries the archive id rather than the payload itself; consumers fetch
// the body from the archive when they need it.
type ReportGeneratedMessage struct {
	Page        string    `json:"page"`
	ArchiveID   int64     `json:"archive_id"`
	Path        string    `json:"path"`
	GeneratedAt time.Time `json:"generated_at"`
}

func NewReportGeneratedMessage(page string, archiveID int64, path string) *ReportGeneratedMessage {
	return &ReportGeneratedMessage{
		Page:        page,
		ArchiveID:   archiveID,
		Path:        path,
		GeneratedAt: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReportGeneratedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportGeneratedMessageFromJSON creates a message from JSON bytes.
func ReportGeneratedMessageFromJSON(data []byte) (*ReportGeneratedMessage, error) {
	var msg ReportGeneratedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
