package amqp

import (
	"testing"
	"time"
)

func TestReportGeneratedMessageRoundTrip(t *testing.T) {
	msg := NewReportGeneratedMessage("main", 42, "data/main_page_info.json")
	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ReportGeneratedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Page != "main" || got.ArchiveID != 42 || got.Path != "data/main_page_info.json" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if time.Since(got.GeneratedAt) > time.Minute {
		t.Fatalf("generated_at not set: %v", got.GeneratedAt)
	}
}

func TestReportGeneratedMessageFromJSONInvalid(t *testing.T) {
	if _, err := ReportGeneratedMessageFromJSON([]byte("{broken")); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}
