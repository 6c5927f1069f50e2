package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", "json", &buf)
	log.Info().Str("exam_id", "abc").Msg("Exam started")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "Exam started" {
		t.Fatalf("unexpected message: %v", entry["message"])
	}
	if entry["exam_id"] != "abc" {
		t.Fatalf("unexpected exam_id: %v", entry["exam_id"])
	}
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup("loud", "json", &buf)
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", zerolog.GlobalLevel())
	}
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("warn", "pretty", &buf)
	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	log.Warn().Msg("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
