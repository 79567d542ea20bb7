package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseRecord(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		line      string
		wantID    SensorID
		wantValue int64
		wantKind  ParseErrorKind
		wantErr   bool
	}{
		{name: "plain reading", line: "TEMP:CPU:45000", wantID: "CPU", wantValue: 45000},
		{name: "negative reading", line: "TEMP:GPU:-500", wantID: "GPU", wantValue: -500},
		{name: "zero reading", line: "TEMP:AMBIENT:0", wantID: "AMBIENT", wantValue: 0},
		{name: "id with digits", line: "TEMP:temp1:31250", wantID: "temp1", wantValue: 31250},
		{name: "no structure at all", line: "BADLINE", wantErr: true, wantKind: MalformedSyntax},
		{name: "empty line", line: "", wantErr: true, wantKind: MalformedSyntax},
		{name: "wrong prefix", line: "TMP:CPU:45000", wantErr: true, wantKind: MalformedSyntax},
		{name: "missing value field", line: "TEMP:CPU", wantErr: true, wantKind: MalformedSyntax},
		{name: "empty sensor id", line: "TEMP::45000", wantErr: true, wantKind: MalformedSyntax},
		{name: "control character in id", line: "TEMP:C\x01U:45000", wantErr: true, wantKind: MalformedSyntax},
		{name: "non-numeric value", line: "TEMP:CPU:hot", wantErr: true, wantKind: InvalidValue},
		{name: "empty value", line: "TEMP:CPU:", wantErr: true, wantKind: InvalidValue},
		{name: "extra field", line: "TEMP:CPU:45000:7", wantErr: true, wantKind: InvalidValue},
		{name: "value with trailing space", line: "TEMP:CPU:45000 ", wantErr: true, wantKind: InvalidValue},
		{name: "oversized line", line: "TEMP:CPU:" + strings.Repeat("9", MaxLineLength), wantErr: true, wantKind: LineTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := ParseRecord(tt.line, now)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got reading %+v", reading)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected *ParseError, got %T", err)
				}
				if parseErr.Kind != tt.wantKind {
					t.Errorf("expected kind %s, got %s", tt.wantKind, parseErr.Kind)
				}
				if parseErr.Error() == "" {
					t.Error("expected non-empty error message")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reading.SensorID != tt.wantID {
				t.Errorf("expected sensor id %q, got %q", tt.wantID, reading.SensorID)
			}
			if reading.ValueMillidegrees != tt.wantValue {
				t.Errorf("expected value %d, got %d", tt.wantValue, reading.ValueMillidegrees)
			}
			if !reading.ObservedAt.Equal(now) {
				t.Errorf("expected observation time %s, got %s", now, reading.ObservedAt)
			}
		})
	}
}

func TestParseRecord_IsPure(t *testing.T) {
	now := time.Now()

	first, err1 := ParseRecord("TEMP:CPU:45000", now)
	second, err2 := ParseRecord("TEMP:CPU:45000", now)

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("expected identical readings, got %+v and %+v", first, second)
	}
}

func TestParseRecord_BoundaryLength(t *testing.T) {
	now := time.Now()

	// Longest accepted line: exactly MaxLineLength bytes.
	id := strings.Repeat("A", MaxLineLength-len("TEMP:")-len(":1"))
	line := "TEMP:" + id + ":1"
	if len(line) != MaxLineLength {
		t.Fatalf("test line is %d bytes, expected %d", len(line), MaxLineLength)
	}

	reading, err := ParseRecord(line, now)
	if err != nil {
		t.Fatalf("unexpected error at boundary: %v", err)
	}
	if reading.SensorID != SensorID(id) {
		t.Error("sensor id mismatch at boundary length")
	}

	_, err = ParseRecord(line+"2", now)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Kind != LineTooLong {
		t.Errorf("expected LineTooLong one byte past the boundary, got %v", err)
	}
}
