package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxLineLength is the longest telemetry line accepted from the device.
// Anything longer is rejected instead of buffered.
const MaxLineLength = 256

const recordPrefix = "TEMP:"

// ParseErrorKind classifies why a telemetry line was rejected.
type ParseErrorKind int

const (
	// MalformedSyntax - the line does not match TEMP:<id>:<value>.
	MalformedSyntax ParseErrorKind = iota
	// InvalidValue - the value field is not a base-10 signed integer.
	InvalidValue
	// LineTooLong - the line exceeds MaxLineLength bytes.
	LineTooLong
)

// String returns a human-readable name for the kind.
func (k ParseErrorKind) String() string {
	switch k {
	case MalformedSyntax:
		return "malformed syntax"
	case InvalidValue:
		return "invalid value"
	case LineTooLong:
		return "line too long"
	default:
		return "unknown"
	}
}

// ParseError reports a rejected telemetry line together with the reason.
type ParseError struct {
	Message string
	Kind    ParseErrorKind
}

// Error implements the error interface, returning the error message.
func (e *ParseError) Error() string {
	return e.Message
}

// ParseRecord parses one raw telemetry line of the form TEMP:<id>:<value>,
// where <id> is a non-empty token without colons or control characters and
// <value> is a base-10 signed integer in millidegrees. The returned Reading
// carries the supplied observation time. Parsing is pure and safe to call
// from any goroutine; every rejection is reported as a *ParseError.
func ParseRecord(line string, observedAt time.Time) (Reading, error) {
	if len(line) > MaxLineLength {
		return Reading{}, &ParseError{
			Kind:    LineTooLong,
			Message: fmt.Sprintf("line of %d bytes exceeds maximum of %d", len(line), MaxLineLength),
		}
	}

	rest, found := strings.CutPrefix(line, recordPrefix)
	if !found {
		return Reading{}, &ParseError{
			Kind:    MalformedSyntax,
			Message: fmt.Sprintf("line does not start with %q", recordPrefix),
		}
	}

	id, rawValue, found := strings.Cut(rest, ":")
	if !found {
		return Reading{}, &ParseError{
			Kind:    MalformedSyntax,
			Message: "missing value field",
		}
	}
	if id == "" {
		return Reading{}, &ParseError{
			Kind:    MalformedSyntax,
			Message: "empty sensor id",
		}
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x20 || id[i] == 0x7f {
			return Reading{}, &ParseError{
				Kind:    MalformedSyntax,
				Message: fmt.Sprintf("sensor id contains control character 0x%02x", id[i]),
			}
		}
	}

	value, err := strconv.ParseInt(rawValue, 10, 64)
	if err != nil {
		return Reading{}, &ParseError{
			Kind:    InvalidValue,
			Message: fmt.Sprintf("value %q is not a base-10 integer", rawValue),
		}
	}

	return Reading{
		SensorID:          SensorID(id),
		ValueMillidegrees: value,
		ObservedAt:        observedAt,
	}, nil
}
