package scanner

import (
	"errors"
	"fmt"
	"strings"

	"markerscan/stats/model"
)

const (
	chromosomeCol = 1
	indicatorCol  = 3
	minFields     = indicatorCol + 1
)

var (
	// ErrInputUnavailable is returned when the marker file cannot be opened.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrMalformedRecord is returned for a data line with too few fields.
	ErrMalformedRecord = errors.New("malformed record")
)

// MalformedRecordError describes a non-comment line that lacks the indicator column.
type MalformedRecordError struct {
	Line   int
	Fields int
	Need   int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %d fields, need at least %d", e.Line, e.Fields, e.Need)
}

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

// IsComment reports whether the line starts with '#'.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// ParseRecord splits a data line on runs of whitespace and picks the
// chromosome and indicator columns.
func ParseRecord(line string, lineNo int) (model.Record, error) {
	fields := strings.Fields(line)
	if len(fields) < minFields {
		return model.Record{}, &MalformedRecordError{Line: lineNo, Fields: len(fields), Need: minFields}
	}
	return model.Record{
		Chromosome: fields[chromosomeCol],
		Indicator:  fields[indicatorCol],
		Line:       lineNo,
	}, nil
}
