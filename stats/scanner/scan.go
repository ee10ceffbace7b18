package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"markerscan/stats/model"
)

// MalformedPolicy decides what Scan does with a short data line.
type MalformedPolicy int

const (
	// PolicyAbort stops the scan at the first malformed line.
	PolicyAbort MalformedPolicy = iota
	// PolicySkip drops malformed lines and counts them in Counts.Skipped.
	PolicySkip
)

func (p MalformedPolicy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicySkip:
		return "skip"
	default:
		return fmt.Sprintf("MalformedPolicy(%d)", int(p))
	}
}

// ParsePolicy accepts "abort" or "skip".
func ParsePolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyAbort, fmt.Errorf("unknown malformed policy %q (want abort or skip)", s)
	}
}

// Options controls which records are counted and how bad lines are treated.
type Options struct {
	Chromosome string
	EmptyValue string
	Policy     MalformedPolicy
	// Logger receives skipped-line warnings; nil means log.Default().
	Logger *log.Logger
}

// DefaultOptions counts chromosome "24" records whose indicator is "0" and
// aborts on the first malformed line.
func DefaultOptions() Options {
	return Options{
		Chromosome: "24",
		EmptyValue: "0",
		Policy:     PolicyAbort,
	}
}

func (o Options) filter() model.Filter {
	def := DefaultOptions()
	f := model.Filter{Chromosome: o.Chromosome, EmptyValue: o.EmptyValue}
	if f.Chromosome == "" {
		f.Chromosome = def.Chromosome
	}
	if f.EmptyValue == "" {
		f.EmptyValue = def.EmptyValue
	}
	return f
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// ScanFile opens path and runs Scan over it. Open failures match
// ErrInputUnavailable.
func ScanFile(path string, opts Options) (model.Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Counts{}, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer f.Close()

	return Scan(f, opts)
}

// Scan reads r line by line, skipping '#' comments, and aggregates the
// records matching opts. Under PolicyAbort a malformed line returns zero
// counts with the error.
func Scan(r io.Reader, opts Options) (model.Counts, error) {
	filter := opts.filter()
	sc := newLineScanner(r)

	var counts model.Counts
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if IsComment(line) {
			continue
		}

		rec, err := ParseRecord(line, lineNo)
		if err != nil {
			if opts.Policy == PolicySkip {
				opts.logger().Printf("skip %v", err)
				counts.Skipped++
				continue
			}
			return model.Counts{}, err
		}
		counts.Add(rec, filter)
	}
	if err := sc.Err(); err != nil {
		return model.Counts{}, fmt.Errorf("read line %d failed: %w", lineNo+1, err)
	}
	return counts, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	// Marker exports can carry very long lines.
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, 10*1024*1024)
	sc.Split(scanMarkerLines)
	return sc
}

// scanMarkerLines is bufio.ScanLines that also ends a line on a lone '\r',
// so old Mac exports split the same way as "\n" and "\r\n" files.
func scanMarkerLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// '\r' at the end of the buffer; wait to see whether '\n' follows.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
