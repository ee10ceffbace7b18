package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"markerscan/stats/model"
)

const (
	allele1Col      = 3
	allele2Col      = 4
	minGenotypeCols = allele2Col + 1
)

// ErrMisaligned is returned by Compare when the two files disagree on the
// chromosome of the same data row.
var ErrMisaligned = errors.New("marker files are not aligned")

// IsHeader reports whether the line is a column header such as
// "rsid chromosome position allele1 allele2".
func IsHeader(line string) bool {
	return strings.HasPrefix(line, "rsid")
}

// ParseGenotype splits a data line into chromosome and both alleles.
func ParseGenotype(line string, lineNo int) (model.Genotype, error) {
	fields := strings.Fields(line)
	if len(fields) < minGenotypeCols {
		return model.Genotype{}, &MalformedRecordError{Line: lineNo, Fields: len(fields), Need: minGenotypeCols}
	}
	return model.Genotype{
		Chromosome: fields[chromosomeCol],
		Allele1:    fields[allele1Col],
		Allele2:    fields[allele2Col],
		Line:       lineNo,
	}, nil
}

// autosome returns the 0-based autosome index of a chromosome id, or false
// for sex chromosomes, mitochondria and anything non-numeric.
func autosome(chr string) (int, bool) {
	n, err := strconv.Atoi(chr)
	if err != nil || n < 1 || n > model.Autosomes {
		return 0, false
	}
	return n - 1, true
}

type dataLines struct {
	sc     *bufio.Scanner
	lineNo int
}

// next returns the next line that is neither a comment nor a header.
func (d *dataLines) next() (string, bool) {
	for d.sc.Scan() {
		d.lineNo++
		line := d.sc.Text()
		if IsComment(line) || IsHeader(line) {
			continue
		}
		return line, true
	}
	return "", false
}

// CompareFiles opens both marker files and runs Compare over them.
func CompareFiles(firstPath, secondPath string, opts Options) (model.Comparison, error) {
	first, err := os.Open(firstPath)
	if err != nil {
		return model.Comparison{}, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer first.Close()

	second, err := os.Open(secondPath)
	if err != nil {
		return model.Comparison{}, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer second.Close()

	return Compare(first, second, opts)
}

// Compare walks two marker files row by row, stopping when either runs out.
// Autosome rows feed the per-chromosome allele mismatch tallies in both
// directions; chromosome rows matching opts feed each file's empty counts.
// Both files must list the same markers in the same order.
func Compare(first, second io.Reader, opts Options) (model.Comparison, error) {
	filter := opts.filter()
	a := &dataLines{sc: newLineScanner(first)}
	b := &dataLines{sc: newLineScanner(second)}

	var cmp model.Comparison
	for {
		lineA, ok := a.next()
		if !ok {
			break
		}
		lineB, ok := b.next()
		if !ok {
			break
		}

		ga, errA := ParseGenotype(lineA, a.lineNo)
		gb, errB := ParseGenotype(lineB, b.lineNo)
		if err := errors.Join(labelErr("first", errA), labelErr("second", errB)); err != nil {
			if opts.Policy == PolicySkip {
				opts.logger().Printf("skip %v", err)
				cmp.Skipped++
				continue
			}
			return model.Comparison{}, err
		}
		if ga.Chromosome != gb.Chromosome {
			return model.Comparison{}, fmt.Errorf("%w: first line %d is chromosome %s, second line %d is chromosome %s",
				ErrMisaligned, ga.Line, ga.Chromosome, gb.Line, gb.Chromosome)
		}
		cmp.Pairs++

		if i, ok := autosome(ga.Chromosome); ok {
			cmp.First[i].Add(ga, gb)
			cmp.Second[i].Add(gb, ga)
			continue
		}
		cmp.FirstChr24.Add(model.Record{Chromosome: ga.Chromosome, Indicator: ga.Allele1, Line: ga.Line}, filter)
		cmp.SecondChr24.Add(model.Record{Chromosome: gb.Chromosome, Indicator: gb.Allele1, Line: gb.Line}, filter)
	}

	if err := a.sc.Err(); err != nil {
		return model.Comparison{}, fmt.Errorf("read first line %d failed: %w", a.lineNo+1, err)
	}
	if err := b.sc.Err(); err != nil {
		return model.Comparison{}, fmt.Errorf("read second line %d failed: %w", b.lineNo+1, err)
	}
	return cmp, nil
}

func labelErr(label string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", label, err)
}
