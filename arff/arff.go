package arff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/slink/segment"
)

var (
	// ErrMalformedLine is returned for a data row with the wrong number of
	// fields or a feature that is not a finite number.
	ErrMalformedLine = errors.New("arff: malformed data line")

	// ErrNotARFF is returned by ReadFile for a path without the .arff extension.
	ErrNotARFF = errors.New("arff: not an .arff file")

	// ErrNoRecords is returned when the input holds no data rows.
	ErrNoRecords = errors.New("arff: no data records")
)

// Extension is the file extension ReadFile accepts.
const Extension = ".arff"

// maxLine bounds a single row; dataset rows are well under 1 KiB.
const maxLine = 1 << 20

// ReadFile opens path and reads its records. The extension check is
// case-insensitive.
func ReadFile(path string) ([]segment.Record, error) {
	if !HasExtension(path) {
		return nil, fmt.Errorf("ReadFile(%q): %w", path, ErrNotARFF)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%q): %w", path, err)
	}

	return recs, nil
}

// HasExtension reports whether path ends in .arff, ignoring case.
func HasExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// Read parses every data row of r.
func Read(r io.Reader) ([]segment.Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var recs []segment.Record
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if skip(text) {
			continue
		}
		rec, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("Read: %w", ErrNoRecords)
	}

	return recs, nil
}

func skip(text string) bool {
	return text == "" || text[0] == '%' || text[0] == '@'
}

// parseRow splits one data row into its features and class.
func parseRow(text string) (segment.Record, error) {
	fields := strings.Split(text, ",")
	if len(fields) != segment.NumFeatures+1 {
		return segment.Record{}, fmt.Errorf("%d fields, want %d: %w",
			len(fields), segment.NumFeatures+1, ErrMalformedLine)
	}

	features := make([]float64, segment.NumFeatures)
	for i := range features {
		raw := strings.TrimSpace(fields[i])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return segment.Record{}, fmt.Errorf("%s=%q: %w", segment.FeatureNames[i], raw, ErrMalformedLine)
		}
		features[i] = v
	}

	class, err := segment.ParseClass(fields[segment.NumFeatures])
	if err != nil {
		return segment.Record{}, err
	}

	return segment.Record{Features: features, Class: class}, nil
}
