package segment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownClass is returned for a class token outside the seven known ones.
var ErrUnknownClass = errors.New("segment: unknown class")

// Class is the ground-truth label of a segment.
type Class uint8

// Known classes, in the order the dataset header declares them.
const (
	Brickface Class = iota
	Sky
	Foliage
	Cement
	Window
	Path
	Grass
)

// NumClasses is the number of known classes.
const NumClasses = int(Grass) + 1

var classNames = [NumClasses]string{
	Brickface: "brickface",
	Sky:       "sky",
	Foliage:   "foliage",
	Cement:    "cement",
	Window:    "window",
	Path:      "path",
	Grass:     "grass",
}

// Classes returns every known class in declaration order.
func Classes() []Class {
	out := make([]Class, NumClasses)
	for i := range out {
		out[i] = Class(i)
	}

	return out
}

// ParseClass maps a dataset token to its Class. Surrounding blanks and
// single or double quotes are ignored; matching is case-sensitive.
func ParseClass(token string) (Class, error) {
	t := strings.Trim(strings.TrimSpace(token), `'"`)
	for i, name := range classNames {
		if name == t {
			return Class(i), nil
		}
	}

	return 0, fmt.Errorf("ParseClass(%q): %w", token, ErrUnknownClass)
}

// String returns the dataset token of c, or "Class(n)" if c is not known.
func (c Class) String() string {
	if int(c) < NumClasses {
		return classNames[c]
	}

	return fmt.Sprintf("Class(%d)", uint8(c))
}

// MarshalText encodes c as its dataset token.
func (c Class) MarshalText() ([]byte, error) {
	if int(c) >= NumClasses {
		return nil, fmt.Errorf("MarshalText: %d: %w", uint8(c), ErrUnknownClass)
	}

	return []byte(classNames[c]), nil
}

// UnmarshalText decodes a dataset token.
func (c *Class) UnmarshalText(b []byte) error {
	v, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// NumFeatures is the number of numeric attributes per record.
const NumFeatures = 19

// FeatureNames lists the numeric attributes in file column order.
var FeatureNames = [NumFeatures]string{
	"region-centroid-col",
	"region-centroid-row",
	"region-pixel-count",
	"short-line-density-5",
	"short-line-density-2",
	"vedge-mean",
	"vedge-sd",
	"hedge-mean",
	"hedge-sd",
	"intensity-mean",
	"rawred-mean",
	"rawblue-mean",
	"rawgreen-mean",
	"exred-mean",
	"exblue-mean",
	"exgreen-mean",
	"value-mean",
	"saturation-mean",
	"hue-mean",
}

// Record is one segment: its feature vector and its class.
type Record struct {
	Features []float64
	Class    Class
}

// Points returns the feature vectors of records, indexed like records.
// The vectors are shared, not copied.
func Points(records []Record) [][]float64 {
	out := make([][]float64, len(records))
	for i, r := range records {
		out[i] = r.Features
	}

	return out
}

// Labels returns the classes of records, indexed like records.
func Labels(records []Record) []Class {
	out := make([]Class, len(records))
	for i, r := range records {
		out[i] = r.Class
	}

	return out
}

// Histogram counts records per class.
func Histogram(records []Record) [NumClasses]int {
	var h [NumClasses]int
	for _, r := range records {
		if int(r.Class) < NumClasses {
			h[r.Class]++
		}
	}

	return h
}
