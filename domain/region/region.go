// Package region holds the watched screen rectangle and the helpers that
// produce it from a pointer drag or from edited numeric fields.
package region

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
	"sync"
)

// ErrInvalidRegionEdit is returned when an edit does not consist of exactly
// four integer fields.
var ErrInvalidRegionEdit = errors.New("invalid region edit")

// FieldCount is the number of values that make up a region edit.
const FieldCount = 4

// Region is a screen rectangle in absolute pixel coordinates. Width and Height
// are never negative for values produced by this package.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// FromDrag normalizes two drag endpoints into a Region so the result does not
// depend on drag direction.
func FromDrag(x1, y1, x2, y2 int) Region {
	return Region{
		X:      min(x1, x2),
		Y:      min(y1, y2),
		Width:  abs(x2 - x1),
		Height: abs(y2 - y1),
	}
}

// FromValues builds a Region from exactly four integers (x, y, width, height).
func FromValues(vals []int) (Region, error) {
	if len(vals) != FieldCount {
		return Region{}, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidRegionEdit, FieldCount, len(vals))
	}
	r := Region{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if r.Width < 0 || r.Height < 0 {
		return Region{}, fmt.Errorf("%w: negative size %dx%d", ErrInvalidRegionEdit, r.Width, r.Height)
	}
	return r, nil
}

// Parse converts edited text fields into a Region. Surrounding whitespace is
// ignored and integral floats such as "12.0" are accepted.
func Parse(fields []string) (Region, error) {
	if len(fields) != FieldCount {
		return Region{}, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidRegionEdit, FieldCount, len(fields))
	}
	vals := make([]int, FieldCount)
	for i, f := range fields {
		n, err := parseInt(f)
		if err != nil {
			return Region{}, fmt.Errorf("%w: field %d %q: %v", ErrInvalidRegionEdit, i, f, err)
		}
		vals[i] = n
	}
	return FromValues(vals)
}

// ParseList parses a comma separated "x,y,w,h" string.
func ParseList(s string) (Region, error) {
	return Parse(strings.Split(s, ","))
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if f != float64(int(f)) {
		return 0, errors.New("not an integer")
	}
	return int(f), nil
}

// Rect converts the region into an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Values returns the region as x, y, width, height.
func (r Region) Values() [FieldCount]int {
	return [FieldCount]int{r.X, r.Y, r.Width, r.Height}
}

func (r Region) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Store owns the active Region. Readers always observe all four fields from
// the same update.
type Store struct {
	mu sync.RWMutex
	r  Region
}

// NewStore returns a Store holding initial.
func NewStore(initial Region) *Store {
	return &Store{r: initial}
}

// Get returns the current region.
func (s *Store) Get() Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

// Set replaces the region with four integers. On error the stored value is
// left unchanged.
func (s *Store) Set(vals ...int) error {
	r, err := FromValues(vals)
	if err != nil {
		return err
	}
	s.Apply(r)
	return nil
}

// Apply replaces the region. Negative sizes are clamped to zero.
func (s *Store) Apply(r Region) {
	r.Width = max(r.Width, 0)
	r.Height = max(r.Height, 0)
	s.mu.Lock()
	s.r = r
	s.mu.Unlock()
}
