package region

import (
	"errors"
	"image"
	"sync"
	"testing"
)

func TestFromDrag_AllDirections(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"down-right", 10, 20, 110, 70},
		{"up-left", 110, 70, 10, 20},
		{"down-left", 110, 20, 10, 70},
		{"up-right", 10, 70, 110, 20},
	}
	for _, tc := range cases {
		r := FromDrag(tc.x1, tc.y1, tc.x2, tc.y2)
		want := Region{X: 10, Y: 20, Width: 100, Height: 50}
		if r != want {
			t.Fatalf("%s: got %+v want %+v", tc.name, r, want)
		}
	}
}

func TestFromDrag_ClickWithoutDrag(t *testing.T) {
	r := FromDrag(5, 5, 5, 5)
	if r.Width != 0 || r.Height != 0 || r.X != 5 || r.Y != 5 {
		t.Fatalf("expected zero-size region at 5,5 got %+v", r)
	}
	if !r.Empty() {
		t.Fatalf("zero-size region should report Empty")
	}
}

func TestRect(t *testing.T) {
	r := Region{X: 3, Y: 4, Width: 10, Height: 20}
	if got := r.Rect(); got != image.Rect(3, 4, 13, 24) {
		t.Fatalf("unexpected rect %v", got)
	}
}

func TestParse(t *testing.T) {
	r, err := Parse([]string{" 1", "2 ", "30", "40.0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != (Region{1, 2, 30, 40}) {
		t.Fatalf("unexpected region %+v", r)
	}
	bad := [][]string{
		{"1", "2", "3"},
		{"1", "2", "3", "4", "5"},
		{"a", "2", "3", "4"},
		{"1", "2", "3.5", "4"},
		{"1", "2", "-3", "4"},
	}
	for _, fields := range bad {
		if _, err := Parse(fields); !errors.Is(err, ErrInvalidRegionEdit) {
			t.Fatalf("fields %q: expected ErrInvalidRegionEdit, got %v", fields, err)
		}
	}
}

func TestParseList(t *testing.T) {
	r, err := ParseList("0,0,100,100")
	if err != nil || r != (Region{0, 0, 100, 100}) {
		t.Fatalf("ParseList failed: %+v %v", r, err)
	}
}

func TestStore_SetWrongFieldCountKeepsValue(t *testing.T) {
	initial := Region{X: 100, Y: 100, Width: 800, Height: 600}
	s := NewStore(initial)
	if err := s.Set(1, 2, 3); !errors.Is(err, ErrInvalidRegionEdit) {
		t.Fatalf("3 fields: expected ErrInvalidRegionEdit got %v", err)
	}
	if err := s.Set(1, 2, 3, 4, 5); !errors.Is(err, ErrInvalidRegionEdit) {
		t.Fatalf("5 fields: expected ErrInvalidRegionEdit got %v", err)
	}
	if got := s.Get(); got != initial {
		t.Fatalf("region changed after rejected edits: %+v", got)
	}
	if err := s.Set(0, 0, 100, 100); err != nil {
		t.Fatalf("valid set failed: %v", err)
	}
	if got := s.Get(); got != (Region{0, 0, 100, 100}) {
		t.Fatalf("set not applied: %+v", got)
	}
}

func TestStore_ApplyClampsNegative(t *testing.T) {
	s := NewStore(Region{})
	s.Apply(Region{X: 1, Y: 1, Width: -5, Height: 7})
	if got := s.Get(); got.Width != 0 || got.Height != 7 {
		t.Fatalf("expected clamped width, got %+v", got)
	}
}

func TestStore_NoTornReads(t *testing.T) {
	s := NewStore(Region{1, 1, 1, 1})
	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			v := i%100 + 1
			s.Apply(Region{v, v, v, v})
		}
	}()
	for i := 0; i < 10000; i++ {
		r := s.Get()
		if r.X != r.Y || r.Y != r.Width || r.Width != r.Height {
			close(stop)
			wg.Wait()
			t.Fatalf("torn read: %+v", r)
		}
	}
	close(stop)
	wg.Wait()
}
