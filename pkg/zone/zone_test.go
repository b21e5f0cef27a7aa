package zone

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFull(t *testing.T) {
	z := Full()
	if z != (Zone{X: 0, Y: 0, Width: 100, Height: 100}) {
		t.Errorf("Full() = %+v", z)
	}
	if z.Area() != 10000 {
		t.Errorf("Full().Area() = %d, want 10000", z.Area())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"h", Horizontal, false},
		{"H", Horizontal, false},
		{"horizontal", Horizontal, false},
		{"v", Vertical, false},
		{" vertical ", Vertical, false},
		{"x", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		D Direction `json:"d"`
	}{Vertical})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"d":"vertical"}` {
		t.Errorf("Marshal = %s", data)
	}

	var out struct {
		D Direction `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"d":"h"}`), &out); err != nil {
		t.Fatal(err)
	}
	if out.D != Horizontal {
		t.Errorf("Unmarshal = %v, want horizontal", out.D)
	}
}

func TestOverlaps(t *testing.T) {
	a := Zone{X: 0, Y: 0, Width: 50, Height: 50}
	tests := []struct {
		name string
		b    Zone
		want bool
	}{
		{"adjacent right", Zone{X: 50, Y: 0, Width: 50, Height: 50}, false},
		{"adjacent below", Zone{X: 0, Y: 50, Width: 50, Height: 50}, false},
		{"inside", Zone{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"partial", Zone{X: 49, Y: 49, Width: 2, Height: 2}, true},
		{"empty inside", Zone{X: 10, Y: 10, Width: 0, Height: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Full().Validate(); err != nil {
		t.Errorf("Full().Validate() = %v", err)
	}
	if err := (Zone{X: 100, Width: 0, Height: 100}).Validate(); err != nil {
		t.Errorf("zero-width zone on the right edge: Validate() = %v", err)
	}
	for _, bad := range []Zone{
		{X: 200, Y: 0, Width: 100, Height: 10},
		{Width: 150, Height: 150},
		{X: 1, Width: 100, Height: 100},
		{Y: 99, Width: 1, Height: 2},
	} {
		if err := bad.Validate(); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s: Validate() = %v, want ErrOutOfBounds", bad, err)
		}
	}
}

func TestString(t *testing.T) {
	z := Zone{X: 13, Y: 43, Width: 25, Height: 57}
	if got := z.String(); got != "25x57+13+43" {
		t.Errorf("String() = %q", got)
	}
}

func TestSetDedup(t *testing.T) {
	s := NewSet(
		Zone{X: 100, Y: 0, Width: 0, Height: 100},
		Zone{X: 100, Y: 0, Width: 0, Height: 100},
		Zone{X: 0, Y: 0, Width: 100, Height: 100},
	)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(Full()) {
		t.Error("Contains(Full()) = false")
	}
	if s.Area() != 10000 {
		t.Errorf("Area() = %d, want 10000", s.Area())
	}
}

func TestSetSorted(t *testing.T) {
	s := NewSet(
		Zone{X: 38, Y: 0, Width: 62, Height: 100},
		Zone{X: 13, Y: 43, Width: 25, Height: 57},
		Zone{X: 13, Y: 0, Width: 25, Height: 43},
		Zone{X: 0, Y: 0, Width: 13, Height: 100},
	)
	want := []Zone{
		{X: 0, Y: 0, Width: 13, Height: 100},
		{X: 13, Y: 0, Width: 25, Height: 43},
		{X: 38, Y: 0, Width: 62, Height: 100},
		{X: 13, Y: 43, Width: 25, Height: 57},
	}
	assertZones(t, s.Sorted(), want)
}

func TestCheckTiling(t *testing.T) {
	halves := []Zone{
		{X: 0, Y: 0, Width: 50, Height: 100},
		{X: 50, Y: 0, Width: 50, Height: 100},
	}
	tests := []struct {
		name  string
		zones []Zone
		want  error
	}{
		{"exact", halves, nil},
		{"with empty", append([]Zone{{X: 50, Y: 0, Width: 0, Height: 100}}, halves...), nil},
		{"gap", halves[:1], ErrCoverage},
		{"overlap", append([]Zone{{X: 40, Y: 0, Width: 20, Height: 10}}, halves...), ErrOverlap},
		{"duplicate", append(halves, halves[0]), ErrOverlap},
		{"outside", []Zone{{X: 90, Y: 0, Width: 20, Height: 100}}, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTiling(Full(), tt.zones)
			if tt.want == nil {
				if err != nil {
					t.Errorf("CheckTiling() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("CheckTiling() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Zone
		wantErr bool
	}{
		{in: "100x100+0+0", want: Full()},
		{in: "25x50+13+43", want: Zone{X: 13, Y: 43, Width: 25, Height: 50}},
		{in: " 40x30 ", want: Zone{Width: 40, Height: 30}},
		{in: "0x100+100+0", want: Zone{X: 100, Width: 0, Height: 100}},
		{in: "100", wantErr: true},
		{in: "10x10+5", wantErr: true},
		{in: "300x10+0+0", wantErr: true},
		{in: "200x10+100+0", wantErr: true},
		{in: "-1x10", wantErr: true},
		{in: "150x150", wantErr: true},
		{in: "60x10+50+0", wantErr: true},
		{in: "10x1+0+100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	z := Zone{X: 7, Y: 9, Width: 31, Height: 2}
	got, err := Parse(z.String())
	if err != nil || got != z {
		t.Errorf("Parse(%q) = %v, %v", z.String(), got, err)
	}
}
