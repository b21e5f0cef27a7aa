package zone

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroTotal is returned when the ratios of a split sum to zero.
	ErrZeroTotal = errors.New("ratios sum to zero")

	// ErrInvalidRatio is returned for negative, NaN or infinite ratios, and for
	// ratio lists whose sum overflows.
	ErrInvalidRatio = errors.New("ratio must be a finite non-negative number")
)

// CheckRatios validates a ratio list without producing geometry.
func CheckRatios(ratios []float64) error {
	var total float64
	for i, r := range ratios {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return fmt.Errorf("%w: ratio %d is %v", ErrInvalidRatio, i, r)
		}
		total += r
	}
	if math.IsInf(total, 0) {
		return fmt.Errorf("%w: sum overflows", ErrInvalidRatio)
	}
	if total == 0 {
		return ErrZeroTotal
	}
	return nil
}

// Slice divides root along dir into len(ratios) adjacent pieces sized in
// proportion to ratios. Piece i receives floor(size * (ratios[i] / total))
// units, and the size - sum leftover units go one each to the first pieces.
// The returned pieces are in ratio order and always span root exactly.
func Slice(root Zone, ratios []float64, dir Direction) ([]Zone, error) {
	if err := CheckRatios(ratios); err != nil {
		return nil, err
	}

	var total float64
	for _, r := range ratios {
		total += r
	}

	size := root.Extent(dir)
	extents := make([]uint8, len(ratios))
	used := 0
	for i, r := range ratios {
		extents[i] = uint8(math.Floor(float64(size) * (r / total)))
		used += int(extents[i])
	}
	for i := 0; i < int(size)-used && i < len(extents); i++ {
		extents[i]++
	}

	pieces := make([]Zone, len(extents))
	offset := 0
	for i, e := range extents {
		p := root
		if dir == Vertical {
			p.Y = uint8(int(root.Y) + offset)
			p.Height = e
		} else {
			p.X = uint8(int(root.X) + offset)
			p.Width = e
		}
		pieces[i] = p
		offset += int(e)
	}
	return pieces, nil
}
