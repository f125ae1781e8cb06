package city

// PlaceResult reports the outcome of a footprint placement attempt.
// Blocked placements are routine simulation outcomes, not errors.
type PlaceResult uint8

const (
	PlaceOK PlaceResult = iota
	PlaceBlocked
)

// centerOffsets maps footprint edge length to the (col, row) of the center
// tile within the pattern. All sizes anchor at (1, 1): the pattern extends
// one tile up/left of the center and size-2 tiles down/right.
var centerOffsets = map[int][2]int{
	3: {1, 1},
	4: {1, 1},
	6: {1, 1},
}

// footprintFlags returns the status bits for one pattern position. Every
// footprint tile conducts, so a wire touching any edge of a building powers
// it; only the anchor carries the zone-center bit.
func footprintFlags(col, row, size int) Tile {
	c := centerOffsets[size]
	if col == c[0] && row == c[1] {
		return FlagZoneCenter | FlagBulldozable | FlagCombustible | FlagConductive
	}
	return FlagBulldozable | FlagCombustible | FlagConductive
}

// clearable reports whether a footprint may overwrite the tile. Dirt, trees,
// and rubble clear automatically; everything else (water, roads, rails,
// wires, hazards, existing zones) blocks.
func clearable(t Tile) bool {
	return t.Index() == Dirt || t.IsTree() || t.IsRubble()
}

// FitsFootprint reports whether a size×size pattern anchored on
// (centerX, centerY) could be placed right now. It reads only.
func (m *Map) FitsFootprint(centerX, centerY, size int) bool {
	c, ok := centerOffsets[size]
	if !ok {
		panic("city: no footprint pattern for size")
	}
	x0 := centerX - c[0]
	y0 := centerY - c[1]
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			x, y := x0+col, y0+row
			if !m.InBounds(x, y) {
				return false
			}
			if !clearable(m.Get(x, y)) {
				return false
			}
		}
	}
	return true
}

// PlaceFootprint writes a size×size pattern of baseIndex+offset sprites
// anchored on (centerX, centerY). The check and the write are atomic from
// the caller's perspective: if any covered tile blocks, or the pattern runs
// off the map, nothing is written and PlaceBlocked is returned.
func (m *Map) PlaceFootprint(centerX, centerY, size int, baseIndex Tile) PlaceResult {
	if !m.FitsFootprint(centerX, centerY, size) {
		return PlaceBlocked
	}
	c := centerOffsets[size]
	m.stampFootprint(centerX-c[0], centerY-c[1], size, baseIndex)
	return PlaceOK
}

// RebuildFootprint rewrites a footprint pattern unconditionally. It is used
// for density changes and the periodic self-repair of administrative zones,
// where the zone already owns every covered tile. The pattern must fit on
// the map; it does for any live zone center.
func (m *Map) RebuildFootprint(centerX, centerY, size int, baseIndex Tile) {
	c, ok := centerOffsets[size]
	if !ok {
		panic("city: no footprint pattern for size")
	}
	m.stampFootprint(centerX-c[0], centerY-c[1], size, baseIndex)
}

func (m *Map) stampFootprint(x0, y0, size int, baseIndex Tile) {
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			idx := baseIndex + Tile(row*size+col)
			m.Set(x0+col, y0+row, idx|footprintFlags(col, row, size))
		}
	}
}

// RubbleFootprint replaces a footprint with bulldozable rubble, cycling the
// four rubble sprites. Used when a zone declines out of existence or a
// center is bulldozed.
func (m *Map) RubbleFootprint(centerX, centerY, size int) {
	c, ok := centerOffsets[size]
	if !ok {
		panic("city: no footprint pattern for size")
	}
	x0 := centerX - c[0]
	y0 := centerY - c[1]
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			idx := Rubble + Tile((row*size+col)&3)
			m.Set(x0+col, y0+row, idx|FlagBulldozable)
		}
	}
}
