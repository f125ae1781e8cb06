package zone

import "microcity/internal/city"

// state is the decoded growth state of a growable zone center.
type state struct {
	developed bool
	density   int // 0..kind max, meaningful only when developed
	value     int // 0..kind max, meaningful only when developed
}

// Block geometry: populated zones occupy consecutive 9-sprite blocks, one
// per (value, density) combination, laid out value-major after the clear
// block. The center sprite is block base + 4.
const blockSpan = 9
const centerOffset = 4

func maxDensity(kind city.Kind) int {
	switch kind {
	case city.KindResidential:
		return ResMaxDensity
	case city.KindCommercial:
		return ComMaxDensity
	case city.KindIndustrial:
		return IndMaxDensity
	default:
		panic("zone: kind has no density range")
	}
}

func maxValue(kind city.Kind) int {
	switch kind {
	case city.KindResidential:
		return ResMaxValue
	case city.KindCommercial:
		return ComMaxValue
	case city.KindIndustrial:
		return IndMaxValue
	default:
		panic("zone: kind has no value range")
	}
}

func popBase(kind city.Kind) city.Tile {
	switch kind {
	case city.KindResidential:
		return city.ResPopBase
	case city.KindCommercial:
		return city.ComPopBase
	case city.KindIndustrial:
		return city.IndPopBase
	default:
		panic("zone: kind has no populated block")
	}
}

// blockBase returns the footprint base sprite for a populated zone at the
// given density and value.
func blockBase(kind city.Kind, density, value int) city.Tile {
	if density < 0 || density > maxDensity(kind) || value < 0 || value > maxValue(kind) {
		panic("zone: density/value out of range")
	}
	stride := maxDensity(kind) + 1
	return popBase(kind) + city.Tile((value*stride+density)*blockSpan)
}

// decodeGrowable reads density and value back out of a center tile's sprite
// index. The clear-zone centers decode as undeveloped.
func decodeGrowable(t city.Tile, kind city.Kind) state {
	i := t.Index()
	switch i {
	case city.ResClear, city.ComClear, city.IndClear:
		return state{}
	}
	base := popBase(kind)
	block := int(i-base-centerOffset) / blockSpan
	stride := maxDensity(kind) + 1
	return state{
		developed: true,
		density:   block % stride,
		value:     block / stride,
	}
}

// Population contributions. Pure functions of kind and density, strictly
// increasing in density; the census-clear pass sums them over the map.

// ResPopulation returns the residents contributed by a residential zone at
// the given density level.
func ResPopulation(density int) int { return 16 + 8*density }

// ComPopulation returns the commerce units contributed by a commercial zone
// at the given density level.
func ComPopulation(density int) int { return density + 1 }

// IndPopulation returns the industry units contributed by an industrial
// zone at the given density level.
func IndPopulation(density int) int { return density + 1 }

func addPopulation(c *city.Census, kind city.Kind, st state) {
	if !st.developed {
		return
	}
	switch kind {
	case city.KindResidential:
		c.ResPop += ResPopulation(st.density)
	case city.KindCommercial:
		c.ComPop += ComPopulation(st.density)
	case city.KindIndustrial:
		c.IndPop += IndPopulation(st.density)
	}
}
