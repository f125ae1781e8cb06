package sim

import (
	"image/color"

	"microcity/internal/city"
)

// Display classes, one per broad tile family. The powered bit is folded in
// on zone centers so the viewer can shade energized buildings.
const (
	classDirt uint8 = iota
	classRiver
	classTree
	classRubble
	classHazard
	classRoad
	classWire
	classRail
	classRes
	classCom
	classInd
	classService
	classPlant

	displayPoweredBit uint8 = 0x10
)

var cityPalette = buildCityPalette()

// Palette exposes the color palette used for rendering the city world.
func (w *World) Palette() []color.RGBA {
	return cityPalette
}

func (w *World) refreshDisplay() {
	cells := w.sched.Map().Cells()
	for i, raw := range cells {
		w.display[i] = classify(city.Tile(raw))
	}
}

func classify(t city.Tile) uint8 {
	var c uint8
	switch {
	case t.IsRiver():
		c = classRiver
	case t.IsTree():
		c = classTree
	case t.IsRubble():
		c = classRubble
	case t.IsHazard():
		c = classHazard
	case t.IsRoad():
		c = classRoad
	case t.IsWire():
		c = classWire
	case t.IsRail():
		c = classRail
	default:
		switch city.KindOf(t) {
		case city.KindResidential:
			c = classRes
		case city.KindCommercial:
			c = classCom
		case city.KindIndustrial:
			c = classInd
		case city.KindHospital, city.KindChurch, city.KindFireStation,
			city.KindPoliceStation, city.KindSeaport, city.KindAirport,
			city.KindStadium:
			c = classService
		case city.KindCoal, city.KindNuclear:
			c = classPlant
		default:
			c = classDirt
		}
	}
	if t.IsZoneCenter() && t.IsPowered() {
		c |= displayPoweredBit
	}
	return c
}

func buildCityPalette() []color.RGBA {
	palette := make([]color.RGBA, 32)
	for i := range palette {
		base := classColor(uint8(i) &^ displayPoweredBit)
		if uint8(i)&displayPoweredBit != 0 {
			base = brighten(base)
		}
		palette[i] = base
	}
	return palette
}

func classColor(c uint8) color.RGBA {
	switch c {
	case classRiver:
		return color.RGBA{R: 40, G: 80, B: 180, A: 255}
	case classTree:
		return color.RGBA{R: 40, G: 110, B: 50, A: 255}
	case classRubble:
		return color.RGBA{R: 110, G: 100, B: 90, A: 255}
	case classHazard:
		return color.RGBA{R: 230, G: 80, B: 30, A: 255}
	case classRoad:
		return color.RGBA{R: 60, G: 60, B: 60, A: 255}
	case classWire:
		return color.RGBA{R: 200, G: 180, B: 60, A: 255}
	case classRail:
		return color.RGBA{R: 120, G: 90, B: 50, A: 255}
	case classRes:
		return color.RGBA{R: 70, G: 170, B: 70, A: 255}
	case classCom:
		return color.RGBA{R: 70, G: 90, B: 200, A: 255}
	case classInd:
		return color.RGBA{R: 190, G: 170, B: 60, A: 255}
	case classService:
		return color.RGBA{R: 170, G: 110, B: 180, A: 255}
	case classPlant:
		return color.RGBA{R: 200, G: 120, B: 40, A: 255}
	default:
		return color.RGBA{R: 96, G: 72, B: 48, A: 255}
	}
}

func brighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 {
		n := int(v) + 60
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}
