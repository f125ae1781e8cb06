package city

// Tile is one grid cell: the low 10 bits select the terrain/building sprite
// index, the high 6 bits are independent status flags. The layout is frozen;
// saved cities and the engine's scan-order tie-breaks depend on it.
type Tile uint16

// IndexMask extracts the 10-bit sprite index from a tile word.
const IndexMask Tile = 0x03ff

// Status flag bits.
const (
	FlagZoneCenter  Tile = 0x0400
	FlagAnimated    Tile = 0x0800
	FlagBulldozable Tile = 0x1000
	FlagCombustible Tile = 0x2000
	FlagConductive  Tile = 0x4000
	FlagPowered     Tile = 0x8000
)

// Sprite index ranges. Zone blocks hold one 9/16/36-tile pattern per
// (density, value) combination; the center tile of each pattern is the block
// base plus the fixed center offset for its footprint size.
const (
	Dirt Tile = 0

	RiverBase Tile = 2
	LastRiver Tile = 20

	TreeBase Tile = 21
	LastTree Tile = 43

	Rubble     Tile = 44
	LastRubble Tile = 47

	Flood     Tile = 48
	LastFlood Tile = 51

	Radioactive Tile = 52

	FireBase Tile = 56
	LastFire Tile = 63

	RoadBase Tile = 64
	LastRoad Tile = 206

	WireBase Tile = 208
	LastWire Tile = 222

	RailBase Tile = 224
	LastRail Tile = 238

	ResBase      Tile = 240
	ResClear     Tile = 244
	ResPopBase   Tile = 249
	HospitalBase Tile = 405
	Hospital     Tile = 409
	ChurchBase   Tile = 414
	Church       Tile = 418
	LastRes      Tile = 422

	ComBase    Tile = 423
	ComClear   Tile = 427
	ComPopBase Tile = 432
	LastCom    Tile = 611

	IndBase    Tile = 612
	IndClear   Tile = 616
	IndPopBase Tile = 621
	LastInd    Tile = 692

	SeaportBase Tile = 693
	Seaport     Tile = 698
	LastSeaport Tile = 708

	AirportBase Tile = 709
	Airport     Tile = 716
	LastAirport Tile = 744

	CoalBase  Tile = 745
	CoalPlant Tile = 750
	LastCoal  Tile = 760

	FireStationBase Tile = 761
	FireStation     Tile = 765
	LastFireStation Tile = 769

	PoliceStationBase Tile = 770
	PoliceStation     Tile = 774
	LastPoliceStation Tile = 778

	StadiumBase Tile = 779
	Stadium     Tile = 784
	LastStadium Tile = 810

	NuclearBase  Tile = 811
	NuclearPlant Tile = 816
	LastNuclear  Tile = 826
)

// Index returns the sprite index with all flag bits stripped.
func (t Tile) Index() Tile { return t & IndexMask }

// Has reports whether every flag in mask is set.
func (t Tile) Has(mask Tile) bool { return t&mask == mask }

// IsConductive reports whether power travels across this tile.
func (t Tile) IsConductive() bool { return t&FlagConductive != 0 }

// IsZoneCenter reports whether this tile anchors a building footprint.
func (t Tile) IsZoneCenter() bool { return t&FlagZoneCenter != 0 }

// IsPowered reports whether the last power pass energized this tile.
func (t Tile) IsPowered() bool { return t&FlagPowered != 0 }

// IsBulldozable reports whether tools may clear this tile.
func (t Tile) IsBulldozable() bool { return t&FlagBulldozable != 0 }

// IsRoad reports whether the index lies in the road range.
func (t Tile) IsRoad() bool {
	i := t.Index()
	return i >= RoadBase && i <= LastRoad
}

// IsRail reports whether the index lies in the rail range.
func (t Tile) IsRail() bool {
	i := t.Index()
	return i >= RailBase && i <= LastRail
}

// IsWire reports whether the index lies in the power-line range.
func (t Tile) IsWire() bool {
	i := t.Index()
	return i >= WireBase && i <= LastWire
}

// IsTree reports whether the index lies in the forest range.
func (t Tile) IsTree() bool {
	i := t.Index()
	return i >= TreeBase && i <= LastTree
}

// IsRiver reports whether the index lies in the water range.
func (t Tile) IsRiver() bool {
	i := t.Index()
	return i >= RiverBase && i <= LastRiver
}

// IsRubble reports whether the index lies in the rubble range.
func (t Tile) IsRubble() bool {
	i := t.Index()
	return i >= Rubble && i <= LastRubble
}

// IsHazard reports whether the tile is fire, flood, or radioactive waste.
// Hazard tiles block footprint placement and cannot be driven or built over.
func (t Tile) IsHazard() bool {
	i := t.Index()
	return (i >= Flood && i <= LastFlood) || i == Radioactive || (i >= FireBase && i <= LastFire)
}

// Kind classifies a zone-center tile by the building it anchors.
type Kind uint8

const (
	KindNone Kind = iota
	KindResidential
	KindCommercial
	KindIndustrial
	KindHospital
	KindChurch
	KindSeaport
	KindAirport
	KindCoal
	KindNuclear
	KindFireStation
	KindPoliceStation
	KindStadium
)

// KindOf classifies a tile by its sprite index. Non-zone tiles map to
// KindNone. The residential range embeds hospital and church blocks, so
// those are carved out before the broad range checks.
func KindOf(t Tile) Kind {
	i := t.Index()
	switch {
	case i >= HospitalBase && i < ChurchBase:
		return KindHospital
	case i >= ChurchBase && i <= LastRes:
		return KindChurch
	case i >= ResBase && i < HospitalBase:
		return KindResidential
	case i >= ComBase && i <= LastCom:
		return KindCommercial
	case i >= IndBase && i <= LastInd:
		return KindIndustrial
	case i >= SeaportBase && i <= LastSeaport:
		return KindSeaport
	case i >= AirportBase && i <= LastAirport:
		return KindAirport
	case i >= CoalBase && i <= LastCoal:
		return KindCoal
	case i >= FireStationBase && i <= LastFireStation:
		return KindFireStation
	case i >= PoliceStationBase && i <= LastPoliceStation:
		return KindPoliceStation
	case i >= StadiumBase && i <= LastStadium:
		return KindStadium
	case i >= NuclearBase && i <= LastNuclear:
		return KindNuclear
	default:
		return KindNone
	}
}

// FootprintSize returns the footprint edge length for a building kind.
// Unknown kinds panic: a caller asking for the footprint of a non-building
// indicates a bug above the engine, not a runtime condition.
func FootprintSize(k Kind) int {
	switch k {
	case KindResidential, KindCommercial, KindIndustrial,
		KindHospital, KindChurch, KindFireStation, KindPoliceStation:
		return 3
	case KindSeaport, KindCoal, KindNuclear, KindStadium:
		return 4
	case KindAirport:
		return 6
	default:
		panic("city: no footprint for kind")
	}
}
