// Package ie defines the stat identifiers and rules records of an
// Infinity Engine character.
package ie

// Stat identifies one entry of a character's stat block
type Stat int

// Stat identifiers used by character generation.
// Values follow the engine's stat numbering.
const (
	StatHitPoints Stat = 0
	StatLevel     Stat = 34
	StatXP        Stat = 44
	StatLevel2    Stat = 68
	StatLevel3    Stat = 69
	StatMCFlags   Stat = 151
	StatKit       Stat = 152
	StatRace      Stat = 201
	StatClass     Stat = 203
	StatTitle1    Stat = 207
)

// StatHandoffClassIndex is the stat that carries the selected class row
// index from class selection to the ability roll stage. It shares the
// hit point slot; the roll stage overwrites it with real hit points.
const StatHandoffClassIndex = StatHitPoints

// LevelSlots lists the level stats in primary, second, third order
var LevelSlots = [...]Stat{StatLevel, StatLevel2, StatLevel3}

// MaxClassSlots is the number of simultaneous class slots a character has
const MaxClassSlots = len(LevelSlots)

// Multiclass flag bits stored in StatMCFlags
const (
	MCWasFighter = 0x0008
	MCWasMage    = 0x0010
	MCWasCleric  = 0x0020
	MCWasThief   = 0x0040
	MCWasDruid   = 0x0080
	MCWasRanger  = 0x0100

	// MCWasAnyClass is set on every dual-classed character
	MCWasAnyClass = MCWasFighter | MCWasMage | MCWasCleric | MCWasThief | MCWasDruid | MCWasRanger
)

// Kit encoding
const (
	// KitEncodedMask selects the bits that mark an explicit kit index
	KitEncodedMask = 0xc000
	// KitEncodedFlag marks an explicit kit index in the low 12 bits.
	// The bare value also means "base class, no kit".
	KitEncodedFlag = 0x4000
	// KitIndexMask extracts the explicit kit index
	KitIndexMask = 0x0fff
)

// EncodeKit returns the kit stat value for an explicit kit table index
func EncodeKit(index int) int {
	return KitEncodedFlag + index
}
