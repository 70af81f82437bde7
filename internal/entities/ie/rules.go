package ie

import "strings"

// Race allowance values in the class table race columns
const (
	AllowanceForbidden   = 0
	AllowanceAllowed     = 1
	AllowanceIllusionist = 2
)

// MageSchoolIllusionist is the mage school forced by an illusionist allowance
const MageSchoolIllusionist = 5

// PlayModeTutorial is the play mode of the tutorial campaign
const PlayModeTutorial = 1

// ClassNameSeparator joins class names in compound class rows
const ClassNameSeparator = "_"

// Class row names with special handling during class assignment
const (
	ClassNameMage      = "MAGE"
	ClassNameFighter   = "FIGHTER"
	ClassNameBarbarian = "BARBARIAN"
)

// SplitClassName splits a compound class row name into its class names
func SplitClassName(name string) []string {
	return strings.Split(strings.ToUpper(name), ClassNameSeparator)
}

// ClassDefinition is one row of the class table
type ClassDefinition struct {
	// Index is the row index in the class table
	Index int
	// Name is the row name, e.g. FIGHTER or FIGHTER_MAGE
	Name string
	// ID is the class id stored in StatClass
	ID int
	// Multi is the multiclass column; non-zero for multiclass rows
	Multi int
	// WasID is the MC_WAS_ID bit of the class, used for dual-class ordering
	WasID int

	NameRef  int
	DescRef  int
	TitleRef int

	// Allowed maps race row names to the race allowance
	Allowed map[string]int
}

// IsMulti reports whether the row is a multiclass combination
func (c *ClassDefinition) IsMulti() bool {
	return c.Multi != 0
}

// AllowedFor returns the allowance for a race, forbidden when unknown
func (c *ClassDefinition) AllowedFor(race string) int {
	return c.Allowed[race]
}

// KitDefinition is one row of the kit table
type KitDefinition struct {
	Index int
	Name  string
	// Usability is the UNUSABLE column, also used as the kit's stat value
	Usability int
	// Class is the base class id the kit belongs to
	Class int

	TitleRef int
	HelpRef  int
}

// RaceDefinition is one row of the race table
type RaceDefinition struct {
	Index   int
	Name    string
	ID      int
	NameRef int
}

// MageSchool is one row of the mage school table
type MageSchool struct {
	Index   int
	Name    string
	NameRef int
	// KitUsability is the usability value of the matching kit
	KitUsability int
}

// StartXP holds the starting experience columns of a class
type StartXP struct {
	Fresh        int
	Continuation int
}
