package ruleset

// Table names
const (
	TableClasses     = "CLASSES"
	TableKitList     = "KITLIST"
	TableXPLevel     = "XPLEVEL"
	TableClassSkills = "CLSKILLS"
	TableMageSchools = "MAGESCH"
	TableRaces       = "RACES"
)

// Column names
const (
	ColNameRef  = "NAME_REF"
	ColDescRef  = "DESC_REF"
	ColTitleRef = "TITLE_REF"
	ColMulti    = "MULTI"
	ColID       = "ID"
	ColMCWasID  = "MC_WAS_ID"

	ColKitMixed    = "MIXED"
	ColKitHelp     = "HELP"
	ColKitUnusable = "UNUSABLE"
	ColKitClass    = "CLASS"

	ColStartXP  = "STARTXP"
	ColStartXP2 = "STARTXP2"

	ColSchoolKit = "KIT"
)

var requiredColumns = map[string][]string{
	TableClasses:     {ColNameRef, ColDescRef, ColTitleRef, ColMulti, ColID, ColMCWasID},
	TableKitList:     {ColKitMixed, ColKitHelp, ColKitUnusable, ColKitClass},
	TableClassSkills: {ColStartXP, ColStartXP2},
	TableMageSchools: {ColNameRef, ColSchoolKit},
	TableRaces:       {ColNameRef, ColID},
}
