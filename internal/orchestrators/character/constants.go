package character

// Log attribute keys
const (
	logKeyCharacterID = "character_id"
	logKeyClass       = "class"
	logKeyRace        = "race"
	logKeyError       = "error"
)

// selectionOffset converts between 1-based selections and class table rows
const selectionOffset = 1

// Character ids are generated with this prefix
const characterIDPrefix = "char"
