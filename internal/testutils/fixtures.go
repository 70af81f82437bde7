package testutils

import (
	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
)

// Race and class ids of the bundled ruleset used across test fixtures
const (
	TestRaceHuman = 1
	TestRaceElf   = 2
	TestRaceDwarf = 4
	TestRaceGnome = 6

	TestClassMage         = 1
	TestClassFighter      = 2
	TestClassThief        = 4
	TestClassFighterMage  = 7
	TestClassFighterThief = 9
	TestClassBarbarian    = 21

	// TestCharacterID is the default character id for test fixtures
	TestCharacterID = "char-test-001"
)

// CreateTestStatBlock creates a fresh stat block for the given race with no class
func CreateTestStatBlock(id string, race int) *ie.StatBlock {
	block := ie.NewStatBlock(id)
	block.SetStat(ie.StatRace, race)
	return block
}

// CreateTestClassedStatBlock creates a stat block that already carries a class,
// multiclass flags and level slots
func CreateTestClassedStatBlock(id string, race, class, mcFlags int, levels ...int) *ie.StatBlock {
	block := CreateTestStatBlock(id, race)
	block.SetStat(ie.StatClass, class)
	block.SetStat(ie.StatMCFlags, mcFlags)
	for i, level := range levels {
		if i >= len(ie.LevelSlots) {
			break
		}
		block.SetStat(ie.LevelSlots[i], level)
	}
	return block
}
