package actor

import (
	"strings"

	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
)

// Campaign describes the game being started
type Campaign struct {
	// Continuation starts directly in the expansion campaign
	Continuation bool
	// Converted marks a ruleset converted from the earlier game, whose
	// non-tutorial starts begin with no experience
	Converted bool
	PlayMode  int
}

// StartOptions carries the choices pending when a class is picked
type StartOptions struct {
	// PendingKit is the kit already chosen, 0 for none
	PendingKit int
	// MageSchool is the pending mage school row, 0 for none
	MageSchool int
	Campaign   Campaign
}

// AssignStartingClass writes the class, kit, starting experience and
// starting levels of the class table row at index, then resets the
// model.
//
// The hit point stat receives index as a hand-off marker for the ability
// roll stage, which replaces it with real hit points.
func (a *Actor) AssignStartingClass(index int, opts StartOptions) error {
	class, ok := a.rules.ClassByIndex(index)
	if !ok {
		return errors.NotFoundf("class row %d not found", index).WithMeta("index", index)
	}

	xp, err := a.startingXP(class.Name, opts.Campaign)
	if err != nil {
		return err
	}

	a.stats.SetStat(ie.StatClass, class.ID)

	// mage multiclasses of races restricted to one school
	if opts.MageSchool != 0 && opts.PendingKit == 0 && strings.Contains(class.Name, ie.ClassNameMage) {
		if kit, ok := a.schoolKit(opts.MageSchool); ok {
			a.stats.SetStat(ie.StatKit, ie.EncodeKit(kit))
		}
	}

	a.stats.SetStat(ie.StatHandoffClassIndex, index)
	a.stats.SetStat(ie.StatXP, xp)

	names := []string{class.Name}
	if class.IsMulti() && a.stats.Stat(ie.StatMCFlags)&ie.MCWasAnyClass == 0 {
		names = ie.SplitClassName(class.Name)
	}

	share := xp / len(names)
	for i, slot := range ie.LevelSlots {
		level := 0
		if i < len(names) {
			level = a.levelForXP(names[i], 0, share)
		}
		a.stats.SetStat(slot, level)
	}

	return a.Reset()
}

// startingXP picks the starting experience of a class row for a campaign
func (a *Actor) startingXP(name string, campaign Campaign) (int, error) {
	if name == ie.ClassNameBarbarian {
		name = ie.ClassNameFighter
	}

	if campaign.Converted && !campaign.Continuation && campaign.PlayMode != ie.PlayModeTutorial {
		return 0, nil
	}

	xp, ok := a.rules.StartXP(name)
	if !ok {
		return 0, errors.FailedPreconditionf("class %s has no starting experience", name).
			WithMeta("class", name)
	}

	if campaign.Continuation {
		return xp.Continuation, nil
	}
	return xp.Fresh, nil
}

// schoolKit returns the kit row of a mage school
func (a *Actor) schoolKit(school int) (int, bool) {
	s, ok := a.rules.MageSchool(school)
	if !ok {
		return 0, false
	}

	kit := a.rules.FindKitByUsability(s.KitUsability)
	if kit < 0 {
		return 0, false
	}
	return kit, true
}
