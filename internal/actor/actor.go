// Package actor derives class, level and kit information from a
// character's stat block and performs the starting class assignment of
// character generation.
//
// Every query is memoized until Reset. Nothing invalidates the memo on
// its own: callers that change class, kit, level or experience stats
// behind the Actor's back must call Reset before querying again.
package actor

//go:generate mockgen -destination=mock/mock_actor.go -package=actormock github.com/KirkDiggler/ie-chargen/internal/actor Rules,StatAccessor

import (
	"slices"

	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/tlk"
)

// titleSeparator joins the old and new class titles of a dual-class character
const titleSeparator = " / "

// noTitle is the string table sentinel for an empty title
const noTitle = "*"

// StatAccessor reads and writes a character's stats
type StatAccessor interface {
	Stat(id ie.Stat) int
	SetStat(id ie.Stat, value int)
}

// Rules is the read-only rules data the model consults.
// Lookups report misses through their bool or a -1 index.
type Rules interface {
	ClassByIndex(index int) (*ie.ClassDefinition, bool)
	ClassByID(id int) (*ie.ClassDefinition, bool)
	ClassByName(name string) (*ie.ClassDefinition, bool)
	KitByIndex(index int) (*ie.KitDefinition, bool)
	FindKitByUsability(usability int) int
	MageSchool(index int) (*ie.MageSchool, bool)
	StartXP(name string) (ie.StartXP, bool)
	NextLevelThreshold(name string, level int) (int, bool)
	MaxLevel() int
	DualSwapMask(classID int) int
}

// Config holds the collaborators of an Actor
type Config struct {
	Stats StatAccessor
	Rules Rules
	// Strings resolves title string references; optional
	Strings tlk.Resolver
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Stats == nil {
		vb.RequiredField("stats")
	}
	if c.Rules == nil {
		vb.RequiredField("rules")
	}
	return vb.Build()
}

// Actor is the class model of one character
type Actor struct {
	stats   StatAccessor
	rules   Rules
	strings tlk.Resolver

	classID int
	// class is nil while no class is assigned
	class  *ie.ClassDefinition
	isDual int
	multi  bool

	cache cache
}

// New wraps a stat block. It fails when the stored class id has no
// class table row.
func New(cfg *Config) (*Actor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Actor{
		stats:   cfg.Stats,
		rules:   cfg.Rules,
		strings: cfg.Strings,
	}
	if a.strings == nil {
		a.strings = (*tlk.Table)(nil)
	}

	if err := a.Reset(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset re-reads the class id and multiclass flags and drops every
// memoized value. Call it after dual-classing, leveling or any other
// change to the underlying stats.
func (a *Actor) Reset() error {
	a.cache = cache{}
	a.classID = a.stats.Stat(ie.StatClass)
	a.isDual = a.stats.Stat(ie.StatMCFlags) & ie.MCWasAnyClass
	a.class = nil
	a.multi = false

	if a.classID == 0 {
		return nil
	}

	class, ok := a.rules.ClassByID(a.classID)
	if !ok {
		return errors.FailedPreconditionf("class id %d has no class table row", a.classID).
			WithMeta("class_id", a.classID)
	}
	a.class = class
	a.multi = class.IsMulti()
	return nil
}

// ClassID returns the stored class id, 0 when unassigned
func (a *Actor) ClassID() int {
	return a.classID
}

// ClassRow returns the class table row of the stored class id
func (a *Actor) ClassRow() (*ie.ClassDefinition, bool) {
	return a.class, a.class != nil
}

// IsDual reports whether the character has dual-classed
func (a *Actor) IsDual() bool {
	return a.isDual != 0
}

// IsMulti reports whether the class row is a multiclass row and the
// character has not dual-classed
func (a *Actor) IsMulti() bool {
	return a.multi && a.isDual == 0
}

// Classes returns the class id of each class name component, in the
// same order as ClassNames
func (a *Actor) Classes() []int {
	return slices.Clone(a.cache.classes.get(func() []int {
		names := a.ClassNames()
		ids := make([]int, 0, len(names))
		for _, name := range names {
			id := -1
			if class, ok := a.rules.ClassByName(name); ok {
				id = class.ID
			}
			ids = append(ids, id)
		}
		return ids
	}))
}

// ClassNames returns the class names of the class row, reversed when the
// level slots of a dual-class character are swapped
func (a *Actor) ClassNames() []string {
	return slices.Clone(a.cache.classNames.get(func() []string {
		if a.class == nil {
			return nil
		}
		names := ie.SplitClassName(a.class.Name)
		if a.IsDualSwap() {
			slices.Reverse(names)
		}
		return names
	}))
}

// IsDualSwap reports whether the level slots are stored opposite to the
// class row's name order. It holds when the dual-class flags share a bit
// with the MC_WAS_ID of the row's first class name.
func (a *Actor) IsDualSwap() bool {
	return a.cache.dualSwap.get(func() bool {
		if a.class == nil {
			return false
		}
		return a.isDual&a.rules.DualSwapMask(a.classID) != 0
	})
}

// KitIndex returns the kit table row of the character's kit, 0 for none
func (a *Actor) KitIndex() int {
	return a.cache.kitIndex.get(func() int {
		raw := a.stats.Stat(ie.StatKit)

		index := 0
		if raw&ie.KitEncodedMask == ie.KitEncodedFlag {
			index = raw & ie.KitIndexMask
		}

		// The bare flag is the base class sentinel, and also the
		// usability value of a real kit. Only scan when it is not.
		if index == 0 && raw != ie.KitEncodedFlag {
			index = a.rules.FindKitByUsability(raw)
			if index < 0 {
				index = 0
			}
		}
		return index
	})
}

// Levels returns the positive level slots in class name order
func (a *Actor) Levels() []int {
	return slices.Clone(a.cache.levels.get(func() []int {
		levels := make([]int, 0, ie.MaxClassSlots)
		for _, slot := range ie.LevelSlots {
			if level := a.stats.Stat(slot); level > 0 {
				levels = append(levels, level)
			}
		}
		if a.IsDualSwap() {
			slices.Reverse(levels)
		}
		return levels
	}))
}

// LevelDiffs returns how many levels each class can gain right now
func (a *Actor) LevelDiffs() []int {
	levels, next := a.Levels(), a.NextLevels()

	diffs := make([]int, 0, len(levels))
	for i := 0; i < len(levels) && i < len(next); i++ {
		diffs = append(diffs, next[i]-levels[i])
	}
	return diffs
}

// NextLevelExp returns the experience needed for the next level of each
// class, -1 once a class is at the level cap
func (a *Actor) NextLevelExp() []int {
	names, levels := a.ClassNames(), a.Levels()

	thresholds := make([]int, 0, len(levels))
	for i := 0; i < len(names) && i < len(levels); i++ {
		xp, ok := a.rules.NextLevelThreshold(names[i], levels[i]+1)
		if !ok {
			xp = -1
		}
		thresholds = append(thresholds, xp)
	}
	return thresholds
}

// NextLevels returns the level each class reaches with its share of the
// character's experience. The old class of a dual-class character keeps
// its stored level.
func (a *Actor) NextLevels() []int {
	return slices.Clone(a.cache.nextLevels.get(func() []int {
		num := a.NumClasses()
		if num == 0 {
			return nil
		}

		names, levels := a.ClassNames(), a.Levels()
		share := a.stats.Stat(ie.StatXP) / num

		next := make([]int, 0, len(levels))
		for i := 0; i < len(names) && i < len(levels); i++ {
			level := levels[i]
			if i < num {
				level = a.levelForXP(names[i], level, share)
			}
			next = append(next, level)
		}
		return next
	}))
}

// NumClasses returns the number of classes that still gain experience
func (a *Actor) NumClasses() int {
	return a.cache.numClasses.get(func() int {
		switch {
		case a.class == nil:
			return 0
		case a.isDual != 0:
			return 1
		default:
			return len(a.ClassNames())
		}
	})
}

// ClassTitle returns the display title of the character's class. The
// bool is false when there is no title.
func (a *Actor) ClassTitle() (string, bool) {
	t := a.cache.classTitle.get(func() title {
		text := a.synthesizeTitle()
		if text == "" || text == noTitle {
			return title{}
		}
		return title{text: text, ok: true}
	})
	return t.text, t.ok
}

func (a *Actor) synthesizeTitle() string {
	if ref := a.stats.Stat(ie.StatTitle1); ref != 0 {
		return a.strings.Resolve(ref)
	}
	if a.class == nil {
		return ""
	}

	switch {
	case a.multi && a.isDual == 0:
		return a.strings.Resolve(a.class.TitleRef)
	case a.isDual != 0:
		classes := a.Classes()
		old := 0
		if kit, ok := a.kit(); ok {
			old = kit.TitleRef
		} else if len(classes) > 1 {
			old = a.classTitleRef(classes[1])
		}
		current := 0
		if len(classes) > 0 {
			current = a.classTitleRef(classes[0])
		}
		return a.strings.Resolve(old) + titleSeparator + a.strings.Resolve(current)
	default:
		if kit, ok := a.kit(); ok {
			return a.strings.Resolve(kit.TitleRef)
		}
		return a.strings.Resolve(a.class.TitleRef)
	}
}

// kit returns the decoded kit row, false for no kit
func (a *Actor) kit() (*ie.KitDefinition, bool) {
	index := a.KitIndex()
	if index == 0 {
		return nil, false
	}
	return a.rules.KitByIndex(index)
}

func (a *Actor) classTitleRef(classID int) int {
	class, ok := a.rules.ClassByID(classID)
	if !ok {
		return 0
	}
	return class.TitleRef
}

// levelForXP advances from level while the next level's threshold for
// name is within xp, stopping at the level cap.
func (a *Actor) levelForXP(name string, level, xp int) int {
	for next := level + 1; next <= a.rules.MaxLevel(); next++ {
		threshold, ok := a.rules.NextLevelThreshold(name, next)
		if !ok || threshold > xp {
			break
		}
		level = next
	}
	return level
}
