// Package ruleset builds the immutable rules data used by character
// generation. A Ruleset is loaded once at startup and shared read-only.
package ruleset

import (
	"embed"
	"io/fs"
	"strconv"
	"strings"

	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/tables"
)

//go:embed data
var embedded embed.FS

// EmbeddedFS returns the bundled rules data: 2DA tables at the root and
// string tables under tlk/.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return sub
}

// LoadEmbedded builds the bundled ruleset
func LoadEmbedded() (*Ruleset, error) {
	return Load(EmbeddedFS())
}

// Tables is the set of tables a ruleset is built from
type Tables struct {
	Classes     tables.Table
	KitList     tables.Table
	XPLevel     tables.Table
	ClassSkills tables.Table
	MageSchools tables.Table
	Races       tables.Table
}

// Validate ensures every table is present
func (t *Tables) Validate() error {
	vb := errors.NewValidationBuilder()

	if t.Classes == nil {
		vb.RequiredField("Classes")
	}
	if t.KitList == nil {
		vb.RequiredField("KitList")
	}
	if t.XPLevel == nil {
		vb.RequiredField("XPLevel")
	}
	if t.ClassSkills == nil {
		vb.RequiredField("ClassSkills")
	}
	if t.MageSchools == nil {
		vb.RequiredField("MageSchools")
	}
	if t.Races == nil {
		vb.RequiredField("Races")
	}

	return vb.Build()
}

// Ruleset is the read-only rules data
type Ruleset struct {
	classes     []ie.ClassDefinition
	classByID   map[int]int
	classByName map[string]int
	kits        []ie.KitDefinition
	races       []ie.RaceDefinition
	raceByID    map[int]int
	schools     []ie.MageSchool
	startXP     map[string]ie.StartXP
	// nextLevel[name][level] is the experience needed to reach level
	nextLevel map[string][]int
	maxLevel  int
	// dualSwap maps a class id to the MC_WAS_ID of its first name component
	dualSwap map[int]int
}

// Load reads every rules table from fsys and builds the ruleset
func Load(fsys fs.FS) (*Ruleset, error) {
	load := func(name string) (tables.Table, error) {
		t, err := tables.LoadFS(fsys, name)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	var t Tables
	var err error
	if t.Classes, err = load(TableClasses); err != nil {
		return nil, err
	}
	if t.KitList, err = load(TableKitList); err != nil {
		return nil, err
	}
	if t.XPLevel, err = load(TableXPLevel); err != nil {
		return nil, err
	}
	if t.ClassSkills, err = load(TableClassSkills); err != nil {
		return nil, err
	}
	if t.MageSchools, err = load(TableMageSchools); err != nil {
		return nil, err
	}
	if t.Races, err = load(TableRaces); err != nil {
		return nil, err
	}

	return New(&t)
}

// New builds a ruleset from already loaded tables. Inconsistent rules data
// fails with a FailedPrecondition error.
func New(t *Tables) (*Ruleset, error) {
	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tables")
	}
	if err := checkColumns(t); err != nil {
		return nil, err
	}

	r := &Ruleset{
		classByID:   make(map[int]int),
		classByName: make(map[string]int),
		raceByID:    make(map[int]int),
		startXP:     make(map[string]ie.StartXP),
		nextLevel:   make(map[string][]int),
		dualSwap:    make(map[int]int),
	}

	r.loadRaces(t.Races)
	if err := r.loadClasses(t.Classes); err != nil {
		return nil, err
	}
	r.loadKits(t.KitList)
	r.loadSchools(t.MageSchools)
	r.loadStartXP(t.ClassSkills)
	if err := r.loadNextLevels(t.XPLevel); err != nil {
		return nil, err
	}
	if err := r.buildDualSwap(); err != nil {
		return nil, err
	}

	return r, nil
}

func checkColumns(t *Tables) error {
	byName := map[string]tables.Table{
		TableClasses:     t.Classes,
		TableKitList:     t.KitList,
		TableClassSkills: t.ClassSkills,
		TableMageSchools: t.MageSchools,
		TableRaces:       t.Races,
	}
	for name, cols := range requiredColumns {
		for _, col := range cols {
			if byName[name].ColumnIndex(col) == tables.NotFound {
				return errors.FailedPreconditionf("table %s is missing column %s", name, col)
			}
		}
	}
	return nil
}

func (r *Ruleset) loadRaces(t tables.Table) {
	nameRef, id := t.ColumnIndex(ColNameRef), t.ColumnIndex(ColID)
	for row := 0; row < t.RowCount(); row++ {
		race := ie.RaceDefinition{
			Index:   row,
			Name:    strings.ToUpper(t.RowName(row)),
			ID:      t.Int(row, id),
			NameRef: t.Int(row, nameRef),
		}
		r.raceByID[race.ID] = len(r.races)
		r.races = append(r.races, race)
	}
}

func (r *Ruleset) loadClasses(t tables.Table) error {
	cols := struct{ nameRef, descRef, titleRef, multi, id, wasID int }{
		t.ColumnIndex(ColNameRef), t.ColumnIndex(ColDescRef), t.ColumnIndex(ColTitleRef),
		t.ColumnIndex(ColMulti), t.ColumnIndex(ColID), t.ColumnIndex(ColMCWasID),
	}

	for row := 0; row < t.RowCount(); row++ {
		class := ie.ClassDefinition{
			Index:    row,
			Name:     strings.ToUpper(t.RowName(row)),
			ID:       t.Int(row, cols.id),
			Multi:    t.Int(row, cols.multi),
			WasID:    t.Int(row, cols.wasID),
			NameRef:  t.Int(row, cols.nameRef),
			DescRef:  t.Int(row, cols.descRef),
			TitleRef: t.Int(row, cols.titleRef),
			Allowed:  make(map[string]int),
		}
		for _, race := range r.races {
			if col := t.ColumnIndex(race.Name); col != tables.NotFound {
				class.Allowed[race.Name] = t.Int(row, col)
			}
		}

		if _, dup := r.classByID[class.ID]; dup {
			return errors.FailedPreconditionf("class id %d is used by more than one row", class.ID).
				WithMeta("row", class.Name)
		}
		r.classByID[class.ID] = row
		r.classByName[class.Name] = row
		r.classes = append(r.classes, class)
	}

	if len(r.classes) == 0 {
		return errors.FailedPrecondition("class table is empty")
	}
	return nil
}

func (r *Ruleset) loadKits(t tables.Table) {
	cols := struct{ mixed, help, unusable, class int }{
		t.ColumnIndex(ColKitMixed), t.ColumnIndex(ColKitHelp),
		t.ColumnIndex(ColKitUnusable), t.ColumnIndex(ColKitClass),
	}
	for row := 0; row < t.RowCount(); row++ {
		r.kits = append(r.kits, ie.KitDefinition{
			Index:     row,
			Name:      strings.ToUpper(t.RowName(row)),
			Usability: t.Int(row, cols.unusable),
			Class:     t.Int(row, cols.class),
			TitleRef:  t.Int(row, cols.mixed),
			HelpRef:   t.Int(row, cols.help),
		})
	}
}

func (r *Ruleset) loadSchools(t tables.Table) {
	nameRef, kit := t.ColumnIndex(ColNameRef), t.ColumnIndex(ColSchoolKit)
	for row := 0; row < t.RowCount(); row++ {
		r.schools = append(r.schools, ie.MageSchool{
			Index:        row,
			Name:         strings.ToUpper(t.RowName(row)),
			NameRef:      t.Int(row, nameRef),
			KitUsability: t.Int(row, kit),
		})
	}
}

func (r *Ruleset) loadStartXP(t tables.Table) {
	fresh, cont := t.ColumnIndex(ColStartXP), t.ColumnIndex(ColStartXP2)
	for row := 0; row < t.RowCount(); row++ {
		r.startXP[strings.ToUpper(t.RowName(row))] = ie.StartXP{
			Fresh:        t.Int(row, fresh),
			Continuation: t.Int(row, cont),
		}
	}
}

// loadNextLevels reads the numeric level columns. The highest level
// column defines the level cap.
func (r *Ruleset) loadNextLevels(t tables.Table) error {
	levelCols := make(map[int]int)
	for col := 0; col < t.ColumnCount(); col++ {
		level, err := strconv.Atoi(t.ColumnName(col))
		if err != nil || level < 1 {
			continue
		}
		levelCols[level] = col
		if level > r.maxLevel {
			r.maxLevel = level
		}
	}
	if r.maxLevel == 0 {
		return errors.FailedPreconditionf("table %s has no level columns", t.Name())
	}
	for level := 1; level <= r.maxLevel; level++ {
		if _, ok := levelCols[level]; !ok {
			return errors.FailedPreconditionf("table %s is missing level column %d", t.Name(), level)
		}
	}

	for row := 0; row < t.RowCount(); row++ {
		thresholds := make([]int, r.maxLevel+1)
		for level := 1; level <= r.maxLevel; level++ {
			thresholds[level] = t.Int(row, levelCols[level])
		}
		r.nextLevel[strings.ToUpper(t.RowName(row))] = thresholds
	}
	return nil
}

// buildDualSwap validates the class name components of every row and
// records the MC_WAS_ID of each row's first component. A component
// without a class row of its own is allowed; its mask is 0 and the
// model reports it with the not-found class id.
func (r *Ruleset) buildDualSwap() error {
	for _, class := range r.classes {
		names := ie.SplitClassName(class.Name)
		if len(names) > ie.MaxClassSlots {
			return errors.FailedPreconditionf("class row %s has %d components, at most %d are supported",
				class.Name, len(names), ie.MaxClassSlots)
		}
		for _, name := range names {
			if _, ok := r.nextLevel[name]; !ok {
				return errors.FailedPreconditionf("class %s has no %s row", name, TableXPLevel)
			}
		}

		mask := 0
		if row, ok := r.classByName[names[0]]; ok {
			mask = r.classes[row].WasID
		}
		r.dualSwap[class.ID] = mask
	}
	return nil
}

// Classes returns every class row in table order
func (r *Ruleset) Classes() []ie.ClassDefinition {
	return r.classes
}

// ClassByIndex returns the class at a table row
func (r *Ruleset) ClassByIndex(index int) (*ie.ClassDefinition, bool) {
	if index < 0 || index >= len(r.classes) {
		return nil, false
	}
	return &r.classes[index], true
}

// ClassByID returns the class row holding a class id
func (r *Ruleset) ClassByID(id int) (*ie.ClassDefinition, bool) {
	row, ok := r.classByID[id]
	if !ok {
		return nil, false
	}
	return &r.classes[row], true
}

// ClassByName returns the class row with a row name
func (r *Ruleset) ClassByName(name string) (*ie.ClassDefinition, bool) {
	row, ok := r.classByName[strings.ToUpper(name)]
	if !ok {
		return nil, false
	}
	return &r.classes[row], true
}

// KitByIndex returns the kit at a kit table row
func (r *Ruleset) KitByIndex(index int) (*ie.KitDefinition, bool) {
	if index < 0 || index >= len(r.kits) {
		return nil, false
	}
	return &r.kits[index], true
}

// FindKitByUsability returns the first kit row with the usability value,
// or tables.NotFound
func (r *Ruleset) FindKitByUsability(usability int) int {
	for i := range r.kits {
		if r.kits[i].Usability == usability {
			return i
		}
	}
	return tables.NotFound
}

// Races returns every race row in table order
func (r *Ruleset) Races() []ie.RaceDefinition {
	return r.races
}

// RaceByID returns the race row holding a race id
func (r *Ruleset) RaceByID(id int) (*ie.RaceDefinition, bool) {
	row, ok := r.raceByID[id]
	if !ok {
		return nil, false
	}
	return &r.races[row], true
}

// MageSchool returns the mage school at a table row
func (r *Ruleset) MageSchool(index int) (*ie.MageSchool, bool) {
	if index < 0 || index >= len(r.schools) {
		return nil, false
	}
	return &r.schools[index], true
}

// StartXP returns the starting experience columns for a class row name
func (r *Ruleset) StartXP(name string) (ie.StartXP, bool) {
	xp, ok := r.startXP[strings.ToUpper(name)]
	return xp, ok
}

// NextLevelThreshold returns the experience needed to reach level as name
func (r *Ruleset) NextLevelThreshold(name string, level int) (int, bool) {
	thresholds, ok := r.nextLevel[strings.ToUpper(name)]
	if !ok || level < 1 || level > r.maxLevel {
		return 0, false
	}
	return thresholds[level], true
}

// MaxLevel returns the highest level the next-level table defines
func (r *Ruleset) MaxLevel() int {
	return r.maxLevel
}

// DualSwapMask returns the MC_WAS_ID of the first name component of a
// class id, 0 for unknown ids
func (r *Ruleset) DualSwapMask(classID int) int {
	return r.dualSwap[classID]
}
