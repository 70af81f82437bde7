// Package character implements the character generation orchestrator
package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/ie-chargen/internal/actor"
	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/ie-chargen/internal/repositories/character"
	"github.com/KirkDiggler/ie-chargen/internal/services/character"
	"github.com/KirkDiggler/ie-chargen/internal/tlk"
)

// Rules is the rules data the orchestrator reads
type Rules interface {
	actor.Rules
	Classes() []ie.ClassDefinition
	Races() []ie.RaceDefinition
	RaceByID(id int) (*ie.RaceDefinition, bool)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Rules         Rules
	Strings       tlk.Resolver
	IDGenerator   idgen.Generator
	// Campaign selects the starting experience column
	Campaign actor.Campaign
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Strings == nil {
		vb.RequiredField("Strings")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	rules         Rules
	strings       tlk.Resolver
	idGenerator   idgen.Generator
	campaign      actor.Campaign
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID(characterIDPrefix)
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		rules:         cfg.Rules,
		strings:       cfg.Strings,
		idGenerator:   gen,
		campaign:      cfg.Campaign,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Character lifecycle methods

// CreateCharacter creates a classless character of the given race
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("race", input.Race, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	race, ok := o.raceByName(input.Race)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown race %q", input.Race).
			WithMeta(logKeyRace, input.Race)
	}

	block := ie.NewStatBlock(o.idGenerator.Generate())
	block.SetStat(ie.StatRace, race.ID)
	for _, slot := range ie.LevelSlots {
		block.SetStat(slot, 0)
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Block: block})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.Info("character created", logKeyCharacterID, block.ID, logKeyRace, race.Name)

	return &character.CreateCharacterOutput{
		CharacterID: out.Block.ID,
		Block:       out.Block,
	}, nil
}

// ListCharacters lists the ids of every stored character
func (o *Orchestrator) ListCharacters(ctx context.Context, _ *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{CharacterIDs: out.IDs}, nil
}

// DeleteCharacter deletes a stored character
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character").
			WithMeta(logKeyCharacterID, input.CharacterID)
	}

	return &character.DeleteCharacterOutput{}, nil
}

// Class selection methods

// ListClassOptions lists the class rows offered to a character's race
func (o *Orchestrator) ListClassOptions(ctx context.Context, input *character.ListClassOptionsInput) (*character.ListClassOptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, race, err := o.loadWithRace(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	out := &character.ListClassOptionsOutput{
		MageSchool: o.forcedMageSchool(race),
	}
	for _, class := range o.rules.Classes() {
		allowance := class.AllowedFor(race.Name)
		if class.IsMulti() && allowance != ie.AllowanceForbidden {
			out.HasMulti = true
		}
		if class.IsMulti() != input.Multiclass {
			continue
		}
		out.Options = append(out.Options, character.ClassOption{
			Selection:   class.Index + selectionOffset,
			Name:        class.Name,
			DisplayName: o.strings.Resolve(class.NameRef),
			Allowance:   allowance,
		})
	}

	return out, nil
}

// DescribeClass returns the display texts of a class row
func (o *Orchestrator) DescribeClass(_ context.Context, input *character.DescribeClassInput) (*character.DescribeClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class, err := o.classBySelection(input.Selection)
	if err != nil {
		return nil, err
	}

	return &character.DescribeClassOutput{
		Name:        class.Name,
		DisplayName: o.strings.Resolve(class.NameRef),
		Description: o.strings.Resolve(class.DescRef),
	}, nil
}

// SelectClass assigns the starting class, kit, experience and levels of a
// class row and stores the result
func (o *Orchestrator) SelectClass(ctx context.Context, input *character.SelectClassInput) (*character.SelectClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class, err := o.classBySelection(input.Selection)
	if err != nil {
		return nil, err
	}

	block, race, err := o.loadWithRace(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if class.AllowedFor(race.Name) == ie.AllowanceForbidden {
		return nil, errors.FailedPreconditionf("class %s is not available to race %s", class.Name, race.Name).
			WithMeta(logKeyClass, class.Name).
			WithMeta(logKeyRace, race.Name)
	}

	a, err := o.newActor(block)
	if err != nil {
		return nil, err
	}

	school := input.MageSchool
	if school == 0 {
		school = o.forcedMageSchool(race)
	}

	err = a.AssignStartingClass(class.Index, actor.StartOptions{
		PendingKit: input.PendingKit,
		MageSchool: school,
		Campaign:   o.campaign,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to assign class %s", class.Name)
	}

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Block: block}); err != nil {
		slog.Error("failed to save class selection", logKeyCharacterID, block.ID, logKeyError, err)
		return nil, errors.Wrapf(err, "failed to save character")
	}

	slog.Info("class selected",
		logKeyCharacterID, block.ID,
		logKeyClass, class.Name,
		"xp", block.Stat(ie.StatXP),
		"levels", a.Levels())

	return &character.SelectClassOutput{
		Summary: o.summarize(block, race, a),
	}, nil
}

// GetClassSummary returns every derived class value of a stored character
func (o *Orchestrator) GetClassSummary(ctx context.Context, input *character.GetClassSummaryInput) (*character.GetClassSummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	block, race, err := o.loadWithRace(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	a, err := o.newActor(block)
	if err != nil {
		return nil, err
	}

	return &character.GetClassSummaryOutput{
		Summary: o.summarize(block, race, a),
	}, nil
}

func (o *Orchestrator) loadWithRace(ctx context.Context, characterID string) (*ie.StatBlock, *ie.RaceDefinition, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", characterID, vb)
	if err := vb.Build(); err != nil {
		return nil, nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get character").
			WithMeta(logKeyCharacterID, characterID)
	}

	raceID := out.Block.Stat(ie.StatRace)
	race, ok := o.rules.RaceByID(raceID)
	if !ok {
		return nil, nil, errors.FailedPreconditionf("character has unknown race id %d", raceID).
			WithMeta(logKeyCharacterID, characterID)
	}

	return out.Block, race, nil
}

func (o *Orchestrator) newActor(block *ie.StatBlock) (*actor.Actor, error) {
	a, err := actor.New(&actor.Config{
		Stats:   block,
		Rules:   o.rules,
		Strings: o.strings,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character classes").
			WithMeta(logKeyCharacterID, block.ID)
	}
	return a, nil
}

func (o *Orchestrator) classBySelection(selection int) (*ie.ClassDefinition, error) {
	class, ok := o.rules.ClassByIndex(selection - selectionOffset)
	if !ok {
		return nil, errors.NotFoundf("no class for selection %d", selection).
			WithMeta("selection", selection)
	}
	return class, nil
}

func (o *Orchestrator) raceByName(name string) (*ie.RaceDefinition, bool) {
	for _, race := range o.rules.Races() {
		if strings.EqualFold(race.Name, name) {
			return &race, true
		}
	}
	return nil, false
}

// forcedMageSchool returns the illusionist school when any class row
// restricts the race to it
func (o *Orchestrator) forcedMageSchool(race *ie.RaceDefinition) int {
	for _, class := range o.rules.Classes() {
		if class.AllowedFor(race.Name) == ie.AllowanceIllusionist {
			return ie.MageSchoolIllusionist
		}
	}
	return 0
}

func (o *Orchestrator) summarize(block *ie.StatBlock, race *ie.RaceDefinition, a *actor.Actor) *character.ClassSummary {
	title, hasTitle := a.ClassTitle()

	summary := &character.ClassSummary{
		CharacterID:  block.ID,
		Race:         race.Name,
		ClassID:      a.ClassID(),
		ClassNames:   a.ClassNames(),
		Classes:      a.Classes(),
		Title:        title,
		HasTitle:     hasTitle,
		IsDual:       a.IsDual(),
		IsMulti:      a.IsMulti(),
		IsDualSwap:   a.IsDualSwap(),
		KitIndex:     a.KitIndex(),
		XP:           block.Stat(ie.StatXP),
		NumClasses:   a.NumClasses(),
		Levels:       a.Levels(),
		NextLevels:   a.NextLevels(),
		LevelDiffs:   a.LevelDiffs(),
		NextLevelExp: a.NextLevelExp(),
	}
	if class, ok := a.ClassRow(); ok {
		summary.ClassRow = class.Name
	}
	if summary.KitIndex != 0 {
		if kit, ok := o.rules.KitByIndex(summary.KitIndex); ok {
			summary.Kit = kit.Name
		}
	}
	return summary
}
