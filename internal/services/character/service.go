// Package character defines the interface for character generation operations
package character

import (
	"context"

	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
)

// Service defines the interface for character generation operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Class selection
	ListClassOptions(ctx context.Context, input *ListClassOptionsInput) (*ListClassOptionsOutput, error)
	DescribeClass(ctx context.Context, input *DescribeClassInput) (*DescribeClassOutput, error)
	SelectClass(ctx context.Context, input *SelectClassInput) (*SelectClassOutput, error)

	// Derived class information
	GetClassSummary(ctx context.Context, input *GetClassSummaryInput) (*GetClassSummaryOutput, error)
}

// ClassOption is one button of the class selection screen
type ClassOption struct {
	// Selection is the 1-based value used to pick the option
	Selection   int
	Name        string
	DisplayName string
	// Allowance is the race allowance of the class row
	Allowance int
}

// Enabled reports whether the character's race may pick the option
func (o ClassOption) Enabled() bool {
	return o.Allowance != ie.AllowanceForbidden
}

// ClassSummary is every derived class value of a stored character
type ClassSummary struct {
	CharacterID string
	Race        string
	ClassID     int
	// ClassRow is the class table row name, empty while unassigned
	ClassRow   string
	ClassNames []string
	Classes    []int
	Title      string
	HasTitle   bool
	IsDual     bool
	IsMulti    bool
	IsDualSwap bool
	KitIndex   int
	// Kit is the kit row name, empty for no kit
	Kit          string
	XP           int
	NumClasses   int
	Levels       []int
	NextLevels   []int
	LevelDiffs   []int
	NextLevelExp []int
}

// Character lifecycle types

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	// Race is a race table row name, e.g. ELF
	Race string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	CharacterID string
	Block       *ie.StatBlock
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	CharacterIDs []string
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// Class selection types

// ListClassOptionsInput defines the request for listing class options
type ListClassOptionsInput struct {
	CharacterID string
	// Multiclass lists the multiclass rows instead of the single classes
	Multiclass bool
}

// ListClassOptionsOutput defines the response for listing class options
type ListClassOptionsOutput struct {
	Options []ClassOption
	// HasMulti is true when the race may pick any multiclass row
	HasMulti bool
	// MageSchool is the school forced by the race, 0 for none
	MageSchool int
}

// DescribeClassInput defines the request for describing a class
type DescribeClassInput struct {
	Selection int
}

// DescribeClassOutput defines the response for describing a class
type DescribeClassOutput struct {
	Name        string
	DisplayName string
	Description string
}

// SelectClassInput defines the request for selecting a class
type SelectClassInput struct {
	CharacterID string
	Selection   int
	// PendingKit is a kit chosen before the class, 0 for none
	PendingKit int
	// MageSchool is a pending mage school, 0 to use the race default
	MageSchool int
}

// SelectClassOutput defines the response for selecting a class
type SelectClassOutput struct {
	Summary *ClassSummary
}

// GetClassSummaryInput defines the request for a class summary
type GetClassSummaryInput struct {
	CharacterID string
}

// GetClassSummaryOutput defines the response for a class summary
type GetClassSummaryOutput struct {
	Summary *ClassSummary
}
