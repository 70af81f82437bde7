package actor_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ie-chargen/internal/actor"
	actormock "github.com/KirkDiggler/ie-chargen/internal/actor/mock"
	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/ruleset"
	"github.com/KirkDiggler/ie-chargen/internal/testutils"
	"github.com/KirkDiggler/ie-chargen/internal/tlk"
)

type ActorTestSuite struct {
	suite.Suite
	rules   *ruleset.Ruleset
	strings tlk.Resolver
}

func (s *ActorTestSuite) SetupSuite() {
	rules, err := ruleset.LoadEmbedded()
	s.Require().NoError(err)
	s.rules = rules

	bundle, err := tlk.LoadFS(ruleset.EmbeddedFS())
	s.Require().NoError(err)
	s.strings = bundle.ForLocale("en-US")
}

func (s *ActorTestSuite) newActor(block *ie.StatBlock) *actor.Actor {
	a, err := actor.New(&actor.Config{
		Stats:   block,
		Rules:   s.rules,
		Strings: s.strings,
	})
	s.Require().NoError(err)
	return a
}

func (s *ActorTestSuite) classIndex(name string) int {
	class, ok := s.rules.ClassByName(name)
	s.Require().True(ok, name)
	return class.Index
}

func (s *ActorTestSuite) TestNewValidation() {
	_, err := actor.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = actor.New(&actor.Config{Rules: s.rules})
	s.True(errors.IsInvalidArgument(err))

	_, err = actor.New(&actor.Config{Stats: ie.NewStatBlock("x")})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ActorTestSuite) TestNewUnknownClass() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, 99, 0, 1)

	_, err := actor.New(&actor.Config{Stats: block, Rules: s.rules})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(99, errors.GetMeta(err)["class_id"])
}

func (s *ActorTestSuite) TestUnassigned() {
	a := s.newActor(testutils.CreateTestStatBlock("x", testutils.TestRaceHuman))

	s.Equal(0, a.NumClasses())
	s.Empty(a.ClassNames())
	s.Empty(a.Classes())
	s.Empty(a.Levels())
	s.Empty(a.NextLevels())
	s.Empty(a.LevelDiffs())
	s.False(a.IsDualSwap())

	_, ok := a.ClassTitle()
	s.False(ok)
}

func (s *ActorTestSuite) TestSingleClass() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 3)
	block.SetStat(ie.StatXP, 8000)
	a := s.newActor(block)

	s.Equal([]string{"FIGHTER"}, a.ClassNames())
	s.Equal([]int{testutils.TestClassFighter}, a.Classes())
	s.Equal(1, a.NumClasses())
	s.Equal([]int{3}, a.Levels())
	s.Equal([]int{4}, a.NextLevels())
	s.Equal([]int{1}, a.LevelDiffs())
	s.Equal([]int{8000}, a.NextLevelExp())
	s.False(a.IsDual())
	s.False(a.IsMulti())

	title, ok := a.ClassTitle()
	s.True(ok)
	s.Equal("Fighter", title)
}

func (s *ActorTestSuite) TestMulticlass() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceElf,
		testutils.TestClassFighterMage, 0, 1, 1)
	block.SetStat(ie.StatXP, 10000)
	a := s.newActor(block)

	s.Equal([]string{"FIGHTER", "MAGE"}, a.ClassNames())
	s.Equal([]int{testutils.TestClassFighter, testutils.TestClassMage}, a.Classes())
	s.Equal(2, a.NumClasses())
	s.True(a.IsMulti())
	s.False(a.IsDualSwap())

	// 5000 each
	s.Equal([]int{3, 3}, a.NextLevels())
	s.Equal([]int{2, 2}, a.LevelDiffs())
	s.Equal([]int{2000, 2500}, a.NextLevelExp())

	title, ok := a.ClassTitle()
	s.True(ok)
	s.Equal("Fighter/Mage", title)
}

func (s *ActorTestSuite) TestDualClassSwapped() {
	// fighter dualed to mage: level slots hold fighter 7, mage 3
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman,
		testutils.TestClassFighterMage, ie.MCWasFighter, 7, 3)
	block.SetStat(ie.StatXP, 20000)
	a := s.newActor(block)

	s.True(a.IsDual())
	s.False(a.IsMulti())
	s.True(a.IsDualSwap())
	s.Equal([]string{"MAGE", "FIGHTER"}, a.ClassNames())
	s.Equal([]int{testutils.TestClassMage, testutils.TestClassFighter}, a.Classes())
	s.Equal(1, a.NumClasses())
	s.Equal([]int{3, 7}, a.Levels())

	// the old class keeps its level
	s.Equal([]int{5, 7}, a.NextLevels())
	s.Equal([]int{2, 0}, a.LevelDiffs())
	s.Equal([]int{10000, 125000}, a.NextLevelExp())

	title, ok := a.ClassTitle()
	s.True(ok)
	s.Equal("Fighter / Mage", title)
}

func (s *ActorTestSuite) TestDualClassNotSwapped() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman,
		testutils.TestClassFighterThief, ie.MCWasThief, 2, 9)
	a := s.newActor(block)

	s.False(a.IsDualSwap())
	s.Equal([]string{"FIGHTER", "THIEF"}, a.ClassNames())
	s.Equal([]int{2, 9}, a.Levels())
	s.Equal(1, a.NumClasses())
	s.Equal([]int{2, 9}, a.NextLevels())
}

func (s *ActorTestSuite) TestDualClassTitleUsesKit() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman,
		testutils.TestClassFighterMage, ie.MCWasFighter, 7, 3)
	block.SetStat(ie.StatKit, ie.EncodeKit(3))
	a := s.newActor(block)

	title, ok := a.ClassTitle()
	s.True(ok)
	s.Equal("Kensai / Mage", title)
}

func (s *ActorTestSuite) TestNextLevelsStopAtCap() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)
	block.SetStat(ie.StatXP, 90000000)
	a := s.newActor(block)

	s.Equal([]int{s.rules.MaxLevel()}, a.NextLevels())
	s.Equal([]int{s.rules.MaxLevel() - 1}, a.LevelDiffs())

	block.SetStat(ie.StatLevel, s.rules.MaxLevel())
	s.Require().NoError(a.Reset())
	s.Equal([]int{-1}, a.NextLevelExp())
}

func (s *ActorTestSuite) TestNextLevelsNeverBelowLevels() {
	for _, class := range s.rules.Classes() {
		for _, xp := range []int{0, 1500, 64000, 5000000} {
			levels := []int{9, 9, 9}[:len(ie.SplitClassName(class.Name))]
			block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, class.ID, 0, levels...)
			block.SetStat(ie.StatXP, xp)
			a := s.newActor(block)

			current, next := a.Levels(), a.NextLevels()
			s.Require().Len(next, len(current), class.Name)
			s.Equal(len(current), a.NumClasses(), class.Name)
			for i := range current {
				s.GreaterOrEqual(next[i], current[i], "%s at %d xp", class.Name, xp)
			}
		}
	}
}

func (s *ActorTestSuite) TestKitIndex() {
	testCases := []struct {
		name string
		raw  int
		want int
	}{
		{name: "unset", raw: 0, want: 0},
		{name: "base class sentinel", raw: 0x4000, want: 0},
		{name: "encoded index", raw: 0x4005, want: 5},
		{name: "usability of conjurer", raw: 0x80, want: 5},
		{name: "usability of berserker", raw: 0x00010000, want: 1},
		{name: "unknown usability", raw: 0x12345, want: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)
			block.SetStat(ie.StatKit, tc.raw)
			s.Equal(tc.want, s.newActor(block).KitIndex())
		})
	}
}

func (s *ActorTestSuite) TestClassTitleSources() {
	s.Run("kit title", func() {
		block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)
		block.SetStat(ie.StatKit, ie.EncodeKit(1))
		title, ok := s.newActor(block).ClassTitle()
		s.True(ok)
		s.Equal("Berserker", title)
	})

	s.Run("stored title wins", func() {
		block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)
		block.SetStat(ie.StatTitle1, 10428)
		title, ok := s.newActor(block).ClassTitle()
		s.True(ok)
		s.Equal("Illusionist", title)
	})

	s.Run("sentinel means no title", func() {
		block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)
		a, err := actor.New(&actor.Config{
			Stats:   block,
			Rules:   s.rules,
			Strings: &tlk.Table{Locale: "en-US", Strings: map[int]string{10201: "*"}},
		})
		s.Require().NoError(err)
		title, ok := a.ClassTitle()
		s.False(ok)
		s.Empty(title)
	})

	s.Run("no resolver", func() {
		block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)
		a, err := actor.New(&actor.Config{Stats: block, Rules: s.rules})
		s.Require().NoError(err)
		_, ok := a.ClassTitle()
		s.False(ok)
	})
}

func (s *ActorTestSuite) TestQueriesCachedUntilReset() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)
	a := s.newActor(block)
	s.Equal([]int{1}, a.Levels())

	block.SetStat(ie.StatLevel, 5)
	s.Equal([]int{1}, a.Levels())

	s.Require().NoError(a.Reset())
	s.Equal([]int{5}, a.Levels())
}

func (s *ActorTestSuite) TestReturnedSlicesAreCopies() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceElf,
		testutils.TestClassFighterMage, 0, 1, 1)
	a := s.newActor(block)

	names := a.ClassNames()
	names[0] = "THIEF"
	s.Equal([]string{"FIGHTER", "MAGE"}, a.ClassNames())
}

func (s *ActorTestSuite) TestResetFailsOnUnknownClass() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)
	a := s.newActor(block)

	block.SetStat(ie.StatClass, 99)
	s.True(errors.IsFailedPrecondition(a.Reset()))
	s.Equal(0, a.NumClasses())
}

func TestActorTestSuite(t *testing.T) {
	suite.Run(t, new(ActorTestSuite))
}

type ActorCacheTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	rules *actormock.MockRules
}

func (s *ActorCacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rules = actormock.NewMockRules(s.ctrl)
}

func (s *ActorCacheTestSuite) TestDualSwapComputedOnce() {
	block := testutils.CreateTestClassedStatBlock("x", testutils.TestRaceHuman,
		testutils.TestClassFighterMage, ie.MCWasFighter, 7, 3)

	s.rules.EXPECT().ClassByID(testutils.TestClassFighterMage).Return(&ie.ClassDefinition{
		Name:  "FIGHTER_MAGE",
		ID:    testutils.TestClassFighterMage,
		Multi: 1,
	}, true)
	s.rules.EXPECT().DualSwapMask(testutils.TestClassFighterMage).Return(ie.MCWasFighter).Times(1)

	a, err := actor.New(&actor.Config{Stats: block, Rules: s.rules})
	s.Require().NoError(err)

	s.True(a.IsDualSwap())
	s.True(a.IsDualSwap())
	s.Equal([]string{"MAGE", "FIGHTER"}, a.ClassNames())
	s.Equal([]int{3, 7}, a.Levels())
}

func (s *ActorCacheTestSuite) TestStatsReadOnlyOnReset() {
	stats := actormock.NewMockStatAccessor(s.ctrl)
	stats.EXPECT().Stat(ie.StatClass).Return(0).Times(1)
	stats.EXPECT().Stat(ie.StatMCFlags).Return(0).Times(1)
	stats.EXPECT().Stat(ie.StatKit).Return(0x4005).Times(1)

	a, err := actor.New(&actor.Config{Stats: stats, Rules: s.rules})
	s.Require().NoError(err)

	s.Equal(5, a.KitIndex())
	s.Equal(5, a.KitIndex())
}

func TestActorCacheTestSuite(t *testing.T) {
	suite.Run(t, new(ActorCacheTestSuite))
}
