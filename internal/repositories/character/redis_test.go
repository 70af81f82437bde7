package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/ie-chargen/internal/repositories/character"
	"github.com/KirkDiggler/ie-chargen/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fixed
	repo    character.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{At: time.Unix(1700000000, 0)}

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := character.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.NewRedis(&character.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	block := testutils.CreateTestClassedStatBlock(testutils.TestCharacterID,
		testutils.TestRaceElf, testutils.TestClassFighterMage, 0, 1, 1)
	block.SetStat(ie.StatXP, 2000)

	created, err := s.repo.Create(s.ctx, character.CreateInput{Block: block})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), created.Block.CreatedAt)
	s.Equal(created.Block.CreatedAt, created.Block.UpdatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testutils.TestCharacterID})
	s.Require().NoError(err)
	s.Equal(testutils.TestClassFighterMage, got.Block.Stat(ie.StatClass))
	s.Equal(2000, got.Block.Stat(ie.StatXP))
	s.Equal(1, got.Block.Stat(ie.StatLevel2))
	s.Equal(0, got.Block.Stat(ie.StatLevel3))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Block: ie.NewStatBlock("")})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	block := testutils.CreateTestStatBlock(testutils.TestCharacterID, testutils.TestRaceHuman)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Block: block})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Block: block})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["character_id"])

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	block := testutils.CreateTestStatBlock(testutils.TestCharacterID, testutils.TestRaceHuman)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Block: block})
	s.Require().NoError(err)

	s.clock.At = s.clock.At.Add(time.Hour)
	changed := testutils.CreateTestClassedStatBlock(testutils.TestCharacterID,
		testutils.TestRaceHuman, testutils.TestClassFighter, 0, 1)

	updated, err := s.repo.Update(s.ctx, character.UpdateInput{Block: changed})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), updated.Block.CreatedAt)
	s.Equal(int64(1700003600), updated.Block.UpdatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testutils.TestCharacterID})
	s.Require().NoError(err)
	s.Equal(testutils.TestClassFighter, got.Block.Stat(ie.StatClass))
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Block: ie.NewStatBlock("missing")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteAndList() {
	for _, id := range []string{"b", "a"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{
			Block: testutils.CreateTestStatBlock(id, testutils.TestRaceDwarf),
		})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, list.IDs)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "a"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "a"})
	s.True(errors.IsNotFound(err))

	list, err = s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"b"}, list.IDs)
}

func (s *RedisRepositoryTestSuite) TestGetCorruptData() {
	client, cleanup := testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.Require().NoError(mr.Set("character:stats:bad", "{not json"))
	})
	defer cleanup()

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.Get(s.ctx, character.GetInput{ID: "bad"})
	s.True(errors.IsInternal(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
