package trainer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	idgenmock "github.com/KirkDiggler/pokemon-api/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/trainer"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T) trainer.Repository
	repo    trainer.Repository
	ctx     context.Context
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) trainer.Repository {
			repo, err := trainer.NewSQLite(&trainer.SQLiteConfig{DB: testutils.CreateTestSQLiteDB(t)})
			if err != nil {
				t.Fatalf("new sqlite repository: %v", err)
			}
			return repo
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) trainer.Repository {
			client, cleanup := testutils.CreateTestRedisClient(t)
			t.Cleanup(cleanup)
			repo, err := trainer.NewRedis(&trainer.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("new redis repository: %v", err)
			}
			return repo
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo(s.T())
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) create(name string, birthdate time.Time) *entities.Trainer {
	out, err := s.repo.Create(s.ctx, trainer.CreateInput{
		Trainer: &entities.Trainer{Name: name, Birthdate: birthdate},
	})
	s.Require().NoError(err)
	return out.Trainer
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	input := testutils.CreateTestTrainer()

	created, err := s.repo.Create(s.ctx, trainer.CreateInput{Trainer: input})
	s.Require().NoError(err)
	s.Positive(created.Trainer.ID)
	s.Zero(input.ID, "input must not be mutated")

	got, err := s.repo.Get(s.ctx, trainer.GetInput{ID: created.Trainer.ID})
	s.Require().NoError(err)
	s.Equal(created.Trainer.ID, got.Trainer.ID)
	s.Equal(testutils.TestTrainerName, got.Trainer.Name)
	s.True(testutils.TestBirthdate.Equal(got.Trainer.Birthdate))
}

func (s *RepositoryTestSuite) TestCreateAssignsIncreasingIDs() {
	first := s.create("Misty", testutils.TestBirthdate)
	second := s.create("Brock", testutils.TestBirthdate)

	s.Greater(second.ID, first.ID)
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, trainer.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, trainer.CreateInput{Trainer: &entities.Trainer{Name: " "}})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
	s.Contains(err.Error(), "birthdate")
}

func (s *RepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, trainer.GetInput{ID: 999})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, trainer.GetInput{ID: 0})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestListWindow() {
	names := []string{"Ash", "Misty", "Brock", "Gary", "Erika"}
	for _, name := range names {
		s.create(name, testutils.TestBirthdate)
	}

	all, err := s.repo.List(s.ctx, trainer.ListInput{})
	s.Require().NoError(err)
	s.Len(all.Trainers, len(names))
	for i, t := range all.Trainers {
		s.Equal(names[i], t.Name, "trainers are listed in creation order")
	}

	page, err := s.repo.List(s.ctx, trainer.ListInput{Offset: 1, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page.Trainers, 2)
	s.Equal("Misty", page.Trainers[0].Name)
	s.Equal("Brock", page.Trainers[1].Name)

	past, err := s.repo.List(s.ctx, trainer.ListInput{Offset: 50})
	s.Require().NoError(err)
	s.Empty(past.Trainers)
	s.NotNil(past.Trainers)
}

func (s *RepositoryTestSuite) TestListByName() {
	s.create("Ash", testutils.TestBirthdate)
	s.create("Misty", testutils.TestBirthdate)
	s.create("Ash", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))

	out, err := s.repo.List(s.ctx, trainer.ListInput{Name: "Ash"})
	s.Require().NoError(err)
	s.Len(out.Trainers, 2)
	for _, t := range out.Trainers {
		s.Equal("Ash", t.Name)
	}

	none, err := s.repo.List(s.ctx, trainer.ListInput{Name: "ash"})
	s.Require().NoError(err)
	s.Empty(none.Trainers, "name filter is an exact match")
}

func (s *RepositoryTestSuite) TestListRejectsNegativeOffset() {
	_, err := s.repo.List(s.ctx, trainer.ListInput{Offset: -1})
	s.True(errors.IsInvalidArgument(err))
}

func TestConfigValidation(t *testing.T) {
	if _, err := trainer.NewSQLite(&trainer.SQLiteConfig{}); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for missing db, got %v", err)
	}
	if _, err := trainer.NewRedis(nil); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument for nil config, got %v", err)
	}
}

func TestRedisIDAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := idgenmock.NewMockGenerator(ctrl)
	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	repo, err := trainer.NewRedis(&trainer.RedisConfig{Client: client, IDs: ids})
	if err != nil {
		t.Fatalf("new redis repository: %v", err)
	}
	ctx := context.Background()

	ids.EXPECT().Next(ctx).Return(int64(42), nil)
	out, err := repo.Create(ctx, trainer.CreateInput{Trainer: testutils.CreateTestTrainer()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Trainer.ID != 42 {
		t.Fatalf("id = %d, want 42", out.Trainer.ID)
	}

	ids.EXPECT().Next(ctx).Return(int64(0), errors.Internal("sequence unavailable"))
	_, err = repo.Create(ctx, trainer.CreateInput{Trainer: testutils.CreateTestTrainer()})
	if !errors.IsInternal(err) {
		t.Fatalf("err = %v, want internal", err)
	}
}
