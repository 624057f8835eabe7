package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/redis"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/item"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/trainer"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

type RepairTestSuite struct {
	suite.Suite
	ctx      context.Context
	client   redis.Client
	mr       *miniredis.Miniredis
	trainers trainer.Repository
	items    item.Repository
	ash      *entities.Trainer
}

func TestRepairSuite(t *testing.T) {
	suite.Run(t, new(RepairTestSuite))
}

func (s *RepairTestSuite) SetupTest() {
	var cleanup func()
	s.client, s.mr, cleanup = testutils.CreateTestRedisClientWithServer(s.T(), nil)
	s.T().Cleanup(cleanup)
	s.ctx = context.Background()

	var err error
	s.trainers, err = trainer.NewRedis(&trainer.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.items, err = item.NewRedis(&item.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	out, err := s.trainers.Create(s.ctx, trainer.CreateInput{Trainer: testutils.CreateTestTrainer()})
	s.Require().NoError(err)
	s.ash = out.Trainer

	for range 2 {
		_, err := s.items.Create(s.ctx, item.CreateInput{Item: testutils.CreateTestItem(s.ash.ID)})
		s.Require().NoError(err)
	}
}

func (s *RepairTestSuite) TestCleanStore() {
	var out bytes.Buffer
	s.Require().NoError(repair(s.ctx, s.client, &out, false))

	s.Contains(out.String(), "trainer: checked 1 records, 0 corrupted")
	s.Contains(out.String(), "item: checked 2 records, 0 corrupted")
}

func (s *RepairTestSuite) TestReportOnly() {
	s.Require().NoError(s.mr.Set("item:2", "{not json"))
	s.Require().NoError(s.mr.Set(trainer.Key(s.ash.ID), `{"id":99,"name":"Ash"}`))

	var out bytes.Buffer
	s.Require().NoError(repair(s.ctx, s.client, &out, false))
	s.Contains(out.String(), "item: checked 2 records, 1 corrupted")
	s.Contains(out.String(), "  - item:2")
	s.Contains(out.String(), "trainer: checked 1 records, 1 corrupted")
	s.True(s.mr.Exists("item:2"))
}

func (s *RepairTestSuite) TestDeleteRestoresListing() {
	s.Require().NoError(s.mr.Set("item:2", "{not json"))

	_, err := s.items.List(s.ctx, item.ListInput{})
	s.Require().Error(err)

	var out bytes.Buffer
	s.Require().NoError(repair(s.ctx, s.client, &out, true))
	s.Contains(out.String(), "deleted")
	s.False(s.mr.Exists("item:2"))

	listed, err := s.items.ListByTrainer(s.ctx, item.ListByTrainerInput{TrainerID: s.ash.ID})
	s.Require().NoError(err)
	s.Require().Len(listed.Items, 1)
	s.Equal(int64(1), listed.Items[0].ID)

	all, err := s.items.List(s.ctx, item.ListInput{})
	s.Require().NoError(err)
	s.Len(all.Items, 1)
}

func (s *RepairTestSuite) TestDeleteDropsNameIndex() {
	s.Require().NoError(s.mr.Set(trainer.Key(s.ash.ID), "{not json"))

	var out bytes.Buffer
	s.Require().NoError(repair(s.ctx, s.client, &out, true))

	byName, err := s.trainers.List(s.ctx, trainer.ListInput{Name: s.ash.Name})
	s.Require().NoError(err)
	s.Empty(byName.Trainers)

	all, err := s.trainers.List(s.ctx, trainer.ListInput{})
	s.Require().NoError(err)
	s.Empty(all.Trainers)
}
