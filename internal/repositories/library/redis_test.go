package library_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/forgelight/creator-api/internal/entities"
	"github.com/forgelight/creator-api/internal/errors"
	"github.com/forgelight/creator-api/internal/pkg/clock"
	redisclient "github.com/forgelight/creator-api/internal/redis"
	"github.com/forgelight/creator-api/internal/repositories/library"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  library.Repository
	ctx   context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	client, err := redisclient.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)

	s.clock = clock.NewFixed(time.Unix(1700000000, 0))

	repo, err := library.NewRedis(&library.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *RedisRepositoryTestSuite) testEntity(id string) *entities.Entity {
	return &entities.Entity{
		ID:      id,
		OwnerID: "owner_1",
		Name:    "Test Entity",
		Kind:    entities.KindCharacter,
		Level:   3,
		Size:    entities.SizeMedium,
	}
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("successful create stamps timestamps", func() {
		out, err := s.repo.Create(s.ctx, library.CreateInput{Entity: s.testEntity("entity_1")})
		s.Require().NoError(err)
		s.Equal(int64(1700000000), out.Entity.CreatedAt)
		s.Equal(int64(1700000000), out.Entity.UpdatedAt)

		s.True(s.mr.Exists("library:entity_1"))
		members, err := s.mr.SMembers("library:owner:owner_1")
		s.Require().NoError(err)
		s.Contains(members, "entity_1")
		s.False(s.mr.Exists("library:public"), "private entities stay out of the public index")
	})

	s.Run("public entities are indexed", func() {
		e := s.testEntity("entity_2")
		e.Public = true
		_, err := s.repo.Create(s.ctx, library.CreateInput{Entity: e})
		s.Require().NoError(err)

		members, err := s.mr.SMembers("library:public")
		s.Require().NoError(err)
		s.Contains(members, "entity_2")
	})

	s.Run("duplicate ID fails", func() {
		_, err := s.repo.Create(s.ctx, library.CreateInput{Entity: s.testEntity("entity_1")})
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("validation failures", func() {
		_, err := s.repo.Create(s.ctx, library.CreateInput{})
		s.True(errors.IsInvalidArgument(err))

		e := s.testEntity("")
		_, err = s.repo.Create(s.ctx, library.CreateInput{Entity: e})
		s.True(errors.IsInvalidArgument(err))

		e = s.testEntity("entity_x")
		e.OwnerID = ""
		_, err = s.repo.Create(s.ctx, library.CreateInput{Entity: e})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	created, err := s.repo.Create(s.ctx, library.CreateInput{Entity: s.testEntity("entity_1")})
	s.Require().NoError(err)

	s.Run("found", func() {
		out, err := s.repo.Get(s.ctx, library.GetInput{ID: "entity_1"})
		s.Require().NoError(err)
		s.Equal(created.Entity, out.Entity)
	})

	s.Run("not found", func() {
		_, err := s.repo.Get(s.ctx, library.GetInput{ID: "entity_unknown"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty id", func() {
		_, err := s.repo.Get(s.ctx, library.GetInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, library.CreateInput{Entity: s.testEntity("entity_1")})
	s.Require().NoError(err)

	s.Run("preserves creation time and bumps update time", func() {
		s.clock.Advance(time.Hour)

		e := s.testEntity("entity_1")
		e.Name = "Renamed"
		out, err := s.repo.Update(s.ctx, library.UpdateInput{Entity: e})
		s.Require().NoError(err)
		s.Equal("Renamed", out.Entity.Name)
		s.Equal(int64(1700000000), out.Entity.CreatedAt)
		s.Equal(int64(1700003600), out.Entity.UpdatedAt)
	})

	s.Run("publishing adds to the public index", func() {
		e := s.testEntity("entity_1")
		e.Public = true
		_, err := s.repo.Update(s.ctx, library.UpdateInput{Entity: e})
		s.Require().NoError(err)

		members, err := s.mr.SMembers("library:public")
		s.Require().NoError(err)
		s.Contains(members, "entity_1")
	})

	s.Run("unpublishing removes from the public index", func() {
		e := s.testEntity("entity_1")
		e.Public = false
		_, err := s.repo.Update(s.ctx, library.UpdateInput{Entity: e})
		s.Require().NoError(err)

		members, _ := s.mr.SMembers("library:public")
		s.NotContains(members, "entity_1")
	})

	s.Run("owner change reindexes", func() {
		e := s.testEntity("entity_1")
		e.OwnerID = "owner_2"
		_, err := s.repo.Update(s.ctx, library.UpdateInput{Entity: e})
		s.Require().NoError(err)

		oldMembers, _ := s.mr.SMembers("library:owner:owner_1")
		s.NotContains(oldMembers, "entity_1")
		newMembers, err := s.mr.SMembers("library:owner:owner_2")
		s.Require().NoError(err)
		s.Contains(newMembers, "entity_1")
	})

	s.Run("missing entity fails", func() {
		_, err := s.repo.Update(s.ctx, library.UpdateInput{Entity: s.testEntity("entity_unknown")})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	e := s.testEntity("entity_1")
	e.Public = true
	_, err := s.repo.Create(s.ctx, library.CreateInput{Entity: e})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, library.DeleteInput{ID: "entity_1"})
	s.Require().NoError(err)

	s.False(s.mr.Exists("library:entity_1"))
	ownerMembers, _ := s.mr.SMembers("library:owner:owner_1")
	s.NotContains(ownerMembers, "entity_1")
	publicMembers, _ := s.mr.SMembers("library:public")
	s.NotContains(publicMembers, "entity_1")

	_, err = s.repo.Delete(s.ctx, library.DeleteInput{ID: "entity_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByOwnerID() {
	for _, id := range []string{"entity_1", "entity_2"} {
		_, err := s.repo.Create(s.ctx, library.CreateInput{Entity: s.testEntity(id)})
		s.Require().NoError(err)
	}
	other := s.testEntity("entity_3")
	other.OwnerID = "owner_2"
	_, err := s.repo.Create(s.ctx, library.CreateInput{Entity: other})
	s.Require().NoError(err)

	out, err := s.repo.ListByOwnerID(s.ctx, library.ListByOwnerIDInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Len(out.Entities, 2)

	ids := make([]string, 0, len(out.Entities))
	for _, e := range out.Entities {
		ids = append(ids, e.ID)
	}
	s.ElementsMatch([]string{"entity_1", "entity_2"}, ids)
}

func (s *RedisRepositoryTestSuite) TestListByOwnerID_PrunesDanglingIndexEntries() {
	_, err := s.repo.Create(s.ctx, library.CreateInput{Entity: s.testEntity("entity_1")})
	s.Require().NoError(err)

	// Simulate a record lost outside the repository's transaction.
	s.mr.Del("library:entity_1")

	out, err := s.repo.ListByOwnerID(s.ctx, library.ListByOwnerIDInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Empty(out.Entities)

	members, _ := s.mr.SMembers("library:owner:owner_1")
	s.NotContains(members, "entity_1", "dangling index entry is pruned")
}

func (s *RedisRepositoryTestSuite) TestListPublic() {
	public := s.testEntity("entity_1")
	public.Public = true
	_, err := s.repo.Create(s.ctx, library.CreateInput{Entity: public})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, library.CreateInput{Entity: s.testEntity("entity_2")})
	s.Require().NoError(err)

	out, err := s.repo.ListPublic(s.ctx, library.ListPublicInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entities, 1)
	s.Equal("entity_1", out.Entities[0].ID)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
