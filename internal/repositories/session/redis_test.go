package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/popdriving/sessionbook/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func testSessions() map[string]*models.Session {
	return map[string]*models.Session{
		"test-channel-1700000000": {
			ID:        "test-channel-1700000000",
			Time:      "2025-10-07T18:30",
			Duration:  "1 hour",
			ChannelID: "test-channel",
			HostID:    "host-id",
			Drivers: []models.RosterEntry{
				{ID: "user-1", Tag: "User One"},
			},
			JuniorStaff: []models.RosterEntry{},
			Trainees: []models.RosterEntry{
				{ID: "user-2", Tag: "User Two"},
			},
			MessageID: "message-id",
		},
		"other-channel-1700000005": {
			ID:          "other-channel-1700000005",
			Time:        "2025-10-08T19:00",
			Duration:    "90 minutes",
			ChannelID:   "other-channel",
			HostID:      "other-host",
			Drivers:     []models.RosterEntry{},
			JuniorStaff: []models.RosterEntry{},
			Trainees:    []models.RosterEntry{},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadRoundTrip() {
	sessions := testSessions()

	err := s.repo.SaveSessions(context.Background(), &SaveSessionsInput{
		Sessions: sessions,
	})
	s.Require().NoError(err)

	loaded, err := s.repo.LoadSessions(context.Background(), &LoadSessionsInput{})
	s.Require().NoError(err)
	s.Require().NotNil(loaded)

	s.Equal(sessions, loaded.Sessions)
}

func (s *RedisRepositoryTestSuite) TestLoadMissingStoreIsEmpty() {
	loaded, err := s.repo.LoadSessions(context.Background(), &LoadSessionsInput{})
	s.Require().NoError(err)
	s.Require().NotNil(loaded)

	s.Empty(loaded.Sessions)
	s.NotNil(loaded.Sessions)
}

func (s *RedisRepositoryTestSuite) TestLoadCorruptStoreIsStorageError() {
	s.Require().NoError(s.mr.Set(sessionsKey, "{not json"))

	_, err := s.repo.LoadSessions(context.Background(), &LoadSessionsInput{})
	s.Require().ErrorIs(err, ErrStorage)
}

func (s *RedisRepositoryTestSuite) TestSaveRemovedSessionStaysRemoved() {
	sessions := testSessions()
	s.Require().NoError(s.repo.SaveSessions(context.Background(), &SaveSessionsInput{
		Sessions: sessions,
	}))

	delete(sessions, "test-channel-1700000000")
	s.Require().NoError(s.repo.SaveSessions(context.Background(), &SaveSessionsInput{
		Sessions: sessions,
	}))

	loaded, err := s.repo.LoadSessions(context.Background(), &LoadSessionsInput{})
	s.Require().NoError(err)

	s.Len(loaded.Sessions, 1)
	s.NotContains(loaded.Sessions, "test-channel-1700000000")
}
