package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path string
	repo Repository
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "sessions.json")

	repo, err := NewFile(&FileConfig{
		Path: s.path,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestSaveAndLoadRoundTrip() {
	sessions := testSessions()

	err := s.repo.SaveSessions(context.Background(), &SaveSessionsInput{
		Sessions: sessions,
	})
	s.Require().NoError(err)

	loaded, err := s.repo.LoadSessions(context.Background(), &LoadSessionsInput{})
	s.Require().NoError(err)

	s.Equal(sessions, loaded.Sessions)
}

func (s *FileRepositoryTestSuite) TestLoadMissingFileIsEmpty() {
	loaded, err := s.repo.LoadSessions(context.Background(), &LoadSessionsInput{})
	s.Require().NoError(err)
	s.Require().NotNil(loaded)

	s.Empty(loaded.Sessions)
	s.NotNil(loaded.Sessions)
}

func (s *FileRepositoryTestSuite) TestLoadMalformedFileIsStorageError() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0644))

	_, err := s.repo.LoadSessions(context.Background(), &LoadSessionsInput{})
	s.Require().ErrorIs(err, ErrStorage)
}

func (s *FileRepositoryTestSuite) TestSaveLeavesNoTempFiles() {
	err := s.repo.SaveSessions(context.Background(), &SaveSessionsInput{
		Sessions: testSessions(),
	})
	s.Require().NoError(err)

	entries, err := os.ReadDir(filepath.Dir(s.path))
	s.Require().NoError(err)
	s.Len(entries, 1)
	s.Equal("sessions.json", entries[0].Name())
}

func (s *FileRepositoryTestSuite) TestSaveOverwritesWholeDocument() {
	sessions := testSessions()
	s.Require().NoError(s.repo.SaveSessions(context.Background(), &SaveSessionsInput{
		Sessions: sessions,
	}))

	delete(sessions, "other-channel-1700000005")
	s.Require().NoError(s.repo.SaveSessions(context.Background(), &SaveSessionsInput{
		Sessions: sessions,
	}))

	loaded, err := s.repo.LoadSessions(context.Background(), &LoadSessionsInput{})
	s.Require().NoError(err)

	s.Len(loaded.Sessions, 1)
	s.Contains(loaded.Sessions, "test-channel-1700000000")
}
