package session

import (
	"context"
	"sync"

	"github.com/popdriving/sessionbook/internal/common/identity"
	"github.com/popdriving/sessionbook/internal/models"
	sessionRepo "github.com/popdriving/sessionbook/internal/repositories/session"
	"github.com/popdriving/sessionbook/internal/roster"
)

// service implements the Service interface
type service struct {
	repo  sessionRepo.Repository
	idGen identity.Generator

	// mu serializes every load-mutate-save cycle. The store is a single
	// document, so without this two concurrent signups could both load
	// the same snapshot and the second save would drop the first signup.
	mu sync.Mutex
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepo
	}

	if cfg.IDGen == nil {
		return nil, ErrNilIDGenerator
	}

	return &service{
		repo:  cfg.Repo,
		idGen: cfg.IDGen,
	}, nil
}

// BookSession creates a new session hosted by the requesting user
func (s *service) BookSession(ctx context.Context, input *BookSessionInput) (*BookSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &models.Session{
		ID:          s.idGen.SessionID(input.ChannelID),
		Time:        input.Time,
		Duration:    input.Duration,
		ChannelID:   input.ChannelID,
		HostID:      input.HostID,
		Drivers:     []models.RosterEntry{},
		JuniorStaff: []models.RosterEntry{},
		Trainees:    []models.RosterEntry{},
	}

	loaded, err := s.repo.LoadSessions(ctx, &sessionRepo.LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	sessions := loaded.Sessions
	sessions[sess.ID] = sess

	err = s.repo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{
		Sessions: sessions,
	})
	if err != nil {
		return nil, err
	}

	return &BookSessionOutput{
		Session: sess,
	}, nil
}

// GetSession retrieves a single session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	loaded, err := s.repo.LoadSessions(ctx, &sessionRepo.LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	sess, ok := loaded.Sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return &GetSessionOutput{
		Session: sess,
	}, nil
}

// SetSessionMessage records the ID of the roster message announcing a session
func (s *service) SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) (*SetSessionMessageOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.LoadSessions(ctx, &sessionRepo.LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	sess, ok := loaded.Sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.MessageID = input.MessageID

	err = s.repo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{
		Sessions: loaded.Sessions,
	})
	if err != nil {
		return nil, err
	}

	return &SetSessionMessageOutput{
		Session: sess,
	}, nil
}

// Signup places a user in exactly one roster bucket of a session
func (s *service) Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.LoadSessions(ctx, &sessionRepo.LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	sess, ok := loaded.Sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := roster.Signup(sess, input.UserID, input.UserTag, input.Role); err != nil {
		return nil, err
	}

	err = s.repo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{
		Sessions: loaded.Sessions,
	})
	if err != nil {
		return nil, err
	}

	return &SignupOutput{
		Session: sess,
	}, nil
}

// CloseSession removes a session from the store if the requester is its host
func (s *service) CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.LoadSessions(ctx, &sessionRepo.LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	sess, ok := loaded.Sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := roster.Close(sess, input.RequesterID); err != nil {
		return nil, ErrUnauthorized
	}

	delete(loaded.Sessions, input.SessionID)

	err = s.repo.SaveSessions(ctx, &sessionRepo.SaveSessionsInput{
		Sessions: loaded.Sessions,
	})
	if err != nil {
		return nil, err
	}

	return &CloseSessionOutput{
		Session: sess,
	}, nil
}
