package session

import "github.com/popdriving/sessionbook/internal/models"

type LoadSessionsInput struct {
}

type LoadSessionsOutput struct {
	Sessions map[string]*models.Session
}

type SaveSessionsInput struct {
	Sessions map[string]*models.Session
}
