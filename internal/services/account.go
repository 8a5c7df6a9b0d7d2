package services

import (
	"context"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/models"
)

// AccountService covers the profile screen: fetching and editing the own
// profile and changing the password.
type AccountService interface {
	Profile(ctx context.Context) (*models.User, error)
	// UpdateProfile pushes the edit to the server and, on success, refreshes
	// the stored session profile in place.
	UpdateProfile(ctx context.Context, username, email string) (string, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error)
}

type accountService struct {
	client api.Client
	auth   AuthService
}

func NewAccountService(client api.Client, auth AuthService) AccountService {
	return &accountService{client: client, auth: auth}
}

func (s *accountService) Profile(ctx context.Context) (*models.User, error) {
	return s.client.Profile(ctx)
}

func (s *accountService) UpdateProfile(ctx context.Context, username, email string) (string, error) {
	msg, err := s.client.UpdateProfile(ctx, username, email)
	if err != nil {
		return "", err
	}
	if err := s.auth.UpdateStoredProfile(username, email); err != nil {
		return "", err
	}
	return msg, nil
}

func (s *accountService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	return s.client.ChangePassword(ctx, oldPassword, newPassword)
}
