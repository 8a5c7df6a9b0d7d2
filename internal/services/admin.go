package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/models"
)

// AdminService covers the admin console: user listing and mutation, the
// statistics panel, and decisions on pending registrations.
type AdminService interface {
	// Dashboard loads users, statistics, and pending users concurrently.
	// If any fetch fails the whole load fails; partial results are never
	// returned.
	Dashboard(ctx context.Context) (*models.AdminDashboard, error)

	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id int64) (*models.User, error)
	UpdateRoles(ctx context.Context, id int64, roles []string) (string, error)
	DeleteUser(ctx context.Context, id int64) (string, error)
	ApproveUser(ctx context.Context, id int64) (string, error)
	RejectUser(ctx context.Context, id int64) (string, error)
}

type adminService struct {
	client api.Client
}

func NewAdminService(client api.Client) AdminService {
	return &adminService{client: client}
}

func (s *adminService) Dashboard(ctx context.Context) (*models.AdminDashboard, error) {
	var dash models.AdminDashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.client.Users(ctx)
		if err != nil {
			return err
		}
		dash.Users = users
		return nil
	})
	g.Go(func() error {
		stats, err := s.client.Statistics(ctx)
		if err != nil {
			return err
		}
		dash.Stats = *stats
		return nil
	})
	g.Go(func() error {
		pending, err := s.client.PendingUsers(ctx)
		if err != nil {
			return err
		}
		dash.PendingUsers = pending
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	return s.client.Users(ctx)
}

func (s *adminService) User(ctx context.Context, id int64) (*models.User, error) {
	return s.client.User(ctx, id)
}

func (s *adminService) UpdateRoles(ctx context.Context, id int64, roles []string) (string, error) {
	return s.client.UpdateUserRoles(ctx, id, roles)
}

func (s *adminService) DeleteUser(ctx context.Context, id int64) (string, error) {
	return s.client.DeleteUser(ctx, id)
}

func (s *adminService) ApproveUser(ctx context.Context, id int64) (string, error) {
	return s.client.ApproveUser(ctx, id)
}

func (s *adminService) RejectUser(ctx context.Context, id int64) (string, error) {
	return s.client.RejectUser(ctx, id)
}
