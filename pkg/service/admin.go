package service

import (
	"context"

	"go.uber.org/zap"
)

type AdminRepo interface {
	FindAdmin(ctx context.Context, adminID, password string) (bool, error)
}

// AdminService is the credential gate for the management surface. It issues
// no session or token; every admin request re-validates.
type AdminService struct {
	repo   AdminRepo
	logger *zap.Logger
}

func NewAdminService(repo AdminRepo, logger *zap.Logger) *AdminService {
	return &AdminService{repo: repo, logger: logger}
}

// Validate reports whether the credentials match a stored admin record.
// Lookup failures are logged and read as not valid.
func (s *AdminService) Validate(ctx context.Context, adminID, password string) bool {
	ok, err := s.repo.FindAdmin(ctx, adminID, password)
	if err != nil {
		s.logger.Error("failed to validate admin credentials", zap.Error(err))
		return false
	}
	return ok
}
