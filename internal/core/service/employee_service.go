package service

import (
	"context"

	"github.com/workspherex/workforce-api/internal/core/domain"
	"github.com/workspherex/workforce-api/internal/core/ports"
)

// EmployeeService exposes the directory of regular employees to the admin
// console. Admin accounts never appear in the listing.
type EmployeeService struct {
	repo ports.EmployeeRepository
}

func NewEmployeeService(repo ports.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.ListByRole(ctx, domain.RoleEmployee)
}
