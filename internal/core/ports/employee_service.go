package ports

import (
	"context"

	"github.com/workspherex/workforce-api/internal/core/domain"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}
