package ports

import (
	"context"

	"github.com/workspherex/workforce-api/internal/core/domain"
)

// EmployeeRepository defines the interface for employee credential persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	// ListByRole returns every employee holding the given role.
	ListByRole(ctx context.Context, role string) ([]domain.Employee, error)
}
