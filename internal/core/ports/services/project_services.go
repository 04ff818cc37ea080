package services

import (
	"context"

	"github.com/fundbooks/fundbooks/internal/core/domain"
	"github.com/fundbooks/fundbooks/internal/dto"
)

// ProjectSvcFacade defines operations for managing projects.
type ProjectSvcFacade interface {
	// CreateProject creates a new project.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)

	// GetProjectByID retrieves a specific project.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves all active projects.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}
