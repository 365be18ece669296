package project

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
)

// ListProjectsUseCase serves both the public and the admin listing; the
// views differ only in serialization.
type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(pRepo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo}
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: projects}, nil
}
