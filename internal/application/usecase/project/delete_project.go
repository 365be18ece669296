package project

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	publisher   service.EventPublisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(pRepo project.Repository, pub service.EventPublisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo, publisher: pub, logger: log}
}

type DeleteProjectInput struct {
	ProjectID int64
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.Delete(ctx, input.ProjectID); err != nil {
		return err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentDeleted, resourceName, input.ProjectID)
	return nil
}
