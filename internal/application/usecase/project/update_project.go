package project

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	uploader    service.Uploader
	publisher   service.EventPublisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(pRepo project.Repository, uploader service.Uploader, pub service.EventPublisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: pRepo, uploader: uploader, publisher: pub, logger: log}
}

type UpdateProjectInput struct {
	ProjectID   int64
	Title       string
	Description string
	Link        *string
	Order       int
	// An empty Image without ImageFile keeps the stored image.
	Image     string
	ImageFile io.Reader
}
type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Description = input.Description
	p.Link = normalizeLink(input.Link)
	p.Order = input.Order
	if input.Image != "" {
		p.Image = input.Image
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	var uploadedID string
	if input.ImageFile != nil {
		uploadedID = uuid.NewString()
		url, err := uc.uploader.Upload(ctx, input.ImageFile, imageFolder, uploadedID)
		if err != nil {
			return nil, apperror.NewInternal("failed to upload project image", err)
		}
		p.Image = url
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		if uploadedID != "" {
			go func() {
				if derr := uc.uploader.Delete(context.Background(), imageFolder+"/"+uploadedID); derr != nil {
					uc.logger.Warn("Failed to clean up orphaned project image", zap.String("public_id", uploadedID), zap.Error(derr))
				}
			}()
		}
		return nil, err
	}

	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentUpdated, resourceName, p.ID)
	return &UpdateProjectOutput{Project: p}, nil
}
