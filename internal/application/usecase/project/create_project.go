package project

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	resourceName = "project"
	imageFolder  = "projects"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	uploader    service.Uploader
	publisher   service.EventPublisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(pRepo project.Repository, uploader service.Uploader, pub service.EventPublisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		uploader:    uploader,
		publisher:   pub,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title       string
	Description string
	Link        *string
	Order       int
	// Image is an already stored reference; ImageFile, when set, wins.
	Image     string
	ImageFile io.Reader
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	newProject := &project.Project{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Link:        normalizeLink(input.Link),
		Order:       input.Order,
	}

	var uploadedID string
	if input.ImageFile != nil {
		// Placeholder so Validate does not flag a missing image before upload.
		newProject.Image = "pending-upload"
	}
	if err := newProject.Validate(); err != nil {
		return nil, err
	}

	if input.ImageFile != nil {
		uploadedID = uuid.NewString()
		url, err := uc.uploader.Upload(ctx, input.ImageFile, imageFolder, uploadedID)
		if err != nil {
			return nil, apperror.NewInternal("failed to upload project image", err)
		}
		newProject.Image = url
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		if uploadedID != "" {
			go func() {
				if derr := uc.uploader.Delete(context.Background(), imageFolder+"/"+uploadedID); derr != nil {
					uc.logger.Warn("Failed to clean up orphaned project image", zap.String("public_id", uploadedID), zap.Error(derr))
				}
			}()
		}
		return nil, err
	}

	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentCreated, resourceName, newProject.ID)
	return &CreateProjectOutput{Project: newProject}, nil
}

// normalizeLink stores blank links as null; the dashboard posts link="" when
// the field is cleared.
func normalizeLink(link *string) *string {
	if link == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*link)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
