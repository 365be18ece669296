package education

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resourceName = "education"

type EducationUseCase struct {
	repo      education.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewEducationUseCase(r education.Repository, pub service.EventPublisher, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, publisher: pub, logger: log}
}

type EducationInput struct {
	Institution     string
	DegreeTitle     string
	FieldOfStudy    *string
	StartYear       int
	EndYear         *int
	MarksPercentage *float64
	Grade           *string
	Description     *string
	Order           int
}

func (in EducationInput) apply(e *education.Education) {
	e.Institution = in.Institution
	e.DegreeTitle = in.DegreeTitle
	e.FieldOfStudy = in.FieldOfStudy
	e.StartYear = in.StartYear
	e.EndYear = in.EndYear
	e.MarksPercentage = in.MarksPercentage
	e.Grade = in.Grade
	e.Description = in.Description
	e.Order = in.Order
}

func (uc *EducationUseCase) CreateEducation(ctx context.Context, in EducationInput) (*education.Education, error) {
	e := &education.Education{}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentCreated, resourceName, e.ID)
	return e, nil
}

func (uc *EducationUseCase) UpdateEducation(ctx context.Context, id int64, in EducationInput) (*education.Education, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentUpdated, resourceName, e.ID)
	return e, nil
}

func (uc *EducationUseCase) DeleteEducation(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentDeleted, resourceName, id)
	return nil
}

func (uc *EducationUseCase) GetEducation(ctx context.Context, id int64) (*education.Education, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *EducationUseCase) ListEducation(ctx context.Context) ([]*education.Education, error) {
	return uc.repo.List(ctx)
}
