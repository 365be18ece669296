package experience

import (
	"context"
	"time"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resourceName = "experience"

type ExperienceUseCase struct {
	repo      experience.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewExperienceUseCase(r experience.Repository, pub service.EventPublisher, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, publisher: pub, logger: log}
}

type ExperienceInput struct {
	JobTitle    string
	Company     string
	Location    *string
	StartDate   time.Time
	EndDate     *time.Time
	IsCurrent   bool
	Description *string
	Order       int
}

func (in ExperienceInput) apply(e *experience.Experience) {
	e.JobTitle = in.JobTitle
	e.Company = in.Company
	e.Location = in.Location
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.IsCurrent = in.IsCurrent
	e.Description = in.Description
	e.Order = in.Order
}

func (uc *ExperienceUseCase) CreateExperience(ctx context.Context, in ExperienceInput) (*experience.Experience, error) {
	e := &experience.Experience{}
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

func (uc *ExperienceUseCase) UpdateExperience(ctx context.Context, id int64, in ExperienceInput) (*experience.Experience, error) {
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

func (uc *ExperienceUseCase) DeleteExperience(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentDeleted, resourceName, id)
	return nil
}

func (uc *ExperienceUseCase) GetExperience(ctx context.Context, id int64) (*experience.Experience, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ExperienceUseCase) ListExperience(ctx context.Context) ([]*experience.Experience, error) {
	return uc.repo.List(ctx)
}
