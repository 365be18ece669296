package skill

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resourceName = "skill"

type SkillUseCase struct {
	repo      skill.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewSkillUseCase(r skill.Repository, pub service.EventPublisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, publisher: pub, logger: log}
}

type SkillInput struct {
	Name  string
	Level string
	Order int
}

func (uc *SkillUseCase) CreateSkill(ctx context.Context, in SkillInput) (*skill.Skill, error) {
	s := &skill.Skill{Name: in.Name, Level: in.Level, Order: in.Order}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentCreated, resourceName, s.ID)
	return s, nil
}

func (uc *SkillUseCase) UpdateSkill(ctx context.Context, id int64, in SkillInput) (*skill.Skill, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Name = in.Name
	s.Level = in.Level
	s.Order = in.Order
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentUpdated, resourceName, s.ID)
	return s, nil
}

func (uc *SkillUseCase) DeleteSkill(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentDeleted, resourceName, id)
	return nil
}

func (uc *SkillUseCase) GetSkill(ctx context.Context, id int64) (*skill.Skill, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *SkillUseCase) ListSkills(ctx context.Context) ([]*skill.Skill, error) {
	return uc.repo.List(ctx)
}
