package profile

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	resourceName = "profile"
	imageFolder  = "profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	uploader    service.Uploader
	publisher   service.EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, uploader service.Uploader, pub service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		uploader:    uploader,
		publisher:   pub,
		logger:      log,
	}
}

type ProfileInput struct {
	// ProfileImage is a stored reference. Nil keeps the current image on
	// update; ImageFile, when set, replaces it.
	ProfileImage *string
	ImageFile    io.Reader
}

func (uc *ProfileUseCase) ExecuteCreateProfile(ctx context.Context, in ProfileInput) (*profile.Profile, error) {
	p := &profile.Profile{ProfileImage: in.ProfileImage}

	publicID, err := uc.storeImage(ctx, p, in.ImageFile)
	if err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Save(ctx, p); err != nil {
		uc.discardImage(publicID)
		return nil, err
	}

	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentCreated, resourceName, p.ID)
	return p, nil
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, id int64, in ProfileInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProfileImage != nil {
		p.ProfileImage = in.ProfileImage
	}

	publicID, err := uc.storeImage(ctx, p, in.ImageFile)
	if err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		uc.discardImage(publicID)
		return nil, err
	}

	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentUpdated, resourceName, p.ID)
	return p, nil
}

func (uc *ProfileUseCase) ExecuteDeleteProfile(ctx context.Context, id int64) error {
	if err := uc.profileRepo.Delete(ctx, id); err != nil {
		return err
	}
	service.NotifyContentChange(uc.publisher, uc.logger, service.ContentDeleted, resourceName, id)
	return nil
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, id int64) (*profile.Profile, error) {
	return uc.profileRepo.FindByID(ctx, id)
}

func (uc *ProfileUseCase) ExecuteListProfiles(ctx context.Context) ([]*profile.Profile, error) {
	return uc.profileRepo.List(ctx)
}

func (uc *ProfileUseCase) storeImage(ctx context.Context, p *profile.Profile, file io.Reader) (string, error) {
	if file == nil {
		return "", nil
	}
	publicID := uuid.NewString()
	url, err := uc.uploader.Upload(ctx, file, imageFolder, publicID)
	if err != nil {
		return "", apperror.NewInternal("failed to upload profile image", err)
	}
	p.ProfileImage = &url
	return imageFolder + "/" + publicID, nil
}

func (uc *ProfileUseCase) discardImage(publicID string) {
	if publicID == "" {
		return
	}
	go func() {
		if err := uc.uploader.Delete(context.Background(), publicID); err != nil {
			uc.logger.Warn("Failed to clean up orphaned profile image", zap.String("public_id", publicID), zap.Error(err))
		}
	}()
}
