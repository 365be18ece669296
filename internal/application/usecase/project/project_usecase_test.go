package project

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/mocks"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type testDeps struct {
	repo     *mocks.MockProjectRepository
	uploader *mocks.MockUploader
	pub      *mocks.MockEventPublisher
}

func newDeps(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	d := testDeps{
		repo:     mocks.NewMockProjectRepository(ctrl),
		uploader: mocks.NewMockUploader(ctrl),
		pub:      mocks.NewMockEventPublisher(ctrl),
	}
	d.pub.EXPECT().PublishContentEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return d
}

func TestCreateProjectUploadsThenSaves(t *testing.T) {
	d := newDeps(t)
	uc := NewCreateProjectUseCase(d.repo, d.uploader, d.pub, logger.NewNopLogger())

	gomock.InOrder(
		d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), "projects", gomock.Any()).
			Return("https://cdn.example.com/projects/abc.png", nil),
		d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *project.Project) error {
			assert.Equal(t, "https://cdn.example.com/projects/abc.png", p.Image)
			p.ID = 11
			return nil
		}),
	)

	blank := "  "
	out, err := uc.Execute(context.Background(), CreateProjectInput{
		Title:       "Portfolio",
		Description: "Site",
		Link:        &blank,
		Order:       2,
		ImageFile:   strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), out.Project.ID)
	assert.Nil(t, out.Project.Link)
	assert.Equal(t, 2, out.Project.Order)
}

func TestCreateProjectValidationSkipsUpload(t *testing.T) {
	d := newDeps(t)
	uc := NewCreateProjectUseCase(d.repo, d.uploader, d.pub, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateProjectInput{
		Title:     strings.Repeat("t", project.MaxTitleLength+1),
		ImageFile: strings.NewReader("png"),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "title")
	assert.Contains(t, appErr.Fields, "description")
}

func TestCreateProjectRemovesImageWhenSaveFails(t *testing.T) {
	d := newDeps(t)
	uc := NewCreateProjectUseCase(d.repo, d.uploader, d.pub, logger.NewNopLogger())

	var publicID string
	d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), "projects", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, folder, id string) (string, error) {
			publicID = folder + "/" + id
			return "https://cdn.example.com/" + publicID + ".png", nil
		})
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(apperror.NewInternal("insert failed", errors.New("boom")))

	deleted := make(chan string, 1)
	d.uploader.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		deleted <- id
		return nil
	})

	_, err := uc.Execute(context.Background(), CreateProjectInput{
		Title: "P", Description: "D", ImageFile: strings.NewReader("png"),
	})
	assert.ErrorIs(t, err, apperror.ErrInternal)

	select {
	case id := <-deleted:
		assert.Equal(t, publicID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("orphaned image was not removed")
	}
}

func TestUpdateProjectKeepsStoredImage(t *testing.T) {
	d := newDeps(t)
	uc := NewUpdateProjectUseCase(d.repo, d.uploader, d.pub, logger.NewNopLogger())

	stored := &project.Project{ID: 3, Title: "Old", Description: "D", Image: "https://img/old.png", Order: 1}
	d.repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(stored, nil)
	d.repo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	out, err := uc.Execute(context.Background(), UpdateProjectInput{ProjectID: 3, Title: "New", Description: "D2"})
	require.NoError(t, err)
	assert.Equal(t, "New", out.Project.Title)
	assert.Equal(t, "https://img/old.png", out.Project.Image)
	assert.Equal(t, 0, out.Project.Order)
}

func TestUpdateProjectRemovesNewImageWhenUpdateFails(t *testing.T) {
	d := newDeps(t)
	uc := NewUpdateProjectUseCase(d.repo, d.uploader, d.pub, logger.NewNopLogger())

	stored := &project.Project{ID: 4, Title: "Old", Description: "D", Image: "https://img/old.png"}
	d.repo.EXPECT().FindByID(gomock.Any(), int64(4)).Return(stored, nil)

	var publicID string
	d.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), "projects", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, folder, id string) (string, error) {
			publicID = folder + "/" + id
			return "https://cdn.example.com/" + publicID + ".png", nil
		})
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(apperror.NewInternal("update failed", errors.New("boom")))

	deleted := make(chan string, 1)
	d.uploader.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		deleted <- id
		return nil
	})

	_, err := uc.Execute(context.Background(), UpdateProjectInput{
		ProjectID: 4, Title: "New", Description: "D", ImageFile: strings.NewReader("png"),
	})
	assert.ErrorIs(t, err, apperror.ErrInternal)

	select {
	case id := <-deleted:
		assert.Equal(t, publicID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("orphaned image was not removed")
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	d := newDeps(t)
	uc := NewUpdateProjectUseCase(d.repo, d.uploader, d.pub, logger.NewNopLogger())

	d.repo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, apperror.NewNotFound("project", "99"))

	_, err := uc.Execute(context.Background(), UpdateProjectInput{ProjectID: 99, Title: "T", Description: "D"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteProjectPropagatesNotFound(t *testing.T) {
	d := newDeps(t)
	uc := NewDeleteProjectUseCase(d.repo, d.pub, logger.NewNopLogger())

	d.repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(apperror.NewNotFound("project", "5"))
	assert.ErrorIs(t, uc.Execute(context.Background(), DeleteProjectInput{ProjectID: 5}), apperror.ErrNotFound)
}
