package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNopLogger()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	if err := RunMigrations("file://../../migrations", dsn, s.testLogger); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func (s *RepoIntegrationTestSuite) SetupTest() {
	_, err := s.dbPool.Exec(context.Background(),
		`TRUNCATE projects, skills, contact_messages, educations, experiences, profiles, users RESTART IDENTITY`)
	s.Require().NoError(err)
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) Test_Project_ListOrdering() {
	ctx := context.Background()
	repo := NewPostgresProjectRepo(s.dbPool, s.testLogger)

	for _, p := range []*project.Project{
		{Title: "A", Description: "a", Image: "https://img/a.png", Order: 2},
		{Title: "B", Description: "b", Image: "https://img/b.png", Order: 1},
		{Title: "C", Description: "c", Image: "https://img/c.png", Order: 1},
	} {
		s.Require().NoError(repo.Save(ctx, p))
		s.NotZero(p.ID)
		s.False(p.CreatedAt.IsZero())
	}

	list, err := repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal([]string{"C", "B", "A"}, []string{list[0].Title, list[1].Title, list[2].Title})
	s.Nil(list[0].Link)
}

func (s *RepoIntegrationTestSuite) Test_Project_UpdateAndDelete() {
	ctx := context.Background()
	repo := NewPostgresProjectRepo(s.dbPool, s.testLogger)

	p := &project.Project{Title: "Old", Description: "d", Image: "https://img/x.png"}
	s.Require().NoError(repo.Save(ctx, p))

	link := "https://example.com"
	p.Title = "New"
	p.Link = &link
	s.Require().NoError(repo.Update(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("New", found.Title)
	s.Require().NotNil(found.Link)
	s.Equal(link, *found.Link)

	s.Require().NoError(repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	s.ErrorIs(err, apperror.ErrNotFound)
	s.ErrorIs(repo.Delete(ctx, p.ID), apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_Skill_ListOrdering() {
	ctx := context.Background()
	repo := NewPostgresSkillRepo(s.dbPool, s.testLogger)

	s.Require().NoError(repo.Save(ctx, &skill.Skill{Name: "Python", Level: "Advanced", Order: 1}))
	s.Require().NoError(repo.Save(ctx, &skill.Skill{Name: "Django", Level: "Advanced", Order: 1}))
	s.Require().NoError(repo.Save(ctx, &skill.Skill{Name: "Go", Level: "Intermediate", Order: 0}))

	list, err := repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal([]string{"Go", "Django", "Python"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func (s *RepoIntegrationTestSuite) Test_Contact_NewestFirst() {
	ctx := context.Background()
	repo := NewPostgresContactRepo(s.dbPool, s.testLogger)

	first := &contact.Message{Name: "Ann", Email: "ann@example.com", Message: "hello"}
	second := &contact.Message{Name: "Bob", Email: "bob@example.com", Message: "hi"}
	s.Require().NoError(repo.Save(ctx, first))
	s.Require().NoError(repo.Save(ctx, second))

	list, err := repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(second.ID, list[0].ID)
	s.Equal(first.ID, list[1].ID)
}

func (s *RepoIntegrationTestSuite) Test_Education_NumericAndOrdering() {
	ctx := context.Background()
	repo := NewPostgresEducationRepo(s.dbPool, s.testLogger)

	pct := 87.25
	end := 2020
	older := &education.Education{Institution: "School", DegreeTitle: "HSC", StartYear: 2014, EndYear: &end, MarksPercentage: &pct}
	newer := &education.Education{Institution: "University", DegreeTitle: "BSc", StartYear: 2020}
	s.Require().NoError(repo.Save(ctx, older))
	s.Require().NoError(repo.Save(ctx, newer))

	list, err := repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("University", list[0].Institution)
	s.True(list[0].IsOngoing())
	s.Require().NotNil(list[1].MarksPercentage)
	s.InDelta(87.25, *list[1].MarksPercentage, 0.001)
}

func (s *RepoIntegrationTestSuite) Test_Experience_Dates() {
	ctx := context.Background()
	repo := NewPostgresExperienceRepo(s.dbPool, s.testLogger)

	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	exp := &experience.Experience{JobTitle: "Engineer", Company: "Acme", StartDate: start, IsCurrent: true}
	s.Require().NoError(repo.Save(ctx, exp))

	found, err := repo.FindByID(ctx, exp.ID)
	s.Require().NoError(err)
	s.Equal("2021-03-01", found.StartDate.Format(experience.DateLayout))
	s.Nil(found.EndDate)
	s.True(found.IsCurrent)
}

func (s *RepoIntegrationTestSuite) Test_User_DuplicateUsername() {
	ctx := context.Background()
	repo := NewPostgresUserRepo(s.dbPool, s.testLogger)

	u := &user.User{Username: "admin", PasswordHash: "hash", IsActive: true, DateJoined: time.Now().UTC()}
	s.Require().NoError(repo.Create(ctx, u))

	dup := &user.User{Username: "admin", PasswordHash: "hash", IsActive: true, DateJoined: time.Now().UTC()}
	s.ErrorIs(repo.Create(ctx, dup), apperror.ErrConflict)

	found, err := repo.FindByUsername(ctx, "admin")
	s.Require().NoError(err)
	s.Equal(u.ID, found.ID)
}
