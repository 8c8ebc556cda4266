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

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type DocumentRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	repo        service.DocumentStorage
}

func (s *DocumentRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.repo = NewPostgresDocumentRepo(s.dbPool, logger.NewNop())
}

func (s *DocumentRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestDocumentRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(DocumentRepoIntegrationTestSuite))
}

func (s *DocumentRepoIntegrationTestSuite) Test_Load_Missing() {
	_, err := s.repo.Load(context.Background(), "missing-key")
	s.ErrorIs(err, service.ErrDocumentNotFound)
}

func (s *DocumentRepoIntegrationTestSuite) Test_Save_Then_Overwrite() {
	ctx := context.Background()
	doc := profile.Default()

	first, err := profile.Encode(doc)
	s.Require().NoError(err)
	s.NoError(s.repo.Save(ctx, profile.StorageKey, first))

	doc.PersonalInfo.Name = "Updated Name"
	second, err := profile.Encode(doc)
	s.Require().NoError(err)
	s.NoError(s.repo.Save(ctx, profile.StorageKey, second))

	raw, err := s.repo.Load(ctx, profile.StorageKey)
	s.Require().NoError(err)
	s.JSONEq(string(second), string(raw))

	loaded, err := profile.Decode(raw)
	s.Require().NoError(err)
	s.Equal("Updated Name", loaded.PersonalInfo.Name)
	s.Equal(doc.IDs(), loaded.IDs())
}
