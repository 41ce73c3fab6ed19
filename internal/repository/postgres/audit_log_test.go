package postgres_test

import (
	"context"
	"testing"
	"time"
	"tzfield/internal/models"
	"tzfield/internal/repository"
	"tzfield/internal/repository/postgres"
	"tzfield/internal/testutil"
	"tzfield/internal/testutil/db"

	"github.com/stretchr/testify/require"
)

func newAuditLogRepo(t *testing.T) repository.AuditLogRepository {
	t.Helper()
	cfg := db.LoadTestConfig(t)
	testDB := db.SetupTestDB(t, &cfg.Database)
	return postgres.NewAuditLogRepository(testDB)
}

func TestAuditLogRepository_CreateAndList(t *testing.T) {
	repo := newAuditLogRepo(t)
	ctx := context.Background()

	entries := []models.CreateAuditLogRequest{
		{ProjectID: testutil.String("site-blog"), Action: models.AuditActionFormat, Value: "2025-09-08T15:30:00+02:00[Europe/Rome]", IPAddress: "127.0.0.1"},
		{ProjectID: testutil.String("site-blog"), Action: models.AuditActionStructured, Value: "{}", IPAddress: "127.0.0.1"},
		{Action: models.AuditActionZoneReload, Value: "418 zones", IPAddress: "127.0.0.1"},
	}
	for i := range entries {
		require.NoError(t, repo.Create(ctx, &entries[i]))
	}

	all, err := repo.List(ctx, repository.AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	byProject, err := repo.List(ctx, repository.AuditLogFilter{ProjectID: testutil.String("site-blog")})
	require.NoError(t, err)
	require.Len(t, byProject, 2)

	byAction, err := repo.List(ctx, repository.AuditLogFilter{
		Actions: []models.AuditAction{models.AuditActionZoneReload},
	})
	require.NoError(t, err)
	require.Len(t, byAction, 1)
	require.Nil(t, byAction[0].ProjectID)
	require.Equal(t, "418 zones", byAction[0].Value)
}

func TestAuditLogRepository_CleanupOld(t *testing.T) {
	repo := newAuditLogRepo(t)
	ctx := context.Background()

	entry := models.CreateAuditLogRequest{Action: models.AuditActionFormat, Value: "x"}
	require.NoError(t, repo.Create(ctx, &entry))

	// Nothing is old enough to be removed yet.
	require.NoError(t, repo.CleanupOld(ctx, time.Hour))
	all, err := repo.List(ctx, repository.AuditLogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	// A zero retention wipes everything.
	require.NoError(t, repo.CleanupOld(ctx, 0))
	all, err = repo.List(ctx, repository.AuditLogFilter{})
	require.NoError(t, err)
	require.Empty(t, all)
}
