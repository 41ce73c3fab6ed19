// Package testutil provides utilities for testing
package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
	"tzfield/internal/auth"
	"tzfield/internal/config"
	"tzfield/internal/models"
	"tzfield/internal/repository"
	"tzfield/internal/tzindex"
	"tzfield/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestContext holds common test dependencies. It carries no database; the
// repositories are in-memory fakes so handler tests run anywhere. Postgres
// integration tests use the testutil/db harness instead.
type TestContext struct {
	T           *testing.T
	Config      *config.Config
	AuthService *auth.Service
	ConfigRepo  *MockFieldConfigRepository
	AuditRepo   *MockAuditLogRepository
}

// NewTestContext creates a new test context with all dependencies
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
	validation.Initialize()

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test_secret_key"
	cfg.Zones.DefaultTimeZone = "Europe/Stockholm"

	return &TestContext{
		T:           t,
		Config:      cfg,
		AuthService: auth.NewService(cfg),
		ConfigRepo:  NewMockFieldConfigRepository(),
		AuditRepo:   NewMockAuditLogRepository(),
	}
}

// GetTestJWT generates a session token for testing
func (tc *TestContext) GetTestJWT(projectID string, isAdmin bool) string {
	tc.T.Helper()
	token, err := tc.AuthService.GenerateToken(projectID, isAdmin, time.Minute)
	require.NoError(tc.T, err, "Failed to generate test JWT")
	return token
}

// NewTestZoneIndex builds a zone index over a miniature zoneinfo tree using
// real IANA zone ids, so offsets resolve against the runtime's database.
func NewTestZoneIndex(t *testing.T, zones ...string) *tzindex.Index {
	t.Helper()
	dir := t.TempDir()

	if len(zones) == 0 {
		zones = []string{"UTC", "Europe/Rome", "Europe/Stockholm", "America/Chicago", "Asia/Tokyo"}
	}
	for _, z := range zones {
		path := filepath.Join(dir, filepath.FromSlash(z))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("TZif2"), 0o644))
	}

	tab := "IT\t+4154+01229\tEurope/Rome\n" +
		"SE\t+5920+01803\tEurope/Stockholm\n" +
		"US\t+415100-0873900\tAmerica/Chicago\n" +
		"JP\t+353916+1394441\tAsia/Tokyo\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zone1970.tab"), []byte(tab), 0o644))

	ix := tzindex.New(dir)
	require.NoError(t, ix.Reload())
	return ix
}

type mockBase struct{}

func (mockBase) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (mockBase) DB() *sql.DB { return nil }

// MockFieldConfigRepository is an in-memory FieldConfigRepository.
type MockFieldConfigRepository struct {
	mockBase
	mu      sync.Mutex
	configs map[uuid.UUID]models.FieldConfig
}

func NewMockFieldConfigRepository() *MockFieldConfigRepository {
	return &MockFieldConfigRepository{configs: make(map[uuid.UUID]models.FieldConfig)}
}

func (m *MockFieldConfigRepository) Create(_ context.Context, cfg *models.FieldConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.configs {
		if existing.ProjectID == cfg.ProjectID {
			return repository.ErrConfigExists
		}
	}
	cfg.ID = uuid.New()
	cfg.CreatedAt = time.Now()
	cfg.UpdatedAt = cfg.CreatedAt
	m.configs[cfg.ID] = *cfg
	return nil
}

func (m *MockFieldConfigRepository) Update(_ context.Context, cfg *models.FieldConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.configs[cfg.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cfg.ProjectID = existing.ProjectID
	cfg.CreatedAt = existing.CreatedAt
	cfg.UpdatedAt = time.Now()
	m.configs[cfg.ID] = *cfg
	return nil
}

func (m *MockFieldConfigRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.configs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.configs, id)
	return nil
}

func (m *MockFieldConfigRepository) GetByID(_ context.Context, id uuid.UUID) (*models.FieldConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.configs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &cfg, nil
}

func (m *MockFieldConfigRepository) GetByProjectID(_ context.Context, projectID string) (*models.FieldConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cfg := range m.configs {
		if cfg.ProjectID == projectID {
			c := cfg
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockFieldConfigRepository) List(_ context.Context, _ repository.FieldConfigFilter) ([]models.FieldConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FieldConfig
	for _, cfg := range m.configs {
		out = append(out, cfg)
	}
	return out, nil
}

// MockAuditLogRepository records audit entries in memory.
type MockAuditLogRepository struct {
	mockBase
	mu      sync.Mutex
	Entries []models.CreateAuditLogRequest
}

func NewMockAuditLogRepository() *MockAuditLogRepository {
	return &MockAuditLogRepository{}
}

func (m *MockAuditLogRepository) Create(_ context.Context, entry *models.CreateAuditLogRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, *entry)
	return nil
}

func (m *MockAuditLogRepository) GetByID(_ context.Context, _ uuid.UUID) (*models.AuditLog, error) {
	return nil, repository.ErrNotFound
}

func (m *MockAuditLogRepository) List(_ context.Context, _ repository.AuditLogFilter) ([]models.AuditLog, error) {
	return nil, nil
}

func (m *MockAuditLogRepository) CleanupOld(_ context.Context, _ time.Duration) error {
	return nil
}

// Len returns how many entries have been recorded.
func (m *MockAuditLogRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Entries)
}
