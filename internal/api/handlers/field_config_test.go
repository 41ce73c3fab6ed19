package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"tzfield/internal/api/handlers"
	"tzfield/internal/api/middleware"
	"tzfield/internal/models"
	"tzfield/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfigRouter(tc *testutil.TestContext) *gin.Engine {
	handler := handlers.NewFieldConfigHandler(tc.ConfigRepo, tc.AuditRepo)
	router := gin.New()
	authMiddleware := middleware.NewAuthMiddleware(tc.AuthService)

	configs := router.Group("/configs")
	configs.Use(authMiddleware.AuthRequired())
	{
		configs.GET("/me", handler.GetOwnConfig)

		admin := configs.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("", handler.ListConfigs)
			admin.GET("/:id", handler.GetConfig)
			admin.POST("", handler.CreateConfig)
			admin.PUT("/:id", handler.UpdateConfig)
			admin.DELETE("/:id", handler.DeleteConfig)
		}
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestFieldConfigHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		isAdmin    bool
		input      models.CreateFieldConfigRequest
		wantStatus int
	}{
		{
			name:    "Valid Config (Admin)",
			isAdmin: true,
			input: models.CreateFieldConfigRequest{
				ProjectID:       "site-blog",
				DefaultTimeZone: "Europe/Stockholm",
				OutputMode:      models.OutputModeString,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "Not Authorized (Regular Session)",
			isAdmin: false,
			input: models.CreateFieldConfigRequest{
				ProjectID:       "site-blog",
				DefaultTimeZone: "Europe/Stockholm",
				OutputMode:      models.OutputModeString,
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "Missing Project",
			isAdmin: true,
			input: models.CreateFieldConfigRequest{
				DefaultTimeZone: "Europe/Stockholm",
				OutputMode:      models.OutputModeString,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "Unknown Zone",
			isAdmin: true,
			input: models.CreateFieldConfigRequest{
				ProjectID:       "site-blog",
				DefaultTimeZone: "Mars/Olympus_Mons",
				OutputMode:      models.OutputModeString,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "Invalid Output Mode",
			isAdmin: true,
			input: models.CreateFieldConfigRequest{
				ProjectID:       "site-blog",
				DefaultTimeZone: "Europe/Stockholm",
				OutputMode:      "xml",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContext(t)
			router := newConfigRouter(tc)
			token := tc.GetTestJWT("admin-project", tt.isAdmin)

			w := doRequest(t, router, "POST", "/configs", token, tt.input)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var cfg models.FieldConfig
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
				assert.Equal(t, tt.input.ProjectID, cfg.ProjectID)
				assert.NotEqual(t, uuid.Nil, cfg.ID)

				require.Equal(t, 1, tc.AuditRepo.Len())
				assert.Equal(t, models.AuditActionConfigCreate, tc.AuditRepo.Entries[0].Action)
			}
		})
	}
}

func TestFieldConfigHandler_Create_Duplicate(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := newConfigRouter(tc)
	token := tc.GetTestJWT("admin-project", true)

	input := models.CreateFieldConfigRequest{
		ProjectID:       "site-blog",
		DefaultTimeZone: "Europe/Stockholm",
		OutputMode:      models.OutputModeString,
	}

	w := doRequest(t, router, "POST", "/configs", token, input)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "POST", "/configs", token, input)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFieldConfigHandler_GetOwnConfig(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := newConfigRouter(tc)

	require.NoError(t, tc.ConfigRepo.Create(context.Background(), &models.FieldConfig{
		ProjectID:       "site-blog",
		DefaultTimeZone: "Europe/Rome",
		OutputMode:      models.OutputModeJSON,
	}))

	// A regular session reads its own project's configuration
	w := doRequest(t, router, "GET", "/configs/me", tc.GetTestJWT("site-blog", false), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var cfg models.FieldConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, "Europe/Rome", cfg.DefaultTimeZone)
	assert.Equal(t, models.OutputModeJSON, cfg.OutputMode)

	// An unconfigured project gets 404
	w = doRequest(t, router, "GET", "/configs/me", tc.GetTestJWT("site-shop", false), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFieldConfigHandler_Update(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := newConfigRouter(tc)
	token := tc.GetTestJWT("admin-project", true)

	cfg := models.FieldConfig{
		ProjectID:       "site-blog",
		DefaultTimeZone: "Europe/Stockholm",
		OutputMode:      models.OutputModeString,
	}
	require.NoError(t, tc.ConfigRepo.Create(context.Background(), &cfg))

	w := doRequest(t, router, "PUT", "/configs/"+cfg.ID.String(), token, models.UpdateFieldConfigRequest{
		DefaultTimeZone: "Europe/Rome",
		OutputMode:      models.OutputModeJSON,
		SuggestedZones:  []string{"Asia/Tokyo"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.FieldConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Europe/Rome", updated.DefaultTimeZone)
	assert.Equal(t, "site-blog", updated.ProjectID)

	// Updating a missing config is 404
	w = doRequest(t, router, "PUT", "/configs/"+uuid.New().String(), token, models.UpdateFieldConfigRequest{
		DefaultTimeZone: "Europe/Rome",
		OutputMode:      models.OutputModeJSON,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFieldConfigHandler_Delete(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := newConfigRouter(tc)
	token := tc.GetTestJWT("admin-project", true)

	cfg := models.FieldConfig{
		ProjectID:       "site-blog",
		DefaultTimeZone: "Europe/Stockholm",
		OutputMode:      models.OutputModeString,
	}
	require.NoError(t, tc.ConfigRepo.Create(context.Background(), &cfg))

	w := doRequest(t, router, "DELETE", "/configs/"+cfg.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, "DELETE", "/configs/"+cfg.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.Equal(t, 1, tc.AuditRepo.Len())
	assert.Equal(t, models.AuditActionConfigDelete, tc.AuditRepo.Entries[0].Action)
}

func TestFieldConfigHandler_List(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := newConfigRouter(tc)

	for _, project := range []string{"site-blog", "site-shop"} {
		require.NoError(t, tc.ConfigRepo.Create(context.Background(), &models.FieldConfig{
			ProjectID:       project,
			DefaultTimeZone: "UTC",
			OutputMode:      models.OutputModeString,
		}))
	}

	w := doRequest(t, router, "GET", "/configs", tc.GetTestJWT("admin-project", true), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var configs []models.FieldConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &configs))
	assert.Len(t, configs, 2)

	// Listing is admin-only
	w = doRequest(t, router, "GET", "/configs", tc.GetTestJWT("site-blog", false), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFieldConfigHandler_List_OrderByWhitelist(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := newConfigRouter(tc)
	token := tc.GetTestJWT("admin-project", true)

	require.NoError(t, tc.ConfigRepo.Create(context.Background(), &models.FieldConfig{
		ProjectID:       "site-blog",
		DefaultTimeZone: "UTC",
		OutputMode:      models.OutputModeString,
	}))

	w := doRequest(t, router, "GET", "/configs?order_by=created_at&order_desc=true", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Anything but a known column must be rejected before it reaches SQL
	for _, orderBy := range []string{"updated_at", "id;DROP TABLE field_configs", "created_at,project_id"} {
		w = doRequest(t, router, "GET", "/configs?order_by="+url.QueryEscape(orderBy), token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "order_by=%s", orderBy)
	}
}
