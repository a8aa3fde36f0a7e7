package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHealthController_Check(t *testing.T) {
	tests := []struct {
		name       string
		closeDB    bool
		wantStatus int
		wantState  string
	}{
		{name: "database reachable", wantStatus: http.StatusOK, wantState: "ok"},
		{name: "database closed", closeDB: true, wantStatus: http.StatusServiceUnavailable, wantState: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
			require.NoError(t, err)
			sqlDB, err := db.DB()
			require.NoError(t, err)
			if tt.closeDB {
				require.NoError(t, sqlDB.Close())
			} else {
				t.Cleanup(func() { _ = sqlDB.Close() })
			}

			app := fiber.New()
			app.Get("/healthz", NewHealthController(db).Check)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body map[string]string
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantState, body["status"])
		})
	}
}
