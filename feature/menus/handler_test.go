package menus

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"menu-sync/core/auditlog"
	"menu-sync/core/settings"
	"menu-sync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *fixture) {
	f := newFixture(t)
	app := fiber.New()
	NewHandler(f.svc, "X-Actor-Id").RegisterRoutes(app)
	return app, f
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Id", "42")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHandleSync(t *testing.T) {
	app, f := setupTestApp(t)

	status, body := doJSON(t, app, "POST", "/menusync/sync", fmt.Sprintf(`{"menu_id": %d}`, f.main))
	assert.Equal(t, 200, status)
	success := body["success"].(map[string]any)
	assert.Contains(t, success, fmt.Sprint(f.target))

	recs := f.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(42), recs[0].ActorID)
}

func TestHandleSync_Errors(t *testing.T) {
	app, f := setupTestApp(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"Invalid Body", `{"menu_id": `, fiber.StatusBadRequest},
		{"Invalid Menu", `{"menu_id": 0}`, fiber.StatusBadRequest},
		{"Missing Menu", `{"menu_id": 999}`, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, "POST", "/menusync/sync", tt.body)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, body["error"])
		})
	}

	f.update(t, func(s *settings.Settings) { s.Enabled = false })
	status, _ := doJSON(t, app, "POST", "/menusync/sync", fmt.Sprintf(`{"menu_id": %d}`, f.main))
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestHandleSyncAll(t *testing.T) {
	app, f := setupTestApp(t)

	status, body := doJSON(t, app, "POST", "/menusync/sync-all", "")
	assert.Equal(t, 200, status)
	assert.Len(t, body["results"].(map[string]any), 2)
	assert.Len(t, f.records(t), 2)
}

func TestHandleMenuUpdated(t *testing.T) {
	app, f := setupTestApp(t)
	event := fmt.Sprintf(`{"tenant_id": %d, "menu_id": %d}`, f.source, f.main)

	status, body := doJSON(t, app, "POST", "/menusync/events/menu-updated", event)
	assert.Equal(t, 200, status)
	assert.Equal(t, false, body["triggered"])

	f.update(t, func(s *settings.Settings) { s.SyncMode = settings.ModeAuto })
	status, body = doJSON(t, app, "POST", "/menusync/events/menu-updated", event)
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["triggered"])
	assert.Equal(t, auditlog.OperationAutoSync, f.records(t)[0].Operation)
}

func TestHandleListMenus(t *testing.T) {
	app, f := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/menusync/menus", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var menus []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&menus))
	require.Len(t, menus, 2)
	assert.Equal(t, "main", menus[0]["slug"])

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/menusync/menus?tenant_id=%d", f.target+100), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleExtract(t *testing.T) {
	app, f := setupTestApp(t)

	status, body := doJSON(t, app, "GET", fmt.Sprintf("/menusync/menus/%d/extract", f.main), "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "main", body["slug"])
	assert.Len(t, body["items"].([]any), 2)

	status, _ = doJSON(t, app, "GET", "/menusync/menus/abc/extract", "")
	assert.Equal(t, 400, status)
}

func TestHandleApply(t *testing.T) {
	app, f := setupTestApp(t)
	menu, err := f.svc.Extract(f.ctx, 0, f.footer)
	require.NoError(t, err)
	payload, err := json.Marshal(ApplyInput{Menu: menu, TargetTenantID: f.target})
	require.NoError(t, err)

	status, body := doJSON(t, app, "POST", "/menusync/apply", string(payload))
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["succeeded"])

	status, _ = doJSON(t, app, "POST", "/menusync/apply", `{"target_tenant_id": 2}`)
	assert.Equal(t, 400, status)
}

func TestHandleSnapshots(t *testing.T) {
	app, f := setupTestApp(t)
	f.memoryBucket()

	status, body := doJSON(t, app, "POST", "/menusync/snapshots", fmt.Sprintf(`{"menu_id": %d, "format": "json"}`, f.main))
	assert.Equal(t, fiber.StatusCreated, status)
	key := body["key"].(string)
	assert.True(t, strings.HasPrefix(key, "snapshots/main/"))

	f.client.On("ListObjects", mock.Anything, "menu-sync", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Key: key, Size: 10}))

	resp, err := app.Test(httptest.NewRequest("GET", "/menusync/snapshots?slug=main", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, key, list[0]["key"])
}

func TestHandleImportSnapshot(t *testing.T) {
	app, f := setupTestApp(t)
	bucket := f.memoryBucket()

	info, err := f.svc.ExportSnapshot(f.ctx, 0, f.footer, FormatJSON)
	require.NoError(t, err)
	bucket.serve(f.client, info.Key)

	status, body := doJSON(t, app, "POST", "/menusync/snapshots/import", fmt.Sprintf(`{"key": %q}`, info.Key))
	assert.Equal(t, 200, status)
	assert.Contains(t, body["success"].(map[string]any), fmt.Sprint(f.target))
	assert.Equal(t, int64(42), f.records(t)[0].ActorID)
}

func TestHandleDeleteSnapshot(t *testing.T) {
	app, f := setupTestApp(t)
	f.client.On("StatObject", mock.Anything, "menu-sync", "snapshots/main/1.json", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

	status, body := doJSON(t, app, "DELETE", "/menusync/snapshots?key=snapshots/main/1.json", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body["error"], "snapshot not found")

	status, _ = doJSON(t, app, "DELETE", "/menusync/snapshots", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
