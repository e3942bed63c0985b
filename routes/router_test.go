package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"undangan.link/configs/configslog"
	"undangan.link/configs/configssession"
	"undangan.link/defaults"
	"undangan.link/models"
	"undangan.link/repositories"
	"undangan.link/services"
	"undangan.link/store"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	m.Run()
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SliceRecord{}))

	repo := repositories.NewSliceRepository(db)
	weddingStore := store.NewWeddingStore(repo)

	app := fiber.New(fiber.Config{Views: html.New("../views", ".html")})
	SetupRoutes(app, Deps{
		Sessions: configssession.SetupSession(),
		Store:    weddingStore,
		Auth:     store.NewAuthStore(repo),
		Export:   services.NewExportService(weddingStore),
	})
	return app
}

// login varsayılan kimlik bilgileriyle oturum açar ve session cookie'sini döndürür.
func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{
		"username": defaults.AdminUsername,
		"password": defaults.AdminPassword,
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "undangan_session" {
			return c
		}
	}
	t.Fatal("session cookie bulunamadı")
	return nil
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any, cookie *http.Cookie) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestPanelRequiresSession(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/panel/api/content", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"username": defaults.AdminUsername,
		"password": "yanlış",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestContentDefaultsAndUpdate(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/panel/api/content", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data models.WeddingData
	decodeBody(t, resp, &data)
	assert.Equal(t, "Davis", data.Couple.Groom.Name)
	assert.Equal(t, "Fera", data.Couple.Bride.Name)

	couple := data.Couple
	couple.Groom.Name = "Bagus"
	resp = doJSON(t, app, http.MethodPut, "/panel/api/couple", couple, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/panel/api/content", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &data)
	assert.Equal(t, "Bagus", data.Couple.Groom.Name)
}

func TestVenueUpdateDerivesMapPreview(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	venue := models.Venue{
		Name:    "Hotel Tugu",
		Address: "Malang",
		MapURL:  "https://maps.google.com/?q=-7.9771,112.6340",
	}
	resp := doJSON(t, app, http.MethodPut, "/panel/api/venue", venue, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Venue
	decodeBody(t, resp, &got)
	assert.Contains(t, got.MapPreviewURL, "center=-7.9771,112.6340")
}

func TestMoodboardRejectsUnknownCategory(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	items := []models.MoodboardItem{{ID: "m1", CategoryID: "sepatu"}}
	resp := doJSON(t, app, http.MethodPut, "/panel/api/moodboard", items, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScheduleRejectsDuplicateIDs(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	schedule := []models.Event{{ID: "1", Title: "Pemberkatan"}, {ID: "1", Title: "Resepsi"}}
	resp := doJSON(t, app, http.MethodPut, "/panel/api/schedule", schedule, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMoveVendorDetail(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	vendors := []models.Vendor{{ID: "v1", Name: "Katering", Details: []string{"A", "B"}}}
	resp := doJSON(t, app, http.MethodPut, "/panel/api/vendors", vendors, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/panel/api/vendors/v1/details/move", fiber.Map{
		"index":     1,
		"direction": "up",
	}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.Vendor
	decodeBody(t, resp, &got)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"B", "A"}, got[0].Details)

	resp = doJSON(t, app, http.MethodPost, "/panel/api/vendors/yok/details/move", fiber.Map{
		"index":     0,
		"direction": "down",
	}, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResetRestoresDefaults(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, http.MethodPut, "/panel/api/date", fiber.Map{"date": "1 Januari 2025"}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/panel/api/reset/core", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data models.WeddingData
	decodeBody(t, resp, &data)
	assert.Equal(t, defaults.Core.Date, data.Date)
}

func TestSyncStatusDisabledWithoutRemote(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/panel/api/sync/status", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status struct {
		Enabled bool `json:"enabled"`
	}
	decodeBody(t, resp, &status)
	assert.False(t, status.Enabled)
}

func TestExportImportRoundTrip(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, http.MethodPut, "/panel/api/date", fiber.Map{"date": "5 Mei 2025"}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/panel/api/export", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/panel/api/reset", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/panel/api/import", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.AddCookie(cookie)
	importResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, importResp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/panel/api/content", nil, cookie)
	var data models.WeddingData
	decodeBody(t, resp, &data)
	assert.Equal(t, "5 Mei 2025", data.Date)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/panel/api/content", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublicInvitationJSON(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/invitation", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data models.WeddingData
	decodeBody(t, resp, &data)
	assert.Equal(t, "Davis", data.Couple.Groom.Name)
}
