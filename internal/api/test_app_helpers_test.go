package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitsense/internal/db"
	"github.com/terraincognita07/fitsense/internal/models"
	"github.com/terraincognita07/fitsense/internal/security"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

type testApp struct {
	app      *fiber.App
	database *gorm.DB
	handler  *Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fitsense-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, testSecretKey, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return &testApp{app: app, database: database, handler: handler}
}

func (env *testApp) createUser(t *testing.T, email string) (uint, string) {
	t.Helper()

	user := models.User{Email: email, CreatedAt: testNow}
	if err := env.database.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	token, err := security.IssueAuthToken([]byte(testSecretKey), user.ID, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return user.ID, token
}

func (env *testApp) request(t *testing.T, method string, path string, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response.StatusCode, payload
}

func (env *testApp) requestJSON(t *testing.T, method string, path string, token string, body any, expectedStatus int, target any) {
	t.Helper()

	status, payload := env.request(t, method, path, token, body)
	if status != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d: %s", method, path, expectedStatus, status, string(payload))
	}
	if target == nil {
		return
	}
	if err := json.Unmarshal(payload, target); err != nil {
		t.Fatalf("%s %s decode body %q: %v", method, path, string(payload), err)
	}
}

func readAPIError(t *testing.T, payload []byte) string {
	t.Helper()

	decoded := map[string]string{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode error body %q: %v", string(payload), err)
	}
	return decoded["error"]
}
