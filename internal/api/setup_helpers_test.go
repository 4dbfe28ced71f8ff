package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ita-growin/growin/internal/db"
	"github.com/ita-growin/growin/internal/kakao"
)

// fakeKakaoClient maps access tokens to canned profiles so tests can mint
// distinct accounts without calling Kakao.
type fakeKakaoClient struct {
	profiles map[string]kakao.UserInfo
}

func (client *fakeKakaoClient) UserInfo(ctx context.Context, accessToken string) (kakao.UserInfo, error) {
	info, found := client.profiles[accessToken]
	if !found {
		return kakao.UserInfo{}, kakao.ErrInvalidAccessToken
	}
	return info, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "growin_test.db"), "silent")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	kakaoClient := &fakeKakaoClient{profiles: map[string]kakao.UserInfo{
		"kakao-alice": {ID: 1001, Email: "alice@example.com", Nickname: "Alice"},
		"kakao-bob":   {ID: 1002, Email: "bob@example.com", Nickname: "Bob"},
	}}

	handler := NewHandler(database, "test-secret", time.UTC, 30*time.Minute, 14*24*time.Hour, kakaoClient)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, accessToken string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		request.Header.Set("Authorization", "Bearer "+accessToken)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// signupUser creates an account through the public signup route and returns
// the issued tokens.
func signupUser(t *testing.T, app *fiber.App, kakaoToken string) authResponse {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/v1/auth/kakao/signup", "", fiber.Map{
		"accessToken":   kakaoToken,
		"work":          "STUDENT",
		"interestField": "DEVELOPMENT",
		"target":        "STUDY",
		"deviceToken":   "device-" + kakaoToken,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("signup returned status %d", response.StatusCode)
	}

	var auth authResponse
	decodeJSON(t, response, &auth)
	if auth.AccessToken == "" || auth.RefreshToken == "" {
		t.Fatal("expected both tokens in signup response")
	}
	return auth
}

func createStandupEvent(t *testing.T, app *fiber.App, accessToken string) uint {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/v1/events", accessToken, fiber.Map{
		"title":      "Standup",
		"startDate":  "2024-01-02",
		"endDate":    "2024-01-02",
		"startTime":  "09:00",
		"endTime":    "09:15",
		"repeatType": "NONE",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create event returned status %d", response.StatusCode)
	}

	var summary struct {
		EventID uint   `json:"eventId"`
		Title   string `json:"title"`
	}
	decodeJSON(t, response, &summary)
	if summary.EventID == 0 {
		t.Fatal("expected assigned event id")
	}
	return summary.EventID
}
