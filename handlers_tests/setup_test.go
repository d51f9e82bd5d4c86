package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"venue-webapp/app"
	"venue-webapp/clock"
	"venue-webapp/config"
	"venue-webapp/seed"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type Test struct {
	description    string
	method         string
	route          string
	token          string
	bodyinput      []byte
	expectedCode   int
	expectedInBody string
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{
		Sign:          "test-signing-key",
		Storage:       config.StorageMemory,
		ShowsBackend:  config.ShowsBackendKV,
		MediaDir:      t.TempDir(),
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	}

	a, err := app.New(context.Background(), cfg, zerolog.Nop(), app.WithClock(clock.NewFixed(testNow)))
	require.NoError(t, err)
	t.Cleanup(func() {
		a.Close()
	})
	return a.Fiber()
}

func call(t *testing.T, server *fiber.App, method, route, token string, body []byte) (*http.Response, envelope) {
	t.Helper()
	req, _ := http.NewRequest(method, route, bytes.NewBuffer(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := server.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return res, env
}

func login(t *testing.T, server *fiber.App, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	res, env := call(t, server, "POST", "/auth/login", "", body)
	require.Equal(t, fiber.StatusOK, res.StatusCode, env.Message)

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func demoToken(t *testing.T, server *fiber.App) string {
	return login(t, server, seed.DemoUserEmail, seed.DemoUserPassword)
}

func adminToken(t *testing.T, server *fiber.App) string {
	return login(t, server, adminEmail, adminPassword)
}

func runTests(t *testing.T, server *fiber.App, tests []Test) {
	t.Helper()
	for _, test := range tests {
		req, _ := http.NewRequest(test.method, test.route, bytes.NewBuffer(test.bodyinput))
		if test.bodyinput != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if test.token != "" {
			req.Header.Set("Authorization", "Bearer "+test.token)
		}

		res, err := server.Test(req, -1)
		require.NoErrorf(t, err, test.description)

		body, err := io.ReadAll(res.Body)
		require.NoErrorf(t, err, "Invalid test, error occured while body parsing")

		require.Equalf(t, test.expectedCode, res.StatusCode, "%s: %s", test.description, body)
		if test.expectedInBody != "" {
			require.Containsf(t, string(body), test.expectedInBody, test.description)
		}
	}
}
