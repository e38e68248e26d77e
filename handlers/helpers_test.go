package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anjiri1684/precision_martial/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "dojo-secret"

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	token, err := services.NewTokenService(testSecret, time.Hour).Issue(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return "Bearer " + token
}

type call struct {
	method string
	path   string
	body   interface{}
	auth   string
}

func do(t *testing.T, app *fiber.App, c call) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if c.body != nil {
		raw, err := json.Marshal(c.body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(c.method, c.path, reader)
	if c.body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if c.auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, c.auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

