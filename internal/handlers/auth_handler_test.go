package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLoginEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/signup", fiber.Map{
		"name": "Ana", "email": "ana@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var signup struct {
		Message string `json:"message"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body, &signup))
	assert.Equal(t, "User registered successfully!", signup.Message)
	assert.Equal(t, "ana@example.com", signup.User.Email)

	// Duplicate email conflicts.
	resp, _ = doJSON(t, app, http.MethodPost, "/signup", fiber.Map{
		"name": "Ana2", "email": "ana@example.com", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Missing field is a 400.
	resp, _ = doJSON(t, app, http.MethodPost, "/signup", fiber.Map{
		"email": "no-name@example.com", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"email": "ana@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"email": "ana@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLookupUserEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/signup", fiber.Map{
		"name": "Bo", "email": "bo@example.com", "password": "secret123",
	})
	var signup struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body, &signup))

	resp, body := doJSON(t, app, http.MethodGet, "/getUser/bo@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lookup struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(body, &lookup))
	assert.Equal(t, signup.User.ID, lookup.UserID)

	resp, _ = doJSON(t, app, http.MethodGet, "/getUser/ghost@example.com", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
