package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Dexter3110/bole-to-connect/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotivationEndpoints(t *testing.T) {
	app, db := newTestApp(t)
	boss := seedUser(t, db, "ula", models.RoleBoss)
	employee := seedUser(t, db, "vic", models.RoleEmployee)

	// Nothing posted yet.
	resp, body := doJSON(t, app, http.MethodGet, "/api/motivation", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var empty struct {
		Message *string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &empty))
	assert.Nil(t, empty.Message)

	// Employees cannot post.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/motivation", fiber.Map{
		"user_id": employee.ID, "message": "nice try",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Boss posts; everyone reads it back.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/motivation", fiber.Map{
		"user_id": boss.ID, "message": "Strong month, keep it up!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/motivation", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var current struct {
		Message *string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &current))
	require.NotNil(t, current.Message)
	assert.Equal(t, "Strong month, keep it up!", *current.Message)

	// Clearing requires privilege too.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/motivation?user_id="+employee.ID.String(), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/motivation?user_id="+boss.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/motivation", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &empty))
	assert.Nil(t, empty.Message)
}

func TestMotivationValidationEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	boss := seedUser(t, db, "wyn", models.RoleBoss)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/motivation", fiber.Map{
		"user_id": boss.ID, "message": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
