package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountServices "github.com/c14220110/caregiver-backend/internal/account/services"
	"github.com/c14220110/caregiver-backend/internal/caregiver/controllers"
	"github.com/c14220110/caregiver-backend/internal/caregiver/routes"
	"github.com/c14220110/caregiver-backend/internal/caregiver/services"
	"github.com/c14220110/caregiver-backend/pkg/logger"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) (*echo.Echo, *utils.TokenIssuer) {
	t.Helper()
	issuer, err := utils.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	store := docstore.NewMemoryStore()
	svc := services.NewCaregiverService(store, docstore.NewListEditor(store), accountServices.NewAccountService(store), nil, logger.Discard())

	e := echo.New()
	routes.RegisterCaregiverRoutes(e.Group("/api"), controllers.NewCaregiverController(svc, logger.Discard()), issuer)
	return e, issuer
}

func token(t *testing.T, issuer *utils.TokenIssuer, username, name, role string) string {
	t.Helper()
	tok, _, err := issuer.Generate(username, name, role)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(e *echo.Echo, method, path, auth, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestCaregiverNoteLifecycle(t *testing.T) {
	e, issuer := newServer(t)
	alice := token(t, issuer, "alice", "Alice", utils.RoleCaregiver)
	bob := token(t, issuer, "bob", "Bob", utils.RoleCaregiver)

	rec, env := do(e, http.MethodPost, "/api/caregiver/notes", alice,
		`{"patient_name":"John","note":"tidur nyenyak","timestamp":"2025-10-27T02:00:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id_of_note_just_recorded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	rec, _ = do(e, http.MethodPut, "/api/caregiver/notes/"+created.ID, bob, `{"patient_name":"John","note":"x"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = do(e, http.MethodPut, "/api/caregiver/notes/"+created.ID, alice, `{"patient_name":"John","note":"tidur nyenyak, bangun 05:30"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(e, http.MethodDelete, "/api/caregiver/notes/nope?patient_name=John", alice, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(e, http.MethodDelete, "/api/caregiver/notes/"+created.ID+"?patient_name=John", alice, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCaregiverRoutesRequireCaregiverRole(t *testing.T) {
	e, issuer := newServer(t)

	rec, _ := do(e, http.MethodPost, "/api/caregiver/notes", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rose := token(t, issuer, "rose", "Rose", utils.RoleParent)
	rec, _ = do(e, http.MethodPost, "/api/caregiver/notes", rose, `{"patient_name":"John","note":"x"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestShiftRecordEndpoint(t *testing.T) {
	e, issuer := newServer(t)
	alice := token(t, issuer, "alice", "Alice", utils.RoleCaregiver)

	rec, env := do(e, http.MethodPost, "/api/caregiver/shift-record", alice,
		`{"patient_name":"John","category":"hr","value":72,"timestamp":"2025-10-27T08:00:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.Equal(t, "John-shift-898", saved["doc_id"])

	rec, _ = do(e, http.MethodPost, "/api/caregiver/shift-record", alice, `{"patient_name":"John","category":"mood","value":"ok"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(e, http.MethodGet, "/api/caregiver/care-instructions", alice, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec, env = do(e, http.MethodGet, "/api/caregiver/care-instructions?patient_name=John", alice, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}
