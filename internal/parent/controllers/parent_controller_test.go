package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/caregiver-backend/internal/parent/controllers"
	"github.com/c14220110/caregiver-backend/internal/parent/routes"
	"github.com/c14220110/caregiver-backend/internal/parent/services"
	"github.com/c14220110/caregiver-backend/pkg/logger"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

func TestParentRoutes(t *testing.T) {
	issuer, err := utils.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	store := docstore.NewMemoryStore()
	svc := services.NewParentService(docstore.NewListEditor(store), nil, logger.Discard())

	e := echo.New()
	routes.RegisterParentRoutes(e.Group("/api"), controllers.NewParentController(svc, logger.Discard()), issuer)

	bearer := func(username, role string) string {
		tok, _, err := issuer.Generate(username, "", role)
		require.NoError(t, err)
		return "Bearer " + tok
	}
	rose := bearer("rose", utils.RoleParent)
	alice := bearer("alice", utils.RoleCaregiver)

	do := func(method, path, auth, body string) int {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Authorization", auth)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	future := time.Now().UTC().Add(48 * time.Hour).Format("2006-01-02T15:04:05")

	assert.Equal(t, http.StatusCreated, do(http.MethodPost, "/api/parent/notes", rose, `{"patient_name":"John","note":"hai"}`))
	assert.Equal(t, http.StatusForbidden, do(http.MethodPost, "/api/parent/notes", alice, `{"patient_name":"John","note":"hai"}`))
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/api/parent/care-instructions", rose, `{"patient_name":"John"}`))
	assert.Equal(t, http.StatusCreated, do(http.MethodPost, "/api/parent/appointments", rose,
		`{"patient_name":"John","appointment_date":"`+future+`","type":"lab"}`))
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/parent/appointments?patient_name=John&days=3", alice, ""))
	assert.Equal(t, http.StatusBadRequest, do(http.MethodGet, "/api/parent/appointments?patient_name=John&days=x", alice, ""))
}
