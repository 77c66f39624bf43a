package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/duty-roster-bot/internal/handlers"
	"github.com/diegoclair/duty-roster-bot/internal/handlers/test"
	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newRouter(handler *handlers.SlackHandler) http.Handler {
	router := chi.NewRouter()
	handlers.SetupRoutes(router, handler)
	return router
}

func TestSetupRoutes(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	router := newRouter(handler)

	t.Run("Should answer the health probe", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "OK", recorder.Body.String())
	})

	t.Run("Should route signed slash commands", func(t *testing.T) {
		m.DutyServiceMock.EXPECT().Persons().Return([]roster.Person{"A"}).Times(1)

		recorder := httptest.NewRecorder()
		req := test.CreateSlackRequest(t, "/duty", "who", "C123456789", "U1", test.SigningSecret)

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Should reject other methods", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/slack/commands", nil)

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
