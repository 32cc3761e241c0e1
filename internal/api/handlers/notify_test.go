package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasboutique/storefront-platform/internal/api/handlers"
	appErrors "github.com/atlasboutique/storefront-platform/internal/errors"
	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/atlasboutique/storefront-platform/internal/services/mocks"
	"github.com/atlasboutique/storefront-platform/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func notifyMeBody(t *testing.T) *bytes.Buffer {
	t.Helper()

	body, err := json.Marshal(models.CreateNotifyMeRequest{
		Product:  models.NotifyMeProduct{Code: "W-001", Category: "bags"},
		Customer: models.NotifyMeCustomer{Name: "Jane Doe", Email: "jane@example.com"},
	})
	require.NoError(t, err)

	return bytes.NewBuffer(body)
}

func TestCreateNotifyMeHandler(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		notifyService := mocks.NewNotifyService(t)
		handler := handlers.NewNotifyHandler(notifyService)

		created := &models.NotifyRequest{
			ID: 7, ProductCode: "W-001", ProductCategory: models.CategoryWatches,
			Status: models.NotifyStatusPending,
		}

		notifyService.On("CreateRequest", mock.Anything, mock.AnythingOfType("*models.CreateNotifyMeRequest")).
			Return(created, nil).Once()

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/notify-me", notifyMeBody(t), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.CreateRequest().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
	})

	t.Run("Failure - Missing Customer Name", func(t *testing.T) {
		notifyService := mocks.NewNotifyService(t)
		handler := handlers.NewNotifyHandler(notifyService)

		body := `{"product": {"code": "W-001"}, "customer": {"email": "jane@example.com"}}`

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/notify-me", bytes.NewBufferString(body), nil)
		rec := httptest.NewRecorder()

		handler.CreateRequest().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - Unknown Product Code", func(t *testing.T) {
		notifyService := mocks.NewNotifyService(t)
		handler := handlers.NewNotifyHandler(notifyService)

		notifyService.On("CreateRequest", mock.Anything, mock.AnythingOfType("*models.CreateNotifyMeRequest")).
			Return(nil, appErrors.BadRequestError("Unknown product code: W-001")).Once()

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/notify-me", notifyMeBody(t), nil)
		rec := httptest.NewRecorder()

		handler.CreateRequest().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeBadRequest, resp.Error.Code)
	})
}

func TestListNotifyRequestsHandler(t *testing.T) {

	t.Run("Success - Status Filter Forwarded", func(t *testing.T) {
		notifyService := mocks.NewNotifyService(t)
		handler := handlers.NewNotifyHandler(notifyService)

		stored := []*models.NotifyRequest{{ID: 1, Status: models.NotifyStatusPending}}

		notifyService.On("ListRequests", mock.Anything, "pending", 1, 20).
			Return(stored, 1, nil).Once()

		req := testutils.CreateTestRequestWithAdmin(http.MethodGet,
			"/api/v1/notify-requests?status=pending", nil, nil)
		rec := httptest.NewRecorder()

		handler.ListRequests().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Failure - Invalid Status Filter", func(t *testing.T) {
		notifyService := mocks.NewNotifyService(t)
		handler := handlers.NewNotifyHandler(notifyService)

		notifyService.On("ListRequests", mock.Anything, "archived", 1, 20).
			Return(nil, 0, appErrors.ValidationError("Invalid status filter: archived")).Once()

		req := testutils.CreateTestRequestWithAdmin(http.MethodGet,
			"/api/v1/notify-requests?status=archived", nil, nil)
		rec := httptest.NewRecorder()

		handler.ListRequests().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
