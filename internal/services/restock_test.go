package service_test

import (
	"context"
	stdErrors "errors"
	"net/http"
	"testing"

	appErrors "github.com/atlasboutique/storefront-platform/internal/errors"
	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/atlasboutique/storefront-platform/internal/notifier"
	repository "github.com/atlasboutique/storefront-platform/internal/repositories"
	"github.com/atlasboutique/storefront-platform/internal/repositories/mocks"
	service "github.com/atlasboutique/storefront-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubNotifier returns a canned result per request ID.
type stubNotifier struct {
	results map[int64]notifier.Result
	calls   []int64
}

func (s *stubNotifier) Notify(_ context.Context, req *models.NotifyRequest, _ *models.Product) notifier.Result {
	s.calls = append(s.calls, req.ID)

	return s.results[req.ID]
}

func pendingRequest(id int64) *models.NotifyRequest {
	return &models.NotifyRequest{
		ID:           id,
		ProductCode:  "W-001",
		CustomerName: "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "+212600000000",
		Status:       models.NotifyStatusPending,
	}
}

func restockedProduct() *models.Product {
	return &models.Product{ID: 1, Code: "W-001", Name: "Chrono Classic", Category: models.CategoryWatches, Stock: 20}
}

func TestRestock(t *testing.T) {

	t.Run("Success - Notified Customers Are Marked", func(t *testing.T) {
		// Arrange
		productRepo := mocks.NewProductRepository(t)
		notifyRepo := mocks.NewNotifyRepository(t)
		fanOut := &stubNotifier{results: map[int64]notifier.Result{
			1: {Notified: true, WhatsAppLink: "https://wa.me/212600000000?text=back"},
			2: {Notified: false},
		}}
		restockService := service.NewRestockService(productRepo, notifyRepo, fanOut)

		product := restockedProduct()

		productRepo.On("SetStock", mock.Anything, models.CategoryWatches, "W-001", 20).
			Return(product, nil).Once()
		notifyRepo.On("ListPendingByCode", mock.Anything, "W-001").
			Return([]*models.NotifyRequest{pendingRequest(1), pendingRequest(2)}, nil).Once()
		notifyRepo.On("MarkNotified", mock.Anything, int64(1)).Return(true, nil).Once()

		// Act
		response, err := restockService.Restock(t.Context(), "watches", "W-001", 20)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Equal(t, 20, response.Product.Stock)
		assert.Equal(t, 2, response.Notifications.Total)
		assert.Equal(t, 1, response.Notifications.Success)
		assert.Equal(t, 1, response.Notifications.Failed)
		require.Len(t, response.Notifications.Details, 2)
		assert.True(t, response.Notifications.Details[0].Notified)
		assert.False(t, response.Notifications.Details[1].Notified)
		assert.Equal(t, []string{"https://wa.me/212600000000?text=back"}, response.WhatsAppLinks)
		assert.Equal(t, []int64{1, 2}, fanOut.calls, "Fan-out should walk the queue oldest first")
	})

	t.Run("Success - Stock Applies Even When Every Notification Fails", func(t *testing.T) {
		productRepo := mocks.NewProductRepository(t)
		notifyRepo := mocks.NewNotifyRepository(t)
		fanOut := &stubNotifier{results: map[int64]notifier.Result{}}
		restockService := service.NewRestockService(productRepo, notifyRepo, fanOut)

		productRepo.On("SetStock", mock.Anything, models.CategoryWatches, "W-001", 20).
			Return(restockedProduct(), nil).Once()
		notifyRepo.On("ListPendingByCode", mock.Anything, "W-001").
			Return([]*models.NotifyRequest{pendingRequest(1)}, nil).Once()

		response, err := restockService.Restock(t.Context(), "watches", "W-001", 20)

		require.NoError(t, err, "Notification failures must never fail the restock")
		assert.Equal(t, 1, response.Notifications.Failed)
		assert.Zero(t, response.Notifications.Success)
		assert.Empty(t, response.WhatsAppLinks)
	})

	t.Run("Success - Pending List Failure Still Returns The Update", func(t *testing.T) {
		productRepo := mocks.NewProductRepository(t)
		notifyRepo := mocks.NewNotifyRepository(t)
		fanOut := &stubNotifier{}
		restockService := service.NewRestockService(productRepo, notifyRepo, fanOut)

		productRepo.On("SetStock", mock.Anything, models.CategoryWatches, "W-001", 20).
			Return(restockedProduct(), nil).Once()
		notifyRepo.On("ListPendingByCode", mock.Anything, "W-001").
			Return(nil, stdErrors.New("DB error")).Once()

		response, err := restockService.Restock(t.Context(), "watches", "W-001", 20)

		require.NoError(t, err, "Stock is already committed at this point")
		assert.Equal(t, 20, response.Product.Stock)
		assert.Zero(t, response.Notifications.Total)
		assert.Empty(t, fanOut.calls)
	})

	t.Run("Success - Request Claimed By A Concurrent Restock", func(t *testing.T) {
		productRepo := mocks.NewProductRepository(t)
		notifyRepo := mocks.NewNotifyRepository(t)
		fanOut := &stubNotifier{results: map[int64]notifier.Result{
			1: {Notified: true},
			2: {Notified: true},
		}}
		restockService := service.NewRestockService(productRepo, notifyRepo, fanOut)

		productRepo.On("SetStock", mock.Anything, models.CategoryWatches, "W-001", 20).
			Return(restockedProduct(), nil).Once()
		notifyRepo.On("ListPendingByCode", mock.Anything, "W-001").
			Return([]*models.NotifyRequest{pendingRequest(1), pendingRequest(2)}, nil).Once()
		notifyRepo.On("MarkNotified", mock.Anything, int64(1)).Return(false, nil).Once()
		notifyRepo.On("MarkNotified", mock.Anything, int64(2)).Return(true, nil).Once()

		response, err := restockService.Restock(t.Context(), "watches", "W-001", 20)

		require.NoError(t, err)
		assert.Equal(t, 1, response.Notifications.Total, "A request claimed elsewhere should not be counted")
		assert.Equal(t, 1, response.Notifications.Success)
		assert.Zero(t, response.Notifications.Failed)
		require.Len(t, response.Notifications.Details, 1, "A claimed request must not leave a stray detail row")
		assert.Equal(t, int64(2), response.Notifications.Details[0].RequestID)
	})

	t.Run("Failure - Invalid Category", func(t *testing.T) {
		productRepo := mocks.NewProductRepository(t)
		notifyRepo := mocks.NewNotifyRepository(t)
		restockService := service.NewRestockService(productRepo, notifyRepo, &stubNotifier{})

		response, err := restockService.Restock(t.Context(), "electronics", "W-001", 20)

		assert.Nil(t, response)
		requireAppError(t, err, appErrors.ErrCodeValidation, http.StatusBadRequest)
	})

	t.Run("Failure - Negative Stock", func(t *testing.T) {
		productRepo := mocks.NewProductRepository(t)
		notifyRepo := mocks.NewNotifyRepository(t)
		restockService := service.NewRestockService(productRepo, notifyRepo, &stubNotifier{})

		response, err := restockService.Restock(t.Context(), "watches", "W-001", -1)

		assert.Nil(t, response)
		requireAppError(t, err, appErrors.ErrCodeValidation, http.StatusBadRequest)
	})

	t.Run("Failure - Unknown Code", func(t *testing.T) {
		productRepo := mocks.NewProductRepository(t)
		notifyRepo := mocks.NewNotifyRepository(t)
		restockService := service.NewRestockService(productRepo, notifyRepo, &stubNotifier{})

		productRepo.On("SetStock", mock.Anything, models.CategoryWatches, "W-404", 20).
			Return(nil, repository.ErrNotFound).Once()

		response, err := restockService.Restock(t.Context(), "watches", "W-404", 20)

		assert.Nil(t, response)
		requireAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound)
	})
}
