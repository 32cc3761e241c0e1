package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/atlasboutique/storefront-platform/internal/errors"
	"github.com/atlasboutique/storefront-platform/internal/models"
	"github.com/atlasboutique/storefront-platform/internal/notifier"
	repository "github.com/atlasboutique/storefront-platform/internal/repositories"
)

type RestockService interface {
	Restock(ctx context.Context, category, code string, newStock int) (*models.RestockResponse, error)
}

// RestockNotifier is the fan-out collaborator; satisfied by *notifier.Notifier.
type RestockNotifier interface {
	Notify(ctx context.Context, req *models.NotifyRequest, product *models.Product) notifier.Result
}

type restockService struct {
	productRepo repository.ProductRepository
	notifyRepo  repository.NotifyRepository
	notifier    RestockNotifier
}

func NewRestockService(productRepo repository.ProductRepository, notifyRepo repository.NotifyRepository, fanOut RestockNotifier) RestockService {
	return &restockService{productRepo: productRepo, notifyRepo: notifyRepo, notifier: fanOut}
}

// Restock sets the product's stock to an absolute value and then notifies
// every customer still waiting on the code. The stock update stands even if
// every notification fails; fan-out failures are folded into the summary and
// never propagate.
func (s *restockService) Restock(ctx context.Context, categoryStr, code string, newStock int) (*models.RestockResponse, error) {

	category, err := models.ParseCategory(categoryStr)
	if err != nil {
		return nil, errors.ValidationError("Invalid category: " + categoryStr)
	}

	if newStock < 0 {
		return nil, errors.ValidationError("Stock must be a non-negative number")
	}

	product, err := s.productRepo.SetStock(ctx, category, code, newStock)
	if err != nil {

		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found: " + code).WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update stock").WithError(err)
	}

	logger := slog.Default().With(
		slog.String("category", category.String()),
		slog.String("code", code),
		slog.Int("newStock", newStock),
	)

	pending, err := s.notifyRepo.ListPendingByCode(ctx, code)
	if err != nil {
		// Stock is already updated; surfacing a hard failure here would make
		// the admin believe the restock itself failed.
		logger.Error("Failed to load pending notify requests", slog.Any("error", err))

		return &models.RestockResponse{
			Product:       product,
			Notifications: models.NotifySummary{Details: []models.NotifyDetail{}},
			WhatsAppLinks: []string{},
		}, nil
	}

	response := &models.RestockResponse{
		Product: product,
		Notifications: models.NotifySummary{
			Total:   len(pending),
			Details: make([]models.NotifyDetail, 0, len(pending)),
		},
		WhatsAppLinks: []string{},
	}

	for _, req := range pending {

		result := s.notifier.Notify(ctx, req, product)

		detail := models.NotifyDetail{
			RequestID:    req.ID,
			CustomerName: req.CustomerName,
			Channels:     result.Channels,
			WhatsAppLink: result.WhatsAppLink,
		}

		if result.Notified {

			flipped, err := s.notifyRepo.MarkNotified(ctx, req.ID)

			switch {
			case err != nil:
				logger.Error("Failed to mark request as notified",
					slog.Int64("requestId", req.ID), slog.Any("error", err))

				response.Notifications.Failed++
			case flipped:
				detail.Notified = true
				response.Notifications.Success++

				if result.WhatsAppLink != "" {
					response.WhatsAppLinks = append(response.WhatsAppLinks, result.WhatsAppLink)
				}
			default:
				// a concurrent restock already claimed this request; drop it
				// from the summary so Total always equals len(Details)
				response.Notifications.Total--

				continue
			}

		} else {
			response.Notifications.Failed++
		}

		response.Notifications.Details = append(response.Notifications.Details, detail)
	}

	logger.Info("Restock fan-out finished",
		slog.Int("total", response.Notifications.Total),
		slog.Int("success", response.Notifications.Success),
		slog.Int("failed", response.Notifications.Failed))

	return response, nil
}
