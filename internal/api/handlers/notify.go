package handlers

import (
	"log/slog"
	"net/http"

	"github.com/atlasboutique/storefront-platform/internal/api/middleware"
	"github.com/atlasboutique/storefront-platform/internal/models"
	service "github.com/atlasboutique/storefront-platform/internal/services"
	"github.com/atlasboutique/storefront-platform/internal/utils"
	"github.com/atlasboutique/storefront-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type NotifyHandler struct {
	notifyService service.NotifyService
	validator     *validator.Validate
}

func NewNotifyHandler(notifyService service.NotifyService) *NotifyHandler {
	return &NotifyHandler{notifyService: notifyService, validator: validator.New()}
}

// CreateRequest godoc
//	@Summary		Ask to be notified when a product is restocked
//	@Description	Files a notify-me request. The category is resolved from the product code server-side; any category sent by the client is ignored.
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.CreateNotifyMeRequest	true	"Product code and customer contact"
//	@Success		201		{object}	models.NotifyRequest			"Request stored"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error or unknown product code"
//	@Router			/notify-me [post]
func (h *NotifyHandler) CreateRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateNotifyMeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid notify-me input")

			return
		}

		request, err := h.notifyService.CreateRequest(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create notify request",
				slog.String("code", req.Product.Code),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Notify request stored",
			slog.Int64("requestId", request.ID),
			slog.String("code", request.ProductCode),
			slog.String("category", request.ProductCategory.String()))
		response.Success(w, http.StatusCreated, request)
	}
}

// ListRequests godoc
//	@Summary	List notify-me requests for the admin dashboard
//	@Tags		Notifications
//	@Produce	json
//	@Param		status		query		string	false	"Filter by status"	Enums(pending, notified, expired)
//	@Param		page		query		int		false	"Page number"
//	@Param		pageSize	query		int		false	"Page size"
//	@Success	200			{object}	models.PaginatedResponse
//	@Security	BearerAuth
//	@Router		/notify-requests [get]
func (h *NotifyHandler) ListRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page := utils.QueryInt(r, "page", 1, 1, 1<<30)
		pageSize := utils.QueryInt(r, "pageSize", 20, 1, 100)

		requests, total, err := h.notifyService.ListRequests(r.Context(), r.URL.Query().Get("status"), page, pageSize)
		if err != nil {
			logger.Error("Failed to list notify requests", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     requests,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
