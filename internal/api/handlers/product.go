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

type ProductHandler struct {
	productService service.ProductService
	restockService service.RestockService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService, restockService service.RestockService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		restockService: restockService,
		validator:      validator.New(),
	}
}

// Restock godoc
//	@Summary		Restock a product and notify waiting customers
//	@Description	Sets the product's stock to an absolute value, then fans out notifications to every pending notify-me request for the code. The stock update stands even when all notifications fail.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			category	path		string					true	"Product category"	Enums(watches, clothes, bags, perfumes)
//	@Param			code		path		string					true	"Product code"
//	@Param			restock		body		models.RestockRequest	true	"New absolute stock value"
//	@Success		200			{object}	models.RestockResponse	"Stock updated with notification summary"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid category or stock value"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{category}/{code}/restock [patch]
func (h *ProductHandler) Restock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		category := r.PathValue("category")
		code := r.PathValue("code")

		var req models.RestockRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid restock input")

			return
		}

		result, err := h.restockService.Restock(r.Context(), category, code, req.Stock)
		if err != nil {
			logger.Error("Failed to restock product",
				slog.String("category", category),
				slog.String("code", code),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Product restocked",
			slog.String("code", code),
			slog.Int("stock", req.Stock),
			slog.Int("notified", result.Notifications.Success),
			slog.Int("failed", result.Notifications.Failed))
		response.Success(w, http.StatusOK, result)
	}
}

// CreateProduct godoc
//	@Summary	Create a product in a category
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		category	path		string						true	"Product category"
//	@Param		product		body		models.CreateProductRequest	true	"Product details"
//	@Success	201			{object}	models.Product
//	@Failure	400			{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/products/{category} [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")

			return
		}

		product, err := h.productService.CreateProduct(r.Context(), r.PathValue("category"), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Product created", slog.String("code", product.Code))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		product, err := h.productService.GetProduct(r.Context(), r.PathValue("category"), r.PathValue("code"))
		if err != nil {
			logger.Warn("Failed to get product", slog.String("code", r.PathValue("code")), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")

			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), r.PathValue("category"), r.PathValue("code"), &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.productService.DeleteProduct(r.Context(), r.PathValue("category"), r.PathValue("code")); err != nil {
			logger.Error("Failed to delete product", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page := utils.QueryInt(r, "page", 1, 1, 1<<30)
		pageSize := utils.QueryInt(r, "pageSize", 20, 1, 100)

		products, total, err := h.productService.ListProducts(r.Context(), r.PathValue("category"), page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
