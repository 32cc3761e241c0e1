package handlers

import (
	"net/http"

	"github.com/atlasboutique/storefront-platform/internal/api/middleware"
	"github.com/atlasboutique/storefront-platform/internal/models"
	service "github.com/atlasboutique/storefront-platform/internal/services"
	"github.com/atlasboutique/storefront-platform/internal/utils"
	"github.com/atlasboutique/storefront-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	adminService service.AdminService
	validator    *validator.Validate
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService, validator: validator.New()}
}

// Login godoc
//	@Summary	Exchange admin credentials for a bearer token
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		models.AdminLoginRequest	true	"Admin email and password"
//	@Success	200			{object}	models.AdminLoginResponse
//	@Failure	401			{object}	response.ErrorResponse
//	@Router		/admin/login [post]
func (h *AdminHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AdminLoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid admin login input")

			return
		}

		result, err := h.adminService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Admin login rejected")
			response.Error(w, err)

			return
		}

		logger.Info("Admin logged in")
		response.Success(w, http.StatusOK, result)
	}
}
