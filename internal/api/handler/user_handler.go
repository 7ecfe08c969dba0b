package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviebag/movie-bag/internal/core/ports"
)

// UserHandler handles account lifecycle requests.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// DeleteMe handles DELETE /api/users/me. Deleting the account cascades
// deletion of the movies it added.
//
// @Summary      Delete the authenticated account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.authService.DeleteAccount(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{})
}
