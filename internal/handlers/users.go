package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errListUsers = "failed to load users"

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List()
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListUsers, "users_list_failed", err)
		return
	}
	// models.User excludes the password hash from its JSON projection.
	c.JSON(http.StatusOK, users)
}
