package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/speech4j/security-service/internal/core/ports"
)

// Default page parameters, used when the caller omits or garbles them.
const (
	defaultMax    = 10
	defaultOffset = 0
)

type UserHandler struct {
	userService ports.UserService
	roleService ports.RoleService
}

func NewUserHandler(userService ports.UserService, roleService ports.RoleService) *UserHandler {
	return &UserHandler{userService: userService, roleService: roleService}
}

// List handles GET /users. Optional email= or username= query parameters turn
// the call into a single-record lookup; otherwise max= and offset= page the
// listing. Malformed numerics silently fall back to the defaults.
//
// @Summary      List users or look one up by email/username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        max       query     int     false  "Page size (capped at 10)"
// @Param        offset    query     int     false  "Page offset"
// @Param        email     query     string  false  "Exact email lookup"
// @Param        username  query     string  false  "Exact username lookup"
// @Success      200       {array}   userResponse
// @Failure      404       {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	if email := c.QueryParam("email"); email != "" {
		view, err := h.userService.GetByEmail(c.Request().Context(), email)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toUserResponse(view))
	}
	if username := c.QueryParam("username"); username != "" {
		view, err := h.userService.GetByUsername(c.Request().Context(), username)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toUserResponse(view))
	}

	max := intParam(c.QueryParam("max"), defaultMax)
	offset := intParam(c.QueryParam("offset"), defaultOffset)

	views, err := h.userService.List(c.Request().Context(), max, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(views))
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	view, err := h.userService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(view))
}

// Update handles PUT /users/:id. The body may change username and password
// only; id and email always survive from the stored record.
//
// @Summary      Update a user's username and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.userService.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(view))
}

// Delete handles DELETE /users/:id (admin only, enforced by middleware).
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "User id"
// @Success      200
// @Failure      403  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Roles handles GET /users/:id/roles.
//
// @Summary      List the roles attached to a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "User id"
// @Success      200  {array}  roleResponse
// @Router       /users/{id}/roles [get]
func (h *UserHandler) Roles(c echo.Context) error {
	roles, err := h.roleService.FindByUserID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleListResponse(roles))
}

// AddRole handles POST /users/:id/roles.
//
// @Summary      Attach a role to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      assignRoleRequest  true  "Role to attach"
// @Success      200   {object}  roleResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/{id}/roles [post]
func (h *UserHandler) AddRole(c echo.Context) error {
	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := h.roleService.AddRoleToUser(c.Request().Context(), c.Param("id"), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// RemoveRole handles DELETE /users/:userId/roles/:roleId.
//
// @Summary      Detach a role from a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "User id"
// @Param        roleId  path  int     true  "Role id"
// @Success      200
// @Failure      400  {object}  messageResponse
// @Router       /users/{userId}/roles/{roleId} [delete]
func (h *UserHandler) RemoveRole(c echo.Context) error {
	roleID, err := strconv.Atoi(c.Param("roleId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "role id must be an integer")
	}

	if err := h.roleService.RemoveRoleFromUser(c.Request().Context(), c.Param("userId"), roleID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// intParam parses a numeric query parameter, substituting fallback for
// anything that does not parse. Out-of-range values are clamped downstream
// by the service.
func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
