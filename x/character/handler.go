// Package character handles character objects
package character

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/auth"
)

// Handler handles Character objects
type Handler struct {
	service Service
}

// NewHandler is for wire.go
func NewHandler(service Service) Handler {
	return Handler{service: service}
}

func renderError(c echo.Context, err error) error {
	var verr core.ErrorValidation
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, core.ValidationResponse{Errors: verr.Fields})
	}
	var nferr core.ErrorNotFound
	if errors.As(err, &nferr) {
		return c.JSON(http.StatusNotFound, core.MessageResponse{Msg: nferr.Error()})
	}
	var exerr core.ErrorAlreadyExists
	if errors.As(err, &exerr) {
		return c.JSON(http.StatusConflict, core.MessageResponse{Msg: "Character already exists"})
	}
	var pderr core.ErrorPermissionDenied
	if errors.As(err, &pderr) {
		return c.JSON(http.StatusUnauthorized, core.MessageResponse{Msg: "User not authorized"})
	}
	slog.ErrorContext(c.Request().Context(), "character request failed", slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, core.MessageResponse{Msg: "Server error"})
}

// ListByWorld returns a world's characters sorted by name.
func (h Handler) ListByWorld(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.ListByWorld")
	defer span.End()

	worldID := c.Param("worldId")

	characters, err := h.service.GetByWorld(ctx, worldID)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, characters)
}

// Get returns a character by id.
func (h Handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Get")
	defer span.End()

	id := c.Param("id")

	character, err := h.service.Get(ctx, id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, character)
}

// Create makes a new character in a world the requester owns.
func (h Handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Create")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)

	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, core.MessageResponse{Msg: "Invalid request body"})
	}

	character, err := h.service.Create(ctx, requester, draft)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, character)
}

// Update merges the supplied fields into a character.
func (h Handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Update")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)
	id := c.Param("id")

	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, core.MessageResponse{Msg: "Invalid request body"})
	}

	character, err := h.service.Update(ctx, requester, id, patch)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, character)
}

// Delete removes a character.
func (h Handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Delete")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)
	id := c.Param("id")

	_, err := h.service.Delete(ctx, requester, id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, core.MessageResponse{Msg: "Character removed"})
}
