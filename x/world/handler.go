// Package world handles world objects
package world

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/auth"
)

// Handler handles World objects
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
		return c.JSON(http.StatusConflict, core.MessageResponse{Msg: "World already exists"})
	}
	var pderr core.ErrorPermissionDenied
	if errors.As(err, &pderr) {
		return c.JSON(http.StatusUnauthorized, core.MessageResponse{Msg: "User not authorized"})
	}
	slog.ErrorContext(c.Request().Context(), "world request failed", slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, core.MessageResponse{Msg: "Server error"})
}

// List returns the public worlds. No identity required.
func (h Handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "World.Handler.List")
	defer span.End()

	worlds, err := h.service.GetPublic(ctx)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, worlds)
}

// ListMine returns the requester's own worlds.
func (h Handler) ListMine(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "World.Handler.ListMine")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)

	worlds, err := h.service.GetByOwner(ctx, requester)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, worlds)
}

// Get returns a world by id. Reads are not ownership-checked.
func (h Handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "World.Handler.Get")
	defer span.End()

	id := c.Param("id")

	world, err := h.service.Get(ctx, id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, world)
}

// Create makes a new world owned by the requester.
func (h Handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "World.Handler.Create")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)

	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, core.MessageResponse{Msg: "Invalid request body"})
	}

	world, err := h.service.Create(ctx, requester, draft)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, world)
}

// Update merges the supplied fields into an owned world.
func (h Handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "World.Handler.Update")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)
	id := c.Param("id")

	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, core.MessageResponse{Msg: "Invalid request body"})
	}

	world, err := h.service.Update(ctx, requester, id, patch)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, world)
}

// Delete removes an owned world. Its characters, locations and items are
// left in place.
func (h Handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "World.Handler.Delete")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)
	id := c.Param("id")

	_, err := h.service.Delete(ctx, requester, id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(http.StatusOK, core.MessageResponse{Msg: "World removed"})
}
