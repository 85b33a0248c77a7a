package userkv

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/auth"
)

// Handler is the userkv handler
type Handler struct {
	service Service
}

// NewHandler is for wire.go
func NewHandler(service Service) Handler {
	return Handler{service}
}

// Get returns the requester's value for a key.
func (h Handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "UserKV.Handler.Get")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)
	key := c.Param("key")

	value, err := h.service.Get(ctx, requester, key)
	if err != nil {
		var nferr core.ErrorNotFound
		if errors.As(err, &nferr) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": value})
}

// Upsert stores the request body as the requester's value for a key.
func (h Handler) Upsert(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "UserKV.Handler.Upsert")
	defer span.End()

	requester, _ := c.Get(auth.RequesterIdCtxKey).(string)
	key := c.Param("key")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	err = h.service.Upsert(ctx, requester, key, string(body))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
