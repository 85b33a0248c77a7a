package world

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/auth"
	"github.com/worldloom/worldloom/x/guard"
	"github.com/worldloom/worldloom/x/world/mock"
)

func newRequest(method, body, requester string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if requester != "" {
		c.Set(auth.RequesterIdCtxKey, requester)
	}
	return c, rec
}

func TestHandlerGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_world.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "w9999999999999999999").Return(core.World{}, core.NewErrorNotFound("World"))

	h := NewHandler(NewService(mockRepo, guard.NewService(mockRepo)))

	c, rec := newRequest(http.MethodGet, "", "")
	c.SetParamNames("id")
	c.SetParamValues("w9999999999999999999")

	if assert.NoError(t, h.Get(c)) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"msg":"World not found"}`, rec.Body.String())
	}
}

func TestHandlerCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_world.NewMockRepository(ctrl)

	h := NewHandler(NewService(mockRepo, guard.NewService(mockRepo)))

	c, rec := newRequest(http.MethodPost, `{"name":"","description":""}`, "user-alice")

	if assert.NoError(t, h.Create(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"errors":[
			{"param":"name","msg":"Name is required"},
			{"param":"description","msg":"Description is required"}
		]}`, rec.Body.String())
	}
}

func TestHandlerCreateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_world.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(core.World{}, core.NewErrorAlreadyExists())

	h := NewHandler(NewService(mockRepo, guard.NewService(mockRepo)))

	c, rec := newRequest(http.MethodPost, `{"name":"Aeloria","description":"Floating isles"}`, "user-alice")

	if assert.NoError(t, h.Create(c)) {
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"msg":"World already exists"}`, rec.Body.String())
	}
}

func TestHandlerUpdateByStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := core.World{
		ID:    "w0000000000000000000",
		Name:  "Aeloria",
		Owner: "user-alice",
	}

	mockRepo := mock_world.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(stored, nil).Times(2)

	h := NewHandler(NewService(mockRepo, guard.NewService(mockRepo)))

	c, rec := newRequest(http.MethodPut, `{"name":"Stolen"}`, "user-bob")
	c.SetParamNames("id")
	c.SetParamValues("w0000000000000000000")

	if assert.NoError(t, h.Update(c)) {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"msg":"User not authorized"}`, rec.Body.String())
	}
}

func TestHandlerDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := core.World{
		ID:    "w0000000000000000000",
		Name:  "Aeloria",
		Owner: "user-alice",
	}

	mockRepo := mock_world.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "w0000000000000000000").Return(stored, nil).Times(2)
	mockRepo.EXPECT().Delete(gomock.Any(), "w0000000000000000000").Return(stored, nil)

	h := NewHandler(NewService(mockRepo, guard.NewService(mockRepo)))

	c, rec := newRequest(http.MethodDelete, "", "user-alice")
	c.SetParamNames("id")
	c.SetParamValues("w0000000000000000000")

	if assert.NoError(t, h.Delete(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"msg":"World removed"}`, rec.Body.String())
	}
}
