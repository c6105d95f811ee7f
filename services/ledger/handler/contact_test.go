package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/services/ledger/mocks"
)

func newContactContext(t *testing.T, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestContactHandler_CreateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	contactUC := mocks.NewMockContactUC(ctrl)
	h := NewContactHandler(contactUC)

	input := models.ContactInput{Name: "Kim Minjun", RelationshipType: constants.RelationshipFriend}
	contactUC.EXPECT().
		CreateContact(gomock.Any(), userID, input).
		Return(&models.Contact{ID: uuid.New(), UserID: userID, Name: "Kim Minjun"}, nil)

	body := `{"name":"Kim Minjun","relationship_type":"friend"}`
	c, rec := newContactContext(t, http.MethodPost, "/api/v1/contacts", body, userID)

	require.NoError(t, h.CreateContact(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestContactHandler_CreateContact_ValidationEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	contactUC := mocks.NewMockContactUC(ctrl)
	h := NewContactHandler(contactUC)

	contactUC.EXPECT().
		CreateContact(gomock.Any(), userID, gomock.Any()).
		Return(nil, apperrors.NewValidationError(map[string]string{"name": "name is required"}))

	c, rec := newContactContext(t, http.MethodPost, "/api/v1/contacts", `{"relationship_type":"friend"}`, userID)

	require.NoError(t, h.CreateContact(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, apperrors.CodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "name")
}

func TestContactHandler_GetContact_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	contactID := uuid.New()
	contactUC := mocks.NewMockContactUC(ctrl)
	h := NewContactHandler(contactUC)

	contactUC.EXPECT().
		GetContact(gomock.Any(), userID, contactID).
		Return(nil, apperrors.NotFound("contact"))

	c, rec := newContactContext(t, http.MethodGet, "/api/v1/contacts/"+contactID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(contactID.String())

	require.NoError(t, h.GetContact(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodeNotFound, resp.Error.Code)
}

func TestContactHandler_GetContact_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewContactHandler(mocks.NewMockContactUC(ctrl))

	c, rec := newContactContext(t, http.MethodGet, "/api/v1/contacts/not-a-uuid", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetContact(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_ListContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	contactUC := mocks.NewMockContactUC(ctrl)
	h := NewContactHandler(contactUC)

	contactUC.EXPECT().
		ListContacts(gomock.Any(), userID,
			models.ContactFilter{RelationshipType: constants.RelationshipFriend, FavoritesOnly: true},
			models.PageRequest{Page: 2, Limit: 10}).
		Return([]models.Contact{{Name: "Kim Minjun"}},
			models.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: true}, nil)

	c, rec := newContactContext(t, http.MethodGet,
		"/api/v1/contacts?relationship_type=friend&favorites=true&page=2&limit=10", "", userID)

	require.NoError(t, h.ListContacts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success    bool              `json:"success"`
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.True(t, resp.Pagination.HasNext)
}

func TestContactHandler_RecalculateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	contactID := uuid.New()
	contactUC := mocks.NewMockContactUC(ctrl)
	h := NewContactHandler(contactUC)

	contactUC.EXPECT().
		RecalculateContact(gomock.Any(), userID, contactID).
		Return(&models.Contact{ID: contactID, Balance: 0}, nil)

	c, rec := newContactContext(t, http.MethodPost,
		"/api/v1/contacts/"+contactID.String()+"/recalculate", "", userID)
	c.SetParamNames("id")
	c.SetParamValues(contactID.String())

	require.NoError(t, h.RecalculateContact(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
