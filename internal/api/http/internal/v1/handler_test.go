package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/service"
	mock_service "github.com/greenpoint/backend/internal/service/mock"
	"github.com/greenpoint/backend/pkg/auth"
	"github.com/greenpoint/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var registerValidator sync.Once

type testAPI struct {
	router  *gin.Engine
	items   *mock_service.Items
	points  *mock_service.Points
	regions *mock_service.Regions
	tokens  *auth.Manager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerValidator.Do(validator.RegisterGinValidator)

	tokens, err := auth.NewManager("secret", time.Hour)
	require.NoError(t, err)

	a := &testAPI{
		router:  gin.New(),
		items:   &mock_service.Items{},
		points:  &mock_service.Points{},
		regions: &mock_service.Regions{},
		tokens:  tokens,
	}

	services := &service.Services{Items: a.items, Points: a.points, Regions: a.regions}
	NewHandler(services, tokens).Init(a.router.Group("/api"))

	return a
}

func (a *testAPI) do(method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var body struct {
		ErrorCode int `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.ErrorCode
}

func pointPayload() domain.PointPayload {
	return domain.PointPayload{
		Name:      "Eco Center",
		Email:     "a@b.com",
		Whatsapp:  "(83) 99999-9999",
		UF:        "PB",
		City:      "João Pessoa",
		Latitude:  -7.1,
		Longitude: -34.8,
		Items:     []int{3, 7},
	}
}

func TestGetItems(t *testing.T) {
	a := newTestAPI(t)
	a.items.On("GetAll", mock.Anything).Return([]domain.Item{{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"}}, nil)
	a.items.On("ImageURL", mock.Anything).Return("http://localhost:8080/uploads/lampadas.svg")

	w := a.do(http.MethodGet, "/api/v1/items", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Lâmpadas","image_url":"http://localhost:8080/uploads/lampadas.svg"}]`, w.Body.String())
}

func TestGetItemsFailure(t *testing.T) {
	a := newTestAPI(t)
	a.items.On("GetAll", mock.Anything).Return(nil, errors.New("db down"))

	w := a.do(http.MethodGet, "/api/v1/items", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreatePoint(t *testing.T) {
	a := newTestAPI(t)
	id := uuid.New()
	a.points.On("Register", mock.Anything, pointPayload()).
		Return(&domain.Point{ID: id, CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}, nil)

	w := a.do(http.MethodPost, "/api/v1/points", pointPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"created_at":"2024-05-01T12:00:00Z"}`, id), w.Body.String())
}

func TestCreatePointLocalPhoneNumber(t *testing.T) {
	a := newTestAPI(t)
	payload := domain.PointPayload{
		Name:      "Eco Center",
		Email:     "a@b.com",
		Whatsapp:  "119999",
		UF:        "PB",
		City:      "João Pessoa",
		Latitude:  -7.1,
		Longitude: -34.8,
		Items:     []int{3, 7},
	}
	id := uuid.New()
	a.points.On("Register", mock.Anything, payload).Return(&domain.Point{ID: id, CreatedAt: time.Now()}, nil)

	w := a.do(http.MethodPost, "/api/v1/points", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	a.points.AssertExpectations(t)
}

func TestCreatePointValidation(t *testing.T) {
	a := newTestAPI(t)
	payload := pointPayload()
	payload.Name = ""
	payload.Whatsapp = "123"
	payload.Items = nil

	w := a.do(http.MethodPost, "/api/v1/points", payload, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body ValidationErrorStruct
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ValidationErrorCode, body.ErrorCode)

	fields := map[string]string{}
	for _, e := range body.Errors {
		fields[e.FieldKey] = e.ErrorMessage
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "whatsapp")
	assert.Contains(t, fields, "items")
	a.points.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestCreatePointMalformedJSON(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/points", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ValidationErrorCode, errorCode(t, w))
}

func TestCreatePointUnknownItem(t *testing.T) {
	a := newTestAPI(t)
	a.points.On("Register", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: [7]", domain.ErrUnknownItem))

	w := a.do(http.MethodPost, "/api/v1/points", pointPayload(), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, PointUnknownItemCode, errorCode(t, w))
}

func TestGetPointByID(t *testing.T) {
	a := newTestAPI(t)
	found := uuid.New()
	missing := uuid.New()
	a.points.On("GetByID", mock.Anything, found).Return(&domain.Point{
		ID: found, Name: "Eco Center", UF: "PB", City: "João Pessoa", Items: []int{3},
	}, nil)
	a.points.On("GetByID", mock.Anything, missing).Return(nil, service.ErrPointNotFound)

	w := a.do(http.MethodGet, "/api/v1/points/"+found.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body pointResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Eco Center", body.Name)
	assert.Equal(t, []int{3}, body.Items)

	w = a.do(http.MethodGet, "/api/v1/points/"+missing.String(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, PointNotFoundCode, errorCode(t, w))

	w = a.do(http.MethodGet, "/api/v1/points/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegions(t *testing.T) {
	a := newTestAPI(t)
	a.regions.On("ListRegions", mock.Anything).Return([]domain.RegionCode{"PB", "PE"}, nil)
	a.regions.On("ListCities", mock.Anything, domain.RegionCode("PB")).Return([]domain.SubRegionName{"João Pessoa"}, nil)
	a.regions.On("ListCities", mock.Anything, domain.RegionCode("XX")).Return(nil, service.ErrRegionNotFound)

	w := a.do(http.MethodGet, "/api/v1/regions", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["PB","PE"]`, w.Body.String())

	w = a.do(http.MethodGet, "/api/v1/regions/pb/cities", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["João Pessoa"]`, w.Body.String())

	w = a.do(http.MethodGet, "/api/v1/regions/XX/cities", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, RegionNotFoundCode, errorCode(t, w))
}

func TestRegionsUpstreamFailure(t *testing.T) {
	a := newTestAPI(t)
	a.regions.On("ListRegions", mock.Anything).Return(nil, errors.New("ibge down"))

	w := a.do(http.MethodGet, "/api/v1/regions", nil, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAdminCreateItem(t *testing.T) {
	a := newTestAPI(t)
	body := map[string]any{"id": 8, "title": "Vidro", "image": "vidro.svg"}

	w := a.do(http.MethodPost, "/api/v1/admin/items", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken, _, err := a.tokens.NewJWT("someone", "user")
	require.NoError(t, err)
	w = a.do(http.MethodPost, "/api/v1/admin/items", body, http.Header{"Authorization": {"Bearer " + userToken}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	adminToken, _, err := a.tokens.NewJWT("ops", auth.RoleAdmin)
	require.NoError(t, err)
	admin := http.Header{"Authorization": {"Bearer " + adminToken}}

	a.items.On("Create", mock.Anything, &domain.Item{ID: 8, Title: "Vidro", Image: "vidro.svg"}).Return(nil).Once()
	a.items.On("ImageURL", mock.Anything).Return("http://localhost:8080/uploads/vidro.svg")
	w = a.do(http.MethodPost, "/api/v1/admin/items", body, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":8,"title":"Vidro","image_url":"http://localhost:8080/uploads/vidro.svg"}`, w.Body.String())

	a.items.On("Create", mock.Anything, mock.Anything).Return(service.ErrItemAlreadyExist).Once()
	w = a.do(http.MethodPost, "/api/v1/admin/items", body, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ItemAlreadyExistsCode, errorCode(t, w))
}
