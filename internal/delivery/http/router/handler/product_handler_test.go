package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductUsecase struct {
	createOutput *usecase.ProductOutput
	createErr    error
	updateErr    error
	listOutputs  []*usecase.ProductOutput
	listErr      error

	lastUpdateInput *usecase.UpdateProductInput
}

func (s *stubProductUsecase) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	return s.createOutput, s.createErr
}

func (s *stubProductUsecase) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) error {
	s.lastUpdateInput = input

	return s.updateErr
}

func (s *stubProductUsecase) ListProducts(ctx context.Context) ([]*usecase.ProductOutput, error) {
	return s.listOutputs, s.listErr
}

func TestProductHandler_CreateProduct(t *testing.T) {
	e := newTestEcho(t)
	uc := &stubProductUsecase{
		createOutput: &usecase.ProductOutput{ID: 1, Username: "alice", ProductName: "mango", Price: 120, Number: 30},
	}
	h := NewProductHandler(uc, newDiscardLogger())

	body := `{"username":"alice","product_name":"mango","price":120,"number":30,"delivery":"home delivery"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	perform(e, e.NewContext(req, rec), h.CreateProduct)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Product added successfully", resp.Message)
}

func TestProductHandler_CreateProductMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no product name", body: `{"username":"alice","price":120,"number":30}`},
		{name: "zero price", body: `{"username":"alice","product_name":"mango","price":0,"number":30}`},
		{name: "zero count", body: `{"username":"alice","product_name":"mango","price":120,"number":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)
			h := NewProductHandler(&stubProductUsecase{}, newDiscardLogger())

			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			perform(e, e.NewContext(req, rec), h.CreateProduct)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, "All fields are required", resp.Message)
		})
	}
}

func TestProductHandler_CreateProductUnknownOwner(t *testing.T) {
	e := newTestEcho(t)
	h := NewProductHandler(&stubProductUsecase{createErr: domainerrors.ErrProductOwnerNotFound}, newDiscardLogger())

	body := `{"username":"ghost","product_name":"mango","price":120,"number":30}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	perform(e, e.NewContext(req, rec), h.CreateProduct)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "User not found", resp.Message)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PRODUCT_OWNER_NOT_FOUND", resp.Error.Code)
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	e := newTestEcho(t)
	uc := &stubProductUsecase{}
	h := NewProductHandler(uc, newDiscardLogger())

	// Only price supplied; the other fields arrive as zero values and the
	// usecase keeps their stored values.
	body := `{"username":"alice","price":150}`
	req := httptest.NewRequest(http.MethodPut, "/products/update", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	perform(e, e.NewContext(req, rec), h.UpdateProduct)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product updated successfully")
	require.NotNil(t, uc.lastUpdateInput)
	assert.Equal(t, "alice", uc.lastUpdateInput.Username)
	assert.Equal(t, float64(150), uc.lastUpdateInput.Price)
	assert.Empty(t, uc.lastUpdateInput.ProductName)
}

func TestProductHandler_UpdateProductMissingUsername(t *testing.T) {
	e := newTestEcho(t)
	h := NewProductHandler(&stubProductUsecase{}, newDiscardLogger())

	body := `{"price":150}`
	req := httptest.NewRequest(http.MethodPut, "/products/update", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	perform(e, e.NewContext(req, rec), h.UpdateProduct)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_UpdateProductNoListing(t *testing.T) {
	e := newTestEcho(t)
	h := NewProductHandler(&stubProductUsecase{updateErr: domainerrors.ErrProductNotFound}, newDiscardLogger())

	body := `{"username":"alice","price":150}`
	req := httptest.NewRequest(http.MethodPut, "/products/update", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	perform(e, e.NewContext(req, rec), h.UpdateProduct)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "No product found for this user", resp.Message)
}

func TestProductHandler_ListProducts(t *testing.T) {
	e := newTestEcho(t)
	uc := &stubProductUsecase{listOutputs: []*usecase.ProductOutput{
		{ID: 1, Username: "alice", ProductName: "mango", Price: 120, Number: 30, Delivery: "home delivery"},
		{ID: 2, Username: "bob", ProductName: "guava", Price: 60, Number: 50},
	}}
	h := NewProductHandler(uc, newDiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	perform(e, e.NewContext(req, rec), h.ListProducts)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_name":"mango"`)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
}
