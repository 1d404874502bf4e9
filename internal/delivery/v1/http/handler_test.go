package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	v1Http "github.com/harichselvamc/inventory-app-backend/internal/delivery/v1/http"
	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/harichselvamc/inventory-app-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type MockProductUC struct {
	mock.Mock
}

func (m *MockProductUC) CreateProduct(ctx context.Context, req *usecase.CreateProductReq) (*usecase.ProductInfo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ProductInfo), args.Error(1)
}

func (m *MockProductUC) GetProduct(ctx context.Context, id int64) (*usecase.ProductInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ProductInfo), args.Error(1)
}

func (m *MockProductUC) ListProducts(ctx context.Context, req *usecase.ListProductsReq) ([]usecase.ProductInfo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.ProductInfo), args.Error(1)
}

func (m *MockProductUC) UpdateProduct(ctx context.Context, id int64, patch *usecase.ProductPatch) (*usecase.ProductInfo, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ProductInfo), args.Error(1)
}

func (m *MockProductUC) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPurchaseUC struct {
	mock.Mock
}

func (m *MockPurchaseUC) MakePurchase(ctx context.Context, item usecase.PurchaseItem) (*usecase.PurchaseRes, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PurchaseRes), args.Error(1)
}

func (m *MockPurchaseUC) MakeBulkPurchase(ctx context.Context, req *usecase.BulkPurchaseReq) (*usecase.BulkPurchaseRes, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.BulkPurchaseRes), args.Error(1)
}

type MockReportUC struct {
	mock.Mock
}

func (m *MockReportUC) SalesReport(ctx context.Context, req *usecase.SalesReportReq) ([]usecase.SalesReportRow, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.SalesReportRow), args.Error(1)
}

type routerFixture struct {
	productUC  *MockProductUC
	purchaseUC *MockPurchaseUC
	reportUC   *MockReportUC
	mux        *chi.Mux
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		productUC:  new(MockProductUC),
		purchaseUC: new(MockPurchaseUC),
		reportUC:   new(MockReportUC),
		mux:        chi.NewRouter(),
	}
	router := v1Http.NewRouter(f.mux, nopLogger{})
	router.Init(f.productUC, f.purchaseUC, f.reportUC, usecase.NewHealthUC())
	return f
}

func (f *routerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateProductEndpoint(t *testing.T) {
	f := newRouterFixture()

	f.productUC.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *usecase.CreateProductReq) bool {
		return req.Name == "Widget" && req.Stock == 10 && req.Price.Equal(decimal.RequireFromString("19.99"))
	})).Return(&usecase.ProductInfo{ID: 1, Name: "Widget", Stock: 10, Price: decimal.RequireFromString("19.99")}, nil)

	rec := f.do(http.MethodPost, "/products", `{"name":"Widget","stock":10,"price":19.99}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.EqualValues(t, 1, res["id"])
	assert.Equal(t, "Widget", res["name"])
}

func TestCreateProductEndpoint_DuplicateName(t *testing.T) {
	f := newRouterFixture()

	f.productUC.On("CreateProduct", mock.Anything, mock.Anything).
		Return(nil, e.Wrap("op", e.ErrProductAlreadyExists))

	rec := f.do(http.MethodPost, "/products", `{"name":"Widget","stock":1,"price":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductEndpoint_MalformedBody(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(http.MethodPost, "/products", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.productUC.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestGetProductEndpoint_NotFound(t *testing.T) {
	f := newRouterFixture()

	f.productUC.On("GetProduct", mock.Anything, int64(9)).
		Return(nil, e.Wrap("op", e.ErrProductNotFound))

	rec := f.do(http.MethodGet, "/products/9", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductEndpoint_InvalidID(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(http.MethodGet, "/products/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.productUC.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}

func TestListProductsEndpoint(t *testing.T) {
	f := newRouterFixture()

	f.productUC.On("ListProducts", mock.Anything, mock.MatchedBy(func(req *usecase.ListProductsReq) bool {
		return req.Skip == 5 && req.Limit == 10 && req.Search == "wid"
	})).Return([]usecase.ProductInfo{
		{ID: 1, Name: "Widget", Stock: 10, Price: decimal.RequireFromString("19.99")},
	}, nil)

	rec := f.do(http.MethodGet, "/products?skip=5&limit=10&search=wid", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var res []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "Widget", res[0]["name"])
}

func TestUpdateProductEndpoint(t *testing.T) {
	f := newRouterFixture()

	f.productUC.On("UpdateProduct", mock.Anything, int64(1), mock.MatchedBy(func(patch *usecase.ProductPatch) bool {
		return patch.Name == nil && patch.Stock != nil && *patch.Stock == 25 && patch.Price == nil
	})).Return(&usecase.ProductInfo{ID: 1, Name: "Widget", Stock: 25, Price: decimal.RequireFromString("19.99")}, nil)

	rec := f.do(http.MethodPut, "/products/1", `{"stock":25}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteProductEndpoint(t *testing.T) {
	f := newRouterFixture()

	f.productUC.On("DeleteProduct", mock.Anything, int64(1)).Return(nil)

	rec := f.do(http.MethodDelete, "/products/1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMakePurchaseEndpoint(t *testing.T) {
	f := newRouterFixture()

	f.purchaseUC.On("MakePurchase", mock.Anything, usecase.PurchaseItem{ProductID: 1, Quantity: 4}).
		Return(&usecase.PurchaseRes{
			Purchase:       usecase.PurchaseInfo{ID: 42, ProductID: 1, Quantity: 4},
			RemainingStock: 6,
		}, nil)

	rec := f.do(http.MethodPost, "/purchases", `{"product_id":1,"quantity":4}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.EqualValues(t, 6, res["remaining_stock"])
}

func TestMakeBulkPurchaseEndpoint(t *testing.T) {
	f := newRouterFixture()

	f.purchaseUC.On("MakeBulkPurchase", mock.Anything, mock.MatchedBy(func(req *usecase.BulkPurchaseReq) bool {
		return len(req.Items) == 2
	})).Return(&usecase.BulkPurchaseRes{
		Purchases: []usecase.PurchaseInfo{
			{ID: 1, ProductID: 1, Quantity: 4},
			{ID: 2, ProductID: 2, Quantity: 2},
		},
		RemainingStock: map[int64]int64{1: 6, 2: 3},
	}, nil)

	rec := f.do(http.MethodPost, "/purchases/bulk", `{"items":[{"product_id":1,"quantity":4},{"product_id":2,"quantity":2}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var res struct {
		Purchases []map[string]any `json:"purchases"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Purchases, 2)
	assert.EqualValues(t, 6, res.Purchases[0]["remaining_stock"])
}

func TestMakeBulkPurchaseEndpoint_InsufficientStock(t *testing.T) {
	f := newRouterFixture()

	f.purchaseUC.On("MakeBulkPurchase", mock.Anything, mock.Anything).
		Return(nil, e.Wrap("op", e.NewItemError(2, 3, 5, e.ErrInsufficientStock)))

	rec := f.do(http.MethodPost, "/purchases/bulk", `{"items":[{"product_id":2,"quantity":5}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "product 2")
	assert.Contains(t, rec.Body.String(), "available 3")
}

func TestMakeBulkPurchaseEndpoint_UnknownProduct(t *testing.T) {
	f := newRouterFixture()

	f.purchaseUC.On("MakeBulkPurchase", mock.Anything, mock.Anything).
		Return(nil, e.Wrap("op", e.NewItemError(9, 0, 1, e.ErrProductNotFound)))

	rec := f.do(http.MethodPost, "/purchases/bulk", `{"items":[{"product_id":9,"quantity":1}]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSalesReportEndpoint(t *testing.T) {
	f := newRouterFixture()

	f.reportUC.On("SalesReport", mock.Anything, mock.Anything).Return([]usecase.SalesReportRow{
		{ProductName: "Widget", Quantity: 4, TotalPrice: decimal.RequireFromString("79.96")},
	}, nil)

	rec := f.do(http.MethodGet, "/reports/sales", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var res []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "Widget", res[0]["product_name"])
	assert.EqualValues(t, 4, res[0]["quantity"])
}
