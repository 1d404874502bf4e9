package usecase_test

import (
	"context"
	"testing"

	"github.com/harichselvamc/inventory-app-backend/internal/domain"
	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/harichselvamc/inventory-app-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	productRepo *MockProductRepo
	cacheRepo   *MockCacheRepo
	uc          *usecase.ProductUseCase
}

func newProductFixture() *productFixture {
	f := &productFixture{
		productRepo: new(MockProductRepo),
		cacheRepo:   new(MockCacheRepo),
	}
	f.uc = usecase.NewProductUC(f.productRepo, f.cacheRepo, nopLogger{})
	return f
}

func TestCreateProduct_Success(t *testing.T) {
	f := newProductFixture()

	f.productRepo.On("GetByName", mock.Anything, "Widget").Return(nil, e.ErrProductNotFound)
	f.productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "Widget" && p.Stock == 10 && p.Price.Equal(decimal.RequireFromString("19.99"))
	})).Return(&domain.Product{ID: 1, Name: "Widget", Stock: 10, Price: decimal.RequireFromString("19.99")}, nil)
	f.cacheRepo.On("InvalidateListings", mock.Anything).Return(nil)

	info, err := f.uc.CreateProduct(context.Background(), &usecase.CreateProductReq{
		Name:  "Widget",
		Stock: 10,
		Price: decimal.RequireFromString("19.99"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), info.ID)
	assert.Equal(t, "Widget", info.Name)
	f.cacheRepo.AssertCalled(t, "InvalidateListings", mock.Anything)
}

func TestCreateProduct_DuplicateName(t *testing.T) {
	f := newProductFixture()

	f.productRepo.On("GetByName", mock.Anything, "Widget").
		Return(&domain.Product{ID: 3, Name: "widget"}, nil)

	_, err := f.uc.CreateProduct(context.Background(), &usecase.CreateProductReq{
		Name:  "Widget",
		Stock: 1,
		Price: decimal.RequireFromString("1.00"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrProductAlreadyExists)
	f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *usecase.CreateProductReq
		wantErr error
	}{
		{
			name:    "empty name",
			req:     &usecase.CreateProductReq{Name: "   ", Stock: 1, Price: decimal.RequireFromString("1.00")},
			wantErr: e.ErrProductNameRequired,
		},
		{
			name:    "zero price",
			req:     &usecase.CreateProductReq{Name: "Widget", Stock: 1, Price: decimal.Zero},
			wantErr: e.ErrPriceMustBePositive,
		},
		{
			name:    "negative price",
			req:     &usecase.CreateProductReq{Name: "Widget", Stock: 1, Price: decimal.RequireFromString("-5")},
			wantErr: e.ErrPriceMustBePositive,
		},
		{
			name:    "too many decimal places",
			req:     &usecase.CreateProductReq{Name: "Widget", Stock: 1, Price: decimal.RequireFromString("1.999")},
			wantErr: e.ErrPricePrecision,
		},
		{
			name:    "price above limit",
			req:     &usecase.CreateProductReq{Name: "Widget", Stock: 1, Price: decimal.RequireFromString("1000000001")},
			wantErr: e.ErrInvalidPrice,
		},
		{
			name:    "negative stock",
			req:     &usecase.CreateProductReq{Name: "Widget", Stock: -1, Price: decimal.RequireFromString("1.00")},
			wantErr: e.ErrNegativeStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProductFixture()

			_, err := f.uc.CreateProduct(context.Background(), tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestListProducts_CacheHit(t *testing.T) {
	f := newProductFixture()

	cached := []usecase.ProductInfo{{ID: 1, Name: "Widget", Stock: 10, Price: decimal.RequireFromString("19.99")}}
	f.cacheRepo.On("GetListing", mock.Anything, "products:list:0:20:").Return(cached, true, nil)

	infos, err := f.uc.ListProducts(context.Background(), usecase.NewListProductsReq(0, 0, ""))

	require.NoError(t, err)
	assert.Equal(t, cached, infos)
	f.productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListProducts_CacheMiss(t *testing.T) {
	f := newProductFixture()

	f.cacheRepo.On("GetListing", mock.Anything, "products:list:5:10:wid").Return(nil, false, nil)
	f.productRepo.On("List", mock.Anything, 5, 10, "Wid").
		Return([]domain.Product{{ID: 1, Name: "Widget", Stock: 10, Price: decimal.RequireFromString("19.99")}}, nil)
	f.cacheRepo.On("SetListing", mock.Anything, "products:list:5:10:wid", mock.Anything).Return(nil)

	infos, err := f.uc.ListProducts(context.Background(), usecase.NewListProductsReq(5, 10, " Wid "))

	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "Widget", infos[0].Name)
	f.cacheRepo.AssertCalled(t, "SetListing", mock.Anything, "products:list:5:10:wid", mock.Anything)
}

func TestListProducts_LimitCapped(t *testing.T) {
	f := newProductFixture()

	f.cacheRepo.On("GetListing", mock.Anything, "products:list:0:100:").Return(nil, false, nil)
	f.productRepo.On("List", mock.Anything, 0, 100, "").Return([]domain.Product{}, nil)
	f.cacheRepo.On("SetListing", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.ListProducts(context.Background(), usecase.NewListProductsReq(0, 500, ""))

	require.NoError(t, err)
	f.productRepo.AssertCalled(t, "List", mock.Anything, 0, 100, "")
}

func TestUpdateProduct_Success(t *testing.T) {
	f := newProductFixture()

	newStock := int64(25)
	patch := &usecase.ProductPatch{Stock: &newStock}

	f.productRepo.On("Update", mock.Anything, int64(1), patch).
		Return(&domain.Product{ID: 1, Name: "Widget", Stock: 25, Price: decimal.RequireFromString("19.99")}, nil)
	f.cacheRepo.On("InvalidateListings", mock.Anything).Return(nil)

	info, err := f.uc.UpdateProduct(context.Background(), 1, patch)

	require.NoError(t, err)
	assert.Equal(t, int64(25), info.Stock)
}

func TestUpdateProduct_NameConflict(t *testing.T) {
	f := newProductFixture()

	name := "Gadget"
	f.productRepo.On("GetByName", mock.Anything, "Gadget").
		Return(&domain.Product{ID: 2, Name: "Gadget"}, nil)

	_, err := f.uc.UpdateProduct(context.Background(), 1, &usecase.ProductPatch{Name: &name})

	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrProductAlreadyExists)
	f.productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

// Переименование товара в его же имя конфликтом не считается.
func TestUpdateProduct_SameNameSameID(t *testing.T) {
	f := newProductFixture()

	name := "Widget"
	patch := &usecase.ProductPatch{Name: &name}

	f.productRepo.On("GetByName", mock.Anything, "Widget").
		Return(&domain.Product{ID: 1, Name: "Widget"}, nil)
	f.productRepo.On("Update", mock.Anything, int64(1), patch).
		Return(&domain.Product{ID: 1, Name: "Widget", Stock: 10, Price: decimal.RequireFromString("19.99")}, nil)
	f.cacheRepo.On("InvalidateListings", mock.Anything).Return(nil)

	_, err := f.uc.UpdateProduct(context.Background(), 1, patch)

	require.NoError(t, err)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	f := newProductFixture()

	f.productRepo.On("Delete", mock.Anything, int64(9)).Return(e.ErrProductNotFound)

	err := f.uc.DeleteProduct(context.Background(), 9)

	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	f.cacheRepo.AssertNotCalled(t, "InvalidateListings", mock.Anything)
}
