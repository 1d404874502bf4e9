package http

import (
	"net/http"

	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Регистрирует новый товар с названием, остатком и ценой
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		CreateProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse			"Созданный товар"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации или дубликат имени"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Name:  req.Name,
		Stock: req.Stock,
		Price: req.Price,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(info))
}

// listProducts
//
//	@Summary	Список товаров
//	@Description	Пагинированный список с поиском по подстроке имени
//	@Tags		products
//	@Produce	json
//	@Param		skip	query		int		false	"Смещение"
//	@Param		limit	query		int		false	"Размер страницы (максимум 100)"
//	@Param		search	query		string	false	"Подстрока имени"
//	@Success	200		{array}		ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}
	search := r.URL.Query().Get("search")

	infos, err := p.productUsecase.ListProducts(r.Context(), usecase.NewListProductsReq(skip, limit, search))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductListResponse(infos))
}

// getProduct
//
//	@Summary	Получение товара по идентификатору
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Идентификатор товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(info))
}

// updateProduct
//
//	@Summary	Частичное обновление товара
//	@Description	Отсутствующие в теле поля не изменяются
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Идентификатор товара"
//	@Param		patch	body		UpdateProductRequest	true	"Изменяемые поля"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	var req UpdateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.UpdateProduct(r.Context(), id, &usecase.ProductPatch{
		Name:  req.Name,
		Stock: req.Stock,
		Price: req.Price,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(info))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Description	История продаж при этом сохраняется
//	@Tags		products
//	@Produce	json
//	@Param		id	path	int	true	"Идентификатор товара"
//	@Success	204	"Товар удалён"
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
