package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 400 Bad Request
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrNegativeStock        = fmt.Errorf("stock must not be negative")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be positive")
	ErrProductAlreadyExists = fmt.Errorf("product already exists")
	ErrInsufficientStock    = fmt.Errorf("insufficient stock")
	ErrNoItems              = fmt.Errorf("no purchase items provided")
	ErrStatusBadRequest     = fmt.Errorf("bad request")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// ItemError детализирует отказ по конкретной позиции пакетной покупки:
// какой товар, сколько доступно и сколько запрошено.
type ItemError struct {
	ProductID int64
	Available int64
	Requested int64
	Err       error
}

func (i *ItemError) Error() string {
	if errors.Is(i.Err, ErrInsufficientStock) {
		return fmt.Sprintf("product %d: available %d, requested %d: %s", i.ProductID, i.Available, i.Requested, i.Err)
	}
	return fmt.Sprintf("product %d: %s", i.ProductID, i.Err)
}

func (i *ItemError) Unwrap() error {
	return i.Err
}

func NewItemError(productID, available, requested int64, err error) *ItemError {
	return &ItemError{
		ProductID: productID,
		Available: available,
		Requested: requested,
		Err:       err,
	}
}
