package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	Name  string
	Stock int64
	Price decimal.Decimal
}

// ProductPatch — частичное обновление товара: nil-поля не изменяются.
type ProductPatch struct {
	Name  *string
	Stock *int64
	Price *decimal.Decimal
}

// ListProductsReq — запрос листинга с пагинацией и поиском по подстроке имени.
type ListProductsReq struct {
	Skip   int
	Limit  int
	Search string
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID    int64
	Name  string
	Stock int64
	Price decimal.Decimal
}

// PURCHASE USECASE

// PurchaseItem — одна позиция покупки.
type PurchaseItem struct {
	ProductID int64
	Quantity  int64
}

// BulkPurchaseReq — пакет позиций, применяемый атомарно.
type BulkPurchaseReq struct {
	Items []PurchaseItem
}

// PurchaseInfo — созданная запись о продаже.
type PurchaseInfo struct {
	ID          int64
	ProductID   int64
	Quantity    int64
	PurchasedAt time.Time
}

// BulkPurchaseRes — результат пакетной покупки.
// RemainingStock содержит остаток по каждому затронутому товару.
type BulkPurchaseRes struct {
	Purchases      []PurchaseInfo
	RemainingStock map[int64]int64
}

// PurchaseRes — результат одиночной покупки.
type PurchaseRes struct {
	Purchase       PurchaseInfo
	RemainingStock int64
}

// REPORT USECASE

type SalesReportReq struct {
	Skip  int
	Limit int
}

// SalesReportRow — строка отчёта о продажах.
// TotalPrice считается по зафиксированной цене на момент продажи.
type SalesReportRow struct {
	ProductName string
	Quantity    int64
	TotalPrice  decimal.Decimal
	Date        time.Time
}

// HEALTH

type HealthStatus struct {
	Status    string
	StartedAt time.Time
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	PurchaseRecorded OutboxEventType = "purchase.recorded"
)

// OutboxEvent — событие, записываемое в одной транзакции с продажей
// и публикуемое в Kafka outbox-воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// MAPPERS

func NewOutboxEvent(eventID string, eventType OutboxEventType, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewProductInfo(id int64, name string, stock int64, price decimal.Decimal) ProductInfo {
	return ProductInfo{
		ID:    id,
		Name:  name,
		Stock: stock,
		Price: price,
	}
}

func NewBulkPurchaseReq(items []PurchaseItem) *BulkPurchaseReq {
	return &BulkPurchaseReq{Items: items}
}

func NewListProductsReq(skip, limit int, search string) *ListProductsReq {
	return &ListProductsReq{
		Skip:   skip,
		Limit:  limit,
		Search: search,
	}
}

func NewSalesReportReq(skip, limit int) *SalesReportReq {
	return &SalesReportReq{
		Skip:  skip,
		Limit: limit,
	}
}
