package domain

import "time"

type Order struct {
	ID          int         `db:"id"`
	Folio       string      `db:"folio"`
	UserID      int         `db:"user_id"`
	BranchID    *int        `db:"branch_id"`
	Status      string      `db:"status"`
	Total       float64     `db:"total"`
	Notes       string      `db:"notes"`
	Items       []OrderItem `db:"-"`
	CreatedAt   time.Time   `db:"created_at"`
	ConfirmedAt *time.Time  `db:"confirmed_at"`
	ReadyAt     *time.Time  `db:"ready_at"`
}

type OrderItem struct {
	ID                int     `db:"id"`
	OrderID           int     `db:"order_id"`
	ProductID         int     `db:"product_id"`
	ProductName       string  `db:"product_name"`
	Quantity          int     `db:"quantity"`
	UnitPrice         float64 `db:"unit_price"`
	IsAvailable       *bool   `db:"is_available"`
	ConfirmedQuantity *int    `db:"confirmed_quantity"`
	Subtotal          float64 `db:"subtotal"`
}

type CashExpressRequest struct {
	ID                 int        `db:"id"`
	Folio              string     `db:"folio"`
	UserID             int        `db:"user_id"`
	Amount             float64    `db:"amount"`
	Commission         float64    `db:"commission"`
	TotalToDeposit     float64    `db:"total_to_deposit"`
	Status             string     `db:"status"`
	SenderName         string     `db:"sender_name"`
	SenderPhone        string     `db:"sender_phone"`
	RecipientName      string     `db:"recipient_name"`
	RecipientPhone     string     `db:"recipient_phone"`
	Relationship       string     `db:"relationship"`
	DepositReceipt     string     `db:"deposit_receipt"`
	SignedReceipt      string     `db:"signed_receipt"`
	RejectionReason    string     `db:"rejection_reason"`
	EstimatedDelivery  *time.Time `db:"estimated_delivery_date"`
	ReceiptSentAt      *time.Time `db:"receipt_sent_at"`
	DepositValidatedAt *time.Time `db:"deposit_validated_at"`
	AvailableFrom      *time.Time `db:"available_from"`
	DeliveredAt        *time.Time `db:"delivered_at"`
	CreatedAt          time.Time  `db:"created_at"`
}

// CashExpressConfig is a singleton row; exactly one exists, lazily created
// with defaults on first read.
type CashExpressConfig struct {
	ID                   int      `db:"id"`
	ServiceDays          []int    `db:"service_days"`
	StartTime            string   `db:"start_time"`
	EndTime              string   `db:"end_time"`
	Holidays             []string `db:"holidays"`
	NonWorkingDayMessage string   `db:"non_working_day_message"`
	AvailableBalance     float64  `db:"available_balance"`
	DailyMinimumDeposit  float64  `db:"daily_minimum_deposit"`
	MaxAmount            float64  `db:"max_amount"`
	CommissionPercentage float64  `db:"commission_percentage"`
}

// BalanceHistory is append-only; rows are never updated or deleted.
type BalanceHistory struct {
	ID              int       `db:"id"`
	Amount          float64   `db:"amount"`
	PreviousBalance float64   `db:"previous_balance"`
	NewBalance      float64   `db:"new_balance"`
	Description     string    `db:"description"`
	UserID          int       `db:"user_id"`
	RequestID       *int      `db:"request_id"`
	CreatedAt       time.Time `db:"created_at"`
}

type BankAccount struct {
	ID            int    `db:"id"`
	Beneficiary   string `db:"beneficiary"`
	AccountNumber string `db:"account_number"`
	CLABE         string `db:"clabe"`
	DisplayOrder  int    `db:"display_order"`
	IsActive      bool   `db:"is_active"`
}

type Notification struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	Type           string    `db:"type"`
	EntityID       int       `db:"entity_id"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	Action         string    `db:"action"`
	Status         string    `db:"status"`
	PreviousStatus string    `db:"previous_status"`
	Read           bool      `db:"read"`
	ExpiresAt      time.Time `db:"expires_at"`
	CreatedAt      time.Time `db:"created_at"`
}
