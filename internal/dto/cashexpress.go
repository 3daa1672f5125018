package dto

import "time"

type CreateCashRequestDTO struct {
	Amount         float64 `json:"amount" example:"500"`
	SenderName     string  `json:"sender_name,omitempty" example:"Juan Pérez"`
	SenderPhone    string  `json:"sender_phone,omitempty" example:"5512345678"`
	RecipientName  string  `json:"recipient_name,omitempty" example:"María Pérez"`
	RecipientPhone string  `json:"recipient_phone,omitempty" example:"5587654321"`
	Relationship   string  `json:"relationship,omitempty" example:"Hermana"`
}

type UploadReceiptRequestDTO struct {
	DepositReceipt string `json:"deposit_receipt" example:"https://res.cloudinary.com/demo/receipt.jpg"`
}

type UploadSignedReceiptRequestDTO struct {
	SignedReceipt string `json:"signed_receipt" example:"https://res.cloudinary.com/demo/signed.jpg"`
}

type UpdateCashStatusRequestDTO struct {
	Status          string     `json:"status" example:"DEPOSITO_VALIDADO"`
	RejectionReason string     `json:"rejection_reason,omitempty" example:"Comprobante ilegible"`
	AvailableFrom   *time.Time `json:"available_from,omitempty"`
}

type RecipientDataRequestDTO struct {
	SenderName     string `json:"sender_name" example:"Juan Pérez"`
	SenderPhone    string `json:"sender_phone" example:"5512345678"`
	RecipientName  string `json:"recipient_name" example:"María Pérez"`
	RecipientPhone string `json:"recipient_phone" example:"5587654321"`
	Relationship   string `json:"relationship" example:"Hermana"`
}

type CashRequestResponseDTO struct {
	ID                 int        `json:"id"`
	Folio              string     `json:"folio"`
	UserID             int        `json:"user_id"`
	Amount             float64    `json:"amount"`
	Commission         float64    `json:"commission"`
	TotalToDeposit     float64    `json:"total_to_deposit"`
	Status             string     `json:"status"`
	SenderName         string     `json:"sender_name,omitempty"`
	SenderPhone        string     `json:"sender_phone,omitempty"`
	RecipientName      string     `json:"recipient_name,omitempty"`
	RecipientPhone     string     `json:"recipient_phone,omitempty"`
	Relationship       string     `json:"relationship,omitempty"`
	DepositReceipt     string     `json:"deposit_receipt,omitempty"`
	SignedReceipt      string     `json:"signed_receipt,omitempty"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	EstimatedDelivery  *time.Time `json:"estimated_delivery_date,omitempty"`
	ReceiptSentAt      *time.Time `json:"receipt_sent_at,omitempty"`
	DepositValidatedAt *time.Time `json:"deposit_validated_at,omitempty"`
	AvailableFrom      *time.Time `json:"available_from,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type AddBalanceRequestDTO struct {
	Amount      float64 `json:"amount" example:"1500"`
	Description string  `json:"description,omitempty" example:"Depósito matutino"`
}

type AddBalanceResponseDTO struct {
	PreviousBalance float64 `json:"previous_balance"`
	Amount          float64 `json:"amount"`
	NewBalance      float64 `json:"new_balance"`
}

type BalanceHistoryEntryDTO struct {
	ID              int       `json:"id"`
	Amount          float64   `json:"amount"`
	PreviousBalance float64   `json:"previous_balance"`
	NewBalance      float64   `json:"new_balance"`
	Description     string    `json:"description"`
	UserID          int       `json:"user_id"`
	RequestID       *int      `json:"request_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type BalanceHistoryResponseDTO struct {
	History []BalanceHistoryEntryDTO `json:"history"`
	Total   int                      `json:"total"`
	Limit   int                      `json:"limit"`
	Offset  int                      `json:"offset"`
}

type CurrentBalanceResponseDTO struct {
	AvailableBalance    float64 `json:"available_balance"`
	DailyMinimumDeposit float64 `json:"daily_minimum_deposit"`
}

type AvailabilityResponseDTO struct {
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	IsAvailableNow        bool      `json:"is_available_now"`
	PendingRequests       int       `json:"pending_requests"`
	Message               string    `json:"message"`
}

type CashConfigDTO struct {
	ServiceDays          []int    `json:"service_days"`
	StartTime            string   `json:"start_time" example:"09:00"`
	EndTime              string   `json:"end_time" example:"20:00"`
	Holidays             []string `json:"holidays"`
	NonWorkingDayMessage string   `json:"non_working_day_message,omitempty"`
	AvailableBalance     float64  `json:"available_balance"`
	DailyMinimumDeposit  float64  `json:"daily_minimum_deposit"`
	MaxAmount            float64  `json:"max_amount"`
	CommissionPercentage float64  `json:"commission_percentage"`
}

type UpdateCashConfigRequestDTO struct {
	ServiceDays          []int    `json:"service_days"`
	StartTime            string   `json:"start_time" example:"09:00"`
	EndTime              string   `json:"end_time" example:"20:00"`
	Holidays             []string `json:"holidays"`
	NonWorkingDayMessage string   `json:"non_working_day_message,omitempty"`
	DailyMinimumDeposit  float64  `json:"daily_minimum_deposit" example:"500"`
	MaxAmount            float64  `json:"max_amount" example:"1000"`
	CommissionPercentage float64  `json:"commission_percentage" example:"6.5"`
}

type BankAccountDTO struct {
	ID            int    `json:"id,omitempty"`
	Beneficiary   string `json:"beneficiary" example:"Mariam Store SA de CV"`
	AccountNumber string `json:"account_number" example:"4242424242424242"`
	CLABE         string `json:"clabe,omitempty" example:"032180000118359719"`
	DisplayOrder  int    `json:"display_order"`
	IsActive      bool   `json:"is_active"`
}
