package domain

import (
	"errors"
	"time"
)

var (
	// ErrLoanNotFound indicates that the loan is not found.
	ErrLoanNotFound = errors.New("loan not found")
	// ErrOverRepayment indicates that the repayment exceeds the remaining loan balance.
	ErrOverRepayment = errors.New("repayment exceeds remaining loan balance")
	// ErrLoanClosed indicates an operation on a closed loan.
	ErrLoanClosed = errors.New("loan is closed")
	// ErrInvalidLoanStatus indicates an unknown loan status.
	ErrInvalidLoanStatus = errors.New("invalid loan status")
	// ErrInvalidInterestModel indicates an unknown interest model.
	ErrInvalidInterestModel = errors.New("invalid interest model")
	// ErrInvalidPaymentFrequency indicates an unknown payment frequency.
	ErrInvalidPaymentFrequency = errors.New("invalid payment frequency")
)

// Loan statuses. Status is toggled by explicit administrative action, not
// automatically on full repayment.
const (
	LoanStatusActive = "active"
	LoanStatusClosed = "closed"
)

// Loan holds borrowed-money terms and the repayment accumulator.
//
// PaidAmount never exceeds Principal: excess repayment is rejected at
// repayment time, not clamped.
type Loan struct {
	ID                int32     `json:"id"`
	Owner             string    `json:"owner"`
	Lender            string    `json:"lender"`
	Purpose           string    `json:"purpose"`
	Principal         string    `json:"principal"`
	InterestRate      string    `json:"interest_rate"` // annual, percent
	InterestModel     string    `json:"interest_model"`
	PaymentFrequency  string    `json:"payment_frequency"`
	StartDate         time.Time `json:"start_date"`
	DueDate           time.Time `json:"due_date"`
	GracePeriodMonths int32     `json:"grace_period_months"`
	PaidAmount        string    `json:"paid_amount"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateLoanParams is the input data to create a loan.
type CreateLoanParams struct {
	Owner             string
	Lender            string
	Purpose           string
	Principal         string
	InterestRate      string
	InterestModel     string
	PaymentFrequency  string
	StartDate         time.Time
	DueDate           time.Time
	GracePeriodMonths int32
}

// RepayLoanTxResult is the result of the repayment transaction: the loan
// with its bumped paid amount, the debited account, and the ledger entry
// recording the movement. All three commit together or not at all.
type RepayLoanTxResult struct {
	Loan    Loan    `json:"loan"`
	Account Account `json:"account"`
	Entry   Entry   `json:"entry"`
}

// LoanWithPreview is the loan read model: remaining balance plus the
// amortization preview computed from the loan terms, never persisted.
type LoanWithPreview struct {
	Loan
	RemainingBalance        string `json:"remaining_balance"`
	TotalRepayment          string `json:"total_repayment"`
	InterestAmount          string `json:"interest_amount"`
	NextInstallmentInterest string `json:"next_installment_interest"`
}
