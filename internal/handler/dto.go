package handler

import (
	"time"

	"github.com/retrobank/backoffice/internal/domain"
)

// Wire DTOs. The persisted snapshot uses camelCase tags; the API speaks
// snake_case and never exposes the password hash or the card PIN.

type accountDTO struct {
	AccountNumber   string           `json:"account_number"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Balance         string           `json:"balance"`
	IsAdmin         bool             `json:"is_admin"`
	IsFrozen        bool             `json:"is_frozen"`
	ChequeBooksLeft int              `json:"cheque_books_left"`
	Card            *cardDTO         `json:"card,omitempty"`
	Transactions    []transactionDTO `json:"transactions"`
	Loans           []loanDTO        `json:"loans"`
	Cheques         []chequeDTO      `json:"cheques"`
}

type cardDTO struct {
	Number         string `json:"number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	Status         string `json:"status"`
	DailyLimit     string `json:"daily_limit"`
	DailyWithdrawn string `json:"daily_withdrawn"`
}

type transactionDTO struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Description   string    `json:"description"`
	TargetAccount string    `json:"target_account,omitempty"`
	Status        string    `json:"status"`
}

type loanDTO struct {
	ID              string    `json:"id"`
	Amount          string    `json:"amount"`
	InterestRate    string    `json:"interest_rate"`
	TenureMonths    int       `json:"tenure_months"`
	MonthlyEMI      string    `json:"monthly_emi"`
	Status          string    `json:"status"`
	RemainingAmount string    `json:"remaining_amount"`
	AppliedDate     time.Time `json:"applied_date"`
}

type chequeDTO struct {
	ID     string    `json:"id"`
	Number string    `json:"number"`
	Payee  string    `json:"payee"`
	Amount string    `json:"amount"`
	Date   time.Time `json:"date"`
	Memo   string    `json:"memo"`
	Status string    `json:"status"`
}

func toAccountDTO(a *domain.Account) accountDTO {
	dto := accountDTO{
		AccountNumber:   a.AccountNumber,
		Name:            a.Name,
		Email:           a.Email,
		Balance:         a.Balance.String(),
		IsAdmin:         a.IsAdmin,
		IsFrozen:        a.IsFrozen,
		ChequeBooksLeft: a.ChequeBooksLeft,
		Transactions:    make([]transactionDTO, 0, len(a.Transactions)),
		Loans:           make([]loanDTO, 0, len(a.Loans)),
		Cheques:         make([]chequeDTO, 0, len(a.Cheques)),
	}
	if a.Card != nil {
		dto.Card = &cardDTO{
			Number:         a.Card.Number,
			Expiry:         a.Card.Expiry,
			CVV:            a.Card.CVV,
			Status:         string(a.Card.Status),
			DailyLimit:     a.Card.DailyLimit.String(),
			DailyWithdrawn: a.Card.DailyWithdrawn.String(),
		}
	}
	for _, tx := range a.Transactions {
		dto.Transactions = append(dto.Transactions, transactionDTO{
			ID:            tx.ID,
			Date:          tx.Date,
			Type:          string(tx.Type),
			Amount:        tx.Amount.String(),
			Description:   tx.Description,
			TargetAccount: tx.TargetAccount,
			Status:        string(tx.Status),
		})
	}
	for _, l := range a.Loans {
		dto.Loans = append(dto.Loans, loanDTO{
			ID:              l.ID,
			Amount:          l.Amount.String(),
			InterestRate:    l.InterestRate.String(),
			TenureMonths:    l.TenureMonths,
			MonthlyEMI:      l.MonthlyEMI.String(),
			Status:          string(l.Status),
			RemainingAmount: l.RemainingAmount.String(),
			AppliedDate:     l.AppliedDate,
		})
	}
	for _, c := range a.Cheques {
		dto.Cheques = append(dto.Cheques, chequeDTO{
			ID:     c.ID,
			Number: c.Number,
			Payee:  c.Payee,
			Amount: c.Amount.String(),
			Date:   c.Date,
			Memo:   c.Memo,
			Status: string(c.Status),
		})
	}
	return dto
}
