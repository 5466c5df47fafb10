package domain

import (
	"github.com/shopspring/decimal"
)

// Account is the aggregate root for everything a customer owns: balance,
// transaction history, loans, cheques and the optional debit card. The JSON
// tags define the persisted snapshot layout.
type Account struct {
	AccountNumber   string          `json:"accountNumber"`
	PasswordHash    string          `json:"passwordHash"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Balance         decimal.Decimal `json:"balance"`
	IsAdmin         bool            `json:"isAdmin"`
	IsFrozen        bool            `json:"isFrozen"`
	ChequeBooksLeft int             `json:"chequeBooksLeft"`
	Card            *Card           `json:"card,omitempty"`
	Transactions    []Transaction   `json:"transactions"`
	Loans           []Loan          `json:"loans"`
	Cheques         []Cheque        `json:"cheques"`
}

// RecordTransaction prepends, keeping the history newest-first.
func (a *Account) RecordTransaction(tx Transaction) {
	a.Transactions = append([]Transaction{tx}, a.Transactions...)
}

// FindLoan returns a pointer into the account's loan slice, or nil.
func (a *Account) FindLoan(id string) *Loan {
	for i := range a.Loans {
		if a.Loans[i].ID == id {
			return &a.Loans[i]
		}
	}
	return nil
}

// FindCheque returns a pointer into the account's cheque slice, or nil.
func (a *Account) FindCheque(id string) *Cheque {
	for i := range a.Cheques {
		if a.Cheques[i].ID == id {
			return &a.Cheques[i]
		}
	}
	return nil
}

// Clone returns a deep copy that callers may hold outside the engine's lock.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Transactions = append([]Transaction(nil), a.Transactions...)
	cp.Loans = append([]Loan(nil), a.Loans...)
	cp.Cheques = append([]Cheque(nil), a.Cheques...)
	if a.Card != nil {
		card := *a.Card
		cp.Card = &card
	}
	return &cp
}
