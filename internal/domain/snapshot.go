package domain

// Snapshot is the full collection of accounts, persisted and replaced as one
// unit. It is the single root of ownership: loans, cheques and cards exist
// only inside an account record.
type Snapshot []Account

// Account returns a pointer into the snapshot, or nil.
func (s Snapshot) Account(number string) *Account {
	for i := range s {
		if s[i].AccountNumber == number {
			return &s[i]
		}
	}
	return nil
}

// AccountByCard resolves the card-number namespace used by the ATM flow.
func (s Snapshot) AccountByCard(cardNumber string) *Account {
	for i := range s {
		if s[i].Card != nil && s[i].Card.Number == cardNumber {
			return &s[i]
		}
	}
	return nil
}

// Index maps loan and cheque ids back to their owning account so admin
// commands resolve a target directly instead of scanning every account's
// collections per call. Built per snapshot load; must not outlive it.
type Index struct {
	loans   map[string]string
	cheques map[string]string
}

func (s Snapshot) BuildIndex() Index {
	idx := Index{
		loans:   make(map[string]string),
		cheques: make(map[string]string),
	}
	for i := range s {
		for _, l := range s[i].Loans {
			idx.loans[l.ID] = s[i].AccountNumber
		}
		for _, c := range s[i].Cheques {
			idx.cheques[c.ID] = s[i].AccountNumber
		}
	}
	return idx
}

// LoanAccount returns the account number owning a loan id.
func (idx Index) LoanAccount(loanID string) (string, bool) {
	n, ok := idx.loans[loanID]
	return n, ok
}

// ChequeAccount returns the account number owning a cheque id.
func (idx Index) ChequeAccount(chequeID string) (string, bool) {
	n, ok := idx.cheques[chequeID]
	return n, ok
}
