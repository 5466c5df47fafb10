package repository

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/retrobank/backoffice/internal/domain"
)

// AdminAccountNumber is the one privileged account, present in every seed.
const AdminAccountNumber = "admin"

const adminSeedSecret = "09092009"

// SeedSnapshot builds the demo dataset written on first run: the admin
// account plus a handful of customers with historical transactions and loans.
// Secrets are stored as bcrypt hashes; the demo plaintexts are documented
// operator knowledge, not derivable from the snapshot.
func SeedSnapshot() (domain.Snapshot, error) {
	hashes := map[string]string{}
	for number, secret := range map[string]string{
		AdminAccountNumber: adminSeedSecret,
		"19139":            "574280",
		"51488":            "691520",
		"32116":            "259069",
		"44274":            "857263",
		"28004":            "689184",
	} {
		h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("SeedSnapshot: hash %s: %w", number, err)
		}
		hashes[number] = string(h)
	}

	return domain.Snapshot{
		{
			AccountNumber:   AdminAccountNumber,
			PasswordHash:    hashes[AdminAccountNumber],
			Name:            "System Administrator",
			Email:           "admin@retrobank.example",
			Balance:         dec("1000000000000"),
			IsAdmin:         true,
			ChequeBooksLeft: 999,
			Transactions:    []domain.Transaction{},
			Loans:           []domain.Loan{},
			Cheques:         []domain.Cheque{},
		},
		{
			AccountNumber:   "19139",
			PasswordHash:    hashes["19139"],
			Name:            "Susan Wilson",
			Email:           "susan.wilson@retrobank.example",
			Balance:         dec("4790476.86"),
			ChequeBooksLeft: 5,
			Transactions: []domain.Transaction{
				{ID: "1", Date: day(2008, 5, 9), Type: domain.TransactionDeposit, Amount: dec("6309.42"), Description: "Deposit", Status: domain.TransactionFailed},
				{ID: "2", Date: day(2014, 5, 11), Type: domain.TransactionTransfer, Amount: dec("6162.16"), Description: "Transfer", Status: domain.TransactionSuccess},
				{ID: "3", Date: day(2014, 7, 24), Type: domain.TransactionWithdrawal, Amount: dec("12867.4"), Description: "Bank Fee", Status: domain.TransactionSuccess},
				{ID: "9", Date: day(2007, 10, 25), Type: domain.TransactionDeposit, Amount: dec("9824.36"), Description: "Interest Credit", Status: domain.TransactionSuccess},
			},
			Loans:   []domain.Loan{},
			Cheques: []domain.Cheque{},
		},
		{
			AccountNumber:   "51488",
			PasswordHash:    hashes["51488"],
			Name:            "James Rodriguez",
			Email:           "j.rodriguez@retrobank.example",
			Balance:         dec("2456933.73"),
			ChequeBooksLeft: 5,
			Transactions: []domain.Transaction{
				{ID: "29", Date: day(2015, 7, 30), Type: domain.TransactionDeposit, Amount: dec("1984.06"), Description: "Interest Credit", Status: domain.TransactionSuccess},
				{ID: "31", Date: day(2000, 3, 25), Type: domain.TransactionWithdrawal, Amount: dec("13111.79"), Description: "Bank Fee", Status: domain.TransactionSuccess},
				{ID: "32", Date: day(2009, 8, 14), Type: domain.TransactionTransfer, Amount: dec("10995.63"), Description: "Transfer", Status: domain.TransactionSuccess},
			},
			Loans: []domain.Loan{
				{ID: "seed-loan-1", Amount: dec("1402134.58"), InterestRate: dec("5.0"), TenureMonths: 60, MonthlyEMI: dec("26460.01"), Status: domain.LoanActive, RemainingAmount: dec("1200000"), AppliedDate: day(2005, 11, 16)},
			},
			Cheques: []domain.Cheque{},
		},
		{
			AccountNumber:   "32116",
			PasswordHash:    hashes["32116"],
			Name:            "David Martin",
			Email:           "david.m@retrobank.example",
			Balance:         dec("3369033.37"),
			ChequeBooksLeft: 5,
			Transactions: []domain.Transaction{
				{ID: "110", Date: day(2010, 1, 27), Type: domain.TransactionDeposit, Amount: dec("16050.9"), Description: "Interest Credit", Status: domain.TransactionFailed},
				{ID: "111", Date: day(2007, 10, 7), Type: domain.TransactionWithdrawal, Amount: dec("8062.37"), Description: "Withdrawal", Status: domain.TransactionSuccess},
			},
			Loans: []domain.Loan{
				{ID: "seed-loan-2", Amount: dec("517810.18"), InterestRate: dec("3.5"), TenureMonths: 36, MonthlyEMI: dec("15172.92"), Status: domain.LoanClosed, RemainingAmount: dec("0"), AppliedDate: day(2003, 2, 17)},
				{ID: "seed-loan-3", Amount: dec("2059568.39"), InterestRate: dec("5.0"), TenureMonths: 60, MonthlyEMI: dec("38866.6"), Status: domain.LoanClosed, RemainingAmount: dec("0"), AppliedDate: day(2006, 7, 6)},
			},
			Cheques: []domain.Cheque{},
		},
		{
			AccountNumber:   "44274",
			PasswordHash:    hashes["44274"],
			Name:            "Jessica Miller",
			Email:           "j.miller@retrobank.example",
			Balance:         dec("707470.3"),
			IsFrozen:        true,
			ChequeBooksLeft: 5,
			Transactions: []domain.Transaction{
				{ID: "271", Date: day(2013, 10, 16), Type: domain.TransactionTransfer, Amount: dec("2823.78"), Description: "Transfer", Status: domain.TransactionSuccess},
			},
			Loans: []domain.Loan{
				{ID: "seed-loan-4", Amount: dec("446784.62"), InterestRate: dec("7.5"), TenureMonths: 60, MonthlyEMI: dec("8952.65"), Status: domain.LoanActive, RemainingAmount: dec("200000"), AppliedDate: day(2010, 9, 16)},
			},
			Cheques: []domain.Cheque{},
		},
		{
			AccountNumber:   "28004",
			PasswordHash:    hashes["28004"],
			Name:            "William Thomas",
			Email:           "w.thomas@retrobank.example",
			Balance:         dec("1229131.22"),
			ChequeBooksLeft: 5,
			Transactions:    []domain.Transaction{},
			Loans: []domain.Loan{
				{ID: "seed-loan-5", Amount: dec("35035.06"), InterestRate: dec("6.0"), TenureMonths: 180, MonthlyEMI: dec("295.65"), Status: domain.LoanOverdue, RemainingAmount: dec("5000"), AppliedDate: day(2007, 1, 4)},
			},
			Cheques: []domain.Cheque{},
		},
	}, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
