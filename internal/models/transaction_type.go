package models

import (
	"errors"
	"fmt"
	"strings"
)

// TransactionType tells income and expense records apart. Categories carry one too.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

var ErrInvalidTransactionType = errors.New("type must be INCOME or EXPENSE")

// ParseTransactionType trims and uppercases s before matching it.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTransactionType, s)
	}
	return t, nil
}

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

func (t TransactionType) String() string { return string(t) }
