package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	cases := []struct {
		in      string
		want    TransactionType
		wantErr bool
	}{
		{"INCOME", TypeIncome, false},
		{" expense ", TypeExpense, false},
		{"Income", TypeIncome, false},
		{"", "", true},
		{"refund", "", true},
	}
	for _, tc := range cases {
		got, err := ParseTransactionType(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTransactionType, "input %q", tc.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &d))
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-02-29"`, string(b))

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	assert.Error(t, json.Unmarshal([]byte(`"2024-13-01"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240101`), &d))
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2024, 1, 5)

	for name, src := range map[string]any{
		"string":    "2024-01-05",
		"bytes":     []byte("2024-01-05"),
		"timestamp": "2024-01-05T00:00:00Z",
		"time":      time.Date(2024, 1, 5, 13, 45, 0, 0, time.UTC),
	} {
		var d Date
		require.NoError(t, d.Scan(src), name)
		assert.True(t, d.Equal(want), "%s: got %s", name, d)
	}

	var d Date
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	assert.Error(t, d.Scan(42))

	v, err := want.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", v)
}

func TestDate_Months(t *testing.T) {
	d := NewDate(2024, 3, 31)
	assert.Equal(t, "2024-03-01", d.FirstOfMonth().String())
	assert.Equal(t, "2023-10-01", d.FirstOfMonth().AddMonths(-5).String())
	assert.True(t, NewDate(2024, 1, 1).Before(d))
	assert.True(t, d.After(NewDate(2024, 1, 1)))
}

func TestTransaction_JSONShape(t *testing.T) {
	tx := Transaction{
		ID:           1,
		Description:  "lunch",
		Amount:       decimal.RequireFromString("12.50"),
		Date:         NewDate(2024, 1, 5),
		Type:         TypeExpense,
		CategoryID:   3,
		CategoryName: "Food",
		UserID:       9,
	}
	b, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"description": "lunch",
		"amount": 12.5,
		"date": "2024-01-05",
		"type": "EXPENSE",
		"categoryId": 3,
		"categoryName": "Food"
	}`, string(b))

	var back Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 0.1, "date": "2024-01-05", "type": "INCOME", "categoryId": 2}`), &back))
	assert.True(t, back.Amount.Equal(decimal.RequireFromString("0.1")))
}
