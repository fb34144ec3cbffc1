package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/shopspring/decimal"
)

func TestTransactionHandlers_Create(t *testing.T) {
	s := newMockService()
	txs := s.Transactions.(*mockTransactions)
	txs.tx = models.Transaction{
		ID:           11,
		Amount:       decimal.RequireFromString("12.50"),
		Date:         models.NewDate(2024, 1, 5),
		Type:         models.TypeExpense,
		CategoryID:   3,
		CategoryName: "Food",
		UserID:       testUser.ID,
	}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/api/transactions",
		`{"amount":12.50,"type":"EXPENSE","categoryId":3,"date":"2024-01-05"}`, testToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	if !txs.lastIn.Amount.Equal(decimal.RequireFromString("12.5")) || txs.lastIn.CategoryID != 3 ||
		txs.lastIn.Date.String() != "2024-01-05" || txs.lastIn.Type != models.TypeExpense {
		t.Fatalf("service got %+v", txs.lastIn)
	}

	var got map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got["amount"] != 12.5 || got["date"] != "2024-01-05" || got["categoryId"] != float64(3) {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestTransactionHandlers_CreateNestedCategory(t *testing.T) {
	s := newMockService()
	txs := s.Transactions.(*mockTransactions)
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/api/transactions", `{"amount":"5","category":{"id":8}}`, testToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	if txs.lastIn.CategoryID != 8 || txs.lastIn.Amount.String() != "5" {
		t.Fatalf("service got %+v", txs.lastIn)
	}
}

func TestTransactionHandlers_BadInput(t *testing.T) {
	r := newTestRouter(newMockService())

	cases := []struct {
		name, method, path, body string
	}{
		{"missing amount", http.MethodPost, "/api/transactions", `{"categoryId":1}`},
		{"bad amount", http.MethodPost, "/api/transactions", `{"amount":"lots","categoryId":1}`},
		{"bad date", http.MethodPost, "/api/transactions", `{"amount":1,"date":"05/01/2024","categoryId":1}`},
		{"bad type", http.MethodPost, "/api/transactions", `{"amount":1,"type":"GIFT","categoryId":1}`},
		{"bad id", http.MethodPut, "/api/transactions/x", `{"amount":1,"categoryId":1}`},
		{"bad type path", http.MethodGet, "/api/transactions/type/gift", ""},
		{"bad category path", http.MethodGet, "/api/transactions/category/-1", ""},
		{"missing range", http.MethodGet, "/api/transactions/date-range?startDate=2024-01-01", ""},
		{"bad range", http.MethodGet, "/api/transactions/date-range?startDate=2024-01-01&endDate=soon", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, tc.method, tc.path, tc.body, testToken)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestTransactionHandlers_ListVariants(t *testing.T) {
	s := newMockService()
	txs := s.Transactions.(*mockTransactions)
	r := newTestRouter(s)

	cases := []struct {
		path string
		want service.TransactionFilter
	}{
		{"/api/transactions", service.TransactionFilter{}},
		{"/api/transactions/type/income", service.TransactionFilter{Type: models.TypeIncome}},
		{"/api/transactions/category/4", service.TransactionFilter{CategoryID: 4}},
		{"/api/transactions/date-range?startDate=2024-01-01&endDate=2024-01-31",
			service.TransactionFilter{Start: models.NewDate(2024, 1, 1), End: models.NewDate(2024, 1, 31)}},
	}
	for _, tc := range cases {
		w := doRequest(r, http.MethodGet, tc.path, "", testToken)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: %d %s", tc.path, w.Code, w.Body.String())
		}
		f := txs.lastFilter
		if f.Type != tc.want.Type || f.CategoryID != tc.want.CategoryID || !f.Start.Equal(tc.want.Start) || !f.End.Equal(tc.want.End) {
			t.Fatalf("%s: filter = %+v; want %+v", tc.path, f, tc.want)
		}
	}
}

func TestTransactionHandlers_GetUpdateDelete(t *testing.T) {
	s := newMockService()
	txs := s.Transactions.(*mockTransactions)
	r := newTestRouter(s)

	if w := doRequest(r, http.MethodGet, "/api/transactions/5", "", testToken); w.Code != http.StatusOK || txs.lastID != 5 {
		t.Fatalf("get: %d id=%d", w.Code, txs.lastID)
	}
	if w := doRequest(r, http.MethodPut, "/api/transactions/6", `{"amount":2,"categoryId":1}`, testToken); w.Code != http.StatusOK || txs.lastID != 6 {
		t.Fatalf("update: %d id=%d", w.Code, txs.lastID)
	}
	if w := doRequest(r, http.MethodDelete, "/api/transactions/7", "", testToken); w.Code != http.StatusOK || txs.lastID != 7 {
		t.Fatalf("delete: %d id=%d", w.Code, txs.lastID)
	}

	txs.err = &service.Error{Kind: service.ErrNotFound, Msg: "Transaction not found or you don't have access to it"}
	if w := doRequest(r, http.MethodGet, "/api/transactions/5", "", testToken); w.Code != http.StatusNotFound {
		t.Fatalf("get missing: %d", w.Code)
	}
}
