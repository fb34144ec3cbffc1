package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"expense_tracker/internal/auth"
	"expense_tracker/internal/identity"
	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser models.User
	signUpErr  error
	signInRes  service.SignInResult
	signInErr  error
	// tokens maps a bearer token to the user it resolves to
	tokens     map[string]models.User
	resolveErr error

	lastSignUp      service.SignUpInput
	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) SignUp(_ context.Context, in service.SignUpInput) (models.User, error) {
	m.lastSignUp = in
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, username, password string) (service.SignInResult, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.signInRes, m.signInErr
}

func (m *mockAuth) ResolveIdentity(_ context.Context, token string) (*models.User, error) {
	m.lastParseToken = token
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	u, ok := m.tokens[token]
	if !ok {
		return nil, auth.ErrTokenMalformed
	}
	return &u, nil
}

type mockCategories struct {
	list    []models.Category
	cat     models.Category
	err     error
	lastID  int64
	lastIn  service.CategoryInput
	lastTyp models.TransactionType
	owner   int64
}

func (m *mockCategories) seen(ctx context.Context) {
	if u, ok := identity.UserFromContext(ctx); ok {
		m.owner = u.ID
	}
}

func (m *mockCategories) List(ctx context.Context) ([]models.Category, error) {
	m.seen(ctx)
	return m.list, m.err
}

func (m *mockCategories) ListByType(ctx context.Context, typ models.TransactionType) ([]models.Category, error) {
	m.seen(ctx)
	m.lastTyp = typ
	return m.list, m.err
}

func (m *mockCategories) Get(ctx context.Context, id int64) (models.Category, error) {
	m.seen(ctx)
	m.lastID = id
	return m.cat, m.err
}

func (m *mockCategories) Create(ctx context.Context, in service.CategoryInput) (models.Category, error) {
	m.seen(ctx)
	m.lastIn = in
	return m.cat, m.err
}

func (m *mockCategories) Update(ctx context.Context, id int64, in service.CategoryInput) (models.Category, error) {
	m.seen(ctx)
	m.lastID, m.lastIn = id, in
	return m.cat, m.err
}

func (m *mockCategories) Delete(ctx context.Context, id int64) error {
	m.seen(ctx)
	m.lastID = id
	return m.err
}

type mockTransactions struct {
	list       []models.Transaction
	tx         models.Transaction
	err        error
	lastFilter service.TransactionFilter
	lastID     int64
	lastIn     service.TransactionInput
}

func (m *mockTransactions) List(_ context.Context, f service.TransactionFilter) ([]models.Transaction, error) {
	m.lastFilter = f
	return m.list, m.err
}

func (m *mockTransactions) Get(_ context.Context, id int64) (models.Transaction, error) {
	m.lastID = id
	return m.tx, m.err
}

func (m *mockTransactions) Create(_ context.Context, in service.TransactionInput) (models.Transaction, error) {
	m.lastIn = in
	return m.tx, m.err
}

func (m *mockTransactions) Update(_ context.Context, id int64, in service.TransactionInput) (models.Transaction, error) {
	m.lastID, m.lastIn = id, in
	return m.tx, m.err
}

func (m *mockTransactions) Delete(_ context.Context, id int64) error {
	m.lastID = id
	return m.err
}

type mockSummary struct {
	total     decimal.Decimal
	byCat     map[string]decimal.Decimal
	overview  service.Overview
	monthly   []service.MonthlyTotal
	err       error
	lastType  models.TransactionType
	lastStart models.Date
	lastEnd   models.Date
	calls     int
}

func (m *mockSummary) TotalByType(_ context.Context, typ models.TransactionType) (decimal.Decimal, error) {
	m.lastType = typ
	return m.total, m.err
}

func (m *mockSummary) TotalByTypeAndDateRange(_ context.Context, typ models.TransactionType, start, end models.Date) (decimal.Decimal, error) {
	m.lastType, m.lastStart, m.lastEnd = typ, start, end
	return m.total, m.err
}

func (m *mockSummary) CategorySummary(_ context.Context, typ models.TransactionType) (map[string]decimal.Decimal, error) {
	m.lastType = typ
	return m.byCat, m.err
}

func (m *mockSummary) Overview(context.Context) (service.Overview, error) {
	m.calls++
	return m.overview, m.err
}

func (m *mockSummary) MonthlySummary(context.Context) ([]service.MonthlyTotal, error) {
	return m.monthly, m.err
}

type mockActivity struct {
	resp       []models.ActivityEvent
	err        error
	lastFilter service.ActivityFilter
}

func (m *mockActivity) List(_ context.Context, f service.ActivityFilter) ([]models.ActivityEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

const testToken = "tok-alice"

var testUser = models.User{ID: 7, Username: "alice", Email: "alice@x.com"}

// newMockService returns a Service whose auth mock resolves testToken to testUser.
func newMockService() *service.Service {
	return &service.Service{
		Authorization: &mockAuth{tokens: map[string]models.User{testToken: testUser}},
		Categories:    &mockCategories{},
		Transactions:  &mockTransactions{},
		Summary:       &mockSummary{},
		Activity:      &mockActivity{},
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// doRequest runs one request through r. An empty body sends no payload.
func doRequest(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range authHeader(token) {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
