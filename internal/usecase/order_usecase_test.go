package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（order専用：名前衝突回避）
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) ListRowsByEmail(ctx context.Context, email string) ([]repo.OrderRow, error) {
	args := m.Called(ctx, email)
	rows, _ := args.Get(0).([]repo.OrderRow)
	return rows, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

type txReposStub struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (s *txReposStub) Orders() repo.OrderRepository         { return s.orders }
func (s *txReposStub) OrderItems() repo.OrderItemRepository { return s.orderItems }

// WithinTxをそのまま実行するfake。rollbackの有無は呼び出し回数とerrorで見る。
type fakeTxManager struct {
	repos repo.TxRepos
	calls int
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	f.calls++
	return fn(f.repos)
}

var _ repo.TransactionManager = (*fakeTxManager)(nil)

func newOrderUsecaseForTest(orders *OrderRepoMock, items *OrderItemRepoMock) (*usecase.OrderUsecase, *fakeTxManager) {
	tx := &fakeTxManager{repos: &txReposStub{orders: orders, orderItems: items}}
	return usecase.NewOrderUsecase(tx, orders), tx
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, want, he.Status)
}

// =====================
// PlaceOrder
// =====================

func validInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		CustomerName: "Alice",
		Address:      "1 Main St",
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		},
	}
}

func TestOrderUsecase_PlaceOrder_Success(t *testing.T) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	uc, tx := newOrderUsecaseForTest(orders, items)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		//保存されるemailは必ず認証済みユーザーのもの
		return o.Email == "a@x.com" && o.CustomerName == "Alice" && o.Address == "1 Main St"
	})).Return(int64(77), nil)

	items.On("CreateBulk", mock.Anything, int64(77), mock.MatchedBy(func(got []model.OrderItem) bool {
		return len(got) == 2 &&
			got[0].ProductID == 1 && got[0].Quantity == 2 &&
			got[1].ProductID == 3 && got[1].Quantity == 1
	})).Return(nil)

	orderID, err := uc.PlaceOrder(context.Background(), "a@x.com", validInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(77), orderID)
	assert.Equal(t, 1, tx.calls)

	orders.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestOrderUsecase_PlaceOrder_ValidationRejectsBeforeTx(t *testing.T) {
	cases := []struct {
		name  string
		patch func(in *usecase.PlaceOrderInput)
	}{
		{"blank customerName", func(in *usecase.PlaceOrderInput) { in.CustomerName = "   " }},
		{"blank address", func(in *usecase.PlaceOrderInput) { in.Address = "" }},
		{"empty items", func(in *usecase.PlaceOrderInput) { in.Items = nil }},
		{"zero quantity", func(in *usecase.PlaceOrderInput) { in.Items[0].Quantity = 0 }},
		{"negative quantity", func(in *usecase.PlaceOrderInput) { in.Items[1].Quantity = -1 }},
		{"zero productId", func(in *usecase.PlaceOrderInput) { in.Items[0].ProductID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, tx := newOrderUsecaseForTest(new(OrderRepoMock), new(OrderItemRepoMock))

			in := validInput()
			tc.patch(&in)

			_, err := uc.PlaceOrder(context.Background(), "a@x.com", in)
			assertHTTPStatus(t, err, http.StatusBadRequest)
			//storeには一切触らない
			assert.Equal(t, 0, tx.calls)
		})
	}
}

func TestOrderUsecase_PlaceOrder_NoIdentity(t *testing.T) {
	uc, tx := newOrderUsecaseForTest(new(OrderRepoMock), new(OrderItemRepoMock))

	_, err := uc.PlaceOrder(context.Background(), "", validInput())
	assertHTTPStatus(t, err, http.StatusUnauthorized)
	assert.Equal(t, 0, tx.calls)
}

func TestOrderUsecase_PlaceOrder_ItemInsertFailureAbortsTx(t *testing.T) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	uc, _ := newOrderUsecaseForTest(orders, items)

	orders.On("Create", mock.Anything, mock.Anything).Return(int64(5), nil)
	items.On("CreateBulk", mock.Anything, int64(5), mock.Anything).
		Return(errors.New("FOREIGN KEY constraint failed"))

	//fnがerrorを返す＝TxManagerがrollbackする経路
	_, err := uc.PlaceOrder(context.Background(), "a@x.com", validInput())
	assertHTTPStatus(t, err, http.StatusInternalServerError)
}

func TestOrderUsecase_PlaceOrder_HeaderInsertFailure(t *testing.T) {
	orders := new(OrderRepoMock)
	items := new(OrderItemRepoMock)
	uc, _ := newOrderUsecaseForTest(orders, items)

	orders.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := uc.PlaceOrder(context.Background(), "a@x.com", validInput())
	assertHTTPStatus(t, err, http.StatusInternalServerError)
	items.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
}

// =====================
// ListMyOrders（fold）
// =====================

func TestOrderUsecase_ListMyOrders_FoldsRowsIntoOrders(t *testing.T) {
	orders := new(OrderRepoMock)
	uc, _ := newOrderUsecaseForTest(orders, new(OrderItemRepoMock))

	now := time.Now()
	price := decimal.NewFromFloat(19.99)

	//新しい注文（id=9、明細2つ）が先、古い注文（id=7、明細1つ）が後
	rows := []repo.OrderRow{
		{OrderID: 9, CustomerName: "Alice", Email: "a@x.com", Address: "1 Main St", CreatedAt: now, ProductName: "Classic T-Shirt", Price: price, Quantity: 2},
		{OrderID: 9, CustomerName: "Alice", Email: "a@x.com", Address: "1 Main St", CreatedAt: now, ProductName: "Hoodie", Price: decimal.NewFromFloat(29.99), Quantity: 1},
		{OrderID: 7, CustomerName: "Alice", Email: "a@x.com", Address: "1 Main St", CreatedAt: now.Add(-time.Hour), ProductName: "Sneakers", Price: decimal.NewFromFloat(49.99), Quantity: 1},
	}
	orders.On("ListRowsByEmail", mock.Anything, "a@x.com").Return(rows, nil)

	out, err := uc.ListMyOrders(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Len(t, out, 2)

	//行の到着順＝注文の表示順
	assert.Equal(t, int64(9), out[0].ID)
	assert.Equal(t, int64(7), out[1].ID)

	//最初の行がヘッダを確定し、後続行は明細だけ追加する
	assert.Len(t, out[0].Items, 2)
	assert.Equal(t, "Classic T-Shirt", out[0].Items[0].ProductName)
	assert.Equal(t, int64(2), out[0].Items[0].Quantity)
	assert.True(t, out[0].Items[0].Price.Equal(price))
	assert.Equal(t, "Hoodie", out[0].Items[1].ProductName)

	assert.Len(t, out[1].Items, 1)
	assert.Equal(t, "Sneakers", out[1].Items[0].ProductName)
}

func TestOrderUsecase_ListMyOrders_Empty(t *testing.T) {
	orders := new(OrderRepoMock)
	uc, _ := newOrderUsecaseForTest(orders, new(OrderItemRepoMock))

	orders.On("ListRowsByEmail", mock.Anything, "a@x.com").Return([]repo.OrderRow{}, nil)

	out, err := uc.ListMyOrders(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestOrderUsecase_ListMyOrders_StorageError(t *testing.T) {
	orders := new(OrderRepoMock)
	uc, _ := newOrderUsecaseForTest(orders, new(OrderItemRepoMock))

	orders.On("ListRowsByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("db down"))

	_, err := uc.ListMyOrders(context.Background(), "a@x.com")
	assertHTTPStatus(t, err, http.StatusInternalServerError)
}
