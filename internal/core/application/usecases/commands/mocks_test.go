package commands_test

import (
	"context"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/collab"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBulkOrderRepository struct{ mock.Mock }

func (m *MockBulkOrderRepository) Add(ctx context.Context, o *bulkorder.BulkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockBulkOrderRepository) Update(ctx context.Context, o *bulkorder.BulkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockBulkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*bulkorder.BulkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulkorder.BulkOrder), args.Error(1)
}

func (m *MockBulkOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*bulkorder.BulkOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bulkorder.BulkOrder), args.Error(1)
}

type MockCollaborationRequestRepository struct{ mock.Mock }

func (m *MockCollaborationRequestRepository) Add(ctx context.Context, r *collab.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCollaborationRequestRepository) Update(ctx context.Context, r *collab.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCollaborationRequestRepository) Get(ctx context.Context, id kernel.UUID) (*collab.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collab.Request), args.Error(1)
}

func (m *MockCollaborationRequestRepository) GetPendingByOrderAndChef(ctx context.Context, bulkOrderID, toChefID kernel.UUID) (*collab.Request, error) {
	args := m.Called(ctx, bulkOrderID, toChefID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collab.Request), args.Error(1)
}

// MockUoW satisfies every unit-of-work interface in the package so a single
// mock type serves order-only, request-only, and cross-aggregate handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BulkOrderRepository() ports.BulkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.BulkOrderRepository)
}

func (m *MockUoW) CollaborationRequestRepository() ports.CollaborationRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.CollaborationRequestRepository)
}

type MockBulkOrderUoWFactory struct{ mock.Mock }

func (m *MockBulkOrderUoWFactory) Create() commands.BulkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.BulkOrderUoW)
}

type MockCollaborationRequestUoWFactory struct{ mock.Mock }

func (m *MockCollaborationRequestUoWFactory) Create() commands.CollaborationRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.CollaborationRequestUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// FakeNotifier records published notifications without a broker.
type FakeNotifier struct {
	StatusChanged          []*bulkorder.BulkOrder
	CollaborationRequested []*collab.Request
	CollaborationAnswered  []*collab.Request
}

func (f *FakeNotifier) NotifyOrderStatusChanged(_ context.Context, order *bulkorder.BulkOrder) {
	f.StatusChanged = append(f.StatusChanged, order)
}

func (f *FakeNotifier) NotifyCollaborationRequested(_ context.Context, request *collab.Request) {
	f.CollaborationRequested = append(f.CollaborationRequested, request)
}

func (f *FakeNotifier) NotifyCollaborationAnswered(_ context.Context, request *collab.Request) {
	f.CollaborationAnswered = append(f.CollaborationAnswered, request)
}

type MockDeliveryDispatch struct{ mock.Mock }

func (m *MockDeliveryDispatch) Dispatch(ctx context.Context, order *bulkorder.BulkOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func mustNewOrder(customerID, primaryChefID kernel.UUID) *bulkorder.BulkOrder {
	item, err := bulkorder.NewItem("Paella tray", 4, 3500)
	if err != nil {
		panic(err)
	}
	order, err := bulkorder.NewBulkOrder(
		kernel.NewUUID(), customerID, primaryChefID,
		bulkorder.Delivery, time.Time{}, []bulkorder.Item{item},
		time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return order
}

func mustNewRequest(bulkOrderID, fromChefID, toChefID kernel.UUID) *collab.Request {
	request, err := collab.NewRequest(
		kernel.NewUUID(), bulkOrderID, fromChefID, toChefID,
		"Large event, need help", "Split by course",
		time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	return request
}
