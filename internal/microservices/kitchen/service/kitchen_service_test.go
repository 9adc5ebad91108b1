package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patio-system/internal/common/logger"
	"patio-system/internal/domain"
)

// fakeStore backs both the transition repository and the board reads,
// honoring the same contract the SQL layer does: a transition succeeds only
// from the expected current status and reports the actual one otherwise.
type fakeStore struct {
	orders map[string]*domain.Order
	seq    []string
}

func newFakeStore(orders ...domain.Order) *fakeStore {
	f := &fakeStore{orders: map[string]*domain.Order{}}
	for i := range orders {
		o := orders[i]
		f.orders[o.ID] = &o
		f.seq = append(f.seq, o.ID)
	}
	return f
}

func (f *fakeStore) AssignBuzzer(_ context.Context, orderID, buzzer, _ string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status != domain.StatusPending {
		return &domain.InvalidStateError{Current: o.Status, Transition: "start"}
	}
	o.Status = domain.StatusInProgress
	o.BuzzerNumber = buzzer
	return nil
}

func (f *fakeStore) Complete(_ context.Context, orderID, _ string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status != domain.StatusInProgress {
		return &domain.InvalidStateError{Current: o.Status, Transition: "complete"}
	}
	o.Status = domain.StatusCompleted
	o.BuzzerNumber = ""
	return nil
}

func (f *fakeStore) CreateOrder(_ context.Context, _ domain.Order) error { return nil }

func (f *fakeStore) GetOrder(_ context.Context, id string) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return *o, nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, id := range f.seq {
		out = append(out, *f.orders[id])
	}
	return out, nil
}

func (f *fakeStore) ListByStatus(_ context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	for _, id := range f.seq {
		if f.orders[id].Status == status {
			out = append(out, *f.orders[id])
		}
	}
	return out, nil
}

func (f *fakeStore) ListByLocalDateRange(_ context.Context, _, _ string) ([]domain.Order, error) {
	return nil, nil
}

func newTestService(store *fakeStore) KitchenServiceInterface {
	return NewKitchenService(store, store, logger.New("kitchen-service-test"))
}

func pendingOrder(id string) domain.Order {
	return domain.Order{ID: id, Status: domain.StatusPending, EmployeeEmail: "a@b.c"}
}

func TestAssignBuzzer(t *testing.T) {
	store := newFakeStore(pendingOrder("o1"))
	svc := newTestService(store)

	require.NoError(t, svc.AssignBuzzer(context.Background(), "o1", "7", "kitchen@patio.example"))

	o, err := store.GetOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, o.Status)
	assert.Equal(t, "7", o.BuzzerNumber)
}

func TestAssignBuzzerRequiresNumber(t *testing.T) {
	store := newFakeStore(pendingOrder("o1"))
	svc := newTestService(store)

	err := svc.AssignBuzzer(context.Background(), "o1", "  ", "op")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	o, _ := store.GetOrder(context.Background(), "o1")
	assert.Equal(t, domain.StatusPending, o.Status, "rejected call must not transition")
}

func TestCompleteClearsBuzzer(t *testing.T) {
	store := newFakeStore(pendingOrder("o1"))
	svc := newTestService(store)

	require.NoError(t, svc.AssignBuzzer(context.Background(), "o1", "7", "op"))
	require.NoError(t, svc.Complete(context.Background(), "o1", "op"))

	o, err := store.GetOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, o.Status)
	assert.Empty(t, o.BuzzerNumber)
}

func TestCompleteFromPendingRejected(t *testing.T) {
	store := newFakeStore(pendingOrder("o1"))
	svc := newTestService(store)

	err := svc.Complete(context.Background(), "o1", "op")
	var serr *domain.InvalidStateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, domain.StatusPending, serr.Current)

	o, _ := store.GetOrder(context.Background(), "o1")
	assert.Equal(t, domain.StatusPending, o.Status)
}

func TestDoubleCompleteReportsCurrentStatus(t *testing.T) {
	store := newFakeStore(pendingOrder("o1"))
	svc := newTestService(store)

	require.NoError(t, svc.AssignBuzzer(context.Background(), "o1", "7", "op"))
	require.NoError(t, svc.Complete(context.Background(), "o1", "op"))

	err := svc.Complete(context.Background(), "o1", "op")
	var serr *domain.InvalidStateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, domain.StatusCompleted, serr.Current)
}

func TestTransitionsOnUnknownOrder(t *testing.T) {
	svc := newTestService(newFakeStore())
	assert.ErrorIs(t, svc.AssignBuzzer(context.Background(), "missing", "7", "op"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Complete(context.Background(), "missing", "op"), domain.ErrNotFound)
}

func TestBoard(t *testing.T) {
	var orders []domain.Order
	for i := 1; i <= 3; i++ {
		orders = append(orders, pendingOrder(fmt.Sprintf("p%d", i)))
	}
	// seven completed orders, only the newest five should show
	for i := 1; i <= 7; i++ {
		orders = append(orders, domain.Order{ID: fmt.Sprintf("c%d", i), Status: domain.StatusCompleted})
	}
	store := newFakeStore(orders...)
	svc := newTestService(store)

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	assert.Len(t, board.Pending, 3)
	assert.Empty(t, board.InProgress)
	require.Len(t, board.Completed, 5)
	assert.Equal(t, "c7", board.Completed[0].ID, "newest completion first")
	assert.Equal(t, "c3", board.Completed[4].ID)

	// polling does not mutate anything
	again, err := svc.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, board, again)
}

func TestBoardEmptySlicesNotNil(t *testing.T) {
	svc := newTestService(newFakeStore())
	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, board.Pending)
	assert.NotNil(t, board.InProgress)
	assert.NotNil(t, board.Completed)
}
