package service_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/models"
)

// inlineSyncer runs enqueued tasks immediately so tests observe remote
// effects deterministically.
type inlineSyncer struct{}

func (inlineSyncer) Enqueue(name string, run func(ctx context.Context) error) {
	_ = run(context.Background())
}

// fakeOrderRepo is an in-memory stand-in for the remote order store.
type fakeOrderRepo struct {
	remote     map[string]models.Order
	statuses   map[string]string
	trackings  map[string]string
	payments   int
	deletes    []string
	fetchErr   error
	upsertErr  error
	updateErr  error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		remote:    make(map[string]models.Order),
		statuses:  make(map[string]string),
		trackings: make(map[string]string),
	}
}

func (f *fakeOrderRepo) FetchAll(ctx context.Context) ([]models.Order, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]models.Order, 0, len(f.remote))
	for _, o := range f.remote {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Upsert(ctx context.Context, o *models.Order) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.remote[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeOrderRepo) UpdateTracking(ctx context.Context, id, trackingNumber string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.trackings[id] = trackingNumber
	return nil
}

func (f *fakeOrderRepo) UpdatePayment(ctx context.Context, o *models.Order) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.payments++
	f.remote[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.deletes = append(f.deletes, id)
	delete(f.remote, id)
	return nil
}

// fakeStockRepo records remote quantity updates.
type fakeStockRepo struct {
	items      []models.StockItem
	quantities map[string]int
	deletes    []string
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{quantities: make(map[string]int)}
}

func (f *fakeStockRepo) FetchAll(ctx context.Context) ([]models.StockItem, error) {
	return f.items, nil
}

func (f *fakeStockRepo) Upsert(ctx context.Context, s *models.StockItem) error {
	return nil
}

func (f *fakeStockRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	f.quantities[id] = quantity
	return nil
}

func (f *fakeStockRepo) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

// fakeUserRepo records ticket credits.
type fakeUserRepo struct {
	users     []models.UserProfile
	credits   map[string]int
	creditErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{credits: make(map[string]int)}
}

func (f *fakeUserRepo) FetchAll(ctx context.Context) ([]models.UserProfile, error) {
	return f.users, nil
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *models.UserProfile) error {
	return nil
}

func (f *fakeUserRepo) CreditTickets(ctx context.Context, email string, tickets int) error {
	if f.creditErr != nil {
		return f.creditErr
	}
	f.credits[email] += tickets
	return nil
}

// fakeCatalogRepo is a generic fetch/upsert/delete fake usable for
// producers, lots, packs, promos and app records.
type fakeCatalogRepo[T any] struct {
	items    []T
	fetchErr error
	failNext int
	upserts  int
}

func (f *fakeCatalogRepo[T]) FetchAll(ctx context.Context) ([]T, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.items, nil
}

func (f *fakeCatalogRepo[T]) Upsert(ctx context.Context, v *T) error {
	if f.failNext > 0 {
		f.failNext--
		return errors.New("remote upsert refused")
	}
	f.upserts++
	return nil
}

func (f *fakeCatalogRepo[T]) Delete(ctx context.Context, id string) error {
	return nil
}

var errRemoteDown = fmt.Errorf("remote store unreachable")
