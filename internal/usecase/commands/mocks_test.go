//go:build unit

package commands_test

import (
	"context"

	"bookswap/internal/domain/book"
	"bookswap/internal/domain/exchange"
	"bookswap/internal/domain/listing"
	"bookswap/internal/domain/user"
	infradb "bookswap/internal/infra/db"
	"bookswap/internal/usecase/queries"
	"bookswap/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW runs every unit against the same in-test Tx so expectations can be
// declared up front.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: newFakeTx()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db infradb.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	listings  *MockListingRepository
	exchanges *MockExchangeRepository
	books     *MockBookRepository
	users     *MockUserRepository
	reads     *MockCommandReads
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		listings:  new(MockListingRepository),
		exchanges: new(MockExchangeRepository),
		books:     new(MockBookRepository),
		users:     new(MockUserRepository),
		reads:     new(MockCommandReads),
	}
}

func (t *fakeTx) Listings() shared.ListingRepository   { return t.listings }
func (t *fakeTx) Exchanges() shared.ExchangeRepository { return t.exchanges }
func (t *fakeTx) Books() shared.BookRepository         { return t.books }
func (t *fakeTx) Users() shared.UserRepository         { return t.users }
func (t *fakeTx) Reads() shared.CommandReads           { return t.reads }
func (t *fakeTx) DB() infradb.DBTX                     { return nil }

func (t *fakeTx) assertExpectations(tt mock.TestingT) {
	t.listings.AssertExpectations(tt)
	t.exchanges.AssertExpectations(tt)
	t.books.AssertExpectations(tt)
	t.users.AssertExpectations(tt)
	t.reads.AssertExpectations(tt)
}

type MockCommandReads struct {
	mock.Mock
}

func (m *MockCommandReads) ListingByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	args := m.Called(ctx, id)
	if snap := args.Get(0); snap != nil {
		return snap.(*shared.ListingSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommandReads) ExchangeByID(ctx context.Context, id uuid.UUID) (*shared.ExchangeSnapshot, error) {
	args := m.Called(ctx, id)
	if snap := args.Get(0); snap != nil {
		return snap.(*shared.ExchangeSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockExchangeRepository struct {
	mock.Mock
}

func (m *MockExchangeRepository) Exists(ctx context.Context, db infradb.DBTX, requesteeListingID, requesterListingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, requesteeListingID, requesterListingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExchangeRepository) Create(ctx context.Context, db infradb.DBTX, req *exchange.Request) (uuid.UUID, error) {
	args := m.Called(ctx, db, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockExchangeRepository) UpdateStatus(ctx context.Context, db infradb.DBTX, id uuid.UUID, from, to exchange.Status) (bool, error) {
	args := m.Called(ctx, db, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockExchangeRepository) RejectSiblings(ctx context.Context, db infradb.DBTX, requesteeListingID, acceptedID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, requesteeListingID, acceptedID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExchangeRepository) Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockExchangeRepository) DeleteByBook(ctx context.Context, db infradb.DBTX, bookID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, bookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExchangeRepository) DeleteByListing(ctx context.Context, db infradb.DBTX, listingID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, listingID)
	return args.Get(0).(int64), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, db infradb.DBTX, l *listing.Listing) (uuid.UUID, error) {
	args := m.Called(ctx, db, l)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, db infradb.DBTX, id uuid.UUID, fields shared.ListingPatch) error {
	args := m.Called(ctx, db, id, fields)
	return args.Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockListingRepository) DeleteByBook(ctx context.Context, db infradb.DBTX, bookID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, bookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingRepository) DeleteByUser(ctx context.Context, db infradb.DBTX, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, db infradb.DBTX, b *book.Book) (uuid.UUID, error) {
	args := m.Called(ctx, db, b)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBookRepository) Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, db infradb.DBTX, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, db, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	args := m.Called(ctx, email)
	if view := args.Get(0); view != nil {
		return view.(*queries.UserView), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}
