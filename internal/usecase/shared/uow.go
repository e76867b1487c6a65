package shared

import (
	"context"

	"bookswap/internal/domain/book"
	"bookswap/internal/domain/exchange"
	"bookswap/internal/domain/listing"
	"bookswap/internal/domain/user"
	infradb "bookswap/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infradb.DBTX) error) error
	// CommandReads: Validation reads outside an explicit transaction
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Exchanges() ExchangeRepository
	Books() BookRepository
	Users() UserRepository
	Reads() CommandReads
	DB() infradb.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	ExchangeByID(ctx context.Context, id uuid.UUID) (*ExchangeSnapshot, error)
}

type ListingRepository interface {
	Create(ctx context.Context, db infradb.DBTX, l *listing.Listing) (uuid.UUID, error)
	Update(ctx context.Context, db infradb.DBTX, id uuid.UUID, fields ListingPatch) error
	Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error)
	DeleteByBook(ctx context.Context, db infradb.DBTX, bookID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, db infradb.DBTX, ownerID uuid.UUID) (int64, error)
}

type ExchangeRepository interface {
	Exists(ctx context.Context, db infradb.DBTX, requesteeListingID, requesterListingID uuid.UUID) (bool, error)
	Create(ctx context.Context, db infradb.DBTX, req *exchange.Request) (uuid.UUID, error)
	// UpdateStatus succeeds only while the row still holds `from`, so a
	// concurrent transition surfaces as false instead of a lost update.
	UpdateStatus(ctx context.Context, db infradb.DBTX, id uuid.UUID, from, to exchange.Status) (bool, error)
	// RejectSiblings forces every other request sharing the requestee listing
	// to rejected. Returns the number of rows affected.
	RejectSiblings(ctx context.Context, db infradb.DBTX, requesteeListingID, acceptedID uuid.UUID) (int64, error)
	Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error)
	DeleteByBook(ctx context.Context, db infradb.DBTX, bookID uuid.UUID) (int64, error)
	DeleteByListing(ctx context.Context, db infradb.DBTX, listingID uuid.UUID) (int64, error)
}

type BookRepository interface {
	Create(ctx context.Context, db infradb.DBTX, b *book.Book) (uuid.UUID, error)
	Delete(ctx context.Context, db infradb.DBTX, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, db infradb.DBTX, u *user.User) (uuid.UUID, error)
}
