package repository

import (
	"context"
	"fmt"
	"math"
	"strings"

	"bookcatalog/internal/model"
)

// BookRepository defines data access for the books collection.
// No business logic here beyond composing filters, updates and projections.
type BookRepository interface {
	// AddBook inserts one book. A nil book is rejected with model.ErrInvalidArgument.
	// Duplicate name/author pairs are stored as separate documents.
	AddBook(ctx context.Context, book *model.Book) error

	// AddBooks inserts all books in one bulk call. A nil slice is rejected; an empty one inserts nothing.
	AddBooks(ctx context.Context, books []*model.Book) error

	// GetBooksInStock returns books whose count is greater than one, shaped by params.
	GetBooksInStock(ctx context.Context, params *BooksInStockQueryParams) (*AggregateResponse[model.Book], error)

	// GetBookWithLimitCount returns the book with the smallest or largest count.
	GetBookWithLimitCount(ctx context.Context, which LimitCount) (*model.Book, error)

	// GetAuthorsList returns the distinct author values in store order. A nil entry is an undefined author.
	GetAuthorsList(ctx context.Context) ([]*string, error)

	// GetBooksWithNoAuthorDefined returns books whose author is stored as null.
	GetBooksWithNoAuthorDefined(ctx context.Context) ([]model.Book, error)

	// IncrementBooksCount adds one to the count of every book.
	IncrementBooksCount(ctx context.Context) error

	// AddFavorityGenreToFantasyBooks tags fantasy books with the "favority" genre, at most once per book.
	AddFavorityGenreToFantasyBooks(ctx context.Context) error

	// DeleteBooksWithCountMoreThanValue removes books whose count is greater than value.
	DeleteBooksWithCountMoreThanValue(ctx context.Context, value int) error

	// DeleteAllBooks removes every book.
	DeleteAllBooks(ctx context.Context) error
}

// Unlimited is the default BooksInStockQueryParams limit.
const Unlimited = math.MaxInt

// BooksInStockQueryParams shapes the result of GetBooksInStock. All combinations are valid.
type BooksInStockQueryParams struct {
	SortByTitle   bool
	ShowOnlyTitle bool
	GetOnlyCount  bool
	// Limit caps the matched books before sorting. Zero or negative means no limit.
	Limit int
}

// NewBooksInStockQueryParams returns params with every flag off and no limit.
func NewBooksInStockQueryParams() *BooksInStockQueryParams {
	return &BooksInStockQueryParams{Limit: Unlimited}
}

// AggregateResponse carries either full items or titles, plus a count.
// T is typically a model type.
type AggregateResponse[T any] struct {
	Items          []T      `json:"items"`
	Titles         []string `json:"titles"`
	AggregateValue int      `json:"aggregateValue"`
}

// NewAggregateResponse returns a response with empty, non-nil slices.
func NewAggregateResponse[T any]() *AggregateResponse[T] {
	return &AggregateResponse[T]{
		Items:  []T{},
		Titles: []string{},
	}
}

// LimitCount selects the book with the minimum or maximum count.
type LimitCount int

const (
	LimitCountNotDefined LimitCount = iota
	LimitCountMin
	LimitCountMax
)

func (l LimitCount) String() string {
	switch l {
	case LimitCountMin:
		return "min"
	case LimitCountMax:
		return "max"
	default:
		return "not_defined"
	}
}

// ParseLimitCount maps "min"/"max" (case-insensitive) to a LimitCount.
func ParseLimitCount(s string) (LimitCount, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return LimitCountMin, nil
	case "max":
		return LimitCountMax, nil
	default:
		return LimitCountNotDefined, fmt.Errorf("%w: unknown limit count %q", model.ErrInvalidArgument, s)
	}
}
