package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
)

// CatalogService defines the book catalog use cases exposed to transports.
type CatalogService interface {
	// AddBook validates and stores one book.
	AddBook(ctx context.Context, book *model.Book) error

	// AddBooks validates every book, then stores them in one bulk call.
	// Nothing is stored if any book is invalid.
	AddBooks(ctx context.Context, books []*model.Book) error

	// BooksInStock returns books with more than one copy. A non-positive limit means no limit.
	BooksInStock(ctx context.Context, params repository.BooksInStockQueryParams) (*repository.AggregateResponse[model.Book], error)

	// BookWithLimitCount returns the book with the "min" or "max" count.
	BookWithLimitCount(ctx context.Context, which string) (*model.Book, error)

	// Authors returns distinct authors; a nil entry stands for books without an author.
	Authors(ctx context.Context) ([]*string, error)

	// BooksWithNoAuthor returns books whose author is undefined.
	BooksWithNoAuthor(ctx context.Context) ([]model.Book, error)

	IncrementBooksCount(ctx context.Context) error
	AddFavorityGenreToFantasyBooks(ctx context.Context) error
	DeleteBooksWithCountMoreThan(ctx context.Context, value int) error
	DeleteAllBooks(ctx context.Context) error
}

type catalogService struct {
	repo repository.BookRepository
	log  zerolog.Logger
}

// NewCatalogService constructs a CatalogService over repo.
func NewCatalogService(repo repository.BookRepository, l zerolog.Logger) CatalogService {
	return &catalogService{repo: repo, log: l.With().Str("component", "catalog_service").Logger()}
}

// logger prefers the request-scoped logger carried by ctx, which holds the request id.
func (s *catalogService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		scoped := l.With().Str("component", "catalog_service").Logger()
		return &scoped
	}
	return &s.log
}

func (s *catalogService) AddBook(ctx context.Context, book *model.Book) error {
	if book == nil {
		return fmt.Errorf("%w: book is required", model.ErrInvalidArgument)
	}
	if err := book.Validate(); err != nil {
		return err
	}
	if err := s.repo.AddBook(ctx, book); err != nil {
		return err
	}
	s.logger(ctx).Info().Str("name", book.Name).Msg("book added")
	return nil
}

func (s *catalogService) AddBooks(ctx context.Context, books []*model.Book) error {
	if books == nil {
		return fmt.Errorf("%w: books are required", model.ErrInvalidArgument)
	}
	for i, b := range books {
		if b == nil {
			return fmt.Errorf("%w: book at index %d is null", model.ErrInvalidArgument, i)
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("book at index %d: %w", i, err)
		}
	}
	if err := s.repo.AddBooks(ctx, books); err != nil {
		return err
	}
	s.logger(ctx).Info().Int("count", len(books)).Msg("books added")
	return nil
}

func (s *catalogService) BooksInStock(ctx context.Context, params repository.BooksInStockQueryParams) (*repository.AggregateResponse[model.Book], error) {
	if params.Limit <= 0 {
		params.Limit = repository.Unlimited
	}
	return s.repo.GetBooksInStock(ctx, &params)
}

func (s *catalogService) BookWithLimitCount(ctx context.Context, which string) (*model.Book, error) {
	lc, err := repository.ParseLimitCount(which)
	if err != nil {
		return nil, err
	}
	return s.repo.GetBookWithLimitCount(ctx, lc)
}

func (s *catalogService) Authors(ctx context.Context) ([]*string, error) {
	return s.repo.GetAuthorsList(ctx)
}

func (s *catalogService) BooksWithNoAuthor(ctx context.Context) ([]model.Book, error) {
	return s.repo.GetBooksWithNoAuthorDefined(ctx)
}

func (s *catalogService) IncrementBooksCount(ctx context.Context) error {
	if err := s.repo.IncrementBooksCount(ctx); err != nil {
		return err
	}
	s.logger(ctx).Info().Msg("books count incremented")
	return nil
}

func (s *catalogService) AddFavorityGenreToFantasyBooks(ctx context.Context) error {
	if err := s.repo.AddFavorityGenreToFantasyBooks(ctx); err != nil {
		return err
	}
	s.logger(ctx).Info().Msg("fantasy books tagged")
	return nil
}

func (s *catalogService) DeleteBooksWithCountMoreThan(ctx context.Context, value int) error {
	if err := s.repo.DeleteBooksWithCountMoreThanValue(ctx, value); err != nil {
		return err
	}
	s.logger(ctx).Info().Int("count_gt", value).Msg("books deleted")
	return nil
}

func (s *catalogService) DeleteAllBooks(ctx context.Context) error {
	if err := s.repo.DeleteAllBooks(ctx); err != nil {
		return err
	}
	s.logger(ctx).Warn().Msg("all books deleted")
	return nil
}
