package mocks

import (
	"context"

	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockBookRepository struct {
	mock.Mock
}

var _ repository.BookRepository = (*MockBookRepository)(nil)

func (m *MockBookRepository) AddBook(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) AddBooks(ctx context.Context, books []*model.Book) error {
	args := m.Called(ctx, books)
	return args.Error(0)
}

func (m *MockBookRepository) GetBooksInStock(ctx context.Context, params *repository.BooksInStockQueryParams) (*repository.AggregateResponse[model.Book], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AggregateResponse[model.Book]), args.Error(1)
}

func (m *MockBookRepository) GetBookWithLimitCount(ctx context.Context, which repository.LimitCount) (*model.Book, error) {
	args := m.Called(ctx, which)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) GetAuthorsList(ctx context.Context) ([]*string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*string), args.Error(1)
}

func (m *MockBookRepository) GetBooksWithNoAuthorDefined(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookRepository) IncrementBooksCount(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookRepository) AddFavorityGenreToFantasyBooks(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteBooksWithCountMoreThanValue(ctx context.Context, value int) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteAllBooks(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
