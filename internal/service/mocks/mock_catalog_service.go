package mocks

import (
	"context"

	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) AddBook(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockCatalogService) AddBooks(ctx context.Context, books []*model.Book) error {
	args := m.Called(ctx, books)
	return args.Error(0)
}

func (m *MockCatalogService) BooksInStock(ctx context.Context, params repository.BooksInStockQueryParams) (*repository.AggregateResponse[model.Book], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AggregateResponse[model.Book]), args.Error(1)
}

func (m *MockCatalogService) BookWithLimitCount(ctx context.Context, which string) (*model.Book, error) {
	args := m.Called(ctx, which)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockCatalogService) Authors(ctx context.Context) ([]*string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*string), args.Error(1)
}

func (m *MockCatalogService) BooksWithNoAuthor(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockCatalogService) IncrementBooksCount(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCatalogService) AddFavorityGenreToFantasyBooks(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCatalogService) DeleteBooksWithCountMoreThan(ctx context.Context, value int) error {
	return m.Called(ctx, value).Error(0)
}

func (m *MockCatalogService) DeleteAllBooks(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
