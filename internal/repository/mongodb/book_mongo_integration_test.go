package mongodb_test

import (
	"context"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/config"
	"bookcatalog/internal/database"
	"bookcatalog/internal/fixture"
	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
	"bookcatalog/internal/repository/mongodb"
)

// seededRepo connects to MONGO_TEST_URI, creates a throwaway collection and loads the fixture.
func seededRepo(t *testing.T) (*mongodb.BookMongo, context.Context) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	collection := "books_" + uuid.NewString()
	store, err := database.NewMongo(config.MongoConfig{
		URI:               uri,
		Database:          "BooksDB_test",
		Collection:        collection,
		ConnectTimeoutSec: 5,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(func() {
		_ = store.DropCollection(context.Background(), collection)
		_ = store.Close(context.Background())
		cancel()
	})

	repo := mongodb.NewBookMongo(store.Books(), zerolog.Nop())
	require.NoError(t, repo.AddBooks(ctx, fixture.Books()))
	return repo, ctx
}

func names(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Name)
	}
	return out
}

func TestIntegration_GetBooksInStock(t *testing.T) {
	repo, ctx := seededRepo(t)

	t.Run("defaults", func(t *testing.T) {
		res, err := repo.GetBooksInStock(ctx, repository.NewBooksInStockQueryParams())
		require.NoError(t, err)
		assert.Len(t, res.Items, 4)
		assert.Equal(t, 4, res.AggregateValue)
		assert.NotContains(t, names(res.Items), "Dyadya Stiopa")
	})

	t.Run("sorted titles", func(t *testing.T) {
		res, err := repo.GetBooksInStock(ctx, &repository.BooksInStockQueryParams{
			SortByTitle: true, ShowOnlyTitle: true, Limit: repository.Unlimited,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Hobbit", "Kolobok", "Lord of the rings", "Repka"}, res.Titles)
		assert.Empty(t, res.Items)
		assert.Equal(t, 4, res.AggregateValue)
	})

	t.Run("count only", func(t *testing.T) {
		res, err := repo.GetBooksInStock(ctx, &repository.BooksInStockQueryParams{
			GetOnlyCount: true, Limit: repository.Unlimited,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, res.AggregateValue)
		assert.Empty(t, res.Items)
		assert.Empty(t, res.Titles)
	})

	t.Run("limit is applied before sort", func(t *testing.T) {
		res, err := repo.GetBooksInStock(ctx, &repository.BooksInStockQueryParams{
			SortByTitle: true, ShowOnlyTitle: true, Limit: 2,
		})
		require.NoError(t, err)
		require.Len(t, res.Titles, 2)
		assert.Subset(t, []string{"Hobbit", "Kolobok", "Lord of the rings", "Repka"}, res.Titles)
		assert.True(t, sort.StringsAreSorted(res.Titles), res.Titles)
		assert.Equal(t, 2, res.AggregateValue)
	})
}

func TestIntegration_GetBookWithLimitCount(t *testing.T) {
	repo, ctx := seededRepo(t)

	minBook, err := repo.GetBookWithLimitCount(ctx, repository.LimitCountMin)
	require.NoError(t, err)
	assert.Equal(t, "Dyadya Stiopa", minBook.Name)

	maxBook, err := repo.GetBookWithLimitCount(ctx, repository.LimitCountMax)
	require.NoError(t, err)
	assert.Equal(t, "Repka", maxBook.Name)

	require.NoError(t, repo.DeleteAllBooks(ctx))
	_, err = repo.GetBookWithLimitCount(ctx, repository.LimitCountMax)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestIntegration_Authors(t *testing.T) {
	repo, ctx := seededRepo(t)

	authors, err := repo.GetAuthorsList(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 3)

	var got []string
	nulls := 0
	for _, a := range authors {
		if a == nil {
			nulls++
			continue
		}
		got = append(got, *a)
	}
	assert.Equal(t, 1, nulls)
	assert.ElementsMatch(t, []string{"Tolkien", "Mihalkov"}, got)

	noAuthor, err := repo.GetBooksWithNoAuthorDefined(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Kolobok", "Repka"}, names(noAuthor))
}

func TestIntegration_Mutations(t *testing.T) {
	repo, ctx := seededRepo(t)

	require.NoError(t, repo.IncrementBooksCount(ctx))
	res, err := repo.GetBooksInStock(ctx, repository.NewBooksInStockQueryParams())
	require.NoError(t, err)
	assert.Equal(t, 5, res.AggregateValue)

	require.NoError(t, repo.AddFavorityGenreToFantasyBooks(ctx))
	require.NoError(t, repo.AddFavorityGenreToFantasyBooks(ctx))
	res, err = repo.GetBooksInStock(ctx, repository.NewBooksInStockQueryParams())
	require.NoError(t, err)
	for _, b := range res.Items {
		tagged := 0
		for _, g := range b.Genre {
			if g == "favority" {
				tagged++
			}
		}
		if b.Name == "Hobbit" || b.Name == "Lord of the rings" {
			assert.Equal(t, 1, tagged, b.Name)
		} else {
			assert.Zero(t, tagged, b.Name)
		}
	}

	// counts are now Hobbit 6, LOTR 4, Kolobok 11, Repka 12, Dyadya Stiopa 2
	require.NoError(t, repo.DeleteBooksWithCountMoreThanValue(ctx, 5))
	res, err = repo.GetBooksInStock(ctx, repository.NewBooksInStockQueryParams())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Lord of the rings", "Dyadya Stiopa"}, names(res.Items))

	require.NoError(t, repo.DeleteAllBooks(ctx))
	require.NoError(t, repo.DeleteAllBooks(ctx))
	res, err = repo.GetBooksInStock(ctx, repository.NewBooksInStockQueryParams())
	require.NoError(t, err)
	assert.Zero(t, res.AggregateValue)
}

func TestIntegration_RoundTrip(t *testing.T) {
	repo, ctx := seededRepo(t)
	hamlet := fixture.Book()

	require.NoError(t, repo.AddBook(ctx, hamlet))
	require.NoError(t, repo.AddBook(ctx, fixture.Book()))

	res, err := repo.GetBooksInStock(ctx, repository.NewBooksInStockQueryParams())
	require.NoError(t, err)

	var found []model.Book
	for _, b := range res.Items {
		if b.Equal(hamlet) {
			found = append(found, b)
		}
	}
	require.Len(t, found, 2)
	assert.Equal(t, *hamlet, found[0])
}
