package mongodb

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookcatalog/internal/converter"
	"bookcatalog/internal/database"
	"bookcatalog/internal/model"
	"bookcatalog/internal/repository"
)

const (
	// Books with a count strictly greater than this are in stock.
	inStockThreshold = 1

	favorityGenre  = "favority"
	fantasyPattern = "fantasy"

	countField = "total"
)

// BookMongo is a document store implementation of repository.BookRepository.
// It composes filters, updates and pipelines; documents are converted by package converter.
type BookMongo struct {
	books database.Collection
	log   zerolog.Logger
}

// NewBookMongo creates a repository over the given books collection.
func NewBookMongo(books database.Collection, l zerolog.Logger) *BookMongo {
	return &BookMongo{books: books, log: l.With().Str("component", "book_repository").Logger()}
}

var _ repository.BookRepository = (*BookMongo)(nil)

func (r *BookMongo) AddBook(ctx context.Context, book *model.Book) error {
	if book == nil {
		return fmt.Errorf("add book: %w: book is nil", model.ErrInvalidArgument)
	}
	// Fields are exported, so a book may not have come from model.NewBook.
	if err := book.Validate(); err != nil {
		return fmt.Errorf("add book: %w", err)
	}
	if _, err := r.books.InsertOne(ctx, converter.ToDocument(book)); err != nil {
		return fmt.Errorf("add book: %w", err)
	}
	return nil
}

func (r *BookMongo) AddBooks(ctx context.Context, books []*model.Book) error {
	if books == nil {
		return fmt.Errorf("add books: %w: books is nil", model.ErrInvalidArgument)
	}
	if len(books) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(books))
	for i, b := range books {
		if b == nil {
			return fmt.Errorf("add books: %w: book at index %d is nil", model.ErrInvalidArgument, i)
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("add books: book at index %d: %w", i, err)
		}
		docs = append(docs, converter.ToDocument(b))
	}

	res, err := r.books.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("add books: %w", err)
	}
	r.log.Debug().Int("inserted", len(res.InsertedIDs)).Msg("books inserted")
	return nil
}

// GetBooksInStock runs the in-stock pipeline. The limit is applied before the optional
// projection and sort, so sorting only orders the limited window. AggregateValue counts
// the documents the pipeline produced, so it reflects the limit too.
func (r *BookMongo) GetBooksInStock(ctx context.Context, params *repository.BooksInStockQueryParams) (*repository.AggregateResponse[model.Book], error) {
	if params == nil {
		return nil, fmt.Errorf("get books in stock: %w: params is nil", model.ErrInvalidArgument)
	}

	cur, err := r.books.Aggregate(ctx, booksInStockPipeline(params))
	if err != nil {
		return nil, fmt.Errorf("get books in stock: %w", err)
	}
	defer cur.Close(ctx)

	res := repository.NewAggregateResponse[model.Book]()

	if params.GetOnlyCount {
		if cur.Next(ctx) {
			var out struct {
				Total int `bson:"total"`
			}
			if err := cur.Decode(&out); err != nil {
				return nil, fmt.Errorf("get books in stock: %w: %w", model.ErrConversion, err)
			}
			res.AggregateValue = out.Total
		}
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("get books in stock: %w", err)
		}
		return res, nil
	}

	for cur.Next(ctx) {
		if params.ShowOnlyTitle {
			title, err := converter.TitleFromDocument(cur.Current)
			if err != nil {
				return nil, fmt.Errorf("get books in stock: %w", err)
			}
			res.Titles = append(res.Titles, title)
		} else {
			b, err := converter.FromDocument(cur.Current)
			if err != nil {
				return nil, fmt.Errorf("get books in stock: %w", err)
			}
			res.Items = append(res.Items, *b)
		}
		res.AggregateValue++
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("get books in stock: %w", err)
	}

	return res, nil
}

// booksInStockPipeline builds the stages in their fixed order: match, limit, project, sort, count.
func booksInStockPipeline(p *repository.BooksInStockQueryParams) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: converter.FieldCount, Value: bson.D{{Key: "$gt", Value: inStockThreshold}}}}}},
	}
	if p.Limit > 0 && p.Limit < repository.Unlimited {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(p.Limit)}})
	}
	if p.ShowOnlyTitle {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.D{{Key: converter.FieldName, Value: 1}}}})
	}
	if p.SortByTitle {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: converter.FieldName, Value: 1}}}})
	}
	if p.GetOnlyCount {
		pipeline = append(pipeline, bson.D{{Key: "$count", Value: countField}})
	}
	return pipeline
}

func (r *BookMongo) GetBookWithLimitCount(ctx context.Context, which repository.LimitCount) (*model.Book, error) {
	var direction int
	switch which {
	case repository.LimitCountMin:
		direction = 1
	case repository.LimitCountMax:
		direction = -1
	default:
		return nil, fmt.Errorf("get book with limit count: %w: limit value is not defined", model.ErrInvalidArgument)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: converter.FieldCount, Value: direction}}).
		SetLimit(1)

	cur, err := r.books.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("get book with %s count: %w", which, err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("get book with %s count: %w", which, err)
		}
		return nil, fmt.Errorf("get book with %s count: %w", which, model.ErrNotFound)
	}

	b, err := converter.FromDocument(cur.Current)
	if err != nil {
		return nil, fmt.Errorf("get book with %s count: %w", which, err)
	}
	return b, nil
}

func (r *BookMongo) GetAuthorsList(ctx context.Context) ([]*string, error) {
	values, err := r.books.Distinct(ctx, converter.FieldAuthor, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("get authors list: %w", err)
	}

	authors := make([]*string, 0, len(values))
	for _, v := range values {
		switch a := v.(type) {
		case nil:
			authors = append(authors, nil)
		case string:
			authors = append(authors, &a)
		default:
			return nil, fmt.Errorf("get authors list: %w: author of type %T", model.ErrConversion, v)
		}
	}
	return authors, nil
}

// GetBooksWithNoAuthorDefined matches an explicit null author only; documents missing the
// field or holding an empty string are not returned.
func (r *BookMongo) GetBooksWithNoAuthorDefined(ctx context.Context) ([]model.Book, error) {
	filter := bson.D{{Key: converter.FieldAuthor, Value: bson.D{{Key: "$type", Value: "null"}}}}

	cur, err := r.books.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get books with no author: %w", err)
	}
	defer cur.Close(ctx)

	books := make([]model.Book, 0)
	for cur.Next(ctx) {
		b, err := converter.FromDocument(cur.Current)
		if err != nil {
			return nil, fmt.Errorf("get books with no author: %w", err)
		}
		books = append(books, *b)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("get books with no author: %w", err)
	}
	return books, nil
}

func (r *BookMongo) IncrementBooksCount(ctx context.Context) error {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: converter.FieldCount, Value: int32(1)}}}}

	res, err := r.books.UpdateMany(ctx, bson.D{}, update)
	if err != nil {
		return fmt.Errorf("increment books count: %w", err)
	}
	r.log.Debug().Int64("matched", res.MatchedCount).Int64("modified", res.ModifiedCount).Msg("books count incremented")
	return nil
}

// AddFavorityGenreToFantasyBooks matches books with a genre entry containing "fantasy" and
// no entry containing "favority". $addToSet keeps the tag unique even if the filter is bypassed.
func (r *BookMongo) AddFavorityGenreToFantasyBooks(ctx context.Context) error {
	filter := bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: converter.FieldGenre, Value: bson.D{{Key: "$regex", Value: fantasyPattern}}}},
		bson.D{{Key: converter.FieldGenre, Value: bson.D{{Key: "$not", Value: primitive.Regex{Pattern: favorityGenre}}}}},
	}}}
	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: converter.FieldGenre, Value: favorityGenre}}}}

	res, err := r.books.UpdateMany(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("add favority genre: %w", err)
	}
	r.log.Debug().Int64("matched", res.MatchedCount).Int64("modified", res.ModifiedCount).Msg("favority genre added")
	return nil
}

func (r *BookMongo) DeleteBooksWithCountMoreThanValue(ctx context.Context, value int) error {
	filter := bson.D{{Key: converter.FieldCount, Value: bson.D{{Key: "$gt", Value: value}}}}

	res, err := r.books.DeleteMany(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete books with count more than %d: %w", value, err)
	}
	r.log.Debug().Int64("deleted", res.DeletedCount).Int("count_gt", value).Msg("books deleted")
	return nil
}

func (r *BookMongo) DeleteAllBooks(ctx context.Context) error {
	res, err := r.books.DeleteMany(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("delete all books: %w", err)
	}
	r.log.Debug().Int64("deleted", res.DeletedCount).Msg("all books deleted")
	return nil
}
