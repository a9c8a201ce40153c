// Package converter maps catalog books to and from their stored document form.
// All knowledge of field names and BSON value types lives here.
package converter

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"bookcatalog/internal/model"
)

// Stored field names. They are shared with existing data and must not change.
const (
	FieldName           = "name"
	FieldAuthor         = "author"
	FieldGenre          = "genre"
	FieldCount          = "count"
	FieldPublishingYear = "publishingYear"
)

// ToDocument encodes a book. Optional values that are not defined are written as BSON null,
// never omitted. A nil book yields a nil document.
func ToDocument(b *model.Book) bson.D {
	if b == nil {
		return nil
	}

	genre := make(bson.A, 0, len(b.Genre))
	for _, g := range b.Genre {
		genre = append(genre, g)
	}

	return bson.D{
		{Key: FieldName, Value: b.Name},
		{Key: FieldAuthor, Value: nullableString(b.Author)},
		{Key: FieldGenre, Value: genre},
		{Key: FieldCount, Value: integer(b.Count)},
		{Key: FieldPublishingYear, Value: nullableInt(b.PublishingYear)},
	}
}

// FromDocument decodes a stored document. A nil document yields a nil book.
// Missing fields, unexpected value types and invariant violations all wrap model.ErrConversion.
func FromDocument(doc bson.Raw) (*model.Book, error) {
	if doc == nil {
		return nil, nil
	}

	name, err := lookupString(doc, FieldName)
	if err != nil {
		return nil, err
	}
	author, err := lookupString(doc, FieldAuthor)
	if err != nil {
		return nil, err
	}
	genre, err := lookupStrings(doc, FieldGenre)
	if err != nil {
		return nil, err
	}
	count, err := lookupInt(doc, FieldCount)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, fmt.Errorf("%w: field %q is null", model.ErrConversion, FieldCount)
	}
	year, err := lookupInt(doc, FieldPublishingYear)
	if err != nil {
		return nil, err
	}

	b := &model.Book{
		Author:         author,
		Genre:          genre,
		Count:          *count,
		PublishingYear: year,
	}
	if name != nil {
		b.Name = *name
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrConversion, err)
	}
	return b, nil
}

// TitleFromDocument reads only the title of a projected document. A null title reads as "".
func TitleFromDocument(doc bson.Raw) (string, error) {
	name, err := lookupString(doc, FieldName)
	if err != nil {
		return "", err
	}
	if name == nil {
		return "", nil
	}
	return *name, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return integer(*i)
}

// integer keeps values in int32 like the existing data, widening only when they do not fit.
func integer(i int) any {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return int32(i)
	}
	return int64(i)
}

func lookup(doc bson.Raw, key string) (bson.RawValue, error) {
	rv, err := doc.LookupErr(key)
	if err != nil {
		return bson.RawValue{}, fmt.Errorf("%w: field %q: %w", model.ErrConversion, key, err)
	}
	return rv, nil
}

func lookupString(doc bson.Raw, key string) (*string, error) {
	rv, err := lookup(doc, key)
	if err != nil {
		return nil, err
	}
	if rv.Type == bson.TypeNull {
		return nil, nil
	}
	s, ok := rv.StringValueOK()
	if !ok {
		return nil, typeError(key, "string", rv)
	}
	return &s, nil
}

func lookupInt(doc bson.Raw, key string) (*int, error) {
	rv, err := lookup(doc, key)
	if err != nil {
		return nil, err
	}

	var i int
	switch rv.Type {
	case bson.TypeNull:
		return nil, nil
	case bson.TypeInt32:
		i = int(rv.Int32())
	case bson.TypeInt64:
		i = int(rv.Int64())
	default:
		return nil, typeError(key, "int32", rv)
	}
	return &i, nil
}

func lookupStrings(doc bson.Raw, key string) ([]string, error) {
	rv, err := lookup(doc, key)
	if err != nil {
		return nil, err
	}
	arr, ok := rv.ArrayOK()
	if !ok {
		return nil, typeError(key, "array", rv)
	}
	values, err := arr.Values()
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", model.ErrConversion, key, err)
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.StringValueOK()
		if !ok {
			return nil, typeError(key, "array of strings", v)
		}
		out = append(out, s)
	}
	return out, nil
}

func typeError(key, want string, rv bson.RawValue) error {
	return fmt.Errorf("%w: field %q: expected %s, got %s", model.ErrConversion, key, want, rv.Type)
}
