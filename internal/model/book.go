package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// now is the clock used for the publishing year check.
var now = time.Now

// Book is one catalog entry.
// Author and PublishingYear are optional: nil means "not defined", never an empty value.
// Two books are the same entry when their Name and Author match; see Equal.
type Book struct {
	Name           string   `json:"name"`
	Author         *string  `json:"author"`
	Genre          []string `json:"genre"`
	Count          int      `json:"count"`
	PublishingYear *int     `json:"publishingYear"`
}

// NewBook builds a validated Book. A nil genre becomes an empty list.
func NewBook(name string, author *string, genre []string, count int, publishingYear *int) (*Book, error) {
	if genre == nil {
		genre = []string{}
	}
	b := &Book{
		Name:           name,
		Author:         author,
		Genre:          genre,
		Count:          count,
		PublishingYear: publishingYear,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the entity invariants: non-negative count, a genre list that is not nil,
// and a publishing year that is not in the future (current UTC year at call time).
func (b *Book) Validate() error {
	err := validation.ValidateStruct(b,
		validation.Field(&b.Genre, validation.NotNil),
		validation.Field(&b.Count, validation.Min(0)),
		validation.Field(&b.PublishingYear, validation.Max(currentYear())),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// SetCount assigns the stock count, rejecting negative values.
func (b *Book) SetCount(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count value %d", ErrValidation, count)
	}
	b.Count = count
	return nil
}

// SetPublishingYear assigns the publishing year; nil clears it.
func (b *Book) SetPublishingYear(year *int) error {
	if year != nil && *year > currentYear() {
		return fmt.Errorf("%w: publishing year %d is after the current year", ErrValidation, *year)
	}
	b.PublishingYear = year
	return nil
}

// SetGenre replaces the genre list. The list itself may be empty but not nil.
func (b *Book) SetGenre(genre []string) error {
	if genre == nil {
		return fmt.Errorf("%w: genre must not be nil", ErrValidation)
	}
	b.Genre = genre
	return nil
}

// Equal reports whether b and other describe the same catalog entry.
// Only Name and Author take part; Count, Genre and PublishingYear are ignored.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Name == other.Name && equalOptional(b.Author, other.Author)
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func currentYear() int {
	return now().UTC().Year()
}
