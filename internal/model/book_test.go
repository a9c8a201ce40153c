package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewBook(t *testing.T) {
	year := time.Now().UTC().Year()

	tests := []struct {
		name    string
		count   int
		year    *int
		wantErr error
	}{
		{name: "valid with year", count: 5, year: intPtr(2014)},
		{name: "valid without year", count: 0, year: nil},
		{name: "current year is allowed", count: 1, year: intPtr(year)},
		{name: "negative count", count: -1, year: nil, wantErr: ErrValidation},
		{name: "future year", count: 1, year: intPtr(year + 1), wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBook("Hobbit", strPtr("Tolkien"), []string{"fantasy"}, tt.count, tt.year)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.count, b.Count)
			assert.Equal(t, tt.year, b.PublishingYear)
		})
	}
}

func TestNewBook_NilGenreDefaultsToEmpty(t *testing.T) {
	b, err := NewBook("Kolobok", nil, nil, 10, nil)
	require.NoError(t, err)
	assert.NotNil(t, b.Genre)
	assert.Empty(t, b.Genre)
	assert.Nil(t, b.Author)
}

func TestBook_Validate(t *testing.T) {
	t.Run("nil genre", func(t *testing.T) {
		b := &Book{Name: "Repka", Count: 1}
		assert.ErrorIs(t, b.Validate(), ErrValidation)
	})

	t.Run("year is checked against the clock at call time", func(t *testing.T) {
		orig := now
		defer func() { now = orig }()

		b := &Book{Name: "Repka", Genre: []string{}, PublishingYear: intPtr(2030)}
		now = func() time.Time { return time.Date(2029, 6, 1, 0, 0, 0, 0, time.UTC) }
		assert.ErrorIs(t, b.Validate(), ErrValidation)

		now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }
		assert.NoError(t, b.Validate())
	})
}

func TestBook_Setters(t *testing.T) {
	b, err := NewBook("Hamlet", strPtr("W. Shakespeare"), []string{"Classics"}, 10, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, b.SetCount(-1), ErrValidation)
	assert.Equal(t, 10, b.Count)
	assert.NoError(t, b.SetCount(0))
	assert.Equal(t, 0, b.Count)

	next := time.Now().UTC().Year() + 1
	assert.ErrorIs(t, b.SetPublishingYear(&next), ErrValidation)
	assert.Nil(t, b.PublishingYear)
	assert.NoError(t, b.SetPublishingYear(intPtr(2004)))
	assert.Equal(t, 2004, *b.PublishingYear)
	assert.NoError(t, b.SetPublishingYear(nil))
	assert.Nil(t, b.PublishingYear)

	assert.ErrorIs(t, b.SetGenre(nil), ErrValidation)
	assert.Equal(t, []string{"Classics"}, b.Genre)
	assert.NoError(t, b.SetGenre([]string{}))
	assert.Empty(t, b.Genre)
}

func TestBook_Equal(t *testing.T) {
	a := &Book{Name: "Hobbit", Author: strPtr("Tolkien"), Genre: []string{"fantasy"}, Count: 5}
	sameKeyOtherStock := &Book{Name: "Hobbit", Author: strPtr("Tolkien"), Genre: []string{}, Count: 42, PublishingYear: intPtr(1999)}
	otherName := &Book{Name: "Lord of the rings", Author: strPtr("Tolkien"), Genre: []string{"fantasy"}, Count: 5}
	noAuthor := &Book{Name: "Hobbit", Genre: []string{"fantasy"}, Count: 5}

	assert.True(t, a.Equal(sameKeyOtherStock))
	assert.False(t, a.Equal(otherName))
	assert.False(t, a.Equal(noAuthor))
	assert.True(t, noAuthor.Equal(&Book{Name: "Hobbit"}))
	assert.False(t, a.Equal(nil))

	var nilBook *Book
	assert.True(t, nilBook.Equal(nil))
}
