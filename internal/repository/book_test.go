package repository

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookcatalog/internal/model"
)

func TestNewBooksInStockQueryParams(t *testing.T) {
	p := NewBooksInStockQueryParams()

	assert.False(t, p.SortByTitle)
	assert.False(t, p.ShowOnlyTitle)
	assert.False(t, p.GetOnlyCount)
	assert.Equal(t, math.MaxInt, p.Limit)
}

func TestNewAggregateResponse(t *testing.T) {
	r := NewAggregateResponse[model.Book]()

	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
	assert.NotNil(t, r.Titles)
	assert.Empty(t, r.Titles)
	assert.Zero(t, r.AggregateValue)
}

func TestParseLimitCount(t *testing.T) {
	tests := []struct {
		in      string
		want    LimitCount
		wantErr bool
	}{
		{in: "min", want: LimitCountMin},
		{in: "MAX", want: LimitCountMax},
		{in: " max ", want: LimitCountMax},
		{in: "", want: LimitCountNotDefined, wantErr: true},
		{in: "median", want: LimitCountNotDefined, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLimitCount(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLimitCount_String(t *testing.T) {
	assert.Equal(t, "min", LimitCountMin.String())
	assert.Equal(t, "max", LimitCountMax.String())
	assert.Equal(t, "not_defined", LimitCountNotDefined.String())
}
