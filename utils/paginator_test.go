package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageDefaults(t *testing.T) {
	tests := []struct {
		name       string
		pageParam  string
		wantNumber int
	}{
		{"missing param", "", 1},
		{"garbage param", "abc", 1},
		{"zero", "0", 1},
		{"negative", "-3", 1},
		{"valid", "2", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.pageParam, 25, 10)
			assert.Equal(t, tt.wantNumber, page.Number)
		})
	}
}

func TestNewPageClampsToLastPage(t *testing.T) {
	page := NewPage("99", 25, 10)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 3, page.NumPages)
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrev())
}

func TestPageSizes(t *testing.T) {
	const total, perPage = 25, 10
	// Every page holds perPage items except the last one with the remainder
	first := NewPage("1", total, perPage)
	assert.Equal(t, 0, first.Offset())
	last := NewPage("3", total, perPage)
	assert.Equal(t, 20, last.Offset())
	assert.Equal(t, int64(total), last.Total)
	// total mod perPage items remain for the last page
	assert.Equal(t, 5, int(last.Total)-last.Offset())
}

func TestPageEvenSplit(t *testing.T) {
	page := NewPage("2", 20, 10)
	assert.Equal(t, 2, page.NumPages)
	assert.Equal(t, 10, page.Offset())
	assert.Equal(t, 10, int(page.Total)-page.Offset())
}

func TestPageEmptyList(t *testing.T) {
	page := NewPage("5", 0, 10)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrev())
}
