package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(1, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                string
		n, page, size       int
		start, end, clamped int
	}{
		{"first page", 23, 0, 10, 0, 10, 0},
		{"last partial page", 23, 2, 10, 20, 23, 2},
		{"past the end", 23, 9, 10, 20, 23, 2},
		{"negative page", 23, -1, 10, 0, 10, 0},
		{"empty", 0, 3, 10, 0, 0, 0},
		{"zero size uses default", 15, 1, 0, 10, 15, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, clamped := Window(tt.n, tt.page, tt.size)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.clamped, clamped)
		})
	}
}

func TestState_Next(t *testing.T) {
	s, err := Idle.Next(EventFetch)
	assert.NoError(t, err)
	assert.Equal(t, Loading, s)

	s, err = Loading.Next(EventSucceed)
	assert.NoError(t, err)
	assert.Equal(t, Loaded, s)

	s, err = Loading.Next(EventFail)
	assert.NoError(t, err)
	assert.Equal(t, Failed, s)

	s, err = Failed.Next(EventFetch)
	assert.NoError(t, err)
	assert.Equal(t, Loading, s)

	_, err = Loaded.Next(EventSucceed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = Idle.Next(EventFail)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
