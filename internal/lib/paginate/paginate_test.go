package paginate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	items := []string{"T0", "T1", "T2", "T3"}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []string
	}{
		{name: "middle window", limit: 2, offset: 1, want: []string{"T1", "T2"}},
		{name: "defaults", limit: 3, offset: 0, want: []string{"T0", "T1", "T2"}},
		{name: "limit beyond end", limit: 10, offset: 2, want: []string{"T2", "T3"}},
		{name: "offset at end", limit: 2, offset: 4, want: []string{}},
		{name: "offset past end", limit: 2, offset: 100, want: []string{}},
		{name: "zero limit", limit: 0, offset: 0, want: []string{}},
		{name: "negative offset", limit: 2, offset: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(items, tt.limit, tt.offset)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlice_MatchesWindowForAllBounds(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5}
	for offset := 0; offset <= len(items)+1; offset++ {
		for limit := 0; limit <= len(items)+1; limit++ {
			got := Slice(items, limit, offset)

			want := []int{}
			for i := offset; i < offset+limit && i < len(items); i++ {
				want = append(want, items[i])
			}
			assert.Equal(t, want, got, "limit=%d offset=%d", limit, offset)
		}
	}
}

func TestSlice_ReturnsCopy(t *testing.T) {
	items := []int{1, 2, 3}
	got := Slice(items, 2, 0)
	got[0] = 100

	assert.Equal(t, 1, items[0])
}

func TestParams(t *testing.T) {
	limit, offset, err := Params(url.Values{}, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, limit)
	assert.Equal(t, 0, offset)

	limit, offset, err = Params(url.Values{"limit": {"2"}, "offset": {"1"}}, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, limit)
	assert.Equal(t, 1, offset)

	_, _, err = Params(url.Values{"limit": {"-1"}}, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, _, err = Params(url.Values{"offset": {"abc"}}, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidParam)
}
