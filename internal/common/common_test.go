package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	none := None[string]()
	_, ok := none.Get()
	assert.False(t, ok)
	assert.Equal(t, "x", none.OrElse("x"))
	assert.Equal(t, Optional[string]{}, none)

	some := Some("738774007")
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "738774007", v)
	assert.NotEqual(t, none, some)
	assert.Equal(t, Some("738774007"), some)
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "c": 2, "a": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}

func TestAppendUnique(t *testing.T) {
	s, added := AppendUnique([]string{"a"}, "b")
	assert.True(t, added)
	assert.Equal(t, []string{"a", "b"}, s)

	s, added = AppendUnique(s, "a")
	assert.False(t, added)
	assert.Equal(t, []string{"a", "b"}, s)
}

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsSingle([]int{1, 2}))

	set := Set("x", "y", "x")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "y")
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"owl", "owl", 0},
		{"", "krss", 4},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"OWL", "owl", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, EditDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, EditDistance(tt.b, tt.a))
		})
	}
}

func TestClosest(t *testing.T) {
	modes := []string{"krss", "owl", "owlf"}

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "krs", want: "krss", wantOK: true},
		{input: "OWLF", want: "owlf", wantOK: true},
		{input: "owlx", want: "owl", wantOK: true},
		{input: "turtle"},
		{input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Closest(tt.input, modes, 1)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
