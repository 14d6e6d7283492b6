package value

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path string
		want []Segment
		ok   bool
	}{
		{"name", []Segment{{Name: "name"}}, true},
		{"user.address.city", []Segment{{Name: "user"}, {Name: "address"}, {Name: "city"}}, true},
		{"items[0]", []Segment{{Name: "items", Indices: []int{0}}}, true},
		{"items[-1]", []Segment{{Name: "items", Indices: []int{-1}}}, true},
		{"items[-0]", []Segment{{Name: "items", Indices: []int{0}}}, true},
		{"m[0][1].x", []Segment{{Name: "m", Indices: []int{0, 1}}, {Name: "x"}}, true},
		{"", nil, false},
		{"[0]", nil, false},
		{"a.[0]", nil, false},
		{"a..b", nil, false},
		{"a.", nil, false},
		{"items[x]", nil, false},
		{"items[]", nil, false},
		{"items[1", nil, false},
		{"items[1]x", nil, false},
		{"items[+1]", nil, false},
		{"a]b", nil, false},
		{"items[99999999999999999999]", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ParsePath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegmentIndex(t *testing.T) {
	idx, ok := Segment{Name: "-2"}.Index()
	assert.True(t, ok)
	assert.Equal(t, -2, idx)

	_, ok = Segment{Name: "name"}.Index()
	assert.False(t, ok)
	_, ok = Segment{Name: "-"}.Index()
	assert.False(t, ok)
}

func TestResolveSimpleProperties(t *testing.T) {
	obj := Object(
		"string", "text",
		"number", 42,
		"boolean", true,
		"nullValue", nil,
		"zero", 0,
		"emptyString", "",
	)

	for _, key := range []string{"string", "number", "boolean", "nullValue", "zero", "emptyString"} {
		got, ok := Resolve(obj, key)
		require.True(t, ok, key)
		want, _ := obj.GetAttr(key)
		assert.True(t, want.Equal(got), key)
	}

	_, ok := Resolve(obj, "nonexistent")
	assert.False(t, ok)
	_, ok = Resolve(obj, "String")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestResolveNested(t *testing.T) {
	obj := Object("user", Object(
		"name", "Bob",
		"profile", Object("age", 25, "location", "Tokyo"),
	))

	got, ok := Resolve(obj, "user.profile.location")
	require.True(t, ok)
	assert.Equal(t, "Tokyo", got.String())

	for _, path := range []string{"user.nonexistent", "user.name.first", "nonexistent.property", "user.profile.age.x"} {
		_, ok := Resolve(obj, path)
		assert.False(t, ok, path)
	}
}

func TestResolveArrays(t *testing.T) {
	obj := Object(
		"items", Array("A", "B", "C", "D"),
		"users", Array(
			Object("name", "Alice", "age", 30),
			Object("name", "Bob", "age", 25),
			Object("name", "Charlie", "age", 35),
		),
		"matrix", Array(Array(1, 2), Array(3, 4)),
		"notAnArray", "string",
	)

	tests := []struct {
		path string
		want string
	}{
		{"items[0]", "A"},
		{"items[3]", "D"},
		{"items[-1]", "D"},
		{"items[-4]", "A"},
		{"items[-0]", "A"},
		{"users[0].name", "Alice"},
		{"users[1].age", "25"},
		{"users[-1].name", "Charlie"},
		{"matrix[1][0]", "3"},
		{"matrix[-1][-1]", "4"},
	}
	for _, tt := range tests {
		got, ok := Resolve(obj, tt.path)
		require.True(t, ok, tt.path)
		assert.Equal(t, tt.want, got.String(), tt.path)
	}

	for _, path := range []string{"items[4]", "items[-5]", "notAnArray[0]", "users[0][0]", "matrix[0][2]", "[0]"} {
		_, ok := Resolve(obj, path)
		assert.False(t, ok, path)
	}
}

func TestResolveOnScalars(t *testing.T) {
	for _, root := range []Value{Null(), FromInt(42), FromString("string"), FromBool(true)} {
		_, ok := Resolve(root, "property")
		assert.False(t, ok, "%#v", root)
	}
	_, ok := Resolve(Object("name", "Alice"), "")
	assert.False(t, ok)
}

func TestResolveNullIsPresent(t *testing.T) {
	got, ok := Resolve(Object("data", nil), "data")
	require.True(t, ok)
	assert.True(t, got.IsNull())

	_, ok = Resolve(Object("data", nil), "data.nested")
	assert.False(t, ok)
}

func TestResolveIndexRoundTrip(t *testing.T) {
	items := []any{"a", "b", "c", "d", "e"}
	root := Object("items", Array(items...))
	n := len(items)
	for k := -n; k < n; k++ {
		got, ok := Resolve(root, fmt.Sprintf("items[%d]", k))
		require.True(t, ok, k)
		assert.Equal(t, items[((k%n)+n)%n], got.String(), k)
	}
}
