package strfmt

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type obj = map[string]any

func TestFormatScenarios(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"indexed", "Hello, {0}! It's {1} today.", []any{"World", "sunny"}, "Hello, World! It's sunny today."},
		{"named", "Hello, {name}! You are {age} years old.", []any{obj{"name": "Alice", "age": 25}}, "Hello, Alice! You are 25 years old."},
		{"nested", "User: {user.name}, Email: {user.email}", []any{obj{"user": obj{"name": "Charlie", "email": "c@e.com"}}}, "User: Charlie, Email: c@e.com"},
		{"negative index", "Last: {items[-1]}", []any{obj{"items": []string{"A", "B", "C"}}}, "Last: C"},
		{"defaults", "Name: {name|Unknown}, Age: {age|N/A}", []any{obj{"age": 25}}, "Name: Unknown, Age: 25"},
		{"pad", "ID: {id:pad(4,0)}", []any{obj{"id": 42}}, "ID: 0042"},
		{"escapes", "Literal {{0}} and value {0}", []any{"test"}, "Literal {0} and value test"},
		{"out of range", "Item: {items[10]}", []any{obj{"items": []string{"A", "B"}}}, "Item: {items[10]}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.args...))
		})
	}
}

func TestFormatIndexed(t *testing.T) {
	tests := []struct {
		template string
		args     []any
		want     string
	}{
		{"{0} and {1}", []any{"first", "second"}, "first and second"},
		{"{1} {0} {1}", []any{"a", "b"}, "b a b"},
		{"{-1}", []any{"a", "b"}, "b"},
		{"{2}", []any{"a", "b"}, "{2}"},
		{"{-3}", []any{"a", "b"}, "{-3}"},
		{"{0}", nil, "{0}"},
		{"{0|none}", nil, "none"},
		{"Number: {0}, Object: {1}, Array: {2}", []any{123, obj{"key": "value"}, []int{1, 2, 3}}, "Number: 123, Object: [object Object], Array: 1,2,3"},
		{"Array: {0}", []any{[]int{1, 2, 3}}, "Array: 1,2,3"},
		{"{0[1]}", []any{[]string{"x", "y"}}, "y"},
		{"{0.name}", []any{obj{"name": "Alice"}, "extra"}, "Alice"},
		{"{1.tags[-1]}", []any{"x", obj{"tags": []string{"a", "b"}}}, "b"},
		{"{name}", []any{"Alice"}, "{name}"},
		{"Index {0}, Named {name}, Default {missing|def}", []any{"first", "second"}, "Index first, Named {name}, Default def"},
		{"{0} {1} {2}", []any{true, nil, 1.5}, "true null 1.5"},
		{"{0|fallback}", []any{nil}, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.args...))
		})
	}
}

func TestFormatNamed(t *testing.T) {
	data := obj{
		"user": obj{
			"name":    "alice",
			"address": obj{"city": "Tokyo"},
		},
		"items":   []int{1, 2, 42},
		"count":   3,
		"nothing": nil,
		"matrix":  [][]int{{1, 2}, {3, 4}},
		"data": []any{
			obj{"items": []any{obj{"name": "first"}, obj{"name": "second"}}},
		},
	}
	tests := []struct {
		template string
		want     string
	}{
		{"Hello {{escaped}}, {user.name:upper|Unknown}! You have {items[-1]:pad(3,0)} {count:plural(item,items)} at {user.address.city|Home}.",
			"Hello {escaped}, ALICE! You have 042 items at Tokyo."},
		{"Nested: {data[0].items[1].name}", "Nested: second"},
		{"{matrix[1][0]}{matrix[-1][-1]}", "34"},
		{"{nothing}", "null"},
		{"{nothing|empty}", "empty"},
		{"{nothing.deeper}", "{nothing.deeper}"},
		{"{user}", "[object Object]"},
		{"{user.address.zip|-}", "-"},
		{"{user.name|}", "alice"},
		{"{missing|}", ""},
		{"{missing|a|b}", "a|b"},
		{"{missing|x:y}", "x:y"},
		{"{missing:upper|fallback}", "FALLBACK"},
		{"{ user.name }", "alice"},
		{"{User.name}", "{User.name}"},
		{"{0}", "{0}"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, data))
		})
	}
}

func TestFormatDegradesSoftly(t *testing.T) {
	data := obj{"name": "Alice", "text": "hello"}
	tests := []struct {
		template string
		want     string
	}{
		{"", ""},
		{"Bad: {unclosed, Good: {name}", "Bad: {unclosed, Good: {name}"},
		{"Open {name", "Open {name"},
		{"{name} {", "Alice {"},
		{"Value: {text:invalid-formatter-name!@#}", "Value: hello"},
		{"Value: {text:nonExistentFormatter}", "Value: hello"},
		{"{text:upper(}", "hello"},
		{"{text:a:b}", "hello"},
		{"{}", "{}"},
		{"{ }", "{ }"},
		{"{:upper}", "{:upper}"},
		{"{a..b}", "{a..b}"},
		{"{[0]|d}", "d"},
		{"{{}} {{test}}", "{} {test}"},
		{"}}{{", "}{"},
		{"a}b", "a}b"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, data))
		})
	}
}

func TestFormatDoesNotReexpand(t *testing.T) {
	got := Format("{a} {b}", obj{"a": "{b}", "b": "x"})
	assert.Equal(t, "{b} x", got)
}

func TestFormatStructData(t *testing.T) {
	type address struct {
		City string `json:"city"`
	}
	type user struct {
		Name    string   `json:"name"`
		Address *address `json:"address"`
		Tags    []string `json:"tags"`
	}
	got := Format("{name} lives in {address.city} ({tags[0]})", user{
		Name:    "Bob",
		Address: &address{City: "Osaka"},
		Tags:    []string{"admin"},
	})
	assert.Equal(t, "Bob lives in Osaka (admin)", got)
}

func TestFormatWithOptions(t *testing.T) {
	reverse := func(v string, _ []string) string {
		r := []rune(v)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r)
	}
	data := obj{"text": "hello"}

	got := Format("Reversed: {text:reverse}", data, Options{Formatters: map[string]Formatter{"reverse": reverse}})
	assert.Equal(t, "Reversed: olleh", got)

	got = Format("Custom upper: {text:upper}", data, &Options{Formatters: map[string]Formatter{
		"upper": func(v string, _ []string) string { return "[" + strings.ToUpper(v) + "]" },
	}})
	assert.Equal(t, "Custom upper: [HELLO]", got)

	got = Format("Repeat: {text:repeat(3)}", data, map[string]any{
		"formatters": map[string]any{
			"repeat": func(v string, args []string) string {
				n, _ := strconv.Atoi(args[0])
				return strings.Repeat(v, n)
			},
		},
	})
	assert.Equal(t, "Repeat: hellohellohello", got)

	got = Format("Value: {text}", data, map[string]any{"formatters": map[string]any{}})
	assert.Equal(t, "Value: hello", got)

	// The overlay is per call.
	assert.Equal(t, "hello", Format("{text:reverse}", data))
}

func TestFormatRecoversFormatterPanic(t *testing.T) {
	env := NewEnvironment()
	env.AddFormatter("boom", func(string, []string) string { panic("kaboom") })

	assert.Equal(t, "x=1 y=2", env.Format("x={0:boom} y={1}", 1, 2))
}

func TestFormatInvariants(t *testing.T) {
	t.Run("brace-free text is unchanged", func(t *testing.T) {
		for _, s := range []string{"", "plain", "日本語 text", "a|b:c(d)[0].e"} {
			assert.Equal(t, s, Format(s))
			assert.Equal(t, s, Format(s, "arg"))
		}
	})

	t.Run("doubled braces are identity", func(t *testing.T) {
		for _, s := range []string{"{x}", "{{", "}}", "a{b}c{", "}{", "{0} {name|d}", "{}"} {
			doubled := strings.ReplaceAll(strings.ReplaceAll(s, "{", "{{"), "}", "}}")
			assert.Equal(t, s, Format(doubled, obj{"x": 1, "name": "n"}), doubled)
		}
	})

	t.Run("named renders value", func(t *testing.T) {
		for _, v := range []any{"s", 42, 1.5, true, nil, []any{1, "a"}, obj{"k": 1}} {
			assert.Equal(t, FromAny(v).String(), Format("{x}", obj{"x": v}))
		}
	})

	t.Run("indexed renders value", func(t *testing.T) {
		args := []any{"zero", 1, false, 2.5, []int{7, 8}}
		for k := range args {
			assert.Equal(t, FromAny(args[k]).String(), Format(fmt.Sprintf("{%d}", k), args...))
		}
	})

	t.Run("default fills missing data", func(t *testing.T) {
		assert.Equal(t, "[D]", Format("[{nope|D}]", obj{"x": 1}))
		assert.Equal(t, "[D]", Format("[{5|D}]", "a", "b"))
	})

	t.Run("unknown formatter equals stripped template", func(t *testing.T) {
		data := obj{"a": "x", "b": 2}
		assert.Equal(t, Format("{a} and {b|z}", data), Format("{a:nosuch} and {b:nosuch(1,2)|z}", data))
	})
}
