package enumreflect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enumreflect "github.com/tempusfrangit/go-enumreflect"
)

func TestAsValue(t *testing.T) {
	got, ok := enumreflect.As[string](any("hello"))
	require.True(t, ok)
	assert.Equal(t, "hello", got)
}

func TestAsPointer(t *testing.T) {
	s := "hello"
	got, ok := enumreflect.As[string](any(&s))
	require.True(t, ok)
	assert.Equal(t, "hello", got)
}

func TestAsMismatch(t *testing.T) {
	_, ok := enumreflect.As[int](any("hello"))
	assert.False(t, ok)
}

func TestAsNilPointer(t *testing.T) {
	_, ok := enumreflect.As[string](any((*string)(nil)))
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	n := 1
	require.True(t, enumreflect.Set(any(&n), 5))
	assert.Equal(t, 5, n)
}

func TestSetRejectsValueEntry(t *testing.T) {
	// Entries from the read-only accessors are plain values and cannot be
	// written through.
	assert.False(t, enumreflect.Set(any(1), 5))
}

func TestSetRejectsWrongType(t *testing.T) {
	s := "x"
	assert.False(t, enumreflect.Set(any(&s), 5))
	assert.Equal(t, "x", s)
}

func TestSetRejectsNilPointer(t *testing.T) {
	assert.False(t, enumreflect.Set(any((*int)(nil)), 5))
}
