package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadQueryEditing(t *testing.T) {
	var seen []string
	got, err := ReadQuery(strings.NewReader("parx\x7fis\r"), "", func(q string) { seen = append(seen, q) })

	require.NoError(t, err)
	assert.Equal(t, "paris", got)
	assert.Equal(t, []string{"", "p", "pa", "par", "parx", "par", "pari", "paris"}, seen)
}

func TestReadQueryCancel(t *testing.T) {
	_, err := ReadQuery(strings.NewReader("ab\x03cd"), "", func(string) {})
	assert.ErrorIs(t, err, ErrInputCanceled)
}

func TestReadQueryEOFReturnsTyped(t *testing.T) {
	got, err := ReadQuery(strings.NewReader("abc"), "", func(string) {})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestReadQueryInitialAndIgnoredKeys(t *testing.T) {
	got, err := ReadQuery(strings.NewReader("\x1b\t!\n"), "Rome", func(string) {})
	require.NoError(t, err)
	assert.Equal(t, "Rome!", got)

	got, err = ReadQuery(strings.NewReader("\x7f\x08\r"), "", func(string) {})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLineEditorFeed(t *testing.T) {
	e := &lineEditor{}

	done, canceled, changed := e.feed('a')
	assert.False(t, done)
	assert.False(t, canceled)
	assert.True(t, changed)

	_, _, changed = e.feed(keyBackspace)
	assert.True(t, changed)
	_, _, changed = e.feed(keyBackspace)
	assert.False(t, changed, "backspace on empty input is a no-op")

	done, canceled, _ = e.feed('\r')
	assert.True(t, done)
	assert.False(t, canceled)

	done, canceled, _ = e.feed(keyCtrlC)
	assert.True(t, done)
	assert.True(t, canceled)
}

func TestResolvePick(t *testing.T) {
	items := []string{"London", "Paris"}

	assert.Equal(t, "London", ResolvePick(items, ""))
	assert.Equal(t, "Paris", ResolvePick(items, "par"))
	assert.Equal(t, "Berlin", ResolvePick(items, "Berlin"))
	assert.Equal(t, "x", ResolvePick(nil, "x"))
}
