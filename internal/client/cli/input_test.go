package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextWithDefault(rdr("\n"), "Resolution", "4K", &out)
	require.NoError(t, err)
	require.Equal(t, "4K", got)
	require.Contains(t, out.String(), "Resolution [4K]")

	got, err = GetTextWithDefault(rdr("HD\n"), "Resolution", "4K", &out)
	require.NoError(t, err)
	require.Equal(t, "HD", got)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("pw"), pw)

	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	_, err = GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "empty", input: []string{""}, expected: []string{}},
		{name: "commas and spaces", input: []string{"a, b  c,,d"}, expected: []string{"a", "b", "c", "d"}},
		{name: "duplicates ignore case", input: []string{"Rain rain", "RAIN"}, expected: []string{"Rain"}},
		{name: "several args", input: []string{"x,", "y"}, expected: []string{"x", "y"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ParseTags(tc.input...))
		})
	}
}
