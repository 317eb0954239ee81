package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/codetex"
	main "github.com/fwojciec/codetex/cmd/codetex"
	"github.com/fwojciec/codetex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T, text string) *main.Main {
	t.Helper()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return text, nil
		},
	}
	m.Runner = &mock.Runner{
		RunFn: func(_ context.Context, code string) (*codetex.RunResult, error) {
			return &codetex.RunResult{Stdout: "ran " + code + "\n"}, nil
		},
	}
	return m
}

func TestMain_Help(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"--help"}, {"help"}, {"list", "-h"}} {
		m := newTestMain(t, deck)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), args, strings.NewReader(""), stdout, &bytes.Buffer{})

		require.NoError(t, err, "args %v", args)
		assert.Contains(t, stdout.String(), "Usage:", "args %v", args)
		assert.NotContains(t, stdout.String(), "You are running slide evaluation", "args %v", args)
	}
}

func TestMain_HelpListsCommands(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, deck)
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, &bytes.Buffer{})

	require.NoError(t, err)
	for _, name := range []string{"extract", "run", "list", "delete"} {
		assert.Contains(t, stdout.String(), name)
	}
}

func TestMain_ExtractIsDefault(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, deck)
	dir := filepath.Join(t.TempDir(), "out")
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--dir", dir},
		strings.NewReader("0\nexit\n"), stdout, &bytes.Buffer{})

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "You are running slide evaluation v0.0.1")
	assert.Contains(t, output, "Written 1 files to folder")
	assert.Contains(t, output, "ran print(1)")
	assert.Contains(t, output, "bye!")

	data, err := os.ReadFile(filepath.Join(dir, "slide-0-0.py"))
	require.NoError(t, err)
	assert.Equal(t, "print(1)", string(data))
}

func TestMain_ExtractFromFile(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, "")
	m.Fetcher = nil

	src := filepath.Join(t.TempDir(), "deck.tex")
	require.NoError(t, os.WriteFile(src, []byte(deck), 0644))
	dir := filepath.Join(t.TempDir(), "out")
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(),
		[]string{"extract", "--file", src, "--dir", dir, "--extension", ".txt", "--no-interactive"},
		strings.NewReader(""), stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "slide-0-0.txt"))
	assert.NotContains(t, stdout.String(), "slide number:")
}

func TestMain_CatalogRoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, deck)
	dir := filepath.Join(t.TempDir(), "out")
	ctx := context.Background()

	err := m.Run(ctx, []string{"extract", "--dir", dir, "--no-interactive"},
		strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	listOut := &bytes.Buffer{}
	err = m.Run(ctx, []string{"list"}, strings.NewReader(""), listOut, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, listOut.String(), "https://raw.githubusercontent.com/")
	assert.Contains(t, listOut.String(), "slides=1 blocks=1")

	runOut := &bytes.Buffer{}
	err = m.Run(ctx, []string{"run"}, strings.NewReader("0\n1\nexit\n"), runOut, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, runOut.String(), "ran print(1)")
	assert.Contains(t, runOut.String(), "Sorry, There is no example on slide 1!")

	id := strings.Fields(listOut.String())[0]

	err = m.Run(ctx, []string{"delete", id, "--force"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	emptyOut := &bytes.Buffer{}
	err = m.Run(ctx, []string{"list"}, strings.NewReader(""), emptyOut, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, emptyOut.String(), "No extractions found")
}

func TestMain_InvalidNaming(t *testing.T) {
	t.Parallel()

	m := newTestMain(t, deck)
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(),
		[]string{"--dir", t.TempDir(), "--prefix", "a/b", "--no-interactive"},
		strings.NewReader(""), &bytes.Buffer{}, stderr)

	require.Error(t, err)
	assert.Equal(t, codetex.EINVALID, codetex.ErrorCode(err))
	assert.Contains(t, stderr.String(), "error:")
}

func TestMain_CreatesDatabaseDirectoryOnRun(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	assert.Empty(t, m.DBPath)

	m.DBPath = filepath.Join(t.TempDir(), "nested", "state", "test.db")
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"list"}, strings.NewReader(""), stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.FileExists(t, m.DBPath)
	assert.Contains(t, stdout.String(), "No extractions found")
}
