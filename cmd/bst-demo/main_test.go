package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/op/go-logging.v1"
)

func TestReadWords(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "words.txt")
	err := os.WriteFile(filename, []byte("kiwi\n  apple \n\nbanana\r\n"), 0644)
	assert.NoError(t, err)

	words, err := readWords(filename)
	assert.NoError(t, err)
	assert.Equal(t, []string{"kiwi", "apple", "banana"}, words)
}

func TestReadWordsMissingFile(t *testing.T) {
	_, err := readWords(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReplay(t *testing.T) {
	initLogging(int(logging.WARNING))
	out := captureStdout(t, replay)

	assert.True(t, strings.HasPrefix(out, "Binary Search Tree (BST):\n"+
		"Number of Nodes: 5\n"+
		"Longest Word: banana\n"+
		"Shortest Word: kiwi\n"+
		"Contains \"banana\": true\n"+
		"Contains \"grape\": false\n"), out)
	assert.Contains(t, out, "The tree is empty.\n")
	assert.Contains(t, out, "Contains \"date\": false\n")
	assert.Contains(t, out, "Contains \"fig\": true\n")
	// the cached shortest word outlives the removal of "fig"
	assert.True(t, strings.HasSuffix(out, "Binary Search Tree (BST):\n"+
		"Number of Nodes: 1\n"+
		"Longest Word: elderberry\n"+
		"Shortest Word: fig\n"+
		"elderberry\n"), out)
}

func TestInitLogging(t *testing.T) {
	dataSet := []struct {
		verbosity int
		expected  logging.Level
	}{
		{-1, logging.CRITICAL},
		{0, logging.CRITICAL},
		{3, logging.NOTICE},
		{5, logging.DEBUG},
		{9, logging.DEBUG},
	}

	for _, d := range dataSet {
		initLogging(d.verbosity)
		assert.Equal(t, d.expected, logging.GetLevel("bst-demo"), d.verbosity)
	}
}

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	assert.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	out := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		out <- string(b)
	}()
	f()
	w.Close()
	return <-out
}
