package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testing_util "github.com/navijation/njheap/util/testing"
)

func TestHeapSortLines(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		var out bytes.Buffer
		err := heapSortLines(strings.NewReader("pear\napple\nbanana\n"), &out, false)
		require.NoError(t, err)
		assert.Equal(t, "apple\nbanana\npear\n", out.String())
	})

	t.Run("descending", func(t *testing.T) {
		var out bytes.Buffer
		err := heapSortLines(strings.NewReader("pear\napple\nbanana\n"), &out, true)
		require.NoError(t, err)
		assert.Equal(t, "pear\nbanana\napple\n", out.String())
	})

	t.Run("empty input", func(t *testing.T) {
		var out bytes.Buffer
		err := heapSortLines(strings.NewReader(""), &out, false)
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}

func TestTopKLines(t *testing.T) {
	input := "delta\nalpha\necho\ncharlie\nbravo\n"

	t.Run("smallest", func(t *testing.T) {
		var out bytes.Buffer
		err := topKLines(strings.NewReader(input), &out, 3, false)
		require.NoError(t, err)
		assert.Equal(t, "alpha\nbravo\ncharlie\n", out.String())
	})

	t.Run("largest", func(t *testing.T) {
		var out bytes.Buffer
		err := topKLines(strings.NewReader(input), &out, 2, true)
		require.NoError(t, err)
		assert.Equal(t, "echo\ndelta\n", out.String())
	})

	t.Run("fewer lines than requested", func(t *testing.T) {
		var out bytes.Buffer
		err := topKLines(strings.NewReader("b\na\n"), &out, 10, false)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", out.String())
	})

	t.Run("zero requested", func(t *testing.T) {
		var out bytes.Buffer
		err := topKLines(strings.NewReader(input), &out, 0, false)
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}

func TestMergeLineFiles(t *testing.T) {
	dir, cleanup := testing_util.MkdirTemp(t, "TestMergeLineFiles")
	defer cleanup()

	src1 := dir + "/src1.txt"
	src2 := dir + "/src2.txt"
	require.NoError(t, os.WriteFile(src1, []byte("a\nc\ne\n"), 0o644))
	require.NoError(t, os.WriteFile(src2, []byte("b\nc\nd\n"), 0o644))

	t.Run("merge", func(t *testing.T) {
		out := dir + "/merged.txt"
		require.NoError(t, mergeLineFiles([]string{src1, src2}, out, false))

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\nc\nc\nd\ne\n", string(content))
	})

	t.Run("merge unique", func(t *testing.T) {
		out := dir + "/merged_unique.txt"
		require.NoError(t, mergeLineFiles([]string{src1, src2}, out, true))

		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\nc\nd\ne\n", string(content))
	})

	t.Run("source read failure surfaces", func(t *testing.T) {
		long := dir + "/long.txt"
		content := append([]byte("a\n"), bytes.Repeat([]byte("b"), bufio.MaxScanTokenSize+1)...)
		content = append(content, []byte("\nzz\n")...)
		require.NoError(t, os.WriteFile(long, content, 0o644))

		err := mergeLineFiles([]string{src1, long}, dir+"/bad.txt", false)
		assert.ErrorIs(t, err, bufio.ErrTooLong)
	})

	t.Run("missing source", func(t *testing.T) {
		err := mergeLineFiles([]string{src1, dir + "/nope.txt"}, dir+"/unused.txt", false)
		assert.Error(t, err)
	})
}

func TestApp_Merge(t *testing.T) {
	dir, cleanup := testing_util.MkdirTemp(t, "TestApp_Merge")
	defer cleanup()

	src1 := dir + "/src1.txt"
	src2 := dir + "/src2.txt"
	out := dir + "/out.txt"
	require.NoError(t, os.WriteFile(src1, []byte("1\n3\n"), 0o644))
	require.NoError(t, os.WriteFile(src2, []byte("2\n4\n"), 0o644))

	err := app().Run(context.Background(), []string{
		"njheap_tools", "merge", "--output", out, src1, src2,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n", string(content))
}
