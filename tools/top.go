package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/heap"
	"github.com/navijation/njheap/util"
)

func topLines(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return errors.New("usage: top [path]")
	}

	var reader io.Reader = os.Stdin
	if cmd.Args().Len() == 1 {
		path := cmd.Args().First()
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open %q", path)
		}
		defer file.Close()
		reader = file
	}

	return topKLines(reader, os.Stdout, int(cmd.Uint("count")), cmd.Bool("largest"))
}

// topKLines streams lines from reader and prints the n smallest (or largest)
// in sorted order. A bounded heap keeps the current best n lines, rooted at
// the worst of them so it can be evicted in O(log n).
func topKLines(reader io.Reader, writer io.Writer, n int, largest bool) error {
	if n == 0 {
		return nil
	}

	less := func(a, b string) bool { return a > b }
	keep := func(candidate, worst string) bool { return candidate < worst }
	if largest {
		less = func(a, b string) bool { return a < b }
		keep = func(candidate, worst string) bool { return candidate > worst }
	}

	h := heap.NewFunc(less)
	h.Grow(n)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()

		if h.Size() < n {
			h.Push(line)
			continue
		}

		worst, exists := h.Peek().Unpack()
		util.Assert(exists, "bounded heap cannot be empty here")

		if keep(line, worst) {
			_, err := h.Pop()
			util.AssertNoError(err)
			h.Push(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// the heap drains worst-first
	lines := make([]string, 0, h.Size())
	for !h.Empty() {
		line, err := h.Pop()
		util.AssertNoError(err)
		lines = append(lines, line)
	}
	slices.Reverse(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}
