package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/heap"
	"github.com/navijation/njheap/util"
)

func sortLines(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return errors.New("usage: sort [path]")
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

	return heapSortLines(reader, os.Stdout, cmd.Bool("reverse"))
}

func heapSortLines(reader io.Reader, writer io.Writer, reverse bool) error {
	lines, err := readLines(reader)
	if err != nil {
		return err
	}

	less := func(a, b string) bool { return a < b }
	if reverse {
		less = func(a, b string) bool { return a > b }
	}

	h := heap.NewFunc(less, lines...)
	for !h.Empty() {
		line, err := h.Pop()
		util.AssertNoError(err)

		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

func readLines(reader io.Reader) (out []string, _ error) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		out = append(out, scanner.Text())
	}
	return out, scanner.Err()
}
