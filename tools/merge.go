package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/merge"
)

func mergeFiles(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return errors.New("usage: merge src_path1 src_path2 [...]")
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = fmt.Sprintf("merged-%s.txt", uuid.NewString())
	}

	var srcPaths []string
	for i := range cmd.Args().Len() {
		srcPaths = append(srcPaths, cmd.Args().Get(i))
	}

	if err := mergeLineFiles(srcPaths, outputPath, cmd.Bool("unique")); err != nil {
		return err
	}

	fmt.Printf("wrote %q\n", outputPath)
	return nil
}

// mergeLineFiles merges already-sorted line files into one sorted output
// file. Each source file is streamed, not loaded whole.
func mergeLineFiles(srcPaths []string, outputPath string, unique bool) error {
	mux := merge.NewMux(merge.MuxArgs[string]{
		Less:           func(a, b string) bool { return a < b },
		SkipDuplicates: unique,
	})

	// A failed Scan is indistinguishable from a cleanly exhausted source at
	// the pull function, so keep the scanners and check their errors before
	// declaring the merge complete.
	scanners := make([]*bufio.Scanner, 0, len(srcPaths))
	for _, path := range srcPaths {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open %q", path)
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		scanners = append(scanners, scanner)
		mux.AddSource(func() (string, bool) {
			if scanner.Scan() {
				return scanner.Text(), true
			}
			return "", false
		})
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", outputPath)
	}
	defer output.Close()

	writer := bufio.NewWriter(output)
	for {
		line, hasNext := mux.Next()
		if !hasNext {
			break
		}
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}

	for i, scanner := range scanners {
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "failed to read %q", srcPaths[i])
		}
	}
	return writer.Flush()
}
