package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func app() *cli.Command {
	return &cli.Command{
		Name:  "njheap_tools",
		Usage: "sort, merge, and rank line-oriented files",
		Commands: []*cli.Command{
			{
				Name:   "sort",
				Action: sortLines,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "reverse",
						Usage: "sort in descending order",
					},
				},
			},
			{
				Name:   "merge",
				Action: mergeFiles,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "path of merged output file",
					},
					&cli.BoolFlag{
						Name:  "unique",
						Usage: "drop duplicate lines",
					},
				},
			},
			{
				Name:   "top",
				Action: topLines,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "count",
						Aliases:     []string{"n"},
						DefaultText: "10",
						Value:       10,
						Usage:       "number of lines to keep",
					},
					&cli.BoolFlag{
						Name:  "largest",
						Usage: "keep the largest lines instead of the smallest",
					},
				},
			},
		},
	}
}

func main() {
	if err := app().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
