package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/bodgit/fogmap"
	"github.com/bodgit/fogmap/tile"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func loadMap(c *cli.Context) (*fogmap.Map, error) {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return fogmap.New(logger, c.Int("workers")).Load(c.Args().First())
}

func sortedTiles(m *fogmap.Map) []*tile.Tile {
	tiles := make([]*tile.Tile, 0, len(m.Tiles()))
	for _, t := range m.Tiles() {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].ID < tiles[j].ID })
	return tiles
}

func main() {
	app := cli.NewApp()

	app.Name = "fogmap"
	app.Usage = "Fog of World explored-map inspection utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "concurrent tile decodes, 0 for one per CPU",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Summarise an explored map",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				m, err := loadMap(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				var blocks, visited int
				for _, t := range m.Tiles() {
					blocks += len(t.Blocks())
					for _, b := range t.Blocks() {
						visited += b.Visited()
					}
				}

				fmt.Printf("tiles:   %d\n", len(m.Tiles()))
				fmt.Printf("blocks:  %d\n", blocks)
				fmt.Printf("visited: %d\n", visited)
				fmt.Printf("regions: %d\n", len(m.Regions()))

				return nil
			},
		},
		{
			Name:        "regions",
			Usage:       "List every region touched by an explored map",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				m, err := loadMap(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, region := range m.Regions() {
					fmt.Println(region)
				}

				return nil
			},
		},
		{
			Name:        "tiles",
			Usage:       "List every tile with its geographic bounds",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				m, err := loadMap(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, t := range sortedTiles(m) {
					sw, ne := t.Bounds()
					fmt.Printf("%d (%d,%d) blocks=%d sw=%.4f,%.4f ne=%.4f,%.4f\n",
						t.ID, t.X, t.Y, len(t.Blocks()),
						sw.Lat.Degrees(), sw.Lng.Degrees(),
						ne.Lat.Degrees(), ne.Lng.Degrees())
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
