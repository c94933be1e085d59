package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/tiledexport"
	"github.com/bodgit/tiledexport/atlas"
	"github.com/bodgit/tiledexport/selection"
	"github.com/bodgit/tiledexport/sprite"
	"github.com/urfave/cli/v2"
)

const defaultDB = "sprites.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func importSprites(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := newLogger(c)

	db, err := sprite.NewDB(c.String("db"), logger)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	n, err := db.ImportDir(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	logger.Printf("Imported %d sprites\n", n)

	return nil
}

func exportSelection(c *cli.Context) error {
	if c.NArg() < 3 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	if c.IsSet("colors") {
		if err := atlas.CheckColors(c.Int("colors")); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	logger := newLogger(c)

	tiles, err := selection.Open(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var renderer atlas.Renderer
	if dir := c.String("sprites"); dir != "" {
		renderer = sprite.NewDir(os.DirFS(dir), logger)
	} else {
		db, err := sprite.NewDB(c.String("db"), logger)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer db.Close()
		renderer = db
	}

	var options []tiledexport.Option
	if c.Bool("items") {
		options = append(options, tiledexport.WithItems())
	}
	if n := c.Int("colors"); n != 0 {
		options = append(options, tiledexport.WithColors(n))
	}

	e := tiledexport.New(renderer, logger, options...)
	if _, err := e.ExportSelection(c.Args().Get(1), c.Args().Get(2), tiles); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "tiledexport"
	app.Usage = "Export map selections to Tiled JSON and a PNG spritesheet"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TILEDEXPORT_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to sprite database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "import",
			Usage:       "Import sprite images into the database",
			Description: "Every file in DIRECTORY named after its client ID, such as 4526.png, is added to the database.",
			ArgsUsage:   "DIRECTORY",
			Action:      importSprites,
		},
		{
			Name:        "export",
			Usage:       "Export a selection as a Tiled map and spritesheet",
			Description: "Writes DIRECTORY/NAME.json and DIRECTORY/NAME_spritesheet.png.",
			ArgsUsage:   "SELECTION DIRECTORY NAME",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "sprites",
					Usage: "read sprites from `DIR` instead of the database",
				},
				&cli.BoolFlag{
					Name:  "items",
					Usage: "also pack item sprites from tiles with ground",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "write an indexed spritesheet with at most `N` colors",
				},
			},
			Action: exportSelection,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
