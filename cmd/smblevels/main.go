package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/smblevels"
	"github.com/bodgit/smblevels/manifest"
	"github.com/bodgit/smblevels/preview"
	"github.com/bodgit/smblevels/rom"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB       = "smblevels.db"
	defaultManifest = "smblevels.yaml"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

type session struct {
	logger    *log.Logger
	extractor *smblevels.Extractor
	img       *rom.Image
	manifest  *manifest.Manifest
}

func open(c *cli.Context) (*session, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	img, err := rom.LoadFile(c.Args().First())
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(c.String("manifest"))
	if err != nil {
		return nil, err
	}

	return &session{
		logger:    logger,
		extractor: smblevels.New(logger),
		img:       img,
		manifest:  m,
	}, nil
}

// levels returns the levels named on the command line after the image, or
// all of them
func (s *session) levels(c *cli.Context) (*manifest.Manifest, error) {
	if c.NArg() < 2 {
		return s.manifest, nil
	}

	m := *s.manifest
	m.Levels = nil
	for _, name := range c.Args().Slice()[1:] {
		l, ok := s.manifest.Find(name)
		if !ok {
			return nil, fmt.Errorf("no such level %q", name)
		}
		m.Levels = append(m.Levels, l)
	}

	return &m, nil
}

func (s *session) decodeAll(c *cli.Context) (*manifest.Manifest, []*smblevels.Level, error) {
	m, err := s.levels(c)
	if err != nil {
		return nil, nil, err
	}

	results, err := s.extractor.DecodeAll(context.Background(), s.img, m)
	if err != nil {
		return nil, nil, err
	}

	return m, results, nil
}

func printLevel(w io.Writer, name string, l *smblevels.Level) {
	fmt.Fprintf(w, "%s: %s\n", name, l.Header)
	for _, o := range l.Objects {
		fmt.Fprintf(w, "  object %3d: page %2d column %3d row %#x: %s\n", o.Offset, o.Page, o.Column(), o.Y, o.Object)
	}
	for _, e := range l.Enemies {
		fmt.Fprintf(w, "  enemy  %3d: page %2d column %3d row %#x: %s", e.Offset, e.Page, e.Column(), e.Y, e.Enemy)
		if e.Destination != nil {
			fmt.Fprintf(w, " -> %s world %d page %d", e.Destination.Area, e.Destination.World+1, e.Destination.Page)
		}
		fmt.Fprintln(w)
	}
}

func decode(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	s, err := open(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	m, results, err := s.decodeAll(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	for i, l := range results {
		printLevel(os.Stdout, m.Levels[i].Name, l)
	}

	return nil
}

func validate(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	s, err := open(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	m, results, err := s.decodeAll(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	mismatches := s.extractor.Validate(m, results)
	for _, mm := range mismatches {
		fmt.Println(mm)
	}
	if len(mismatches) > 0 {
		return cli.Exit(fmt.Sprintf("%d level counts differ from the manifest", len(mismatches)), 1)
	}

	fmt.Printf("%d levels OK\n", len(results))

	return nil
}

func export(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	s, err := open(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	m, results, err := s.decodeAll(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	db, err := smblevels.NewLevelDB(c.String("db"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer db.Close()

	crc := s.img.CRC()
	for i, l := range results {
		raw, err := s.extractor.Raw(s.img, m.Levels[i], l)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if err := db.Store(crc, m.Levels[i].Name, l, raw); err != nil {
			return cli.Exit(err, 1)
		}
		s.logger.Printf("Stored %q\n", m.Levels[i].Name)
	}

	unclassified, err := db.Unclassified(crc)
	if err != nil {
		return cli.Exit(err, 1)
	}
	for name, n := range unclassified {
		fmt.Printf("%s: %d unclassified entries\n", name, n)
	}

	return nil
}

func render(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	s, err := open(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	m, results, err := s.decodeAll(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := os.MkdirAll(c.String("output"), 0o755); err != nil {
		return cli.Exit(err, 1)
	}

	for i, l := range results {
		file := filepath.Join(c.String("output"), m.Levels[i].Name+".png")
		if err := writePNG(file, preview.Render(l, preview.WithScale(c.Int("scale")))); err != nil {
			return cli.Exit(err, 1)
		}
		s.logger.Printf("Wrote %s\n", file)
	}

	return nil
}

func writePNG(file string, m image.Image) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, m); err != nil {
		return err
	}

	return f.Close()
}

func main() {
	app := cli.NewApp()

	app.Name = "smblevels"
	app.Usage = "Super Mario Bros. level data decoder"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SMBLEVELS_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.StringFlag{
			Name:    "manifest",
			Aliases: []string{"m"},
			EnvVars: []string{"SMBLEVELS_MANIFEST"},
			Value:   filepath.Join(cwd, defaultManifest),
			Usage:   "path to level manifest",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "decode",
			Usage:     "Decode and print levels",
			ArgsUsage: "ROM [LEVEL...]",
			Action:    decode,
		},
		{
			Name:      "validate",
			Usage:     "Check decoded entry counts against the manifest",
			ArgsUsage: "ROM [LEVEL...]",
			Action:    validate,
		},
		{
			Name:      "export",
			Usage:     "Store decoded levels in the database",
			ArgsUsage: "ROM [LEVEL...]",
			Action:    export,
		},
		{
			Name:      "preview",
			Usage:     "Render levels as PNG images",
			ArgsUsage: "ROM [LEVEL...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   cwd,
					Usage:   "directory to write images to",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 4,
					Usage: "pixels per metatile",
				},
			},
			Action: render,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
