package main

import (
	"context"
	"io"

	"github.com/fwojciec/storelist"
)

// Source modes.
const (
	ModeDir  = "dir"
	ModeFile = "file"
)

// DefaultFile is read in file mode when no path is given.
const DefaultFile = "p1.html"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source    storelist.Source
	Extractor storelist.Extractor
	Writer    storelist.StoreWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Path     string `arg:"" optional:"" help:"Directory of saved listing pages (an HTML file with --mode=file)"`
	Mode     string `short:"m" enum:"dir,file" default:"dir" env:"STORELIST_MODE" help:"Read a directory of pages or a single file (${enum})"`
	Output   string `short:"o" default:"stores.csv" env:"STORELIST_OUTPUT" help:"CSV file to write"`
	Header   bool   `help:"Prepend a 店舗名,住所 header row"`
	Encoding string `short:"e" default:"utf-8" env:"STORELIST_ENCODING" help:"Text encoding of the input pages"`
	SQLite   string `name:"sqlite" env:"STORELIST_SQLITE" help:"Also record the run in this SQLite database"`
	Debug    bool   `short:"d" help:"Log extraction details to stderr"`
}

// source returns the path to read, applying the file mode default.
func (c *CLI) source() string {
	if c.Mode == ModeFile && c.Path == "" {
		return DefaultFile
	}
	return c.Path
}

// ExtractCmd extracts stores from a file or directory and writes them out.
type ExtractCmd struct {
	Path   string
	Mode   string
	Output string
}
