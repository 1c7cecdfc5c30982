/*
Package console renders order-statistics trees to a terminal.

Trees are printed sideways, with the root at the left margin and larger keys
above smaller ones. Keys are colored by the balance of their node, so skewed
regions of a tree stand out.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ostree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// tracer writes to trace with key 'ostree'
func tracer() tracing.Trace {
	return tracing.Select("ostree")
}

// Balance classifies a node by its balance factor.
type Balance int

// Balance classes of tree nodes.
const (
	LeftHeavy Balance = iota
	Balanced
	RightHeavy
)

func balanceOf(bf int) Balance {
	switch {
	case bf < 0:
		return LeftHeavy
	case bf > 0:
		return RightHeavy
	}
	return Balanced
}

// Config holds the output parameters for printing trees.
type Config struct {
	LineWidth  int  // lines longer than this are truncated; 0 means no limit
	Indent     int  // indentation per tree level
	Monochrome bool // suppress color escape sequences
	ShowValues bool // print values next to keys
	Colors     map[Balance]*color.Color
}

// DefaultPalette is the coloring used if a Config does not specify colors.
func DefaultPalette() map[Balance]*color.Color {
	palette := map[Balance]*color.Color{
		LeftHeavy:  color.New(color.FgBlue),
		Balanced:   color.New(color.FgGreen),
		RightHeavy: color.New(color.FgRed),
	}
	return palette
}

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Output to something
// other than a terminal will be monochrome.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: 4}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 0
		config.Monochrome = true
	}
	tracer().P("console", "tree").Infof("setting line length to %d", config.LineWidth)
	return config
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a config will be created from the current
// terminal's properties.
func Print[K, V any](tree *ostree.Tree[K, V], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Fprint(os.Stdout, tree, config)
}

// Fprint outputs a tree to w. Every line shows a key, optionally its value,
// and the size of the node's left subtree in brackets.
func Fprint[K, V any](w io.Writer, tree *ostree.Tree[K, V], config *Config) error {
	if config == nil {
		config = &Config{Indent: 4, Monochrome: true}
	}
	if tree == nil || tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	palette := config.Colors
	if palette == nil {
		palette = DefaultPalette()
	}
	var err error
	tree.Walk(true, func(key K, value V, info ostree.NodeInfo) bool {
		label := fmt.Sprintf("%v", key)
		if config.ShowValues {
			label = fmt.Sprintf("%v → %v", key, value)
		}
		suffix := fmt.Sprintf(" [%d]", info.LeftCount)
		pad := strings.Repeat(" ", config.Indent*info.Depth)
		label = truncate(pad, label, suffix, config.LineWidth)
		if _, err = io.WriteString(w, pad); err != nil {
			return false
		}
		if err = styledText(w, label, palette[balanceOf(info.Balance)], config.Monochrome); err != nil {
			return false
		}
		_, err = io.WriteString(w, suffix+"\n")
		return err == nil
	})
	if err != nil {
		tracer().Errorf("console: cannot print tree: %v", err)
	}
	return err
}

func styledText(w io.Writer, s string, c *color.Color, monochrome bool) error {
	if c == nil || monochrome {
		_, err := io.WriteString(w, s)
		return err
	}
	c.EnableColor() // writer need not be stdout, so do not rely on auto-detection
	_, err := io.WriteString(w, c.Sprint(s))
	return err
}

// truncate shortens label so that pad+label+suffix fits into width runes.
func truncate(pad, label, suffix string, width int) string {
	if width <= 0 {
		return label
	}
	room := width - len([]rune(pad)) - len([]rune(suffix))
	r := []rune(label)
	if len(r) <= room {
		return label
	}
	if room <= 1 {
		return "…"
	}
	return string(r[:room-1]) + "…"
}
