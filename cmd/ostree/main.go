/*
Command ostree builds order-statistics trees and queries them.

	ostree words FILE [--html] [--kth N] [--from A --to B] [--print] [--dot]
	ostree keys K1 K2 … [--kth N] [--from A --to B] [--print] [--dot]

Command words indexes the words of a text file (or of an HTML file) and answers
alphabetical position queries; keys does the same for a list of integers given
on the command line.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/npillmayer/ostree"
	"github.com/npillmayer/ostree/console"
	"github.com/npillmayer/ostree/textfile"
	"github.com/npillmayer/ostree/wordindex"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// queryFlags are shared by all sub-commands.
type queryFlags struct {
	kth     int
	from    string
	to      string
	print   bool
	dot     bool
	verbose bool
}

func (qf *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&qf.kth, "kth", 0, "print the k-th smallest key (1-based)")
	cmd.Flags().StringVar(&qf.from, "from", "", "lower bound of a range query")
	cmd.Flags().StringVar(&qf.to, "to", "", "upper bound of a range query")
	cmd.Flags().BoolVar(&qf.print, "print", false, "print the tree to the terminal")
	cmd.Flags().BoolVar(&qf.dot, "dot", false, "output the tree in Graphviz DOT format")
	cmd.Flags().BoolVarP(&qf.verbose, "verbose", "v", false, "trace loading and tree operations")
}

func main() {
	var wordsFlags queryFlags
	var asHTML bool
	var cmdWords = &cobra.Command{
		Use:   "words FILE",
		Short: "Index the words of a text file",
		Long:  "Words counts the words of a file and answers alphabetical order queries on them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupTracing(wordsFlags.verbose)
			index, err := loadWords(cmd.Context(), args[0], asHTML)
			if err != nil {
				return err
			}
			fmt.Printf("%d words, %d distinct\n", index.Total(), index.Distinct())
			return query(index.Tree(), wordsFlags, wordindex.Normalize)
		},
	}
	wordsFlags.register(cmdWords)
	cmdWords.Flags().BoolVar(&asHTML, "html", false, "treat the file as HTML and index its text content")

	var keysFlags queryFlags
	var cmdKeys = &cobra.Command{
		Use:   "keys K1 K2 …",
		Short: "Build a tree from integer keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupTracing(keysFlags.verbose)
			cfg := ostree.OrderedConfig[int]()
			cfg.CheckInvariants = true
			tree, err := ostree.NewWithConfig[int, int](cfg)
			if err != nil {
				return err
			}
			for i, a := range args {
				k, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("%w: key %q is not an integer", ostree.ErrIllegalArguments, a)
				}
				tree.Insert(k, i)
			}
			fmt.Printf("%d keys, height %d\n", tree.Len(), tree.Height())
			return query(tree, keysFlags, func(s string) string { return s })
		},
	}
	keysFlags.register(cmdKeys)

	var rootCmd = &cobra.Command{
		Use:          "ostree",
		Short:        "Order-statistics trees on the command line",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(cmdWords, cmdKeys)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func setupTracing(verbose bool) {
	gtrace.CoreTracer = gologadapter.New()
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelInfo
	}
	gtrace.CoreTracer.SetTraceLevel(level)
}

func loadWords(ctx context.Context, name string, asHTML bool) (*wordindex.Index, error) {
	if !asHTML {
		return textfile.Load(ctx, name, 0, nil)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	index := wordindex.New()
	if _, err := index.AddHTML(f); err != nil {
		return nil, err
	}
	return index, nil
}

// query runs the queries requested by flags against tree. Range bounds are
// converted to keys by parse.
func query[K any, V any](tree *ostree.Tree[K, V], flags queryFlags, parse func(string) string) error {
	if flags.kth != 0 {
		k, err := tree.KthSmallest(flags.kth)
		if err != nil {
			return err
		}
		fmt.Printf("#%d: %v\n", flags.kth, k)
	}
	if flags.from != "" || flags.to != "" {
		low, err := parseKey[K](parse(flags.from))
		if err != nil {
			return err
		}
		high, err := parseKey[K](parse(flags.to))
		if err != nil {
			return err
		}
		keys := tree.RangeQuery(low, high)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprint(k)
		}
		fmt.Printf("%d keys in range: %s\n", len(keys), strings.Join(parts, " "))
	}
	if flags.print {
		if err := console.Print(tree, nil); err != nil {
			return err
		}
	}
	if flags.dot {
		return ostree.Tree2Dot(tree, os.Stdout)
	}
	return nil
}

// parseKey converts a command-line argument to a key of type K. Only string
// and int keys are supported.
func parseKey[K any](s string) (K, error) {
	var key K
	switch p := any(&key).(type) {
	case *string:
		*p = s
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return key, fmt.Errorf("%w: range bound %q is not an integer", ostree.ErrIllegalArguments, s)
		}
		*p = n
	default:
		return key, fmt.Errorf("%w: unsupported key type %T", ostree.ErrIllegalArguments, key)
	}
	return key, nil
}
