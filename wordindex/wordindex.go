/*
Package wordindex builds an ordered word-frequency index for texts.

Words are kept in an order-statistics tree, which makes it cheap to ask for the
k-th word in alphabetical order or for all words between two bounds, in
addition to plain frequency lookups.

Texts are broken into words at Unicode line-break opportunities (UAX #14),
with surrounding punctuation removed and letters folded to lower case.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package wordindex

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/ostree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// tracer writes to trace with key 'ostree'
func tracer() tracing.Trace {
	return tracing.Select("ostree")
}

// Index counts word occurrences. The zero value is not usable, indexes are
// created with New. An index is not thread-safe.
type Index struct {
	words *ostree.Tree[string, int]
	total int
}

// New creates an empty index.
func New() *Index {
	return &Index{words: ostree.New[string, int]()}
}

// Tree gives access to the underlying tree, mapping words to their counts.
// Clients must not modify it.
func (idx *Index) Tree() *ostree.Tree[string, int] {
	return idx.words
}

// Add counts a single word occurrence. The word is normalized first; if
// nothing remains, Add does nothing and returns false.
func (idx *Index) Add(word string) bool {
	word = Normalize(word)
	if word == "" {
		return false
	}
	cnt, err := idx.words.Get(word)
	if err != nil {
		cnt = 0
	}
	idx.words.Insert(word, cnt+1)
	idx.total++
	return true
}

// AddString counts all words of a string.
func (idx *Index) AddString(s string) int {
	n, _ := idx.AddText(strings.NewReader(s))
	return n
}

// AddText reads r to the end and counts all the words in it. It returns the
// number of words counted.
func (idx *Index) AddText(r io.Reader) (int, error) {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	br := bufio.NewReader(r)
	segmenter.Init(br)
	n := 0
	for segmenter.Next() {
		for _, w := range strings.Fields(string(segmenter.Bytes())) {
			if idx.Add(w) {
				n++
			}
		}
	}
	if err := segmenter.Err(); err != nil {
		tracer().Errorf("wordindex: reading text failed after %d words: %v", n, err)
		return n, err
	}
	tracer().Debugf("wordindex: counted %d words, %d distinct", n, idx.words.Len())
	return n, nil
}

// Count returns the number of occurrences of word.
func (idx *Index) Count(word string) int {
	cnt, err := idx.words.Get(Normalize(word))
	if err != nil {
		return 0
	}
	return cnt
}

// Distinct returns the number of different words.
func (idx *Index) Distinct() int {
	return idx.words.Len()
}

// Total returns the number of words counted, including repetitions.
func (idx *Index) Total() int {
	return idx.total
}

// Nth returns the word at position k (1-based) in alphabetical order.
// It returns ostree.ErrRankOutOfRange if k is not within [1, Distinct()].
func (idx *Index) Nth(k int) (string, error) {
	return idx.words.KthSmallest(k)
}

// Position returns the 1-based alphabetical position of word, or 0 if word
// is not in the index.
func (idx *Index) Position(word string) int {
	r, _ := idx.words.Rank(Normalize(word))
	return r
}

// Between returns all indexed words w with from <= w <= to in alphabetical
// order. Bounds are normalized the same way as words.
func (idx *Index) Between(from, to string) []string {
	return idx.words.RangeQuery(Normalize(from), Normalize(to))
}

// Remove deletes a word from the index, regardless of its count. It returns
// the count the word had.
func (idx *Index) Remove(word string) int {
	cnt, ok := idx.words.Remove(Normalize(word))
	if !ok {
		return 0
	}
	idx.total -= cnt
	return cnt
}

// Normalize strips leading and trailing characters which are neither letters
// nor digits and folds the remainder to lower case.
func Normalize(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(word)
}
