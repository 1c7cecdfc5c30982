package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ostree/wordindex"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrNotRegular is returned for paths which do not denote a regular file.
var ErrNotRegular = errors.New("file is not a regular file")

// ProgressFunc is called after every fragment with the number of bytes loaded
// so far and the total size of the file.
type ProgressFunc func(loaded, total int64)

// fragment is the message broadcast for every chunk of the file.
type fragment struct {
	pos  int64  // start position of this fragment within the file
	data []byte // content; may end in the middle of a word or rune
	err  error  // I/O error, if any
	last bool   // no more fragments will follow
}

// textFile represents an OS file which will be loaded into an index.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file, and counts its words.
// Clients may indicate a recommended fragment length; 0 lets Load choose a
// sensible default depending on the file size. If progress is non-nil, it will
// be called for every fragment loaded.
//
// Reading the file is done asynchronously, but Load waits for the index to be
// complete. Opening of the file is always done synchronously. Cancelling ctx
// stops loading and Load returns the context's error.
func Load(ctx context.Context, name string, fragSize int64, progress ProgressFunc) (*wordindex.Index, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	tracer().Debugf("textfile: loading %q with fragment size %d", name, fragSize)
	words, ok := tf.cast.Sub(ctx, 4)
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to loader for %q", name)
	}
	var progressDone chan struct{}
	if progress != nil {
		if ch, ok := tf.cast.Sub(ctx, 4); ok {
			progressDone = make(chan struct{})
			go reportProgress(ch, tf.info.Size(), progress, progressDone)
		}
	}
	go loadAllFragments(ctx, tf, fragSize)
	index, err := indexFragments(ctx, words)
	if err != nil {
		cancel() // closes the caster and with it the progress subscription
	}
	if progressDone != nil {
		<-progressDone
	}
	if err != nil {
		return nil, err
	}
	return index, nil
}

// fragmentSize selects a fragment length for a file of the given size, unless
// the client requested a size within (0, tenKb].
func fragmentSize(size int64, requested int64) int64 {
	if requested > 0 && requested <= tenKb {
		return requested
	}
	switch {
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads the file front to back and publishes every fragment.
// The final message is flagged as last, possibly carrying an error.
func loadAllFragments(ctx context.Context, tf *textFile, fragSize int64) {
	defer tf.cast.Close()
	size := tf.info.Size()
	for pos := int64(0); ; pos += fragSize {
		if ctx.Err() != nil {
			return
		}
		length := min(fragSize, size-pos)
		if length <= 0 {
			tf.cast.Pub(fragment{pos: pos, last: true})
			return
		}
		buf := make([]byte, length)
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			err = fmt.Errorf("error loading text fragment at %d: %w", pos, err)
		} else if int64(cnt) < length {
			err = fmt.Errorf("not all bytes loaded for text fragment at %d", pos)
		} else {
			err = nil
		}
		msg := fragment{pos: pos, data: buf[:cnt], err: err, last: err != nil || pos+length >= size}
		if !tf.cast.Pub(msg) || msg.last {
			return
		}
	}
}

// indexFragments consumes fragments in file order and counts their words.
// A trailing partial word of a fragment is prepended to the next one.
func indexFragments(ctx context.Context, sub <-chan interface{}) (*wordindex.Index, error) {
	index := wordindex.New()
	var carry []byte
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case m, ok := <-sub:
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("textfile: loader stopped before end of file")
			}
			frag := m.(fragment)
			if frag.err != nil {
				tracer().Errorf("textfile: %v", frag.err)
				return nil, frag.err
			}
			text := append(carry, frag.data...)
			if frag.last {
				index.AddString(string(text))
				tracer().Infof("textfile: indexed %d words, %d distinct", index.Total(), index.Distinct())
				return index, nil
			}
			cut := bytes.LastIndexAny(text, " \t\r\n")
			if cut < 0 {
				carry = text
				continue
			}
			index.AddString(string(text[:cut+1]))
			carry = append([]byte(nil), text[cut+1:]...)
		}
	}
}

func reportProgress(sub <-chan interface{}, total int64, progress ProgressFunc, done chan<- struct{}) {
	defer close(done)
	for m := range sub {
		frag := m.(fragment)
		progress(frag.pos+int64(len(frag.data)), total)
		if frag.last {
			return
		}
	}
}
