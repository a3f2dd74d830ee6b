package framestate

import (
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-drift/firstframe/pkg/graphics"
	"github.com/go-drift/firstframe/pkg/platform"
)

// DefaultPath returns the record's well-known location, or "" if the path
// provider cannot resolve a system directory.
func DefaultPath(paths platform.PathProvider) string {
	if paths == nil {
		return ""
	}
	dir := paths.SystemDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}

// Read loads and decodes the record at path.
// A missing file yields ErrNotFound; any other I/O failure is returned as-is
// for the caller to report. Decode failures yield ErrInvalidMarker or
// ErrTruncated.
func Read(path string) (*FrameInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// The format carries no internal length field; the buffer is sized to
	// the file and filled with a loop that tolerates short reads.
	buf := make([]byte, st.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return Decode(buf)
}

// Decode parses a complete record from data. Fields are big-endian, matching
// the external writer; the layout is:
//
//	int16 validityMarker (0 = valid)
//	int32 x, y, width, height (device space)
//	int32 argb color
//	int8  fullScreen (0/1)
//	int32 extendedState
//
// A non-zero marker stops decoding immediately: later fields are only
// meaningful when the marker is zero.
func Decode(data []byte) (*FrameInfo, error) {
	cur := &cursor{data: data, ok: true}

	marker := cur.uint16()
	if !cur.ok {
		return nil, ErrTruncated
	}
	if marker != 0 {
		return nil, ErrInvalidMarker
	}

	x := cur.int32()
	y := cur.int32()
	width := cur.int32()
	height := cur.int32()
	argb := cur.uint32()
	fullScreen := cur.byte()
	state := cur.int32()
	if !cur.ok {
		return nil, ErrTruncated
	}

	return &FrameInfo{
		Bounds:     graphics.RectOf(int(x), int(y), int(width), int(height)),
		Background: graphics.ARGB(argb),
		FullScreen: fullScreen != 0,
		State:      platform.WindowState(state),
	}, nil
}

// cursor walks a byte buffer with bounds checks on every read. After a failed
// read, ok is false and all further reads return zero.
type cursor struct {
	data []byte
	pos  int
	ok   bool
}

func (c *cursor) take(n int) []byte {
	if !c.ok || c.pos+n > len(c.data) {
		c.ok = false
		return nil
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}

func (c *cursor) byte() byte {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *cursor) uint16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (c *cursor) uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (c *cursor) int32() int32 {
	return int32(c.uint32())
}
