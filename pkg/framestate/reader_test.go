package framestate

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/firstframe/pkg/graphics"
	"github.com/go-drift/firstframe/pkg/platform"
)

// encodeRecord builds a record the way the external writer does.
func encodeRecord(marker uint16, x, y, w, h int32, argb uint32, fullScreen byte, state int32) []byte {
	buf := make([]byte, 0, 27)
	buf = binary.BigEndian.AppendUint16(buf, marker)
	for _, v := range []int32{x, y, w, h} {
		buf = binary.BigEndian.AppendUint32(buf, uint32(v))
	}
	buf = binary.BigEndian.AppendUint32(buf, argb)
	buf = append(buf, fullScreen)
	buf = binary.BigEndian.AppendUint32(buf, uint32(state))
	return buf
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadValidRecord(t *testing.T) {
	path := writeTemp(t, encodeRecord(0, 100, 100, 800, 600, 0xFF112233, 0, 0))

	info, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.Bounds != graphics.RectOf(100, 100, 800, 600) {
		t.Errorf("bounds: %+v", info.Bounds)
	}
	if info.Background != graphics.ARGB(0xFF112233) {
		t.Errorf("background: %08X", uint32(info.Background))
	}
	if info.FullScreen {
		t.Error("fullScreen should be false")
	}
	if info.State != platform.StateNormal {
		t.Errorf("state: %v", info.State)
	}
}

func TestReadMaximizedFullScreen(t *testing.T) {
	path := writeTemp(t, encodeRecord(0, -1920, 0, 1920, 1080, 0xFF2B2B2B, 1, int32(platform.StateMaximizedBoth)))

	info, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if info.Bounds.X != -1920 {
		t.Errorf("negative x should survive: %+v", info.Bounds)
	}
	if !info.FullScreen {
		t.Error("fullScreen should be true")
	}
	if !info.State.IsMaximized() {
		t.Errorf("state: %v", info.State)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), FileName))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestReadInvalidMarker(t *testing.T) {
	// Marker 1 means the writer marked the record unusable. Geometry bytes
	// after the marker are garbage on purpose: they must never be decoded.
	data := encodeRecord(1, 0x7FFFFFFF, -1, 0, 0, 0, 0xAB, -1)
	path := writeTemp(t, data)

	_, err := Read(path)
	if !errors.Is(err, ErrInvalidMarker) {
		t.Errorf("got %v, want ErrInvalidMarker", err)
	}
}

func TestReadInvalidMarkerShortFile(t *testing.T) {
	// A marked-invalid record may carry no fields at all.
	path := writeTemp(t, []byte{0, 1})

	_, err := Read(path)
	if !errors.Is(err, ErrInvalidMarker) {
		t.Errorf("got %v, want ErrInvalidMarker", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	full := encodeRecord(0, 100, 100, 800, 600, 0xFF112233, 0, 0)

	for n := 0; n < len(full); n++ {
		if n == 2 {
			continue // marker alone decodes as far as the marker check
		}
		_, err := Decode(full[:n])
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("length %d: got %v, want ErrTruncated", n, err)
		}
	}

	// The marker decodes but the remaining fields are missing.
	if _, err := Decode(full[:2]); !errors.Is(err, ErrTruncated) {
		t.Errorf("marker-only record: got %v, want ErrTruncated", err)
	}
}

func TestDecodeTrailingBytesTolerated(t *testing.T) {
	// Future writers may append optional trailing fields; this reader
	// ignores them.
	data := append(encodeRecord(0, 1, 2, 3, 4, 0xFF000000, 0, 0), 0xDE, 0xAD)

	info, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.Bounds != graphics.RectOf(1, 2, 3, 4) {
		t.Errorf("bounds: %+v", info.Bounds)
	}
}

func TestDefaultPath(t *testing.T) {
	if p := DefaultPath(nil); p != "" {
		t.Errorf("nil provider: got %q", p)
	}
	if p := DefaultPath(platform.PathFunc(func() string { return "" })); p != "" {
		t.Errorf("empty system dir: got %q", p)
	}
	p := DefaultPath(platform.PathFunc(func() string { return "/tmp/product/system" }))
	if p != filepath.Join("/tmp/product/system", FileName) {
		t.Errorf("got %q", p)
	}
}
