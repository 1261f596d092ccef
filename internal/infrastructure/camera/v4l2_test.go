package camera

import (
	"bytes"
	"image/jpeg"
	"testing"
)

func TestEncodeYUYV(t *testing.T) {
	t.Run("encodes a frame at the negotiated size", func(t *testing.T) {
		const w, h = 8, 4
		// Mid-gray: Y=128, Cb=Cr=128.
		frame := bytes.Repeat([]byte{128, 128}, w*h)

		out, err := encodeYUYV(frame, w, h)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}

		img, err := jpeg.Decode(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode produced jpeg: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != w || b.Dy() != h {
			t.Fatalf("expected %dx%d, got %dx%d", w, h, b.Dx(), b.Dy())
		}
	})

	t.Run("rejects a short frame", func(t *testing.T) {
		if _, err := encodeYUYV([]byte{1, 2, 3}, 8, 4); err == nil {
			t.Fatalf("expected an error for a truncated frame")
		}
	})
}

func TestOpenerSupported(t *testing.T) {
	t.Run("false with no existing device node", func(t *testing.T) {
		o := NewOpener("/dev/video-does-not-exist", "")
		if o.Supported() {
			t.Fatalf("expected unsupported")
		}
	})

	t.Run("any existing node counts", func(t *testing.T) {
		// /dev/null always exists; the opener only checks node presence.
		o := NewOpener("/dev/video-does-not-exist", "/dev/null")
		if !o.Supported() {
			t.Fatalf("expected supported")
		}
	})
}
