package camera

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"sync"

	"github.com/blackjack/webcam"

	"github.com/woliveira1728/os-system-frontend/internal/usecase/interfaces"
)

// V4L2 pixel formats (fourcc codes). MJPEG frames are forwarded as-is since
// they already are JPEG; YUYV frames are converted and encoded here.
const (
	formatMJPEG = webcam.PixelFormat(0x47504A4D) // 'MJPG'
	formatYUYV  = webcam.PixelFormat(0x56595559) // 'YUYV'
)

// Capture geometry used when the device reports no usable frame size.
const (
	fallbackWidth  = 1280
	fallbackHeight = 720
)

const jpegQuality = 92

const frameWaitSeconds = 5

var ErrNoUsableFormat = errors.New("camera offers neither MJPEG nor YUYV")

// Opener acquires V4L2 capture devices. The environment (rear) facing maps
// to the configured primary device node; the generic fallback maps to the
// fallback node.

type Opener struct {
	primaryPath  string
	fallbackPath string
}

var _ interfaces.ICameraOpener = (*Opener)(nil)

func NewOpener(primaryPath, fallbackPath string) *Opener {
	return &Opener{primaryPath: primaryPath, fallbackPath: fallbackPath}
}

// Supported reports whether any configured device node exists.
func (o *Opener) Supported() bool {
	for _, path := range []string{o.primaryPath, o.fallbackPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func (o *Opener) Open(ctx context.Context, facing interfaces.CameraFacing) (interfaces.ICameraDevice, error) {
	path := o.primaryPath
	if facing != interfaces.FacingEnvironment && o.fallbackPath != "" {
		path = o.fallbackPath
	}
	if path == "" {
		return nil, fmt.Errorf("no device node configured for facing %q", facing)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cam, err := webcam.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	dev, err := newDevice(cam, path)
	if err != nil {
		cam.Close()
		return nil, err
	}
	return dev, nil
}

// Device is one open camera stream. Frames are read on demand; Close stops
// streaming and releases the V4L2 handle.
type Device struct {
	path   string
	format webcam.PixelFormat
	width  uint32
	height uint32

	mu     sync.Mutex
	cam    *webcam.Webcam
	closed bool

	ready chan struct{}
}

var _ interfaces.ICameraDevice = (*Device)(nil)

func newDevice(cam *webcam.Webcam, path string) (*Device, error) {
	format, err := pickFormat(cam)
	if err != nil {
		return nil, err
	}

	w, h := pickFrameSize(cam, format)
	format, w, h, err = cam.SetImageFormat(format, w, h)
	if err != nil {
		return nil, fmt.Errorf("set format on %s: %w", path, err)
	}

	if err := cam.StartStreaming(); err != nil {
		return nil, fmt.Errorf("start streaming on %s: %w", path, err)
	}

	d := &Device{
		path:   path,
		format: format,
		width:  w,
		height: h,
		cam:    cam,
		ready:  make(chan struct{}),
	}
	// V4L2 negotiation is synchronous: geometry is known once streaming
	// starts, so readiness resolves immediately.
	close(d.ready)
	log.Printf("[camera][v4l2] streaming device=%s format=%#x frame=%dx%d", path, uint32(format), w, h)
	return d, nil
}

// WaitReady resolves once the negotiated frame geometry is available.
func (d *Device) WaitReady(ctx context.Context) error {
	select {
	case <-d.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Device) FrameSize() (int, int) {
	return int(d.width), int(d.height)
}

// ReadJPEG grabs the next frame and returns it JPEG-encoded.
func (d *Device) ReadJPEG() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.New("camera device closed")
	}

	if err := d.cam.WaitForFrame(frameWaitSeconds); err != nil {
		return nil, fmt.Errorf("wait for frame on %s: %w", d.path, err)
	}
	frame, err := d.cam.ReadFrame()
	if err != nil {
		return nil, fmt.Errorf("read frame on %s: %w", d.path, err)
	}
	if len(frame) == 0 {
		return nil, errors.New("empty frame")
	}

	if d.format == formatMJPEG {
		out := make([]byte, len(frame))
		copy(out, frame)
		return out, nil
	}
	return encodeYUYV(frame, int(d.width), int(d.height))
}

// Close stops streaming and releases the hardware handle. Idempotent.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if err := d.cam.StopStreaming(); err != nil {
		log.Printf("[camera][v4l2] stop streaming failed device=%s: %v", d.path, err)
	}
	return d.cam.Close()
}

func pickFormat(cam *webcam.Webcam) (webcam.PixelFormat, error) {
	formats := cam.GetSupportedFormats()
	if _, ok := formats[formatMJPEG]; ok {
		return formatMJPEG, nil
	}
	if _, ok := formats[formatYUYV]; ok {
		return formatYUYV, nil
	}
	return 0, ErrNoUsableFormat
}

// pickFrameSize chooses the largest discrete size the device reports for the
// format, falling back to 1280x720 when nothing usable is reported.
func pickFrameSize(cam *webcam.Webcam, format webcam.PixelFormat) (uint32, uint32) {
	var w, h uint32
	for _, s := range cam.GetSupportedFrameSizes(format) {
		if s.MaxWidth*s.MaxHeight > w*h {
			w, h = s.MaxWidth, s.MaxHeight
		}
	}
	if w == 0 || h == 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// encodeYUYV converts a packed YUYV 4:2:2 frame to JPEG.
func encodeYUYV(frame []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}
	if len(frame) < width*height*2 {
		return nil, fmt.Errorf("short YUYV frame: %d bytes for %dx%d", len(frame), width, height)
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio422)
	for y := 0; y < height; y++ {
		row := frame[y*width*2 : (y+1)*width*2]
		for x := 0; x < width; x += 2 {
			i := x * 2
			yOff := y*img.YStride + x
			cOff := y*img.CStride + x/2
			img.Y[yOff] = row[i]
			img.Cb[cOff] = row[i+1]
			img.Y[yOff+1] = row[i+2]
			img.Cr[cOff] = row[i+3]
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
