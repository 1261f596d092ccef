package interfaces

import "context"

// CameraFacing selects which physical camera an opener should acquire.
type CameraFacing string

const (
	// FacingEnvironment asks for the rear-facing camera.
	FacingEnvironment CameraFacing = "environment"
	// FacingAny accepts whatever camera the platform offers.
	FacingAny CameraFacing = "any"
)

// ICameraOpener acquires capture devices from the platform.
type ICameraOpener interface {
	// Supported reports whether the platform has any camera support at all.
	// When false, Open must not be called.
	Supported() bool
	Open(ctx context.Context, facing CameraFacing) (ICameraDevice, error)
}

// ICameraDevice is an open camera stream.
//
// Close releases the underlying hardware and is safe to call more than once;
// every code path that stops using a device must call it.
type ICameraDevice interface {
	// WaitReady blocks until the device has negotiated its frame geometry
	// and frames can be read, or ctx is done.
	WaitReady(ctx context.Context) error
	// FrameSize returns the negotiated width and height. Zero values mean
	// the device reported no intrinsic size.
	FrameSize() (width, height int)
	// ReadJPEG grabs the current frame encoded as a JPEG image.
	ReadJPEG() ([]byte, error)
	Close() error
}
