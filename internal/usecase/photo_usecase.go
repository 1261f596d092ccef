package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
	"github.com/woliveira1728/os-system-frontend/internal/usecase/interfaces"
)

var (
	ErrUnsupportedDevice = errors.New("camera not supported on this device")
	ErrCameraUnavailable = errors.New("camera could not be acquired")
	ErrCameraBusy        = errors.New("camera session already active")
	ErrCameraNotLive     = errors.New("no live camera session")
	ErrUploadFailed      = errors.New("photo upload failed")
)

// CaptureState tracks the camera session lifecycle.
type CaptureState int

const (
	CaptureIdle CaptureState = iota
	CaptureRequesting
	CaptureLive
	CaptureCapturing
)

// IPhotoUseCase manages camera acquisition and the upload path shared by
// live capture and manual file selection.
//
// Hard invariant: every transition that leaves the live state releases the
// underlying device. An acquisition resolving after CloseCamera finds the
// session cancelled and releases the device instead of binding it.

type IPhotoUseCase interface {
	OpenCamera(ctx context.Context) error
	CaptureAndUpload(ctx context.Context, orderID string) (entities.Order, error)
	CloseCamera()
	State() CaptureState
	UploadPhoto(ctx context.Context, orderID, filename string, file io.Reader) (entities.Order, error)
	DeletePhoto(ctx context.Context, orderID, photoID string) (entities.Order, error)
}

type PhotoUseCase struct {
	gateway interfaces.IAPIGateway
	orders  interfaces.IOrderReader
	opener  interfaces.ICameraOpener

	mu        sync.Mutex
	state     CaptureState
	device    interfaces.ICameraDevice
	cancelled bool
}

var _ IPhotoUseCase = (*PhotoUseCase)(nil)

func NewPhotoUseCase(gateway interfaces.IAPIGateway, orders interfaces.IOrderReader, opener interfaces.ICameraOpener) *PhotoUseCase {
	return &PhotoUseCase{gateway: gateway, orders: orders, opener: opener}
}

// OpenCamera acquires a device and brings the session live. The rear-facing
// ("environment") camera is requested first; if that fails the request is
// retried once for any camera before giving up.
func (u *PhotoUseCase) OpenCamera(ctx context.Context) error {
	if u.opener == nil || !u.opener.Supported() {
		return ErrUnsupportedDevice
	}

	u.mu.Lock()
	if u.state != CaptureIdle {
		u.mu.Unlock()
		return ErrCameraBusy
	}
	u.state = CaptureRequesting
	u.cancelled = false
	u.mu.Unlock()

	log.Printf("[photo][usecase] acquiring camera facing=environment")
	dev, err := u.opener.Open(ctx, interfaces.FacingEnvironment)
	if err != nil {
		log.Printf("[photo][usecase] environment camera failed, retrying any: %v", err)
		dev, err = u.opener.Open(ctx, interfaces.FacingAny)
	}
	if err != nil {
		u.mu.Lock()
		u.state = CaptureIdle
		u.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}

	u.mu.Lock()
	if u.cancelled {
		// The dialog closed while acquisition was in flight; release the
		// late-arriving device instead of binding it.
		u.mu.Unlock()
		releaseDevice(dev)
		return ErrCameraNotLive
	}
	u.device = dev
	u.mu.Unlock()

	// Bind only once the device reports its negotiated geometry.
	if err := dev.WaitReady(ctx); err != nil {
		u.CloseCamera()
		return fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}

	u.mu.Lock()
	if u.cancelled || u.device == nil {
		u.mu.Unlock()
		releaseDevice(dev)
		return ErrCameraNotLive
	}
	u.state = CaptureLive
	u.mu.Unlock()

	w, h := dev.FrameSize()
	log.Printf("[photo][usecase] camera live frame=%dx%d", w, h)
	return nil
}

// CaptureAndUpload grabs the current frame, uploads it as
// photo_<timestamp>.jpg, and closes the camera session. The session is
// released whether or not the upload succeeds.
func (u *PhotoUseCase) CaptureAndUpload(ctx context.Context, orderID string) (entities.Order, error) {
	u.mu.Lock()
	if u.state != CaptureLive || u.device == nil {
		u.mu.Unlock()
		return entities.Order{}, ErrCameraNotLive
	}
	dev := u.device
	u.state = CaptureCapturing
	u.mu.Unlock()

	defer u.CloseCamera()

	frame, err := dev.ReadJPEG()
	if err != nil {
		return entities.Order{}, fmt.Errorf("capture frame: %w", err)
	}

	filename := fmt.Sprintf("photo_%d.jpg", time.Now().UnixMilli())
	return u.UploadPhoto(ctx, orderID, filename, bytes.NewReader(frame))
}

// CloseCamera cancels the session and synchronously releases the device.
// Idempotent; safe to call in any state.
func (u *PhotoUseCase) CloseCamera() {
	u.mu.Lock()
	dev := u.device
	u.device = nil
	u.cancelled = true
	u.state = CaptureIdle
	u.mu.Unlock()

	if dev != nil {
		releaseDevice(dev)
		log.Printf("[photo][usecase] camera released")
	}
}

func (u *PhotoUseCase) State() CaptureState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// UploadPhoto sends the file through the shared multipart path and re-fetches
// the owning order so the caller sees the server-assigned photo record. On
// failure nothing local changes.
func (u *PhotoUseCase) UploadPhoto(ctx context.Context, orderID, filename string, file io.Reader) (entities.Order, error) {
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	fields := map[string]string{"orderId": orderID}
	if _, err := u.gateway.PostMultipart(ctx, "/photos/"+orderID, fields, "file", filename, file); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	log.Printf("[photo][usecase] upload success order_id=%s filename=%s", orderID, filename)
	return u.orders.GetOrder(ctx, orderID)
}

// DeletePhoto removes a photo and re-fetches the owning order.
func (u *PhotoUseCase) DeletePhoto(ctx context.Context, orderID, photoID string) (entities.Order, error) {
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if photoID == "" {
		return entities.Order{}, errors.New("invalid photo id")
	}

	if _, err := u.gateway.Delete(ctx, "/photos/"+photoID); err != nil {
		return entities.Order{}, err
	}
	log.Printf("[photo][usecase] photo deleted order_id=%s photo_id=%s", orderID, photoID)
	return u.orders.GetOrder(ctx, orderID)
}

func releaseDevice(dev interfaces.ICameraDevice) {
	if err := dev.Close(); err != nil {
		log.Printf("[photo][usecase] device close failed: %v", err)
	}
}
