package qrcode

import "errors"

var (
	// ErrEmptyContent indicates the content to encode has zero length.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrContentTooLarge indicates the content exceeds the capacity of the
	// chosen error-correction level.
	ErrContentTooLarge = errors.New("content is too large for QR code encoding")

	// ErrEncodingFailed indicates the encode capability failed for a reason
	// other than capacity.
	ErrEncodingFailed = errors.New("QR code encoding failed")

	// ErrInvalidColor indicates a color string is neither a known name nor
	// a 6-digit hex triplet.
	ErrInvalidColor = errors.New("invalid color format")

	// ErrLogoTooLarge indicates the requested logo size is outside the
	// scannability-preserving range.
	ErrLogoTooLarge = errors.New("logo size must be between 5% and 30% of QR code")

	// ErrInvalidLogoPath indicates a logo or background image could not be
	// loaded.
	ErrInvalidLogoPath = errors.New("failed to load image")

	// ErrImageProcessingFailed indicates an art-generation or image-decode
	// failure while compositing.
	ErrImageProcessingFailed = errors.New("image processing failed")

	// ErrBackgroundTooSmall indicates the background image leaves less than
	// two pixels per module, which is not reliably scannable.
	ErrBackgroundTooSmall = errors.New("background image is too small for QR code")

	// ErrCapabilityUnavailable indicates a render path that is not enabled
	// in the pipeline's capability set.
	ErrCapabilityUnavailable = errors.New("capability unavailable")

	// ErrIO indicates a filesystem failure while saving an artifact.
	ErrIO = errors.New("i/o error")
)
