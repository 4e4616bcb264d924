package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrWrongCurrentPassword = errors.New("current password is incorrect")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMediaTooLarge        = errors.New("media file is too large")
	ErrMediaFileMissing     = errors.New("no media file provided")

	// ErrMediaUpload wraps failures of the media host or of persisting the
	// hosted object's metadata.
	ErrMediaUpload = errors.New("error uploading file")

	// ErrMediaAccessForbidden is returned when the media exists but belongs
	// to another user.
	ErrMediaAccessForbidden = errors.New("media belongs to another user")

	// ErrMediaHostDelete is returned when the media host could not delete the
	// object. The metadata record is kept in that case.
	ErrMediaHostDelete = errors.New("error deleting file from media host")
)
