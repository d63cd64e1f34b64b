package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrContactNotFound = errors.New("contact not found")
	ErrBlobNotFound    = errors.New("image not found")

	ErrInvalidUploadToken   = errors.New("upload slot is invalid or expired")
	ErrSlotAlreadyUsed      = errors.New("upload slot has already been used")
	ErrPayloadTooLarge      = errors.New("image is too large")
	ErrEmptyUpload          = errors.New("image is empty")
	ErrUnsupportedMediaType = errors.New("only images can be uploaded")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
