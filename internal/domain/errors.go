package domain

import "errors"

var (
	// ErrInvalidQuery signals an empty or whitespace-only search query.
	ErrInvalidQuery = errors.New("invalid search query")
	// ErrInvalidPagination signals out-of-range page or page_size values.
	ErrInvalidPagination = errors.New("invalid pagination")
	// ErrInvalidFilter signals an out-of-range auxiliary filter value.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrUnknownCollection signals a collection name this service does not serve.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrRecordNotFound signals a missing person record.
	ErrRecordNotFound = errors.New("record not found")
)
