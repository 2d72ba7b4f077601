package utils

import "errors"

var (
	ErrInvalidAnswerCount = errors.New("invalid answer count")
	ErrUnknownQuestion    = errors.New("unknown question id")
	ErrInvalidChoice      = errors.New("invalid choice letter")
	ErrUnknownGroup       = errors.New("unknown personality group")
	ErrCatalogUnavailable = errors.New("book catalog unavailable")
	ErrSessionNotFound    = errors.New("quiz session not found")
	ErrSessionComplete    = errors.New("quiz session already complete")
	ErrSessionIncomplete  = errors.New("quiz session not complete")
	ErrInvalidTopN        = errors.New("invalid top_n parameter")
	ErrInvalidTrack       = errors.New("invalid question track")
	ErrStoreError         = errors.New("session store error")
)
