package service

import "errors"

var (
	ErrItemAlreadyExist = errors.New("item already exist")
	ErrPointNotFound    = errors.New("point not found")
	ErrRegionNotFound   = errors.New("region not found")
)
