package client

import (
	"errors"

	"github.com/morvin2701/pixelwalls/internal/common"
)

var (
	ErrUnavailable           = common.ErrUnavailable
	ErrUnauthorized          = common.ErrorUnauthorized
	ErrNotFound              = common.ErrorNotFound
	ErrAlreadyExists         = common.ErrorAlreadyExists
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
