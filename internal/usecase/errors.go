package usecase

import "errors"

var ErrUnknownView = errors.New("unknown view")
