package tokenstore

import "errors"

var ErrNotFound = errors.New("token not found")
