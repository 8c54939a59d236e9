package imagestore

import "errors"

var ErrDisabled = errors.New("image storage is not configured")
