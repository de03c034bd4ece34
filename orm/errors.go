package orm

import (
	"github.com/iov-one/kitties/errors"
)

// Orm reserves 100~109 error codes

// ErrInvalidBucket is returned when a bucket name does not follow the
// naming rules
var ErrInvalidBucket = errors.Register(100, "invalid bucket")
