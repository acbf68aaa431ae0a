package chunkreader

import "errors"

// ErrToleranceExceeded is returned once the reader has fused: it has seen a
// run of non-delimiter bytes whose length reached the configured tolerance
// without finding a delimiter. The error is sticky — every call after the
// first occurrence returns it again.
var ErrToleranceExceeded = errors.New("chunkreader: tolerance exceeded")
