package engine

import (
	"io"
	"log"
)

// Logger is the minimal seam this package needs for verbose diagnostics,
// which never affect the result, only what gets reported about it. A
// *log.Logger satisfies it directly; callers that want solve diagnostics
// routed elsewhere can supply their own implementation without this
// package importing a logging framework.
type Logger interface {
	Printf(format string, args ...any)
}

// discardLogger is used when verbose diagnostics are disabled.
var discardLogger Logger = log.New(io.Discard, "", 0)
