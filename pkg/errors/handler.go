package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// The process-wide handler. The CLI installs a LogHandler built from its
// flags; library code only reports.
var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h and returns the handler it replaced. A nil h
// installs a quiet LogHandler writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	old := handler
	handler = h
	return old
}

// CurrentHandler returns the installed handler.
func CurrentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report delivers err to the installed handler, stamping it if needed.
func Report(err *LayoutError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	CurrentHandler().HandleError(err)
}

// ReportPanic delivers a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	CurrentHandler().HandlePanic(err)
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// RecoverWithCallback must be deferred directly. On a panic it reports a
// PanicError for op, then passes the panic value to callback so the caller
// can turn it into a returned error.
//
//	defer errors.RecoverWithCallback("cmd.arrange", func(r any) {
//		err = fmt.Errorf("internal error: %v", r)
//	})
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	if callback != nil {
		callback(r)
	}
}

// maxStackFrames bounds CaptureStack.
const maxStackFrames = 32

// CaptureStack formats the stack above its caller, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	pcs := make([]uintptr, maxStackFrames)
	// Skip runtime.Callers, CaptureStack and the frame that called it.
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
