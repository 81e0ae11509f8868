// Package proc takes a one-shot snapshot of the processes visible to the
// invoking user, including each process's launch argument vector.
package proc

import (
	"errors"

	"github.com/Eric-Song-Nop/mongops/internal/model"
)

// Lister enumerates the currently running processes.
type Lister interface {
	// Snapshot returns one record per visible process, in no particular
	// order. Processes that vanish or deny access mid-enumeration are
	// skipped; only a failure to begin enumeration at all is an error.
	Snapshot() ([]model.ProcessRecord, error)
}

// L is the platform-specific implementation, initialised by an init() in
// the proc_linux.go or proc_darwin.go file.
var L Lister

// Snapshot enumerates processes using the platform lister.
func Snapshot() ([]model.ProcessRecord, error) {
	if L == nil {
		return nil, errors.New("process listing is not supported on this platform")
	}
	return L.Snapshot()
}

// commToString converts a kernel comm field, a NUL-terminated fixed-size
// char array, into a Go string.
func commToString(comm []int8) string {
	buf := make([]byte, 0, len(comm))
	for _, c := range comm {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}
