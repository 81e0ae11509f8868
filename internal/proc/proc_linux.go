//go:build linux

package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Eric-Song-Nop/mongops/internal/model"
)

// Compile-time interface check.
var _ Lister = (*linuxLister)(nil)

type linuxLister struct{}

func init() { L = &linuxLister{} }

// Snapshot walks /proc once. Entries that disappear between the directory
// read and the per-process reads are skipped.
func (l *linuxLister) Snapshot() ([]model.ProcessRecord, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("read /proc: %w", err)
	}

	var records []model.ProcessRecord
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue // not a process directory
		}

		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			// Process exited mid-scan, or is hidden from us entirely.
			continue
		}

		records = append(records, model.ProcessRecord{
			PID:     pid,
			Program: strings.TrimSuffix(string(comm), "\n"),
			Cmdline: readCmdline(entry.Name()),
		})
	}
	return records, nil
}

// readCmdline reads /proc/<pid>/cmdline and splits it on NUL. A read
// failure or an empty file yields an empty vector: kernel threads have no
// cmdline, and other users' processes may deny access.
func readCmdline(pid string) []string {
	data, err := os.ReadFile(filepath.Join("/proc", pid, "cmdline"))
	if err != nil {
		return nil
	}
	trimmed := strings.TrimRight(string(data), "\x00")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\x00")
}
