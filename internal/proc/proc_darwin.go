//go:build darwin

package proc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/Eric-Song-Nop/mongops/internal/model"
)

// Compile-time interface check.
var _ Lister = (*darwinLister)(nil)

type darwinLister struct{}

func init() { L = &darwinLister{} }

// Snapshot lists pids via kern.proc.all, then fetches each process's raw
// KERN_PROCARGS2 block and decodes it. Per-process sysctl failures mean the
// process exited or its arguments are off-limits (SIP, another user); those
// processes are skipped.
func (d *darwinLister) Snapshot() ([]model.ProcessRecord, error) {
	kprocs, err := unix.SysctlKinfoProcSlice("kern.proc.all")
	if err != nil {
		return nil, fmt.Errorf("sysctl kern.proc.all: %w", err)
	}

	// kern.argmax is the kernel-wide upper bound on any procargs2 block,
	// fetched once per snapshot. SysctlRaw already sizes its buffer from
	// the kernel's reported length; the clamp below restates that bound
	// for the parser.
	argMax, err := unix.SysctlUint32("kern.argmax")
	if err != nil {
		return nil, fmt.Errorf("sysctl kern.argmax: %w", err)
	}

	records := make([]model.ProcessRecord, 0, len(kprocs))
	for i := range kprocs {
		pid := int(kprocs[i].Proc.P_pid)
		if pid <= 0 {
			continue
		}

		raw, err := unix.SysctlRaw("kern.procargs2", pid)
		if err != nil {
			continue
		}
		if len(raw) > int(argMax) {
			raw = raw[:argMax]
		}

		block, err := parseArgBlock(raw)
		if err != nil {
			continue
		}

		// Some blocks carry an empty executable path; the kinfo comm
		// field still names the process.
		program := block.Name
		if program == "" {
			program = commToString(kprocs[i].Proc.P_comm[:])
		}

		records = append(records, model.ProcessRecord{
			PID:     pid,
			Program: program,
			Cmdline: block.Args,
		})
	}
	return records, nil
}
