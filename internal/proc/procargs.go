package proc

import (
	"encoding/binary"
	"errors"
	"path/filepath"
	"strings"
)

// argBlock is the decoded form of a KERN_PROCARGS2 buffer: the executable
// path, its short name, the install root, the argument vector, and the
// environment strings.
type argBlock struct {
	Exe  string
	Name string
	Root string
	Args []string
	Env  []string
}

var errShortArgBlock = errors.New("argument block too short")

// parseArgBlock decodes a raw KERN_PROCARGS2 block. The layout is a 4-byte
// native-endian argument count, the NUL-terminated executable path, a run
// of NUL padding, argc NUL-terminated arguments, then NUL-terminated
// environment strings until an empty string or the end of the block. All
// offsets are bounded by len(block); the kernel owns the layout, so the
// bytes are taken as text without re-validation.
func parseArgBlock(block []byte) (argBlock, error) {
	if len(block) <= 4 {
		return argBlock{}, errShortArgBlock
	}
	nargs := int(int32(binary.NativeEndian.Uint32(block[:4])))

	cur := 4
	start := cur
	for cur < len(block) && block[cur] != 0 {
		cur++
	}
	exe := string(block[start:cur])

	// Skip the NUL padding between the executable path and argv[0].
	for cur < len(block) && block[cur] == 0 {
		cur++
	}

	args := []string{}
	start = cur
	for len(args) < nargs && cur < len(block) {
		if block[cur] == 0 {
			args = append(args, string(block[start:cur]))
			start = cur + 1
		}
		cur++
	}

	env := []string{}
	start = cur
	for cur < len(block) {
		if block[cur] == 0 {
			if cur == start {
				break // empty string terminates the environment region
			}
			env = append(env, string(block[start:cur]))
			start = cur + 1
		}
		cur++
	}

	name := ""
	if exe != "" {
		name = filepath.Base(exe)
	}

	return argBlock{
		Exe:  exe,
		Name: name,
		Root: rootDir(exe, env),
		Args: args,
		Env:  env,
	}, nil
}

// rootDir infers the install root: the executable's parent directory when
// the path is absolute, otherwise the value of the first PATH= environment
// entry.
func rootDir(exe string, env []string) string {
	if filepath.IsAbs(exe) {
		return filepath.Dir(exe)
	}
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			return strings.TrimPrefix(e, "PATH=")
		}
	}
	return ""
}
