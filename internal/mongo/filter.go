package mongo

import "github.com/Eric-Song-Nop/mongops/internal/model"

// Filter selects pids out of a classified topology. At most one criterion
// is honoured per invocation: port beats server type beats role.
type Filter struct {
	Port       *int
	ServerType *model.ServerType
	Role       *model.Role
}

// Apply returns the pids matching the highest-precedence criterion, in
// discovery order. ok is false when no criterion is set, signalling the
// caller to print the full topology instead of a pid list.
func (f Filter) Apply(top model.Topology) (pids []int, ok bool) {
	switch {
	case f.Port != nil:
		for _, d := range top.Mongod {
			if d.Port == *f.Port {
				pids = append(pids, d.PID)
			}
		}
		for _, s := range top.Mongos {
			if s.Port == *f.Port {
				pids = append(pids, s.PID)
			}
		}
		return pids, true

	case f.ServerType != nil:
		// Only mongod records carry a server type.
		for _, d := range top.Mongod {
			if d.ServerType == *f.ServerType {
				pids = append(pids, d.PID)
			}
		}
		return pids, true

	case f.Role != nil:
		switch *f.Role {
		case model.RoleMongod:
			for _, d := range top.Mongod {
				pids = append(pids, d.PID)
			}
		case model.RoleMongos:
			for _, s := range top.Mongos {
				pids = append(pids, s.PID)
			}
		case model.RoleLegacyShell:
			pids = append(pids, top.Shell...)
		}
		return pids, true
	}

	return nil, false
}
