package model

import (
	"fmt"
	"strings"
)

// ProcessRecord is one OS process observed in a snapshot. Cmdline is the
// argument vector as launched (argv[0] first); it is empty when the OS
// refuses access to the process's arguments, which is normal for processes
// owned by other users.
type ProcessRecord struct {
	PID     int
	Program string
	Cmdline []string
}

// Role is the kind of mongo process a record was classified as.
type Role string

const (
	RoleMongod      Role = "mongod"
	RoleMongos      Role = "mongos"
	RoleLegacyShell Role = "legacyshell"
)

// AllRoles lists the known role names for flag validation.
var AllRoles = []Role{RoleMongod, RoleMongos, RoleLegacyShell}

// ParseRole resolves a user-supplied role name.
func ParseRole(s string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range AllRoles {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown process type %q (known: %s)", s, joinRoles(AllRoles))
}

func joinRoles(roles []Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// ServerType describes how a mongod is running.
type ServerType string

const (
	Standalone ServerType = "Standalone"
	ReplicaSet ServerType = "ReplicaSet"
	Config     ServerType = "Config"
	Shard      ServerType = "Shard"
)

// AllServerTypes lists the known server types for flag validation.
var AllServerTypes = []ServerType{Standalone, ReplicaSet, Config, Shard}

// ParseServerType resolves a user-supplied server type name, case-insensitively.
func ParseServerType(s string) (ServerType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, st := range AllServerTypes {
		if strings.ToLower(string(st)) == name {
			return st, nil
		}
	}
	names := make([]string, len(AllServerTypes))
	for i, st := range AllServerTypes {
		names[i] = strings.ToLower(string(st))
	}
	return "", fmt.Errorf("unknown server type %q (known: %s)", s, strings.Join(names, ", "))
}

// ServerInfo describes a classified mongod process.
type ServerInfo struct {
	PID            int        `json:"pid"`
	Port           int        `json:"port"`
	ServerType     ServerType `json:"server_type"`
	ReplicaSetName string     `json:"replica_set_name,omitempty"`
}

// RouterInfo describes a classified mongos process.
type RouterInfo struct {
	PID  int `json:"pid"`
	Port int `json:"port"`
}

// Topology holds every classified mongo process from one snapshot, each
// collection in discovery order.
type Topology struct {
	Mongod []ServerInfo `json:"mongod"`
	Mongos []RouterInfo `json:"mongos"`
	Shell  []int        `json:"shell"`
}
