// Package mongo classifies process records into MongoDB roles and filters
// the result down to pids.
package mongo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Eric-Song-Nop/mongops/internal/model"
)

const familyPrefix = "mongo"

// DefaultPort is assumed for any mongod/mongos launched without --port,
// matching the local development cluster convention.
const DefaultPort = 20017

// Classify assigns a role to a process record. Processes outside the mongo
// family return ok=false. A mongo-prefixed program that is not one of the
// known binaries is logged and also returns ok=false.
func Classify(rec model.ProcessRecord) (model.Role, bool) {
	if !strings.HasPrefix(rec.Program, familyPrefix) {
		return "", false
	}

	switch rec.Program {
	case "mongod":
		return model.RoleMongod, true
	case "mongos":
		return model.RoleMongos, true
	case "mongo":
		return model.RoleLegacyShell, true
	}

	logrus.WithFields(logrus.Fields{
		"pid":     rec.PID,
		"program": rec.Program,
	}).Warn("unexpected mongo-like process found")
	return "", false
}

// FindOption scans an argument vector for a flag's value. Both the
// space-separated form ("--port 20000") and the equals form
// ("--port=20000") are recognised; the first match wins. A flag given as
// the last token with no value resolves to absent, same as not given.
func FindOption(flag string, args []string) (string, bool) {
	for i, arg := range args {
		if arg == flag {
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", false
		}
		if strings.HasPrefix(arg, flag) {
			parts := strings.Split(arg, "=")
			if len(parts) == 2 && parts[0] == flag {
				return parts[1], true
			}
		}
	}
	return "", false
}

// resolvePort reads --port from an argument vector, defaulting when absent.
// An unparseable value is an operator error and aborts the run.
func resolvePort(args []string) (int, error) {
	raw, ok := FindOption("--port", args)
	if !ok {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("bad port number %q", raw)
	}
	return port, nil
}

// ServerInfoFor projects a mongod record into its server info. The type
// indicators are not mutually exclusive on a real command line; precedence
// is config server, then shard server, then replica set, then standalone.
func ServerInfoFor(rec model.ProcessRecord) (model.ServerInfo, error) {
	port, err := resolvePort(rec.Cmdline)
	if err != nil {
		return model.ServerInfo{}, fmt.Errorf("mongod pid %d: %w", rec.PID, err)
	}

	replSet, hasReplSet := FindOption("--replSet", rec.Cmdline)
	_, hasConfigSvr := FindOption("--configsvr", rec.Cmdline)
	_, hasShardSvr := FindOption("--shardsvr", rec.Cmdline)

	serverType := model.Standalone
	switch {
	case hasConfigSvr:
		serverType = model.Config
	case hasShardSvr:
		serverType = model.Shard
	case hasReplSet:
		serverType = model.ReplicaSet
	}

	info := model.ServerInfo{
		PID:        rec.PID,
		Port:       port,
		ServerType: serverType,
	}
	if serverType == model.ReplicaSet {
		info.ReplicaSetName = replSet
	}
	return info, nil
}

// RouterInfoFor projects a mongos record into its router info.
func RouterInfoFor(rec model.ProcessRecord) (model.RouterInfo, error) {
	port, err := resolvePort(rec.Cmdline)
	if err != nil {
		return model.RouterInfo{}, fmt.Errorf("mongos pid %d: %w", rec.PID, err)
	}
	return model.RouterInfo{PID: rec.PID, Port: port}, nil
}

// Inspect classifies a snapshot into a topology in a single sequential
// pass, preserving discovery order within each collection. Collections
// start non-nil so an empty topology serialises as [] rather than null.
func Inspect(records []model.ProcessRecord) (model.Topology, error) {
	top := model.Topology{
		Mongod: []model.ServerInfo{},
		Mongos: []model.RouterInfo{},
		Shell:  []int{},
	}

	for _, rec := range records {
		role, ok := Classify(rec)
		if !ok {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"pid":     rec.PID,
			"role":    role,
			"program": rec.Program,
			"cmdline": strings.Join(rec.Cmdline, " "),
		}).Debug("classified mongo process")

		switch role {
		case model.RoleMongod:
			info, err := ServerInfoFor(rec)
			if err != nil {
				return model.Topology{}, err
			}
			top.Mongod = append(top.Mongod, info)
		case model.RoleMongos:
			info, err := RouterInfoFor(rec)
			if err != nil {
				return model.Topology{}, err
			}
			top.Mongos = append(top.Mongos, info)
		case model.RoleLegacyShell:
			top.Shell = append(top.Shell, rec.PID)
		}
	}
	return top, nil
}
