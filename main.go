// mongops finds local MongoDB processes. With a filter flag it prints
// matching pids one per line; with no filter it prints the whole discovered
// topology as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Eric-Song-Nop/mongops/internal/model"
	"github.com/Eric-Song-Nop/mongops/internal/mongo"
	"github.com/Eric-Song-Nop/mongops/internal/proc"
)

type options struct {
	processType string
	serverType  string
	port        int
	verbose     bool

	filter mongo.Filter
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mongops",
		Short: "Find local MongoDB processes by role, server type, or port",
		Long: `mongops snapshots the local process table, picks out mongod, mongos,
and legacy mongo shell processes, and prints either the matching pids
(one per line) or a JSON summary of the whole deployment.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.processType, "type", "t", "", "process type to select (mongod, mongos, legacyshell)")
	flags.StringVar(&opts.serverType, "server-type", "", "mongod server type to select (standalone, replicaset, config, shard)")
	flags.IntVarP(&opts.port, "port", "p", 0, "port of the mongo daemon to search for")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log classification details to stderr")

	return cmd
}

// resolve validates the flags and builds the filter. This runs before any
// process enumeration, so conflicting flags never trigger a scan.
func (o *options) resolve(cmd *cobra.Command) error {
	var role *model.Role
	if cmd.Flags().Changed("type") {
		r, err := model.ParseRole(o.processType)
		if err != nil {
			return err
		}
		role = &r
	}

	var serverType *model.ServerType
	if cmd.Flags().Changed("server-type") {
		st, err := model.ParseServerType(o.serverType)
		if err != nil {
			return err
		}
		serverType = &st
	}

	var port *int
	if cmd.Flags().Changed("port") {
		port = &o.port
	}

	if role != nil && *role == model.RoleLegacyShell && port != nil {
		return errors.New("cannot use --port with the legacy shell")
	}

	o.filter = mongo.Filter{Port: port, ServerType: serverType, Role: role}
	return nil
}

func run(opts options) error {
	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	records, err := proc.Snapshot()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	top, err := mongo.Inspect(records)
	if err != nil {
		return err
	}

	if opts.verbose {
		dumpTopology(top)
	}

	pids, filtered := opts.filter.Apply(top)
	if !filtered {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(top)
	}

	for _, pid := range pids {
		fmt.Println(pid)
	}
	return nil
}

// dumpTopology logs every classified process after the scan.
func dumpTopology(top model.Topology) {
	for _, pid := range top.Shell {
		logrus.WithField("pid", pid).Debug("shell")
	}
	for _, d := range top.Mongod {
		logrus.WithFields(logrus.Fields{
			"pid":         d.PID,
			"port":        d.Port,
			"server_type": d.ServerType,
			"replica_set": d.ReplicaSetName,
		}).Debug("mongod")
	}
	for _, s := range top.Mongos {
		logrus.WithFields(logrus.Fields{
			"pid":  s.PID,
			"port": s.Port,
		}).Debug("mongos")
	}
}

func main() {
	logrus.SetOutput(os.Stderr)
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
