package model

import (
	"encoding/json"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseRole(t *testing.T) {
	for name, tc := range map[string]struct {
		in      string
		want    Role
		wantErr string
	}{
		"mongod":     {in: "mongod", want: RoleMongod},
		"mongos":     {in: "mongos", want: RoleMongos},
		"shell":      {in: "legacyshell", want: RoleLegacyShell},
		"mixed case": {in: "MongoD", want: RoleMongod},
		"padded":     {in: " mongos ", want: RoleMongos},
		"unknown":    {in: "mongoq", wantErr: "unknown process type"},
		"empty":      {in: "", wantErr: "unknown process type"},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ParseRole(tc.in)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			assert.NilError(t, err)
			assert.Check(t, is.Equal(got, tc.want))
		})
	}
}

func TestTopologyJSON(t *testing.T) {
	for name, tc := range map[string]struct {
		top  Topology
		want string
	}{
		"populated": {
			top: Topology{
				Mongod: []ServerInfo{
					{PID: 100, Port: 27017, ServerType: ReplicaSet, ReplicaSetName: "rs0"},
					{PID: 101, Port: 20017, ServerType: Standalone},
				},
				Mongos: []RouterInfo{{PID: 102, Port: 27017}},
				Shell:  []int{103},
			},
			want: `{"mongod":[{"pid":100,"port":27017,"server_type":"ReplicaSet","replica_set_name":"rs0"},` +
				`{"pid":101,"port":20017,"server_type":"Standalone"}],` +
				`"mongos":[{"pid":102,"port":27017}],"shell":[103]}`,
		},
		"empty collections render as arrays": {
			top: Topology{
				Mongod: []ServerInfo{},
				Mongos: []RouterInfo{},
				Shell:  []int{},
			},
			want: `{"mongod":[],"mongos":[],"shell":[]}`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(tc.top)
			assert.NilError(t, err)
			assert.Check(t, is.Equal(string(data), tc.want))
		})
	}
}

func TestParseServerType(t *testing.T) {
	for name, tc := range map[string]struct {
		in      string
		want    ServerType
		wantErr string
	}{
		"standalone": {in: "standalone", want: Standalone},
		"replicaset": {in: "replicaset", want: ReplicaSet},
		"config":     {in: "config", want: Config},
		"shard":      {in: "shard", want: Shard},
		"mixed case": {in: "ReplicaSet", want: ReplicaSet},
		"unknown":    {in: "primary", wantErr: "unknown server type"},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ParseServerType(tc.in)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			assert.NilError(t, err)
			assert.Check(t, is.Equal(got, tc.want))
		})
	}
}
