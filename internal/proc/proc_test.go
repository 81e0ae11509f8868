package proc

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestCommToString(t *testing.T) {
	for name, tc := range map[string]struct {
		comm []int8
		want string
	}{
		"nul terminated": {comm: []int8{'m', 'o', 'n', 'g', 'o', 'd', 0, 0, 0}, want: "mongod"},
		"full width":     {comm: []int8{'m', 'o', 'n', 'g', 'o'}, want: "mongo"},
		"leading nul":    {comm: []int8{0, 'x', 'y'}, want: ""},
		"empty":          {comm: []int8{}, want: ""},
		"nil":            {comm: nil, want: ""},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Check(t, is.Equal(commToString(tc.comm), tc.want))
		})
	}
}
