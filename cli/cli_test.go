// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/netdata/srmctl/srm/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		args    []string
		want    Option
		wantErr bool
	}{
		"no args": {
			args: nil,
			want: Option{Output: "table", Command: DefaultCommand},
		},
		"command with args": {
			args: []string{"-c", "/etc/srmctl.yaml", "-o", "json", "perf", "svc-prod-01", "db_data_01"},
			want: Option{
				ConfigFile: "/etc/srmctl.yaml",
				Output:     "json",
				Command:    "perf",
				Args:       []string{"svc-prod-01", "db_data_01"},
			},
		},
		"window and debug": {
			args: []string{"--window", "3d", "-d", "activity", "s", "v"},
			want: Option{
				Output:  "table",
				Window:  client.Window{N: 3, Unit: client.Days},
				Debug:   true,
				Command: "activity",
				Args:    []string{"s", "v"},
			},
		},
		"volume query": {
			args: []string{"volume", "db_data_01"},
			want: Option{Output: "table", Command: "volume", Args: []string{"db_data_01"}},
		},
		"unknown output": {
			args:    []string{"-o", "xml"},
			wantErr: true,
		},
		"bad window": {
			args:    []string{"-w", "3x"},
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			opt, err := Parse("srmctl", test.args)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if len(test.want.Args) == 0 {
				assert.Empty(t, opt.Args)
				opt.Args = nil
			}
			assert.Equal(t, test.want, *opt)
		})
	}
}
