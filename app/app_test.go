// SPDX-License-Identifier: GPL-3.0-or-later

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/netdata/srmctl/config"
	"github.com/netdata/srmctl/srm/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

var (
	dataStorageSystems, _ = os.ReadFile("testdata/storage_systems.json")
	dataVolumes, _        = os.ReadFile("testdata/volumes.json")
	dataPools, _          = os.ReadFile("testdata/pools.json")
	dataPerformance, _    = os.ReadFile("testdata/performance.json")
)

func Test_testDataIsValid(t *testing.T) {
	for name, data := range map[string][]byte{
		"dataStorageSystems": dataStorageSystems,
		"dataVolumes":        dataVolumes,
		"dataPools":          dataPools,
		"dataPerformance":    dataPerformance,
	} {
		require.NotNil(t, data, name)
		assert.True(t, json.Valid(data), name)
	}
}

func TestApp_Run_Table(t *testing.T) {
	tests := map[string]struct {
		command      string
		args         []string
		input        string
		wantContains []string
		wantMissing  []string
	}{
		"volume by name": {
			command:      "volume",
			args:         []string{"DB_LOG_01"},
			wantContains: []string{"db_log_01", "60050768108101B3F000000000000A02", "Pool_SSD"},
			wantMissing:  []string{"backup_01"},
		},
		"volume by UID from prompt": {
			command:      "volume",
			input:        "60050768108101b3f000000000000a04\n",
			wantContains: []string{volumePrompt, "backup_01", "FS9200-DR"},
			wantMissing:  []string{"db_data_01"},
		},
		"volumes": {
			command:      "volumes",
			wantContains: []string{"db_data_01", "db_log_01", "backup_01", "TOTAL: 3"},
		},
		"systems": {
			command:      "systems",
			wantContains: []string{"svc-prod-01", "FS9200-DR", "SAN Volume Controller", "Warning"},
		},
		"system": {
			command:      "system",
			args:         []string{"FS9200-DR"},
			wantContains: []string{"7018", "Available Capacity", "65536"},
			wantMissing:  []string{"svc-prod-01"},
		},
		"system volumes": {
			command:      "system-volumes",
			args:         []string{"svc-prod-01"},
			wantContains: []string{"db_data_01", "db_log_01", "TOTAL: 2"},
			wantMissing:  []string{"backup_01"},
		},
		"pools": {
			command:      "pools",
			wantContains: []string{"Pool_SSD", "Pool_NL"},
		},
		"pool": {
			command:      "pool",
			args:         []string{"Pool_NL"},
			wantContains: []string{"3302", "81,920.00"},
			wantMissing:  []string{"Pool_SSD"},
		},
		"performance": {
			command:      "perf",
			args:         []string{"svc-prod-01", "db_log_01"},
			wantContains: []string{"db_log_01", "88.1"},
			wantMissing:  []string{"db_data_01"},
		},
		"active volume": {
			command:      "activity",
			args:         []string{"svc-prod-01", "db_log_01"},
			wantContains: []string{"Status", string(client.Active), "1d"},
		},
		"inactive volume": {
			command:      "activity",
			args:         []string{"svc-prod-01", "db_data_01"},
			wantContains: []string{string(client.Inactive)},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			srv, _ := prepareSrv(t)
			defer srv.Close()

			app, out := newTestApp(srv.URL, OutputTable, test.input)

			require.NoError(t, app.Run(context.Background(), test.command, test.args))

			for _, s := range test.wantContains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range test.wantMissing {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestApp_Run_JSON(t *testing.T) {
	srv, _ := prepareSrv(t)
	defer srv.Close()

	app, out := newTestApp(srv.URL, OutputJSON, "")
	require.NoError(t, app.Run(context.Background(), "volumes", nil))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "db_data_01", got[0]["Name"])
	assert.Equal(t, float64(100), got[1]["Capacity"])
}

func TestApp_Run_JSON_Single(t *testing.T) {
	srv, _ := prepareSrv(t)
	defer srv.Close()

	app, out := newTestApp(srv.URL, OutputJSON, "")
	require.NoError(t, app.Run(context.Background(), "activity", []string{"svc-prod-01", "db_log_01"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Active", got["Status"])
	assert.Equal(t, "svc-prod-01", got["Storage System"])
	assert.Equal(t, float64(1), got["Samples"])
}

func TestApp_Run_YAML(t *testing.T) {
	srv, _ := prepareSrv(t)
	defer srv.Close()

	app, out := newTestApp(srv.URL, OutputYAML, "")
	require.NoError(t, app.Run(context.Background(), "system", []string{"svc-prod-01"}))

	assert.True(t, strings.HasPrefix(out.String(), "id: \"6473\"\nName: svc-prod-01\n"), out.String())

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Normal", got["Status"])
}

func TestApp_Run_EmptyList(t *testing.T) {
	srv, mock := prepareSrv(t)
	defer srv.Close()
	mock.Pools = []byte(`[]`)

	app, out := newTestApp(srv.URL, OutputJSON, "")
	require.NoError(t, app.Run(context.Background(), "pools", nil))

	assert.JSONEq(t, `[]`, out.String())
}

func TestApp_Run_Errors(t *testing.T) {
	tests := map[string]struct {
		command    string
		args       []string
		input      string
		password   string
		wantUsage  bool
		wantNoAuth bool
	}{
		"unknown command": {
			command:    "snapshots",
			wantUsage:  true,
			wantNoAuth: true,
		},
		"missing argument": {
			command:    "pool",
			wantUsage:  true,
			wantNoAuth: true,
		},
		"too many arguments": {
			command:    "volume",
			args:       []string{"a", "b"},
			wantUsage:  true,
			wantNoAuth: true,
		},
		"wrong password": {
			command:    "volumes",
			password:   "wrong",
			wantNoAuth: true,
		},
		"volume not found": {
			command: "volume",
			args:    []string{"db_data_99"},
		},
		"empty prompt": {
			command: "volume",
			input:   "\n",
		},
		"no input": {
			command: "volume",
		},
		"unknown system": {
			command: "activity",
			args:    []string{"svc-prod-99", "db_data_01"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			srv, mock := prepareSrv(t)
			defer srv.Close()

			app, _ := newTestApp(srv.URL, OutputTable, test.input)
			if test.password != "" {
				app.Config.Password = test.password
			}

			err := app.Run(context.Background(), test.command, test.args)

			require.Error(t, err)
			assert.Equal(t, test.wantUsage, errors.Is(err, ErrUsage))
			if test.wantNoAuth {
				assert.Zero(t, mock.Logins())
			}
		})
	}
}

func TestApp_Run_NotFound(t *testing.T) {
	srv, _ := prepareSrv(t)
	defer srv.Close()

	app, out := newTestApp(srv.URL, OutputTable, "")

	err := app.Run(context.Background(), "pool", []string{"pool_ssd"})

	assert.True(t, errors.Is(err, client.ErrNotFound))
	assert.Empty(t, out.String())
}

func TestApp_Run_StopsOnHTTPError(t *testing.T) {
	srv, mock := prepareSrv(t)
	defer srv.Close()
	mock.FailStatus = http.StatusInternalServerError

	app, out := newTestApp(srv.URL, OutputTable, "")

	assert.Error(t, app.Run(context.Background(), "perf", []string{"svc-prod-01", "db_log_01"}))
	assert.Len(t, mock.Requests(), 1)
	assert.Empty(t, out.String())
}

func TestCommands(t *testing.T) {
	assert.Equal(t, []string{
		"activity", "perf", "pool", "pools", "system", "system-volumes", "systems", "volume", "volumes",
	}, Commands())
}

const (
	testUser     = "admin"
	testPassword = "secret"
)

func prepareSrv(t *testing.T) (*httptest.Server, *client.MockSRMAPIServer) {
	t.Helper()
	mock := &client.MockSRMAPIServer{
		User:           testUser,
		Password:       testPassword,
		StorageSystems: dataStorageSystems,
		Volumes:        dataVolumes,
		Pools:          dataPools,
		SystemVolumes:  map[string][]byte{"6473": systemVolumes(t, "svc-prod-01")},
		Performance:    map[string][]byte{"6473": dataPerformance},
	}
	return httptest.NewServer(mock), mock
}

// systemVolumes returns the volumes of testdata/volumes.json that belong to the storage system.
func systemVolumes(t *testing.T, system string) []byte {
	t.Helper()
	var all []map[string]any
	require.NoError(t, json.Unmarshal(dataVolumes, &all))

	var vols []map[string]any
	for _, v := range all {
		if v["Storage System"] == system {
			vols = append(vols, v)
		}
	}
	bs, err := json.Marshal(vols)
	require.NoError(t, err)
	return bs
}

func newTestApp(srvURL, output, input string) (*App, *bytes.Buffer) {
	cfg := config.Default()
	cfg.URL = srvURL + "/srm/"
	cfg.Username = testUser
	cfg.Password = testPassword

	var out bytes.Buffer
	return &App{
		Config: cfg,
		Output: output,
		In:     strings.NewReader(input),
		Out:    &out,
	}, &out
}
