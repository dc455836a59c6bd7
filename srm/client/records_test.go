// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolume_UnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Volume
		wantErr bool
	}{
		"all known keys": {
			input: `{"id":"1","Name":"v1","Volume Unique ID":"AB","Storage System":"s1","I/O Group":"io_grp0","Pool":"p1","Capacity":"10.00"}`,
			want:  Volume{ID: "1", Name: "v1", UID: "AB", StorageSystem: "s1", IOGroup: "io_grp0", Pool: "p1", Capacity: "10.00"},
		},
		"numeric values": {
			input: `{"id":7,"Name":"v2","Capacity":1024}`,
			want:  Volume{ID: "7", Name: "v2", Capacity: "1024"},
		},
		"missing keys": {
			input: `{"Other":"x"}`,
			want:  Volume{},
		},
		"not an object": {
			input:   `"v1"`,
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var v Volume
			err := json.Unmarshal([]byte(test.input), &v)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			v.Record = Record{}
			assert.Equal(t, test.want, v)
		})
	}
}

func TestRecord_KeepsRawObject(t *testing.T) {
	input := `{"Name":"p1","Used Capacity":"5.00","a.b":1}`

	var p Pool
	require.NoError(t, json.Unmarshal([]byte(input), &p))

	bs, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(bs))

	assert.Equal(t, "5.00", p.Get("Used Capacity").String())
	assert.Equal(t, int64(1), p.Get("a.b").Int())
	assert.False(t, p.Get("a").Exists())
}

func TestRecord_Fields(t *testing.T) {
	var s StorageSystem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","Name":"s1","Status":"Normal"}`), &s))

	fields := s.Fields()
	require.Len(t, fields, 3)

	var keys []string
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"id", "Name", "Status"}, keys)
	assert.Equal(t, "Normal", fields[2].Value.String())
}

func TestRecord_EmptyMarshal(t *testing.T) {
	bs, err := json.Marshal(Record{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(bs))
	assert.Empty(t, Record{}.Fields())
}

func TestPerformanceSample_UnmarshalJSON(t *testing.T) {
	var samples []PerformanceSample
	require.NoError(t, json.Unmarshal(dataPerformance, &samples))

	require.Len(t, samples, 3)
	assert.Equal(t, "db_data_01", samples[0].DeviceName)
	assert.Equal(t, 0.0, samples[0].MaxValue)
	assert.Equal(t, 152.5, samples[1].MaxValue)
	assert.Equal(t, 88.1, samples[2].MaxValue)
}

func TestParseRecord(t *testing.T) {
	r, err := ParseRecord([]byte(`{"Status":"Active","Samples":2}`))
	require.NoError(t, err)
	assert.Equal(t, "Active", r.Get("Status").String())
	assert.Equal(t, []string{"Status", "Samples"}, []string{r.Fields()[0].Key, r.Fields()[1].Key})

	_, err = ParseRecord([]byte(`[1,2]`))
	assert.Error(t, err)
}
