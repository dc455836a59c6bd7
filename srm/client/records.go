// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Record keys used by the Spectrum Control REST API.
const (
	keyID            = "id"
	keyName          = "Name"
	keyVolumeUID     = "Volume Unique ID"
	keyStorageSystem = "Storage System"
	keyIOGroup       = "I/O Group"
	keyPool          = "Pool"
	keyCapacity      = "Capacity"
	keyDeviceName    = "deviceName"
	keyMaxValue      = "maxValue"
)

// Record is an opaque JSON object returned by the API. It keeps the original bytes
// so the object can be printed or re-encoded unchanged.
type Record struct {
	raw []byte
}

// Field is a top-level key/value pair of a Record.
type Field struct {
	Key   string
	Value gjson.Result
}

// ParseRecord returns the Record of a JSON object.
func ParseRecord(data []byte) (Record, error) {
	var r Record
	err := r.UnmarshalJSON(data)
	return r, err
}

func (r *Record) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return fmt.Errorf("expected JSON object, got %s", res.Type)
	}
	r.raw = append([]byte(nil), data...)
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("{}"), nil
	}
	return r.raw, nil
}

// Get returns the value of a top-level key. Keys are matched literally.
func (r Record) Get(key string) gjson.Result {
	return gjson.GetBytes(r.raw, escapeKey(key))
}

// Fields returns the top-level key/value pairs in document order.
func (r Record) Fields() []Field {
	var fields []Field
	gjson.ParseBytes(r.raw).ForEach(func(k, v gjson.Result) bool {
		fields = append(fields, Field{Key: k.String(), Value: v})
		return true
	})
	return fields
}

// Raw returns the JSON encoding of the record.
func (r Record) Raw() json.RawMessage {
	return r.raw
}

func (r Record) str(key string) string {
	return r.Get(key).String()
}

var keyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`!`, `\!`,
	`=`, `\=`,
	`<`, `\<`,
	`>`, `\>`,
	`%`, `\%`,
)

func escapeKey(key string) string { return keyEscaper.Replace(key) }

// StorageSystem represents a '/StorageSystems/' list item.
type StorageSystem struct {
	Record
	ID   string
	Name string
}

func (s *StorageSystem) UnmarshalJSON(data []byte) error {
	if err := s.Record.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("storage system: %v", err)
	}
	s.ID = s.str(keyID)
	s.Name = s.str(keyName)
	return nil
}

// Volume represents a '/Volumes/' list item.
type Volume struct {
	Record
	ID            string
	Name          string
	UID           string
	StorageSystem string
	IOGroup       string
	Pool          string
	Capacity      string
}

func (v *Volume) UnmarshalJSON(data []byte) error {
	if err := v.Record.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("volume: %v", err)
	}
	v.ID = v.str(keyID)
	v.Name = v.str(keyName)
	v.UID = v.str(keyVolumeUID)
	v.StorageSystem = v.str(keyStorageSystem)
	v.IOGroup = v.str(keyIOGroup)
	v.Pool = v.str(keyPool)
	v.Capacity = v.str(keyCapacity)
	return nil
}

// Pool represents a '/Pools/' list item.
type Pool struct {
	Record
	ID            string
	Name          string
	StorageSystem string
	Capacity      string
}

func (p *Pool) UnmarshalJSON(data []byte) error {
	if err := p.Record.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("pool: %v", err)
	}
	p.ID = p.str(keyID)
	p.Name = p.str(keyName)
	p.StorageSystem = p.str(keyStorageSystem)
	p.Capacity = p.str(keyCapacity)
	return nil
}

// PerformanceSample is a metric reading for a device within a query window.
type PerformanceSample struct {
	Record
	DeviceName string
	MaxValue   float64
}

func (s *PerformanceSample) UnmarshalJSON(data []byte) error {
	if err := s.Record.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("performance sample: %v", err)
	}
	s.DeviceName = s.str(keyDeviceName)
	s.MaxValue = s.Get(keyMaxValue).Float()
	return nil
}
