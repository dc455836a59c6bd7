// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"strings"

	"github.com/samber/lo"
)

// VolumeIndex answers repeated volume lookups without rescanning the list.
// Lookups return the same record as FindVolumeByUID and FindVolumeByName.
type VolumeIndex struct {
	byUID  map[string]Volume
	byName map[string]Volume
}

func NewVolumeIndex(volumes []Volume) *VolumeIndex {
	uid := func(v Volume) string { return strings.ToLower(v.UID) }
	name := func(v Volume) string { return strings.ToLower(v.Name) }

	return &VolumeIndex{
		byUID:  keyByFirst(volumes, uid),
		byName: keyByFirst(volumes, name),
	}
}

func (idx *VolumeIndex) ByUID(uid string) (Volume, bool) {
	v, ok := idx.byUID[strings.ToLower(uid)]
	return v, ok
}

func (idx *VolumeIndex) ByName(name string) (Volume, bool) {
	v, ok := idx.byName[strings.ToLower(name)]
	return v, ok
}

// StorageSystemIndex indexes storage systems by exact Name and id.
type StorageSystemIndex struct {
	byName map[string]StorageSystem
	byID   map[string]StorageSystem
}

func NewStorageSystemIndex(systems []StorageSystem) *StorageSystemIndex {
	return &StorageSystemIndex{
		byName: keyByFirst(systems, func(s StorageSystem) string { return s.Name }),
		byID:   keyByFirst(systems, func(s StorageSystem) string { return s.ID }),
	}
}

func (idx *StorageSystemIndex) ByName(name string) (StorageSystem, bool) {
	s, ok := idx.byName[name]
	return s, ok
}

func (idx *StorageSystemIndex) ByID(id string) (StorageSystem, bool) {
	s, ok := idx.byID[id]
	return s, ok
}

// keyByFirst keys items by key, keeping the first item for duplicate keys.
func keyByFirst[T any](items []T, key func(T) string) map[string]T {
	return lo.KeyBy(lo.UniqBy(items, key), key)
}
