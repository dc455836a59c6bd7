// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"strings"

	"github.com/samber/lo"
)

// FindStorageSystem returns the first storage system whose Name equals name.
func FindStorageSystem(systems []StorageSystem, name string) (StorageSystem, bool) {
	return lo.Find(systems, func(s StorageSystem) bool { return s.Name == name })
}

// FindVolumeByUID returns the first volume whose unique id equals uid ignoring case.
func FindVolumeByUID(volumes []Volume, uid string) (Volume, bool) {
	return lo.Find(volumes, func(v Volume) bool { return strings.EqualFold(v.UID, uid) })
}

// FindVolumeByName returns the first volume whose Name equals name ignoring case.
func FindVolumeByName(volumes []Volume, name string) (Volume, bool) {
	return lo.Find(volumes, func(v Volume) bool { return strings.EqualFold(v.Name, name) })
}

// FindPool returns the first pool whose Name equals name.
func FindPool(pools []Pool, name string) (Pool, bool) {
	return lo.Find(pools, func(p Pool) bool { return p.Name == name })
}

// FilterSamplesByDevice returns the samples whose device name contains volumeName.
func FilterSamplesByDevice(samples []PerformanceSample, volumeName string) []PerformanceSample {
	return lo.Filter(samples, func(s PerformanceSample, _ int) bool {
		return strings.Contains(s.DeviceName, volumeName)
	})
}
