// SPDX-License-Identifier: GPL-3.0-or-later

package client

import "github.com/samber/lo"

type Activity string

const (
	Active   Activity = "Active"
	Inactive Activity = "Inactive"
)

// CheckActivity reports Active if any sample's max value is above zero.
func CheckActivity(samples []PerformanceSample) Activity {
	if lo.SomeBy(samples, func(s PerformanceSample) bool { return s.MaxValue > 0 }) {
		return Active
	}
	return Inactive
}
