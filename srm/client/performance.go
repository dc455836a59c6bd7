// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultMetric      = "803"
	DefaultGranularity = "sample"
)

// DefaultWindow is the look-back used when a PerformanceQuery has no Window.
var DefaultWindow = Window{N: 1, Unit: Days}

// PerformanceQuery selects volume performance samples of a storage system.
type PerformanceQuery struct {
	StorageSystem string
	Volume        string
	Metrics       []string
	Granularity   string
	Window        Window

	// now is overridden in tests.
	now func() time.Time
}

func (q PerformanceQuery) values() url.Values {
	metrics := q.Metrics
	if len(metrics) == 0 {
		metrics = []string{DefaultMetric}
	}
	granularity := q.Granularity
	if granularity == "" {
		granularity = DefaultGranularity
	}
	window := q.Window
	if window.IsZero() {
		window = DefaultWindow
	}
	now := time.Now
	if q.now != nil {
		now = q.now
	}

	return url.Values{
		"metrics":     {strings.Join(metrics, ",")},
		"granularity": {granularity},
		"startTime":   {window.StartTime(now())},
	}
}

// VolumePerformance returns the performance samples of the storage system's volumes
// whose device name contains the query volume name.
func (c *Client) VolumePerformance(ctx context.Context, q PerformanceQuery) ([]PerformanceSample, error) {
	if q.StorageSystem == "" || q.Volume == "" {
		return nil, errors.New("performance query: storage system and volume must be set")
	}

	sys, err := c.StorageSystem(ctx, q.StorageSystem)
	if err != nil {
		return nil, err
	}

	var samples []PerformanceSample
	if err := c.getJSON(ctx, storageSystemPath(sys.ID, "Volumes/Performance"), q.values(), &samples); err != nil {
		return nil, fmt.Errorf("get volume performance of storage system '%s': %w", q.StorageSystem, err)
	}

	matched := FilterSamplesByDevice(samples, q.Volume)
	c.Debugf("performance: %d of %d samples match volume '%s'", len(matched), len(samples), q.Volume)

	return matched, nil
}
