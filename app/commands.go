// SPDX-License-Identifier: GPL-3.0-or-later

package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/netdata/srmctl/srm/client"
)

const volumePrompt = "Volume name or UID: "

var (
	volumeHeader = table.Row{"ID", "Name", "UID", "Storage System", "Pool", "Capacity"}
	systemHeader = table.Row{"ID", "Name", "Type", "Status"}
	poolHeader   = table.Row{"ID", "Name", "Storage System", "Capacity"}
	sampleHeader = table.Row{"Device", "Max Value"}
)

func volumeRow(v client.Volume) table.Row {
	return table.Row{v.ID, v.Name, v.UID, v.StorageSystem, v.Pool, v.Capacity}
}

func systemRow(s client.StorageSystem) table.Row {
	return table.Row{s.ID, s.Name, s.Get("Type").String(), s.Get("Status").String()}
}

func poolRow(p client.Pool) table.Row {
	return table.Row{p.ID, p.Name, p.StorageSystem, p.Capacity}
}

func sampleRow(s client.PerformanceSample) table.Row {
	return table.Row{s.DeviceName, s.MaxValue}
}

// volume looks a volume up by UID first, then by name. Without an argument
// the query is read from In.
func (a *App) volume(ctx context.Context, c *client.Client, args []string) (*result, error) {
	var query string
	if len(args) > 0 {
		query = args[0]
	} else {
		q, err := a.prompt(volumePrompt)
		if err != nil {
			return nil, err
		}
		query = q
	}
	if query == "" {
		return nil, errors.New("volume: empty name or UID")
	}

	volumes, err := c.Volumes(ctx)
	if err != nil {
		return nil, err
	}

	idx := client.NewVolumeIndex(volumes)
	v, ok := idx.ByUID(query)
	if !ok {
		if v, ok = idx.ByName(query); !ok {
			return nil, fmt.Errorf("volume '%s': %w", query, client.ErrNotFound)
		}
	}
	a.Debugf("volume '%s' matched id '%s'", query, v.ID)

	return single(v), nil
}

func (a *App) prompt(msg string) (string, error) {
	if _, err := io.WriteString(a.Out, msg); err != nil {
		return "", err
	}

	sc := bufio.NewScanner(a.In)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read input: %v", err)
		}
		return "", errors.New("read input: no input")
	}

	return strings.TrimSpace(sc.Text()), nil
}

func (a *App) volumes(ctx context.Context, c *client.Client, _ []string) (*result, error) {
	volumes, err := c.Volumes(ctx)
	if err != nil {
		return nil, err
	}
	return list(volumes, volumeHeader, volumeRow), nil
}

func (a *App) systems(ctx context.Context, c *client.Client, _ []string) (*result, error) {
	systems, err := c.StorageSystems(ctx)
	if err != nil {
		return nil, err
	}
	return list(systems, systemHeader, systemRow), nil
}

func (a *App) system(ctx context.Context, c *client.Client, args []string) (*result, error) {
	sys, err := c.StorageSystem(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return single(sys), nil
}

func (a *App) systemVolumes(ctx context.Context, c *client.Client, args []string) (*result, error) {
	volumes, err := c.StorageSystemVolumes(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return list(volumes, volumeHeader, volumeRow), nil
}

func (a *App) pools(ctx context.Context, c *client.Client, _ []string) (*result, error) {
	pools, err := c.Pools(ctx)
	if err != nil {
		return nil, err
	}
	return list(pools, poolHeader, poolRow), nil
}

func (a *App) pool(ctx context.Context, c *client.Client, args []string) (*result, error) {
	p, err := c.Pool(ctx, args[0])
	if err != nil {
		return nil, err
	}
	return single(p), nil
}

func (a *App) performance(ctx context.Context, c *client.Client, args []string) (*result, error) {
	samples, err := c.VolumePerformance(ctx, a.performanceQuery(args[0], args[1]))
	if err != nil {
		return nil, err
	}
	return list(samples, sampleHeader, sampleRow), nil
}

func (a *App) activity(ctx context.Context, c *client.Client, args []string) (*result, error) {
	q := a.performanceQuery(args[0], args[1])

	samples, err := c.VolumePerformance(ctx, q)
	if err != nil {
		return nil, err
	}

	status := client.CheckActivity(samples)
	a.Debugf("volume '%s': %d samples, %s", q.Volume, len(samples), status)

	bs, err := json.Marshal(struct {
		StorageSystem string `json:"Storage System"`
		Volume        string `json:"Volume"`
		Window        string `json:"Window"`
		Samples       int    `json:"Samples"`
		Status        string `json:"Status"`
	}{
		StorageSystem: q.StorageSystem,
		Volume:        q.Volume,
		Window:        lo.Ternary(q.Window.IsZero(), client.DefaultWindow, q.Window).String(),
		Samples:       len(samples),
		Status:        string(status),
	})
	if err != nil {
		return nil, err
	}

	rec, err := client.ParseRecord(bs)
	if err != nil {
		return nil, err
	}
	return single(rec), nil
}

func (a *App) performanceQuery(system, volume string) client.PerformanceQuery {
	perf := a.Config.Performance
	return client.PerformanceQuery{
		StorageSystem: system,
		Volume:        volume,
		Metrics:       perf.Metrics,
		Granularity:   perf.Granularity,
		Window:        perf.Window,
	}
}
