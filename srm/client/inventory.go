// SPDX-License-Identifier: GPL-3.0-or-later

package client

import (
	"context"
	"fmt"
	"net/url"
)

// StorageSystems returns all storage systems monitored by Spectrum Control.
func (c *Client) StorageSystems(ctx context.Context) ([]StorageSystem, error) {
	var systems []StorageSystem
	if err := c.getJSON(ctx, urlPathStorageSystems, nil, &systems); err != nil {
		return nil, fmt.Errorf("get storage systems: %w", err)
	}
	return systems, nil
}

// StorageSystem returns the storage system with the given name.
func (c *Client) StorageSystem(ctx context.Context, name string) (StorageSystem, error) {
	systems, err := c.StorageSystems(ctx)
	if err != nil {
		return StorageSystem{}, err
	}
	sys, ok := FindStorageSystem(systems, name)
	if !ok {
		return StorageSystem{}, fmt.Errorf("storage system '%s': %w", name, ErrNotFound)
	}
	return sys, nil
}

// StorageSystemVolumes returns the volumes that belong to the named storage system.
func (c *Client) StorageSystemVolumes(ctx context.Context, systemName string) ([]Volume, error) {
	sys, err := c.StorageSystem(ctx, systemName)
	if err != nil {
		return nil, err
	}

	var volumes []Volume
	if err := c.getJSON(ctx, storageSystemPath(sys.ID, "Volumes/"), nil, &volumes); err != nil {
		return nil, fmt.Errorf("get volumes of storage system '%s': %w", systemName, err)
	}
	return volumes, nil
}

// Volumes returns all volumes monitored by Spectrum Control.
func (c *Client) Volumes(ctx context.Context) ([]Volume, error) {
	var volumes []Volume
	if err := c.getJSON(ctx, urlPathVolumes, nil, &volumes); err != nil {
		return nil, fmt.Errorf("get volumes: %w", err)
	}
	return volumes, nil
}

// VolumeByUID returns the volume with the given unique id, compared case-insensitively.
func (c *Client) VolumeByUID(ctx context.Context, uid string) (Volume, error) {
	volumes, err := c.Volumes(ctx)
	if err != nil {
		return Volume{}, err
	}
	vol, ok := FindVolumeByUID(volumes, uid)
	if !ok {
		return Volume{}, fmt.Errorf("volume with unique id '%s': %w", uid, ErrNotFound)
	}
	return vol, nil
}

// VolumeByName returns the volume with the given name, compared case-insensitively.
func (c *Client) VolumeByName(ctx context.Context, name string) (Volume, error) {
	volumes, err := c.Volumes(ctx)
	if err != nil {
		return Volume{}, err
	}
	vol, ok := FindVolumeByName(volumes, name)
	if !ok {
		return Volume{}, fmt.Errorf("volume '%s': %w", name, ErrNotFound)
	}
	return vol, nil
}

// Pools returns all pools monitored by Spectrum Control.
func (c *Client) Pools(ctx context.Context) ([]Pool, error) {
	var pools []Pool
	if err := c.getJSON(ctx, urlPathPools, nil, &pools); err != nil {
		return nil, fmt.Errorf("get pools: %w", err)
	}
	return pools, nil
}

// Pool returns the pool with the given name.
func (c *Client) Pool(ctx context.Context, name string) (Pool, error) {
	pools, err := c.Pools(ctx)
	if err != nil {
		return Pool{}, err
	}
	pool, ok := FindPool(pools, name)
	if !ok {
		return Pool{}, fmt.Errorf("pool '%s': %w", name, ErrNotFound)
	}
	return pool, nil
}

func storageSystemPath(id, sub string) string {
	return urlPathStorageSystems + url.PathEscape(id) + "/" + sub
}
