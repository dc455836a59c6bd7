// SPDX-License-Identifier: GPL-3.0-or-later

package client

import "errors"

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("not found")
