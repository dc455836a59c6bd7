// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package logger

import (
	"os"

	"github.com/coreos/go-systemd/v22/journal"
)

// stderrIsJournal reports whether stderr is a journald stream, e.g. when srmctl
// runs from a systemd timer. Journald adds its own timestamps.
func stderrIsJournal() bool {
	if os.Getenv("JOURNAL_STREAM") == "" {
		return false
	}
	ok, err := journal.StderrIsJournalStream()
	return err == nil && ok
}
