// Package ids allocates record identifiers: placeholders for rows that exist
// only in the console, and the next sequential id for a create call.
//
// NextPersistedID is racy across clients: two consoles creating at the same
// time compute the same id. The record store rejects the second create with
// 409 Conflict.
package ids

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"github.com/google/uuid"
)

const pendingPrefix = "temp_"

var now = time.Now

// NewPendingID returns a fresh placeholder, unique within the process.
func NewPendingID() models.RecordID {
	return models.PendingID(pendingPrefix + strconv.FormatInt(now().UnixMilli(), 10) + "_" + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// NextPersistedID returns max(numeric persisted ids)+1, or "1" when there are
// none. Pending ids and ids that do not parse as integers are skipped.
func NextPersistedID(existing []models.RecordID) models.RecordID {
	var highest int64
	for _, id := range existing {
		n, ok := id.Int()
		if !ok {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return models.PersistedID(strconv.FormatInt(highest+1, 10))
}

// Collect extracts the ids of records.
func Collect[T models.Record[T]](records []T) []models.RecordID {
	out := make([]models.RecordID, 0, len(records))
	for _, r := range records {
		out = append(out, r.GetID())
	}
	return out
}
