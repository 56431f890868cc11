package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is a readable view of one raw key/value pair, for debugging tools.
type Record struct {
	Key       string
	Kind      string
	EntityID  string
	Timestamp string
	Detail    string
}

// DescribeRecord decodes any key written by this package. Unknown keys are reported as RAW.
func DescribeRecord(key string, val []byte) Record {
	row := Record{
		Key:       key,
		Kind:      "RAW",
		EntityID:  "-",
		Timestamp: "-",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	switch {
	case strings.HasPrefix(key, dialogPrefix):
		var d diskDialog
		if err := decode(val, &d); err != nil {
			row.Detail = err.Error()
			return row
		}
		row.Kind = "DIALOG"
		row.EntityID = d.ID
		row.Timestamp = formatNano(d.LastActivityAt)
		row.Detail = fmt.Sprintf("%s topic=%s participants=%d", d.Status, d.Topic, len(d.Participants))
	case strings.HasPrefix(key, statusPrefix):
		parts := strings.SplitN(strings.TrimPrefix(key, statusPrefix), ":", 2)
		row.Kind = "INDEX"
		if len(parts) == 2 {
			row.EntityID = parts[1]
			row.Detail = parts[0]
		}
	case strings.HasPrefix(key, messageKeyPrefix):
		var m diskMessage
		if err := decode(val, &m); err != nil {
			row.Detail = err.Error()
			return row
		}
		row.Kind = "MESSAGE"
		row.EntityID = m.ID
		row.Timestamp = formatNano(m.At)
		row.Detail = fmt.Sprintf("[%s] %s: %s (read=%t)", m.Type, m.SenderID, m.Content, m.IsRead)
	case strings.HasPrefix(key, profilePrefix):
		var p diskProfile
		if err := decode(val, &p); err != nil {
			row.Detail = err.Error()
			return row
		}
		row.Kind = "PROFILE"
		row.EntityID = p.ID
		row.Detail = fmt.Sprintf("%s (%s)", p.DisplayName, p.Role)
	}
	return row
}

func formatNano(n int64) string {
	return fromNano(n).Format(time.DateTime)
}
