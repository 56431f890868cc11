package internal

import (
	"html/template"
	"log/slog"
	"net/http"
	"support-desk/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
)

const DefaultInspectPrefix = "dialog:"

// RowMapper turns a raw key/value pair into a display row.
type RowMapper func(key string, val []byte) storage.Record

// StatsProvider feeds live counters to the page header.
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []storage.Record
	Stats  map[string]any
}

var inspectTemplate = template.Must(template.New("inspect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>support-desk inspect</title></head>
<body>
<form method="get"><input name="prefix" value="{{.Prefix}}"><button>Seek</button></form>
<ul>{{range $k, $v := .Stats}}<li>{{$k}}: {{$v}}</li>{{end}}</ul>
<table border="1">
<tr><th>Kind</th><th>Entity</th><th>Time</th><th>Detail</th><th>Key</th></tr>
{{range .Items}}<tr><td>{{.Kind}}</td><td>{{.EntityID}}</td><td>{{.Timestamp}}</td><td>{{.Detail}}</td><td>{{.Key}}</td></tr>
{{end}}</table>
</body>
</html>`))

// NewInspectHandler serves a read-only view of every key under the "prefix" query parameter.
func NewInspectHandler(log *slog.Logger, db *badger.DB, mapper RowMapper, statsProvider StatsProvider, limit int) http.Handler {
	if mapper == nil {
		mapper = storage.DescribeRecord
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = DefaultInspectPrefix
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				if limit > 0 && len(data.Items) >= limit {
					break
				}
				item := it.Item()
				if err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Error("Inspect failed", "prefix", prefix, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := inspectTemplate.Execute(w, data); err != nil {
			log.Error("Inspect rendering failed", "error", err)
		}
	})
}
