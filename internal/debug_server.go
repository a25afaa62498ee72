package internal

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"timebank/domain"
	"timebank/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

//go:embed inspect.html
var templatesFS embed.FS

// Key prefixes written by the repositories.
var Prefixes = []string{"chat-", "availability:", "profile:", "user:"}

type InspectRow struct {
	Key    string
	Kind   string
	Owner  string
	Count  string
	Detail string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix   string
	Prefixes []string
	Items    []InspectRow
	Stats    map[string]any
}

// NewDebugServer serves a read-only view of the badger keys under endpoint.
func NewDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) *http.Server {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = DefaultMapper
	}

	mux := http.NewServeMux()
	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Prefix:   lo.CoalesceOrEmpty(r.URL.Query().Get("prefix"), Prefixes[0]),
			Prefixes: Prefixes,
			Stats:    map[string]any{},
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}
		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			prefix := []byte(data.Prefix)
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	return &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// StartDebugServer runs the inspector until ctx is canceled.
func StartDebugServer(ctx context.Context, log *slog.Logger, server *http.Server) {
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Debug server failed", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}

// DefaultMapper summarizes a stored value according to its key prefix.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{Key: key, Kind: "RAW", Owner: "-", Count: "-", Detail: fmt.Sprintf("Size: %d bytes", len(val))}

	switch {
	case strings.HasPrefix(key, "chat-"):
		row.Kind = "CHAT"
		row.Owner = strings.TrimPrefix(key, "chat-")
		var records []repositories.DiskMessage
		if err := json.Unmarshal(val, &records); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Count = fmt.Sprint(len(records))
		if len(records) > 0 {
			last := records[len(records)-1]
			row.Detail = fmt.Sprintf("last %s from %s at %s", last.Type, last.SenderID, last.Timestamp.Format(time.RFC3339))
		}
	case strings.HasPrefix(key, "availability:"):
		row.Kind = "SLOTS"
		row.Owner = strings.TrimPrefix(key, "availability:")
		var slots []domain.Slot
		if err := json.Unmarshal(val, &slots); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Count = fmt.Sprint(len(slots))
		row.Detail = strings.Join(lo.Map(slots, func(s domain.Slot, _ int) string {
			return fmt.Sprintf("%s %s-%s", s.Day, s.StartTime, s.EndTime)
		}), ", ")
	case strings.HasPrefix(key, "profile:"):
		row.Kind = "PROFILE"
		row.Owner = strings.TrimPrefix(key, "profile:")
		var profile domain.Profile
		if err := json.Unmarshal(val, &profile); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Detail = fmt.Sprintf("%s (%s)", profile.FullName, profile.Role)
	case strings.HasPrefix(key, "user:"):
		row.Kind = "USER"
		row.Owner = strings.TrimPrefix(key, "user:")
		// Never display the password hash
		row.Detail = "account"
	}
	return row
}
