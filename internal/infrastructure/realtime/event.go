package realtime

// ChangeType mirrors the wire payload pushed to subscribed clients.
type ChangeType string

const (
	EventInsert ChangeType = "INSERT"
	EventUpdate ChangeType = "UPDATE"
	EventDelete ChangeType = "DELETE"
)

// ChangeEvent describes one row change on a table. New carries the row after
// the change, Old the row before it (nil for inserts).
type ChangeEvent struct {
	Event ChangeType  `json:"event"`
	Table string      `json:"table"`
	New   interface{} `json:"new,omitempty"`
	Old   interface{} `json:"old,omitempty"`

	// FilterValues holds the row's equality-filterable columns, e.g.
	// {"conversation_id": "c1"}, so subscriptions can match without
	// reflecting over New/Old.
	FilterValues map[string]string `json:"-"`
}

// Filter restricts a subscription to rows where column = value. The zero
// Filter matches every event on the table.
type Filter struct {
	Column string
	Value  string
}

func (f Filter) matches(ev ChangeEvent) bool {
	if f.Column == "" {
		return true
	}
	return ev.FilterValues[f.Column] == f.Value
}
