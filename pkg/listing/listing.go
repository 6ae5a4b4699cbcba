// Package listing carries the ordering requested for a list page and
// resolves it against a per-entity column whitelist.
package listing

import "strings"

// Order is a requested sort key and direction. The zero value means the
// entity's default order.
type Order struct {
	Key  string
	Desc bool
}

// FromQuery builds an Order from the ?order= and ?dir= query values.
func FromQuery(key, dir string) Order {
	return Order{
		Key:  strings.ToLower(strings.TrimSpace(key)),
		Desc: strings.EqualFold(strings.TrimSpace(dir), "desc"),
	}
}

func (o Order) Dir() string {
	if o.Desc {
		return "desc"
	}
	return "asc"
}

// Columns maps public order keys to SQL column expressions. Default is
// the key used when the request names none or an unknown one; Tiebreak
// is appended so equal keys keep a stable order.
type Columns struct {
	Keys     map[string]string
	Default  string
	Tiebreak string
}

// Clause returns the ORDER BY clause for o. Unknown keys fall back to the
// default key so user input never reaches the SQL text. A key may map to
// several comma separated columns; the direction applies to each.
func (c Columns) Clause(o Order) string {
	col, ok := c.Keys[o.Key]
	if !ok {
		col = c.Keys[c.Default]
	}
	dir := " ASC"
	if o.Desc {
		dir = " DESC"
	}
	var parts []string
	seen := map[string]bool{}
	for _, p := range strings.Split(col, ",") {
		p = strings.TrimSpace(p)
		seen[p] = true
		parts = append(parts, p+dir)
	}
	if c.Tiebreak != "" && !seen[c.Tiebreak] {
		parts = append(parts, c.Tiebreak+dir)
	}
	return strings.Join(parts, ", ")
}

// Resolve normalizes o to a known key.
func (c Columns) Resolve(o Order) Order {
	if _, ok := c.Keys[o.Key]; !ok {
		o.Key = c.Default
	}
	return o
}
