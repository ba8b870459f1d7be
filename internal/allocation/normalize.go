package allocation

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/width"
)

// Row is one raw table row keyed by column header. Cells are untyped text,
// the way they arrive from the reservation sheet or a CSV export.
type Row map[string]string

// Canonical column keys.
const (
	ColID           = "id"
	ColStartTime    = "start_time"
	ColCustomerName = "customer_name"
	ColAdultCount   = "adult_count"
	ColChildCount   = "child_count"
	ColTotalPrice   = "total_price"
	ColStatus       = "status"
	ColCheckedIn    = "checked_in"
)

// columnAliases lists the headers accepted for each canonical column, in lookup order.
// The Japanese headers are the ones produced by the operator's booking export.
var columnAliases = map[string][]string{
	ColID:           {ColID},
	ColStartTime:    {ColStartTime, "開始時間"},
	ColCustomerName: {ColCustomerName, "顧客"},
	ColAdultCount:   {ColAdultCount, "大人人数"},
	ColChildCount:   {ColChildCount, "小人人数"},
	ColTotalPrice:   {ColTotalPrice, "総販売金額"},
	ColStatus:       {ColStatus, "ステータス"},
	ColCheckedIn:    {ColCheckedIn, "チェックイン"},
}

// CancelledStatus is the only status value that removes a booking from aggregation.
const CancelledStatus = "cancelled"

// maxCell caps coerced numbers so absurd input cannot overflow the arithmetic.
const maxCell = 1<<31 - 1

// Slot is the canonical form of a start-time label.
type Slot struct {
	Label  string        `json:"label"`
	Offset time.Duration `json:"-"`
	Valid  bool          `json:"valid"`
}

// Record is a fully typed reservation row.
type Record struct {
	Index        int               `json:"-"`
	ID           string            `json:"id,omitempty"`
	StartTime    string            `json:"start_time"`
	Slot         Slot              `json:"-"`
	CustomerName string            `json:"customer_name"`
	AdultCount   int               `json:"adult_count"`
	ChildCount   int               `json:"child_count"`
	TotalPrice   int               `json:"total_price"`
	Status       string            `json:"status"`
	CheckedIn    bool              `json:"checked_in"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// Headcount is adults plus children.
func (r Record) Headcount() int {
	return r.AdultCount + r.ChildCount
}

// Active reports whether the booking takes part in slot aggregation.
func (r Record) Active() bool {
	return r.Status != CancelledStatus
}

// Normalize turns raw rows into typed records sorted by start time.
// Unparsable or empty times sort last; ties keep input order. The input is not modified.
func Normalize(rows []Row) []Record {
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = normalizeRow(i, row)
	}

	sort.SliceStable(records, func(a, b int) bool {
		return slotLess(records[a].Slot, records[b].Slot)
	})

	return records
}

func slotLess(a, b Slot) bool {
	if a.Valid != b.Valid {
		return a.Valid
	}
	if !a.Valid {
		return false
	}
	return a.Offset < b.Offset
}

func normalizeRow(index int, row Row) Record {
	cells := make(map[string]string, len(row))
	for k, v := range row {
		cells[strings.TrimSpace(k)] = v
	}

	used := make(map[string]bool, len(columnAliases))
	get := func(col string) string {
		for _, key := range columnAliases[col] {
			if v, ok := cells[key]; ok {
				used[key] = true
				return strings.TrimSpace(v)
			}
		}
		return ""
	}

	rec := Record{
		Index:        index,
		ID:           get(ColID),
		StartTime:    get(ColStartTime),
		CustomerName: get(ColCustomerName),
		AdultCount:   parseCount(get(ColAdultCount)),
		ChildCount:   parseCount(get(ColChildCount)),
		TotalPrice:   parsePrice(get(ColTotalPrice)),
		Status:       get(ColStatus),
		CheckedIn:    parseBool(get(ColCheckedIn)),
	}
	rec.Slot = ParseSlot(rec.StartTime)

	for k, v := range cells {
		if used[k] {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[k] = v
	}

	return rec
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(width.Narrow.String(s))
	s = strings.TrimPrefix(s, "¥")
	s = strings.TrimSuffix(s, "円")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func clampCell(f float64) int {
	switch {
	case f <= 0:
		return 0
	case f >= maxCell:
		return maxCell
	default:
		return int(f)
	}
}

func parseCount(s string) int {
	f, ok := parseNumber(s)
	if !ok {
		return 0
	}
	return clampCell(math.Trunc(f))
}

func parsePrice(s string) int {
	f, ok := parseNumber(s)
	if !ok {
		return 0
	}
	return clampCell(math.Round(f))
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y", "on", "済", "✓", "✔", "○", "◯":
		return true
	}
	return false
}

var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04PM",
	"3:04 PM",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var kanjiTime = regexp.MustCompile(`^(\d{1,2})時(?:(\d{1,2})分)?$`)

// ParseSlot canonicalizes a start-time label. Only the time of day is kept.
// A label that cannot be parsed keeps its trimmed text and is marked invalid.
func ParseSlot(label string) Slot {
	raw := strings.TrimSpace(label)
	s := strings.ToUpper(strings.TrimSpace(width.Narrow.String(raw)))
	if s == "" {
		return Slot{}
	}

	if m := kanjiTime.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins := 0
		if m[2] != "" {
			mins, _ = strconv.Atoi(m[2])
		}
		if h < 24 && mins < 60 {
			return newSlot(time.Duration(h)*time.Hour + time.Duration(mins)*time.Minute)
		}
		return Slot{Label: raw}
	}

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return newSlot(time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second)
	}

	return Slot{Label: raw}
}

func newSlot(offset time.Duration) Slot {
	h := int(offset / time.Hour)
	m := int(offset % time.Hour / time.Minute)
	sec := int(offset % time.Minute / time.Second)

	label := pad2(h) + ":" + pad2(m)
	if sec != 0 {
		label += ":" + pad2(sec)
	}
	return Slot{Label: label, Offset: offset, Valid: true}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
