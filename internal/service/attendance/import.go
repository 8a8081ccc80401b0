package attendance

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/attendance"
)

// Raw biometric export layout: the machine writes the agent name in column
// index 2 and a combined datetime in column index 3. Everything else is
// ignored.
const (
	rawNameColumn     = 2
	rawDatetimeColumn = 3
)

// M/D/YYYY H:MM[:SS] AM|PM, as emitted by the attendance machine.
var rawDatetimeRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2})(?::\d{2})?\s*([AaPp][Mm])$`)

// EventKey identifies one agent's punches on one calendar day. Names are
// lowercased so the free-text machine names match the roster regardless of
// casing.
type EventKey struct {
	Date      string // "YYYY-MM-DD"
	AgentName string // lowercased
}

// ParseRawLog collapses raw machine rows into per-day punch sets. Rows with
// a blank name, a blank datetime, or a datetime that fails the pattern are
// skipped, never reported as errors. Identical punches deduplicate; the
// returned slices are sorted ascending (HH:MM sorts chronologically).
//
// Known limitation: when the first numeric field exceeds 12 the engine
// assumes a day-first source and swaps day and month. Ambiguous dates where
// both fields are <= 12 in a day-first file are silently misread.
func ParseRawLog(rows [][]string) (map[EventKey][]string, int) {
	events := make(map[EventKey]map[string]struct{})
	skipped := 0

	for _, row := range rows {
		name := strings.TrimSpace(cell(row, rawNameColumn))
		raw := strings.TrimSpace(cell(row, rawDatetimeColumn))
		if name == "" || raw == "" {
			skipped++
			continue
		}

		m := rawDatetimeRegex.FindStringSubmatch(raw)
		if m == nil {
			skipped++
			continue
		}

		month, _ := strconv.Atoi(m[1])
		dayNum, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		meridiem := strings.ToUpper(m[6])

		if month > 12 {
			month, dayNum = dayNum, month
		}
		if month < 1 || month > 12 || dayNum < 1 || dayNum > 31 || hour < 1 || hour > 12 || minute > 59 {
			skipped++
			continue
		}

		if meridiem == "PM" && hour != 12 {
			hour += 12
		} else if meridiem == "AM" && hour == 12 {
			hour = 0
		}

		key := EventKey{
			Date:      fmt.Sprintf("%04d-%02d-%02d", year, month, dayNum),
			AgentName: strings.ToLower(name),
		}
		if events[key] == nil {
			events[key] = make(map[string]struct{})
		}
		events[key][fmt.Sprintf("%02d:%02d", hour, minute)] = struct{}{}
	}

	result := make(map[EventKey][]string, len(events))
	for key, set := range events {
		times := make([]string, 0, len(set))
		for t := range set {
			times = append(times, t)
		}
		sort.Strings(times)
		result[key] = times
	}
	return result, skipped
}

// BuildDailyRecords emits exactly one record per (date, active agent) for
// every date present in the event map. Agents no longer active produce no
// rows even for historical dates. An agent with no punches on a covered
// date is Absent; otherwise login is the earliest punch, logout the latest
// when more than one exists, and the late flag compares login against the
// threshold lexicographically (valid for HH:MM within one day).
func BuildDailyRecords(
	events map[EventKey][]string,
	activeAgents []agent.Agent,
	lateThreshold string,
) []attendance.Record {
	dateSet := make(map[string]struct{})
	for key := range events {
		dateSet[key.Date] = struct{}{}
	}
	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var records []attendance.Record
	for _, date := range dates {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			continue
		}
		for _, a := range activeAgents {
			times := events[EventKey{Date: date, AgentName: strings.ToLower(a.Name)}]

			rec := attendance.Record{
				AgentCNIC: a.CNIC,
				AgentName: a.Name,
				Date:      parsed,
			}
			if len(times) == 0 {
				rec.Status = attendance.StatusAbsent
			} else {
				rec.Status = attendance.StatusPresent
				rec.LoginTime = times[0]
				if len(times) > 1 {
					rec.LogoutTime = times[len(times)-1]
				}
				rec.Late = rec.LoginTime > lateThreshold
			}
			records = append(records, rec)
		}
	}
	return records
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
