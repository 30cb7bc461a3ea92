package app

import (
	"sort"
	"strings"

	"github.com/rcase/plumbjobs/internal/dateutil"
	"github.com/rcase/plumbjobs/internal/model"
)

// DayCounts tallies a day's jobs by status. Statuses outside the recognized
// set count toward Total only.
type DayCounts struct {
	Open  int `json:"open"`
	Done  int `json:"done"`
	Paid  int `json:"paid"`
	Total int `json:"total"`
}

// DaySummary pairs a calendar day with its job counts.
type DaySummary struct {
	Date   string    `json:"date"`
	Counts DayCounts `json:"counts"`
}

// Jobs returns copies of all jobs in collection order (newest first).
func (a *App) Jobs() []*model.Job {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*model.Job, 0, len(a.jobs))
	for _, j := range a.jobs {
		out = append(out, j.Clone())
	}
	return out
}

// JobsForDay returns copies of all jobs scheduled on the given day, in
// collection order.
func (a *App) JobsForDay(day string) []*model.Job {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.jobsForDayLocked(day)
}

func (a *App) jobsForDayLocked(day string) []*model.Job {
	var out []*model.Job
	for _, j := range a.jobs {
		if j.Date == day {
			out = append(out, j.Clone())
		}
	}
	return out
}

// CountsForDay tallies the day's jobs by status.
func (a *App) CountsForDay(day string) DayCounts {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.countsForDayLocked(day)
}

func (a *App) countsForDayLocked(day string) DayCounts {
	var c DayCounts
	for _, j := range a.jobs {
		if j.Date != day {
			continue
		}
		c.Total++
		switch j.Status {
		case model.StatusOpen:
			c.Open++
		case model.StatusDone:
			c.Done++
		case model.StatusPaid:
			c.Paid++
		}
	}
	return c
}

// Week returns seven day summaries starting at the Sunday on or before the
// anchor date.
func (a *App) Week(anchor string) []DaySummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	day := dateutil.StartOfWeek(anchor)
	out := make([]DaySummary, 0, 7)
	for i := 0; i < 7; i++ {
		out = append(out, DaySummary{Date: day, Counts: a.countsForDayLocked(day)})
		day = dateutil.AddDays(day, 1)
	}
	return out
}

// StatusFilterAll matches every status in FilterDay.
const StatusFilterAll = "all"

// FilterDay returns the day's jobs matching the status filter and free-text
// query, sorted ascending by creation time. The query is a case-insensitive
// substring match over name, address, type, and notes.
func (a *App) FilterDay(day, statusFilter, query string) []*model.Job {
	a.mu.Lock()
	defer a.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var out []*model.Job
	for _, j := range a.jobs {
		if j.Date != day {
			continue
		}
		if statusFilter != "" && statusFilter != StatusFilterAll && j.Status != statusFilter {
			continue
		}
		if query != "" {
			hay := strings.ToLower(j.Name + " " + j.Address + " " + j.Type + " " + j.Notes)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		out = append(out, j.Clone())
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].CreatedAt.Before(out[k].CreatedAt)
	})
	return out
}

// SearchJobs returns jobs matching the status filter and free-text query
// across all days, in collection order. This is the flat list view.
func (a *App) SearchJobs(statusFilter, query string) []*model.Job {
	a.mu.Lock()
	defer a.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var out []*model.Job
	for _, j := range a.jobs {
		if statusFilter != "" && statusFilter != StatusFilterAll && j.Status != statusFilter {
			continue
		}
		if query != "" {
			hay := strings.ToLower(j.Name + " " + j.Address + " " + j.Type + " " + j.Notes)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		out = append(out, j.Clone())
	}
	return out
}
