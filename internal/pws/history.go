package pws

import (
	"slices"
	"time"

	"github.com/wx-tools/pws-client/internal/model"
)

// HistoryIter walks per-day history backward in time, fetching lazily so
// callers can stop pulling at any point. It follows the bufio.Scanner
// pattern: Next advances, Record returns the current record, Err reports
// the fetch error that ended iteration, if any.
type HistoryIter struct {
	fetchDay func(date time.Time) ([]model.Record, error)
	current  time.Time
	end      time.Time // zero means no lower bound
	buf      []model.Record
	rec      model.Record
	err      error
	done     bool
}

// newHistoryIter sets up a backward traversal from start to end, both
// inclusive. A zero start means today. When both bounds are given and
// start is the older one, they are swapped so traversal always runs from
// the more recent date backward; with no end bound the start is taken as
// given, even if it lies in the future.
func newHistoryIter(start, end time.Time, fetchDay func(time.Time) ([]model.Record, error)) *HistoryIter {
	if start.IsZero() {
		start = time.Now()
	} else if !end.IsZero() && start.Before(end) {
		start, end = end, start
	}
	if !end.IsZero() {
		end = toDate(end)
	}
	return &HistoryIter{
		fetchDay: fetchDay,
		current:  toDate(start),
		end:      end,
	}
}

// Next fetches until a record is available and reports whether one is.
// Iteration ends when the cursor passes the end bound, when a day comes
// back empty (the PWS history API returns data contiguously backward from
// present, so an empty day means no more history), or when a fetch fails.
func (it *HistoryIter) Next() bool {
	if it.done {
		return false
	}
	for len(it.buf) == 0 {
		if !it.end.IsZero() && it.current.Before(it.end) {
			it.done = true
			return false
		}
		records, err := it.fetchDay(it.current)
		if err != nil {
			it.err = err
			it.done = true
			return false
		}
		if len(records) == 0 {
			it.done = true
			return false
		}
		it.buf = records
		it.current = it.current.AddDate(0, 0, -1)
	}
	it.rec = it.buf[0]
	it.buf = it.buf[1:]
	return true
}

// Record returns the record produced by the last successful call to Next.
func (it *HistoryIter) Record() model.Record {
	return it.rec
}

// Err returns the error that terminated iteration, or nil if the range
// ran to completion.
func (it *HistoryIter) Err() error {
	return it.err
}

// HistoryDailyRange lazily yields one daily summary record per day,
// walking backward from start to end, both inclusive and most recent
// first. A zero start means today; a zero end walks back until the
// station's history runs out. Each call starts a fresh traversal.
func (c *Client) HistoryDailyRange(start, end time.Time, station ...string) *HistoryIter {
	st := optStation(station)
	return newHistoryIter(start, end, func(date time.Time) ([]model.Record, error) {
		record, err := c.HistoryDaily(date, st)
		if err != nil || record == nil {
			return nil, err
		}
		return []model.Record{record}, nil
	})
}

// HistoryHourlyRange lazily yields hourly records walking backward from
// start to end. Within each day, records come out latest hour first.
func (c *Client) HistoryHourlyRange(start, end time.Time, station ...string) *HistoryIter {
	st := optStation(station)
	return newHistoryIter(start, end, func(date time.Time) ([]model.Record, error) {
		records, err := c.HistoryHourly(date, st)
		if err != nil {
			return nil, err
		}
		slices.Reverse(records)
		return records, nil
	})
}
