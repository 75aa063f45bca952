package aggregates

import "time"

// ServiceSeries is the raw telemetry of one monitored service. Up and Down
// hold per-day check counts, oldest first, the last entry being today.
type ServiceSeries struct {
	ServiceName string
	Up          []int64
	Down        []int64
	Delay       []float64
	CurrentUp   int64
	CurrentDown int64
	TotalUp     int64
	TotalDown   int64
}

// Entry is one service of the upstream mapping, keyed as upstream keys it.
type Entry struct {
	Key    string
	Series ServiceSeries
}

type Services struct {
	Entries []Entry
	// CycleTransferStats is forwarded untouched to consumers
	CycleTransferStats []byte
}

type DayRecord struct {
	Completed bool
	Date      time.Time
}

type AggregateResult struct {
	Days     []DayRecord
	Uptime   float64
	AvgDelay float64
	// false when no check was recorded over the whole window
	HasData bool
}

type TrackedService struct {
	Key    string
	Title  string
	Result AggregateResult
}

type Tracker struct {
	Services           []TrackedService
	CycleTransferStats []byte
}
