package server

import (
	"math"
	"strings"
	"time"

	"github.com/appclacks/dashboard/pkg/server/aggregates"
	jsoniter "github.com/json-iterator/go"
)

const neverExpirePrefix = "0000-00-00"

type publicNote struct {
	BillingDataMod *struct {
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
		AutoRenewal string `json:"autoRenewal"`
		Cycle       string `json:"cycle"`
		Amount      string `json:"amount"`
	} `json:"billingDataMod"`
	PlanDataMod *struct {
		Bandwidth    string `json:"bandwidth"`
		TrafficVol   string `json:"trafficVol"`
		TrafficType  string `json:"trafficType"`
		IPv4         string `json:"IPv4"`
		IPv6         string `json:"IPv6"`
		NetworkRoute string `json:"networkRoute"`
		Extra        string `json:"extra"`
	} `json:"planDataMod"`
}

// ParsePublicNote decodes the billing and plan data operators store in the
// server public note. It returns false when the note is empty or invalid.
func ParsePublicNote(note string) (*aggregates.PublicNote, bool) {
	if strings.TrimSpace(note) == "" {
		return nil, false
	}
	var raw publicNote
	if err := jsoniter.UnmarshalFromString(note, &raw); err != nil {
		return nil, false
	}
	result := &aggregates.PublicNote{}
	if raw.BillingDataMod != nil {
		b := aggregates.BillingData(*raw.BillingDataMod)
		result.Billing = &b
	}
	if raw.PlanDataMod != nil {
		p := aggregates.PlanData(*raw.PlanDataMod)
		result.Plan = &p
	}
	return result, true
}

// ComputeBilling returns nil when the note carries no end date or when the
// end date cannot be parsed.
func ComputeBilling(now time.Time, note *aggregates.PublicNote) *aggregates.Billing {
	if note == nil || note.Billing == nil || note.Billing.EndDate == "" {
		return nil
	}
	if strings.HasPrefix(note.Billing.EndDate, neverExpirePrefix) {
		return &aggregates.Billing{NeverExpire: true}
	}
	end, err := parseDate(note.Billing.EndDate)
	if err != nil {
		return nil
	}
	daysLeft := DaysBetween(end, now)
	return &aggregates.Billing{
		DaysLeft: daysLeft,
		Expired:  daysLeft < 0,
		Warning:  daysLeft >= 0 && daysLeft <= 7,
	}
}

// DaysBetween returns the signed number of days from `to` to `from`,
// rounded to the nearest day. Halves round up, -1.5 days gives -1.
func DaysBetween(from time.Time, to time.Time) int {
	return int(math.Floor(from.Sub(to).Hours()/24 + 0.5))
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
