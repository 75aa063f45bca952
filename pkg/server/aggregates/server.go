package aggregates

import "time"

type Host struct {
	Platform        string
	PlatformVersion string
	CPU             []string
	MemTotal        uint64
	DiskTotal       uint64
	SwapTotal       uint64
	Arch            string
	Virtualization  string
	BootTime        uint64
	Version         string
}

type Status struct {
	CPU            float64
	MemUsed        uint64
	SwapUsed       uint64
	DiskUsed       uint64
	NetInTransfer  uint64
	NetOutTransfer uint64
	NetInSpeed     uint64
	NetOutSpeed    uint64
	Uptime         uint64
	Load1          float64
	Load5          float64
	Load15         float64
	TCPConnCount   uint64
	UDPConnCount   uint64
	ProcessCount   uint64
}

// Server is a monitored machine as reported by the upstream dashboard.
type Server struct {
	ID           uint64
	Name         string
	DisplayIndex int64
	LastActive   time.Time
	CountryCode  string
	PublicNote   string
	Tags         []string
	Host         Host
	Status       Status
}

type BillingData struct {
	StartDate   string
	EndDate     string
	AutoRenewal string
	Cycle       string
	Amount      string
}

type PlanData struct {
	Bandwidth    string
	TrafficVol   string
	TrafficType  string
	IPv4         string
	IPv6         string
	NetworkRoute string
	Extra        string
}

type PublicNote struct {
	Billing *BillingData
	Plan    *PlanData
}

type Billing struct {
	NeverExpire bool
	DaysLeft    int
	Expired     bool
	Warning     bool
}

// Card is the summary displayed for one server.
type Card struct {
	ID            uint64
	Name          string
	CountryCode   string
	Online        bool
	OS            string
	Platform      string
	UptimeDays    int64
	CPU           float64
	Mem           float64
	Storage       float64
	Upload        string
	Download      string
	TotalUpload   string
	TotalDownload string
	Billing       *Billing
	Plan          *PlanData
}

type Query struct {
	Tag        string
	OnlineOnly bool
}
