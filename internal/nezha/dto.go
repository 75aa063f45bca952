package nezha

import (
	"time"

	serveraggregates "github.com/appclacks/dashboard/pkg/server/aggregates"
	trackeraggregates "github.com/appclacks/dashboard/pkg/tracker/aggregates"
)

type serviceData struct {
	ServiceName string    `json:"service_name"`
	CurrentUp   int64     `json:"current_up"`
	CurrentDown int64     `json:"current_down"`
	TotalUp     int64     `json:"total_up"`
	TotalDown   int64     `json:"total_down"`
	Delay       []float64 `json:"delay"`
	Up          []int64   `json:"up"`
	Down        []int64   `json:"down"`
}

func (s serviceData) toSeries() trackeraggregates.ServiceSeries {
	return trackeraggregates.ServiceSeries{
		ServiceName: s.ServiceName,
		Up:          s.Up,
		Down:        s.Down,
		Delay:       s.Delay,
		CurrentUp:   s.CurrentUp,
		CurrentDown: s.CurrentDown,
		TotalUp:     s.TotalUp,
		TotalDown:   s.TotalDown,
	}
}

type host struct {
	Platform        string   `json:"platform"`
	PlatformVersion string   `json:"platform_version"`
	CPU             []string `json:"cpu"`
	MemTotal        uint64   `json:"mem_total"`
	DiskTotal       uint64   `json:"disk_total"`
	SwapTotal       uint64   `json:"swap_total"`
	Arch            string   `json:"arch"`
	Virtualization  string   `json:"virtualization"`
	BootTime        uint64   `json:"boot_time"`
	Version         string   `json:"version"`
}

type status struct {
	CPU            float64 `json:"cpu"`
	MemUsed        uint64  `json:"mem_used"`
	SwapUsed       uint64  `json:"swap_used"`
	DiskUsed       uint64  `json:"disk_used"`
	NetInTransfer  uint64  `json:"net_in_transfer"`
	NetOutTransfer uint64  `json:"net_out_transfer"`
	NetInSpeed     uint64  `json:"net_in_speed"`
	NetOutSpeed    uint64  `json:"net_out_speed"`
	Uptime         uint64  `json:"uptime"`
	Load1          float64 `json:"load_1"`
	Load5          float64 `json:"load_5"`
	Load15         float64 `json:"load_15"`
	TCPConnCount   uint64  `json:"tcp_conn_count"`
	UDPConnCount   uint64  `json:"udp_conn_count"`
	ProcessCount   uint64  `json:"process_count"`
}

type server struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Tag          string    `json:"tag"`
	DisplayIndex int64     `json:"display_index"`
	LastActive   time.Time `json:"last_active"`
	CountryCode  string    `json:"country_code"`
	PublicNote   string    `json:"public_note"`
	Host         host      `json:"host"`
	Status       status    `json:"status"`
}

func (s server) toServer() *serveraggregates.Server {
	result := &serveraggregates.Server{
		ID:           s.ID,
		Name:         s.Name,
		DisplayIndex: s.DisplayIndex,
		LastActive:   s.LastActive,
		CountryCode:  s.CountryCode,
		PublicNote:   s.PublicNote,
		Host:         serveraggregates.Host(s.Host),
		Status:       serveraggregates.Status(s.Status),
	}
	if s.Tag != "" {
		result.Tags = []string{s.Tag}
	}
	return result
}

type serversResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Data    []server `json:"data"`
}
