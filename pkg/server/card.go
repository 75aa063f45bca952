package server

import (
	"math"
	"strings"
	"time"

	"github.com/appclacks/dashboard/pkg/format"
	"github.com/appclacks/dashboard/pkg/server/aggregates"
)

// a server is online when it reported less than this ago
const onlineThreshold = 30 * time.Second

func percent(used uint64, total uint64) float64 {
	result := 100 * float64(used) / float64(total)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}

func osName(platform string) string {
	if strings.Contains(platform, "Windows") {
		return "Windows"
	}
	return platform
}

// BuildCard computes the card of a server at the given time.
func BuildCard(now time.Time, server aggregates.Server) aggregates.Card {
	card := aggregates.Card{
		ID:            server.ID,
		Name:          server.Name,
		CountryCode:   server.CountryCode,
		Online:        !server.LastActive.IsZero() && now.Sub(server.LastActive) <= onlineThreshold,
		OS:            osName(server.Host.Platform),
		Platform:      server.Host.Platform,
		UptimeDays:    int64(math.Round(float64(server.Status.Uptime) / 86400)),
		CPU:           server.Status.CPU,
		Mem:           percent(server.Status.MemUsed, server.Host.MemTotal),
		Storage:       percent(server.Status.DiskUsed, server.Host.DiskTotal),
		Upload:        format.FormatSpeed(float64(server.Status.NetOutSpeed)),
		Download:      format.FormatSpeed(float64(server.Status.NetInSpeed)),
		TotalUpload:   format.Bytes(float64(server.Status.NetOutTransfer)),
		TotalDownload: format.Bytes(float64(server.Status.NetInTransfer)),
	}
	if math.IsNaN(card.CPU) {
		card.CPU = 0
	}
	if note, ok := ParsePublicNote(server.PublicNote); ok {
		card.Billing = ComputeBilling(now, note)
		card.Plan = note.Plan
	}
	return card
}
