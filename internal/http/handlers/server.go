package handlers

import (
	"net/http"

	"github.com/appclacks/dashboard/pkg/server/aggregates"
	"github.com/labstack/echo/v4"
)

type ListServersInput struct {
	Tag    string `query:"tag"`
	Online bool   `query:"online"`
}

type GetServerInput struct {
	ID uint64 `param:"id" validate:"required"`
}

type Billing struct {
	NeverExpire bool `json:"never_expire"`
	DaysLeft    int  `json:"days_left"`
	Expired     bool `json:"expired"`
	Warning     bool `json:"warning"`
}

type Plan struct {
	Bandwidth    string `json:"bandwidth,omitempty"`
	TrafficVol   string `json:"traffic_vol,omitempty"`
	TrafficType  string `json:"traffic_type,omitempty"`
	IPv4         string `json:"ipv4,omitempty"`
	IPv6         string `json:"ipv6,omitempty"`
	NetworkRoute string `json:"network_route,omitempty"`
	Extra        string `json:"extra,omitempty"`
}

type ServerCard struct {
	ID            uint64   `json:"id"`
	Name          string   `json:"name"`
	CountryCode   string   `json:"country_code"`
	Online        bool     `json:"online"`
	OS            string   `json:"os"`
	Platform      string   `json:"platform"`
	UptimeDays    int64    `json:"uptime_days"`
	CPU           float64  `json:"cpu"`
	Mem           float64  `json:"mem"`
	Storage       float64  `json:"storage"`
	Upload        string   `json:"upload"`
	Download      string   `json:"download"`
	TotalUpload   string   `json:"total_upload"`
	TotalDownload string   `json:"total_download"`
	Billing       *Billing `json:"billing,omitempty"`
	Plan          *Plan    `json:"plan,omitempty"`
}

type ListServersOutput struct {
	Result []ServerCard `json:"result"`
}

func toServerCard(card aggregates.Card) ServerCard {
	result := ServerCard{
		ID:            card.ID,
		Name:          card.Name,
		CountryCode:   card.CountryCode,
		Online:        card.Online,
		OS:            card.OS,
		Platform:      card.Platform,
		UptimeDays:    card.UptimeDays,
		CPU:           card.CPU,
		Mem:           card.Mem,
		Storage:       card.Storage,
		Upload:        card.Upload,
		Download:      card.Download,
		TotalUpload:   card.TotalUpload,
		TotalDownload: card.TotalDownload,
	}
	if card.Billing != nil {
		billing := Billing(*card.Billing)
		result.Billing = &billing
	}
	if card.Plan != nil {
		plan := Plan(*card.Plan)
		result.Plan = &plan
	}
	return result
}

func (b *Builder) ListServers(ec echo.Context) error {
	var payload ListServersInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	cards, err := b.server.Cards(ec.Request().Context(), aggregates.Query{
		Tag:        payload.Tag,
		OnlineOnly: payload.Online,
	})
	if err != nil {
		return err
	}
	result := ListServersOutput{
		Result: []ServerCard{},
	}
	for _, card := range cards {
		result.Result = append(result.Result, toServerCard(card))
	}
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) GetServer(ec echo.Context) error {
	var payload GetServerInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}
	card, err := b.server.Card(ec.Request().Context(), payload.ID)
	if err != nil {
		return err
	}
	result := toServerCard(*card)
	return ec.JSON(http.StatusOK, &result)
}
