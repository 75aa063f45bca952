package config

import (
	"github.com/appclacks/dashboard/internal/http"
	"github.com/appclacks/dashboard/internal/nezha"
	"github.com/appclacks/dashboard/pkg/poller"
)

type Tracing struct {
	Enabled  bool
	Endpoint string
	Insecure bool
}

type Configuration struct {
	HTTP     http.Configuration
	Upstream nezha.Configuration
	Poller   poller.Configuration
	Tracing  Tracing
}
