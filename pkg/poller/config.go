package poller

type Configuration struct {
	Interval string
	Timeout  string
}
