package nezha

// Configuration of the upstream dashboard API
type Configuration struct {
	URL      string `validate:"required,url"`
	Timeout  string `validate:"omitempty"`
	RetryMax int    `yaml:"retry-max" validate:"gte=0"`
}
