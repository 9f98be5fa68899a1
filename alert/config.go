package alert

import "time"

// Config defines how command failures are reported to the Sentinel service.
type Config struct {
	// Disable turns alerting off. No connection to Sentinel is made.
	Disable bool `yaml:"disable" default:"false"`

	// SentinelHost is the hostname or IP address of the Sentinel service.
	SentinelHost string `yaml:"sentinel_host" validate:"required_if=Disable false"`

	// SentinelPort is the port number of the Sentinel service.
	SentinelPort int `yaml:"sentinel_port" validate:"required_if=Disable false"`

	// SendTimeout bounds a single alert delivery.
	SendTimeout time.Duration `yaml:"send_timeout" default:"3s"`
}
