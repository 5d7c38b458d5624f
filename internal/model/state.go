package model

import "time"

// DeviceState is the last known power state of the monitored device.
type DeviceState struct {
	// Primed is false until the first successful observation.
	Primed    bool      `json:"primed"`
	Online    bool      `json:"online"`
	ChangedAt time.Time `json:"changed_at"`
}

// ApplicationInfo describes the running build.
type ApplicationInfo struct {
	Revision    string `json:"revision"`
	Branch      string `json:"branch"`
	Environment string `json:"environment"`
}
