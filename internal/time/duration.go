package time

import (
	"encoding/json"
	"time"
)

// Duration is a time.Duration that reads from and writes to strings like "30s".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var dText string
	err := json.Unmarshal(data, &dText)
	if err != nil {
		return err
	}

	return d.UnmarshalText([]byte(dText))
}

// UnmarshalText parses values coming from the environment.
func (d *Duration) UnmarshalText(text []byte) error {
	dt, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(dt)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Std converts to the standard library type.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
