package configs

import "time"

// App holds engine-wide settings. The Timezone names the reference
// timezone used for all day-boundary computation: daily spend rollover and
// frequency counter expiry. It must be an IANA name such as "UTC" or
// "Europe/Berlin".
type App struct {
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
	// Seed inserts demo campaigns after migrations. Only honoured by main.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Location resolves the configured timezone name.
func (c App) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
