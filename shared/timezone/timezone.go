package timezone

import (
	"dockhub/config"
	"dockhub/shared/constant"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	facility atomic.Pointer[time.Location]
	loadOnce sync.Once
)

// Load resolves an IANA zone name, falling back to UTC when it is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No facility timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use names like 'America/Chicago'")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Facility timezone initialized")

	return loc
}

// GetLocation returns the facility zone, loading APP_TIMEZONE on first use.
func GetLocation() *time.Location {
	loadOnce.Do(func() {
		facility.CompareAndSwap(nil, Load(config.Get().App.Timezone))
	})

	return facility.Load()
}

// SetLocation overrides the facility zone.
func SetLocation(loc *time.Location) {
	loadOnce.Do(func() {})
	facility.Store(loc)
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads a wall-clock value as facility time.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

// ParseDay reads a YYYY-MM-DD facility day and returns its local midnight.
func ParseDay(value string) (time.Time, error) {
	return Parse(constant.DayFormat, value)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// StartOfDay returns local midnight of the facility day containing t.
func StartOfDay(t time.Time) time.Time {
	local := ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
