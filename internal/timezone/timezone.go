package timezone

import "time"

const DefaultTimezone = "Africa/Maputo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location cai para DefaultTimezone (e depois UTC) se tz for inválido.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock devolve "agora" no fuso configurado; os casos de uso recebem isso em vez de chamar time.Now.
type Clock func() time.Time

func NewClock(tz string) Clock {
	loc := Location(tz)
	return func() time.Time { return time.Now().In(loc) }
}

// Today é o início do dia corrente em loc.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
