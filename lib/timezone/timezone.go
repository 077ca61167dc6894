package timezone

import "time"

// Location decides where a day starts and ends, e.g. for the daily unique
// login count. Defaults to UTC.
var Location = time.UTC

// SetLocation changes Location to the IANA zone `name`.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	Location = loc
	return nil
}

func Now() time.Time {
	return time.Now().In(Location)
}

// SameDay reports whether a and b fall on the same calendar day in Location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(Location).Date()
	by, bm, bd := b.In(Location).Date()
	return ay == by && am == bm && ad == bd
}
