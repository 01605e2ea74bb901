package tz

import "time"

// Jakarta is the Asia/Jakarta location (WIB, UTC+7, no DST).
var Jakarta *time.Location

func init() {
	var err error
	Jakarta, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// Hosts without a zoneinfo database still get the right offset.
		Jakarta = time.FixedZone("WIB", 7*60*60)
	}
}
