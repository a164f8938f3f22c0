package utils

import "time"

// DraftSessionTTL is how long an untouched booking wizard session survives
// in the cache before it is discarded.
const DraftSessionTTL = 30 * time.Minute

// SubmitLockTTL bounds the per-session lock held while a confirmation is in
// flight, so a crashed submit cannot wedge the session.
const SubmitLockTTL = 15 * time.Second

// DateFormat is the calendar-date layout used throughout the reservation core.
const DateFormat = "2006-01-02"
