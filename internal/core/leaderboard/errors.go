package leaderboard

import "errors"

// ErrInvalidLimit indicates the requested entry count is out of range.
var ErrInvalidLimit = errors.New("invalid leaderboard limit")
