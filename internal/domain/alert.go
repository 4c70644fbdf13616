package domain

import "time"

// Alert is a stored price rule: notify UserID once the USD price of CoinID
// crosses TargetPrice in the direction given by IsGreaterThan.
type Alert struct {
	ID            uint
	UserID        int64
	CoinID        string
	TargetPrice   float64
	IsGreaterThan bool
	CreatedAt     time.Time
}

// Triggered reports whether price satisfies the alert condition. The
// comparison is strict: a price exactly equal to the target never triggers.
func (a Alert) Triggered(price float64) bool {
	if a.IsGreaterThan {
		return price > a.TargetPrice
	}
	return price < a.TargetPrice
}

// Direction returns the comparison operator as shown to users.
func (a Alert) Direction() string {
	if a.IsGreaterThan {
		return ">"
	}
	return "<"
}
