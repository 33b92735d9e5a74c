package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OfferLag tracks how long entries sat on the waitlist before an offer
	// went out.
	OfferLag = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "waitlist_offer_lag_seconds",
			Help: "Time between waitlist entry creation and the offer being sent",
			Buckets: []float64{
				3600,    // 1h
				21600,   // 6h
				86400,   // 1d
				259200,  // 3d
				604800,  // 7d
				1209600, // 14d
				2592000, // 30d
				5184000, // 60d
			},
		},
	)

	// TillOverShort tracks the absolute drawer variance observed on close.
	TillOverShort = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "till_over_short_cents",
			Help: "Absolute variance between counted and expected cash at till close",
			Buckets: []float64{
				0,
				100,   // $1
				500,   // $5
				1000,  // $10
				5000,  // $50
				10000, // $100
			},
		},
		[]string{"direction"}, // over, short or exact
	)
)

// RecordOfferLag records the waitlist offer lag in seconds
func RecordOfferLag(seconds float64) {
	OfferLag.Observe(seconds)
}

// RecordTillOverShort records a till close variance (signed cents)
func RecordTillOverShort(overShortCents int64) {
	direction := "exact"
	if overShortCents > 0 {
		direction = "over"
	} else if overShortCents < 0 {
		direction = "short"
	}
	TillOverShort.WithLabelValues(direction).Observe(math.Abs(float64(overShortCents)))
}
