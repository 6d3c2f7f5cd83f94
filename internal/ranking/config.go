package ranking

// ScoreConfig holds the trending score constants for the formula
// "score = (likes + comments*2 + forks*3) / hours^1.5" and the top-3
// hot badge.
type ScoreConfig struct {
	// Engagement weights per signal.
	LikeWeight    float64
	CommentWeight float64
	ForkWeight    float64

	// DecayExponent controls how fast scores decay with age.
	DecayExponent float64

	// MinAgeHours floors the age divisor so posts created moments ago do
	// not divide by near-zero. Default one minute.
	MinAgeHours float64

	// HotThreshold is the highest rank that still gets the hot badge.
	HotThreshold int
}

// defaults holds the values configured at startup.
var defaults = ScoreConfig{
	LikeWeight:    1.0,
	CommentWeight: 2.0,
	ForkWeight:    3.0,
	DecayExponent: 1.5,
	MinAgeHours:   1.0 / 60.0,
	HotThreshold:  3,
}

// SetDefaults installs the score constants loaded from the environment.
// Called once during initialization.
func SetDefaults(cfg ScoreConfig) {
	defaults = cfg
}

// DefaultScoreConfig returns the configured score constants.
func DefaultScoreConfig() ScoreConfig {
	return defaults
}
