package generator

import (
	"math/rand/v2"
	"strings"
)

const (
	// MinEstimatedSeconds is the floor for any processing estimate.
	MinEstimatedSeconds = 10
	// MaxEstimatedSeconds is the ceiling for any processing estimate.
	MaxEstimatedSeconds = 120
)

// complexityKeywords each add 0.2 to the complexity factor when they appear
// anywhere in the prompt, case-insensitively. Matches accumulate.
var complexityKeywords = []string{"complex", "orchestral", "symphony", "jazz", "experimental"}

// EstimateProcessingTime estimates how long the simulated generation of a
// track will take, in seconds. The estimate scales with the requested track
// length and the prompt's complexity, with a uniform random variation in
// [0.8, 1.3) so repeated calls with the same inputs differ. The result is
// always within [MinEstimatedSeconds, MaxEstimatedSeconds].
func EstimateProcessingTime(durationSeconds int, prompt string) int {
	base := float64(durationSeconds) * 0.5

	complexityFactor := 1.0
	promptLower := strings.ToLower(prompt)
	for _, keyword := range complexityKeywords {
		if strings.Contains(promptLower, keyword) {
			complexityFactor += 0.2
		}
	}

	randomFactor := 0.8 + rand.Float64()*0.5

	estimated := int(base * complexityFactor * randomFactor)

	if estimated < MinEstimatedSeconds {
		return MinEstimatedSeconds
	}
	if estimated > MaxEstimatedSeconds {
		return MaxEstimatedSeconds
	}
	return estimated
}
