package scanner

import "markerscan/stats/model"

// DefaultMaleThreshold is the empty-marker count above which a sample is
// called male.
const DefaultMaleThreshold = 100

// Sex is the call made from a sample's chromosome-24 markers.
type Sex string

// Possible results of InferSex.
const (
	SexUndetermined Sex = "undetermined"
	SexMale         Sex = "male"
	SexFemale       Sex = "female"
)

// InferSex calls the sample's sex from its chromosome-24 counts. Without any
// chromosome-24 records there is nothing to decide on.
func InferSex(c model.Counts, threshold int) Sex {
	if c.Total == 0 {
		return SexUndetermined
	}
	if threshold <= 0 {
		threshold = DefaultMaleThreshold
	}
	if c.Empty > threshold {
		return SexMale
	}
	return SexFemale
}
