package credentials

import (
	"crypto/rand"
	"math/big"
)

// Word lists for generating eco-themed display names when a student logs
// in without supplying one
var adjectives = []string{
	"green", "solar", "leafy", "bright", "wild", "fresh", "clear", "sunny",
	"earthy", "breezy", "mossy", "verdant", "blooming", "thriving", "radiant",
	"flowing", "growing", "rooted", "golden", "azure", "misty", "coastal",
	"alpine", "tropical", "monsoon", "evergreen", "blossom", "sprouting",
}

var nouns = []string{
	"sapling", "banyan", "peepal", "lotus", "tulsi", "neem", "bamboo",
	"monsoon", "river", "peacock", "tiger", "elephant", "sparrow", "kingfisher",
	"mangrove", "meadow", "glacier", "horizon", "seedling", "sunbeam",
	"raindrop", "butterfly", "firefly", "heron", "deodar", "orchid",
}

// GenerateStudentHandle generates a random display name in the format
// "adjective-noun", e.g. "leafy-banyan"
func GenerateStudentHandle() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "-" + noun, nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
