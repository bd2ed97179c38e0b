package config

import "math/rand"

// PresetLength is the size of every built-in preset array.
const PresetLength = 20

// Preset is a named input array offered by the catalog.
type Preset struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Array       []int  `yaml:"array" json:"array"`
}

// Presets builds the built-in catalog. Random presets draw from a source
// seeded with seed, so a seed always yields the same arrays.
func Presets(seed int64) []Preset {
	rng := rand.New(rand.NewSource(seed))
	fill := func(f func(i int) int) []int {
		a := make([]int, PresetLength)
		for i := range a {
			a[i] = f(i)
		}
		return a
	}

	return []Preset{
		{
			Name:        "random",
			Description: "twenty random values in 0-99",
			Array:       fill(func(int) int { return rng.Intn(100) }),
		},
		{
			Name:        "sorted",
			Description: "already sorted, step 5",
			Array:       fill(func(i int) int { return i * 5 }),
		},
		{
			Name:        "reversed",
			Description: "strictly descending, step 5",
			Array:       fill(func(i int) int { return (PresetLength - 1 - i) * 5 }),
		},
		{
			Name:        "duplicates",
			Description: "many repeated values in 0-80",
			Array:       fill(func(int) int { return rng.Intn(5) * 20 }),
		},
		{
			Name:        "small-range",
			Description: "values confined to 0-9",
			Array:       fill(func(int) int { return rng.Intn(10) }),
		},
		{
			Name:        "large-range",
			Description: "values spread over 0-999",
			Array:       fill(func(int) int { return rng.Intn(1000) }),
		},
		{
			Name:        "nearly-sorted",
			Description: "sorted with small random perturbations",
			Array:       fill(func(i int) int { return i*5 + rng.Intn(3) - 1 }),
		},
		{
			Name:        "uniform",
			Description: "every element equal",
			Array:       fill(func(int) int { return 42 }),
		},
	}
}
