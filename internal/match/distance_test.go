package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"secret", "secret", 0},
		{"", "tick", 4},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		{"staticfield", "staticField", 1},
		{"tick", "tock", 1},
		{"method_1", "method_2", 1},
		{"naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, distance([]rune(tt.a), []rune(tt.b)))
			assert.Equal(t, tt.want, distance([]rune(tt.b), []rune(tt.a)), "symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"hello", "hello", 1},
		{"abc", "xyz", 0},
		{"kitten", "sitting", 1 - 3.0/7},
		{"naïve", "naive", 1 - 1.0/5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarity(tt.a, tt.b), 0.001)
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name, candidate string
		want            float64
	}{
		{"StaticField", "static_field", 1},
		{"playerCount", "PlayerCount", 1},
		{"getSecret", "secret", 1},
		{"setStaticField", "static_field", 1},
		{"isActive", "Active", 1},
		{"getTicks", "setTicks", 1},
		{"settings", "tings", 1 - 3.0/8},
		{"tickCount", "tickCounter", 1 - 2.0/11},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.candidate, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.name, tt.candidate), 0.001)
		})
	}

	assert.Less(t, Score("secret", "Describe"), DefaultMinScore)
}

func BenchmarkScore(b *testing.B) {
	for b.Loop() {
		Score("ServerLevelPlayers", "server_level_players")
	}
}
