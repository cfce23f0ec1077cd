// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name      string
		lookup    string
		candidate string
		want      float64
	}{
		{"identical", "Doe, Phys. Rev. Lett. 110 (2013)", "Doe, Phys. Rev. Lett. 110 (2013)", 1},
		{"case and punctuation ignored", "DOE phys-rev", "doe, Phys. Rev.", 1},
		{"half present", "quantum dots spin qubits", "Spin qubits in silicon", 0.5},
		{"none present", "alpha beta", "gamma delta", 0},
		{"repeated lookup words each count", "spin spin dots", "spin", 2.0 / 3.0},
		{"empty lookup", "  ,.  ", "anything", 0},
		{"empty candidate", "alpha", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Overlap(tt.lookup, tt.candidate), 1e-9)
		})
	}
}

func TestOverlapSelfIsOne(t *testing.T) {
	for _, s := range []string{"a", "Jane Doe 2013", "naïve café: résumé", "10.1103/PhysRevLett.110.123456"} {
		assert.Equal(t, 1.0, Overlap(s, s), s)
	}
}

func TestRankStable(t *testing.T) {
	ranked := Rank("a b", []string{"a", "x", "b", "a b"})
	require.Len(t, ranked, 4)
	assert.Equal(t, []int{3, 0, 2, 1}, []int{ranked[0].Index, ranked[1].Index, ranked[2].Index, ranked[3].Index})
	assert.Equal(t, 1.0, ranked[0].Score)
	assert.Equal(t, 0.0, ranked[3].Score)
}

func TestDecide(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name   string
		scores []float64
		want   Outcome
	}{
		{"single above min", []float64{0.99}, Accept},
		{"single below min", []float64{0.98}, Ambiguous},
		{"clear winner", []float64{0.99, 0.5}, Accept},
		{"close runner-up", []float64{0.99, 0.8}, Ambiguous},
		{"ratio at max is ambiguous", []float64{1, 0.7}, Ambiguous},
		{"best below min", []float64{0.9, 0.1}, Ambiguous},
		{"all zero", []float64{0, 0}, Ambiguous},
		{"no candidates", nil, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := make([]Scored, len(tt.scores))
			for i, s := range tt.scores {
				ranked[i] = Scored{Index: i, Score: s}
			}
			d := Decide(ranked, th)
			assert.Equal(t, tt.want, d.Outcome)
			assert.Equal(t, ranked, d.Ranked)
		})
	}
}

func TestDecideZeroThresholds(t *testing.T) {
	d := Decide([]Scored{{Score: 0}, {Score: 0}}, Thresholds{AutoMin: 0, AutoMax: 1})
	assert.Equal(t, Ambiguous, d.Outcome)
}

func TestClassify(t *testing.T) {
	lookup := "Doe Physical Review Letters 110 123456 2013"
	candidates := []string{
		"Smith, Nature 500, 1 (2013)",
		"Doe, Physical Review Letters 110, 123456 (2013)",
	}

	d := Classify(lookup, candidates, DefaultThresholds())
	assert.Equal(t, Accept, d.Outcome)
	best, ok := d.Best()
	require.True(t, ok)
	assert.Equal(t, 1, best.Index)
	assert.Equal(t, candidates[1], best.Text)

	d = Classify(lookup, nil, DefaultThresholds())
	assert.Equal(t, Empty, d.Outcome)
	_, ok = d.Best()
	assert.False(t, ok)
}

func TestThresholdsValidate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())
	assert.Error(t, Thresholds{AutoMin: 1.5, AutoMax: 0.5}.Validate())
	assert.Error(t, Thresholds{AutoMin: 0.5, AutoMax: -0.1}.Validate())
	assert.Error(t, Thresholds{AutoMin: 0, AutoMax: 0.5}.Validate())
	assert.NoError(t, Thresholds{AutoMin: 1, AutoMax: 0}.Validate())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "accept", Accept.String())
	assert.Equal(t, "ambiguous", Ambiguous.String())
	assert.Equal(t, "empty", Empty.String())
}
