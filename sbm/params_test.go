// SPDX-License-Identifier: MIT
package sbm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dmprdpg/sbm"
	"github.com/stretchr/testify/require"
)

// twoByTwo is a valid 2-community block used across fixtures.
var twoByTwo = sbm.BlockMatrix{{0.8, 0.1}, {0.1, 0.6}}

// TestNewParams_Validation checks sentinel priority and no partial result.
func TestNewParams_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		layers    int
		timesteps int
		groups    []int
		probs     sbm.ProbMap
		wantErr   error
	}{
		{"zero layers", 0, 1, []int{2, 2}, nil, sbm.ErrInvalidLayers},
		{"negative timesteps", 1, -3, []int{2, 2}, nil, sbm.ErrInvalidTimesteps},
		{"empty groups", 1, 1, []int{}, nil, sbm.ErrInvalidGroups},
		{"zero group", 1, 1, []int{2, 0}, nil, sbm.ErrInvalidGroups},
		{"key layer out of range", 1, 1, []int{2, 2}, sbm.ProbMap{{Layer: 1, Time: 0}: twoByTwo}, sbm.ErrInvalidKey},
		{"negative key", 1, 1, []int{2, 2}, sbm.ProbMap{{Layer: 0, Time: -1}: twoByTwo}, sbm.ErrInvalidKey},
		{"block wrong rows", 1, 1, []int{2, 2}, sbm.ProbMap{{}: {{0.5, 0.5}}}, sbm.ErrInvalidBlock},
		{"block ragged", 1, 1, []int{2, 2}, sbm.ProbMap{{}: {{0.5, 0.5}, {0.5}}}, sbm.ErrInvalidBlock},
		{"probability above one", 1, 1, []int{2, 2}, sbm.ProbMap{{}: {{1.5, 0}, {0, 0}}}, sbm.ErrInvalidBlock},
		{"probability NaN", 1, 1, []int{2, 2}, sbm.ProbMap{{}: {{math.NaN(), 0}, {0, 0}}}, sbm.ErrInvalidBlock},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := sbm.NewParams(tc.layers, tc.timesteps, tc.groups, tc.probs)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, p, "no partial object on error")
		})
	}
}

// TestNewParams_MissingKeysAccepted: completeness is checked lazily.
func TestNewParams_MissingKeysAccepted(t *testing.T) {
	p, err := sbm.NewParams(2, 2, []int{3, 1}, sbm.ProbMap{{Layer: 0, Time: 0}: twoByTwo})
	require.NoError(t, err)
	require.Equal(t, []sbm.Key{{Layer: 0, Time: 1}, {Layer: 1, Time: 0}, {Layer: 1, Time: 1}}, p.Missing())

	_, err = p.Block(sbm.Key{Layer: 1, Time: 1})
	require.ErrorIs(t, err, sbm.ErrMissingBlock)
}

// TestNewParams_DeepCopy ensures later caller mutation cannot leak in.
func TestNewParams_DeepCopy(t *testing.T) {
	groups := []int{2, 3}
	block := sbm.BlockMatrix{{0.5, 0.5}, {0.5, 0.5}}
	p, err := sbm.NewParams(1, 1, groups, sbm.ProbMap{{}: block})
	require.NoError(t, err)

	groups[0] = 99
	block[0][0] = 0.0

	require.Equal(t, []int{2, 3}, p.Groups)
	require.Equal(t, 0.5, p.Probs[sbm.Key{}][0][0])
	require.Equal(t, 5, p.N())
	require.Equal(t, 2, p.K())
}

// TestUniform fills every cell.
func TestUniform(t *testing.T) {
	probs := sbm.Uniform(2, 3, twoByTwo)
	require.Len(t, probs, 6)
	p, err := sbm.NewParams(2, 3, []int{1, 1}, probs)
	require.NoError(t, err)
	require.Empty(t, p.Missing())
}
