package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutosomeStatsAdd(t *testing.T) {
	var s AutosomeStats
	s.Add(Genotype{Allele1: "A", Allele2: "G"}, Genotype{Allele1: "A", Allele2: "T"})
	s.Add(Genotype{Allele1: "C", Allele2: "C"}, Genotype{Allele1: "T", Allele2: "T"})
	assert.Equal(t, AutosomeStats{Pairs: 2, Allele1Mismatch: 1, Allele2Mismatch: 2}, s)
	assert.Equal(t, 0.5, s.AvgError())

	assert.Equal(t, 0.0, AutosomeStats{}.AvgError())
}

func TestMatchPct(t *testing.T) {
	var stats [Autosomes]AutosomeStats
	assert.Equal(t, 100.0, MatchPct(stats))

	stats[0] = AutosomeStats{Pairs: 10, Allele1Mismatch: 5, Allele2Mismatch: 8}
	assert.InDelta(t, 100-(0.5/22)*10, MatchPct(stats), 1e-9)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, RelationChild, Classify(100))
	assert.Equal(t, RelationChild, Classify(99))
	assert.Equal(t, RelationGrandchild, Classify(98.95))
	assert.Equal(t, RelationGrandchild, Classify(98.9))
	assert.Equal(t, RelationNone, Classify(98.89))
}
