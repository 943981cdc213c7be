package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryExerciseHasKnownBodyPart(t *testing.T) {
	seen := map[string]bool{}
	for _, ex := range Exercises() {
		assert.True(t, ex.BodyPart.IsValid(), "exercise %s has body part %q", ex.ID, ex.BodyPart)
		assert.False(t, seen[ex.ID], "duplicate id %s", ex.ID)
		seen[ex.ID] = true
	}
	assert.Len(t, seen, 15)
}

func TestForBodyPartKeepsTableOrder(t *testing.T) {
	chest := ForBodyPart(Chest)
	require.Len(t, chest, 3)
	assert.Equal(t, "chest_1", chest[0].ID)
	assert.Equal(t, "chest_3", chest[2].ID)

	for _, bp := range BodyParts() {
		assert.NotEmpty(t, ForBodyPart(bp), "no exercises for %s", bp)
	}
}

func TestExerciseName(t *testing.T) {
	assert.Equal(t, "Deadlift", ExerciseName("back_1"))
	assert.Equal(t, UnknownExerciseName, ExerciseName("nope"))
}

func TestParseBodyPart(t *testing.T) {
	bp, err := ParseBodyPart("  shoulders ")
	require.NoError(t, err)
	assert.Equal(t, Shoulders, bp)

	_, err = ParseBodyPart("neck")
	assert.Error(t, err)
}

func TestBodyPartsReturnsCopy(t *testing.T) {
	parts := BodyParts()
	parts[0] = "Mutated"
	assert.Equal(t, Chest, BodyParts()[0])
}
