package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryQuestionTypeHasInfo(t *testing.T) {
	for _, qt := range QuestionTypes() {
		info, ok := TypeInfo(qt)
		assert.True(t, ok, "missing table entry for %s", qt)
		assert.NotEmpty(t, info.Label, "missing label for %s", qt)
	}
}

func TestUsesOptionsOnlyForOptionedTypes(t *testing.T) {
	optioned := map[QuestionType]bool{
		QuestionMultipleChoice: true,
		QuestionLikert:         true,
		QuestionCustomList:     true,
	}

	for _, qt := range QuestionTypes() {
		assert.Equal(t, optioned[qt], qt.UsesOptions(), "type %s", qt)
	}
}

func TestUnknownTypeIsNotInTable(t *testing.T) {
	_, ok := TypeInfo(QuestionType("emoji_scale"))
	assert.False(t, ok)
	assert.False(t, QuestionType("emoji_scale").UsesOptions())
}

func TestDefaultTypeIsKnown(t *testing.T) {
	_, ok := TypeInfo(DefaultQuestionType)
	assert.True(t, ok)
	assert.False(t, DefaultQuestionType.UsesOptions())
}

func TestLikertDefaultsAreFivePoints(t *testing.T) {
	assert.Len(t, LikertDefaults, 5)
}
