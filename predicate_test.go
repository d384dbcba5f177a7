package localize_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/localize"
)

func TestPredicates(t *testing.T) {
	t.Parallel()

	t.Run("StartsWith", func(t *testing.T) {
		t.Parallel()
		p := localize.StartsWith("en")
		assert.Equal(t, 1.0, p("en-US"))
		assert.Equal(t, 1.0, p("en"))
		assert.Equal(t, 0.0, p("zh-CN"))
		assert.Equal(t, 0.0, p("EN-US"))
	})

	t.Run("EndsWith", func(t *testing.T) {
		t.Parallel()
		p := localize.EndsWith("-US")
		assert.Equal(t, 1.0, p("en-US"))
		assert.Equal(t, 1.0, p("es-US"))
		assert.Equal(t, 0.0, p("en-GB"))
	})

	t.Run("Is", func(t *testing.T) {
		t.Parallel()
		p := localize.Is("en-US")
		assert.Equal(t, 1.0, p("en-US"))
		assert.Equal(t, 0.0, p("en"))
		assert.Equal(t, 0.0, p("en-us"))
	})

	t.Run("IsOneOf", func(t *testing.T) {
		t.Parallel()
		p := localize.IsOneOf("en", "en-US", "en-GB")
		assert.Equal(t, 1.0, p("en"))
		assert.Equal(t, 1.0, p("en-GB"))
		assert.Equal(t, 0.0, p("en-AU"))
		assert.Equal(t, 0.0, localize.IsOneOf()("en"))
	})

	t.Run("Matches", func(t *testing.T) {
		t.Parallel()
		p := localize.Matches(regexp.MustCompile(`^en(-[A-Z]{2})?$`))
		assert.Equal(t, 1.0, p("en"))
		assert.Equal(t, 1.0, p("en-US"))
		assert.Equal(t, 0.0, p("eng"))
		assert.Equal(t, 0.0, p("de-DE"))
	})

	t.Run("Weighted scales matches", func(t *testing.T) {
		t.Parallel()
		p := localize.Weighted(2, localize.StartsWith("en"))
		assert.Equal(t, 2.0, p("en-US"))
		assert.Equal(t, 0.0, p("zh-CN"))
	})

	t.Run("Weighted passes negative factors through", func(t *testing.T) {
		t.Parallel()
		p := localize.Weighted(-0.5, localize.Is("en"))
		assert.Equal(t, -0.5, p("en"))
		assert.Equal(t, 0.0, p("de"))
	})

	t.Run("Weighted composes", func(t *testing.T) {
		t.Parallel()
		p := localize.Weighted(2, localize.Weighted(3, localize.Is("en")))
		assert.Equal(t, 6.0, p("en"))
	})

	t.Run("Mean averages scores", func(t *testing.T) {
		t.Parallel()
		p := localize.Mean(localize.StartsWith("en"), localize.Is("en-US"))
		assert.Equal(t, 1.0, p("en-US"))
		assert.Equal(t, 0.5, p("en-GB"))
		assert.Equal(t, 0.0, p("de-DE"))
	})

	t.Run("Mean of one predicate is identity", func(t *testing.T) {
		t.Parallel()
		p := localize.Mean(localize.Weighted(3, localize.Is("en")))
		assert.Equal(t, 3.0, p("en"))
	})

	t.Run("Mean without predicates panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			localize.Mean()
		})
	})

	t.Run("Score coerces booleans", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.0, localize.Score(true))
		assert.Equal(t, 0.0, localize.Score(false))
	})
}
