package assertions

import (
	"github.com/jaswdr/faker/v2"
	"github.com/stretchr/testify/assert"
	"optassert/constants"
	"optassert/equivalency"
	"optassert/h"
	"optassert/utils"
	"testing"
)

type knownColor int

const (
	Black knownColor = iota
	ActiveBorder
)

func (c knownColor) String() string {
	switch c {
	case Black:
		return "Black"
	case ActiveBorder:
		return "ActiveBorder"
	default:
		return "Unknown"
	}
}

func Test_Option_SubjectReturnsOptionUsedInConstructor(t *testing.T) {
	// arrange
	option := h.Some("test")

	// act
	assertions := Should(t, option)

	// assert
	assert.Equal(t, option, assertions.Subject())
}

func Test_Option_HaveSome_ReturnsWhichWithValue(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	constraint := Should(rt, h.Some("test")).HaveSome()

	// assert
	assert.False(t, rt.Failed())
	assert.Equal(t, "test", constraint.Which)
}

func Test_Option_HaveSome_FailsWhenNone(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	constraint := Should(rt, h.None[string]()).HaveSome()

	// assert
	assert.True(t, rt.Failed())
	assert.Contains(t, rt.Output(), constants.MessageOptionHasNoValue)
	assert.Equal(t, "", constraint.Which)
}

func Test_Option_HaveSome_AnyValue(t *testing.T) {
	fake := faker.New()
	for i := 0; i < 20; i++ {
		// arrange
		rt := &utils.RecordingT{}
		value := fake.Lorem().Sentence(fake.IntBetween(1, 8))

		// act
		constraint := Should(rt, h.Some(value)).HaveSome()

		// assert
		assert.False(t, rt.Failed())
		assert.Equal(t, value, constraint.Which)
	}
}

func Test_Option_BeNone_ReturnsAndWithSelf(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}
	assertions := Should(rt, h.None[string]())

	// act
	constraint := assertions.BeNone()

	// assert
	assert.False(t, rt.Failed())
	assert.Same(t, assertions, constraint.And)
}

func Test_Option_BeNone_FailsWhenSome(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	Should(rt, h.Some[*string](nil)).BeNone()

	// assert
	assert.True(t, rt.Failed())
	assert.Contains(t, rt.Output(), constants.MessageOptionHasValue)
}

func Test_Option_HasValueEquivalentTo_Passes(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	ok := Should(rt, h.Some("test")).HasValueEquivalentTo("test")

	// assert
	assert.True(t, ok)
	assert.False(t, rt.Failed())
}

func Test_Option_HasValueEquivalentTo_FailsWhenDifferent(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	ok := Should(rt, h.Some("test")).HasValueEquivalentTo("Test")

	// assert
	assert.False(t, ok)
	assert.Contains(t, rt.Output(), `Expected string to be "Test", but "test" differs near "tes" (index 0).`)
	assert.Contains(t, rt.Output(), "With configuration:")
}

func Test_Option_HasValueEquivalentTo_FailsWhenNone(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	ok := Should(rt, h.None[string]()).HasValueEquivalentTo("")

	// assert
	assert.False(t, ok)
	assert.Contains(t, rt.Output(), constants.MessageOptionHasNoValue)
}

func Test_Option_HasValueEquivalentToUsing_FailsWhenNone(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	ok := Should(rt, h.None[string]()).HasValueEquivalentToUsing("", equivalency.Identity)

	// assert
	assert.False(t, ok)
	assert.Contains(t, rt.Output(), constants.MessageOptionHasNoValue)
}

func Test_Option_HasValueEquivalentToUsing_ExcludingMember(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}
	assertions := Should(rt, h.Some(struct{ Val1, Val2 string }{"test", "tset"}))

	// act
	ok := assertions.HasValueEquivalentToUsing(struct{ Val1, Val2 string }{"test", "tset1"},
		func(o equivalency.Options) equivalency.Options {
			return o.Excluding("Val2")
		})

	// assert
	assert.True(t, ok, rt.Output())
}

func Test_Option_HasValueEquivalentToUsing_EnumsByName(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	ok := Should(rt, h.Some(0)).HasValueEquivalentToUsing(ActiveBorder,
		func(o equivalency.Options) equivalency.Options {
			return o.ComparingEnumsByName()
		})

	// assert
	assert.False(t, ok)
	assert.Contains(t, rt.Output(), "Expected enum to equal knownColor.ActiveBorder(1) by name, but found 0.")
	assert.Contains(t, rt.Output(), "- Compare enums by name")
}

func Test_Option_BecauseIsForwarded(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	Should(rt, h.None[int]()).HaveSome("the %s was seeded", "cart")

	// assert
	assert.Contains(t, rt.Output(), constants.MessageOptionHasNoValue)
	assert.Contains(t, rt.Output(), "the cart was seeded")
}

func Test_Option_Require_FailsNowOnFailure(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	Require(rt, h.None[int]()).HaveSome()

	// assert
	assert.True(t, rt.Failed())
	assert.Equal(t, 1, rt.FailNowCalls())
}

func Test_Option_Require_FailsNowOnEquivalenceMismatch(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	Require(rt, h.Some(1)).HasValueEquivalentTo(2)

	// assert
	assert.True(t, rt.Failed())
	assert.Equal(t, 1, rt.FailNowCalls())
}

func Test_Option_Require_DoesNotFailNowOnSuccess(t *testing.T) {
	// arrange
	rt := &utils.RecordingT{}

	// act
	Require(rt, h.Some(1)).HaveSome().And.HasValueEquivalentTo(1)
	Require(rt, h.None[int]()).BeNone()

	// assert
	assert.False(t, rt.Failed())
	assert.Equal(t, 0, rt.FailNowCalls())
}

func Test_Option_ChainsOnRealTest(t *testing.T) {
	Require(t, h.Some(utils.Ptr("x"))).HaveSome().And.HasValueEquivalentTo(utils.Ptr("x"))
	Should(t, h.None[float64]()).BeNone().And.Subject()
}

func Test_Option_ParallelAssertions(t *testing.T) {
	for i := 0; i < 8; i++ {
		t.Run("failing", func(t *testing.T) {
			t.Parallel()

			// arrange
			rt := &utils.RecordingT{}

			// act
			Should(rt, h.None[int]()).HaveSome()

			// assert
			assert.True(t, rt.Failed())
		})
		t.Run("comparing", func(t *testing.T) {
			t.Parallel()

			// arrange
			rt := &utils.RecordingT{}

			// act
			ok := Should(rt, h.Some(1)).HasValueEquivalentTo(1)

			// assert
			assert.True(t, ok, rt.Output())
		})
	}
}
