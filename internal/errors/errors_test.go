package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	t.Parallel()

	ee := Newf("something broke").Build()
	require.NotNil(t, ee)
	assert.Equal(t, CategoryGeneric, ee.Category)
	assert.NotEmpty(t, ee.GetComponent())
	assert.False(t, ee.GetTimestamp().IsZero())
}

func TestBuilderExplicitMetadata(t *testing.T) {
	t.Parallel()

	ee := Newf("provider %q not registered", "mock").
		Component("registry").
		Category(CategoryNotFound).
		Context("channel", "mock").
		Build()

	assert.Equal(t, "registry", ee.GetComponent())
	assert.Equal(t, "not-found", ee.GetCategory())
	assert.Equal(t, "mock", ee.GetContext()["channel"])
	assert.Equal(t, `provider "mock" not registered`, ee.Error())
}

func TestUnwrapPreservesOriginal(t *testing.T) {
	t.Parallel()

	base := fmt.Errorf("base failure")
	wrapped := New(fmt.Errorf("outer: %w", base)).Category(CategoryConfiguration).Build()

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "outer: base failure", wrapped.Error())
}

func TestIsMatchesByCategory(t *testing.T) {
	t.Parallel()

	a := Newf("missing").Category(CategoryNotFound).Build()
	b := Newf("also missing").Category(CategoryNotFound).Build()
	c := Newf("invalid").Category(CategoryValidation).Build()

	assert.True(t, Is(a, b))
	assert.False(t, Is(a, c))
}

func TestIsCategoryHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		want     bool
	}{
		{
			name:     "matching category",
			err:      Newf("bad payload").Category(CategoryValidation).Build(),
			category: CategoryValidation,
			want:     true,
		},
		{
			name:     "mismatched category",
			err:      Newf("bad payload").Category(CategoryValidation).Build(),
			category: CategoryDelivery,
			want:     false,
		},
		{
			name:     "plain error has no category",
			err:      fmt.Errorf("plain"),
			category: CategoryGeneric,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsCategory(tt.err, tt.category))
		})
	}

	assert.True(t, IsNotFound(Newf("gone").Category(CategoryNotFound).Build()))
	assert.False(t, IsNotFound(fmt.Errorf("gone")))
}

func TestGetContextReturnsCopy(t *testing.T) {
	t.Parallel()

	ee := Newf("ctx").Context("key", "value").Build()
	ctx := ee.GetContext()
	ctx["key"] = "mutated"

	assert.Equal(t, "value", ee.GetContext()["key"])
}
