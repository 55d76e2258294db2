package is_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardkit/pkg/is"
)

func TestObject(t *testing.T) {
	t.Parallel()

	t.Run("matches string keyed maps", func(t *testing.T) {
		assert.True(t, is.Object.Test(map[string]any{"a": 1}))
		assert.True(t, is.Object.Test(map[string]any{}))
		assert.True(t, is.Object.Test(map[string]int{"a": 1}))
	})

	t.Run("rejects other keyed collections and non maps", func(t *testing.T) {
		assert.False(t, is.Object.Test(map[int]any{1: "a"}))
		assert.False(t, is.Object.Test([]any{}))
		assert.False(t, is.Object.Test(nil))
	})
}

func TestArray(t *testing.T) {
	t.Parallel()

	t.Run("matches slices and arrays", func(t *testing.T) {
		assert.True(t, is.Array.Test([]any{1, "a"}))
		assert.True(t, is.Array.Test([]string{}))
		assert.True(t, is.Array.Test([2]int{1, 2}))
	})

	t.Run("rejects strings maps and nil", func(t *testing.T) {
		assert.False(t, is.Array.Test("ab"))
		assert.False(t, is.Array.Test(map[string]any{}))
		assert.False(t, is.Array.Test(nil))
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("matches scalar json values", func(t *testing.T) {
		for _, v := range []any{nil, true, "x", 3.14, 5} {
			assert.True(t, is.JSON.Test(v), "value %#v", v)
		}
	})

	t.Run("matches nested decoded documents", func(t *testing.T) {
		doc := map[string]any{
			"name":  "x",
			"count": 3.0,
			"tags":  []any{"a", "b"},
			"meta":  map[string]any{"ok": true, "note": nil},
		}
		assert.True(t, is.JSON.Test(doc))
	})

	t.Run("rejects documents with foreign leaves", func(t *testing.T) {
		assert.False(t, is.JSON.Test(map[string]any{"ch": make(chan int)}))
		assert.False(t, is.JSON.Test([]any{"a", struct{}{}}))
		assert.False(t, is.JSON.Test([]int{1, 2}))
	})
}
