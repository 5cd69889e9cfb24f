package boxcutter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	for k, s := range map[Kind]string{
		NullKind:   "null",
		BoolKind:   "bool",
		NumberKind: "number",
		StringKind: "string",
		ArrayKind:  "array",
		ObjectKind: "object",
		Kind(42):   "Kind(42)",
	} {
		assert.Equal(t, s, k.String())
	}
}

func TestNodeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", NewNull().Text())
	assert.Equal(t, "true", NewBool(true).Text())
	assert.Equal(t, "42", NewInt(42).Text())
	assert.Equal(t, "0.25", NewFloat(0.25).Text())
	assert.Equal(t, "plain text", NewString("plain text").Text())
	assert.Equal(t, `["a",1]`, NewArray(NewString("a"), NewInt(1)).Text())
	assert.Equal(t, `{}`, NewObject().Text())
}

func TestNodeObject(t *testing.T) {
	t.Parallel()

	n := NewObject()
	n.SetMember("b", NewInt(1))
	n.SetMember("a", NewInt(2))
	n.SetMember("b", NewInt(3))

	assert.Equal(t, []string{"b", "a"}, n.Keys())
	assert.Equal(t, 2, n.Len())

	v, found := n.Member("b")
	require.True(t, found)
	assert.Equal(t, "3", v.Text())

	assert.True(t, n.DeleteMember("b"))
	assert.False(t, n.DeleteMember("b"))
	assert.Equal(t, []string{"a"}, n.Keys())

	// object accessors on other kinds are no-ops
	s := NewString("x")
	s.SetMember("a", NewNull())
	_, found = s.Member("a")
	assert.False(t, found)
	assert.False(t, s.DeleteMember("a"))
	assert.Nil(t, s.Keys())
	assert.Equal(t, 0, s.Len())
}

func TestNodeArray(t *testing.T) {
	t.Parallel()

	n := NewArray()
	assert.Equal(t, 0, n.Len())
	assert.Equal(t, "[]", n.Text())

	n.SetElem(1, NewString("b"))
	assert.Equal(t, `[null,"b"]`, n.Text())

	n.SetElem(0, NewString("a"))
	assert.Equal(t, `["a","b"]`, n.Text())

	n.SetElem(-1, NewString("x"))
	assert.Equal(t, 2, n.Len())

	v, found := n.Elem(1)
	require.True(t, found)
	assert.Equal(t, "b", v.Text())

	_, found = n.Elem(2)
	assert.False(t, found)
	_, found = n.Elem(-1)
	assert.False(t, found)

	o := NewObject()
	o.SetElem(0, NewNull())
	assert.Equal(t, 0, o.Len())
	_, found = o.Elem(0)
	assert.False(t, found)
}

func TestNodeIsScalar(t *testing.T) {
	t.Parallel()

	assert.True(t, NewNull().IsScalar())
	assert.True(t, NewString("").IsScalar())
	assert.False(t, NewArray().IsScalar())
	assert.False(t, NewObject().IsScalar())
}

func TestNodeClone(t *testing.T) {
	t.Parallel()

	orig := mustDecode(t, `{"a":{"b":[1,{"c":"d"}]}}`)
	c := orig.Clone()
	assert.Equal(t, mustEncode(t, orig), mustEncode(t, c))

	require.NoError(t, Set(c, "a.b[1].c", NewString("changed")))
	v, found := Get(orig, "a.b[1].c")
	require.True(t, found)
	assert.Equal(t, "d", v.Text())

	var nilNode *Node
	assert.Nil(t, nilNode.Clone())
}

func TestConcurrentGet(t *testing.T) {
	t.Parallel()

	root := mustDecode(t, testManifest)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range 100 {
				v, found := Get(root, "config.test")
				assert.True(t, found)
				assert.Equal(t, "FOO", v.Text())

				_, found = Get(root, "array[ 5 ]")
				assert.False(t, found)
			}
		}()
	}
	wg.Wait()
}
