//go:build listdebug

package list

import (
	"errors"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func expectMisuse(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		var lerr listError
		err, _ := recover().(error)
		check.True(t, errors.As(err, &lerr))
	}()
	fn()
}

func TestMisusePanics(t *testing.T) {
	var l1, l2 List[int]
	var a, b, c Element[int]
	l1.Append(&a, 1)
	l2.Append(&b, 2)

	expectMisuse(t, func() { l1.Append(&a, 10) })
	expectMisuse(t, func() { l2.Prepend(&a, 10) })
	expectMisuse(t, func() { l1.InsertAfter(&c, &b, 3) })
	expectMisuse(t, func() { l1.InsertBefore(&c, &b, 3) })

	checkListPointers(t, &l1, []*Element[int]{&a})
	checkListPointers(t, &l2, []*Element[int]{&b})
	checkUnlinked(t, &c)

	assert.NotPanic(t, func() {
		l1.InsertAfter(&c, &a, 3)
		c.Unlink()
		c.Unlink()
	})
}

func TestListErrorMessage(t *testing.T) {
	check.Equal(t, "list: element is already linked", listError("element is already linked").Error())
}
