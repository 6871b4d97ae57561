package internal

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestValidEmail(t *testing.T) {
	c := qt.New(t)
	c.Assert(ValidEmail("a@b.com"), qt.IsTrue)
	c.Assert(ValidEmail("ada.lovelace+test@example.co.uk"), qt.IsTrue)
	c.Assert(ValidEmail(""), qt.IsFalse)
	c.Assert(ValidEmail("not-an-email"), qt.IsFalse)
	c.Assert(ValidEmail("a@b"), qt.IsFalse)
}

func TestFirstWord(t *testing.T) {
	c := qt.New(t)
	c.Assert(FirstWord("Ada Lovelace"), qt.Equals, "Ada")
	c.Assert(FirstWord("Ada"), qt.Equals, "Ada")
	c.Assert(FirstWord("  Ada   Lovelace "), qt.Equals, "Ada")
	c.Assert(FirstWord(""), qt.Equals, "")
	c.Assert(FirstWord("   "), qt.Equals, "")
}
