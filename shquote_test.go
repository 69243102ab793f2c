package shquote

import "gopkg.in/check.v1"

func (s *Suite) Test_Tokenizer_Next(c *check.C) {
	t := NewTokenizer("   foo \"bar\"baz # comment")

	word, ok := t.Next()
	c.Check(word, equals, "foo")
	c.Check(ok, equals, true)

	word, ok = t.Next()
	c.Check(word, equals, "barbaz")
	c.Check(ok, equals, true)

	word, ok = t.Next()
	c.Check(word, equals, "")
	c.Check(ok, equals, false)
	c.Check(t.HadError(), equals, false)
	c.Check(t.LineNo(), equals, 1)
}

func (s *Suite) Test_Tokenizer_HadError(c *check.C) {
	t := NewTokenizer("say 'hello")

	word, ok := t.Next()
	c.Check(word, equals, "say")
	c.Check(ok, equals, true)

	_, ok = t.Next()
	c.Check(ok, equals, false)
	c.Check(t.HadError(), equals, true)
}

func (s *Suite) Test_Split(c *check.C) {
	checkSplit := func(input string, expected ...string) {
		words, err := Split(input)
		c.Check(err, check.IsNil)
		c.Check(words, deepEquals, expected)
	}
	checkFail := func(input string) {
		words, err := Split(input)
		c.Check(err, equals, ErrSyntax)
		c.Check(words, check.IsNil)
	}

	checkSplit("foo baz", "foo", "baz")
	checkSplit("foo \"bar\"baz", "foo", "barbaz")
	checkSplit("foo\\\nbar", "foobar")
	checkSplit("'baz\\$b'", "baz\\$b")
	checkSplit("foo #bar\nbaz", "foo", "baz")
	checkSplit("foo#bar", "foo#bar")

	checkFail("\"")
	checkFail("'")
	checkFail("\\")
}

func (s *Suite) Test_Split__empty_input(c *check.C) {
	words, err := Split("")

	c.Check(err, check.IsNil)
	c.Check(words, deepEquals, []string{})
}

func (s *Suite) Test_Quote(c *check.C) {
	c.Check(Quote("foobar"), equals, "foobar")
	c.Check(Quote("foo bar"), equals, "\"foo bar\"")
	c.Check(Quote("\""), equals, "\"\\\"\"")
	c.Check(Quote(""), equals, "\"\"")
}

func (s *Suite) Test_Join(c *check.C) {
	c.Check(Join(nil), equals, "")
	c.Check(Join([]string{""}), equals, "\"\"")
	c.Check(Join([]string{"a", "b"}), equals, "a b")
	c.Check(Join([]string{"foo bar", "baz"}), equals, "\"foo bar\" baz")
}

func (s *Suite) Test_Join__round_trip(c *check.C) {
	words := []string{"printf", "%s\\n", "hello world", "", "it's"}

	split, err := Split(Join(words))

	c.Check(err, check.IsNil)
	c.Check(split, deepEquals, words)
}
