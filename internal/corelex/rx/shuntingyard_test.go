package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToPostfix(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "single literal", input: "a", expect: "a"},
		{name: "concatenation", input: "a·b", expect: "ab·"},
		{name: "union", input: "a|b", expect: "ab|"},
		{name: "star binds tighter than concat", input: "a·b*", expect: "ab*·"},
		{name: "union lower precedence than concat", input: "a·b|c·d", expect: "ab·cd·|"},
		{name: "parens override precedence", input: "(a|b)·c", expect: "ab|c·"},
		{name: "nested parens", input: "((a))", expect: "a"},
		{name: "three-way concat", input: "a·b·c", expect: "ab·c·"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			actual, err := ToPostfix(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_ToPostfix_MalformedParens(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unmatched close", input: "a)"},
		{name: "unmatched open", input: "(a"},
		{name: "close before any open", input: ")"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			_, err := ToPostfix(tc.input)
			assert.Error(err)
		})
	}
}

func Test_PreprocessThenPostfix(t *testing.T) {
	// end-to-end preprocess+postfix: the user-facing regex never contains the
	// explicit concatenation marker; Preprocess inserts it before ToPostfix runs.
	assert := assert.New(t)

	postfix, err := ToPostfix(Preprocess("ab|c*"))
	if !assert.NoError(err) {
		return
	}
	assert.Equal("ab·c*|", postfix)
}
