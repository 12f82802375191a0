package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Preprocess(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "single literal", input: "a", expect: "a"},
		{name: "operand operand", input: "ab", expect: "a·b"},
		{name: "operand then group", input: "a(b)", expect: "a·(b)"},
		{name: "group then operand", input: "(a)b", expect: "(a)·b"},
		{name: "postfix star then operand", input: "a*b", expect: "a*·b"},
		{name: "postfix plus then group", input: "a+(b)", expect: "a+·(b)"},
		{name: "group then group", input: "(a)(b)", expect: "(a)·(b)"},
		{name: "union untouched", input: "a|b", expect: "a|b"},
		{name: "star alone untouched", input: "a*", expect: "a*"},
		{name: "three operands", input: "abc", expect: "a·b·c"},
		{name: "optional then operand", input: "a?b", expect: "a?·b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			actual := Preprocess(tc.input)
			assert.Equal(tc.expect, actual)
		})
	}
}
