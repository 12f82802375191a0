package corelex_test

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/dkerrow/corelex"
	"github.com/stretchr/testify/assert"
)

// ruleSetFixture mirrors testdata/*.toml: an alphabet plus an ordered list
// of (type, regex) rules, the same shape TokenizerBuilder.AddRule consumes.
// Grounded on tunaq's own config-loading convention of decoding structured
// fixtures with BurntSushi/toml rather than hand-rolling a parser.
type ruleSetFixture struct {
	Alphabet string `toml:"alphabet"`
	Rules    []struct {
		Type  string `toml:"type"`
		Regex string `toml:"regex"`
	} `toml:"rules"`
}

func loadTokenizer(t *testing.T, path string) *corelex.Tokenizer {
	t.Helper()

	var fixture ruleSetFixture
	if _, err := toml.DecodeFile(path, &fixture); err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}

	b := corelex.NewTokenizerBuilder()
	for _, r := range fixture.Rules {
		b.AddRule(r.Type, r.Regex)
	}

	tok, err := b.Build([]rune(fixture.Alphabet))
	if err != nil {
		t.Fatalf("building tokenizer from %s: %v", path, err)
	}
	return tok
}

func Test_Tokenizer_FromTOMLFixture(t *testing.T) {
	assert := assert.New(t)

	tok := loadTokenizer(t, "testdata/tokenizer_rules.toml")

	tokens, err := tok.Tokenize("if42ab")
	if !assert.NoError(err) {
		return
	}

	if assert.Len(tokens, 3) {
		assert.Equal(corelex.Token{Type: "KEYWORD", Value: "if", Position: 0}, tokens[0])
		assert.Equal(corelex.Token{Type: "NUMBER", Value: "42", Position: 2}, tokens[1])
		assert.Equal(corelex.Token{Type: "IDENT", Value: "ab", Position: 4}, tokens[2])
	}
}
