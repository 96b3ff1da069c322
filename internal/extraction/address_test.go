package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmailAddress(t *testing.T) {
	cases := map[string]string{
		`"Jane Doe" <jane@acme.com>`:     "jane@acme.com",
		"Jane Doe <jane@acme.com>":       "jane@acme.com",
		"jane@acme.com":                  "jane@acme.com",
		"reply to jane@acme.com please":  "jane@acme.com",
		"  spaced@acme.com  ":            "spaced@acme.com",
		"no address here":                "no address here",
		"":                               "",
	}
	for input, want := range cases {
		assert.Equal(t, want, ExtractEmailAddress(input), "input %q", input)
	}
}
