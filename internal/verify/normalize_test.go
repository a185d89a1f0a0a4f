package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextNorm(t *testing.T) {
	assert.Equal(t, "ramesh kumar", TextNorm("  Ramesh   Kumar "))
	assert.Equal(t, "b.tech (cse)", TextNorm("B.Tech\t(CSE)"))
	assert.Equal(t, "", TextNorm("   "))
}

func TestRollNorm(t *testing.T) {
	assert.Equal(t, "JH/2019/0456", RollNorm(" jh / 2019 / 0456 "))
	assert.Equal(t, "JH/2019/0456", RollNorm("JH-/2019/.0456"))
	assert.Equal(t, "", RollNorm("---"))
}

func TestDateNorm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2020-07-15", "2020-07-15"},
		{"2020/07/15", "2020-07-15"},
		{"15 July 2020", "2020-07-15"},
		{"5 Sep 2021", "2021-09-05"},
		{"1 September 1999", "1999-09-01"},
		{"Issued sometime in 2020", "Issued sometime in 2020"},
		{"15-07-2020", "15-07-2020"}, // day-first stays as-is
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DateNorm(c.in), "input %q", c.in)
	}
}

func TestMarksNorm(t *testing.T) {
	v, ok := MarksNorm("78")
	assert.True(t, ok)
	assert.Equal(t, "78.0", v)

	v, ok = MarksNorm("78.25%")
	assert.True(t, ok)
	assert.Equal(t, "78.2", v)

	v, ok = MarksNorm("CGPA: 8.1 out of 10")
	assert.True(t, ok)
	assert.Equal(t, "8.1", v)

	_, ok = MarksNorm("distinction")
	assert.False(t, ok)
}

func TestNormalizersIdempotent(t *testing.T) {
	inputs := []string{"  Ramesh   Kumar ", "jh/2019/0456", "15 July 2020", "2020/07/15", "78.25%", ""}
	for _, in := range inputs {
		assert.Equal(t, TextNorm(in), TextNorm(TextNorm(in)))
		assert.Equal(t, RollNorm(in), RollNorm(RollNorm(in)))
		assert.Equal(t, DateNorm(in), DateNorm(DateNorm(in)))
		if v, ok := MarksNorm(in); ok {
			again, ok2 := MarksNorm(v)
			assert.True(t, ok2)
			assert.Equal(t, v, again)
		}
	}
}
