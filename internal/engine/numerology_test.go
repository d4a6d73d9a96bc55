package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceToDigit(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"single letter", "A", 1},
		{"alice", "ALICE", 3},         // 1+12+9+3+5 = 30 -> 3
		{"digits", "30", 3},           // 3+0
		{"date digits", "15061990", 4}, // 31 -> 4
		{"master eleven", "JOHN", 11}, // 10+15+8+14 = 47 -> 11, stops
		{"master from chain", "38", 11},
		{"master twenty-two", "859", 22},
		{"non-letters ignored", "A-L I.C E!", 3},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reduceToDigit(tc.input))
		})
	}
}

func TestReduceToDigit_AlwaysInContract(t *testing.T) {
	// Every output is 1-9 or a master number for non-empty letter input.
	inputs := []string{"Z", "ZZZZZZZZ", "PRIYA", "WONG", "X AE A XII"}
	for _, in := range inputs {
		got := reduceToDigit(upperLetters(in))
		valid := (got >= 1 && got <= 9) || isMasterNumber(got)
		assert.True(t, valid, "reduceToDigit(%q) = %d", in, got)
	}
}

func TestIsMasterNumber(t *testing.T) {
	assert.True(t, isMasterNumber(11))
	assert.True(t, isMasterNumber(22))
	assert.True(t, isMasterNumber(33))
	assert.False(t, isMasterNumber(9))
	assert.False(t, isMasterNumber(44))
}

func TestUpperLetters(t *testing.T) {
	assert.Equal(t, "ALICEWONG", upperLetters("Alice Wong"))
	assert.Equal(t, "OBRIEN", upperLetters("O'Brien"))
	assert.Equal(t, "", upperLetters("123 !?"))
}

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "Alice", firstToken("Alice Wong"))
	assert.Equal(t, "Alice", firstToken("  Alice  "))
	assert.Equal(t, "", firstToken(""))
}
