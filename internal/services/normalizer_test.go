package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_LowercasesAndStripsPunctuation(t *testing.T) {
	got := NormalizeText("Senior C++/Go Developer (Remote)!")
	assert.Equal(t, "senior c go developer remote", got)
}

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	got := NormalizeText("  Python \t and\n\nSQL  ")
	assert.Equal(t, "python and sql", got)
}

func TestNormalizeText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("   \n\t "))
	assert.Equal(t, "", NormalizeText("!!!???"))
}

func TestNormalizeText_KeepsDigits(t *testing.T) {
	assert.Equal(t, "5 years of python 3", NormalizeText("5 years of Python 3"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"python", "and", "sql"}, Tokenize("Python, and SQL!"))
	assert.Nil(t, Tokenize("   "))
}
