package password

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	allChars = uppercaseChars + lowercaseChars + digitChars + symbolChars
)

// Category is one of the character classes every password must draw from.
type Category int

const (
	Uppercase Category = iota
	Lowercase
	Digit
	Symbol
)

// Categories lists every category in a fixed order.
var Categories = []Category{Uppercase, Lowercase, Digit, Symbol}

// Alphabet returns the characters belonging to c.
func (c Category) Alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c Category) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}
