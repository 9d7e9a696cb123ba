package password

// Generator builds passwords from a Source. The zero value is not usable;
// construct one with New.
type Generator struct {
	src Source
}

// New returns a Generator drawing from src. A nil src selects DefaultSource.
func New(src Source) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	return &Generator{src: src}
}

var defaultGenerator = New(nil)

// Generate returns a random password of the given length using the default
// source.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// GenerateValue is Generate for an untyped length; see ParseLength.
func GenerateValue(v any) (string, error) {
	return defaultGenerator.GenerateValue(v)
}

// Generate returns a password of exactly length characters containing at
// least one character from every category.
func (g *Generator) Generate(length int) (string, error) {
	if err := Validate(length); err != nil {
		return "", err
	}

	result := make([]byte, length)

	// One character per category, then fill the rest from the full pool.
	for i, c := range Categories {
		result[i] = g.pick(c.Alphabet())
	}
	for i := len(Categories); i < length; i++ {
		result[i] = g.pick(allChars)
	}

	g.shuffle(result)

	return string(result), nil
}

// GenerateValue validates v with ParseLength and Validate, in that order,
// before generating.
func (g *Generator) GenerateValue(v any) (string, error) {
	length, err := ParseLength(v)
	if err != nil {
		return "", err
	}
	return g.Generate(length)
}

func (g *Generator) pick(charset string) byte {
	return charset[g.src.IntN(len(charset))]
}

// shuffle is a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
