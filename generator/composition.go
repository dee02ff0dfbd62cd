package generator

import (
	"errors"
	"math"
)

const (
	Letters = "abcdefghijklmnopqrstuvwxyz"
	Numbers = "0123456789"
	Special = "!\"#$%&'()*+,-./:;<=>?@[~]^_`{|}\\"

	// MinLength is the smallest Properties.Length at which every enabled
	// group is guaranteed at least one character.
	MinLength = 4
)

var ErrInvalidComposition = errors.New("must include at least one group of characters")

// Properties describes a password by total length and enabled groups.
// Lowercase letters are always present and fill in for disabled groups.
type Properties struct {
	Uppercase bool
	Numbers   bool
	Special   bool
	Length    int
}

// DefaultProperties returns 20 characters with uppercase letters and numbers.
func DefaultProperties() Properties {
	return Properties{
		Uppercase: true,
		Numbers:   true,
		Special:   false,
		Length:    20,
	}
}

// PropertiesOverrides is a partial Properties.
// Pointer fields allow distinguishing between missing (nil -> keep) and explicit values.
type PropertiesOverrides struct {
	Uppercase *bool
	Numbers   *bool
	Special   *bool
	Length    *int
}

// Merge returns p with every set field of o applied.
func (p Properties) Merge(o PropertiesOverrides) Properties {
	return Properties{
		Uppercase: boolOrDefault(o.Uppercase, p.Uppercase),
		Numbers:   boolOrDefault(o.Numbers, p.Numbers),
		Special:   boolOrDefault(o.Special, p.Special),
		Length:    intOrDefault(o.Length, p.Length),
	}
}

// parts splits Length into four near-equal parts; the last one takes the remainder.
func (p Properties) parts() []part {
	if p.Length <= 0 {
		return nil
	}

	n := p.Length / 4
	parts := []part{
		{charset: Letters, length: n},
		{charset: Letters, length: n, upper: p.Uppercase},
		{charset: Letters, length: n},
		{charset: Letters, length: p.Length - 3*n},
	}
	if p.Numbers {
		parts[2].charset = Numbers
	}
	if p.Special {
		parts[3].charset = Special
	}
	return parts
}

// Counts describes a password by the number of characters taken from each group.
type Counts struct {
	Letters   int
	Uppercase int
	Numbers   int
	Special   int
}

// DefaultCounts returns five characters of every group.
func DefaultCounts() Counts {
	return Counts{
		Letters:   5,
		Uppercase: 5,
		Numbers:   5,
		Special:   5,
	}
}

// CountsOverrides is a partial Counts.
type CountsOverrides struct {
	Letters   *int
	Uppercase *int
	Numbers   *int
	Special   *int
}

// Merge returns c with every set field of o applied.
func (c Counts) Merge(o CountsOverrides) Counts {
	return Counts{
		Letters:   intOrDefault(o.Letters, c.Letters),
		Uppercase: intOrDefault(o.Uppercase, c.Uppercase),
		Numbers:   intOrDefault(o.Numbers, c.Numbers),
		Special:   intOrDefault(o.Special, c.Special),
	}
}

// Total returns the length of a password built from c. Negative counts add
// nothing and the sum saturates at math.MaxInt.
func (c Counts) Total() int {
	total := 0
	for _, n := range []int{c.Letters, c.Uppercase, c.Numbers, c.Special} {
		total = addLength(total, n)
	}
	return total
}

// Validate reports ErrInvalidComposition when c would produce no characters.
func (c Counts) Validate() error {
	if c.Letters > 0 || c.Uppercase > 0 || c.Numbers > 0 || c.Special > 0 {
		return nil
	}
	return ErrInvalidComposition
}

func (c Counts) parts() []part {
	return []part{
		{charset: Letters, length: c.Letters},
		{charset: Letters, length: c.Uppercase, upper: true},
		{charset: Numbers, length: c.Numbers},
		{charset: Special, length: c.Special},
	}
}

// Bool returns a pointer to v, for use in overrides.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for use in overrides.
func Int(v int) *int { return &v }

// addLength adds n to total when n is positive, saturating at math.MaxInt.
func addLength(total, n int) int {
	if n <= 0 {
		return total
	}
	if total > math.MaxInt-n {
		return math.MaxInt
	}
	return total + n
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
