// Command genbez writes the fixed-order Bézier polynomial and composite curve
// types to poly_gen.go and composite_gen.go. Run from the module root
// directory, usually via go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strings"
)

const (
	minOrder = 2
	maxOrder = 6
	minDims  = 2
	maxDims  = 4
)

var axes = [maxDims]string{"X", "Y", "Z", "W"}

const header = "// Code generated by genbez. DO NOT EDIT.\n\npackage bezier\n"

func main() {
	write("poly_gen.go", genPolys())
	write("composite_gen.go", genComposites())
}

func write(name string, src []byte) {
	out, err := format.Source(src)
	if err != nil {
		panic(fmt.Sprintf("formatting %s: %s", name, err))
	}
	if err := os.WriteFile(name, out, 0o644); err != nil {
		panic(err)
	}
	slog.Info("wrote generated file", "name", name, "bytes", len(out))
}

// combination returns C(n, k). The orders we generate are small enough for
// this to never overflow.
func combination(n, k int) int {
	k = min(k, n-k)
	acc := 1
	for i := 1; i <= k; i++ {
		acc = acc * (n - k + i) / i
	}
	return acc
}

// paramName returns the field name of the i-th control point of a polynomial
// of the given order.
func paramName(i, order int) string {
	switch {
	case i == 0:
		return "Start"
	case i == order:
		return "End"
	case order == 2:
		return "Ctrl"
	default:
		return fmt.Sprintf("Ctrl%d", i)
	}
}

func paramNames(order int) []string {
	names := make([]string, order+1)
	for i := range names {
		names[i] = paramName(i, order)
	}
	return names
}

func lower(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.ToLower(name)
	}
	return out
}

// term returns the product weight * t**k * mt**(n-k) * operand, omitting
// factors of one.
func term(weight, k, n int, operand string) string {
	var factors []string
	if weight != 1 {
		factors = append(factors, fmt.Sprint(weight))
	}
	for range k {
		factors = append(factors, "t")
	}
	for range n - k {
		factors = append(factors, "mt")
	}
	factors = append(factors, operand)
	return strings.Join(factors, "*")
}

func joinInts(vs []int) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ", ")
}

func polyName(order int) string { return fmt.Sprintf("BezPoly%do", order) }

func genPolys() []byte {
	var b bytes.Buffer
	b.WriteString(header)
	for n := minOrder; n <= maxOrder; n++ {
		genPoly(&b, n)
	}
	return b.Bytes()
}

func genPoly(b *bytes.Buffer, n int) {
	name := polyName(n)
	fields := paramNames(n)
	params := lower(fields)

	weights := make([]int, n+1)
	for k := range weights {
		weights[k] = combination(n, k)
	}
	dweights := make([]int, n)
	for k := range dweights {
		dweights[k] = combination(n-1, k) * n
	}

	fmt.Fprintf(b, "\n// %s is a one-dimensional Bézier polynomial of order %d.\n", name, n)
	fmt.Fprintf(b, "// Its interpolation weights are %s and its derivative weights are %s.\n", joinInts(weights), joinInts(dweights))
	fmt.Fprintf(b, "type %s[F Float] struct {\n", name)
	for _, f := range fields {
		fmt.Fprintf(b, "\t%s F\n", f)
	}
	b.WriteString("}\n")

	inits := make([]string, len(fields))
	for i := range fields {
		inits[i] = fields[i] + ": " + params[i]
	}
	fmt.Fprintf(b, "\n// New%s returns the polynomial with the given control values.\n", name)
	fmt.Fprintf(b, "func New%s[F Float](%s F) %s[F] {\n", name, strings.Join(params, ", "), name)
	fmt.Fprintf(b, "\treturn %s[F]{%s}\n}\n", name, strings.Join(inits, ", "))

	fmt.Fprintf(b, "\n// Order returns %d.\n", n)
	fmt.Fprintf(b, "func (%s[F]) Order() int { return %d }\n", name, n)

	sels := make([]string, len(fields))
	for i, f := range fields {
		sels[i] = "p." + f
	}
	b.WriteString("\n// Values returns the control values in order.\n")
	fmt.Fprintf(b, "func (p %s[F]) Values() [%d]F {\n", name, n+1)
	fmt.Fprintf(b, "\treturn [%d]F{%s}\n}\n", n+1, strings.Join(sels, ", "))

	vals := make([]string, n+1)
	for i := range vals {
		vals[i] = fmt.Sprintf("vs[%d]", i)
	}
	b.WriteString("\n// SetValues replaces all control values.\n")
	fmt.Fprintf(b, "func (p *%s[F]) SetValues(vs [%d]F) {\n", name, n+1)
	fmt.Fprintf(b, "\t*p = New%s(%s)\n}\n", name, strings.Join(vals, ", "))

	fmt.Fprintf(b, `
// SetValue replaces the i-th control value. It panics if i is out of range.
func (p *%s[F]) SetValue(i int, v F) {
	vs := p.Values()
	vs[i] = v
	p.SetValues(vs)
}
`, name)

	terms := make([]string, n+1)
	for k := range terms {
		terms[k] = term(weights[k], k, n, sels[k])
	}
	dterms := make([]string, n)
	for k := range dterms {
		dterms[k] = term(dweights[k], k, n-1, fmt.Sprintf("(%s-%s)", sels[k+1], sels[k]))
	}

	fmt.Fprintf(b, `
// Interp evaluates the polynomial at t, which must be in [0, 1].
func (p %[1]s[F]) Interp(t F) (F, error) {
	if err := checkT(t); err != nil {
		return 0, err
	}
	return p.InterpUnbounded(t), nil
}

// InterpUnbounded evaluates the polynomial at t without checking that t is in
// [0, 1].
func (p %[1]s[F]) InterpUnbounded(t F) F {
	mt := 1 - t
	return %[2]s
}

// Slope evaluates the polynomial's derivative at t, which must be in [0, 1].
func (p %[1]s[F]) Slope(t F) (F, error) {
	if err := checkT(t); err != nil {
		return 0, err
	}
	return p.SlopeUnbounded(t), nil
}

// SlopeUnbounded evaluates the polynomial's derivative at t without checking
// that t is in [0, 1].
func (p %[1]s[F]) SlopeUnbounded(t F) F {
	mt := 1 - t
	return %[3]s
}
`, name, strings.Join(terms, " +\n\t\t"), strings.Join(dterms, " +\n\t\t"))
}

func genComposites() []byte {
	var b bytes.Buffer
	b.WriteString(header)
	for d := minDims; d <= maxDims; d++ {
		for n := minOrder; n <= maxOrder; n++ {
			genComposite(&b, n, d)
		}
	}
	return b.Bytes()
}

func genComposite(b *bytes.Buffer, n, d int) {
	name := fmt.Sprintf("Bez%do%dd", n, d)
	poly := polyName(n)
	pt := fmt.Sprintf("Point%d", d)
	vec := fmt.Sprintf("Vec%d", d)
	fields := paramNames(n)
	params := lower(fields)
	dims := axes[:d]

	fmt.Fprintf(b, "\n// %s is a %d-dimensional Bézier curve of order %d, made of one [%s]\n// per axis.\n", name, d, n, poly)
	fmt.Fprintf(b, "type %s[F Float] struct {\n", name)
	for _, ax := range dims {
		fmt.Fprintf(b, "\t%s %s[F]\n", ax, poly)
	}
	b.WriteString("}\n")
	fmt.Fprintf(b, "\nvar _ Curve[float64, %[2]s[float64], %[3]s[float64]] = %[1]s[float64]{}\n", name, pt, vec)

	fmt.Fprintf(b, "\n// New%s returns the curve with the given control points.\n", name)
	fmt.Fprintf(b, "func New%s[F Float](%s %s[F]) %s[F] {\n", name, strings.Join(params, ", "), pt, name)
	fmt.Fprintf(b, "\treturn %s[F]{\n", name)
	for _, ax := range dims {
		inits := make([]string, len(fields))
		for i := range fields {
			inits[i] = fmt.Sprintf("%s: %s.%s", fields[i], params[i], ax)
		}
		fmt.Fprintf(b, "\t\t%s: %s[F]{%s},\n", ax, poly, strings.Join(inits, ", "))
	}
	b.WriteString("\t}\n}\n")

	fmt.Fprintf(b, "\n// Order returns %d.\n", n)
	fmt.Fprintf(b, "func (%s[F]) Order() int { return %d }\n", name, n)

	axisCalls := func(method string) string {
		var s strings.Builder
		for _, ax := range dims {
			fmt.Fprintf(&s, "\t\t%[1]s: c.%[1]s.%[2]s(t),\n", ax, method)
		}
		return s.String()
	}

	fmt.Fprintf(b, `
// Interp evaluates the curve at t, which must be in [0, 1].
func (c %[1]s[F]) Interp(t F) (%[2]s[F], error) {
	if err := checkT(t); err != nil {
		return %[2]s[F]{}, err
	}
	return c.InterpUnbounded(t), nil
}

// InterpUnbounded evaluates the curve at t without checking that t is in
// [0, 1].
func (c %[1]s[F]) InterpUnbounded(t F) %[2]s[F] {
	return %[2]s[F]{
%[4]s	}
}

// Slope evaluates the curve's derivative at t, which must be in [0, 1].
func (c %[1]s[F]) Slope(t F) (%[3]s[F], error) {
	if err := checkT(t); err != nil {
		return %[3]s[F]{}, err
	}
	return c.SlopeUnbounded(t), nil
}

// SlopeUnbounded evaluates the curve's derivative at t without checking that
// t is in [0, 1].
func (c %[1]s[F]) SlopeUnbounded(t F) %[3]s[F] {
	return %[3]s[F]{
%[5]s	}
}
`, name, pt, vec, axisCalls("InterpUnbounded"), axisCalls("SlopeUnbounded"))

	b.WriteString("\n// Points returns the control points in order.\n")
	fmt.Fprintf(b, "func (c %s[F]) Points() [%d]%s[F] {\n", name, n+1, pt)
	fmt.Fprintf(b, "\treturn [%d]%s[F]{\n", n+1, pt)
	for _, f := range fields {
		coords := make([]string, d)
		for i, ax := range dims {
			coords[i] = fmt.Sprintf("%[1]s: c.%[1]s.%[2]s", ax, f)
		}
		fmt.Fprintf(b, "\t\t{%s},\n", strings.Join(coords, ", "))
	}
	b.WriteString("\t}\n}\n")

	args := make([]string, n+1)
	for i := range args {
		args[i] = fmt.Sprintf("pts[%d]", i)
	}
	b.WriteString("\n// SetPoints replaces all control points.\n")
	fmt.Fprintf(b, "func (c *%s[F]) SetPoints(pts [%d]%s[F]) {\n", name, n+1, pt)
	fmt.Fprintf(b, "\t*c = New%s(%s)\n}\n", name, strings.Join(args, ", "))

	fmt.Fprintf(b, `
// SetPoint replaces the i-th control point. It panics if i is out of range.
func (c *%s[F]) SetPoint(i int, p %s[F]) {
	pts := c.Points()
	pts[i] = p
	c.SetPoints(pts)
}
`, name, pt)

	fmt.Fprintf(b, `
// Curve returns an arbitrary-order curve with the same control points.
func (c %[1]s[F]) Curve() *NBez[F, %[2]s[F], %[3]s[F]] {
	pts := c.Points()
	return newNBez[F, %[2]s[F], %[3]s[F]](pts[:])
}
`, name, pt, vec)
}
