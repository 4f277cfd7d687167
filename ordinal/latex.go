// Package ordinal: LaTeX rendering.
package ordinal

import (
	"strconv"
	"strings"
)

// Rendering style, chosen once per value from its largest VNF subscript so
// the whole expression stays in one consistent notation.
const (
	styleGlyphs  = iota // ω, ε, ζ glyphs for subscripts 0..2
	stylePhiSub         // \varphi_s(v) for finite subscripts ≥ 3
	stylePhiPair        // \varphi(s, v) once subscripts reach ω
)

// String renders the ordinal as LaTeX. Display-only: there is no parser.
func (o *Ordinal) String() string {
	style := styleGlyphs
	if len(o.vnf) > 0 {
		switch sub := o.vnf[0].Sub; {
		case sub.Cmp(Omega) >= 0:
			style = stylePhiPair
		case sub.nat >= 3:
			style = stylePhiSub
		}
	}

	return o.render(style)
}

// render writes one ordinal in the given style. Finite values render as a
// braced integer; composite values are a braced " + "-joined term list.
func (o *Ordinal) render(style int) string {
	if o.IsFinite() {
		if o.nat == 0 {
			return "0"
		}

		return "{" + strconv.Itoa(o.nat) + "}"
	}

	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	join := func() {
		if !first {
			sb.WriteString(" + ")
		}
		first = false
	}

	for _, t := range o.vnf {
		join()
		renderVnfTerm(&sb, t, style)
		renderCoeff(&sb, t.Coeff)
	}
	for _, t := range o.cnf {
		join()
		renderCnfTerm(&sb, t, style)
		renderCoeff(&sb, t.Coeff)
	}
	if o.nat != 0 {
		join()
		sb.WriteString("{" + strconv.Itoa(o.nat) + "}")
	}
	sb.WriteByte('}')

	return sb.String()
}

func renderVnfTerm(sb *strings.Builder, t VnfTerm, style int) {
	switch {
	case style == styleGlyphs && t.Sub.EqualInt(0):
		sb.WriteString(`\omega^` + t.Arg.render(style))
	case style == styleGlyphs && t.Sub.EqualInt(1):
		sb.WriteString(`\varepsilon_` + t.Arg.render(style))
	case style == styleGlyphs && t.Sub.EqualInt(2):
		sb.WriteString(`\zeta_` + t.Arg.render(style))
	case style <= stylePhiSub:
		sb.WriteString(`\varphi_` + t.Sub.render(style) + "(" + t.Arg.render(style) + ")")
	default:
		sb.WriteString(`\varphi(` + t.Sub.render(style) + ", " + t.Arg.render(style) + ")")
	}
}

func renderCnfTerm(sb *strings.Builder, t CnfTerm, style int) {
	switch style {
	case styleGlyphs:
		sb.WriteString(`\omega`)
		if !t.Exp.EqualInt(1) {
			sb.WriteString("^" + t.Exp.render(style))
		}
	case stylePhiSub:
		sb.WriteString(`\varphi_{0}(` + t.Exp.render(style) + ")")
	default:
		sb.WriteString(`\varphi({0}, ` + t.Exp.render(style) + ")")
	}
}

func renderCoeff(sb *strings.Builder, c int) {
	if c != 1 {
		sb.WriteString(` \cdot {` + strconv.Itoa(c) + "}")
	}
}
