package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea montos para mostrar en pantalla según el locale de la empresa.
// Solo para presentación: los cálculos nunca pasan por aquí.
type Formatter struct {
	places   int32
	group    string
	decimal  string
	minGroup bool // el locale no agrupa números de 4 cifras (ej. español: 1234, 12.345)
}

// NewFormatter construye el formateador. Un locale inválido cae a español.
// Los separadores salen de x/text; los dígitos se toman del texto del decimal, sin pasar por float64.
func NewFormatter(locale string, places int) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	if places < 0 {
		places = 2
	}
	p := message.NewPrinter(tag)
	f := &Formatter{places: int32(places), group: ",", decimal: "."}

	// 1234567.5 -> "1,234,567.5" / "1.234.567,5": primer separador tras el 1, el decimal antes del 5.
	sample := []rune(p.Sprint(number.Decimal(1234567.5, number.Scale(1))))
	if len(sample) >= 4 && sample[1] != sample[len(sample)-2] {
		f.group = string(sample[1])
		f.decimal = string(sample[len(sample)-2])
	}
	f.minGroup = !strings.Contains(p.Sprint(number.Decimal(1234)), f.group)
	return f
}

// Format devuelve el monto redondeado con separadores del locale (ej. 1.234.567,50 en es-CO).
func (f *Formatter) Format(d decimal.Decimal) string {
	s := d.Round(f.places).StringFixed(f.places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	if len(intPart) > 3 && !(f.minGroup && len(intPart) == 4) {
		head := len(intPart) % 3
		if head > 0 {
			b.WriteString(intPart[:head])
		}
		for i := head; i < len(intPart); i += 3 {
			if i > 0 {
				b.WriteString(f.group)
			}
			b.WriteString(intPart[i : i+3])
		}
	} else {
		b.WriteString(intPart)
	}
	if frac != "" {
		b.WriteString(f.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

