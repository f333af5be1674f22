package attrs

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// specPattern is the supported part of the replacement field format spec:
// [align][sign][0][width][.precision][type], align being '<' or '>'.
var specPattern = regexp.MustCompile(`^([<>])?([+ -])?(0)?(\d+)?(?:\.(\d+))?([bdeEfFgGosxX])?$`)

// Format replaces every "{name}" in template with the value lookup returns
// for name. "{{" and "}}" stand for literal braces. A lookup that fails
// with ErrNoAttribute is reported as ErrKeyLookup.
//
// A field may carry a conversion and a format spec, "{name!r:>10}":
// "!s" formats the value as text and "!r" quotes it; the spec sets
// alignment, sign, zero padding, width, precision and one of the types
// b d o x X (integers), e E f F g G (numbers) or s. Centering, fill
// characters, grouping and '%' are not supported and fail with ErrFormat.
func Format(template string, lookup func(name string) (any, error)) (string, error) {
	var b strings.Builder

	for i := 0; i < len(template); i++ {
		c := template[i]

		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++

				continue
			}

			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed placeholder in %q", ErrFormat, template)
			}

			field := template[i+1 : i+1+end]
			if strings.ContainsRune(field, '{') {
				return "", fmt.Errorf("%w: bad placeholder %q in %q", ErrFormat, field, template)
			}

			name, conv, spec, err := parseField(field)
			if err != nil {
				return "", fmt.Errorf("%w in %q", err, template)
			}

			val, err := lookup(name)
			if err != nil {
				if errors.Is(err, ErrNoAttribute) {
					return "", fmt.Errorf("%w: %q", ErrKeyLookup, name)
				}

				return "", err
			}

			text, err := formatValue(val, conv, spec)
			if err != nil {
				return "", fmt.Errorf("%w: field %q", err, field)
			}

			b.WriteString(text)
			i += end + 1

		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++

				continue
			}

			return "", fmt.Errorf("%w: single '}' in %q", ErrFormat, template)

		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

// parseField splits "name!conv:spec" into its parts.
func parseField(field string) (name, conv, spec string, err error) {
	name, spec, _ = strings.Cut(field, ":")
	name, conv, hasConv := strings.Cut(name, "!")

	if name == "" {
		return "", "", "", fmt.Errorf("%w: bad placeholder %q", ErrFormat, field)
	}

	if hasConv && conv != "s" && conv != "r" {
		return "", "", "", fmt.Errorf("%w: unknown conversion %q", ErrFormat, "!"+conv)
	}

	return name, conv, spec, nil
}

func formatValue(val any, conv, spec string) (string, error) {
	switch conv {
	case "s":
		val = fmt.Sprint(val)
	case "r":
		if s, ok := val.(string); ok {
			val = fmt.Sprintf("%q", s)
		} else {
			val = fmt.Sprint(val)
		}
	}

	if spec == "" {
		return fmt.Sprint(val), nil
	}

	m := specPattern.FindStringSubmatch(spec)
	if m == nil {
		return "", fmt.Errorf("%w: unsupported format spec %q", ErrFormat, spec)
	}

	align, sign, zero, width, precision, typ := m[1], m[2], m[3], m[4], m[5], m[6]

	kind := reflect.Invalid
	if val != nil {
		kind = reflect.TypeOf(val).Kind()
	}

	verb := "v"

	switch typ {
	case "b", "d", "o", "x", "X":
		if !isInteger(kind) {
			return "", fmt.Errorf("%w: %q needs an integer, got %T", ErrFormat, typ, val)
		}

		verb = typ
	case "e", "E", "f", "F", "g", "G":
		switch {
		case isInteger(kind):
			val = reflect.ValueOf(val).Convert(reflect.TypeFor[float64]()).Interface()
		case !isFloat(kind):
			return "", fmt.Errorf("%w: %q needs a number, got %T", ErrFormat, typ, val)
		}

		verb = strings.Replace(typ, "F", "f", 1)
	case "s":
		if kind != reflect.String {
			return "", fmt.Errorf("%w: %q needs a string, got %T", ErrFormat, typ, val)
		}
	}

	var f strings.Builder

	f.WriteByte('%')

	// text aligns left unless asked otherwise, numbers right
	if align == "<" || align == "" && kind == reflect.String {
		f.WriteByte('-')
	}

	if sign == "+" || sign == " " {
		f.WriteString(sign)
	}

	f.WriteString(zero + width)

	if precision != "" {
		f.WriteString("." + precision)
	}

	f.WriteString(verb)

	return fmt.Sprintf(f.String(), val), nil
}
