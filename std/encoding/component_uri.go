package encoding

import (
	"encoding/hex"
	"strconv"
	"strings"
)

const (
	ParamShaNameConvention  = "params-sha256"
	DigestShaNameConvention = "sha256digest"
)

type valueFormat int

const (
	formatText valueFormat = iota
	formatHex
	formatDecimal
)

// namingConvention is a component type with a symbolic URI prefix.
type namingConvention struct {
	typ    TLNum
	prefix string
	format valueFormat
}

var conventions = []namingConvention{
	{TypeImplicitSha256DigestComponent, DigestShaNameConvention, formatHex},
	{TypeParametersSha256DigestComponent, ParamShaNameConvention, formatHex},
	{TypeSegmentNameComponent, "seg", formatDecimal},
	{TypeByteOffsetNameComponent, "off", formatDecimal},
	{TypeVersionNameComponent, "v", formatDecimal},
	{TypeTimestampNameComponent, "t", formatDecimal},
	{TypeSequenceNumNameComponent, "seq", formatDecimal},
}

func conventionByType(typ TLNum) (namingConvention, bool) {
	for _, c := range conventions {
		if c.typ == typ {
			return c, true
		}
	}
	return namingConvention{}, false
}

func conventionByPrefix(prefix string) (namingConvention, bool) {
	for _, c := range conventions {
		if c.prefix == prefix {
			return c, true
		}
	}
	return namingConvention{}, false
}

// isUnreserved matches the unreserved characters of RFC 3986.
func isUnreserved(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') ||
		b == '-' || b == '_' || b == '.' || b == '~'
}

const upperHex = "0123456789ABCDEF"

// writeURI writes the URI representation of c and returns the length written.
func (c Component) writeURI(sb *strings.Builder) int {
	start := sb.Len()

	format := formatText
	if conv, ok := conventionByType(c.Typ); ok {
		sb.WriteString(conv.prefix)
		sb.WriteByte('=')
		format = conv.format
	} else if c.Typ != TypeGenericNameComponent {
		sb.WriteString(strconv.FormatUint(uint64(c.Typ), 10))
		sb.WriteByte('=')
	}

	switch format {
	case formatHex:
		sb.WriteString(hex.EncodeToString(c.Val))
	case formatDecimal:
		sb.WriteString(strconv.FormatUint(c.NumberVal(), 10))
	default:
		for _, b := range c.Val {
			if isUnreserved(b) {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('%')
				sb.WriteByte(upperHex[b>>4])
				sb.WriteByte(upperHex[b&0x0f])
			}
		}
	}

	return sb.Len() - start
}

func parseComponentURI(s string, c *Component) error {
	typStr, valStr, typed := strings.Cut(s, "=")
	if !typed {
		c.Typ = TypeGenericNameComponent
		val, err := unescapeText(s)
		c.Val = val
		return err
	}
	if strings.Contains(valStr, "=") {
		return ErrFormat{"too many '=' in component: " + s}
	}
	if typStr == "" {
		return ErrFormat{"invalid component type: " + s}
	}

	format := formatText
	if conv, ok := conventionByPrefix(typStr); ok {
		c.Typ = conv.typ
		format = conv.format
	} else {
		typ, err := strconv.ParseUint(typStr, 10, 64)
		if err != nil {
			return ErrFormat{"invalid component type: " + s}
		}
		if typ == uint64(TypeInvalidComponent) || typ > uint64(maxComponentType) {
			return ErrFormat{"component type out of range: " + s}
		}
		c.Typ = TLNum(typ)
	}

	var err error
	switch format {
	case formatHex:
		if c.Val, err = hex.DecodeString(valStr); err != nil {
			return ErrFormat{"invalid hexadecimal component value: " + valStr}
		}
	case formatDecimal:
		x, err := strconv.ParseUint(valStr, 10, 64)
		if err != nil {
			return ErrFormat{"invalid decimal component value: " + valStr}
		}
		c.Val = Nat(x).Bytes()
	default:
		c.Val, err = unescapeText(valStr)
	}
	return err
}

// unescapeText decodes percent escapes. Characters outside the unreserved set
// are accepted as-is, except '%', '=', '/' and '\' which must be escaped.
func unescapeText(s string) ([]byte, error) {
	if !strings.ContainsAny(s, `%=/\`) {
		return []byte(s), nil
	}

	val := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '%':
			if i+2 >= len(s) {
				return nil, ErrFormat{"incomplete percent escape in component: " + s}
			}
			b, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return nil, ErrFormat{"invalid percent escape in component: " + s}
			}
			val = append(val, byte(b))
			i += 2
		case '=', '/', '\\':
			return nil, ErrFormat{"invalid character in component: " + s}
		default:
			val = append(val, ch)
		}
	}
	return val, nil
}
