package seeds

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var decimalRegex = regexp.MustCompile(`^[0-9]+$`)

// Words coerces entropy material into uint32 words, lowest bits first.
//
// Accepted kinds per argument: unsigned and non-negative signed integers,
// *big.Int, strings holding a decimal or "0x"-prefixed hex integer, and
// slices of any of these. A value small enough to fit one word takes up
// exactly one word, regardless of its Go type, so the interpretation of a
// sequence of integers does not depend on how the caller typed them.
// Slices concatenate in order.
func Words(material ...any) ([]uint32, error) {
	var words []uint32
	var errs *multierror.Error
	for i, m := range material {
		converted, err := appendWords(words, m)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("material %d: %w", i, err))
			continue
		}
		words = converted
	}
	return words, errs.ErrorOrNil()
}

func appendWords(out []uint32, v any) ([]uint32, error) {
	switch v := v.(type) {
	case uint32:
		return append(out, v), nil
	case uint64:
		return appendUintWords(out, v), nil
	case uint:
		return appendUintWords(out, uint64(v)), nil
	case int:
		if v < 0 {
			return nil, fmt.Errorf("expected non-negative integer, got %d", v)
		}
		return appendUintWords(out, uint64(v)), nil
	case int64:
		if v < 0 {
			return nil, fmt.Errorf("expected non-negative integer, got %d", v)
		}
		return appendUintWords(out, uint64(v)), nil
	case *big.Int:
		return appendBigWords(out, v)
	case string:
		return appendStringWords(out, v)
	case []uint32:
		return append(out, v...), nil
	case []uint64:
		for _, e := range v {
			out = appendUintWords(out, e)
		}
		return out, nil
	case []int:
		var err error
		for _, e := range v {
			out, err = appendWords(out, e)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case []string:
		var err error
		for _, e := range v {
			out, err = appendWords(out, e)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case []any:
		var err error
		for _, e := range v {
			out, err = appendWords(out, e)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot use %T as seed material", v)
	}
}

func appendUintWords(out []uint32, n uint64) []uint32 {
	if n == 0 {
		return append(out, 0)
	}
	for n > 0 {
		out = append(out, uint32(n))
		n >>= 32
	}
	return out
}

func appendBigWords(out []uint32, n *big.Int) ([]uint32, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("expected non-negative integer, got %s", n)
	}
	if n.Sign() == 0 {
		return append(out, 0), nil
	}
	rest := new(big.Int).Set(n)
	word := new(big.Int)
	mask := big.NewInt(0xffffffff)
	for rest.Sign() > 0 {
		out = append(out, uint32(word.And(rest, mask).Uint64()))
		rest.Rsh(rest, 32)
	}
	return out, nil
}

func appendStringWords(out []uint32, s string) ([]uint32, error) {
	n := new(big.Int)
	switch {
	case strings.HasPrefix(s, "0x"):
		if _, ok := n.SetString(s[2:], 16); !ok {
			return nil, fmt.Errorf("unrecognized seed string %q", s)
		}
	case decimalRegex.MatchString(s):
		n.SetString(s, 10)
	default:
		return nil, fmt.Errorf("unrecognized seed string %q", s)
	}
	return appendBigWords(out, n)
}
