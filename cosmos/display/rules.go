package display

import (
	"fmt"
	"strings"
	"time"

	"cosmossdk.io/math"
	"github.com/dustin/go-humanize"
)

const (
	HashDenom     = "hash"
	NanoHashDenom = "nhash"
	hashPrecision = 9

	timeLayout = "2006-01-02 15:04:05 UTC"
)

// DefaultRules returns the wallet formatting rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		TypeURLRule(),
		CoinRule(),
		TimestampRule(),
		AmountRule(),
	}
}

// TypeURLRule shows "/cosmos.bank.v1beta1.MsgSend" as "MsgSend".
func TypeURLRule() Rule {
	return Rule{
		Name: "type_url",
		Match: func(key string, v Value) bool {
			s, ok := v.(Scalar)
			if !ok || (key != "@type" && key != "typeUrl") {
				return false
			}
			return strings.HasPrefix(s.Text(), "/")
		},
		Apply: func(key string, v Value) (string, error) {
			text := v.(Scalar).Text()
			return text[strings.LastIndex(text, ".")+1:], nil
		},
	}
}

// CoinRule shows a {denom, amount} object as a single "<amount> <denom>" string.
func CoinRule() Rule {
	return Rule{
		Name: "coin",
		Match: func(key string, v Value) bool {
			obj, ok := v.(*Object)
			if !ok || obj.Len() != 2 {
				return false
			}
			_, hasDenom := obj.Get("denom")
			_, hasAmount := obj.Get("amount")
			return hasDenom && hasAmount
		},
		Apply: func(key string, v Value) (string, error) {
			obj := v.(*Object)
			return FormatCoin(obj.Text("denom"), obj.Text("amount"))
		},
	}
}

// TimestampRule shows RFC3339 timestamps in UTC.
func TimestampRule() Rule {
	return Rule{
		Name: "timestamp",
		Match: func(key string, v Value) bool {
			s, ok := v.(Scalar)
			if !ok {
				return false
			}
			if _, isString := s.Raw().(string); !isString {
				return false
			}
			_, err := time.Parse(time.RFC3339Nano, s.Text())
			return err == nil
		},
		Apply: func(key string, v Value) (string, error) {
			t, err := time.Parse(time.RFC3339Nano, v.(Scalar).Text())
			if err != nil {
				return "", err
			}
			return t.UTC().Format(timeLayout), nil
		},
	}
}

// AmountRule adds thousands separators to integer amount fields.
func AmountRule() Rule {
	return Rule{
		Name: "amount",
		Match: func(key string, v Value) bool {
			_, ok := v.(Scalar)
			return ok && key == "amount"
		},
		Apply: func(key string, v Value) (string, error) {
			text := v.(Scalar).Text()
			amount, ok := math.NewIntFromString(text)
			if !ok {
				return "", fmt.Errorf("amount %q is not an integer", text)
			}
			return humanize.BigComma(amount.BigInt()), nil
		},
	}
}

// FormatCoin renders nhash amounts in hash and any other denom as an integer with
// thousands separators.
func FormatCoin(denom string, amount string) (string, error) {
	amt, ok := math.NewIntFromString(amount)
	if !ok {
		return "", fmt.Errorf("coin amount %q is not an integer", amount)
	}

	if denom == NanoHashDenom {
		dec := math.LegacyNewDecFromIntWithPrec(amt, hashPrecision)
		return fmt.Sprintf("%s %s", trimDecimal(dec.String()), HashDenom), nil
	}

	return fmt.Sprintf("%s %s", humanize.BigComma(amt.BigInt()), denom), nil
}

func trimDecimal(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
