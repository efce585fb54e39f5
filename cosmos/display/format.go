package display

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/wallet-msg-service/common"
)

// Rule formats a single field. Rules are evaluated in order and the first rule whose
// Match returns true is applied.
type Rule struct {
	Name  string
	Match func(key string, v Value) bool
	Apply func(key string, v Value) (string, error)
}

type Formatter struct {
	rules []Rule
}

func NewFormatter(rules ...Rule) *Formatter {
	return &Formatter{rules: rules}
}

// Format flattens obj into a display object.
//
// Scalars are formatted by the first matching rule or rendered raw, null as "". Scalar
// lists are joined with newlines. Every nested object becomes a top level section holding
// its formatted scalar fields; an object list of length n > 1 produces sections named
// "<key> 1" .. "<key> n", while a single element list uses the key itself. A List is
// classified element by element under the same naming. A rule that fails or panics is
// logged and the field falls back to the default path.
func (f *Formatter) Format(obj *Object) *Object {
	final := NewObject()
	if obj == nil {
		return final
	}
	f.formatFields(final, obj, "")
	return final
}

func (f *Formatter) formatFields(final *Object, current *Object, parentKey string) {
	for _, key := range current.keys {
		value := current.values[key]

		if formatted, ok := f.applyRules(key, value); ok {
			assign(final, parentKey, key, String(formatted))
			continue
		}

		switch v := value.(type) {
		case Scalar:
			assign(final, parentKey, key, String(v.Text()))

		case ScalarList:
			texts := make([]string, 0, len(v))
			for _, s := range v {
				texts = append(texts, s.Text())
			}
			assign(final, parentKey, key, String(strings.Join(texts, "\n")))

		case ObjectList:
			for i, elem := range v {
				name := listItemName(key, i, len(v))
				final.Set(name, NewObject())
				f.formatFields(final, elem, name)
			}

		case List:
			for i, elem := range v {
				f.formatFields(final, NewObject().Set(listItemName(key, i, len(v)), elem), parentKey)
			}

		case *Object:
			final.Set(key, NewObject())
			f.formatFields(final, v, key)
		}
	}
}

func listItemName(key string, i int, n int) string {
	if n > 1 {
		return fmt.Sprintf("%s %d", key, i+1)
	}
	return key
}

func assign(final *Object, parentKey string, key string, v Value) {
	if parentKey == "" {
		final.Set(key, v)
		return
	}
	section, ok := final.Section(parentKey)
	if !ok {
		section = NewObject()
		final.Set(parentKey, section)
	}
	section.Set(key, v)
}

func (f *Formatter) applyRules(key string, value Value) (formatted string, ok bool) {
	for _, rule := range f.rules {
		matched, err := matchRule(rule, key, value)
		if err == nil && !matched {
			continue
		}
		if err == nil {
			formatted, err = applyRule(rule, key, value)
		}
		if err != nil {
			log.
				WithField("operation", "formatDisplayObject").
				WithField("rule", rule.Name).
				WithField("field", key).
				WithError(errorsmod.Wrap(common.ErrFormatting, err.Error())).
				Warn("Failed to format field, using raw value")
			return "", false
		}
		return formatted, true
	}
	return "", false
}

func matchRule(rule Rule, key string, value Value) (matched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule match panicked: %v", r)
		}
	}()
	return rule.Match(key, value), nil
}

func applyRule(rule Rule, key string, value Value) (formatted string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule panicked: %v", r)
		}
	}()
	return rule.Apply(key, value)
}
