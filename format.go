package l10n

import (
	"fmt"
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9]*)\}\}`)

// Format substitutes indexed and named placeholders into a template.
//
// Tokens take the form {{name}}. A token with an empty name ({{}}) consumes
// the next unused positional argument, in order of appearance in the
// template. A token with a name is looked up in the named-argument bag: the
// last argument, when it is a map, is removed from the positional sequence
// and used as that bag. Tokens with no matching argument are left literal,
// braces included. Substituted values are never re-scanned for tokens.
func Format(template string, args ...any) string {
	if template == "" {
		return ""
	}

	positional, named := splitFormatArgs(args)

	next := 0
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-2]
		if name == "" {
			if next >= len(positional) {
				return token
			}
			value := positional[next]
			next++
			return stringify(value)
		}

		value, ok := named[name]
		if !ok {
			return token
		}
		return stringify(value)
	})
}

// splitFormatArgs peels a trailing map off the argument list as the named bag.
func splitFormatArgs(args []any) ([]any, M) {
	if len(args) == 0 {
		return nil, nil
	}

	if bag, ok := args[len(args)-1].(map[string]any); ok {
		return args[:len(args)-1], bag
	}

	return args, nil
}

// stringify renders a substitution value. Non-string values get their
// default representation; formatting never fails.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
