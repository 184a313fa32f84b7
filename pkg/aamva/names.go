package aamva

import "strings"

type nameParts struct {
	first, middle, last string
}

// splitName resolves first, middle and last name. Explicit per-part fields
// win; whatever is still missing comes from the combined Name field, which
// jurisdictions encode either as "Last, First[, Middle[, Suffix]]" or as
// space separated "First [Middle...] Last".
func splitName(fields RawFields) nameParts {
	var derived nameParts
	if name := trimmed(fields, FieldName); name != "" {
		if strings.Contains(name, ",") {
			derived = splitCommaName(name)
		} else {
			derived = splitSpaceName(name)
		}
	}

	return nameParts{
		first:  explicitOr(fields, FieldFirstName, derived.first),
		middle: explicitOr(fields, FieldMiddleName, derived.middle),
		last:   explicitOr(fields, FieldLastName, derived.last),
	}
}

func explicitOr(fields RawFields, f Field, fallback string) string {
	if v, ok := fields.Get(f); ok && v != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitCommaName(name string) nameParts {
	tokens := splitTokens(name, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	p := nameParts{last: tokens[0], first: tokens[0]}
	if len(tokens) > 1 {
		p.first = tokens[1]
	}
	if len(tokens) > 2 {
		p.middle = tokens[2]
	}
	return p
}

// splitSpaceName leaves middle empty for four or more tokens; everything but
// the surname is then treated as the given name.
func splitSpaceName(name string) nameParts {
	tokens := splitTokens(name, " ")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	switch n := len(tokens); {
	case n == 1:
		return nameParts{first: tokens[0]}
	case n == 2:
		return nameParts{first: tokens[0], last: tokens[1]}
	case n == 3:
		return nameParts{first: tokens[0], middle: tokens[1], last: tokens[2]}
	default:
		return nameParts{
			first: strings.Join(tokens[:n-1], " "),
			last:  tokens[n-1],
		}
	}
}

// splitTokens splits on sep and drops trailing empty tokens, keeping at least
// one token so callers can always index [0].
func splitTokens(s, sep string) []string {
	tokens := strings.Split(s, sep)
	for len(tokens) > 1 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
