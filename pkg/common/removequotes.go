package common

import "strings"

func RemoveSingleQuotesIfAny(str string) string {
	return removeEnclosing(str, '\'')
}

func RemoveDoubleQuotesIfAny(str string) string {
	return removeEnclosing(str, '"')
}

// RemoveBackticksIfAny strips markdown-style `inline code` quoting which models like to produce.
func RemoveBackticksIfAny(str string) string {
	return removeEnclosing(str, '`')
}

// RemoveQuotesIfAny strips one layer of matching quotes of any supported kind.
func RemoveQuotesIfAny(str string) string {
	str = strings.TrimSpace(str)
	for _, remove := range []func(string) string{RemoveDoubleQuotesIfAny, RemoveSingleQuotesIfAny, RemoveBackticksIfAny} {
		if unquoted := remove(str); unquoted != str {
			return strings.TrimSpace(unquoted)
		}
	}
	return str
}

func removeEnclosing(str string, quote byte) string {
	// Sometimes, the model returns the answer as "'Hello'"
	if len(str) >= 2 && str[0] == quote && str[len(str)-1] == quote {
		str = str[1 : len(str)-1]
	}
	return str
}
