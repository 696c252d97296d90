package options

import (
	"maps"
	"slices"
)

// Recognized option names.
const (
	KeyHeaderLevelStart              = "headerLevelStart"
	KeyNoHeaderID                    = "noHeaderId"
	KeyCustomizedHeaderID            = "customizedHeaderId"
	KeyGhCompatibleHeaderID          = "ghCompatibleHeaderId"
	KeyRawHeaderID                   = "rawHeaderId"
	KeyPrefixHeaderID                = "prefixHeaderId"
	KeyRawPrefixHeaderID             = "rawPrefixHeaderId"
	KeyRequireSpaceBeforeHeadingText = "requireSpaceBeforeHeadingText"
	KeyLiteralMidWordAsterisks       = "literalMidWordAsterisks"
	KeySimpleLineBreaks              = "simpleLineBreaks"
	KeyStrikethrough                 = "strikethrough"
	KeyTables                        = "tables"
	KeyTasklists                     = "tasklists"
	KeyEmoji                         = "emoji"
	KeyGhMentions                    = "ghMentions"
	KeyGhMentionsLink                = "ghMentionsLink"
	KeyOpenLinksInNewWindow          = "openLinksInNewWindow"
	KeyHighlightCode                 = "highlightCode"
	KeyHighlightStyle                = "highlightStyle"
	KeySanitize                      = "sanitize"
)

// Built-in defaults for the non-boolean options.
const (
	DefaultHeaderLevelStart = 1
	DefaultGhMentionsLink   = "https://github.com/{u}"
	DefaultHighlightStyle   = "github"
	DefaultHeaderIDPrefix   = "section-"
)

var booleanKeys = []string{
	KeyNoHeaderID,
	KeyCustomizedHeaderID,
	KeyGhCompatibleHeaderID,
	KeyRawHeaderID,
	KeyPrefixHeaderID,
	KeyRawPrefixHeaderID,
	KeyRequireSpaceBeforeHeadingText,
	KeyLiteralMidWordAsterisks,
	KeySimpleLineBreaks,
	KeyStrikethrough,
	KeyTables,
	KeyTasklists,
	KeyEmoji,
	KeyGhMentions,
	KeyOpenLinksInNewWindow,
	KeyHighlightCode,
	KeySanitize,
}

// Set maps option names to values. Unknown keys are kept but never consulted.
type Set map[string]Value

// Defaults returns a fresh Set holding every recognized key at its default.
func Defaults() Set {
	s := make(Set, len(booleanKeys)+3)
	for _, k := range booleanKeys {
		s[k] = Bool(false)
	}
	s[KeyHeaderLevelStart] = Int(DefaultHeaderLevelStart)
	s[KeyGhMentionsLink] = String(DefaultGhMentionsLink)
	s[KeyHighlightStyle] = String(DefaultHighlightStyle)
	return s
}

// WithDefaults returns Defaults overlaid with s. A nil s yields the defaults.
func WithDefaults(s Set) Set {
	return Defaults().Merge(s)
}

// IsKnown reports whether key is a recognized option name.
func IsKnown(key string) bool {
	_, ok := Defaults()[key]
	return ok
}

// IsBoolean reports whether key is one of the flag options.
func IsBoolean(key string) bool {
	return slices.Contains(booleanKeys, key)
}

// Keys returns the recognized option names in sorted order.
func Keys() []string {
	return slices.Sorted(maps.Keys(Defaults()))
}

// Get returns the value stored under key, or null when missing.
func (s Set) Get(key string) Value {
	return s[key]
}

// Bool resolves key as a flag.
func (s Set) Bool(key string) bool {
	return AsBool(s[key])
}

// Int resolves key as an integer.
func (s Set) Int(key string) (int64, bool) {
	return AsInt(s[key])
}

// Str resolves key as a string.
func (s Set) Str(key string) (string, bool) {
	return AsString(s[key])
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	maps.Copy(out, s)
	return out
}

// Merge returns a copy of s with every entry of other written over it.
func (s Set) Merge(other Set) Set {
	out := s.Clone()
	maps.Copy(out, other)
	return out
}

// FromMap converts a decoded map of plain values into a Set.
func FromMap(m map[string]any) (Set, error) {
	out := make(Set, len(m))
	for k, raw := range m {
		v, err := FromAny(raw)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
