package md2html

import "github.com/alnah/go-md2html/internal/options"

// Options maps option names to values for one conversion.
type Options = options.Set

// Value is a loosely typed option value: null, boolean, number or string.
type Value = options.Value

// Recognized option names.
const (
	HeaderLevelStart              = options.KeyHeaderLevelStart
	NoHeaderID                    = options.KeyNoHeaderID
	CustomizedHeaderID            = options.KeyCustomizedHeaderID
	GhCompatibleHeaderID          = options.KeyGhCompatibleHeaderID
	RawHeaderID                   = options.KeyRawHeaderID
	PrefixHeaderID                = options.KeyPrefixHeaderID
	RawPrefixHeaderID             = options.KeyRawPrefixHeaderID
	RequireSpaceBeforeHeadingText = options.KeyRequireSpaceBeforeHeadingText
	LiteralMidWordAsterisks       = options.KeyLiteralMidWordAsterisks
	SimpleLineBreaks              = options.KeySimpleLineBreaks
	Strikethrough                 = options.KeyStrikethrough
	Tables                        = options.KeyTables
	Tasklists                     = options.KeyTasklists
	Emoji                         = options.KeyEmoji
	GhMentions                    = options.KeyGhMentions
	GhMentionsLink                = options.KeyGhMentionsLink
	OpenLinksInNewWindow          = options.KeyOpenLinksInNewWindow
	HighlightCode                 = options.KeyHighlightCode
	HighlightStyle                = options.KeyHighlightStyle
	Sanitize                      = options.KeySanitize
)

// Null returns the null value.
func Null() Value { return options.Null() }

// Bool returns a boolean value.
func Bool(b bool) Value { return options.Bool(b) }

// Int returns an integer value.
func Int(i int64) Value { return options.Int(i) }

// Float returns a floating point value.
func Float(f float64) Value { return options.Float(f) }

// String returns a string value.
func String(s string) Value { return options.String(s) }

// ValueOf converts a decoded JSON or YAML scalar into a Value.
// Maps, slices and other composite types return ErrUnsupportedValue.
func ValueOf(raw any) (Value, error) { return options.FromAny(raw) }

// ParseValue reads a command-line style value: "true", "false", "null",
// integers and floats keep their type, anything else is a string.
func ParseValue(s string) Value { return options.Parse(s) }

// DefaultOptions returns every recognized option at its built-in default.
func DefaultOptions() Options { return options.Defaults() }

// OptionNames returns the recognized option names in sorted order.
func OptionNames() []string { return options.Keys() }
