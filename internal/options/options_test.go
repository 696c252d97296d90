package options

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"null", Null(), false},
		{"true", Bool(true), true},
		{"false", Bool(false), false},
		{"nonzero int", Int(3), true},
		{"negative int", Int(-1), true},
		{"zero int", Int(0), false},
		{"nonzero float", Float(0.5), true},
		{"zero float", Float(0), false},
		{"NaN float", Float(math.NaN()), false},
		{"non-empty string", String("yes"), true},
		{"string false is still non-empty", String("false"), true},
		{"empty string", String(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AsBool(tt.value))
		})
	}
}

func TestAsInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  Value
		want   int64
		wantOK bool
	}{
		{"int", Int(2), 2, true},
		{"explicit zero is present", Int(0), 0, true},
		{"float truncates", Float(3.9), 3, true},
		{"numeric string", String("4"), 4, true},
		{"padded numeric string", String(" 5 "), 5, true},
		{"non-numeric string", String("three"), 0, false},
		{"bool", Bool(true), 0, false},
		{"null", Null(), 0, false},
		{"infinite float", Float(math.Inf(1)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := AsInt(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsString(t *testing.T) {
	t.Parallel()

	s, ok := AsString(String("custom-"))
	assert.True(t, ok)
	assert.Equal(t, "custom-", s)

	_, ok = AsString(Bool(true))
	assert.False(t, ok)
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      any
		wantKind Kind
		wantErr  bool
	}{
		{"nil", nil, KindNull, false},
		{"bool", true, KindBool, false},
		{"int", 3, KindInt, false},
		{"int64", int64(3), KindInt, false},
		{"uint64", uint64(7), KindInt, false},
		{"float64", 1.5, KindFloat, false},
		{"string", "x", KindString, false},
		{"slice", []any{1}, KindNull, true},
		{"map", map[string]any{}, KindNull, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := FromAny(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, v.Kind())
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Bool(true), Parse("true"))
	assert.Equal(t, Bool(false), Parse("FALSE"))
	assert.Equal(t, Null(), Parse("null"))
	assert.Equal(t, Int(2), Parse("2"))
	assert.Equal(t, Float(1.5), Parse("1.5"))
	assert.Equal(t, String("https://gitlab.com/{u}"), Parse("https://gitlab.com/{u}"))
	assert.Equal(t, String(""), Parse(""))
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	d := Defaults()
	for _, k := range booleanKeys {
		assert.False(t, d.Bool(k), k)
	}

	level, ok := d.Int(KeyHeaderLevelStart)
	require.True(t, ok)
	assert.EqualValues(t, 1, level)

	link, ok := d.Str(KeyGhMentionsLink)
	require.True(t, ok)
	assert.Equal(t, "https://github.com/{u}", link)
}

func TestSet_MergeKeepsUnknownKeys(t *testing.T) {
	t.Parallel()

	merged := WithDefaults(Set{"someFutureOption": Bool(true), KeyEmoji: Int(1)})

	assert.Equal(t, Bool(true), merged.Get("someFutureOption"))
	assert.True(t, merged.Bool(KeyEmoji))
	assert.False(t, IsKnown("someFutureOption"))
	assert.True(t, IsKnown(KeyEmoji))
}

func TestSet_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	orig := Set{KeyEmoji: Bool(true)}
	clone := orig.Clone()
	clone[KeyEmoji] = Bool(false)

	assert.True(t, orig.Bool(KeyEmoji))
}

func TestKeysSorted(t *testing.T) {
	t.Parallel()

	keys := Keys()
	require.NotEmpty(t, keys)
	assert.IsNonDecreasing(t, keys)
	assert.Contains(t, keys, KeyOpenLinksInNewWindow)
}

func TestStore(t *testing.T) {
	t.Parallel()

	store := NewStore(Defaults())
	store.Set(KeyNoHeaderID, Bool(true))

	v, ok := store.Get(KeyNoHeaderID)
	require.True(t, ok)
	assert.True(t, AsBool(v))

	snapshot := store.GetAll()
	store.Set(KeyNoHeaderID, Bool(false))
	assert.True(t, snapshot.Bool(KeyNoHeaderID), "snapshot must not observe later writes")

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Set(KeyHeaderLevelStart, Int(int64(i)))
		}()
		go func() {
			defer wg.Done()
			_ = store.GetAll()
		}()
	}
	wg.Wait()

	_, ok := store.Get(KeyHeaderLevelStart)
	assert.True(t, ok)
}
