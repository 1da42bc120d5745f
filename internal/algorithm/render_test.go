package algorithm

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
)

func seedFrom(fill func(i int) byte) *SiteSeed {
	seed := new(SiteSeed)
	for i := range seed {
		seed[i] = fill(i)
	}
	return seed
}

func TestRenderPasswordPicksTemplateFromFirstByte(t *testing.T) {
	// Every byte is zero, so the first template and the first character of each group are used.
	got, err := RenderPassword(new(SiteSeed), LongPassword)
	require.NoError(t, err)
	assert.Equal(t, "Baba0@BabaBaba", got)

	// seed[0] = 2 selects "CvcvCvcvCvcvno".
	got, err = RenderPassword(seedFrom(func(i int) byte {
		if i == 0 {
			return 2
		}
		return 0
	}), LongPassword)
	require.NoError(t, err)
	assert.Equal(t, "BabaBabaBaba0@", got)
}

func TestRenderPasswordWrapsGroupIndex(t *testing.T) {
	// 10 % len("0123456789") == 0 and 11 % 10 == 1.
	got, err := RenderPassword(seedFrom(func(i int) byte { return byte(10 + i - 1) }), PIN)
	require.NoError(t, err)
	assert.Equal(t, "0123", got)
}

func TestRenderPasswordLengthContract(t *testing.T) {
	for _, class := range Classes() {
		lengths := class.TemplateLengths()
		require.NotEmpty(t, lengths, class.String())

		for s := 0; s < 256; s++ {
			seed := seedFrom(func(i int) byte { return byte(s*31 + i*7) })
			got, err := RenderPassword(seed, class)
			require.NoError(t, err)
			assert.Contains(t, lengths, len(got), "class %s seed byte %d", class, s)
		}
	}
}

func TestRenderPasswordUsesOnlyGroupCharacters(t *testing.T) {
	for _, class := range Classes() {
		seed := seedFrom(func(i int) byte { return byte(255 - i) })
		got, err := RenderPassword(seed, class)
		require.NoError(t, err)

		tpl := templateTable[class][int(seed[0])%len(templateTable[class])]
		for i := 0; i < len(got); i++ {
			assert.True(t, strings.IndexByte(characterGroups[tpl[i]], got[i]) >= 0,
				"%s: %q not in group %q", class, got[i], tpl[i])
		}
	}
}

func TestRenderPasswordUnknownClass(t *testing.T) {
	_, err := RenderPassword(new(SiteSeed), PasswordClass(0))
	assert.ErrorIs(t, err, mpwerrors.ErrUnknownPasswordClass)

	_, err = RenderPassword(new(SiteSeed), PasswordClass(42))
	assert.ErrorIs(t, err, mpwerrors.ErrUnknownPasswordClass)
}

func TestTemplateTable(t *testing.T) {
	require.NoError(t, verifyTemplates())

	counts := map[PasswordClass]int{
		MaximumSecurityPassword: 2,
		LongPassword:            21,
		MediumPassword:          2,
		BasicPassword:           3,
		ShortPassword:           1,
		PIN:                     1,
	}
	for class, want := range counts {
		assert.Len(t, templateTable[class], want, class.String())
	}

	longest := 0
	for _, templates := range templateTable {
		for _, tpl := range templates {
			longest = max(longest, len(tpl))
		}
	}
	assert.Equal(t, maxTemplateLength, longest)
	assert.Less(t, longest, SiteSeedLength)
}

func TestCharacterGroups(t *testing.T) {
	g := characterGroups
	assert.Equal(t, g['V']+g['C'], g['A'])
	assert.Equal(t, g['V']+g['v']+g['C']+g['c'], g['a'])
	assert.Equal(t, g['a']+g['n']+"!@#$%^&*()", g['x'])
	assert.Len(t, g['x'], 72)
	assert.Len(t, g['o'], 24)
}

func TestTemplateLengths(t *testing.T) {
	assert.Equal(t, []int{20}, MaximumSecurityPassword.TemplateLengths())
	assert.Equal(t, []int{14}, LongPassword.TemplateLengths())
	assert.Equal(t, []int{8}, MediumPassword.TemplateLengths())
	assert.Equal(t, []int{8}, BasicPassword.TemplateLengths())
	assert.Equal(t, []int{4}, ShortPassword.TemplateLengths())
	assert.Equal(t, []int{4}, PIN.TemplateLengths())
	assert.Empty(t, PasswordClass(0).TemplateLengths())
}

func TestParsePasswordClass(t *testing.T) {
	tests := []struct {
		input string
		want  PasswordClass
	}{
		{"MaximumSecurityPassword", MaximumSecurityPassword},
		{"longpassword", LongPassword},
		{"LongPassword", LongPassword},
		{" PIN ", PIN},
		{"max", MaximumSecurityPassword},
		{"Med", MediumPassword},
		{"short", ShortPassword},
		{"basic", BasicPassword},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePasswordClass(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePasswordClass("Phrase")
	assert.ErrorIs(t, err, mpwerrors.ErrUnknownPasswordClass)
}

func TestPasswordClassText(t *testing.T) {
	for _, class := range Classes() {
		text, err := class.MarshalText()
		require.NoError(t, err)

		var back PasswordClass
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, class, back)
	}

	var empty PasswordClass
	require.NoError(t, empty.UnmarshalText(nil))
	assert.Equal(t, DefaultClass, empty)

	_, err := PasswordClass(9).MarshalText()
	assert.ErrorIs(t, err, mpwerrors.ErrUnknownPasswordClass)
	assert.Equal(t, "PasswordClass(9)", PasswordClass(9).String())
}

func TestClassesOrder(t *testing.T) {
	names := make([]string, 0, len(Classes()))
	for _, c := range Classes() {
		names = append(names, c.String())
	}
	assert.True(t, slices.Equal(names, []string{
		"MaximumSecurityPassword", "LongPassword", "MediumPassword",
		"ShortPassword", "BasicPassword", "PIN",
	}))
}

func TestEncodeUint32BE(t *testing.T) {
	got, err := EncodeUint32BE(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1}, got)

	got, err = EncodeUint32BE(math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, got)

	got, err = EncodeUint32BE(0x01020304)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	_, err = EncodeUint32BE(-1)
	assert.ErrorIs(t, err, mpwerrors.ErrEncodingRange)

	_, err = EncodeUint32BE(math.MaxUint32 + 1)
	assert.ErrorIs(t, err, mpwerrors.ErrEncodingRange)
}

func TestConcatAndUTF8(t *testing.T) {
	assert.Equal(t, []byte{0xE2, 0x9B, 0x84}, EncodeUTF8("⛄"))
	assert.Equal(t, []byte("abcdef"), Concat([]byte("ab"), nil, []byte("cd"), []byte("ef")))
	assert.Empty(t, Concat())

	msg, err := scopedMessage("⛄")
	require.NoError(t, err)
	assert.Equal(t, append([]byte(Namespace+"\x00\x00\x00\x03"), 0xE2, 0x9B, 0x84), msg)
}
