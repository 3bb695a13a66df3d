package lesspass

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return id
}

const referenceEntropy = "dc33d431bce2b01182c613382483ccdb0e2f66482cbba5e9d07dab34acc7eb1e"

func TestRender_ReferenceEntropy(t *testing.T) {
	entropy, err := hex.DecodeString(referenceEntropy)
	require.NoError(t, err)

	assert.Equal(t, "WHLpUL)e00[iHR+w", render(entropy, Classes, 16))
	assert.Equal(t, "WGS0R", render(entropy, []Class{Uppercase, Digits}, 5))
}

func TestRender_DoesNotModifyEntropy(t *testing.T) {
	entropy, err := hex.DecodeString(referenceEntropy)
	require.NoError(t, err)
	render(entropy, Classes, 16)
	assert.Equal(t, referenceEntropy, hex.EncodeToString(entropy))
}

// classSubsets enumerates every non-empty combination of classes.
func classSubsets() [][]Class {
	var out [][]Class
	for mask := 1; mask < 1<<len(Classes); mask++ {
		var set []Class
		for i, c := range Classes {
			if mask&(1<<i) != 0 {
				set = append(set, c)
			}
		}
		out = append(out, set)
	}
	return out
}

func TestRender_ClassCoverageAndLength(t *testing.T) {
	for _, classes := range classSubsets() {
		for length := MinLength; length <= MaxLength; length++ {
			for seed := 0; seed < 8; seed++ {
				sum := sha256.Sum256([]byte(fmt.Sprintf("%v-%d-%d", classes, length, seed)))
				password := render(sum[:], classes, length)

				require.Len(t, password, length)

				var allowed strings.Builder
				for _, c := range classes {
					allowed.WriteString(c.Characters())
					require.True(t, strings.ContainsAny(password, c.Characters()),
						"%q has no %s character", password, c)
				}
				for _, r := range password {
					require.True(t, strings.ContainsRune(allowed.String(), r),
						"%q contains %q outside %v", password, r, classes)
				}
			}
		}
	}
}

func TestClassCharacters(t *testing.T) {
	assert.Len(t, Lowercase.Characters(), 26)
	assert.Len(t, Uppercase.Characters(), 26)
	assert.Len(t, Digits.Characters(), 10)
	assert.Len(t, Symbols.Characters(), 32)
	assert.Empty(t, Class(9).Characters())
}

func TestParseClass(t *testing.T) {
	for _, c := range Classes {
		got, ok := ParseClass(c.String())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseClass("emoji")
	assert.False(t, ok)
	assert.Equal(t, "class(7)", Class(7).String())
}
