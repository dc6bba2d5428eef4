// SPDX-License-Identifier: MIT

package knowledge_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/knowledge"
)

const sampleKnowledge = `/knowledge
addtemporal
1* A B
2 C "my var"

forbiddirect
A C

requiredirect
B C

forbiddengroup
A
my.var
`

func TestParse_AllSections(t *testing.T) {
	t.Parallel()

	k, err := knowledge.Parse(strings.NewReader(sampleKnowledge))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, k.Tier(0))
	assert.Equal(t, []string{"C", "my.var"}, k.Tier(1))
	assert.True(t, k.IsTierForbiddenWithin(0))
	assert.True(t, k.IsForbidden("A", "C"))
	assert.True(t, k.IsRequired("B", "C"))
	assert.True(t, k.IsForbidden("A", "my.var"))
	assert.Len(t, k.KnowledgeGroups(), 1)
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	k, err := knowledge.Parse(strings.NewReader(sampleKnowledge))
	require.NoError(t, err)

	again, err := knowledge.Parse(strings.NewReader(k.String()))
	require.NoError(t, err)
	assert.True(t, k.Equal(again), "text:\n%s", k.String())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"tier zero":       "/knowledge\naddtemporal\n0 A\n",
		"tier not number": "addtemporal\nx A\n",
		"too many":        "forbiddirect\nA B C\n",
		"too few":         "requiredirect\nA\n",
		"unknown section": "/knowledge\nsomething\nA B\n",
		"group half":      "requiredgroup\nA\n",
	}
	for name, src := range cases {
		src := src
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := knowledge.Parse(strings.NewReader(src))
			require.ErrorIs(t, err, knowledge.ErrSyntax)
		})
	}
}

func TestParse_LineNumberInError(t *testing.T) {
	t.Parallel()

	_, err := knowledge.Parse(strings.NewReader("/knowledge\n// c\nforbiddirect\nA B C\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	k, err := knowledge.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, k.IsEmpty())
}
