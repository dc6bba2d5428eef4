// SPDX-License-Identifier: MIT

package knowledge_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/core"
	"github.com/katalvlaran/lvdata/knowledge"
)

func TestAddToTier_MovesBetweenTiers(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	require.NoError(t, k.AddToTier(0, "X"))
	require.NoError(t, k.AddToTier(2, "X"))

	assert.Equal(t, []string{"X"}, k.Tier(2))
	assert.Empty(t, k.Tier(0))
	assert.Equal(t, 3, k.NumTiers(), "tiers auto-extend")
	assert.Equal(t, 2, k.TierOf("X"))

	require.ErrorIs(t, k.AddToTier(-1, "Y"), knowledge.ErrNegativeTier)
}

func TestRequiredOverridesForbidden(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	k.SetForbidden("A", "B")
	assert.True(t, k.IsForbidden("A", "B"))

	k.SetRequired("A", "B")
	assert.False(t, k.IsForbidden("A", "B"))
	assert.True(t, k.IsRequired("A", "B"))
	assert.False(t, k.IsRequired("B", "A"))
	assert.NotContains(t, k.ForbiddenEdges(), knowledge.Edge{From: "A", To: "B"})
	assert.Equal(t, []knowledge.Edge{{From: "A", To: "B"}}, k.RequiredEdges())
}

func TestTierAntiCausality(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	require.NoError(t, k.AddToTier(0, "A"))
	require.NoError(t, k.AddToTier(1, "B"))

	assert.True(t, k.IsForbidden("B", "A"))
	assert.False(t, k.IsForbidden("A", "B"))
	assert.True(t, k.IsForbiddenByTiers("B", "A"))
}

func TestForbiddenWithinAndOnlyNextTier(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	require.NoError(t, k.AddToTier(0, "A1"))
	require.NoError(t, k.AddToTier(0, "A2"))
	require.NoError(t, k.AddToTier(1, "B"))
	require.NoError(t, k.AddToTier(2, "C"))

	assert.False(t, k.IsForbidden("A1", "A2"))
	require.NoError(t, k.SetTierForbiddenWithin(0, true))
	assert.True(t, k.IsTierForbiddenWithin(0))
	assert.True(t, k.IsForbidden("A1", "A2"))

	assert.False(t, k.IsForbidden("A1", "C"))
	require.NoError(t, k.SetOnlyCanCauseNextTier(0, true))
	assert.True(t, k.IsOnlyCanCauseNextTier(0))
	assert.True(t, k.IsForbidden("A1", "C"))
	assert.False(t, k.IsForbidden("A1", "B"))

	require.NoError(t, k.SetTierForbiddenWithin(5, true))
	assert.False(t, k.IsTierForbiddenWithin(5), "empty tier reports false")
}

func TestWildcardsResolveAtQueryTime(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	k.AddVariable("X1")
	k.SetForbidden("X*", "Y")
	assert.True(t, k.IsForbidden("X1", "Y"))
	assert.False(t, k.IsForbidden("X2", "Y"), "unknown name is not covered")

	k.AddVariable("X2")
	assert.True(t, k.IsForbidden("X2", "Y"), "later variable is covered")
	assert.Equal(t, []string{"X1", "X2"}, k.Extent("X*"))
	assert.Equal(t, []string{"X1", "Y"}, k.Extent("X1,Y*"))
	assert.Nil(t, k.Extent("Q"))

	k.AddVariable("X.3")
	assert.Equal(t, []string{"X.3", "X1", "X2"}, k.Extent("X*"))
	assert.Equal(t, []string{"X.3"}, k.Extent("X.*"), "literal parts are not regular expressions")
}

func TestKnowledgeGroups(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	k.AddKnowledgeGroup(knowledge.Group{Kind: knowledge.ForbiddenGroup, From: []string{"A", "B"}, To: []string{"C"}})
	k.AddKnowledgeGroup(knowledge.Group{Kind: knowledge.RequiredGroup, From: []string{"C"}, To: []string{"D"}})

	assert.True(t, k.IsForbidden("B", "C"))
	assert.True(t, k.IsRequired("C", "D"))
	assert.False(t, k.NoEdgeRequired("D", "C"))
	assert.Len(t, k.KnowledgeGroups(), 2)

	require.NoError(t, k.SetKnowledgeGroup(0, knowledge.Group{Kind: knowledge.ForbiddenGroup, From: []string{"A"}, To: []string{"C"}}))
	assert.False(t, k.IsForbidden("B", "C"))

	require.NoError(t, k.RemoveKnowledgeGroup(1))
	assert.False(t, k.IsRequired("C", "D"))
	require.ErrorIs(t, k.RemoveKnowledgeGroup(4), knowledge.ErrGroupIndex)
	require.ErrorIs(t, k.SetKnowledgeGroup(-1, knowledge.Group{}), knowledge.ErrGroupIndex)
}

func TestEdgeListings(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	for _, n := range []string{"A1", "A2", "B"} {
		k.AddVariable(n)
	}
	k.SetForbidden("A*", "A*")
	assert.Equal(t, []knowledge.Edge{{From: "A1", To: "A2"}, {From: "A2", To: "A1"}}, k.ExplicitlyForbiddenEdges())

	require.NoError(t, k.AddToTier(0, "A1"))
	require.NoError(t, k.AddToTier(1, "B"))
	assert.Equal(t, []knowledge.Edge{
		{From: "A1", To: "A2"},
		{From: "A2", To: "A1"},
		{From: "B", To: "A1"},
	}, k.ForbiddenEdges())
}

func TestRemoveVariable(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	require.NoError(t, k.AddToTier(0, "A"))
	k.SetForbidden("A", "B")
	k.SetRequired("B", "C")
	k.RemoveVariable("A")

	assert.False(t, k.HasVariable("A"))
	assert.Equal(t, -1, k.TierOf("A"))
	assert.Empty(t, k.ExplicitlyForbiddenEdges())
	assert.True(t, k.IsRequired("B", "C"))
}

func TestAddToTiersByVarNames(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	k.AddToTiersByVarNames([]string{"X", "X:t1", "Y:t2", "Z:tq"})
	assert.Equal(t, []string{"X", "Z:tq"}, k.Tier(0))
	assert.Equal(t, []string{"X:t1"}, k.Tier(1))
	assert.Equal(t, []string{"Y:t2"}, k.Tier(2))

	k.AddVariable("W")
	assert.Equal(t, []string{"W"}, k.VariablesNotInTiers())
}

func TestNameChecker(t *testing.T) {
	t.Parallel()

	loose := knowledge.New()
	loose.SetForbidden("bad name!", "B")
	assert.True(t, loose.IsForbidden("bad name!", "B"), "permissive by default")

	strict := knowledge.New(knowledge.WithNameChecker(knowledge.StrictNames))
	strict.SetForbidden("bad name!", "B")
	assert.False(t, strict.HasVariable("bad name!"))
	assert.True(t, strict.IsEmpty())
	assert.True(t, knowledge.StrictNames("X1:t-2.a_b"))
}

func TestCopyEqualClear(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	require.NoError(t, k.AddToTier(0, "A"))
	k.SetForbidden("A", "B")

	c := k.Copy()
	assert.True(t, k.Equal(c))
	c.SetRequired("B", "A")
	assert.False(t, k.Equal(c))
	assert.False(t, k.IsRequired("B", "A"), "copy is independent")

	assert.False(t, k.IsEmpty())
	k.Clear()
	assert.True(t, k.IsEmpty())
	assert.Empty(t, k.Variables())
}

func TestIsViolatedBy(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	require.NoError(t, k.AddToTier(0, "A"))
	require.NoError(t, k.AddToTier(1, "B"))

	g := core.NewGraph()
	_, err := g.AddDirectedEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge("B", "C")
	require.NoError(t, err)
	assert.False(t, k.IsViolatedBy(g))

	_, err = g.AddDirectedEdge("B", "A")
	require.NoError(t, err)
	assert.True(t, k.IsViolatedBy(g))
	assert.Equal(t, []knowledge.Edge{{From: "B", To: "A"}}, k.Violations(g))
	assert.False(t, k.IsViolatedBy(nil))
}

func TestWildcardQueries_Concurrent(t *testing.T) {
	t.Parallel()

	k := knowledge.New()
	for i := 0; i < 50; i++ {
		a, b := fmt.Sprintf("Xa%d", i), fmt.Sprintf("Xb%d", i)
		k.AddVariable(a)
		k.AddVariable(b)
		k.SetForbidden(fmt.Sprintf("Xa%d*", i), fmt.Sprintf("Xb%d*", i))
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				a, b := fmt.Sprintf("Xa%d", i), fmt.Sprintf("Xb%d", i)
				assert.True(t, k.IsForbidden(a, b))
				assert.False(t, k.IsRequired(a, b))
				assert.Contains(t, k.Extent(fmt.Sprintf("Xa%d*", i)), a)
			}
		}()
	}
	wg.Wait()
}
