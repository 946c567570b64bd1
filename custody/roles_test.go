package custody

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jjquek/custodia/journal"
)

func TestRoles_InitializeInstallsSoleOperator(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)

	require.True(ctx.custody.IsOperator(operator))
	require.False(ctx.custody.IsOperator(alice))
	require.False(ctx.custody.IsDepositor(operator))
}

func TestRoles_OnlyOperatorsCanGrantDepositorStatus(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)

	require.ErrorIs(ctx.custody.GrantDepositor(alice, bob), ErrUnauthorized)
	require.False(ctx.custody.IsDepositor(bob))

	require.NoError(ctx.custody.GrantDepositor(operator, bob))
	require.True(ctx.custody.IsDepositor(bob))
}

func TestRoles_GrantingTwiceIsANoOp(t *testing.T) {
	require := require.New(t)
	ctx := newTestCustody(t)

	require.NoError(ctx.custody.GrantDepositor(operator, alice))
	require.NoError(ctx.custody.GrantDepositor(operator, alice))
	require.True(ctx.custody.IsDepositor(alice))

	// Only one enrollment notification is produced.
	enrollments := 0
	for _, record := range ctx.records(t) {
		if record.Kind == journal.KindDepositorEnrolled {
			enrollments++
		}
	}
	require.Equal(1, enrollments)
}
