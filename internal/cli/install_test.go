package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aj-igherighe/bootstrap/internal/errors"
)

func TestRunInstallReqs_RejectsNonPositiveTimeout(t *testing.T) {
	require.NoError(t, installReqsCmd.Flags().Set("timeout", "-5"))
	t.Cleanup(func() {
		_ = installReqsCmd.Flags().Set("timeout", "0")
		installReqsCmd.Flags().Lookup("timeout").Changed = false
	})

	err := runInstallReqs(installReqsCmd, nil)

	cliErr := apperrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, apperrors.Argument, cliErr.Category)
	assert.Contains(t, cliErr.Message, "timeout must be at least 1 second")
}

func TestInstallReqsCmd_Flags(t *testing.T) {
	t.Parallel()

	flags := installReqsCmd.Flags()
	require.NotNil(t, flags.Lookup("file"))
	require.NotNil(t, flags.Lookup("timeout"))
	assert.Equal(t, "f", flags.Lookup("file").Shorthand)
	assert.Equal(t, "t", flags.Lookup("timeout").Shorthand)
}
