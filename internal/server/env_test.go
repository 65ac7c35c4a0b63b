// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentVariables(t *testing.T) {
	t.Run("Load environment variables", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "3000")
		t.Setenv("HTTP_HOST", "0.0.0.0")
		envVars, err := loadServerConfig()
		require.NoError(t, err)
		require.Equal(t, 3000, envVars.HTTPPort)
		require.Equal(t, "0.0.0.0", envVars.HTTPHost)
		require.True(t, envVars.DisableStartupMessage)
	})

	t.Run("Out of range port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "655350")
		_, err := loadServerConfig()
		require.ErrorIs(t, err, ErrEnvVariablesNotValid)
	})

	t.Run("Port is not a number", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "http")
		_, err := loadServerConfig()
		require.ErrorIs(t, err, ErrEnvVariablesNotValid)
	})
}

func TestLoadValidateEnvironmentVariables(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		port          int
		expectedError bool
	}{
		"negative port": {port: -1, expectedError: true},
		"port too high": {port: 655350, expectedError: true},
		"valid port":    {port: 3000},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := validateEnvironmentVariables(&config{HTTPPort: test.port})
			if test.expectedError {
				require.ErrorIs(t, err, ErrEnvVariablesNotValid)
				return
			}
			require.NoError(t, err)
		})
	}
}
