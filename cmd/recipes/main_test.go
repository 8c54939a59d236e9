package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmdCommands(t *testing.T) {
	cmd := rootCmd()

	names := make([]string, 0, len(cmd.Commands))
	for _, c := range cmd.Commands {
		names = append(names, c.Name)
	}

	require.ElementsMatch(t, []string{"serve", "migrate", "wait-for-db"}, names)
}

func TestCommandsRejectMissingConfig(t *testing.T) {
	for _, sub := range []string{"serve", "migrate", "wait-for-db"} {
		t.Run(sub, func(t *testing.T) {
			err := rootCmd().Run(context.Background(), []string{"recipes", "--config", "does-not-exist.yaml", sub})
			require.Error(t, err)
			require.Contains(t, err.Error(), "config error")
		})
	}
}
