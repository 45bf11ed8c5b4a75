package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/minta-io/minta/pkg/client"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

func getClient() (*client.Client, error) {
	server := viper.GetString(ServerAddrKey)
	if server == "" {
		return nil, fmt.Errorf("server address not configured, provide via --server or MINTA_ADDR")
	}
	return client.New(server), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
