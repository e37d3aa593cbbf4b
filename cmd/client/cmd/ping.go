// cmd/client/cmd/ping.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/types"
	"vaultkeeper/internal/app/client"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить соединение с сервером",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}

		fmt.Println("✓ Соединение с сервером установлено")
		return nil
	},
}
