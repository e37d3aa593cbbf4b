// cmd/client/cmd/vault/status.go
package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/types"
	"vaultkeeper/internal/app/client"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Статус инициализации хранилища",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		status, err := app.VaultStatus(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения статуса: %w", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		}

		if status.VaultSetupCompleted {
			color.Green("✓ Хранилище инициализировано")
			if status.VaultSetupCompletedAt != nil {
				fmt.Printf("  Завершено: %s\n", status.VaultSetupCompletedAt.Local().Format(time.DateTime))
			}
		} else {
			color.Yellow("✗ Хранилище не инициализировано")
			fmt.Println("  Запустите: vaultkeeper vault setup")
		}

		return nil
	},
}
