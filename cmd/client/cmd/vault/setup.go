// cmd/client/cmd/vault/setup.go
package vault

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/types"
	"vaultkeeper/internal/app/client"
)

var recoveryKeyBlob string

var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Завершить инициализацию хранилища",
	Long: `Помечает хранилище как инициализированное на сервере.

Флагом --recovery-key можно передать ключ хранилища, зашифрованный
ключом восстановления. Сервер хранит его как непрозрачный блоб.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		status, err := app.VaultStatus(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения статуса: %w", err)
		}
		if status.VaultSetupCompleted {
			fmt.Println("Хранилище уже инициализировано.")
			if recoveryKeyBlob == "" {
				return nil
			}
			fmt.Println("Обновляем ключ восстановления...")
		}

		if err := app.VaultSetup(cmd.Context(), recoveryKeyBlob); err != nil {
			return fmt.Errorf("ошибка инициализации хранилища: %w", err)
		}

		fmt.Println("✅ Хранилище инициализировано!")
		return nil
	},
}

func init() {
	SetupCmd.Flags().StringVar(&recoveryKeyBlob, "recovery-key", "", "зашифрованный ключ хранилища (блоб)")
}
