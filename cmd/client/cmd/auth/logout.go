// cmd/client/cmd/auth/logout.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/types"
	"vaultkeeper/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Сбрасывает сессию на сервере и удаляет локально сохраненный токен.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if !app.IsAuthenticated() {
			fmt.Println("Вы не вошли в систему")
			return nil
		}

		if err := app.Logout(cmd.Context()); err != nil {
			// Локальный токен уже удален, сервер мог быть недоступен
			fmt.Printf("⚠️  Предупреждение: %v\n", err)
		}

		fmt.Println("✅ Выход выполнен")
		return nil
	},
}
