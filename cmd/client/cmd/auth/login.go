// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vaultkeeper/cmd/client/cmd/types"
	"vaultkeeper/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему Vaultkeeper",
	Long: `Аутентификация на сервере Vaultkeeper.

После входа токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		// Запрашиваем email
		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		// Запрашиваем пароль
		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		// Выполняем вход
		fmt.Println("Аутентификация...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, email, string(password)); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Вход выполнен успешно!")

		// Подсказываем следующий шаг, если хранилище еще не настроено
		status, err := app.VaultStatus(ctx)
		if err == nil && !status.VaultSetupCompleted {
			fmt.Println("Хранилище еще не инициализировано: vaultkeeper vault setup")
		}

		return nil
	},
}
