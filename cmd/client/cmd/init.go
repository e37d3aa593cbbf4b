// cmd/client/cmd/init.go
package cmd

import (
	"vaultkeeper/cmd/client/cmd/activity"
	"vaultkeeper/cmd/client/cmd/auth"
	"vaultkeeper/cmd/client/cmd/vault"
)

func init() {
	// Добавляем команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	// Команды хранилища
	rootCmd.AddCommand(vault.VaultCmd)
	vault.VaultCmd.AddCommand(vault.StatusCmd)
	vault.VaultCmd.AddCommand(vault.SetupCmd)

	// Журнал действий
	rootCmd.AddCommand(activity.ActivityCmd)
	activity.ActivityCmd.AddCommand(activity.ListCmd)

	rootCmd.AddCommand(pingCmd)
}
