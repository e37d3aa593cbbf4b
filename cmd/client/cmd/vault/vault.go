package vault

import (
	"github.com/spf13/cobra"
)

// VaultCmd - родительская команда для операций с хранилищем
var VaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Управление хранилищем",
	Long:  `Статус и инициализация хранилища.`,
}
