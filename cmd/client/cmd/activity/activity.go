package activity

import (
	"github.com/spf13/cobra"
)

// ActivityCmd - родительская команда для журнала действий
var ActivityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Журнал действий",
	Long:  `Просмотр журнала действий пользователя.`,
}
