// cmd/client/cmd/activity/list.go
package activity

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/types"
	"vaultkeeper/internal/app/client"
	"vaultkeeper/internal/domain/activity"
)

var (
	listLimit     int
	listCursor    string
	listVaultType string
	listAction    string
	listFrom      string
	listTo        string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список действий",
	Long: `Просмотр журнала действий, от новых к старым.

Следующая страница запрашивается флагом --cursor со значением
nextCursor из предыдущего ответа.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		page, err := app.ActivityList(cmd.Context(), client.ActivityFilter{
			Limit:     listLimit,
			Cursor:    listCursor,
			VaultType: listVaultType,
			Action:    listAction,
			From:      listFrom,
			To:        listTo,
		})
		if err != nil {
			return fmt.Errorf("ошибка получения журнала: %w", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return printPageJSON(page)
		}
		return printPageTable(page)
	},
}

func printPageJSON(page *activity.Page) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}

func printPageTable(page *activity.Page) error {
	if len(page.Logs) == 0 {
		fmt.Println("Записи не найдены")
		return nil
	}

	vaultColor := map[activity.VaultType]*color.Color{
		activity.VaultTypeAccount:  color.New(color.FgYellow),
		activity.VaultTypePersonal: color.New(color.FgGreen),
		activity.VaultTypeFamily:   color.New(color.FgCyan),
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tКогда\tХранилище\tДействие\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")

	for _, entry := range page.Logs {
		scope := string(entry.VaultType)
		if c, ok := vaultColor[entry.VaultType]; ok {
			scope = c.Sprint(scope)
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
			entry.ID,
			entry.CreatedAt.Local().Format(time.DateTime),
			scope,
			entry.Action)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	if page.NextCursor != nil {
		fmt.Printf("Следующая страница: --cursor %s\n", *page.NextCursor)
	} else {
		fmt.Println("Это последняя страница")
	}

	return nil
}

func init() {
	ListCmd.Flags().IntVarP(&listLimit, "limit", "l", 20, "размер страницы (1-100)")
	ListCmd.Flags().StringVar(&listCursor, "cursor", "", "курсор следующей страницы")
	ListCmd.Flags().StringVar(&listVaultType, "vault-type", "", "фильтр по хранилищу: account, personal_vault, family_vault")
	ListCmd.Flags().StringVar(&listAction, "action", "", "фильтр по действию")
	ListCmd.Flags().StringVar(&listFrom, "from", "", "начало периода (2006-01-02)")
	ListCmd.Flags().StringVar(&listTo, "to", "", "конец периода (2006-01-02)")
}
