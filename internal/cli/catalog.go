package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/greenloop/greenloop-go/pkg/greenloop"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/types"
)

func bindPage(fs *pflag.FlagSet, p *greenloop.PageParams) {
	fs.IntVar(&p.Page, "page", 0, "Page number, 1-based")
	fs.IntVar(&p.PageSize, "page-size", 0, "Rows per page")
}

func pageFooter(w io.Writer, page int, totalPages, total int) {
	fmt.Fprintf(w, "página %d de %d (%d en total)\n", page, totalPages, total)
}

func amount(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return "$" + d.StringFixed(2)
}

func newItemsCommand(a *app, p *printer) *cobra.Command {
	cmd := &cobra.Command{Use: "items", Short: "Browse the item catalog"}

	var (
		params   greenloop.ItemSearchParams
		minValue string
		maxValue string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List available items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if params.MinValue, err = parseAmount("min-value", minValue); err != nil {
				return err
			}
			if params.MaxValue, err = parseAmount("max-value", maxValue); err != nil {
				return err
			}
			page, err := a.api.Items.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return p.result(page, func(w io.Writer) error {
				rows := make([][]string, 0, len(page.Items))
				for _, it := range page.Items {
					rows = append(rows, []string{it.ID, it.Title, it.CategoryName, string(it.Condition), amount(it.EstimatedValue)})
				}
				if err := table(w, []string{"ID", "TÍTULO", "CATEGORÍA", "CONDICIÓN", "VALOR"}, rows); err != nil {
					return err
				}
				pageFooter(w, page.Page, page.TotalPages, page.Total)
				return nil
			})
		},
	}
	list.Flags().StringVar(&params.Query, "query", "", "Free text search")
	list.Flags().StringVar(&params.CategoryID, "category", "", "Category id")
	list.Flags().StringVar(&params.Condition, "condition", "", "Item condition")
	list.Flags().StringVar(&params.City, "city", "", "City")
	list.Flags().StringVar(&params.State, "state", "", "State")
	list.Flags().StringVar(&minValue, "min-value", "", "Minimum estimated value")
	list.Flags().StringVar(&maxValue, "max-value", "", "Maximum estimated value")
	list.Flags().StringVar(&params.SortBy, "sort-by", "", "Sort field")
	list.Flags().StringVar(&params.SortOrder, "sort-order", "", "asc or desc")
	bindPage(list.Flags(), &params.PageParams)

	get := &cobra.Command{
		Use:   "get <item-id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.api.Items.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return p.result(item, func(w io.Writer) error {
				fmt.Fprintf(w, "%s\n%s\n", item.Title, item.Description)
				fmt.Fprintf(w, "estado: %s  condición: %s  valor: %s\n", item.Status, item.Condition, amount(item.EstimatedValue))
				return nil
			})
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func parseAmount(flag, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return &d, nil
}

func newExchangesCommand(a *app, p *printer) *cobra.Command {
	cmd := &cobra.Command{Use: "exchanges", Short: "Review your exchanges"}

	var params greenloop.ExchangeListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List exchanges you take part in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.api.Exchanges.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return p.result(page, func(w io.Writer) error {
				rows := make([][]string, 0, len(page.Items))
				for _, ex := range page.Items {
					rows = append(rows, []string{ex.ID, string(ex.Status), ex.OwnerItemTitle, ex.OtherUserUsername})
				}
				if err := table(w, []string{"ID", "ESTADO", "ARTÍCULO", "CON"}, rows); err != nil {
					return err
				}
				pageFooter(w, page.Page, page.TotalPages, page.Total)
				return nil
			})
		},
	}
	list.Flags().StringVar(&params.Status, "status", "", "Exchange status")
	list.Flags().StringVar(&params.Role, "role", "", "requester or owner")
	bindPage(list.Flags(), &params.PageParams)

	show := &cobra.Command{
		Use:   "show <exchange-id>",
		Short: "Show an exchange with both participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			full, err := a.api.Exchanges.GetWithParticipants(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return p.result(full, func(w io.Writer) error {
				fmt.Fprintf(w, "intercambio %s: %s\n", full.Exchange.ID, full.Exchange.Status)
				fmt.Fprintf(w, "solicitante: %s\n", full.Requester.Username)
				fmt.Fprintf(w, "propietario: %s\n", full.Owner.Username)
				return nil
			})
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func newNotificationsCommand(a *app, p *printer) *cobra.Command {
	cmd := &cobra.Command{Use: "notifications", Short: "Read notifications"}

	var (
		params greenloop.NotificationListParams
		unread bool
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if unread {
				params.IsRead = greenloop.Bool(false)
			}
			page, err := a.api.Notifications.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return p.result(page, func(w io.Writer) error {
				rows := make([][]string, 0, len(page.Items))
				for _, n := range page.Items {
					mark := " "
					if !n.IsRead {
						mark = "*"
					}
					rows = append(rows, []string{mark, n.ID, string(n.NotificationType), n.Title})
				}
				if err := table(w, []string{"", "ID", "TIPO", "TÍTULO"}, rows); err != nil {
					return err
				}
				pageFooter(w, page.Page, page.TotalPages, page.Total)
				return nil
			})
		},
	}
	list.Flags().BoolVar(&unread, "unread", false, "Only unread notifications")
	list.Flags().StringVar(&params.NotificationType, "type", "", "Notification type")
	list.Flags().StringVar(&params.Priority, "priority", "", "Notification priority")
	bindPage(list.Flags(), &params.PageParams)

	cmd.AddCommand(list)
	return cmd
}

func newAdminCommand(a *app, p *printer) *cobra.Command {
	cmd := &cobra.Command{Use: "admin", Short: "Administrator views"}

	var itemParams greenloop.AdminListParams
	items := &cobra.Command{
		Use:   "items",
		Short: "List every item with its moderation status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.api.Admin.Items.List(cmd.Context(), itemParams)
			if err != nil {
				return err
			}
			return p.result(page, func(w io.Writer) error {
				return adminItemsTable(w, page)
			})
		},
	}
	items.Flags().StringVar(&itemParams.Status, "status", "", "AVAILABLE, RESERVED, EXCHANGED or INACTIVE")
	items.Flags().StringVar(&itemParams.Search, "search", "", "Search text")
	bindPage(items.Flags(), &itemParams.PageParams)

	var userParams greenloop.AdminListParams
	users := &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.api.Admin.Users.List(cmd.Context(), userParams)
			if err != nil {
				return err
			}
			return p.result(page, func(w io.Writer) error {
				rows := make([][]string, 0, len(page.Items))
				for _, u := range page.Items {
					rows = append(rows, []string{u.ID, u.Username, u.FullName})
				}
				return table(w, []string{"ID", "USUARIO", "NOMBRE"}, rows)
			})
		},
	}
	users.Flags().StringVar(&userParams.Search, "search", "", "Search text")
	bindPage(users.Flags(), &userParams.PageParams)

	cmd.AddCommand(items, users)
	return cmd
}

func adminItemsTable(w io.Writer, page pagination.Page[types.AdminItem]) error {
	rows := make([][]string, 0, len(page.Items))
	for _, it := range page.Items {
		rows = append(rows, []string{it.ID, it.Title, string(it.StatusLabel), it.OwnerUsername})
	}
	return table(w, []string{"ID", "TÍTULO", "ESTADO", "PROPIETARIO"}, rows)
}
