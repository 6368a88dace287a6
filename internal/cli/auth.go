package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenloop/greenloop-go/pkg/auth"
)

const logoutFlash = "Sesión cerrada correctamente"

func newLoginCommand(a *app, p *printer) *cobra.Command {
	var (
		email    string
		password string
		company  bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if password == "" {
				read, err := readSecret(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = read
			}

			if company {
				resp, err := a.session.CompanyLogin(ctx, email, password)
				if err != nil {
					return err
				}
				return p.result(resp, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "Sesión iniciada como %v\n", resp.Company["company_name"])
					return err
				})
			}

			resp, err := a.session.Login(ctx, email, password)
			if err != nil {
				return err
			}
			return p.result(resp, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s (%v)\n", resp.Message, resp.User["username"])
				return err
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (read from stdin when empty)")
	cmd.Flags().BoolVar(&company, "company", false, "Sign in as a donor company")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("password is required")
	}
	return line, nil
}

func newLogoutCommand(a *app, p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the stored tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.session.Logout(ctx); err != nil {
				return err
			}
			if store, err := a.localStore(ctx); err != nil {
				a.logg.Warn(a.logg.WithField(ctx, "error", err.Error()), "cli.flash.unavailable")
			} else if err := store.SetFlash(ctx, logoutFlash); err != nil {
				return err
			}
			return p.result(map[string]string{"message": logoutFlash}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, logoutFlash)
				return err
			})
		},
	}
}

type whoami struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	IsAdmin   bool       `json:"is_admin"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func newWhoamiCommand(a *app, p *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			me, err := a.api.Auth.Me(ctx)
			if err != nil {
				return err
			}
			out := whoami{ID: me.ID, Username: me.Username, Email: me.Email, IsAdmin: me.IsAdmin}
			if pair, err := a.session.Current(ctx); err == nil {
				if exp, err := auth.ExpiresAt(pair.AccessToken); err == nil {
					out.ExpiresAt = &exp
				}
			}
			return p.result(out, func(w io.Writer) error {
				role := "usuario"
				if out.IsAdmin {
					role = "administrador"
				}
				fmt.Fprintf(w, "%s <%s> %s\n", out.Username, out.Email, role)
				if out.ExpiresAt != nil {
					fmt.Fprintf(w, "token vence %s\n", out.ExpiresAt.Local().Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}

func newRefreshCommand(a *app, p *printer) *cobra.Command {
	var (
		company bool
		window  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Rotate the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if window > 0 && !company {
				refreshed, err := a.session.RefreshIfExpiring(ctx, time.Now(), window)
				if err != nil {
					return err
				}
				return p.result(map[string]bool{"refreshed": refreshed}, func(w io.Writer) error {
					if refreshed {
						_, err := fmt.Fprintln(w, "token renovado")
						return err
					}
					_, err := fmt.Fprintln(w, "token vigente")
					return err
				})
			}

			refresh := a.session.Refresh
			if company {
				refresh = a.session.RefreshCompany
			}
			if _, err := refresh(ctx); err != nil {
				return err
			}
			return p.result(map[string]bool{"refreshed": true}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, "token renovado")
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&company, "company", false, "Refresh a company session")
	cmd.Flags().DurationVar(&window, "if-expiring", 0, "Only refresh when the token expires within this window")
	return cmd
}
