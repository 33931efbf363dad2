package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/gtrskylin3/CourseWebsite/internal/course/app"
	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/spf13/cobra"
)

// NewUserCmd creates the user command and its flag subcommands
func NewUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage account flags",
		Long:  "Grant or revoke administrator rights and enable or disable accounts",
	}

	cmd.AddCommand(
		newFlagCmd("promote", "Grant administrator rights", func(ctx context.Context, s *service.AccountService, name string) (domain.User, error) {
			return s.SetAdmin(ctx, name, true)
		}),
		newFlagCmd("demote", "Revoke administrator rights", func(ctx context.Context, s *service.AccountService, name string) (domain.User, error) {
			return s.SetAdmin(ctx, name, false)
		}),
		newFlagCmd("activate", "Enable an account", func(ctx context.Context, s *service.AccountService, name string) (domain.User, error) {
			return s.SetActive(ctx, name, true)
		}),
		newFlagCmd("deactivate", "Disable an account; its tokens stop working on the next request", func(ctx context.Context, s *service.AccountService, name string) (domain.User, error) {
			return s.SetActive(ctx, name, false)
		}),
		newListCmd(),
	)

	return cmd
}

type flagFunc func(ctx context.Context, s *service.AccountService, username string) (domain.User, error)

func newFlagCmd(use, short string, fn flagFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <username>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAccounts(cmd.Context(), func(ctx context.Context, s *service.AccountService) error {
				u, err := fn(ctx, s, args[0])
				if err != nil {
					return fmt.Errorf("failed to %s %s: %w", use, args[0], err)
				}
				printUsers(cmd.OutOrStdout(), []domain.User{u})
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAccounts(cmd.Context(), func(ctx context.Context, s *service.AccountService) error {
				users, err := s.ListActiveUsers(ctx)
				if err != nil {
					return fmt.Errorf("failed to list users: %w", err)
				}
				if len(users) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No active users")
					return nil
				}
				printUsers(cmd.OutOrStdout(), users)
				return nil
			})
		},
	}
}

// withAccounts opens and migrates the configured database for the duration
// of fn. Flag changes only need the store.
func withAccounts(ctx context.Context, fn func(context.Context, *service.AccountService) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := app.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
		}
	}()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return fn(ctx, &service.AccountService{Store: db})
}

func printUsers(out io.Writer, users []domain.User) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tACTIVE\tADMIN")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%t\t%t\n", u.ID, u.Username, u.FirstName, u.LastName, u.IsActive, u.IsAdmin)
	}
	_ = w.Flush()
}
