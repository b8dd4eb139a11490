package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"deardiary.dev/diary/pkg/commands/options"
	"deardiary.dev/diary/pkg/credential"
	"deardiary.dev/diary/pkg/kv"
	"deardiary.dev/diary/pkg/remote"
	"deardiary.dev/diary/pkg/runner/pin"
)

func addPin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the hosted 4-digit PIN.",
		Long: "Manage the 4-digit PIN kept in the hosted database.\n" +
			"Requires dsn (and usually user) in the .diary config or DIARY_* environment.",
		Example: `
diary pin set --pin 1234
diary pin verify --pin 1234
diary pin rm
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPinSet(cmd)
	addPinVerify(cmd)
	addPinRemove(cmd)
	addPinMigrate(cmd)

	topLevel.AddCommand(cmd)
}

// openRemote dials the hosted database from config and resolves the user id
// the PIN belongs to. The --user flag overrides the configured identity.
func openRemote(ctx context.Context, userFlag string) (*sql.DB, string, error) {
	cfg, err := kv.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	db, err := remote.Open(ctx, cfg.DSN())
	if err != nil {
		return nil, "", err
	}

	var identity remote.Identity = remote.StaticIdentity{ID: cfg.User()}
	if userFlag != "" {
		identity = remote.StaticIdentity{ID: userFlag}
	}
	session, err := identity.CurrentSession(ctx)
	if err != nil {
		_ = db.Close()
		return nil, "", err
	}
	return db, session.UserID, nil
}

func addPinSet(topLevel *cobra.Command) {
	po := &options.PinOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set or replace the PIN. Exactly 4 digits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			db, user, err := openRemote(ctx, po.User)
			if err != nil {
				return oo.HandleError(err)
			}
			defer db.Close()
			r := pin.Set{
				UserID: user,
				Pin:    po.Pin,
				Gate:   credential.NewPinGate(remote.NewPinRepo(db)),
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddPinArgs(cmd, po)

	topLevel.AddCommand(cmd)
}

func addPinVerify(topLevel *cobra.Command) {
	po := &options.PinOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a PIN against the stored one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			db, user, err := openRemote(ctx, po.User)
			if err != nil {
				return oo.HandleError(err)
			}
			defer db.Close()
			r := pin.Verify{
				UserID: user,
				Pin:    po.Pin,
				Gate:   credential.NewPinGate(remote.NewPinRepo(db)),
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddPinArgs(cmd, po)

	topLevel.AddCommand(cmd)
}

func addPinRemove(topLevel *cobra.Command) {
	po := &options.PinOptions{}

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove the PIN.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			db, user, err := openRemote(ctx, po.User)
			if err != nil {
				return oo.HandleError(err)
			}
			defer db.Close()
			r := pin.Remove{
				UserID: user,
				Gate:   credential.NewPinGate(remote.NewPinRepo(db)),
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddPinArgs(cmd, po)

	topLevel.AddCommand(cmd)
}

func addPinMigrate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the hosted schema up to date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			db, _, err := openRemote(ctx, "")
			if err != nil {
				return oo.HandleError(err)
			}
			defer db.Close()
			if err := remote.Migrate(ctx, db); err != nil {
				return oo.HandleError(err)
			}
			fmt.Println("Schema up to date.")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
