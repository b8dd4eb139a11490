package options

import (
	"github.com/spf13/cobra"
)

// PasswordOptions carries the local password for non-interactive use. When
// the flag is empty, commands prompt instead.
type PasswordOptions struct {
	Password string
}

func AddPasswordArgs(cmd *cobra.Command, o *PasswordOptions) {
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"The diary password. Omit to be prompted.")
}

// PinOptions carries the hosted 4-digit PIN and the user it belongs to.
type PinOptions struct {
	Pin  string
	User string
}

func AddPinArgs(cmd *cobra.Command, o *PinOptions) {
	cmd.Flags().StringVar(&o.Pin, "pin", "",
		"The 4-digit PIN.")
	cmd.Flags().StringVar(&o.User, "user", "",
		"The hosted user id. Defaults to user from the config.")
}
