package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func renderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the JSON payload a message renders to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindMessageFlags(v, cmd.Flags())
			msg, err := buildMessage(cmd, v)
			if err != nil {
				return err
			}
			payload, err := msg.Render()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		},
	}
	messageFlags(cmd.Flags())
	return cmd
}
