package main

import (
	"io"
	"strconv"

	"github.com/hirotachi/rizz-cli-chat/pkg/chat"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print servers, channels and message counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		writeTable(cmd.OutOrStdout(), rt.store.Load(cmd.Context()))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the stored chat with the example data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		data, err := rt.store.Reset(cmd.Context())
		if err != nil {
			return err
		}
		rt.log.Info("state reset to seed data")
		writeTable(cmd.OutOrStdout(), data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd, resetCmd)
}

func writeTable(w io.Writer, data chat.Data) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Server", "Badge", "Channel", "Topic", "Messages"})
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	for _, server := range data.Servers {
		channels := data.Channels[server.ID]
		if len(channels) == 0 {
			table.Append([]string{server.Name, server.Short, "-", "", "0"})
			continue
		}
		for _, channel := range channels {
			count := strconv.Itoa(len(data.Messages[channel.ID]))
			table.Append([]string{server.Name, server.Short, "#" + channel.Name, channel.Topic, count})
		}
	}
	table.Render()
}
