package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hirotachi/rizz-cli-chat/pkg/web"
	"github.com/spf13/cobra"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the chat as a local web page",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := setup(ctx)
		if err != nil {
			return err
		}
		defer rt.Close()

		cmd.Printf("Rizz is running at http://%s\n", rt.cfg.HTTPAddr)
		handler := web.NewHandler(rt.session(ctx), rt.log)
		return web.ListenAndServe(ctx, rt.cfg.HTTPAddr, handler, rt.log)
	},
}

func init() {
	rootCmd.AddCommand(webCmd)
}
