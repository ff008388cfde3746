package main

import (
	"bufio"
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/knuckleball-lang/knuckleball"
	"github.com/knuckleball-lang/knuckleball/config"
)

var (
	flagConfigPath string
	flagListen     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Serve the dispatcher over TCP, one goroutine per connection",
	RunE:  runServer,
}

func init() {
	runCmd.Flags().StringVar(&flagConfigPath, "config", "", "path to a YAML config file")
	runCmd.Flags().StringVar(&flagListen, "listen", "", "override the configured listen address")
	replCmd.Flags().StringVar(&flagConfigPath, "config", "", "path to a YAML config file")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, stop, err := buildContext(flagConfigPath)
	if err != nil {
		return err
	}
	defer stop()

	addr := flagListen
	if addr == "" {
		cfg, err := config.Load(flagConfigPath)
		if err != nil {
			return err
		}
		addr = cfg.ListenAddress
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("knuckleballd: listen: %w", err)
	}
	defer ln.Close()
	fmt.Fprintln(os.Stderr, "knuckleballd: listening on", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("knuckleballd: accept: %w", err)
		}
		go serveConn(ctx, conn)
	}
}

// serveConn scans conn line by line, forwarding each to ctx.Execute
// alongside a session bound to the connection's remote address, and
// writes the reply back terminated with a newline.
func serveConn(ctx *knuckleball.Context, conn net.Conn) {
	defer conn.Close()
	session := knuckleball.NewDefaultSession(conn.RemoteAddr().String())
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		reply := ctx.Execute(scanner.Text(), session)
		if _, err := fmt.Fprintln(conn, reply); err != nil {
			return
		}
	}
}
