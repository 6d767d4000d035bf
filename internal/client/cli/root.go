package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Run starts the interactive loop on stdin.
func (a *App) Run(ctx context.Context) {
	fmt.Println("tidechat client (type 'help' for commands)")
	a.repl(ctx, os.Stdin)
}

func (a *App) repl(ctx context.Context, in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print("tch> ")
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "members":
			a.cmdMembers(ctx, args)
		case "member":
			a.cmdMember(ctx, args)
		case "show":
			a.cmdShow(ctx, args)
		case "rename":
			a.cmdRename(ctx, args)
		case "describe":
			a.cmdDescribe(ctx, args)
		case "set-icon":
			a.cmdSetAsset(ctx, args, true)
		case "set-banner":
			a.cmdSetAsset(ctx, args, false)
		case "remove-icon":
			a.cmdRemoveAsset(ctx, args, true)
		case "remove-banner":
			a.cmdRemoveAsset(ctx, args, false)
		case "ack":
			a.cmdAck(ctx, args)
		case "leave":
			a.cmdLeave(ctx, args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func (a *App) help() {
	fmt.Println(`Commands:
  members <server> [offline] [pure]   list server members
  member <server> <user> [pure]       fetch one member
  show <server>                       print the cached server
  rename <server> <name...>           change the server name
  describe <server> <text...>         change the server description
  set-icon <server> <path> <mime>     upload and set the server icon
  set-banner <server> <path> <mime>   upload and set the server banner
  remove-icon <server>                clear the server icon
  remove-banner <server>              clear the server banner
  ack <server>                        acknowledge the server
  leave <server> [silent]             leave or delete the server
  exit                                quit`)
}
