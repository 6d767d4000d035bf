package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tidechat/internal/client/services"
)

func (a *App) cmdShow(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: show <server>")
		return
	}

	s, ok := a.cache.GetServer(args[0])
	if !ok {
		fmt.Println("server is not cached yet")
		return
	}

	fmt.Printf("name: %s\n", s.Name)
	if s.Description != nil {
		fmt.Printf("description: %s\n", *s.Description)
	}
	if s.Icon != nil {
		fmt.Printf("icon: %s\n", s.Icon.URL(a.config.FilesBaseURL))
	}
	if s.Banner != nil {
		fmt.Printf("banner: %s\n", s.Banner.URL(a.config.FilesBaseURL))
	}
	fmt.Printf("cached members: %d\n", len(a.cache.ServerMembers(args[0])))
}

func (a *App) cmdRename(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: rename <server> <name...>")
		return
	}

	patch := services.NewServerPatch().SetName(strings.Join(args[1:], " "))
	if _, err := a.servers.PatchServer(ctx, args[0], patch, false); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("renamed")
}

func (a *App) cmdDescribe(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: describe <server> <text...>")
		return
	}

	patch := services.NewServerPatch().SetDescription(strings.Join(args[1:], " "))
	if _, err := a.servers.PatchServer(ctx, args[0], patch, false); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("description updated")
}

func (a *App) cmdAck(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: ack <server>")
		return
	}
	if err := a.servers.AckServer(ctx, args[0]); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("acked")
}

func (a *App) cmdLeave(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: leave <server> [silent]")
		return
	}
	if err := a.servers.LeaveOrDeleteServer(ctx, args[0], hasFlag(args, "silent")); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("left")
}
