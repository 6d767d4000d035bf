package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tidechat/internal/client/services"
)

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func (a *App) cmdMembers(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: members <server> [offline] [pure]")
		return
	}
	serverID := args[0]

	page, err := a.members.FetchMembers(ctx, serverID, services.FetchOptions{
		IncludeOffline: hasFlag(args, "offline"),
		Pure:           hasFlag(args, "pure"),
	})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("%d members, %d users\n", len(page.Members), len(page.Users))
	for _, m := range page.Members {
		if m.ID == nil {
			continue
		}
		name := m.ID.User
		if m.Nickname != nil {
			name = *m.Nickname
		}
		if u, ok := a.cache.GetUser(m.ID.User); ok && m.Nickname == nil {
			name = u.Username
		}
		fmt.Printf("  %s (%s)\n", name, m.ID.User)
	}
}

func (a *App) cmdMember(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: member <server> <user> [pure]")
		return
	}

	m, err := a.members.FetchMember(ctx, args[0], args[1], hasFlag(args, "pure"))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	if m.Nickname != nil {
		fmt.Printf("nickname: %s\n", *m.Nickname)
	}
	fmt.Printf("roles: %v\n", m.Roles)
}
