package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tidechat/internal/client/services"
)

func (a *App) slotFor(serverID string, icon bool) *services.UploadSlot {
	wf := a.workflowFor(serverID)
	if icon {
		return wf.Icon
	}
	return wf.Banner
}

func (a *App) cmdSetAsset(ctx context.Context, args []string, icon bool) {
	kind := "banner"
	if icon {
		kind = "icon"
	}
	if len(args) < 3 {
		fmt.Printf("usage: set-%s <server> <path> <mime>\n", kind)
		return
	}

	slot := a.slotFor(args[0], icon)

	progress, cancel := slot.Subscribe()
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for f := range progress {
			fmt.Printf("\ruploading %s: %3.0f%%", kind, f*100)
		}
	}()

	err := slot.Pick(ctx, &services.PickedAsset{Path: args[1], MimeType: args[2]})
	cancel()
	<-done
	fmt.Println()

	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("%s updated\n", kind)
}

func (a *App) cmdRemoveAsset(ctx context.Context, args []string, icon bool) {
	kind := "banner"
	if icon {
		kind = "icon"
	}
	if len(args) < 1 {
		fmt.Printf("usage: remove-%s <server>\n", kind)
		return
	}

	if err := a.slotFor(args[0], icon).Pick(ctx, nil); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Printf("%s removed\n", kind)
}
