package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tidechat/internal/client/cache"
	"github.com/dmitrijs2005/tidechat/internal/client/config"
	"github.com/dmitrijs2005/tidechat/internal/client/models"
	"github.com/dmitrijs2005/tidechat/internal/client/services"
)

type fakeServerService struct {
	calls      []string
	gotPatches []map[string]any
	gotPure    []bool
	silent     bool
}

func (f *fakeServerService) PatchServer(ctx context.Context, serverID string, patch *services.ServerPatch, pure bool) (*models.Server, error) {
	f.calls = append(f.calls, "patch "+serverID)
	if patch == nil {
		patch = services.NewServerPatch()
	}
	f.gotPatches = append(f.gotPatches, patch.BuildBody())
	f.gotPure = append(f.gotPure, pure)
	return &models.Server{ID: serverID}, nil
}

func (f *fakeServerService) AckServer(ctx context.Context, serverID string) error {
	f.calls = append(f.calls, "ack "+serverID)
	return nil
}

func (f *fakeServerService) LeaveOrDeleteServer(ctx context.Context, serverID string, leaveSilently bool) error {
	f.calls = append(f.calls, "leave "+serverID)
	f.silent = leaveSilently
	return nil
}

type fakeMemberService struct {
	calls   []string
	gotOpts services.FetchOptions
	gotPure bool
}

func (f *fakeMemberService) FetchMembers(ctx context.Context, serverID string, opts services.FetchOptions) (*services.MembersPage, error) {
	f.calls = append(f.calls, "members "+serverID)
	f.gotOpts = opts
	return &services.MembersPage{}, nil
}

func (f *fakeMemberService) FetchMember(ctx context.Context, serverID, userID string, pure bool) (*models.Member, error) {
	f.calls = append(f.calls, "member "+serverID+" "+userID)
	f.gotPure = pure
	return &models.Member{ID: &models.MemberID{Server: serverID, User: userID}}, nil
}

func testApp(servers *fakeServerService, members *fakeMemberService) *App {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:    cfg,
		cache:     cache.New(),
		members:   members,
		servers:   servers,
		workflows: make(map[string]*services.UploadWorkflow),
	}
}

func runScript(t *testing.T, a *App, lines ...string) {
	t.Helper()
	input := strings.Join(append(lines, "exit", ""), "\n")
	a.repl(context.Background(), strings.NewReader(input))
}

func TestRepl_DispatchesServerCommands(t *testing.T) {
	fs := &fakeServerService{}
	a := testApp(fs, &fakeMemberService{})

	runScript(t, a,
		"rename S1 New Name",
		"describe S1 a fine place",
		"ack S1",
		"leave S1 silent",
	)

	require.Equal(t, []string{"patch S1", "patch S1", "ack S1", "leave S1"}, fs.calls)
	require.Equal(t, map[string]any{"name": "New Name"}, fs.gotPatches[0])
	require.Equal(t, map[string]any{"description": "a fine place"}, fs.gotPatches[1])
	require.True(t, fs.silent)
}

func TestRepl_MemberCommandsPassFlags(t *testing.T) {
	fm := &fakeMemberService{}
	a := testApp(&fakeServerService{}, fm)

	runScript(t, a,
		"members S1 offline pure",
		"member S1 U1 pure",
	)

	require.Equal(t, []string{"members S1", "member S1 U1"}, fm.calls)
	require.True(t, fm.gotOpts.IncludeOffline)
	require.True(t, fm.gotOpts.Pure)
	require.True(t, fm.gotPure)
}

func TestRepl_RemoveIconGoesThroughSlot(t *testing.T) {
	fs := &fakeServerService{}
	a := testApp(fs, &fakeMemberService{})

	runScript(t, a, "remove-icon S1")

	require.Equal(t, []string{"patch S1"}, fs.calls)
	require.Equal(t, map[string]any{"remove": []string{services.RemoveIcon}}, fs.gotPatches[0])
	require.False(t, fs.gotPure[0])
}

func TestRepl_UnknownCommandKeepsRunning(t *testing.T) {
	fs := &fakeServerService{}
	a := testApp(fs, &fakeMemberService{})

	runScript(t, a,
		"bogus",
		"ack S1",
	)

	require.Equal(t, []string{"ack S1"}, fs.calls)
}

func TestRepl_BadArgsDoNotCallServices(t *testing.T) {
	fs := &fakeServerService{}
	fm := &fakeMemberService{}
	a := testApp(fs, fm)

	runScript(t, a,
		"rename S1",
		"members",
		"ack",
	)

	require.Empty(t, fs.calls)
	require.Empty(t, fm.calls)
}
