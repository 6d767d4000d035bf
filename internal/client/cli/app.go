// Package cli implements the interactive tidechat client shell. It wires
// the transport, cache and services together and maps shell commands onto
// the service operations.
package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/tidechat/internal/client/api"
	"github.com/dmitrijs2005/tidechat/internal/client/assets"
	"github.com/dmitrijs2005/tidechat/internal/client/cache"
	"github.com/dmitrijs2005/tidechat/internal/client/config"
	"github.com/dmitrijs2005/tidechat/internal/client/services"
	"github.com/dmitrijs2005/tidechat/internal/filex"
	"github.com/dmitrijs2005/tidechat/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	cache   *cache.EntityCache
	members services.MemberService
	servers services.ServerService

	uploader   assets.Uploader
	stagingDir string

	mu        sync.Mutex
	workflows map[string]*services.UploadWorkflow
}

// NewApp assembles the application. The session token is taken from the
// config or, when absent, prompted for without echo.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	token := cfg.SessionToken
	if token == "" {
		t, err := GetToken(os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("reading session token: %w", err)
		}
		token = string(t)
	}

	stagingDir, err := filex.EnsureSubDir(cfg.StagingDir)
	if err != nil {
		return nil, fmt.Errorf("preparing staging dir: %w", err)
	}

	transport := api.NewClient(cfg.APIBaseURL, token, nil, log)
	c := cache.New()

	var uploader assets.Uploader
	switch cfg.Uploader {
	case config.UploaderS3:
		uploader = assets.NewS3Uploader(assets.S3Config{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Bucket:       cfg.S3Bucket,
		})
	default:
		uploader = assets.NewFilesClient(cfg.FilesBaseURL, token)
	}

	return &App{
		config:     cfg,
		log:        log,
		cache:      c,
		members:    services.NewMemberService(transport, c),
		servers:    services.NewServerService(transport, c),
		uploader:   uploader,
		stagingDir: stagingDir,
		workflows:  make(map[string]*services.UploadWorkflow),
	}, nil
}

// workflowFor returns the upload workflow for a server, creating it on
// first use. One workflow (one icon slot, one banner slot) per server.
func (a *App) workflowFor(serverID string) *services.UploadWorkflow {
	a.mu.Lock()
	defer a.mu.Unlock()
	wf, ok := a.workflows[serverID]
	if !ok {
		wf = services.NewUploadWorkflow(serverID, a.servers, a.uploader, a.stagingDir, a.log)
		a.workflows[serverID] = wf
	}
	return wf
}
