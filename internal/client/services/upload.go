package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/tidechat/internal/client/assets"
	"github.com/dmitrijs2005/tidechat/internal/client/models"
	"github.com/dmitrijs2005/tidechat/internal/filex"
	"github.com/dmitrijs2005/tidechat/internal/logging"
)

// ErrUnsupportedMediaType rejects a pick before any network I/O happens.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// AssetKind selects which server asset a slot manages.
type AssetKind string

const (
	AssetKindIcon   AssetKind = "icon"
	AssetKindBanner AssetKind = "banner"
)

func (k AssetKind) tag() string {
	if k == AssetKindBanner {
		return models.AssetTagBanners
	}
	return models.AssetTagIcons
}

func (k AssetKind) removeToken() string {
	if k == AssetKindBanner {
		return RemoveBanner
	}
	return RemoveIcon
}

func (k AssetKind) apply(p *ServerPatch, assetID string) {
	if k == AssetKindBanner {
		p.SetBanner(assetID)
	} else {
		p.SetIcon(assetID)
	}
}

// PickedAsset is a locally picked resource: a filesystem path plus its
// declared media type.
type PickedAsset struct {
	Path     string
	MimeType string
}

// SlotState is an observable snapshot of one upload slot.
type SlotState struct {
	// ModelRef is the user's last pick (local path), or the previously
	// resolved asset URL; empty when the slot holds nothing.
	ModelRef string
	// Uploading is true from the start of an upload chain to its
	// terminal state.
	Uploading bool
	// Progress is the upload fraction in [0,1].
	Progress float64
	// UploadError is the message of the last failed upload chain.
	UploadError string
	// UpdateError is the message of the last failed removal patch.
	UpdateError string
}

// UploadSlot drives the stage -> validate -> upload -> patch chain for one
// asset kind. Each chain gets a monotonically increasing operation token;
// state writes from a chain whose token is no longer current are discarded,
// so a finished stale upload cannot clobber a newer pick.
//
// On failure the model reference deliberately stays at the user's last
// pick rather than rolling back, so the displayed preview can diverge from
// the authoritative cache until retried. The cache itself is only written
// through a successful patch and never holds partial state.
type UploadSlot struct {
	kind       AssetKind
	serverID   string
	servers    ServerService
	uploader   assets.Uploader
	stagingDir string
	log        logging.Logger

	mu          sync.Mutex
	token       uint64
	state       SlotState
	subscribers []chan float64
}

// Pick starts a new chain for a picked resource and blocks until the chain
// reaches a terminal state. Callers wanting fire-and-forget semantics run it
// in a goroutine; the token guard keeps overlapping picks consistent.
//
// A nil pick means "clear the asset" and takes the removal path.
func (s *UploadSlot) Pick(ctx context.Context, picked *PickedAsset) error {
	if picked == nil {
		return s.unset(ctx)
	}

	myToken := s.begin(func(st *SlotState) {
		st.ModelRef = picked.Path
		st.UploadError = ""
		st.Progress = 0
	})

	// Stage before any network call: the upload must read a stable
	// snapshot even if the original source goes away.
	staged, err := filex.Stage(picked.Path, s.stagingDir)
	if err != nil {
		return s.fail(ctx, myToken, err)
	}

	if strings.HasSuffix(picked.MimeType, "webp") {
		return s.fail(ctx, myToken, ErrUnsupportedMediaType)
	}

	s.commit(myToken, func(st *SlotState) {
		st.Uploading = true
	})

	assetID, err := s.uploader.Upload(ctx, staged, baseName(picked.Path), s.kind.tag(), picked.MimeType,
		func(soFar, outOf int64) {
			var fraction float64
			if outOf > 0 {
				fraction = float64(soFar) / float64(outOf)
			}
			s.publishProgress(myToken, fraction)
		})
	if err != nil {
		return s.fail(ctx, myToken, err)
	}

	// A pick that happened while this upload ran owns the slot now; the
	// stale asset id is discarded instead of being patched in.
	if !s.current(myToken) {
		return nil
	}

	patch := NewServerPatch()
	s.kind.apply(patch, assetID)

	// Not pure: a successful patch also overwrites the cached server, so
	// the new asset is reflected in both the slot and the cache.
	if _, err := s.servers.PatchServer(ctx, s.serverID, patch, false); err != nil {
		return s.fail(ctx, myToken, err)
	}

	s.commit(myToken, func(st *SlotState) {
		st.Uploading = false
	})
	return nil
}

// unset clears the asset server-side. On failure the model reference is
// left untouched and the error surfaces as UpdateError.
func (s *UploadSlot) unset(ctx context.Context) error {
	myToken := s.begin(func(st *SlotState) {
		st.Uploading = true
		st.Progress = 0
		st.UploadError = ""
	})

	patch := NewServerPatch().Remove(s.kind.removeToken())

	if _, err := s.servers.PatchServer(ctx, s.serverID, patch, false); err != nil {
		s.commit(myToken, func(st *SlotState) {
			st.UpdateError = err.Error()
			st.Uploading = false
		})
		return err
	}

	s.commit(myToken, func(st *SlotState) {
		st.ModelRef = ""
		st.Uploading = false
	})
	return nil
}

// begin claims a fresh operation token and applies the initial state
// mutation atomically.
func (s *UploadSlot) begin(mutate func(*SlotState)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	mutate(&s.state)
	return s.token
}

// current reports whether tok still owns the slot.
func (s *UploadSlot) current(tok uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tok == s.token
}

// commit applies a state mutation only when tok is still the current
// operation; stale chains are discarded silently.
func (s *UploadSlot) commit(tok uint64, mutate func(*SlotState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok != s.token {
		return
	}
	mutate(&s.state)
}

func (s *UploadSlot) fail(ctx context.Context, tok uint64, err error) error {
	if s.log != nil {
		s.log.Warn(ctx, "upload chain failed", "kind", string(s.kind), "server_id", s.serverID, "error", err)
	}
	s.commit(tok, func(st *SlotState) {
		st.UploadError = err.Error()
		st.Progress = 0
		st.Uploading = false
	})
	return err
}

// publishProgress records the fraction and fans it out to subscribers.
// Sends are non-blocking: a slow or detached subscriber drops updates
// instead of stalling the upload; delivered updates keep their order.
func (s *UploadSlot) publishProgress(tok uint64, fraction float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok != s.token {
		return
	}
	s.state.Progress = fraction
	for _, ch := range s.subscribers {
		select {
		case ch <- fraction:
		default:
		}
	}
}

// Subscribe returns a channel of progress fractions and a cancel func.
// After cancel, the channel is closed and no longer receives updates.
func (s *UploadSlot) Subscribe() (<-chan float64, func()) {
	ch := make(chan float64, 16)

	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, c := range s.subscribers {
			if c == ch {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

// State returns a snapshot of the slot.
func (s *UploadSlot) State() SlotState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetModelRef seeds the slot's model reference, e.g. with the resolved URL
// of the currently cached asset when a settings surface opens.
func (s *UploadSlot) SetModelRef(ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ModelRef = ref
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// UploadWorkflow owns the icon and banner slots for one server. Slots are
// independent: a failure in one never touches the other, and neither ever
// corrupts the entity cache.
type UploadWorkflow struct {
	Icon   *UploadSlot
	Banner *UploadSlot
}

// NewUploadWorkflow builds the two slots for serverID. stagingDir must
// exist; staged copies are private to each chain.
func NewUploadWorkflow(serverID string, servers ServerService, uploader assets.Uploader, stagingDir string, log logging.Logger) *UploadWorkflow {
	newSlot := func(kind AssetKind) *UploadSlot {
		return &UploadSlot{
			kind:       kind,
			serverID:   serverID,
			servers:    servers,
			uploader:   uploader,
			stagingDir: stagingDir,
			log:        log,
		}
	}
	return &UploadWorkflow{
		Icon:   newSlot(AssetKindIcon),
		Banner: newSlot(AssetKindBanner),
	}
}
