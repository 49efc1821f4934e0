package broadcast

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DirMedium broadcasts markers through one JSON file per kind inside a shared
// directory. Every process of the same installation points at the same
// directory; polling keeps the contract simple and dependency-free. Writes
// are atomic (temp file + rename) so readers never see a torn marker.
type DirMedium struct {
	dir    string
	origin string
	poll   time.Duration
	logger *zap.Logger

	mu   sync.Mutex
	subs []chan struct{}
}

// NewDirMedium creates the medium rooted at dir, creating it if needed.
func NewDirMedium(dir string, poll time.Duration, logger *zap.Logger) (*DirMedium, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if poll <= 0 {
		poll = 500 * time.Millisecond
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create signal dir: %w", err)
	}

	return &DirMedium{
		dir:    dir,
		origin: uuid.NewString(),
		poll:   poll,
		logger: logger,
	}, nil
}

// Publish overwrites the marker file of the given kind.
func (d *DirMedium) Publish(kind Kind) error {
	marker := Marker{Kind: kind, Origin: d.origin, At: time.Now().UTC()}

	data, err := json.Marshal(marker)
	if err != nil {
		return fmt.Errorf("encode marker: %w", err)
	}

	path := d.path(kind)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write marker: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("publish marker: %w", err)
	}

	d.logger.Debug("marker published", zap.String("kind", string(kind)))
	return nil
}

// Subscribe polls the marker file of the given kind and delivers markers
// written by other origins. The marker already on disk at subscribe time is
// not replayed; only subsequent writes are observed.
func (d *DirMedium) Subscribe(kind Kind, handler Handler) (func(), error) {
	var lastSeen time.Time
	if current, ok := d.read(kind); ok {
		lastSeen = current.At
	}

	stop := make(chan struct{})
	d.mu.Lock()
	d.subs = append(d.subs, stop)
	d.mu.Unlock()

	go func() {
		ticker := time.NewTicker(d.poll)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				marker, ok := d.read(kind)
				if !ok || marker.Origin == d.origin || !marker.At.After(lastSeen) {
					continue
				}
				lastSeen = marker.At
				handler(marker)
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(stop) }) }, nil
}

func (d *DirMedium) read(kind Kind) (Marker, bool) {
	data, err := os.ReadFile(d.path(kind))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			d.logger.Warn("read marker failed", zap.String("kind", string(kind)), zap.Error(err))
		}
		return Marker{}, false
	}

	var marker Marker
	if err := json.Unmarshal(data, &marker); err != nil {
		d.logger.Warn("malformed marker ignored", zap.String("kind", string(kind)), zap.Error(err))
		return Marker{}, false
	}
	return marker, true
}

func (d *DirMedium) path(kind Kind) string {
	return filepath.Join(d.dir, string(kind))
}
