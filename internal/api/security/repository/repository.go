package securityRepository

import (
	"os"
	"path/filepath"
	"sync"

	"DespachoJuridico/internal/entity"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Blocklist is the on-disk shape of the blocked numbers file.
type Blocklist struct {
	Blocked []entity.BlockedNumber `json:"blocked"`
}

type ISecurityRepository interface {
	Mutate(fn func(b *Blocklist) error) error
	View(fn func(b Blocklist))
}

type securityRepository struct {
	path string
	log  *logrus.Logger

	mu        sync.Mutex
	blocklist Blocklist
}

// New loads the blocklist from path, starting empty if the file does not
// exist yet.
func New(path string, log *logrus.Logger) (ISecurityRepository, error) {
	r := &securityRepository{
		path: path,
		log:  log,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		return r, nil
	}

	if err := json.Unmarshal(data, &r.blocklist); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *securityRepository) Mutate(fn func(b *Blocklist) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := fn(&r.blocklist); err != nil {
		return err
	}

	return r.save()
}

func (r *securityRepository) View(fn func(b Blocklist)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.blocklist)
}

func (r *securityRepository) save() error {
	data, err := json.MarshalIndent(r.blocklist, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, r.path)
}
