package caseRepository

import (
	"os"
	"path/filepath"
	"sync"

	"DespachoJuridico/internal/entity"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Ledger is the on-disk shape of the case file. Consultations and cases
// live in one flat JSON document, the way a small practice keeps one
// notebook.
type Ledger struct {
	Consultations []entity.Consultation `json:"consultations"`
	Active        []entity.LegalCase    `json:"active"`
	Closed        []entity.LegalCase    `json:"closed"`
	Stats         Counters              `json:"stats"`
}

type Counters struct {
	TotalConsultations int     `json:"total_consultations"`
	TotalCases         int     `json:"total_cases"`
	Revenue            float64 `json:"revenue"`
}

type ICaseRepository interface {
	Mutate(fn func(l *Ledger) error) error
	View(fn func(l Ledger))
}

type caseRepository struct {
	path string
	log  *logrus.Logger

	mu     sync.Mutex
	ledger Ledger
}

// New loads the ledger from path, starting empty if the file does not exist
// yet. A corrupt file is an error; silently discarding a practice's case
// history is worse than failing to start.
func New(path string, log *logrus.Logger) (ICaseRepository, error) {
	r := &caseRepository{
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

	if err := json.Unmarshal(data, &r.ledger); err != nil {
		return nil, err
	}

	return r, nil
}

// Mutate runs fn under the lock and persists the ledger if fn succeeds.
func (r *caseRepository) Mutate(fn func(l *Ledger) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := fn(&r.ledger); err != nil {
		return err
	}

	return r.save()
}

// View runs fn over a snapshot of the ledger under the lock.
func (r *caseRepository) View(fn func(l Ledger)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.ledger)
}

func (r *caseRepository) save() error {
	data, err := json.MarshalIndent(r.ledger, "", "  ")
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
