package conversationRepository

import (
	"os"
	"path/filepath"
	"sync"

	"DespachoJuridico/internal/entity"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Book is the on-disk shape of the conversation file, keyed by the
// WhatsApp user id so a returning client picks up the same thread.
type Book struct {
	Conversations map[string]*entity.Conversation `json:"conversations"`
}

type IConversationRepository interface {
	Mutate(fn func(b *Book) error) error
	View(fn func(b Book))
}

type conversationRepository struct {
	path string
	log  *logrus.Logger

	mu   sync.Mutex
	book Book
}

// New loads the book from path, starting empty if the file does not exist yet.
func New(path string, log *logrus.Logger) (IConversationRepository, error) {
	r := &conversationRepository{
		path: path,
		log:  log,
		book: Book{Conversations: map[string]*entity.Conversation{}},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		return r, nil
	}

	if err := json.Unmarshal(data, &r.book); err != nil {
		return nil, err
	}
	if r.book.Conversations == nil {
		r.book.Conversations = map[string]*entity.Conversation{}
	}

	return r, nil
}

func (r *conversationRepository) Mutate(fn func(b *Book) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := fn(&r.book); err != nil {
		return err
	}

	return r.save()
}

func (r *conversationRepository) View(fn func(b Book)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.book)
}

func (r *conversationRepository) save() error {
	data, err := json.MarshalIndent(r.book, "", "  ")
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
