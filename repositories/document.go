//go:generate go run go.uber.org/mock/mockgen -source=document.go -destination=../mocks/mock_document_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"strings"
	"talk/domain"
	"talk/errors"

	"github.com/dgraph-io/badger/v4"
)

type IDocumentRepository interface {
	Insert(path string, doc domain.Document) error
	List(path string) ([]domain.Document, error)
}

type DocumentRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDocumentRepository(db *badger.DB, log *slog.Logger) DocumentRepository {
	return DocumentRepository{db: db, log: log}
}

// Documents live under "doc:{collectionPath}/{documentID}".
func documentPrefix(path string) string { return "doc:" + path + "/" }

// Insert stores a new document. Documents are immutable: an existing id
// fails with ErrAlreadyExists.
func (r DocumentRepository) Insert(path string, doc domain.Document) error {
	data, err := encodeRecord(doc.Fields)
	if err != nil {
		return errors.ErrInvalidArgument
	}
	key := []byte(documentPrefix(path) + doc.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return errors.ErrAlreadyExists
		}
		return txn.Set(key, data)
	})
}

// List returns every document of the collection in key order, which is
// document id order. Documents of nested collections are skipped.
func (r DocumentRepository) List(path string) ([]domain.Document, error) {
	var documents []domain.Document
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := documentPrefix(path)
		prefix := []byte(prefixStr)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := string(item.Key()[len(prefixStr):])
			if strings.Contains(id, "/") {
				continue
			}
			err := item.Value(func(val []byte) error {
				fields, err := decodeRecord(val)
				if err != nil {
					r.log.Warn("Skipping undecodable document", "key", string(item.Key()), "error", err)
					return nil
				}
				documents = append(documents, domain.Document{ID: id, Fields: fields})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return documents, err
}
