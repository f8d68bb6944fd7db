package talk

import (
	"fmt"
	"talk/domain"
	"talk/errors"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"
)

// Struct field names of the talk.v1 messages.
const (
	fieldEmail            = "email"
	fieldPassword         = "password"
	fieldToken            = "token"
	fieldDisplayName      = "displayName"
	fieldUser             = "user"
	fieldUID              = "uid"
	fieldIsAnonymous      = "isAnonymous"
	fieldPath             = "path"
	fieldID               = "id"
	fieldFields           = "fields"
	fieldServerTimestamps = "serverTimestamps"
	fieldDocuments        = "documents"
)

// AppendRequest is the payload of DocumentStore.Append.
type AppendRequest struct {
	Path             string
	Document         domain.Document
	ServerTimestamps []string
}

// Snapshot is one message of DocumentStore.Subscribe.
type Snapshot struct {
	Path      string
	Documents []domain.Document
}

func EncodeCredentials(email, password string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{fieldEmail: email, fieldPassword: password})
}

func DecodeCredentials(s *structpb.Struct) (email, password string) {
	m := s.AsMap()
	return str(m, fieldEmail), str(m, fieldPassword)
}

func EncodeCustomToken(token string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{fieldToken: token})
}

func DecodeCustomToken(s *structpb.Struct) string {
	return str(s.AsMap(), fieldToken)
}

func EncodeProfile(displayName string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{fieldDisplayName: displayName})
}

func DecodeProfile(s *structpb.Struct) string {
	return str(s.AsMap(), fieldDisplayName)
}

func EncodeIdentity(identity domain.Identity) (*structpb.Struct, error) {
	return structpb.NewStruct(identityMap(identity))
}

func DecodeIdentity(s *structpb.Struct) (domain.Identity, error) {
	return identityFrom(s.AsMap())
}

func EncodeSession(session domain.AuthSession) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		fieldToken: session.Token,
		fieldUser:  identityMap(session.Identity),
	})
}

func DecodeSession(s *structpb.Struct) (domain.AuthSession, error) {
	m := s.AsMap()
	user, _ := m[fieldUser].(map[string]any)
	identity, err := identityFrom(user)
	if err != nil {
		return domain.AuthSession{}, err
	}
	token := str(m, fieldToken)
	if token == "" {
		return domain.AuthSession{}, fmt.Errorf("session without token: %w", errors.ErrInvalidArgument)
	}
	return domain.AuthSession{Token: token, Identity: identity}, nil
}

func EncodeAppend(req AppendRequest) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		fieldPath:             req.Path,
		fieldID:               req.Document.ID,
		fieldFields:           fieldsOrEmpty(req.Document.Fields),
		fieldServerTimestamps: lo.ToAnySlice(req.ServerTimestamps),
	})
}

func DecodeAppend(s *structpb.Struct) (AppendRequest, error) {
	m := s.AsMap()
	fields, ok := m[fieldFields].(map[string]any)
	if !ok {
		return AppendRequest{}, fmt.Errorf("append without fields: %w", errors.ErrInvalidArgument)
	}
	raw, _ := m[fieldServerTimestamps].([]any)
	timestamps := lo.FilterMap(raw, func(item any, _ int) (string, bool) {
		name, ok := item.(string)
		return name, ok && name != ""
	})
	return AppendRequest{
		Path:             str(m, fieldPath),
		Document:         domain.Document{ID: str(m, fieldID), Fields: fields},
		ServerTimestamps: timestamps,
	}, nil
}

func EncodeDocument(doc domain.Document) (*structpb.Struct, error) {
	return structpb.NewStruct(documentMap(doc))
}

func DecodeDocument(s *structpb.Struct) (domain.Document, error) {
	return documentFrom(s.AsMap())
}

func EncodeSubscribe(path string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{fieldPath: path})
}

func DecodeSubscribe(s *structpb.Struct) string {
	return str(s.AsMap(), fieldPath)
}

func EncodeSnapshot(snapshot Snapshot) (*structpb.Struct, error) {
	docs := lo.Map(snapshot.Documents, func(doc domain.Document, _ int) any {
		return documentMap(doc)
	})
	return structpb.NewStruct(map[string]any{fieldPath: snapshot.Path, fieldDocuments: docs})
}

func DecodeSnapshot(s *structpb.Struct) (Snapshot, error) {
	m := s.AsMap()
	raw, _ := m[fieldDocuments].([]any)
	docs := make([]domain.Document, 0, len(raw))
	for _, item := range raw {
		dm, ok := item.(map[string]any)
		if !ok {
			return Snapshot{}, fmt.Errorf("malformed snapshot document: %w", errors.ErrInvalidArgument)
		}
		doc, err := documentFrom(dm)
		if err != nil {
			return Snapshot{}, err
		}
		docs = append(docs, doc)
	}
	return Snapshot{Path: str(m, fieldPath), Documents: docs}, nil
}

func identityMap(identity domain.Identity) map[string]any {
	return map[string]any{
		fieldUID:         identity.ID,
		fieldDisplayName: identity.DisplayName,
		fieldEmail:       identity.Email,
		fieldIsAnonymous: identity.IsAnonymous,
	}
}

func identityFrom(m map[string]any) (domain.Identity, error) {
	uid := str(m, fieldUID)
	if uid == "" {
		return domain.Identity{}, fmt.Errorf("identity without uid: %w", errors.ErrInvalidArgument)
	}
	anonymous, _ := m[fieldIsAnonymous].(bool)
	return domain.Identity{
		ID:          uid,
		DisplayName: str(m, fieldDisplayName),
		Email:       str(m, fieldEmail),
		IsAnonymous: anonymous,
	}, nil
}

func documentMap(doc domain.Document) map[string]any {
	return map[string]any{fieldID: doc.ID, fieldFields: fieldsOrEmpty(doc.Fields)}
}

func documentFrom(m map[string]any) (domain.Document, error) {
	id := str(m, fieldID)
	if id == "" {
		return domain.Document{}, fmt.Errorf("document without id: %w", errors.ErrInvalidArgument)
	}
	fields, _ := m[fieldFields].(map[string]any)
	return domain.Document{ID: id, Fields: fieldsOrEmpty(fields)}, nil
}

func fieldsOrEmpty(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	return fields
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
