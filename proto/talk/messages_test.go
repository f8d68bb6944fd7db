package talk

import (
	"talk/domain"
	"talk/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestSession_Encoding(t *testing.T) {
	req := require.New(t)
	session := domain.AuthSession{
		Token:    "jwt",
		Identity: domain.Identity{ID: "uid", DisplayName: "Ada", Email: "ada@example.com"},
	}

	s, err := EncodeSession(session)
	req.NoError(err)
	got, err := DecodeSession(s)

	req.NoError(err)
	req.Equal(session, got)
}

func TestSession_MissingParts(t *testing.T) {
	req := require.New(t)

	// Given a response without token
	s, err := structpb.NewStruct(map[string]any{"user": map[string]any{"uid": "u"}})
	req.NoError(err)
	_, err = DecodeSession(s)
	req.ErrorIs(err, errors.ErrInvalidArgument)

	// Given a response without user
	s, err = structpb.NewStruct(map[string]any{"token": "t"})
	req.NoError(err)
	_, err = DecodeSession(s)
	req.ErrorIs(err, errors.ErrInvalidArgument)
}

func TestAppend_Encoding(t *testing.T) {
	req := require.New(t)
	in := AppendRequest{
		Path: "artifacts/app/public/data/messages",
		Document: domain.Document{ID: "d1", Fields: map[string]any{
			domain.FieldText:     "hi",
			domain.FieldSenderID: "uid",
			"tags":               []any{"a", 1.0},
		}},
		ServerTimestamps: []string{domain.FieldCreatedAt},
	}

	s, err := EncodeAppend(in)
	req.NoError(err)
	got, err := DecodeAppend(s)

	req.NoError(err)
	req.Equal(in, got)
}

func TestAppend_RejectsUnencodableFields(t *testing.T) {
	req := require.New(t)

	// Server timestamp placeholders must be lifted out of the fields first
	_, err := EncodeAppend(AppendRequest{
		Path:     "c",
		Document: domain.Document{ID: "d", Fields: map[string]any{domain.FieldCreatedAt: domain.ServerTimestamp}},
	})

	req.Error(err)
}

func TestSnapshot_Encoding(t *testing.T) {
	req := require.New(t)
	in := Snapshot{
		Path: "artifacts/app/public/data/messages",
		Documents: []domain.Document{
			{ID: "a", Fields: map[string]any{domain.FieldCreatedAt: 1.7e12}},
			{ID: "b", Fields: map[string]any{}},
		},
	}

	s, err := EncodeSnapshot(in)
	req.NoError(err)
	got, err := DecodeSnapshot(s)

	req.NoError(err)
	req.Equal(in, got)
}

func TestSnapshot_Empty(t *testing.T) {
	req := require.New(t)

	s, err := EncodeSnapshot(Snapshot{Path: "c"})
	req.NoError(err)
	got, err := DecodeSnapshot(s)

	req.NoError(err)
	req.Empty(got.Documents)
}

func TestSmallMessages(t *testing.T) {
	req := require.New(t)

	s, err := EncodeCredentials("a@b.co", "secret")
	req.NoError(err)
	email, password := DecodeCredentials(s)
	req.Equal("a@b.co", email)
	req.Equal("secret", password)

	s, err = EncodeCustomToken("custom")
	req.NoError(err)
	req.Equal("custom", DecodeCustomToken(s))

	s, err = EncodeProfile("Ada")
	req.NoError(err)
	req.Equal("Ada", DecodeProfile(s))

	s, err = EncodeSubscribe("c")
	req.NoError(err)
	req.Equal("c", DecodeSubscribe(s))
}
