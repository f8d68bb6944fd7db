package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"talk/domain"
	"talk/errors"
	pb "talk/proto/talk"

	"google.golang.org/grpc"
)

// StoreClient calls talk.v1.DocumentStore.
type StoreClient struct {
	client pb.DocumentStoreClient
	apiKey string
}

func NewStoreClient(conn grpc.ClientConnInterface, apiKey string) *StoreClient {
	return &StoreClient{client: pb.NewDocumentStoreClient(conn), apiKey: apiKey}
}

func (c *StoreClient) Append(ctx context.Context, token, path string, doc domain.Document, serverTimestamps []string) (domain.Document, error) {
	in, err := pb.EncodeAppend(pb.AppendRequest{Path: path, Document: doc, ServerTimestamps: serverTimestamps})
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	out, err := c.client.Append(outgoing(ctx, c.apiKey, token), in)
	if err != nil {
		return domain.Document{}, errors.FromGRPCError(err)
	}
	return pb.DecodeDocument(out)
}

// Subscribe blocks and calls onSnapshot for every snapshot the server
// streams. It returns nil once ctx is done.
func (c *StoreClient) Subscribe(ctx context.Context, token, path string, onSnapshot func(docs []domain.Document)) error {
	in, err := pb.EncodeSubscribe(path)
	if err != nil {
		return err
	}
	stream, err := c.client.Subscribe(outgoing(ctx, c.apiKey, token), in)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	for {
		out, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if stderrors.Is(err, io.EOF) {
				return fmt.Errorf("%w: subscription closed by server", errors.ErrUnavailable)
			}
			return errors.FromGRPCError(err)
		}
		snapshot, err := pb.DecodeSnapshot(out)
		if err != nil {
			return err
		}
		onSnapshot(snapshot.Documents)
	}
}
