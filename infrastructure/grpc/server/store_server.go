package server

import (
	"context"
	"fmt"
	"log/slog"
	"talk/errors"
	pb "talk/proto/talk"
	"talk/services"
	"talk/sink"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type StoreServer struct {
	pb.UnimplementedDocumentStoreServer
	log                  *slog.Logger
	documentService      services.IDocumentService
	connectionBufferSize int
}

func NewStoreServer(log *slog.Logger, documentService services.IDocumentService, connectionBufferSize int) *StoreServer {
	return &StoreServer{log: log, documentService: documentService, connectionBufferSize: connectionBufferSize}
}

// Append stores a document on behalf of the authenticated caller.
func (s *StoreServer) Append(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	caller, ok := IdentityFromContext(ctx)
	if !ok {
		return nil, errors.MapToGRPCError(errors.ErrUnauthenticated)
	}
	req, err := pb.DecodeAppend(in)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	stored, err := s.documentService.Append(ctx, caller, req.Path, req.Document, req.ServerTimestamps)
	if err != nil {
		s.log.Debug("Append rejected", "path", req.Path, "code", errors.Code(err))
		return nil, errors.MapToGRPCError(err)
	}
	out, err := pb.EncodeDocument(stored)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// Subscribe streams the full collection once, then again after every change.
// It registers a dedicated sink in the registry and blocks until the client
// disconnects or a send fails. The sink is always unregistered on return.
func (s *StoreServer) Subscribe(in *structpb.Struct, stream pb.DocumentStore_SubscribeServer) error {
	ctx := stream.Context()
	caller, _ := IdentityFromContext(ctx)
	path := pb.DecodeSubscribe(in)

	snapshotSink := sink.NewSnapshotSink(s.connectionBufferSize)
	subscriberID, err := s.documentService.Watch(path, snapshotSink)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	defer s.documentService.Unwatch(subscriberID, path)

	// Watch first: a change racing the initial read is delivered twice, never lost.
	// An older fan-out snapshot arriving after the initial read is skipped.
	docs, err := s.documentService.Snapshot(path)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	var watermark sink.Watermark
	watermark.Admit(docs)
	if err := s.send(stream, pb.Snapshot{Path: path, Documents: docs}); err != nil {
		return err
	}
	s.log.Info("Subscriber connected", "user_id", caller.ID, "path", path)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Subscriber disconnected", "user_id", caller.ID, "path", path)
			return nil
		case snapshot := <-snapshotSink.Snapshots:
			if !watermark.Admit(snapshot.Documents) {
				s.log.Debug("Stale snapshot skipped", "path", path, "size", len(snapshot.Documents))
				continue
			}
			if err := s.send(stream, pb.Snapshot{Path: snapshot.Path, Documents: snapshot.Documents}); err != nil {
				s.log.Error("failed to push snapshot to stream",
					"user_id", caller.ID,
					"path", path,
					"error", err)
				return err
			}
		}
	}
}

func (s *StoreServer) send(stream pb.DocumentStore_SubscribeServer, snapshot pb.Snapshot) error {
	out, err := pb.EncodeSnapshot(snapshot)
	if err != nil {
		return status.Error(codes.Internal, fmt.Sprintf("snapshot encoding: %v", err))
	}
	return stream.Send(out)
}
