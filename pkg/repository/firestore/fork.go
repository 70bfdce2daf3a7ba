package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/forkrun/pkg/domain/model"
	"github.com/secmon-lab/forkrun/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionFork = "fork"

type forkRepository struct {
	client *firestore.Client
}

// toDocID converts a fork-record key to a Firestore-safe document ID. Colon
// is the separator since GitHub owner and repository names cannot contain it.
func toDocID(original model.RepoLocator, org string) (string, error) {
	if original.Owner == "" || original.Name == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", original.Owner),
			goerr.V("repo", original.Name),
		)
	}

	if strings.ContainsAny(original.Owner+original.Name+org, ":/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "key contains invalid character",
			goerr.V("owner", original.Owner),
			goerr.V("repo", original.Name),
			goerr.V("org", org),
		)
	}

	return original.Owner + ":" + original.Name + ":" + org, nil
}

func (r *forkRepository) Get(ctx context.Context, original model.RepoLocator, org string) (*model.ForkRecord, error) {
	docID, err := toDocID(original, org)
	if err != nil {
		return nil, err
	}

	doc, err := r.client.Collection(collectionFork).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "fork record not found",
				goerr.V("repo", original.FullName()),
				goerr.V("org", org),
			)
		}
		return nil, goerr.Wrap(err, "failed to get fork record",
			goerr.V("docID", docID),
		)
	}

	var record model.ForkRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode fork record",
			goerr.V("docID", docID),
		)
	}

	return &record, nil
}

func (r *forkRepository) Put(ctx context.Context, record *model.ForkRecord) error {
	docID, err := toDocID(record.Original, record.Org)
	if err != nil {
		return err
	}

	if _, err := r.client.Collection(collectionFork).Doc(docID).Set(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to put fork record",
			goerr.V("docID", docID),
		)
	}

	return nil
}

func (r *forkRepository) Delete(ctx context.Context, original model.RepoLocator, org string) (bool, error) {
	docID, err := toDocID(original, org)
	if err != nil {
		return false, err
	}

	docRef := r.client.Collection(collectionFork).Doc(docID)

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to check fork record",
			goerr.V("docID", docID),
		)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return false, goerr.Wrap(err, "failed to delete fork record",
			goerr.V("docID", docID),
		)
	}

	return true, nil
}

func (r *forkRepository) Exists(ctx context.Context, original model.RepoLocator, org string) (bool, error) {
	docID, err := toDocID(original, org)
	if err != nil {
		return false, err
	}

	if _, err := r.client.Collection(collectionFork).Doc(docID).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to check fork record",
			goerr.V("docID", docID),
		)
	}

	return true, nil
}
