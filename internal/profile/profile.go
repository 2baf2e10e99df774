// Package profile reads the owner's profile document and skill list from
// Firestore. It is independent of the realtime database that holds the
// portfolio records.
package profile

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	profileCollection = "profile"
	skillsCollection  = "skills"
)

// Reader is the read path the about page uses.
type Reader interface {
	Profile(ctx context.Context) (map[string]interface{}, error)
	Skills(ctx context.Context) ([]string, error)
}

type FirestoreReader struct {
	client *firestore.Client
	docID  string
}

func NewFirestoreReader(client *firestore.Client, docID string) *FirestoreReader {
	return &FirestoreReader{client: client, docID: docID}
}

// Profile returns nil when no profile document is configured or stored.
func (r *FirestoreReader) Profile(ctx context.Context) (map[string]interface{}, error) {
	if r.docID == "" {
		return nil, nil
	}
	snap, err := r.client.Collection(profileCollection).Doc(r.docID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return snap.Data(), nil
}

func (r *FirestoreReader) Skills(ctx context.Context) ([]string, error) {
	docs, err := r.client.Collection(skillsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	data := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		data = append(data, d.Data())
	}
	return skillNames(data), nil
}

// skillNames picks the name field of each skill document, skipping
// documents without a usable name.
func skillNames(docs []map[string]interface{}) []string {
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		if name, ok := d["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}
