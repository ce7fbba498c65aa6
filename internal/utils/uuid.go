package utils

import (
	"path"

	"github.com/google/uuid"
)

// DocumentIDs names stored documents. IDs are UUIDv7 so that blob listings
// sort by creation time.
type DocumentIDs struct {
	prefix string
}

// NewDocumentIDs returns a generator placing blobs below prefix.
func NewDocumentIDs(prefix string) *DocumentIDs {
	return &DocumentIDs{prefix: prefix}
}

// Next returns a fresh document id and the blob path
// <prefix>/<userID>/<id>.pdf it is stored under.
func (g *DocumentIDs) Next(userID string) (id, blobPath string) {
	v7, err := uuid.NewV7()
	if err != nil {
		id = uuid.NewString()
	} else {
		id = v7.String()
	}

	return id, g.Path(userID, id)
}

// Path returns the blob path of document id owned by userID.
func (g *DocumentIDs) Path(userID, id string) string {
	return path.Join(g.prefix, userID, id+".pdf")
}
