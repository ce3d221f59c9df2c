// Package knowledge is the Memgraph-backed reference store for prosody
// documents: meter descriptions, example shlokas, grammar notes. It is an
// external collaborator of the identification core, which only ever sees it
// through the core.ContextProvider capability.
package knowledge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Collections mirror the knowledge-base layout: one label per corpus.
const (
	CollectionChandasPatterns = "chandas_patterns"
	CollectionExampleShlokas  = "example_shlokas"
	CollectionGrammarRules    = "grammar_rules"
)

// Document is one stored reference text.
type Document struct {
	ID         string            `json:"id"`
	Collection string            `json:"collection"`
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

const (
	saveDocumentQuery = `
		MERGE (d:Document {uuid: $uuid})
		SET d.collection = $collection,
			d.content = $content,
			d.meter = $meter,
			d.created_at = $created_at
		RETURN d.uuid AS uuid
	`

	searchDocumentsQuery = `
		MATCH (d:Document {collection: $collection})
		WHERE toLower(d.content) CONTAINS toLower($query)
		   OR toLower(coalesce(d.meter, "")) CONTAINS toLower($query)
		RETURN d.uuid AS uuid, d.content AS content, d.meter AS meter, d.created_at AS created_at
		ORDER BY d.created_at DESC
		LIMIT $limit
	`

	deleteDocumentQuery = `
		MATCH (d:Document {uuid: $uuid, collection: $collection})
		DETACH DELETE d
	`
)

// Store wraps the Bolt driver with document operations.
type Store struct {
	driver neo4j.DriverWithContext
	log    *zap.SugaredLogger
}

// NewStore connects to Memgraph and verifies connectivity.
func NewStore(ctx context.Context, uri, username, password string, log *zap.SugaredLogger) (*Store, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, err
	}

	log.Infow("connected to knowledge store", "uri", uri)
	return &Store{driver: driver, log: log}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// BuildIndices creates lookup indices; failures are logged and tolerated
// since the index may already exist.
func (s *Store) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Document(uuid);",
		"CREATE INDEX ON :Document(collection);",
	}
	for _, q := range queries {
		if _, err := s.execute(ctx, q, nil); err != nil {
			s.log.Warnw("failed to create index", "query", q, "error", err)
		}
	}
	return nil
}

// AddDocument stores one document and returns it with a fresh ID.
func (s *Store) AddDocument(ctx context.Context, collection, content string, metadata map[string]string) (*Document, error) {
	doc := &Document{
		ID:         uuid.New().String(),
		Collection: collection,
		Content:    content,
		Metadata:   metadata,
		CreatedAt:  time.Now().UTC(),
	}

	params := map[string]interface{}{
		"uuid":       doc.ID,
		"collection": doc.Collection,
		"content":    doc.Content,
		"meter":      metadata["meter"],
		"created_at": doc.CreatedAt.Format(time.RFC3339),
	}
	if _, err := s.execute(ctx, saveDocumentQuery, params); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return doc, nil
}

// Search returns documents in a collection whose content or meter tag
// contains the query, newest first.
func (s *Store) Search(ctx context.Context, collection, query string, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 5
	}
	result, err := s.execute(ctx, searchDocumentsQuery, map[string]interface{}{
		"collection": collection,
		"query":      query,
		"limit":      limit,
	})
	if err != nil {
		return nil, err
	}

	var docs []Document
	for _, record := range result.Records {
		id, _ := record.Get("uuid")
		content, _ := record.Get("content")
		meter, _ := record.Get("meter")
		doc := Document{
			Collection: collection,
		}
		if v, ok := id.(string); ok {
			doc.ID = v
		}
		if v, ok := content.(string); ok {
			doc.Content = v
		}
		if v, ok := meter.(string); ok && v != "" {
			doc.Metadata = map[string]string{"meter": v}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// DeleteDocument removes one document from a collection.
func (s *Store) DeleteDocument(ctx context.Context, collection, id string) error {
	_, err := s.execute(ctx, deleteDocumentQuery, map[string]interface{}{
		"uuid":       id,
		"collection": collection,
	})
	return err
}

// MeterContext implements the core's ContextProvider capability: example
// shlokas catalogued with the same opening words, joined into one
// prompt-ready block.
func (s *Store) MeterContext(ctx context.Context, verseText string) (string, error) {
	docs, err := s.Search(ctx, CollectionExampleShlokas, firstWords(verseText, 4), 3)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", nil
	}

	parts := make([]string, len(docs))
	for i, d := range docs {
		line := "- " + d.Content
		if meter := d.Metadata["meter"]; meter != "" {
			line += " (meter: " + meter + ")"
		}
		parts[i] = line
	}
	return strings.Join(parts, "\n"), nil
}

func firstWords(text string, n int) string {
	fields := strings.Fields(text)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

func (s *Store) execute(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}
