package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repo is the MongoDB-backed Store.
type Repo struct {
	software *mongo.Collection
	clients  *mongo.Collection
	issues   *mongo.Collection
	releases *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{
		software: db.Collection("software"),
		clients:  db.Collection("clients"),
		issues:   db.Collection("known_issues"),
		releases: db.Collection("release_notes"),
	}
}

// EnsureIndexes creates the indexes backing the listing sorts
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	sets := []struct {
		coll *mongo.Collection
		keys bson.D
	}{
		{r.software, bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: 1}}},
		{r.clients, bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: -1}}},
		{r.issues, bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: -1}}},
		{r.releases, bson.D{{Key: "release_date", Value: -1}, {Key: "_id", Value: -1}}},
	}
	for _, s := range sets {
		if _, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: s.keys}); err != nil {
			return fmt.Errorf("create index on %s: %w", s.coll.Name(), err)
		}
	}
	return nil
}

// ListSoftware returns every item, active or not, by sort_order then id
func (r *Repo) ListSoftware(ctx context.Context) ([]CatalogItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.software.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list software: %w", err)
	}
	defer cursor.Close(ctx)

	items := []CatalogItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode software: %w", err)
	}
	return items, nil
}

// ListClients returns active clients by sort_order asc, id desc
func (r *Repo) ListClients(ctx context.Context) ([]ClientItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: -1}})
	cursor, err := r.clients.Find(ctx, bson.M{"is_active": bson.M{"$ne": false}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	items := []ClientItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return items, nil
}

// ListIssues returns active known issues by sort_order asc, id desc
func (r *Repo) ListIssues(ctx context.Context) ([]IssueItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: -1}})
	cursor, err := r.issues.Find(ctx, bson.M{"is_active": bson.M{"$ne": false}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer cursor.Close(ctx)

	items := []IssueItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}
	for i := range items {
		if items[i].Status == "" {
			items[i].Status = "Open"
		}
	}
	return items, nil
}

type releaseDoc struct {
	ReleaseItem  `bson:",inline"`
	SoftwareName string `bson:"software_name,omitempty"`
}

// ListReleases returns published notes, newest first, with the software name resolved
func (r *Repo) ListReleases(ctx context.Context) ([]ReleaseItem, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"is_published": bson.M{"$ne": false}}},
		{"$sort": bson.D{{Key: "release_date", Value: -1}, {Key: "_id", Value: -1}}},
		{"$lookup": bson.M{
			"from":         r.software.Name(),
			"localField":   "software_id",
			"foreignField": "_id",
			"as":           "software",
		}},
		{"$set": bson.M{"software_name": bson.M{"$first": "$software.name"}}},
		{"$project": bson.M{"software": 0}},
	}

	cursor, err := r.releases.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate releases: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []releaseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode releases: %w", err)
	}
	items := make([]ReleaseItem, len(docs))
	for i, d := range docs {
		items[i] = d.ReleaseItem
		items[i].SoftwareName = d.SoftwareName
	}
	return items, nil
}

// CountSoftware returns the number of software documents
func (r *Repo) CountSoftware(ctx context.Context) (int64, error) {
	count, err := r.software.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count software: %w", err)
	}
	return count, nil
}

// Seed inserts every seed document; collections are expected to be empty
func (r *Repo) Seed(ctx context.Context, data SeedData) error {
	if err := insertAll(ctx, r.software, data.Software); err != nil {
		return fmt.Errorf("seed software: %w", err)
	}
	if err := insertAll(ctx, r.clients, data.Clients); err != nil {
		return fmt.Errorf("seed clients: %w", err)
	}
	if err := insertAll(ctx, r.issues, data.Issues); err != nil {
		return fmt.Errorf("seed issues: %w", err)
	}
	if err := insertAll(ctx, r.releases, data.Releases); err != nil {
		return fmt.Errorf("seed releases: %w", err)
	}
	return nil
}

func insertAll[T any](ctx context.Context, coll *mongo.Collection, items []T) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	_, err := coll.InsertMany(ctx, docs)
	return err
}
