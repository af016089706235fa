package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tintlab/dyeseq/pkg/dye"
)

// MongoConfig configures the mongo-backed store.
type MongoConfig struct {
	URI      string // connection string, defaults to mongodb://localhost:27017
	Database string // database name, defaults to "dyeseq"
}

// MongoStore is a MongoDB-backed store for server deployments.
// Records live in the history, saved and presets collections with the
// record ID as _id.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping before returning.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "dyeseq"
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo %s: %w", cfg.URI, err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo %s: %w", cfg.URI, err)
	}
	return &MongoStore{client: client, db: client.Database(cfg.Database)}, nil
}

// mongoColor is the BSON form of a color or mask triple.
type mongoColor struct {
	R int `bson:"r"`
	G int `bson:"g"`
	B int `bson:"b"`
}

// mongoRecord is the BSON form of a Record. Dyes are stored by name so
// documents stay readable in the shell.
type mongoRecord struct {
	ID        string     `bson:"_id"`
	Target    mongoColor `bson:"target"`
	Steps     []string   `bson:"steps"`
	Mask      mongoColor `bson:"mask"`
	Color     mongoColor `bson:"color"`
	Distance  int        `bson:"distance"`
	CreatedAt time.Time  `bson:"created_at"`
}

// mongoPreset is the BSON form of a Preset.
type mongoPreset struct {
	ID        string     `bson:"_id"`
	Name      string     `bson:"name"`
	Color     mongoColor `bson:"color"`
	CreatedAt time.Time  `bson:"created_at"`
}

func toMongoColor(c dye.Color) mongoColor { return mongoColor{R: int(c.R), G: int(c.G), B: int(c.B)} }
func toMongoMask(m dye.Mask) mongoColor   { return mongoColor{R: int(m.R), G: int(m.G), B: int(m.B)} }

func fromMongoColor(c mongoColor) dye.Color {
	return dye.Color{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}
}

func fromMongoMask(c mongoColor) dye.Mask {
	return dye.Mask{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}
}

func toMongoRecord(rec Record) mongoRecord {
	steps := make([]string, len(rec.Steps))
	for i, d := range rec.Steps {
		steps[i] = d.String()
	}
	return mongoRecord{
		ID:        rec.ID,
		Target:    toMongoColor(rec.Target),
		Steps:     steps,
		Mask:      toMongoMask(rec.Mask),
		Color:     toMongoColor(rec.Color),
		Distance:  rec.Distance,
		CreatedAt: rec.CreatedAt,
	}
}

func fromMongoRecord(doc mongoRecord) (Record, error) {
	steps := make([]dye.Dye, len(doc.Steps))
	for i, name := range doc.Steps {
		d, err := dye.Parse(name)
		if err != nil {
			return Record{}, fmt.Errorf("record %s: %w", doc.ID, err)
		}
		steps[i] = d
	}
	return Record{
		ID:        doc.ID,
		Target:    fromMongoColor(doc.Target),
		Steps:     steps,
		Mask:      fromMongoMask(doc.Mask),
		Color:     fromMongoColor(doc.Color),
		Distance:  doc.Distance,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (s *MongoStore) history() *mongo.Collection { return s.db.Collection("history") }
func (s *MongoStore) saved() *mongo.Collection   { return s.db.Collection("saved") }
func (s *MongoStore) presets() *mongo.Collection { return s.db.Collection("presets") }

func (s *MongoStore) AddHistory(ctx context.Context, rec Record) error {
	if _, err := s.history().InsertOne(ctx, toMongoRecord(rec)); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return s.trimHistory(ctx)
}

// trimHistory removes the oldest documents beyond HistoryLimit.
func (s *MongoStore) trimHistory(ctx context.Context) error {
	count, err := s.history().CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("count history: %w", err)
	}
	surplus := count - HistoryLimit
	if surplus <= 0 {
		return nil
	}

	cur, err := s.history().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}).SetLimit(surplus).SetProjection(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("find stale history: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return fmt.Errorf("decode stale history: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("iterate stale history: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	if _, err := s.history().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

func (s *MongoStore) History(ctx context.Context, limit int) ([]Record, error) {
	return s.findRecords(ctx, s.history(), int64(clampLimit(limit)))
}

func (s *MongoStore) SaveResult(ctx context.Context, rec Record) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.saved().ReplaceOne(ctx, bson.M{"_id": rec.ID}, toMongoRecord(rec), opts); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (s *MongoStore) SavedResults(ctx context.Context) ([]Record, error) {
	return s.findRecords(ctx, s.saved(), 0)
}

func (s *MongoStore) DeleteSaved(ctx context.Context, id string) error {
	return s.deleteByID(ctx, s.saved(), id)
}

func (s *MongoStore) SavePreset(ctx context.Context, p Preset) error {
	doc := mongoPreset{ID: p.ID, Name: p.Name, Color: toMongoColor(p.Color), CreatedAt: p.CreatedAt}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.presets().ReplaceOne(ctx, bson.M{"_id": p.ID}, doc, opts); err != nil {
		return fmt.Errorf("save preset: %w", err)
	}
	return nil
}

func (s *MongoStore) Presets(ctx context.Context) ([]Preset, error) {
	cur, err := s.presets().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find presets: %w", err)
	}
	defer cur.Close(ctx)

	var ps []Preset
	for cur.Next(ctx) {
		var doc mongoPreset
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode preset: %w", err)
		}
		ps = append(ps, Preset{ID: doc.ID, Name: doc.Name, Color: fromMongoColor(doc.Color), CreatedAt: doc.CreatedAt})
	}
	return ps, cur.Err()
}

func (s *MongoStore) Preset(ctx context.Context, id string) (Preset, error) {
	var doc mongoPreset
	err := s.presets().FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return Preset{}, ErrNotFound
	}
	if err != nil {
		return Preset{}, fmt.Errorf("find preset: %w", err)
	}
	return Preset{ID: doc.ID, Name: doc.Name, Color: fromMongoColor(doc.Color), CreatedAt: doc.CreatedAt}, nil
}

func (s *MongoStore) DeletePreset(ctx context.Context, id string) error {
	return s.deleteByID(ctx, s.presets(), id)
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) findRecords(ctx context.Context, coll *mongo.Collection, limit int64) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer cur.Close(ctx)

	var recs []Record
	for cur.Next(ctx) {
		var doc mongoRecord
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		rec, err := fromMongoRecord(doc)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, cur.Err()
}

func (s *MongoStore) deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Store = (*MongoStore)(nil)
