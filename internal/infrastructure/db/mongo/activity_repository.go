package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

const activityCollection = "account_activity"

// ActivityRepository implements ports.ActivityStore using MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	Subject string `bson:"subject"`
	Action  string `bson:"action"`
	At      int64  `bson:"at"`
}

func (r *ActivityRepository) Append(ctx context.Context, event domain.ActivityEvent) error {
	doc := mongoActivity{
		Subject: event.Subject,
		Action:  string(event.Action),
		At:      event.At.UnixMilli(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return storeErr("insert activity", err)
	}
	return nil
}

// FindBySubject returns the subject's newest events first.
func (r *ActivityRepository) FindBySubject(ctx context.Context, subject string, limit int64) ([]domain.ActivityEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"subject": subject}, opts)
	if err != nil {
		return nil, storeErr("find activity", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoActivity
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeErr("decode activity", err)
	}

	events := make([]domain.ActivityEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.ActivityEvent{
			Subject: d.Subject,
			Action:  domain.ActivityAction(d.Action),
			At:      millisToTime(d.At),
		})
	}
	return events, nil
}

func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

var _ ports.ActivityStore = (*ActivityRepository)(nil)
