package store

import (
	"context"
	"fmt"

	"github.com/techniq-app/techniq/ent"
	"github.com/techniq-app/techniq/ent/feedpost"
)

// feedRepo implements FeedRepo using the ent client.
type feedRepo struct {
	client *ent.Client
}

func (r *feedRepo) Add(ctx context.Context, data FeedPostData) error {
	_, err := r.client.FeedPost.Create().
		SetPostID(data.PostID).
		SetAuthor(data.Author).
		SetKind(data.Kind).
		SetBody(data.Body).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save feed post: %w", err)
	}
	return nil
}

func (r *feedRepo) Recent(ctx context.Context, limit int) ([]FeedPostRecord, error) {
	query := r.client.FeedPost.Query().
		Order(ent.Desc(feedpost.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	posts, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query feed posts: %w", err)
	}

	records := make([]FeedPostRecord, len(posts))
	for i, p := range posts {
		records[i] = FeedPostRecord{
			PostID:    p.PostID,
			Author:    p.Author,
			Kind:      p.Kind,
			Body:      p.Body,
			Likes:     p.Likes,
			CreatedAt: p.CreatedAt,
		}
	}
	return records, nil
}

func (r *feedRepo) Like(ctx context.Context, postID string) (int, error) {
	p, err := r.client.FeedPost.Query().
		Where(feedpost.PostID(postID)).
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("find feed post: %w", err)
	}

	updated, err := p.Update().AddLikes(1).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("like feed post: %w", err)
	}
	return updated.Likes, nil
}
