package feed

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	userdomain "band-app-go/internal/domain/user"
	"band-app-go/pkg/pagination"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultFanoutLimit = 8

type Service struct {
	repo        Repository
	social      SocialGraph
	groups      GroupDirectory
	lives       LiveLister
	fanoutLimit int
	now         func() time.Time
}

func NewService(repo Repository, social SocialGraph, groups GroupDirectory, lives LiveLister) *Service {
	return NewServiceWithFanoutLimit(repo, social, groups, lives, defaultFanoutLimit)
}

func NewServiceWithFanoutLimit(repo Repository, social SocialGraph, groups GroupDirectory, lives LiveLister, fanoutLimit int) *Service {
	if fanoutLimit < 1 {
		fanoutLimit = defaultFanoutLimit
	}
	return &Service{
		repo:        repo,
		social:      social,
		groups:      groups,
		lives:       lives,
		fanoutLimit: fanoutLimit,
		now:         time.Now,
	}
}

type CreateFeedInput struct {
	Text         string
	OGPURL       *string
	ThumbnailURL *string
}

func (s *Service) CreateArtistFeed(ctx context.Context, actor userdomain.User, input CreateFeedInput) (*ArtistFeed, error) {
	if !actor.IsArtist() {
		return nil, ErrFanCannotCreateFeed
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	created := ArtistFeed{
		ID:           uuid.NewString(),
		AuthorID:     actor.ID,
		Text:         text,
		OGPURL:       input.OGPURL,
		ThumbnailURL: input.ThumbnailURL,
	}
	if err := s.repo.CreateArtistFeed(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) CreateUserFeed(ctx context.Context, userID string, input CreateFeedInput) (*UserFeed, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	created := UserFeed{
		ID:           uuid.NewString(),
		AuthorID:     userID,
		Text:         text,
		OGPURL:       input.OGPURL,
		ThumbnailURL: input.ThumbnailURL,
	}
	if err := s.repo.CreateUserFeed(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteArtistFeed removes one of the actor's own posts. Deleting someone
// else's post fails ErrNotFeedAuthor; a second delete fails ErrFeedNotFound.
func (s *Service) DeleteArtistFeed(ctx context.Context, actorID, feedID string) error {
	found, err := s.repo.GetArtistFeed(ctx, feedID)
	if err != nil {
		return err
	}
	if found.AuthorID != actorID {
		return ErrNotFeedAuthor
	}
	return s.repo.DeleteArtistFeed(ctx, feedID)
}

type CreateCommentInput struct {
	FeedID string
	Text   string
}

// CommentOnFeed attaches a comment to an existing feed item. Any signed-up
// user may comment, fans included.
func (s *Service) CommentOnFeed(ctx context.Context, author userdomain.User, input CreateCommentInput) (*FeedCommentView, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	exists, err := s.repo.FeedExists(ctx, input.FeedID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrFeedNotFound
	}

	created := FeedComment{
		ID:       uuid.NewString(),
		FeedID:   input.FeedID,
		AuthorID: author.ID,
		Text:     text,
	}
	if err := s.repo.CreateComment(ctx, &created); err != nil {
		return nil, err
	}
	return &FeedCommentView{FeedComment: created, AuthorName: author.Name}, nil
}

// FeedComments lists a feed item's comments, newest first.
func (s *Service) FeedComments(ctx context.Context, feedID string, page, per int) (pagination.Page[FeedCommentView], error) {
	page, per = pagination.Normalize(page, per)
	items, err := s.repo.CommentsByFeed(ctx, feedID, (page-1)*per, per+1)
	if err != nil {
		return pagination.Page[FeedCommentView]{}, err
	}
	hasMore := len(items) > per
	if hasMore {
		items = items[:per]
	}
	if items == nil {
		items = []FeedCommentView{}
	}
	return pagination.Page[FeedCommentView]{Items: items, HasMore: hasMore}, nil
}

// GroupFeeds lists the posts of one group's members, newest first. It shares
// the per-author fan-out with FollowedGroupFeeds but scopes it to a single
// group.
func (s *Service) GroupFeeds(ctx context.Context, groupID string, page, per int) (pagination.Page[ArtistFeedSummary], error) {
	exists, err := s.groups.GroupExists(ctx, groupID)
	if err != nil {
		return pagination.Page[ArtistFeedSummary]{}, err
	}
	if !exists {
		return pagination.Page[ArtistFeedSummary]{}, ErrGroupNotFound
	}

	authorIDs, err := s.collectMemberIDs(ctx, []string{groupID})
	if err != nil {
		return pagination.Page[ArtistFeedSummary]{}, err
	}

	items, err := s.artistFeedsOf(ctx, authorIDs)
	if err != nil {
		return pagination.Page[ArtistFeedSummary]{}, err
	}
	return pagination.Slice(items, page, per), nil
}

// FollowedGroupFeeds resolves the groups the user follows, fans out to their
// member lists and each member's feed, and merges the result newest first.
// An artist playing in several followed groups contributes each feed item
// once: items are deduplicated by feed id, not by (group, item) pair. If any
// fan-out read fails the whole aggregation fails; there is no partial feed.
func (s *Service) FollowedGroupFeeds(ctx context.Context, userID string, page, per int) (pagination.Page[ArtistFeedSummary], error) {
	groupIDs, err := s.social.FollowingGroupIDs(ctx, userID)
	if err != nil {
		return pagination.Page[ArtistFeedSummary]{}, err
	}

	authorIDs, err := s.collectMemberIDs(ctx, groupIDs)
	if err != nil {
		return pagination.Page[ArtistFeedSummary]{}, err
	}

	items, err := s.artistFeedsOf(ctx, authorIDs)
	if err != nil {
		return pagination.Page[ArtistFeedSummary]{}, err
	}
	return pagination.Slice(items, page, per), nil
}

// artistFeedsOf fans out one feed read per author and merges the results
// deduplicated and newest first.
func (s *Service) artistFeedsOf(ctx context.Context, authorIDs []string) ([]ArtistFeedSummary, error) {
	var (
		mu    sync.Mutex
		items []ArtistFeedSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanoutLimit)
	for _, authorID := range authorIDs {
		authorID := authorID
		g.Go(func() error {
			feeds, err := s.repo.ArtistFeedsByAuthor(gctx, authorID)
			if err != nil {
				return err
			}
			mu.Lock()
			items = append(items, feeds...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items = dedupeArtistFeeds(items)
	sortNewestFirst(items, func(f ArtistFeedSummary) (time.Time, string) { return f.CreatedAt, f.ID })
	return items, nil
}

// FollowedUserFeeds merges the feeds of every user the actor follows plus
// the actor's own, newest first.
func (s *Service) FollowedUserFeeds(ctx context.Context, userID string, page, per int) (pagination.Page[UserFeedSummary], error) {
	authorIDs, err := s.social.FollowingUserIDs(ctx, userID)
	if err != nil {
		return pagination.Page[UserFeedSummary]{}, err
	}
	authorIDs = appendUnique(authorIDs, userID)

	var (
		mu    sync.Mutex
		items []UserFeedSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanoutLimit)
	for _, authorID := range authorIDs {
		authorID := authorID
		g.Go(func() error {
			feeds, err := s.repo.UserFeedsByAuthor(gctx, authorID)
			if err != nil {
				return err
			}
			mu.Lock()
			items = append(items, feeds...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return pagination.Page[UserFeedSummary]{}, err
	}

	items = dedupeUserFeeds(items)
	sortNewestFirst(items, func(f UserFeedSummary) (time.Time, string) { return f.CreatedAt, f.ID })
	return pagination.Slice(items, page, per), nil
}

// UpcomingLives lists lives hosted by followed groups that have not started
// yet, soonest first, each annotated with whether the viewer liked it.
func (s *Service) UpcomingLives(ctx context.Context, userID string, page, per int) (pagination.Page[LiveSummary], error) {
	groupIDs, err := s.social.FollowingGroupIDs(ctx, userID)
	if err != nil {
		return pagination.Page[LiveSummary]{}, err
	}

	lives, err := s.lives.UpcomingByGroups(ctx, groupIDs, s.now())
	if err != nil {
		return pagination.Page[LiveSummary]{}, err
	}

	result := pagination.Slice(lives, page, per)

	liveIDs := make([]string, 0, len(result.Items))
	for _, l := range result.Items {
		liveIDs = append(liveIDs, l.ID)
	}

	liked, err := s.social.LikedLives(ctx, userID, liveIDs)
	if err != nil {
		return pagination.Page[LiveSummary]{}, err
	}

	summaries := make([]LiveSummary, 0, len(result.Items))
	for _, l := range result.Items {
		summaries = append(summaries, LiveSummary{Live: l, IsLiked: liked[l.ID]})
	}
	return pagination.Page[LiveSummary]{Items: summaries, HasMore: result.HasMore}, nil
}

// collectMemberIDs fans out one member-list read per group and joins them
// all before returning. The same artist in several groups appears once.
func (s *Service) collectMemberIDs(ctx context.Context, groupIDs []string) ([]string, error) {
	var (
		mu  sync.Mutex
		ids []string
	)
	seen := make(map[string]struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanoutLimit)
	for _, groupID := range groupIDs {
		groupID := groupID
		g.Go(func() error {
			members, err := s.groups.MemberIDs(gctx, groupID)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, id := range members {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(ids)
	return ids, nil
}

func dedupeArtistFeeds(items []ArtistFeedSummary) []ArtistFeedSummary {
	seen := make(map[string]struct{}, len(items))
	result := items[:0]
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		result = append(result, item)
	}
	return result
}

func dedupeUserFeeds(items []UserFeedSummary) []UserFeedSummary {
	seen := make(map[string]struct{}, len(items))
	result := items[:0]
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		result = append(result, item)
	}
	return result
}

// sortNewestFirst orders by creation time descending, breaking ties by id so
// pagination is deterministic.
func sortNewestFirst[T any](items []T, key func(T) (time.Time, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi < idj
	})
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
