package feed

import "errors"

var (
	ErrFanCannotCreateFeed = errors.New("fans cannot create artist feeds")
	ErrGroupNotFound       = errors.New("group not found")
	ErrFeedNotFound        = errors.New("feed not found")
	ErrNotFeedAuthor       = errors.New("only the author may delete a feed")
)
