package site

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/hellosansan/hellosansan.github.io/internal/config"
)

// FeedPath is the site-relative location of the Atom feed.
const FeedPath = "/atom.xml"

// buildFeed renders the Atom feed for the newest posts. The posts slice
// must already be sorted newest first. A zero limit includes every post.
func buildFeed(cfg *config.Config, posts []*Post, now time.Time) (string, error) {
	base := strings.TrimRight(cfg.Site.BaseURL, "/")

	feed := &feeds.Feed{
		Title:       cfg.Site.Title,
		Link:        &feeds.Link{Href: base + "/"},
		Description: cfg.Site.Description,
		Author:      &feeds.Author{Name: cfg.Site.Author},
		Updated:     now,
	}
	if len(posts) > 0 {
		feed.Updated = posts[0].Date
	}

	limit := cfg.Feed.Limit
	if limit == 0 || limit > len(posts) {
		limit = len(posts)
	}

	for _, post := range posts[:limit] {
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       post.Title,
			Link:        &feeds.Link{Href: base + post.URL},
			Id:          base + post.URL,
			Description: post.Summary,
			Content:     string(post.Content),
			Author:      &feeds.Author{Name: cfg.Site.Author},
			Created:     post.Date,
			Updated:     post.Date,
		})
	}

	atom, err := feed.ToAtom()
	if err != nil {
		return "", fmt.Errorf("building atom feed: %w", err)
	}
	return atom, nil
}
