package entity

import "time"

// Comment is a review note on one content item. ParentCommentID is nil for
// top-level comments and references another comment for replies.
type Comment struct {
	ID              int64     `json:"id"`
	ContentID       int64     `json:"content_id"`
	AuthorName      string    `json:"author_name"`
	Text            string    `json:"comment_text"`
	Resolved        bool      `json:"resolved"`
	ParentCommentID *int64    `json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CommentThread is one comment with the replies that reference it. The
// display only distinguishes one level of nesting, but the structure carries
// whatever depth the data holds.
type CommentThread struct {
	Comment
	Replies []*CommentThread `json:"replies"`
}

// ThreadComments reconstructs the display forest from a flat list ordered by
// creation time. Top-level comments become roots in input order; replies
// attach to their referenced parent. A reply whose parent is absent from the
// input (already deleted) is dropped, never promoted to root.
func ThreadComments(flat []Comment) []*CommentThread {
	byID := make(map[int64]*CommentThread, len(flat))
	roots := make([]*CommentThread, 0, len(flat))

	for _, c := range flat {
		node := &CommentThread{Comment: c, Replies: []*CommentThread{}}
		byID[c.ID] = node
		if c.ParentCommentID == nil {
			roots = append(roots, node)
		}
	}

	for _, c := range flat {
		if c.ParentCommentID == nil {
			continue
		}
		parent, ok := byID[*c.ParentCommentID]
		if !ok {
			continue
		}
		parent.Replies = append(parent.Replies, byID[c.ID])
	}

	return roots
}
