package entity

import "time"

type Article struct {
	ID        string    `json:"id" firestore:"id"`
	Title     string    `json:"title" firestore:"title"`
	Slug      string    `json:"slug" firestore:"slug"`
	Content   string    `json:"content" firestore:"content"`
	Excerpt   string    `json:"excerpt,omitempty" firestore:"excerpt,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty" firestore:"coverURL,omitempty"`
	Tags      []string  `json:"tags,omitempty" firestore:"tags,omitempty"`
	Published bool      `json:"published" firestore:"published"`
	Featured  bool      `json:"featured" firestore:"featured"`
	ReadTime  int       `json:"read_time" firestore:"readTime"` // minutes
	AuthorID  string    `json:"author_id,omitempty" firestore:"authorId,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Comment replies nest one level via ParentID.
type Comment struct {
	ID         string    `json:"id" firestore:"id"`
	ArticleID  string    `json:"article_id" firestore:"articleId"`
	ParentID   string    `json:"parent_id,omitempty" firestore:"parentId,omitempty"`
	AuthorID   string    `json:"author_id" firestore:"authorId"`
	AuthorName string    `json:"author_name" firestore:"authorName"`
	Content    string    `json:"content" firestore:"content"`
	LikeCount  int       `json:"like_count" firestore:"likeCount"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

type ArticleLike struct {
	ID        string    `json:"id" firestore:"id"`
	ArticleID string    `json:"article_id" firestore:"articleId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
